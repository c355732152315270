package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vestapay/internal/adapter/http/handlers/mocks"
	"vestapay/internal/domain/entities"
	"vestapay/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

const chargeBody = `{
	"amount": 100,
	"order_id": "ord-1",
	"card": {"name": "John Doe", "number": "340001234527890", "verification_value": "183", "month": 1, "year": 2019}
}`

func postJSON(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPaymentHandler_Purchase(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/charges", h.Purchase)

		w := postJSON(t, r, "/v1/charges", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing card", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/charges", h.Purchase)

		w := postJSON(t, r, "/v1/charges", `{"amount": 100}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		uc.EXPECT().Purchase(gomock.Any(), int64(100), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ int64, card entities.PaymentInstrument, opts entities.TransactionOptions) (entities.PaymentResult, error) {
				if card.Number != "340001234527890" || card.Name != "John Doe" {
					t.Fatalf("card lost in translation: %+v", card)
				}
				if opts.OrderID != "ord-1" {
					t.Fatalf("order id lost: %+v", opts)
				}
				return entities.PaymentResult{
					Success:       true,
					OrderID:       opts.OrderID,
					Authorization: true,
					Params:        map[string]any{"payment_id": "pay-7"},
				}, nil
			})

		r := gin.New()
		r.POST("/v1/charges", h.Purchase)

		w := postJSON(t, r, "/v1/charges", chargeBody)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}

		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if body["success"] != true || body["payment_id"] != "pay-7" || body["order_id"] != "ord-1" {
			t.Fatalf("unexpected response: %v", body)
		}
	})

	t.Run("declined is still 200", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		uc.EXPECT().Purchase(gomock.Any(), int64(100), gomock.Any(), gomock.Any()).Return(
			entities.PaymentResult{Success: false, Code: "bank_declined", Message: "Do not honor"}, nil)

		r := gin.New()
		r.POST("/v1/charges", h.Purchase)

		w := postJSON(t, r, "/v1/charges", chargeBody)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if body["success"] != false || body["code"] != "bank_declined" {
			t.Fatalf("unexpected response: %v", body)
		}
	})

	t.Run("usecase validation error maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		uc.EXPECT().Purchase(gomock.Any(), int64(100), gomock.Any(), gomock.Any()).Return(
			entities.PaymentResult{}, usecase.ErrInvalidAmount)

		r := gin.New()
		r.POST("/v1/charges", h.Purchase)

		w := postJSON(t, r, "/v1/charges", chargeBody)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("gateway not configured maps to 503", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		uc.EXPECT().Purchase(gomock.Any(), int64(100), gomock.Any(), gomock.Any()).Return(
			entities.PaymentResult{}, usecase.ErrGatewayNotConfigured)

		r := gin.New()
		r.POST("/v1/charges", h.Purchase)

		w := postJSON(t, r, "/v1/charges", chargeBody)
		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})

	t.Run("unexpected error maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		uc.EXPECT().Purchase(gomock.Any(), int64(100), gomock.Any(), gomock.Any()).Return(
			entities.PaymentResult{}, errors.New("boom"))

		r := gin.New()
		r.POST("/v1/charges", h.Purchase)

		w := postJSON(t, r, "/v1/charges", chargeBody)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestPaymentHandler_RefundVoid(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("refund does not need a card", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		uc.EXPECT().Refund(gomock.Any(), int64(100), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ int64, opts entities.TransactionOptions) (entities.PaymentResult, error) {
				if opts.PaymentID != "pay-7" {
					t.Fatalf("payment id lost: %+v", opts)
				}
				return entities.PaymentResult{Success: true}, nil
			})

		r := gin.New()
		r.POST("/v1/charges/refund", h.Refund)

		w := postJSON(t, r, "/v1/charges/refund", `{"amount": 100, "payment_id": "pay-7", "order_id": "ord-1"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
	})

	t.Run("void missing payment id maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		uc.EXPECT().Void(gomock.Any(), gomock.Any()).Return(entities.PaymentResult{}, usecase.ErrMissingPaymentID)

		r := gin.New()
		r.POST("/v1/charges/void", h.Void)

		w := postJSON(t, r, "/v1/charges/void", `{"order_id": "ord-1"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestPaymentHandler_Verify(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("amount is ignored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		uc.EXPECT().Verify(gomock.Any(), gomock.Any(), gomock.Any()).Return(
			entities.PaymentResult{Success: true, Authorization: true}, nil)

		r := gin.New()
		r.POST("/v1/charges/verify", h.Verify)

		w := postJSON(t, r, "/v1/charges/verify", chargeBody)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
	})
}

func TestPaymentHandler_GetTranscriptsByOrderID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		uc.EXPECT().ListTranscriptsByOrderID(gomock.Any(), "ord-1").Return([]entities.Transcript{
			{ID: "tr-1", OrderID: "ord-1", Operation: "purchase", Body: "{}", CreatedAt: time.Now().UTC()},
		}, nil)

		r := gin.New()
		r.GET("/v1/transcripts/:order_id", h.GetTranscriptsByOrderID)

		req := httptest.NewRequest(http.MethodGet, "/v1/transcripts/ord-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}

		var body []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if len(body) != 1 || body[0]["id"] != "tr-1" || body[0]["operation"] != "purchase" {
			t.Fatalf("unexpected response: %v", body)
		}
	})

	t.Run("empty list maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		uc.EXPECT().ListTranscriptsByOrderID(gomock.Any(), "ord-404").Return(nil, nil)

		r := gin.New()
		r.GET("/v1/transcripts/:order_id", h.GetTranscriptsByOrderID)

		req := httptest.NewRequest(http.MethodGet, "/v1/transcripts/ord-404", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("repository error maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		uc.EXPECT().ListTranscriptsByOrderID(gomock.Any(), "ord-1").Return(nil, errors.New("dynamo down"))

		r := gin.New()
		r.GET("/v1/transcripts/:order_id", h.GetTranscriptsByOrderID)

		req := httptest.NewRequest(http.MethodGet, "/v1/transcripts/ord-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
