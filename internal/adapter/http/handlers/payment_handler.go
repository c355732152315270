package handlers

import (
	"errors"
	"log"
	"net/http"

	request "vestapay/internal/adapter/http/dto/request"
	response "vestapay/internal/adapter/http/dto/response"
	"vestapay/internal/usecase"
	"vestapay/pkg"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles HTTP requests for the Vesta charge operations.

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// Purchase authorizes and captures in one call.
func (h *PaymentHandler) Purchase(c *gin.Context) {
	payload, ok := h.bindCharge(c)
	if !ok {
		return
	}
	card, err := payload.ResolveCard()
	if err != nil {
		rejectInvalid(c, "purchase", err)
		return
	}

	log.Printf("[payment][handler] purchase start order_id=%s amount=%d", payload.OrderID, payload.Amount)
	result, err := h.usecase.Purchase(c.Request.Context(), payload.Amount, card, payload.ResolveOptions())
	if err != nil {
		log.Printf("[payment][handler] purchase failed order_id=%s err=%v", payload.OrderID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] purchase done order_id=%s success=%t code=%q", result.OrderID, result.Success, result.Code)

	c.JSON(http.StatusOK, response.FromPaymentResult(result))
}

// Authorize places a hold without capturing funds.
func (h *PaymentHandler) Authorize(c *gin.Context) {
	payload, ok := h.bindCharge(c)
	if !ok {
		return
	}
	card, err := payload.ResolveCard()
	if err != nil {
		rejectInvalid(c, "authorize", err)
		return
	}

	log.Printf("[payment][handler] authorize start order_id=%s amount=%d", payload.OrderID, payload.Amount)
	result, err := h.usecase.Authorize(c.Request.Context(), payload.Amount, card, payload.ResolveOptions())
	if err != nil {
		log.Printf("[payment][handler] authorize failed order_id=%s err=%v", payload.OrderID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] authorize done order_id=%s success=%t code=%q", result.OrderID, result.Success, result.Code)

	c.JSON(http.StatusOK, response.FromPaymentResult(result))
}

// Capture settles a previously authorized charge. Requires payment_id.
func (h *PaymentHandler) Capture(c *gin.Context) {
	payload, ok := h.bindCharge(c)
	if !ok {
		return
	}
	card, err := payload.ResolveCard()
	if err != nil {
		rejectInvalid(c, "capture", err)
		return
	}

	log.Printf("[payment][handler] capture start order_id=%s payment_id=%s amount=%d", payload.OrderID, payload.PaymentID, payload.Amount)
	result, err := h.usecase.Capture(c.Request.Context(), payload.Amount, card, payload.ResolveOptions())
	if err != nil {
		log.Printf("[payment][handler] capture failed order_id=%s err=%v", payload.OrderID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] capture done order_id=%s success=%t code=%q", result.OrderID, result.Success, result.Code)

	c.JSON(http.StatusOK, response.FromPaymentResult(result))
}

// Refund credits a settled payment. Requires payment_id; no card data.
func (h *PaymentHandler) Refund(c *gin.Context) {
	payload, ok := h.bindCharge(c)
	if !ok {
		return
	}

	log.Printf("[payment][handler] refund start order_id=%s payment_id=%s amount=%d", payload.OrderID, payload.PaymentID, payload.Amount)
	result, err := h.usecase.Refund(c.Request.Context(), payload.Amount, payload.ResolveOptions())
	if err != nil {
		log.Printf("[payment][handler] refund failed order_id=%s err=%v", payload.OrderID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] refund done order_id=%s success=%t code=%q", result.OrderID, result.Success, result.Code)

	c.JSON(http.StatusOK, response.FromPaymentResult(result))
}

// Void reverses an unsettled payment. Requires payment_id; no amount.
func (h *PaymentHandler) Void(c *gin.Context) {
	payload, ok := h.bindCharge(c)
	if !ok {
		return
	}

	log.Printf("[payment][handler] void start order_id=%s payment_id=%s", payload.OrderID, payload.PaymentID)
	result, err := h.usecase.Void(c.Request.Context(), payload.ResolveOptions())
	if err != nil {
		log.Printf("[payment][handler] void failed order_id=%s err=%v", payload.OrderID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] void done order_id=%s success=%t code=%q", result.OrderID, result.Success, result.Code)

	c.JSON(http.StatusOK, response.FromPaymentResult(result))
}

// Verify checks a card with a probe authorization that is voided right away.
func (h *PaymentHandler) Verify(c *gin.Context) {
	payload, ok := h.bindCharge(c)
	if !ok {
		return
	}
	card, err := payload.ResolveCard()
	if err != nil {
		rejectInvalid(c, "verify", err)
		return
	}

	log.Printf("[payment][handler] verify start order_id=%s", payload.OrderID)
	result, err := h.usecase.Verify(c.Request.Context(), card, payload.ResolveOptions())
	if err != nil {
		log.Printf("[payment][handler] verify failed order_id=%s err=%v", payload.OrderID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] verify done order_id=%s success=%t code=%q", result.OrderID, result.Success, result.Code)

	c.JSON(http.StatusOK, response.FromPaymentResult(result))
}

// GetTranscriptsByOrderID returns the scrubbed exchanges stored for an order.
func (h *PaymentHandler) GetTranscriptsByOrderID(c *gin.Context) {
	orderID := c.Param("order_id")
	log.Printf("[payment][handler] transcripts start order_id=%s", orderID)

	transcripts, err := h.usecase.ListTranscriptsByOrderID(c.Request.Context(), orderID)
	if err != nil {
		log.Printf("[payment][handler] transcripts failed order_id=%s err=%v", orderID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if len(transcripts) == 0 {
		log.Printf("[payment][handler] transcripts not-found order_id=%s", orderID)
		appErr := pkg.NewDomainErrorSimple("TRANSCRIPTS_NOT_FOUND", "No transcripts for this order", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] transcripts done order_id=%s count=%d", orderID, len(transcripts))

	c.JSON(http.StatusOK, response.FromTranscripts(transcripts))
}

func (h *PaymentHandler) bindCharge(c *gin.Context) (request.ChargeRequest, bool) {
	var payload request.ChargeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[payment][handler] invalid payload err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return payload, false
	}
	return payload, true
}

func rejectInvalid(c *gin.Context, operation string, err error) {
	log.Printf("[payment][handler] %s rejected err=%v", operation, err)
	appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAmount),
		errors.Is(err, usecase.ErrInvalidCard),
		errors.Is(err, usecase.ErrMissingPaymentID),
		errors.Is(err, usecase.ErrInvalidOrderID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("GATEWAY_NOT_CONFIGURED", "Payment gateway not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
