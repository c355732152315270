package routes

import (
	"vestapay/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCharges     = "/charges"
	PathTranscripts = "/transcripts"
)

func addPaymentRoutes(rg *gin.RouterGroup, paymentHandler *handlers.PaymentHandler) {
	charges := rg.Group(PathCharges)
	{
		charges.POST("", paymentHandler.Purchase)
		charges.POST("/authorize", paymentHandler.Authorize)
		charges.POST("/capture", paymentHandler.Capture)
		charges.POST("/refund", paymentHandler.Refund)
		charges.POST("/void", paymentHandler.Void)
		charges.POST("/verify", paymentHandler.Verify)
	}

	transcripts := rg.Group(PathTranscripts)
	{
		transcripts.GET("/:order_id", paymentHandler.GetTranscriptsByOrderID)
	}
}
