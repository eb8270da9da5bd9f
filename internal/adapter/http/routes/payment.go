package routes

import (
	"github.com/ltbreno/pagarme/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPayments = "/payments"
	PathWebhooks = "/webhooks"
)

func addPaymentRoutes(rg *gin.RouterGroup, paymentHandler *handlers.PaymentHandler, webhookHandler *handlers.WebhookHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("/credit-card", paymentHandler.CreateCreditCardPayment)
		payments.POST("/pix", paymentHandler.CreatePixPayment)
		payments.POST("/card-token", paymentHandler.CreateCardToken)
		payments.POST("/validate-token", paymentHandler.ValidateCardToken)
		payments.GET("/stats", paymentHandler.GetStats)
		payments.GET("/divergences", paymentHandler.DivergenceScan)
		payments.GET("/:id", paymentHandler.GetPayment)
		payments.DELETE("/:id", paymentHandler.DeletePayment)
		payments.GET("", paymentHandler.ListPayments)
	}

	webhooks := rg.Group(PathWebhooks)
	{
		webhooks.POST("/pagarme", webhookHandler.HandleWebhook)
	}
}
