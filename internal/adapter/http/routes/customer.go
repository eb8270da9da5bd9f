package routes

import (
	"github.com/ltbreno/pagarme/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCustomers  = "/customers"
	PathRecipients = "/recipients"
	PathTransfers  = "/transfers"
)

func addCustomerRoutes(rg *gin.RouterGroup, customerHandler *handlers.CustomerHandler) {
	customers := rg.Group(PathCustomers)
	{
		customers.POST("", customerHandler.CreateCustomer)
		customers.GET("/:id", customerHandler.GetCustomer)
		customers.POST("/:id/cards", customerHandler.CreateCard)
		customers.GET("/:id/cards", customerHandler.ListCards)
	}
}

func addPayoutRoutes(rg *gin.RouterGroup, payoutHandler *handlers.PayoutHandler) {
	recipients := rg.Group(PathRecipients)
	{
		recipients.POST("", payoutHandler.CreateRecipient)
		recipients.GET("/:id", payoutHandler.GetRecipient)
	}

	transfers := rg.Group(PathTransfers)
	{
		transfers.POST("", payoutHandler.CreateTransfer)
	}
}
