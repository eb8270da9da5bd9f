package handlers

import (
	"log"
	"net/http"

	"github.com/ltbreno/pagarme/internal/adapter/http/dto/response"
	"github.com/ltbreno/pagarme/internal/usecase"

	"github.com/gin-gonic/gin"
)

// PayoutHandler proxies recipient and transfer management to Pagar.me.

type PayoutHandler struct {
	usecase usecase.IPayoutUseCase
}

func NewPayoutHandler(uc usecase.IPayoutUseCase) *PayoutHandler {
	return &PayoutHandler{usecase: uc}
}

func (h *PayoutHandler) CreateRecipient(c *gin.Context) {
	payload, ok := rawBody(c)
	if !ok {
		return
	}

	result, err := h.usecase.CreateRecipient(c.Request.Context(), payload)
	if err != nil {
		log.Printf("[payout][handler] create recipient failed err=%v", err)
		appErr := mapProxyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.APIResponse{Success: true, Data: result})
}

func (h *PayoutHandler) GetRecipient(c *gin.Context) {
	result, err := h.usecase.GetRecipient(c.Request.Context(), c.Param("id"))
	if err != nil {
		log.Printf("[payout][handler] get recipient failed id=%s err=%v", c.Param("id"), err)
		appErr := mapProxyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.APIResponse{Success: true, Data: result})
}

func (h *PayoutHandler) CreateTransfer(c *gin.Context) {
	payload, ok := rawBody(c)
	if !ok {
		return
	}

	result, err := h.usecase.CreateTransfer(c.Request.Context(), payload)
	if err != nil {
		log.Printf("[payout][handler] create transfer failed err=%v", err)
		appErr := mapProxyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.APIResponse{Success: true, Data: result})
}
