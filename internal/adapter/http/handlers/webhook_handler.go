package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/ltbreno/pagarme/internal/adapter/http/dto/request"
	"github.com/ltbreno/pagarme/internal/adapter/http/dto/response"
	"github.com/ltbreno/pagarme/internal/usecase"

	"github.com/gin-gonic/gin"
)

// WebhookHandler receives Pagar.me event notifications. The contract with the
// gateway is strict: anything short of a malformed envelope must be answered
// with 200, otherwise Pagar.me keeps retrying the delivery.

type WebhookHandler struct {
	usecase usecase.IWebhookUseCase
}

func NewWebhookHandler(uc usecase.IWebhookUseCase) *WebhookHandler {
	return &WebhookHandler{usecase: uc}
}

func (h *WebhookHandler) HandleWebhook(c *gin.Context) {
	var req request.WebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[webhook][handler] malformed payload err=%v", err)
		c.JSON(http.StatusBadRequest, response.WebhookResponse{
			Success: false,
			Error:   "Payload inválido",
		})
		return
	}

	outcome, err := h.usecase.ProcessEvent(c.Request.Context(), req.ID, req.Type, req.Data)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidWebhookEvent) {
			log.Printf("[webhook][handler] invalid event id=%s type=%s", req.ID, req.Type)
			c.JSON(http.StatusBadRequest, response.WebhookResponse{
				Success: false,
				Error:   "Evento inválido",
			})
			return
		}
		// Internal failures are acknowledged anyway; the reconciliation is
		// best effort and retries would not help.
		log.Printf("[webhook][handler] processing failed id=%s type=%s err=%v", req.ID, req.Type, err)
		c.JSON(http.StatusOK, response.WebhookFailed(req.Type))
		return
	}

	log.Printf("[webhook][handler] processed id=%s type=%s handled=%t applied=%t", req.ID, req.Type, outcome.Handled, outcome.Applied)
	c.JSON(http.StatusOK, response.WebhookProcessed(outcome.EventType))
}
