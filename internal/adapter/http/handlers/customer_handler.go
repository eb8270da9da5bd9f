package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/ltbreno/pagarme/internal/adapter/http/dto/response"
	"github.com/ltbreno/pagarme/internal/infrastructure/payments"
	"github.com/ltbreno/pagarme/internal/usecase"
	"github.com/ltbreno/pagarme/pkg"

	"github.com/gin-gonic/gin"
)

// CustomerHandler proxies customer and card management straight to Pagar.me.
// Payloads pass through untouched and nothing is persisted locally.

type CustomerHandler struct {
	usecase usecase.ICustomerUseCase
}

func NewCustomerHandler(uc usecase.ICustomerUseCase) *CustomerHandler {
	return &CustomerHandler{usecase: uc}
}

func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	payload, ok := rawBody(c)
	if !ok {
		return
	}

	result, err := h.usecase.CreateCustomer(c.Request.Context(), payload)
	if err != nil {
		log.Printf("[customer][handler] create failed err=%v", err)
		appErr := mapProxyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.APIResponse{Success: true, Data: result})
}

func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	result, err := h.usecase.GetCustomer(c.Request.Context(), c.Param("id"))
	if err != nil {
		log.Printf("[customer][handler] get failed id=%s err=%v", c.Param("id"), err)
		appErr := mapProxyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.APIResponse{Success: true, Data: result})
}

func (h *CustomerHandler) CreateCard(c *gin.Context) {
	payload, ok := rawBody(c)
	if !ok {
		return
	}

	result, err := h.usecase.CreateCard(c.Request.Context(), c.Param("id"), payload)
	if err != nil {
		log.Printf("[customer][handler] create card failed customer_id=%s err=%v", c.Param("id"), err)
		appErr := mapProxyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.APIResponse{Success: true, Data: result})
}

func (h *CustomerHandler) ListCards(c *gin.Context) {
	result, err := h.usecase.ListCards(c.Request.Context(), c.Param("id"))
	if err != nil {
		log.Printf("[customer][handler] list cards failed customer_id=%s err=%v", c.Param("id"), err)
		appErr := mapProxyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.APIResponse{Success: true, Data: result})
}

// rawBody reads the request body as-is so the proxy endpoints forward exactly
// what the client sent. Responds 400 and returns false on unreadable bodies.
func rawBody(c *gin.Context) (json.RawMessage, bool) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Dados inválidos", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return nil, false
	}
	return json.RawMessage(body), true
}

func mapProxyError(err error) *pkg.AppError {
	var gatewayErr *payments.GatewayError

	switch {
	case errors.Is(err, usecase.ErrInvalidCustomerID),
		errors.Is(err, usecase.ErrInvalidCustomerPayload),
		errors.Is(err, usecase.ErrInvalidRecipientID),
		errors.Is(err, usecase.ErrInvalidRecipientPayload),
		errors.Is(err, usecase.ErrInvalidTransferPayload):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Dados inválidos", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("GATEWAY_NOT_CONFIGURED", "Payment gateway not configured", http.StatusServiceUnavailable)
	case errors.As(err, &gatewayErr):
		if gatewayErr.Status == http.StatusNotFound {
			return pkg.NewDomainError("NOT_FOUND", "Recurso não encontrado no Pagar.me", err, http.StatusNotFound)
		}
		if gatewayErr.Status >= 400 && gatewayErr.Status < 500 {
			return pkg.NewDomainError("GATEWAY_REJECTED", "Pagar.me rejeitou a requisição", err, http.StatusBadRequest)
		}
		return pkg.NewDomainError("GATEWAY_ERROR", "Erro no gateway de pagamento", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Erro interno do servidor", err, http.StatusInternalServerError)
	}
}
