package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/ltbreno/pagarme/internal/adapter/http/dto/request"
	"github.com/ltbreno/pagarme/internal/adapter/http/dto/response"
	"github.com/ltbreno/pagarme/internal/domain/entities"
	"github.com/ltbreno/pagarme/internal/infrastructure/payments"
	"github.com/ltbreno/pagarme/internal/usecase"
	"github.com/ltbreno/pagarme/internal/usecase/interfaces"
	"github.com/ltbreno/pagarme/pkg"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles the payment lifecycle endpoints.

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// CreateCreditCardPayment opens a card order at Pagar.me and persists the
// local payment record.
func (h *PaymentHandler) CreateCreditCardPayment(c *gin.Context) {
	var req request.CreditCardPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[payment][handler] create credit_card invalid payload err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Dados inválidos", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if err := req.Validate(); err != nil {
		log.Printf("[payment][handler] create credit_card invalid payload err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateCreditCardPayment(c.Request.Context(), req.ToInput())
	if err != nil {
		log.Printf("[payment][handler] create credit_card failed err=%v", err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] create credit_card success payment_id=%d pagarme_id=%s", created.ID, created.GatewayOrderID)

	c.JSON(http.StatusCreated, response.APIResponse{
		Success: true,
		Message: "Pagamento com cartão criado com sucesso",
		Data:    response.FromCreditCardPayment(created),
	})
}

// CreatePixPayment opens a pix order at Pagar.me and persists the local
// payment record with the qr codes.
func (h *PaymentHandler) CreatePixPayment(c *gin.Context) {
	var req request.PixPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[payment][handler] create pix invalid payload err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Dados inválidos", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if err := req.Validate(); err != nil {
		log.Printf("[payment][handler] create pix invalid payload err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	created, err := h.usecase.CreatePixPayment(c.Request.Context(), req.ToInput())
	if err != nil {
		log.Printf("[payment][handler] create pix failed err=%v", err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] create pix success payment_id=%d pagarme_id=%s", created.ID, created.GatewayOrderID)

	c.JSON(http.StatusCreated, response.APIResponse{
		Success: true,
		Message: "Pagamento PIX criado com sucesso",
		Data:    response.FromPixPayment(created, pixExpiresAt(created)),
	})
}

// GetPayment returns a payment by its local id.
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	id, err := paymentIDParam(c)
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid payment id", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	p, err := h.usecase.GetPayment(c.Request.Context(), id)
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.APIResponse{Success: true, Data: p})
}

// ListPayments lists payments with optional status / payment_method filters.
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	filters := interfaces.PaymentFilters{
		Status:        entities.PaymentStatus(c.Query("status")),
		PaymentMethod: entities.PaymentMethod(c.Query("payment_method")),
	}

	payments, err := h.usecase.ListPayments(c.Request.Context(), filters, limit, offset)
	if err != nil {
		log.Printf("[payment][handler] list failed err=%v", err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.PaymentListResponse{
		Success:    true,
		Data:       payments,
		Pagination: response.Pagination{Limit: limit, Offset: offset},
	})
}

// GetStats returns aggregate payment numbers from the backup store.
func (h *PaymentHandler) GetStats(c *gin.Context) {
	stats, err := h.usecase.GetStats(c.Request.Context())
	if err != nil {
		log.Printf("[payment][handler] stats failed err=%v", err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.APIResponse{Success: true, Data: response.FromStats(stats)})
}

// DeletePayment removes a payment row. Not part of the reconciliation path.
func (h *PaymentHandler) DeletePayment(c *gin.Context) {
	id, err := paymentIDParam(c)
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid payment id", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if err := h.usecase.DeletePayment(c.Request.Context(), id); err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.APIResponse{Success: true, Message: "Pagamento removido"})
}

// CreateCardToken tokenizes raw card data. Testing helper only.
func (h *PaymentHandler) CreateCardToken(c *gin.Context) {
	var req request.CardTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Dados inválidos", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if err := req.Validate(); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	token, err := h.usecase.CreateCardToken(c.Request.Context(), req.ToInput())
	if err != nil {
		log.Printf("[payment][handler] card token failed err=%v", err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.APIResponse{
		Success: true,
		Message: "Token do cartão criado com sucesso",
		Data:    response.FromCardToken(token),
	})
}

// ValidateCardToken confirms receipt of a token created on the frontend with
// the public key; the real validation happens when the order is placed.
func (h *PaymentHandler) ValidateCardToken(c *gin.Context) {
	var req request.ValidateCardTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Token do cartão é obrigatório", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.APIResponse{
		Success: true,
		Message: "Token validado com sucesso",
		Data:    gin.H{"token": req.CardToken, "valid": true},
	})
}

// DivergenceScan reports gateway order ids present in one store but not the
// other, for out-of-band reconciliation.
func (h *PaymentHandler) DivergenceScan(c *gin.Context) {
	report, err := h.usecase.DivergenceScan(c.Request.Context())
	if err != nil {
		log.Printf("[payment][handler] divergence scan failed err=%v", err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.APIResponse{Success: true, Data: report})
}

func paymentIDParam(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.New("invalid payment id")
	}
	return uint(id), nil
}

func pixExpiresAt(p entities.Payment) string {
	if len(p.GatewayResponse) == 0 {
		return ""
	}
	var order entities.GatewayOrder
	if err := json.Unmarshal(p.GatewayResponse, &order); err != nil {
		return ""
	}
	if charge := order.PixCharge(); charge != nil && charge.LastTransaction != nil {
		return charge.LastTransaction.ExpiresAt
	}
	return ""
}

func mapPaymentError(err error) *pkg.AppError {
	var gatewayErr *payments.GatewayError

	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentID),
		errors.Is(err, usecase.ErrInvalidPaymentAmount),
		errors.Is(err, usecase.ErrMissingCardToken):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Dados inválidos", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Pagamento não encontrado", http.StatusNotFound)
	case errors.Is(err, usecase.ErrGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("GATEWAY_NOT_CONFIGURED", "Payment gateway not configured", http.StatusServiceUnavailable)
	case errors.Is(err, interfaces.ErrPersistenceFailed):
		return pkg.NewDomainError("PERSISTENCE_ERROR", "Falha ao salvar pagamento", err, http.StatusInternalServerError)
	case errors.As(err, &gatewayErr):
		if gatewayErr.Status >= 400 && gatewayErr.Status < 500 {
			return pkg.NewDomainError("GATEWAY_REJECTED", "Pagar.me rejeitou a requisição", err, http.StatusBadRequest)
		}
		return pkg.NewDomainError("GATEWAY_ERROR", "Erro no gateway de pagamento", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Erro interno do servidor", err, http.StatusInternalServerError)
	}
}
