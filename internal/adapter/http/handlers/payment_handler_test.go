package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ltbreno/pagarme/internal/adapter/http/handlers/mocks"
	"github.com/ltbreno/pagarme/internal/domain/entities"
	"github.com/ltbreno/pagarme/internal/infrastructure/payments"
	"github.com/ltbreno/pagarme/internal/usecase"
	"github.com/ltbreno/pagarme/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

const validCreditCardBody = `{
	"amount": 5000,
	"card_token": "token_123",
	"installments": 2,
	"customer_name": "João Silva",
	"customer_email": "joao@example.com",
	"customer_document": "12345678901",
	"proposal_id": "p-1"
}`

func TestPaymentHandler_CreateCreditCardPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc *mocks.MockIPaymentUseCase) *gin.Engine {
		h := NewPaymentHandler(uc)
		r := gin.New()
		r.POST("/v1/payments/credit-card", h.CreateCreditCardPayment)
		return r
	}

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := newRouter(uc)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/credit-card", bytes.NewBufferString(`{"amount":50}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid document", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := newRouter(uc)

		body := `{"amount":5000,"card_token":"token_123","customer_name":"João Silva","customer_email":"joao@example.com","customer_document":"123"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/payments/credit-card", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("gateway rejection maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().CreateCreditCardPayment(gomock.Any(), gomock.Any()).
			Return(entities.Payment{}, &payments.GatewayError{Status: 422, Body: `{"message":"invalid card"}`})

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/credit-card", bytes.NewBufferString(validCreditCardBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("gateway outage maps to 502", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().CreateCreditCardPayment(gomock.Any(), gomock.Any()).
			Return(entities.Payment{}, &payments.GatewayError{Status: 503, Body: "upstream down"})

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/credit-card", bytes.NewBufferString(validCreditCardBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})

	t.Run("persistence failure maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().CreateCreditCardPayment(gomock.Any(), gomock.Any()).
			Return(entities.Payment{}, interfaces.ErrPersistenceFailed)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/credit-card", bytes.NewBufferString(validCreditCardBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("success returns 201 with the created payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().CreateCreditCardPayment(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in interfaces.CreditCardOrderInput) (entities.Payment, error) {
				if in.Amount != 5000 || in.CardToken != "token_123" || in.ProposalID != "p-1" {
					t.Fatalf("unexpected input %+v", in)
				}
				return entities.Payment{
					ID:             21,
					GatewayOrderID: "or_1",
					Amount:         5000,
					Status:         entities.PaymentStatusPaid,
					PaymentMethod:  entities.PaymentMethodCreditCard,
				}, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/credit-card", bytes.NewBufferString(validCreditCardBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var resp struct {
			Success bool `json:"success"`
			Data    struct {
				PaymentID      uint   `json:"payment_id"`
				PagarmeOrderID string `json:"pagarme_order_id"`
			} `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if !resp.Success || resp.Data.PaymentID != 21 || resp.Data.PagarmeOrderID != "or_1" {
			t.Fatalf("unexpected response %+v", resp)
		}
	})
}

func TestPaymentHandler_CreatePixPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	validBody := `{
		"amount": 2500,
		"customer_name": "Maria Souza",
		"customer_email": "maria@example.com",
		"customer_document": "98765432100",
		"customer_phone": {"country_code":"55","area_code":"11","number":"999999999"}
	}`

	t.Run("missing phone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)
		r := gin.New()
		r.POST("/v1/payments/pix", h.CreatePixPayment)

		body := `{"amount":2500,"customer_name":"Maria","customer_email":"maria@example.com","customer_document":"98765432100"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/payments/pix", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success returns the qr codes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)
		r := gin.New()
		r.POST("/v1/payments/pix", h.CreatePixPayment)

		uc.EXPECT().CreatePixPayment(gomock.Any(), gomock.Any()).
			Return(entities.Payment{
				ID:             30,
				GatewayOrderID: "or_pix",
				Amount:         2500,
				Status:         entities.PaymentStatusPending,
				PaymentMethod:  entities.PaymentMethodPix,
				PixQRCode:      "00020126360014BR.GOV.BCB.PIX",
				PixQRCodeURL:   "https://api.pagar.me/qr/1",
			}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/pix", bytes.NewBufferString(validBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var resp struct {
			Data struct {
				Pix struct {
					QRCode string `json:"qr_code"`
				} `json:"pix"`
			} `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp.Data.Pix.QRCode != "00020126360014BR.GOV.BCB.PIX" {
			t.Fatalf("unexpected response %+v", resp)
		}
	})
}

func TestPaymentHandler_GetPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc *mocks.MockIPaymentUseCase) *gin.Engine {
		h := NewPaymentHandler(uc)
		r := gin.New()
		r.GET("/v1/payments/:id", h.GetPayment)
		return r
	}

	t.Run("non-numeric id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := newRouter(uc)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/abc", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().GetPayment(gomock.Any(), uint(99)).
			Return(entities.Payment{}, usecase.ErrPaymentNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/99", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().GetPayment(gomock.Any(), uint(5)).
			Return(entities.Payment{ID: 5, GatewayOrderID: "or_5"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/5", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestPaymentHandler_ListAndStats(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("list forwards filters and pagination", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)
		r := gin.New()
		r.GET("/v1/payments", h.ListPayments)

		uc.EXPECT().ListPayments(gomock.Any(), interfaces.PaymentFilters{
			Status:        entities.PaymentStatusPaid,
			PaymentMethod: entities.PaymentMethodPix,
		}, 10, 20).Return([]entities.Payment{{ID: 1}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments?status=paid&payment_method=pix&limit=10&offset=20", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("stats", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)
		r := gin.New()
		r.GET("/v1/payments/stats", h.GetStats)

		uc.EXPECT().GetStats(gomock.Any()).
			Return(interfaces.PaymentStats{TotalPayments: 3, PaidCount: 2, PendingCount: 1}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/stats", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("divergence scan", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)
		r := gin.New()
		r.GET("/v1/payments/divergences", h.DivergenceScan)

		uc.EXPECT().DivergenceScan(gomock.Any()).
			Return(interfaces.DivergenceReport{MissingInMirror: []string{"or_1"}, MissingInBackup: []string{}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/divergences", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp struct {
			Data interfaces.DivergenceReport `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if len(resp.Data.MissingInMirror) != 1 || resp.Data.MissingInMirror[0] != "or_1" {
			t.Fatalf("unexpected report %+v", resp.Data)
		}
	})
}

func TestPaymentHandler_ValidateCardToken(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing token", func(t *testing.T) {
		h := NewPaymentHandler(nil)
		r := gin.New()
		r.POST("/v1/payments/validate-token", h.ValidateCardToken)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/validate-token", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("token echoed back", func(t *testing.T) {
		h := NewPaymentHandler(nil)
		r := gin.New()
		r.POST("/v1/payments/validate-token", h.ValidateCardToken)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/validate-token", bytes.NewBufferString(`{"card_token":"token_9"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
