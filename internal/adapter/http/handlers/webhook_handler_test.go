package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ltbreno/pagarme/internal/adapter/http/handlers/mocks"
	"github.com/ltbreno/pagarme/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestWebhookHandler_HandleWebhook(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc *mocks.MockIWebhookUseCase) *gin.Engine {
		h := NewWebhookHandler(uc)
		r := gin.New()
		r.POST("/v1/webhooks/pagarme", h.HandleWebhook)
		return r
	}

	t.Run("malformed json is rejected with 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWebhookUseCase(ctrl)
		r := newRouter(uc)

		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/pagarme", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("envelope without id or type is rejected with 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWebhookUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().ProcessEvent(gomock.Any(), "", "order.paid", gomock.Any()).
			Return(usecase.WebhookOutcome{EventType: "order.paid"}, usecase.ErrInvalidWebhookEvent)

		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/pagarme", bytes.NewBufferString(`{"type":"order.paid","data":{"id":"or_1"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("processed event is acknowledged with 200", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWebhookUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().ProcessEvent(gomock.Any(), "evt_1", "order.paid", gomock.Any()).
			Return(usecase.WebhookOutcome{EventType: "order.paid", Handled: true, Applied: true}, nil)

		body := `{"id":"evt_1","type":"order.paid","data":{"id":"or_1","status":"paid"}}`
		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/pagarme", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp struct {
			Success   bool   `json:"success"`
			EventType string `json:"event_type"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if !resp.Success || resp.EventType != "order.paid" {
			t.Fatalf("unexpected response %+v", resp)
		}
	})

	t.Run("unrecognized event type is still acknowledged with 200", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWebhookUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().ProcessEvent(gomock.Any(), "evt_2", "customer.created", gomock.Any()).
			Return(usecase.WebhookOutcome{EventType: "customer.created"}, nil)

		body := `{"id":"evt_2","type":"customer.created","data":{}}`
		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/pagarme", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("internal failure is acknowledged with 200 and success false", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWebhookUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().ProcessEvent(gomock.Any(), "evt_3", "order.paid", gomock.Any()).
			Return(usecase.WebhookOutcome{EventType: "order.paid"}, errors.New("unexpected failure"))

		body := `{"id":"evt_3","type":"order.paid","data":{"id":"or_1"}}`
		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/pagarme", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp struct {
			Success bool `json:"success"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp.Success {
			t.Fatalf("expected success false, got %+v", resp)
		}
	})
}
