package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	mock_interfaces "github.com/ltbreno/pagarme/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestCustomerUseCase_CreateCustomer(t *testing.T) {
	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewCustomerUseCase(nil)
		_, err := uc.CreateCustomer(context.Background(), json.RawMessage(`{}`))
		if !errors.Is(err, ErrGatewayNotConfigured) {
			t.Fatalf("expected ErrGatewayNotConfigured, got %v", err)
		}
	})

	t.Run("empty payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewCustomerUseCase(gateway)

		_, err := uc.CreateCustomer(context.Background(), nil)
		if !errors.Is(err, ErrInvalidCustomerPayload) {
			t.Fatalf("expected ErrInvalidCustomerPayload, got %v", err)
		}
	})

	t.Run("invalid json payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewCustomerUseCase(gateway)

		_, err := uc.CreateCustomer(context.Background(), json.RawMessage(`{`))
		if !errors.Is(err, ErrInvalidCustomerPayload) {
			t.Fatalf("expected ErrInvalidCustomerPayload, got %v", err)
		}
	})

	t.Run("payload passes through untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewCustomerUseCase(gateway)

		payload := json.RawMessage(`{"name":"João Silva","email":"joao@example.com"}`)
		result := json.RawMessage(`{"id":"cus_1","name":"João Silva"}`)
		gateway.EXPECT().CreateCustomer(gomock.Any(), payload).Return(result, nil)

		got, err := uc.CreateCustomer(context.Background(), payload)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !bytes.Equal(got, result) {
			t.Fatalf("unexpected result %s", got)
		}
	})
}

func TestCustomerUseCase_GetCustomer(t *testing.T) {
	t.Run("blank id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewCustomerUseCase(gateway)

		_, err := uc.GetCustomer(context.Background(), "   ")
		if !errors.Is(err, ErrInvalidCustomerID) {
			t.Fatalf("expected ErrInvalidCustomerID, got %v", err)
		}
	})

	t.Run("id is trimmed before the call", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewCustomerUseCase(gateway)

		gateway.EXPECT().GetCustomer(gomock.Any(), "cus_1").
			Return(json.RawMessage(`{"id":"cus_1"}`), nil)

		if _, err := uc.GetCustomer(context.Background(), " cus_1 "); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestCustomerUseCase_Cards(t *testing.T) {
	t.Run("create card validates id and payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewCustomerUseCase(gateway)

		if _, err := uc.CreateCard(context.Background(), "", json.RawMessage(`{}`)); !errors.Is(err, ErrInvalidCustomerID) {
			t.Fatalf("expected ErrInvalidCustomerID, got %v", err)
		}
		if _, err := uc.CreateCard(context.Background(), "cus_1", nil); !errors.Is(err, ErrInvalidCustomerPayload) {
			t.Fatalf("expected ErrInvalidCustomerPayload, got %v", err)
		}
	})

	t.Run("list cards delegates to the gateway", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewCustomerUseCase(gateway)

		gateway.EXPECT().ListCards(gomock.Any(), "cus_2").
			Return(json.RawMessage(`{"data":[]}`), nil)

		if _, err := uc.ListCards(context.Background(), "cus_2"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
