package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/ltbreno/pagarme/internal/usecase/interfaces"
)

var (
	ErrInvalidCustomerID      = errors.New("invalid customer id")
	ErrInvalidCustomerPayload = errors.New("invalid customer payload")
)

// ICustomerUseCase proxies customer and card management to Pagar.me. Nothing
// is persisted locally; Pagar.me is the system of record for customers.

type ICustomerUseCase interface {
	CreateCustomer(ctx context.Context, payload json.RawMessage) (json.RawMessage, error)
	GetCustomer(ctx context.Context, customerID string) (json.RawMessage, error)
	CreateCard(ctx context.Context, customerID string, payload json.RawMessage) (json.RawMessage, error)
	ListCards(ctx context.Context, customerID string) (json.RawMessage, error)
}

type CustomerUseCase struct {
	gateway interfaces.IPaymentGateway
}

var _ ICustomerUseCase = (*CustomerUseCase)(nil)

func NewCustomerUseCase(gateway interfaces.IPaymentGateway) *CustomerUseCase {
	return &CustomerUseCase{gateway: gateway}
}

func (u *CustomerUseCase) CreateCustomer(ctx context.Context, payload json.RawMessage) (json.RawMessage, error) {
	if u.gateway == nil {
		return nil, ErrGatewayNotConfigured
	}
	if len(payload) == 0 || !json.Valid(payload) {
		return nil, ErrInvalidCustomerPayload
	}
	return u.gateway.CreateCustomer(ctx, payload)
}

func (u *CustomerUseCase) GetCustomer(ctx context.Context, customerID string) (json.RawMessage, error) {
	if u.gateway == nil {
		return nil, ErrGatewayNotConfigured
	}
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return nil, ErrInvalidCustomerID
	}
	return u.gateway.GetCustomer(ctx, customerID)
}

func (u *CustomerUseCase) CreateCard(ctx context.Context, customerID string, payload json.RawMessage) (json.RawMessage, error) {
	if u.gateway == nil {
		return nil, ErrGatewayNotConfigured
	}
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return nil, ErrInvalidCustomerID
	}
	if len(payload) == 0 || !json.Valid(payload) {
		return nil, ErrInvalidCustomerPayload
	}
	return u.gateway.CreateCard(ctx, customerID, payload)
}

func (u *CustomerUseCase) ListCards(ctx context.Context, customerID string) (json.RawMessage, error) {
	if u.gateway == nil {
		return nil, ErrGatewayNotConfigured
	}
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return nil, ErrInvalidCustomerID
	}
	return u.gateway.ListCards(ctx, customerID)
}
