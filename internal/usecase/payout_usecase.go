package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/ltbreno/pagarme/internal/usecase/interfaces"
)

var (
	ErrInvalidRecipientID      = errors.New("invalid recipient id")
	ErrInvalidRecipientPayload = errors.New("invalid recipient payload")
	ErrInvalidTransferPayload  = errors.New("invalid transfer payload")
)

// IPayoutUseCase proxies recipient and transfer management to Pagar.me.

type IPayoutUseCase interface {
	CreateRecipient(ctx context.Context, payload json.RawMessage) (json.RawMessage, error)
	GetRecipient(ctx context.Context, recipientID string) (json.RawMessage, error)
	CreateTransfer(ctx context.Context, payload json.RawMessage) (json.RawMessage, error)
}

type PayoutUseCase struct {
	gateway interfaces.IPaymentGateway
}

var _ IPayoutUseCase = (*PayoutUseCase)(nil)

func NewPayoutUseCase(gateway interfaces.IPaymentGateway) *PayoutUseCase {
	return &PayoutUseCase{gateway: gateway}
}

func (u *PayoutUseCase) CreateRecipient(ctx context.Context, payload json.RawMessage) (json.RawMessage, error) {
	if u.gateway == nil {
		return nil, ErrGatewayNotConfigured
	}
	if len(payload) == 0 || !json.Valid(payload) {
		return nil, ErrInvalidRecipientPayload
	}
	return u.gateway.CreateRecipient(ctx, payload)
}

func (u *PayoutUseCase) GetRecipient(ctx context.Context, recipientID string) (json.RawMessage, error) {
	if u.gateway == nil {
		return nil, ErrGatewayNotConfigured
	}
	recipientID = strings.TrimSpace(recipientID)
	if recipientID == "" {
		return nil, ErrInvalidRecipientID
	}
	return u.gateway.GetRecipient(ctx, recipientID)
}

func (u *PayoutUseCase) CreateTransfer(ctx context.Context, payload json.RawMessage) (json.RawMessage, error) {
	if u.gateway == nil {
		return nil, ErrGatewayNotConfigured
	}
	if len(payload) == 0 || !json.Valid(payload) {
		return nil, ErrInvalidTransferPayload
	}
	return u.gateway.CreateTransfer(ctx, payload)
}
