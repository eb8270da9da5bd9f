package interfaces

import (
	"context"
	"encoding/json"

	"github.com/ltbreno/pagarme/internal/domain/entities"
)

// CreditCardOrderInput carries everything needed to open a card order at
// Pagar.me. Amount is in cents.

type CreditCardOrderInput struct {
	Amount           int64
	CardToken        string
	Installments     int
	CustomerName     string
	CustomerEmail    string
	CustomerDocument string
	Description      string
	ProposalID       string
}

// PixOrderInput carries everything needed to open a pix order at Pagar.me.

type PixOrderInput struct {
	Amount           int64
	CustomerName     string
	CustomerEmail    string
	CustomerDocument string
	CustomerPhone    PhoneInput
	Description      string
	ProposalID       string
}

type PhoneInput struct {
	CountryCode string
	AreaCode    string
	Number      string
}

// CardTokenInput tokenizes raw card data. Testing helper only; production
// tokens come from the frontend with the public key.

type CardTokenInput struct {
	Number     string
	HolderName string
	ExpMonth   int
	ExpYear    int
	CVV        string
}

type CardToken struct {
	ID             string
	Brand          string
	LastFourDigits string
	Raw            json.RawMessage
}

// IPaymentGateway abstracts the outbound Pagar.me REST API. The reconciliation
// core only consumes orders produced here; it never builds gateway payloads.
//
// Customer/card/recipient/transfer calls are pass-throughs: the gateway
// response body is returned raw for the handler to shape.

type IPaymentGateway interface {
	CreateCreditCardOrder(ctx context.Context, in CreditCardOrderInput) (entities.GatewayOrder, error)
	CreatePixOrder(ctx context.Context, in PixOrderInput) (entities.GatewayOrder, error)
	GetOrder(ctx context.Context, orderID string) (entities.GatewayOrder, error)
	CreateCardToken(ctx context.Context, in CardTokenInput) (CardToken, error)

	CreateCustomer(ctx context.Context, payload json.RawMessage) (json.RawMessage, error)
	GetCustomer(ctx context.Context, customerID string) (json.RawMessage, error)
	CreateCard(ctx context.Context, customerID string, payload json.RawMessage) (json.RawMessage, error)
	ListCards(ctx context.Context, customerID string) (json.RawMessage, error)

	CreateRecipient(ctx context.Context, payload json.RawMessage) (json.RawMessage, error)
	GetRecipient(ctx context.Context, recipientID string) (json.RawMessage, error)
	CreateTransfer(ctx context.Context, payload json.RawMessage) (json.RawMessage, error)
}
