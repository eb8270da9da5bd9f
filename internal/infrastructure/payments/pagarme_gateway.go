package payments

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/ltbreno/pagarme/internal/domain/entities"
	"github.com/ltbreno/pagarme/internal/usecase/interfaces"
)

var ErrMissingPagarmeAPIKey = errors.New("missing PAGARME_API_KEY")

const defaultBaseURL = "https://api.pagar.me/core/v5"

// GatewayError carries the HTTP status and raw body of a failed Pagar.me
// call, so callers can distinguish 4xx rejections from transport failures.

type GatewayError struct {
	Status int
	Body   string
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("pagarme api status %d: %s", e.Status, e.Body)
}

// PagarmeGateway talks to the Pagar.me core v5 REST API with Basic auth
// (secret key as username, empty password). Timeouts are whatever the
// default transport provides; no retry is layered on top.

type PagarmeGateway struct {
	baseURL string
	authz   string
	http    *http.Client
}

var _ interfaces.IPaymentGateway = (*PagarmeGateway)(nil)

func NewPagarmeGateway(apiKey string) (*PagarmeGateway, error) {
	if apiKey == "" {
		log.Printf("[gateway][pagarme] missing PAGARME_API_KEY")
		return nil, ErrMissingPagarmeAPIKey
	}

	baseURL := os.Getenv("PAGARME_BASE_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	log.Printf("[gateway][pagarme] client initialized base_url=%s", baseURL)

	return &PagarmeGateway{
		baseURL: baseURL,
		authz:   "Basic " + base64.StdEncoding.EncodeToString([]byte(apiKey+":")),
		http:    &http.Client{Timeout: 30 * time.Second},
	}, nil
}

type orderItem struct {
	Amount      int64  `json:"amount"`
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
}

type orderCustomer struct {
	Name     string       `json:"name"`
	Email    string       `json:"email"`
	Document string       `json:"document"`
	Type     string       `json:"type"`
	Phones   *orderPhones `json:"phones,omitempty"`
}

type orderPhones struct {
	MobilePhone orderPhone `json:"mobile_phone"`
}

type orderPhone struct {
	CountryCode string `json:"country_code"`
	AreaCode    string `json:"area_code"`
	Number      string `json:"number"`
}

type orderPayment struct {
	PaymentMethod string            `json:"payment_method"`
	CreditCard    *creditCardConfig `json:"credit_card,omitempty"`
	Pix           *pixConfig        `json:"pix,omitempty"`
}

type creditCardConfig struct {
	CardToken    string `json:"card_token"`
	Installments int    `json:"installments"`
}

type pixConfig struct {
	ExpiresIn int `json:"expires_in"`
}

type orderRequest struct {
	Items    []orderItem       `json:"items"`
	Customer orderCustomer     `json:"customer"`
	Payments []orderPayment    `json:"payments"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

func (g *PagarmeGateway) CreateCreditCardOrder(ctx context.Context, in interfaces.CreditCardOrderInput) (entities.GatewayOrder, error) {
	description := in.Description
	if description == "" {
		description = "Pagamento"
	}
	installments := in.Installments
	if installments < 1 {
		installments = 1
	}

	payload := orderRequest{
		Items: []orderItem{{Amount: in.Amount, Description: description, Quantity: 1}},
		Customer: orderCustomer{
			Name:     in.CustomerName,
			Email:    in.CustomerEmail,
			Document: in.CustomerDocument,
			Type:     "individual",
		},
		Payments: []orderPayment{{
			PaymentMethod: "credit_card",
			CreditCard:    &creditCardConfig{CardToken: in.CardToken, Installments: installments},
		}},
	}
	if in.ProposalID != "" {
		payload.Metadata = map[string]string{"proposal_id": in.ProposalID}
	}

	return g.postOrder(ctx, payload)
}

func (g *PagarmeGateway) CreatePixOrder(ctx context.Context, in interfaces.PixOrderInput) (entities.GatewayOrder, error) {
	description := in.Description
	if description == "" {
		description = "Pagamento PIX"
	}
	countryCode := in.CustomerPhone.CountryCode
	if countryCode == "" {
		countryCode = "55"
	}

	payload := orderRequest{
		Items: []orderItem{{Amount: in.Amount, Description: description, Quantity: 1}},
		Customer: orderCustomer{
			Name:     in.CustomerName,
			Email:    in.CustomerEmail,
			Document: in.CustomerDocument,
			Type:     "individual",
			Phones: &orderPhones{MobilePhone: orderPhone{
				CountryCode: countryCode,
				AreaCode:    in.CustomerPhone.AreaCode,
				Number:      in.CustomerPhone.Number,
			}},
		},
		Payments: []orderPayment{{
			PaymentMethod: "pix",
			Pix:           &pixConfig{ExpiresIn: 3600},
		}},
	}
	if in.ProposalID != "" {
		payload.Metadata = map[string]string{"proposal_id": in.ProposalID}
	}

	return g.postOrder(ctx, payload)
}

func (g *PagarmeGateway) GetOrder(ctx context.Context, orderID string) (entities.GatewayOrder, error) {
	raw, err := g.do(ctx, http.MethodGet, "/orders/"+orderID, nil)
	if err != nil {
		return entities.GatewayOrder{}, err
	}
	return decodeOrder(raw)
}

func (g *PagarmeGateway) postOrder(ctx context.Context, payload orderRequest) (entities.GatewayOrder, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return entities.GatewayOrder{}, err
	}
	raw, err := g.do(ctx, http.MethodPost, "/orders", body)
	if err != nil {
		return entities.GatewayOrder{}, err
	}
	return decodeOrder(raw)
}

func decodeOrder(raw json.RawMessage) (entities.GatewayOrder, error) {
	var order entities.GatewayOrder
	if err := json.Unmarshal(raw, &order); err != nil {
		return entities.GatewayOrder{}, err
	}
	order.Raw = raw
	return order, nil
}

func (g *PagarmeGateway) CreateCardToken(ctx context.Context, in interfaces.CardTokenInput) (interfaces.CardToken, error) {
	payload := map[string]any{
		"card": map[string]any{
			"number":      in.Number,
			"holder_name": in.HolderName,
			"exp_month":   in.ExpMonth,
			"exp_year":    in.ExpYear,
			"cvv":         in.CVV,
			"billing_address": map[string]any{
				"line_1":   "Rua Exemplo, 123",
				"zip_code": "01234000",
				"city":     "São Paulo",
				"state":    "SP",
				"country":  "BR",
			},
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return interfaces.CardToken{}, err
	}

	raw, err := g.do(ctx, http.MethodPost, "/tokens", body)
	if err != nil {
		return interfaces.CardToken{}, err
	}

	var parsed struct {
		ID   string `json:"id"`
		Card struct {
			Brand          string `json:"brand"`
			LastFourDigits string `json:"last_four_digits"`
		} `json:"card"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return interfaces.CardToken{}, err
	}
	return interfaces.CardToken{
		ID:             parsed.ID,
		Brand:          parsed.Card.Brand,
		LastFourDigits: parsed.Card.LastFourDigits,
		Raw:            raw,
	}, nil
}

func (g *PagarmeGateway) CreateCustomer(ctx context.Context, payload json.RawMessage) (json.RawMessage, error) {
	return g.do(ctx, http.MethodPost, "/customers", payload)
}

func (g *PagarmeGateway) GetCustomer(ctx context.Context, customerID string) (json.RawMessage, error) {
	return g.do(ctx, http.MethodGet, "/customers/"+customerID, nil)
}

func (g *PagarmeGateway) CreateCard(ctx context.Context, customerID string, payload json.RawMessage) (json.RawMessage, error) {
	return g.do(ctx, http.MethodPost, "/customers/"+customerID+"/cards", payload)
}

func (g *PagarmeGateway) ListCards(ctx context.Context, customerID string) (json.RawMessage, error) {
	return g.do(ctx, http.MethodGet, "/customers/"+customerID+"/cards", nil)
}

func (g *PagarmeGateway) CreateRecipient(ctx context.Context, payload json.RawMessage) (json.RawMessage, error) {
	return g.do(ctx, http.MethodPost, "/recipients", payload)
}

func (g *PagarmeGateway) GetRecipient(ctx context.Context, recipientID string) (json.RawMessage, error) {
	return g.do(ctx, http.MethodGet, "/recipients/"+recipientID, nil)
}

func (g *PagarmeGateway) CreateTransfer(ctx context.Context, payload json.RawMessage) (json.RawMessage, error) {
	return g.do(ctx, http.MethodPost, "/transfers", payload)
}

func (g *PagarmeGateway) do(ctx context.Context, method, path string, body []byte) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", g.authz)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.http.Do(req)
	if err != nil {
		log.Printf("[gateway][pagarme] %s %s transport error err=%v", method, path, err)
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	log.Printf("[gateway][pagarme] %s %s status=%d", method, path, resp.StatusCode)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &GatewayError{Status: resp.StatusCode, Body: string(respBody)}
	}
	return respBody, nil
}
