package payments

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ltbreno/pagarme/internal/usecase/interfaces"
)

func TestNewPagarmeGateway(t *testing.T) {
	t.Run("missing api key", func(t *testing.T) {
		_, err := NewPagarmeGateway("")
		if !errors.Is(err, ErrMissingPagarmeAPIKey) {
			t.Fatalf("expected ErrMissingPagarmeAPIKey, got %v", err)
		}
	})

	t.Run("base url from environment", func(t *testing.T) {
		t.Setenv("PAGARME_BASE_URL", "http://localhost:9999")
		g, err := NewPagarmeGateway("sk_test_123")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if g.baseURL != "http://localhost:9999" {
			t.Fatalf("unexpected base url %q", g.baseURL)
		}
	})
}

func TestPagarmeGateway_CreateCreditCardOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/orders" {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		wantAuth := "Basic " + base64.StdEncoding.EncodeToString([]byte("sk_test_123:"))
		if got := r.Header.Get("Authorization"); got != wantAuth {
			t.Fatalf("unexpected authorization header %q", got)
		}

		var payload struct {
			Items []struct {
				Amount int64 `json:"amount"`
			} `json:"items"`
			Payments []struct {
				PaymentMethod string `json:"payment_method"`
				CreditCard    struct {
					CardToken    string `json:"card_token"`
					Installments int    `json:"installments"`
				} `json:"credit_card"`
			} `json:"payments"`
			Metadata map[string]string `json:"metadata"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("undecodable payload: %v", err)
		}
		if payload.Items[0].Amount != 5000 {
			t.Fatalf("unexpected amount %d", payload.Items[0].Amount)
		}
		if payload.Payments[0].PaymentMethod != "credit_card" || payload.Payments[0].CreditCard.CardToken != "token_123" {
			t.Fatalf("unexpected payment config %+v", payload.Payments[0])
		}
		if payload.Metadata["proposal_id"] != "p-1" {
			t.Fatalf("proposal id not forwarded: %v", payload.Metadata)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"or_1","status":"paid","charges":[{"id":"ch_1","status":"paid","payment_method":"credit_card"}]}`))
	}))
	defer srv.Close()

	t.Setenv("PAGARME_BASE_URL", srv.URL)
	g, err := NewPagarmeGateway("sk_test_123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	order, err := g.CreateCreditCardOrder(context.Background(), interfaces.CreditCardOrderInput{
		Amount:           5000,
		CardToken:        "token_123",
		Installments:     2,
		CustomerName:     "João Silva",
		CustomerEmail:    "joao@example.com",
		CustomerDocument: "12345678901",
		ProposalID:       "p-1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.ID != "or_1" || order.Status != "paid" {
		t.Fatalf("unexpected order %+v", order)
	}
	if len(order.Raw) == 0 {
		t.Fatal("raw response not kept")
	}
}

func TestPagarmeGateway_CreatePixOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			Customer struct {
				Phones *struct {
					MobilePhone struct {
						CountryCode string `json:"country_code"`
					} `json:"mobile_phone"`
				} `json:"phones"`
			} `json:"customer"`
			Payments []struct {
				PaymentMethod string `json:"payment_method"`
				Pix           struct {
					ExpiresIn int `json:"expires_in"`
				} `json:"pix"`
			} `json:"payments"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("undecodable payload: %v", err)
		}
		if payload.Payments[0].PaymentMethod != "pix" || payload.Payments[0].Pix.ExpiresIn != 3600 {
			t.Fatalf("unexpected pix config %+v", payload.Payments[0])
		}
		if payload.Customer.Phones == nil || payload.Customer.Phones.MobilePhone.CountryCode != "55" {
			t.Fatalf("country code not defaulted: %+v", payload.Customer.Phones)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"or_pix","status":"pending","charges":[{"id":"ch_1","status":"pending","payment_method":"pix","last_transaction":{"qr_code":"qr-data","qr_code_url":"https://qr"}}]}`))
	}))
	defer srv.Close()

	t.Setenv("PAGARME_BASE_URL", srv.URL)
	g, err := NewPagarmeGateway("sk_test_123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	order, err := g.CreatePixOrder(context.Background(), interfaces.PixOrderInput{
		Amount:           2500,
		CustomerName:     "Maria Souza",
		CustomerEmail:    "maria@example.com",
		CustomerDocument: "98765432100",
		CustomerPhone:    interfaces.PhoneInput{AreaCode: "11", Number: "999999999"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	charge := order.PixCharge()
	if charge == nil || charge.LastTransaction == nil || charge.LastTransaction.QRCode != "qr-data" {
		t.Fatalf("unexpected order %+v", order)
	}
}

func TestPagarmeGateway_Errors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message":"invalid card"}`))
	}))
	defer srv.Close()

	t.Setenv("PAGARME_BASE_URL", srv.URL)
	g, err := NewPagarmeGateway("sk_test_123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = g.GetOrder(context.Background(), "or_1")
	var gatewayErr *GatewayError
	if !errors.As(err, &gatewayErr) {
		t.Fatalf("expected GatewayError, got %v", err)
	}
	if gatewayErr.Status != http.StatusUnprocessableEntity {
		t.Fatalf("unexpected status %d", gatewayErr.Status)
	}
}

func TestPagarmeGateway_Passthroughs(t *testing.T) {
	var gotPath, gotMethod string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"x"}`))
	}))
	defer srv.Close()

	t.Setenv("PAGARME_BASE_URL", srv.URL)
	g, err := NewPagarmeGateway("sk_test_123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cases := []struct {
		name       string
		call       func() error
		wantMethod string
		wantPath   string
	}{
		{"create customer", func() error {
			_, err := g.CreateCustomer(context.Background(), json.RawMessage(`{}`))
			return err
		}, http.MethodPost, "/customers"},
		{"get customer", func() error {
			_, err := g.GetCustomer(context.Background(), "cus_1")
			return err
		}, http.MethodGet, "/customers/cus_1"},
		{"create card", func() error {
			_, err := g.CreateCard(context.Background(), "cus_1", json.RawMessage(`{}`))
			return err
		}, http.MethodPost, "/customers/cus_1/cards"},
		{"list cards", func() error {
			_, err := g.ListCards(context.Background(), "cus_1")
			return err
		}, http.MethodGet, "/customers/cus_1/cards"},
		{"create recipient", func() error {
			_, err := g.CreateRecipient(context.Background(), json.RawMessage(`{}`))
			return err
		}, http.MethodPost, "/recipients"},
		{"get recipient", func() error {
			_, err := g.GetRecipient(context.Background(), "rp_1")
			return err
		}, http.MethodGet, "/recipients/rp_1"},
		{"create transfer", func() error {
			_, err := g.CreateTransfer(context.Background(), json.RawMessage(`{}`))
			return err
		}, http.MethodPost, "/transfers"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.call(); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if gotMethod != tc.wantMethod || gotPath != tc.wantPath {
				t.Fatalf("expected %s %s, got %s %s", tc.wantMethod, tc.wantPath, gotMethod, gotPath)
			}
		})
	}
}

func TestPagarmeGateway_CreateCardToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/tokens" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"token_1","card":{"brand":"visa","last_four_digits":"1111"}}`))
	}))
	defer srv.Close()

	t.Setenv("PAGARME_BASE_URL", srv.URL)
	g, err := NewPagarmeGateway("sk_test_123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	token, err := g.CreateCardToken(context.Background(), interfaces.CardTokenInput{
		Number:     "4111111111111111",
		HolderName: "JOAO SILVA",
		ExpMonth:   12,
		ExpYear:    2030,
		CVV:        "123",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token.ID != "token_1" || token.Brand != "visa" || token.LastFourDigits != "1111" {
		t.Fatalf("unexpected token %+v", token)
	}
}
