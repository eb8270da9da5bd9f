package request

import (
	"errors"
	"testing"
)

func TestCreditCardPaymentRequest_Validate(t *testing.T) {
	valid := CreditCardPaymentRequest{
		Amount:           5000,
		CardToken:        "token_123",
		CustomerName:     "João Silva",
		CustomerEmail:    "joao@example.com",
		CustomerDocument: "12345678901",
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cnpj := valid
	cnpj.CustomerDocument = "12345678000195"
	if err := cnpj.Validate(); err != nil {
		t.Fatalf("cnpj must be accepted, got %v", err)
	}

	bad := valid
	bad.CustomerDocument = "123"
	if err := bad.Validate(); !errors.Is(err, ErrInvalidDocument) {
		t.Fatalf("expected ErrInvalidDocument, got %v", err)
	}

	formatted := valid
	formatted.CustomerDocument = "123.456.789-01"
	if err := formatted.Validate(); !errors.Is(err, ErrInvalidDocument) {
		t.Fatalf("expected ErrInvalidDocument for formatted document, got %v", err)
	}
}

func TestCreditCardPaymentRequest_ToInput(t *testing.T) {
	r := CreditCardPaymentRequest{
		Amount:           5000,
		CardToken:        "token_123",
		Installments:     6,
		CustomerName:     "João Silva",
		CustomerEmail:    "joao@example.com",
		CustomerDocument: "12345678901",
		Description:      "mensalidade",
		ProposalID:       "p-1",
	}
	in := r.ToInput()
	if in.Amount != 5000 || in.CardToken != "token_123" || in.Installments != 6 {
		t.Fatalf("unexpected input %+v", in)
	}
	if in.ProposalID != "p-1" || in.Description != "mensalidade" {
		t.Fatalf("unexpected input %+v", in)
	}
}

func TestPixPaymentRequest_Validate(t *testing.T) {
	valid := PixPaymentRequest{
		Amount:           2500,
		CustomerName:     "Maria Souza",
		CustomerEmail:    "maria@example.com",
		CustomerDocument: "98765432100",
		CustomerPhone:    CustomerPhoneRequest{CountryCode: "55", AreaCode: "11", Number: "999999999"},
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	badPhone := valid
	badPhone.CustomerPhone.Number = "99"
	if err := badPhone.Validate(); !errors.Is(err, ErrInvalidPhone) {
		t.Fatalf("expected ErrInvalidPhone, got %v", err)
	}

	badArea := valid
	badArea.CustomerPhone.AreaCode = "1"
	if err := badArea.Validate(); !errors.Is(err, ErrInvalidPhone) {
		t.Fatalf("expected ErrInvalidPhone, got %v", err)
	}

	badDoc := valid
	badDoc.CustomerDocument = "12"
	if err := badDoc.Validate(); !errors.Is(err, ErrInvalidDocument) {
		t.Fatalf("expected ErrInvalidDocument, got %v", err)
	}
}

func TestCardTokenRequest_Validate(t *testing.T) {
	valid := CardTokenRequest{
		Number:     "4111111111111111",
		HolderName: "JOAO SILVA",
		ExpMonth:   12,
		ExpYear:    2030,
		CVV:        "123",
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	shortNumber := valid
	shortNumber.Number = "4111"
	if err := shortNumber.Validate(); err == nil {
		t.Fatal("expected error for short card number")
	}

	badCVV := valid
	badCVV.CVV = "12"
	if err := badCVV.Validate(); err == nil {
		t.Fatal("expected error for short cvv")
	}
}
