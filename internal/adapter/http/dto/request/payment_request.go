package request

import (
	"errors"
	"regexp"

	"github.com/ltbreno/pagarme/internal/usecase/interfaces"
)

var (
	ErrInvalidDocument = errors.New("document must have 11 (CPF) or 14 (CNPJ) digits")
	ErrInvalidPhone    = errors.New("invalid customer phone")
)

var (
	documentPattern = regexp.MustCompile(`^(\d{11}|\d{14})$`)
	areaCodePattern = regexp.MustCompile(`^\d{2}$`)
	phonePattern    = regexp.MustCompile(`^\d{8,9}$`)
	cardPattern     = regexp.MustCompile(`^\d{13,19}$`)
	cvvPattern      = regexp.MustCompile(`^\d{3,4}$`)
)

// CreditCardPaymentRequest is the payload for card payment creation. Amounts
// are in cents: minimum R$ 1,00, maximum R$ 1.000.000,00.

type CreditCardPaymentRequest struct {
	Amount           int64  `json:"amount" binding:"required,min=100,max=100000000"`
	CardToken        string `json:"card_token" binding:"required"`
	Installments     int    `json:"installments" binding:"omitempty,min=1,max=12"`
	CustomerName     string `json:"customer_name" binding:"required,min=2,max=255"`
	CustomerEmail    string `json:"customer_email" binding:"required,email"`
	CustomerDocument string `json:"customer_document" binding:"required"`
	Description      string `json:"description" binding:"omitempty,max=500"`
	ProposalID       string `json:"proposal_id"`
}

func (r CreditCardPaymentRequest) Validate() error {
	if !documentPattern.MatchString(r.CustomerDocument) {
		return ErrInvalidDocument
	}
	return nil
}

func (r CreditCardPaymentRequest) ToInput() interfaces.CreditCardOrderInput {
	installments := r.Installments
	if installments == 0 {
		installments = 1
	}
	return interfaces.CreditCardOrderInput{
		Amount:           r.Amount,
		CardToken:        r.CardToken,
		Installments:     installments,
		CustomerName:     r.CustomerName,
		CustomerEmail:    r.CustomerEmail,
		CustomerDocument: r.CustomerDocument,
		Description:      r.Description,
		ProposalID:       r.ProposalID,
	}
}

type CustomerPhoneRequest struct {
	CountryCode string `json:"country_code"`
	AreaCode    string `json:"area_code" binding:"required"`
	Number      string `json:"number" binding:"required"`
}

// PixPaymentRequest is the payload for pix payment creation. The phone is
// mandatory: Pagar.me requires it on pix orders.

type PixPaymentRequest struct {
	Amount           int64                `json:"amount" binding:"required,min=100,max=100000000"`
	CustomerName     string               `json:"customer_name" binding:"required,min=2,max=255"`
	CustomerEmail    string               `json:"customer_email" binding:"required,email"`
	CustomerDocument string               `json:"customer_document" binding:"required"`
	CustomerPhone    CustomerPhoneRequest `json:"customer_phone" binding:"required"`
	Description      string               `json:"description" binding:"omitempty,max=500"`
	ProposalID       string               `json:"proposal_id"`
}

func (r PixPaymentRequest) Validate() error {
	if !documentPattern.MatchString(r.CustomerDocument) {
		return ErrInvalidDocument
	}
	if !areaCodePattern.MatchString(r.CustomerPhone.AreaCode) || !phonePattern.MatchString(r.CustomerPhone.Number) {
		return ErrInvalidPhone
	}
	return nil
}

func (r PixPaymentRequest) ToInput() interfaces.PixOrderInput {
	countryCode := r.CustomerPhone.CountryCode
	if countryCode == "" {
		countryCode = "55"
	}
	return interfaces.PixOrderInput{
		Amount:           r.Amount,
		CustomerName:     r.CustomerName,
		CustomerEmail:    r.CustomerEmail,
		CustomerDocument: r.CustomerDocument,
		CustomerPhone: interfaces.PhoneInput{
			CountryCode: countryCode,
			AreaCode:    r.CustomerPhone.AreaCode,
			Number:      r.CustomerPhone.Number,
		},
		Description: r.Description,
		ProposalID:  r.ProposalID,
	}
}

// CardTokenRequest tokenizes raw card data. Testing helper only.

type CardTokenRequest struct {
	Number     string `json:"number" binding:"required"`
	HolderName string `json:"holder_name" binding:"required,min=2,max=255"`
	ExpMonth   int    `json:"exp_month" binding:"required,min=1,max=12"`
	ExpYear    int    `json:"exp_year" binding:"required"`
	CVV        string `json:"cvv" binding:"required"`
}

func (r CardTokenRequest) Validate() error {
	if !cardPattern.MatchString(r.Number) {
		return errors.New("card number must have 13 to 19 digits")
	}
	if !cvvPattern.MatchString(r.CVV) {
		return errors.New("cvv must have 3 or 4 digits")
	}
	return nil
}

func (r CardTokenRequest) ToInput() interfaces.CardTokenInput {
	return interfaces.CardTokenInput{
		Number:     r.Number,
		HolderName: r.HolderName,
		ExpMonth:   r.ExpMonth,
		ExpYear:    r.ExpYear,
		CVV:        r.CVV,
	}
}

// ValidateCardTokenRequest acknowledges a token produced on the frontend
// with the public key; the real validation happens when the order is placed.

type ValidateCardTokenRequest struct {
	CardToken string `json:"card_token" binding:"required"`
}
