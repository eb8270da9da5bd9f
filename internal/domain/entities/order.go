package entities

import "encoding/json"

// GatewayOrder is the subset of the Pagar.me order response the service
// relies on. The full payload is kept raw on Payment.GatewayResponse.

type GatewayOrder struct {
	ID       string            `json:"id"`
	Status   string            `json:"status"`
	Charges  []GatewayCharge   `json:"charges"`
	Metadata map[string]string `json:"metadata,omitempty"`

	Raw json.RawMessage `json:"-"`
}

type GatewayCharge struct {
	ID              string              `json:"id"`
	Status          string              `json:"status"`
	PaymentMethod   string              `json:"payment_method"`
	LastTransaction *GatewayTransaction `json:"last_transaction,omitempty"`
}

type GatewayTransaction struct {
	QRCode    string       `json:"qr_code,omitempty"`
	QRCodeURL string       `json:"qr_code_url,omitempty"`
	ExpiresAt string       `json:"expires_at,omitempty"`
	Card      *GatewayCard `json:"card,omitempty"`
}

type GatewayCard struct {
	Brand          string `json:"brand"`
	LastFourDigits string `json:"last_four_digits"`
}

// PixCharge returns the first pix charge on the order, if any.
func (o GatewayOrder) PixCharge() *GatewayCharge {
	for i := range o.Charges {
		if o.Charges[i].PaymentMethod == string(PaymentMethodPix) {
			return &o.Charges[i]
		}
	}
	return nil
}

// FirstCharge returns the first charge on the order, if any. The mirror store
// extracts card brand/last-four from it.
func (o GatewayOrder) FirstCharge() *GatewayCharge {
	if len(o.Charges) == 0 {
		return nil
	}
	return &o.Charges[0]
}
