package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus tracks the lifecycle of a payment as reported by Pagar.me.
//
// Status is the only field that changes after creation; webhook events drive
// every transition.

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// PaymentMethod is the collection method chosen at creation time.

type PaymentMethod string

const (
	PaymentMethodCreditCard PaymentMethod = "credit_card"
	PaymentMethodPix        PaymentMethod = "pix"
)

// Payment is the locally persisted record of a Pagar.me order.
//
// Storage model:
//   - backup store (PostgreSQL): authoritative row, ID is the local PK.
//   - mirror store (DynamoDB): differently-shaped copy keyed by MirrorID,
//     best-effort and optional. The two stores are not guaranteed consistent.
//
// GatewayResponse keeps the last raw Pagar.me payload for audit; it is
// overwritten (not appended) on every status update.

type Payment struct {
	ID             uint          `json:"id"`
	GatewayOrderID string        `json:"pagarme_id"`
	MirrorID       string        `json:"mirror_id,omitempty"`
	Amount         int64         `json:"amount"`
	Currency       string        `json:"currency"`
	PaymentMethod  PaymentMethod `json:"payment_method"`
	Status         PaymentStatus `json:"status"`
	Description    string        `json:"description,omitempty"`

	// credit_card only
	CardToken    string `json:"card_token,omitempty"`
	Installments int    `json:"installments,omitempty"`

	// pix only
	PixQRCode    string `json:"pix_qr_code,omitempty"`
	PixQRCodeURL string `json:"pix_qr_code_url,omitempty"`

	// Snapshot of the payer at payment time, not a live reference.
	CustomerName     string `json:"customer_name"`
	CustomerEmail    string `json:"customer_email"`
	CustomerDocument string `json:"customer_document"`

	// ProposalID is an application-supplied correlation key; when present it
	// is an alternative lookup key for reconciliation in the mirror store.
	ProposalID string `json:"proposal_id,omitempty"`

	GatewayResponse json.RawMessage `json:"pagarme_response,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NormalizeStatus maps a raw Pagar.me order/charge status onto the local
// status set. Unknown gateway statuses are treated as pending.
func NormalizeStatus(raw string) PaymentStatus {
	switch PaymentStatus(raw) {
	case PaymentStatusPaid, PaymentStatusFailed, PaymentStatusRefunded, PaymentStatusPending:
		return PaymentStatus(raw)
	case "canceled":
		return PaymentStatusFailed
	default:
		return PaymentStatusPending
	}
}
