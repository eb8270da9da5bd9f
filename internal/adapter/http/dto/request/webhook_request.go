package request

import "encoding/json"

// WebhookRequest is the Pagar.me event envelope. Data is kept raw: the
// reconciliation engine decides how much of it to decode, and the full
// payload is persisted for audit as-is.

type WebhookRequest struct {
	ID   string          `json:"id"`
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}
