package response

import (
	"github.com/ltbreno/pagarme/internal/domain/entities"
	"github.com/ltbreno/pagarme/internal/usecase/interfaces"
)

// APIResponse is the generic success envelope every endpoint answers with.

type APIResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

type CreditCardPaymentData struct {
	PaymentID      uint   `json:"payment_id"`
	GatewayOrderID string `json:"pagarme_order_id"`
	Status         string `json:"status"`
	Amount         int64  `json:"amount"`
	Installments   int    `json:"installments"`
}

func FromCreditCardPayment(p entities.Payment) CreditCardPaymentData {
	return CreditCardPaymentData{
		PaymentID:      p.ID,
		GatewayOrderID: p.GatewayOrderID,
		Status:         string(p.Status),
		Amount:         p.Amount,
		Installments:   p.Installments,
	}
}

type PixData struct {
	QRCode    string `json:"qr_code"`
	QRCodeURL string `json:"qr_code_url"`
	ExpiresAt string `json:"expires_at,omitempty"`
}

type PixPaymentData struct {
	PaymentID      uint    `json:"payment_id"`
	GatewayOrderID string  `json:"pagarme_order_id"`
	Status         string  `json:"status"`
	Amount         int64   `json:"amount"`
	Pix            PixData `json:"pix"`
}

func FromPixPayment(p entities.Payment, expiresAt string) PixPaymentData {
	return PixPaymentData{
		PaymentID:      p.ID,
		GatewayOrderID: p.GatewayOrderID,
		Status:         string(p.Status),
		Amount:         p.Amount,
		Pix: PixData{
			QRCode:    p.PixQRCode,
			QRCodeURL: p.PixQRCodeURL,
			ExpiresAt: expiresAt,
		},
	}
}

type Pagination struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

type PaymentListResponse struct {
	Success    bool               `json:"success"`
	Data       []entities.Payment `json:"data"`
	Pagination Pagination         `json:"pagination"`
}

type StatsCounts struct {
	Paid    int64 `json:"paid"`
	Pending int64 `json:"pending"`
	Failed  int64 `json:"failed"`
}

type StatsData struct {
	TotalPayments int64       `json:"total_payments"`
	TotalPaid     int64       `json:"total_paid"`
	TotalPending  int64       `json:"total_pending"`
	AverageAmount float64     `json:"average_amount"`
	Counts        StatsCounts `json:"counts"`
}

func FromStats(s interfaces.PaymentStats) StatsData {
	return StatsData{
		TotalPayments: s.TotalPayments,
		TotalPaid:     s.TotalPaidAmount,
		TotalPending:  s.TotalPendingAmount,
		AverageAmount: s.AverageAmount,
		Counts: StatsCounts{
			Paid:    s.PaidCount,
			Pending: s.PendingCount,
			Failed:  s.FailedCount,
		},
	}
}

type CardTokenData struct {
	Token string       `json:"token"`
	Card  CardSnapshot `json:"card"`
}

type CardSnapshot struct {
	Brand          string `json:"brand"`
	LastFourDigits string `json:"last_four_digits"`
}

func FromCardToken(t interfaces.CardToken) CardTokenData {
	return CardTokenData{
		Token: t.ID,
		Card: CardSnapshot{
			Brand:          t.Brand,
			LastFourDigits: t.LastFourDigits,
		},
	}
}
