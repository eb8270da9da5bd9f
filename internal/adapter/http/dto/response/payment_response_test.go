package response

import (
	"testing"

	"github.com/ltbreno/pagarme/internal/domain/entities"
	"github.com/ltbreno/pagarme/internal/usecase/interfaces"
)

func TestFromCreditCardPayment(t *testing.T) {
	p := entities.Payment{
		ID:             21,
		GatewayOrderID: "or_1",
		Amount:         5000,
		Status:         entities.PaymentStatusPaid,
		Installments:   2,
	}
	data := FromCreditCardPayment(p)
	if data.PaymentID != 21 || data.GatewayOrderID != "or_1" {
		t.Fatalf("unexpected data %+v", data)
	}
	if data.Status != "paid" || data.Amount != 5000 || data.Installments != 2 {
		t.Fatalf("unexpected data %+v", data)
	}
}

func TestFromPixPayment(t *testing.T) {
	p := entities.Payment{
		ID:             30,
		GatewayOrderID: "or_pix",
		Amount:         2500,
		Status:         entities.PaymentStatusPending,
		PixQRCode:      "qr-data",
		PixQRCodeURL:   "https://qr",
	}
	data := FromPixPayment(p, "2026-08-29T12:00:00Z")
	if data.Pix.QRCode != "qr-data" || data.Pix.QRCodeURL != "https://qr" {
		t.Fatalf("unexpected pix data %+v", data.Pix)
	}
	if data.Pix.ExpiresAt != "2026-08-29T12:00:00Z" {
		t.Fatalf("unexpected expiry %q", data.Pix.ExpiresAt)
	}
}

func TestFromStats(t *testing.T) {
	data := FromStats(interfaces.PaymentStats{
		TotalPayments:      10,
		TotalPaidAmount:    8000,
		TotalPendingAmount: 2000,
		AverageAmount:      1000,
		PaidCount:          8,
		PendingCount:       1,
		FailedCount:        1,
	})
	if data.TotalPayments != 10 || data.TotalPaid != 8000 || data.TotalPending != 2000 {
		t.Fatalf("unexpected data %+v", data)
	}
	if data.Counts.Paid != 8 || data.Counts.Pending != 1 || data.Counts.Failed != 1 {
		t.Fatalf("unexpected counts %+v", data.Counts)
	}
}

func TestWebhookResponses(t *testing.T) {
	ok := WebhookProcessed("order.paid")
	if !ok.Success || ok.EventType != "order.paid" || ok.Message == "" {
		t.Fatalf("unexpected response %+v", ok)
	}

	failed := WebhookFailed("charge.paid")
	if failed.Success || failed.EventType != "charge.paid" || failed.Error == "" {
		t.Fatalf("unexpected response %+v", failed)
	}
}
