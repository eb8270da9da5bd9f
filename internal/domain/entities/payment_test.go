package entities

import "testing"

func TestNormalizeStatus(t *testing.T) {
	cases := []struct {
		raw  string
		want PaymentStatus
	}{
		{"paid", PaymentStatusPaid},
		{"pending", PaymentStatusPending},
		{"failed", PaymentStatusFailed},
		{"refunded", PaymentStatusRefunded},
		{"canceled", PaymentStatusFailed},
		{"processing", PaymentStatusPending},
		{"", PaymentStatusPending},
		{"something_new", PaymentStatusPending},
	}
	for _, tc := range cases {
		if got := NormalizeStatus(tc.raw); got != tc.want {
			t.Fatalf("NormalizeStatus(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestGatewayOrder_PixCharge(t *testing.T) {
	order := GatewayOrder{Charges: []GatewayCharge{
		{ID: "ch_1", PaymentMethod: "credit_card"},
		{ID: "ch_2", PaymentMethod: "pix"},
	}}
	charge := order.PixCharge()
	if charge == nil || charge.ID != "ch_2" {
		t.Fatalf("expected pix charge ch_2, got %+v", charge)
	}

	empty := GatewayOrder{}
	if empty.PixCharge() != nil {
		t.Fatal("expected nil for order without charges")
	}
}

func TestGatewayOrder_FirstCharge(t *testing.T) {
	order := GatewayOrder{Charges: []GatewayCharge{{ID: "ch_1"}, {ID: "ch_2"}}}
	if charge := order.FirstCharge(); charge == nil || charge.ID != "ch_1" {
		t.Fatalf("expected first charge ch_1, got %+v", charge)
	}

	empty := GatewayOrder{}
	if empty.FirstCharge() != nil {
		t.Fatal("expected nil for order without charges")
	}
}
