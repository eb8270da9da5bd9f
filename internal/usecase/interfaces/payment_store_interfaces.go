package interfaces

import (
	"context"
	"encoding/json"

	"github.com/ltbreno/pagarme/internal/domain/entities"
)

// PaymentFilters narrows List queries. Zero values mean "no filter".

type PaymentFilters struct {
	Status        entities.PaymentStatus
	PaymentMethod entities.PaymentMethod
}

// PaymentStats aggregates the backup store rows for the stats endpoint.

type PaymentStats struct {
	TotalPayments      int64   `json:"total_payments"`
	TotalPaidAmount    int64   `json:"total_paid"`
	TotalPendingAmount int64   `json:"total_pending"`
	AverageAmount      float64 `json:"average_amount"`
	PaidCount          int64   `json:"paid_count"`
	PendingCount       int64   `json:"pending_count"`
	FailedCount        int64   `json:"failed_count"`
}

// IBackupPaymentStore abstracts the relational (PostgreSQL) payment store.
// It holds the authoritative local rows and assigns the local payment ID.
//
// Lookup methods return a zero-ID Payment when nothing matches.

type IBackupPaymentStore interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetByID(ctx context.Context, id uint) (entities.Payment, error)
	GetByGatewayOrderID(ctx context.Context, gatewayOrderID string) (entities.Payment, error)
	List(ctx context.Context, f PaymentFilters, limit, offset int) ([]entities.Payment, error)
	UpdateStatus(ctx context.Context, id uint, status entities.PaymentStatus, gatewayResponse json.RawMessage) (entities.Payment, error)
	UpdatePixData(ctx context.Context, id uint, qrCode, qrCodeURL string) (entities.Payment, error)
	Delete(ctx context.Context, id uint) error
	Stats(ctx context.Context) (PaymentStats, error)
	ListGatewayOrderIDs(ctx context.Context) ([]string, error)
}

// IMirrorPaymentStore abstracts the secondary record store (DynamoDB).
//
// The mirror holds a differently-shaped copy of each payment and may be
// missing rows the backup store has (and vice versa). IsAvailable is a pure
// configuration check, not a connectivity probe; when it reports false every
// other method is expected to be skipped by callers.

type IMirrorPaymentStore interface {
	IsAvailable() bool
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetByGatewayOrderID(ctx context.Context, gatewayOrderID string) (entities.Payment, error)
	UpdateStatusByGatewayOrderID(ctx context.Context, gatewayOrderID string, status entities.PaymentStatus, gatewayResponse json.RawMessage) (entities.Payment, error)
	UpdateStatusByProposalID(ctx context.Context, proposalID string, status entities.PaymentStatus, gatewayResponse json.RawMessage) (entities.Payment, error)
	ListGatewayOrderIDs(ctx context.Context) ([]string, error)
}
