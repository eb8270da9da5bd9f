package interfaces

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/ltbreno/pagarme/internal/domain/entities"
)

// ErrPersistenceFailed is returned when a write could not land in either
// store. On the creation path it propagates to the caller; on the webhook
// path it is logged and swallowed.
var ErrPersistenceFailed = errors.New("payment persistence failed in both stores")

// UpdateOutcome reports which of the two stores accepted a status update.
// Callers on the webhook path treat any partial success as success; errors
// there are logged, never propagated.

type UpdateOutcome struct {
	BackupUpdated bool
	MirrorUpdated bool
}

// DivergenceReport lists gateway order ids present in one store but not the
// other, so an external job can repair eventual-consistency drift without
// touching the hot path.

type DivergenceReport struct {
	MissingInMirror []string `json:"missing_in_mirror"`
	MissingInBackup []string `json:"missing_in_backup"`
}

// IPaymentRepository is the single entry point for payment persistence. The
// implementation writes to both stores without a transaction: partial success
// is an accepted, permanent outcome.

type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetByID(ctx context.Context, id uint) (entities.Payment, error)
	GetByGatewayOrderID(ctx context.Context, gatewayOrderID string) (entities.Payment, error)
	List(ctx context.Context, f PaymentFilters, limit, offset int) ([]entities.Payment, error)
	Stats(ctx context.Context) (PaymentStats, error)
	Delete(ctx context.Context, id uint) error
	UpdateStatus(ctx context.Context, id uint, status entities.PaymentStatus, gatewayResponse json.RawMessage) (UpdateOutcome, error)
	UpdateStatusByProposalID(ctx context.Context, proposalID string, status entities.PaymentStatus, gatewayResponse json.RawMessage) error
	DivergenceScan(ctx context.Context) (DivergenceReport, error)
}
