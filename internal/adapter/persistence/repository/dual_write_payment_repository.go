package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/ltbreno/pagarme/internal/domain/entities"
	"github.com/ltbreno/pagarme/internal/usecase/interfaces"
)

// DualWritePaymentRepository is the single point of truth for payment
// persistence. Every write goes to both stores without a transaction or a
// retry: partial success is accepted and permanent, and the two stores may
// diverge forever. DivergenceScan exposes the drift for out-of-band repair.
//
// Precedence rules:
//   - create: mirror first (failure logged, non-fatal), backup always
//     attempted; fails only when both fail.
//   - reads by gateway order id: mirror preferred when configured, backup
//     fallback on any error or miss.
//   - status update: mirror keyed by the order id inside the raw response,
//     backup keyed by the local id, each attempted independently.

type DualWritePaymentRepository struct {
	backup interfaces.IBackupPaymentStore
	mirror interfaces.IMirrorPaymentStore
}

var _ interfaces.IPaymentRepository = (*DualWritePaymentRepository)(nil)

func NewDualWritePaymentRepository(backup interfaces.IBackupPaymentStore, mirror interfaces.IMirrorPaymentStore) *DualWritePaymentRepository {
	return &DualWritePaymentRepository{backup: backup, mirror: mirror}
}

func (r *DualWritePaymentRepository) Create(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	var mirrorRec entities.Payment
	mirrorOK := false
	if r.mirror.IsAvailable() {
		rec, err := r.mirror.Create(ctx, p)
		if err != nil {
			log.Printf("[payment][repository] mirror create failed pagarme_id=%s err=%v", p.GatewayOrderID, err)
		} else if rec.MirrorID != "" {
			mirrorRec = rec
			mirrorOK = true
		}
	}

	backupRec, backupErr := r.backup.Create(ctx, p)
	if backupErr != nil {
		log.Printf("[payment][repository] backup create failed pagarme_id=%s err=%v", p.GatewayOrderID, backupErr)
	}
	backupOK := backupErr == nil

	if !backupOK && !mirrorOK {
		return entities.Payment{}, fmt.Errorf("%w: %v", interfaces.ErrPersistenceFailed, backupErr)
	}

	if mirrorOK {
		result := mirrorRec
		if backupOK {
			result.ID = backupRec.ID
			result.CreatedAt = backupRec.CreatedAt
			result.UpdatedAt = backupRec.UpdatedAt
		}
		return result, nil
	}
	return backupRec, nil
}

func (r *DualWritePaymentRepository) GetByID(ctx context.Context, id uint) (entities.Payment, error) {
	return r.backup.GetByID(ctx, id)
}

func (r *DualWritePaymentRepository) GetByGatewayOrderID(ctx context.Context, gatewayOrderID string) (entities.Payment, error) {
	if r.mirror.IsAvailable() {
		rec, err := r.mirror.GetByGatewayOrderID(ctx, gatewayOrderID)
		if err != nil {
			log.Printf("[payment][repository] mirror lookup failed pagarme_id=%s err=%v", gatewayOrderID, err)
		} else if rec.MirrorID != "" {
			return rec, nil
		}
	}
	return r.backup.GetByGatewayOrderID(ctx, gatewayOrderID)
}

func (r *DualWritePaymentRepository) List(ctx context.Context, f interfaces.PaymentFilters, limit, offset int) ([]entities.Payment, error) {
	return r.backup.List(ctx, f, limit, offset)
}

func (r *DualWritePaymentRepository) Stats(ctx context.Context) (interfaces.PaymentStats, error) {
	return r.backup.Stats(ctx)
}

func (r *DualWritePaymentRepository) Delete(ctx context.Context, id uint) error {
	return r.backup.Delete(ctx, id)
}

// UpdateStatus patches both stores independently. The error return is nil as
// long as at least one store took the update; callers on the webhook path
// ignore it after logging either way.
func (r *DualWritePaymentRepository) UpdateStatus(ctx context.Context, id uint, status entities.PaymentStatus, gatewayResponse json.RawMessage) (interfaces.UpdateOutcome, error) {
	outcome := interfaces.UpdateOutcome{}

	if r.mirror.IsAvailable() {
		if orderID := gatewayOrderIDFromResponse(gatewayResponse); orderID != "" {
			rec, err := r.mirror.UpdateStatusByGatewayOrderID(ctx, orderID, status, gatewayResponse)
			if err != nil {
				log.Printf("[payment][repository] mirror status update failed pagarme_id=%s err=%v", orderID, err)
			} else if rec.MirrorID != "" {
				outcome.MirrorUpdated = true
			} else {
				log.Printf("[payment][repository] mirror has no row for pagarme_id=%s", orderID)
			}
		}
	}

	rec, backupErr := r.backup.UpdateStatus(ctx, id, status, gatewayResponse)
	if backupErr != nil {
		log.Printf("[payment][repository] backup status update failed payment_id=%d err=%v", id, backupErr)
	} else if rec.ID != 0 {
		outcome.BackupUpdated = true
	}

	if backupErr != nil && !outcome.MirrorUpdated {
		return outcome, fmt.Errorf("%w: %v", interfaces.ErrPersistenceFailed, backupErr)
	}
	return outcome, nil
}

// UpdateStatusByProposalID targets only the mirror: it covers rows whose
// creation-time write diverged from the backup store (different keys).
func (r *DualWritePaymentRepository) UpdateStatusByProposalID(ctx context.Context, proposalID string, status entities.PaymentStatus, gatewayResponse json.RawMessage) error {
	if !r.mirror.IsAvailable() {
		return nil
	}

	rec, err := r.mirror.UpdateStatusByProposalID(ctx, proposalID, status, gatewayResponse)
	if err != nil {
		return err
	}
	if rec.MirrorID == "" {
		log.Printf("[payment][repository] mirror has no row for proposal_id=%s", proposalID)
	}
	return nil
}

// DivergenceScan enumerates gateway order ids present in one store but not
// the other. With the mirror unconfigured there is nothing to compare.
func (r *DualWritePaymentRepository) DivergenceScan(ctx context.Context) (interfaces.DivergenceReport, error) {
	report := interfaces.DivergenceReport{
		MissingInMirror: []string{},
		MissingInBackup: []string{},
	}
	if !r.mirror.IsAvailable() {
		return report, nil
	}

	backupIDs, err := r.backup.ListGatewayOrderIDs(ctx)
	if err != nil {
		return report, err
	}
	mirrorIDs, err := r.mirror.ListGatewayOrderIDs(ctx)
	if err != nil {
		return report, err
	}

	inBackup := make(map[string]bool, len(backupIDs))
	for _, id := range backupIDs {
		inBackup[id] = true
	}
	inMirror := make(map[string]bool, len(mirrorIDs))
	for _, id := range mirrorIDs {
		inMirror[id] = true
	}

	for id := range inBackup {
		if !inMirror[id] {
			report.MissingInMirror = append(report.MissingInMirror, id)
		}
	}
	for id := range inMirror {
		if !inBackup[id] {
			report.MissingInBackup = append(report.MissingInBackup, id)
		}
	}
	sort.Strings(report.MissingInMirror)
	sort.Strings(report.MissingInBackup)
	return report, nil
}

// gatewayOrderIDFromResponse digs the order id out of a raw gateway payload:
// charge payloads carry it nested under "order", order payloads carry it as
// the top-level id (Pagar.me order ids have the or_ prefix).
func gatewayOrderIDFromResponse(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var probe struct {
		ID    string `json:"id"`
		Order *struct {
			ID string `json:"id"`
		} `json:"order"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return ""
	}
	if probe.Order != nil && probe.Order.ID != "" {
		return probe.Order.ID
	}
	if strings.HasPrefix(probe.ID, "or_") {
		return probe.ID
	}
	return ""
}
