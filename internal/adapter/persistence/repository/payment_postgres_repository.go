package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/ltbreno/pagarme/internal/domain/entities"
	"github.com/ltbreno/pagarme/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type paymentRow struct {
	ID               uint            `gorm:"primaryKey"`
	GatewayOrderID   string          `gorm:"column:pagarme_id;index"`
	Amount           int64           `gorm:"not null"`
	Currency         string          `gorm:"type:varchar(3);default:BRL"`
	PaymentMethod    string          `gorm:"type:varchar(20);index"`
	Status           string          `gorm:"type:varchar(20);index"`
	Description      string          `gorm:"type:varchar(500)"`
	CardToken        string          `gorm:"type:varchar(255)"`
	Installments     int             `gorm:"default:1"`
	PixQRCode        string          `gorm:"column:pix_qr_code;type:text"`
	PixQRCodeURL     string          `gorm:"column:pix_qr_code_url;type:text"`
	CustomerName     string          `gorm:"type:varchar(255)"`
	CustomerEmail    string          `gorm:"type:varchar(255)"`
	CustomerDocument string          `gorm:"type:varchar(14)"`
	ProposalID       string          `gorm:"index"`
	GatewayResponse  json.RawMessage `gorm:"column:pagarme_response;type:jsonb"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (paymentRow) TableName() string { return "payments" }

// PaymentPostgresRepository is the backup store: the authoritative local
// payment rows. Append-only create plus status-patch update; the local ID is
// assigned here.
//
// Lookup methods return a zero-ID Payment (nil error) when nothing matches,
// same contract as the mirror store.

type PaymentPostgresRepository struct {
	db *gorm.DB
}

var _ interfaces.IBackupPaymentStore = (*PaymentPostgresRepository)(nil)

func NewPaymentPostgresRepository(db *gorm.DB) *PaymentPostgresRepository {
	return &PaymentPostgresRepository{db: db}
}

// Migrate creates/updates the payments table.
func (r *PaymentPostgresRepository) Migrate() error {
	return r.db.AutoMigrate(&paymentRow{})
}

func (r *PaymentPostgresRepository) Create(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	row := toPaymentRow(p)
	if row.Currency == "" {
		row.Currency = "BRL"
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentRow(row), nil
}

func (r *PaymentPostgresRepository) GetByID(ctx context.Context, id uint) (entities.Payment, error) {
	var row paymentRow
	err := r.db.WithContext(ctx).First(&row, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Payment{}, nil
	}
	if err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentRow(row), nil
}

func (r *PaymentPostgresRepository) GetByGatewayOrderID(ctx context.Context, gatewayOrderID string) (entities.Payment, error) {
	var row paymentRow
	err := r.db.WithContext(ctx).Where("pagarme_id = ?", gatewayOrderID).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Payment{}, nil
	}
	if err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentRow(row), nil
}

func (r *PaymentPostgresRepository) List(ctx context.Context, f interfaces.PaymentFilters, limit, offset int) ([]entities.Payment, error) {
	if limit <= 0 {
		limit = 50
	}

	q := r.db.WithContext(ctx).Model(&paymentRow{}).Order("created_at DESC").Limit(limit).Offset(offset)
	if f.Status != "" {
		q = q.Where("status = ?", string(f.Status))
	}
	if f.PaymentMethod != "" {
		q = q.Where("payment_method = ?", string(f.PaymentMethod))
	}

	var rows []paymentRow
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}

	payments := make([]entities.Payment, 0, len(rows))
	for _, row := range rows {
		payments = append(payments, fromPaymentRow(row))
	}
	return payments, nil
}

func (r *PaymentPostgresRepository) UpdateStatus(ctx context.Context, id uint, status entities.PaymentStatus, gatewayResponse json.RawMessage) (entities.Payment, error) {
	updates := map[string]any{"status": string(status)}
	if len(gatewayResponse) > 0 {
		updates["pagarme_response"] = gatewayResponse
	}

	res := r.db.WithContext(ctx).Model(&paymentRow{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return entities.Payment{}, res.Error
	}
	if res.RowsAffected == 0 {
		return entities.Payment{}, nil
	}
	return r.GetByID(ctx, id)
}

func (r *PaymentPostgresRepository) UpdatePixData(ctx context.Context, id uint, qrCode, qrCodeURL string) (entities.Payment, error) {
	res := r.db.WithContext(ctx).Model(&paymentRow{}).Where("id = ?", id).Updates(map[string]any{
		"pix_qr_code":     qrCode,
		"pix_qr_code_url": qrCodeURL,
	})
	if res.Error != nil {
		return entities.Payment{}, res.Error
	}
	if res.RowsAffected == 0 {
		return entities.Payment{}, nil
	}
	return r.GetByID(ctx, id)
}

func (r *PaymentPostgresRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&paymentRow{}, id).Error
}

func (r *PaymentPostgresRepository) Stats(ctx context.Context) (interfaces.PaymentStats, error) {
	var agg struct {
		TotalPayments      int64
		TotalPaidAmount    int64
		TotalPendingAmount int64
		AverageAmount      float64
		PaidCount          int64
		PendingCount       int64
		FailedCount        int64
	}

	err := r.db.WithContext(ctx).Model(&paymentRow{}).Select(`
		COUNT(*) AS total_payments,
		COALESCE(SUM(CASE WHEN status = 'paid' THEN amount ELSE 0 END), 0) AS total_paid_amount,
		COALESCE(SUM(CASE WHEN status = 'pending' THEN amount ELSE 0 END), 0) AS total_pending_amount,
		COALESCE(AVG(amount), 0) AS average_amount,
		COALESCE(SUM(CASE WHEN status = 'paid' THEN 1 ELSE 0 END), 0) AS paid_count,
		COALESCE(SUM(CASE WHEN status = 'pending' THEN 1 ELSE 0 END), 0) AS pending_count,
		COALESCE(SUM(CASE WHEN status = 'failed' THEN 1 ELSE 0 END), 0) AS failed_count`).
		Scan(&agg).Error
	if err != nil {
		return interfaces.PaymentStats{}, err
	}

	return interfaces.PaymentStats{
		TotalPayments:      agg.TotalPayments,
		TotalPaidAmount:    agg.TotalPaidAmount,
		TotalPendingAmount: agg.TotalPendingAmount,
		AverageAmount:      agg.AverageAmount,
		PaidCount:          agg.PaidCount,
		PendingCount:       agg.PendingCount,
		FailedCount:        agg.FailedCount,
	}, nil
}

func (r *PaymentPostgresRepository) ListGatewayOrderIDs(ctx context.Context) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).Model(&paymentRow{}).
		Where("pagarme_id <> ''").
		Pluck("pagarme_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func toPaymentRow(p entities.Payment) paymentRow {
	return paymentRow{
		ID:               p.ID,
		GatewayOrderID:   p.GatewayOrderID,
		Amount:           p.Amount,
		Currency:         p.Currency,
		PaymentMethod:    string(p.PaymentMethod),
		Status:           string(p.Status),
		Description:      p.Description,
		CardToken:        p.CardToken,
		Installments:     p.Installments,
		PixQRCode:        p.PixQRCode,
		PixQRCodeURL:     p.PixQRCodeURL,
		CustomerName:     p.CustomerName,
		CustomerEmail:    p.CustomerEmail,
		CustomerDocument: p.CustomerDocument,
		ProposalID:       p.ProposalID,
		GatewayResponse:  p.GatewayResponse,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

func fromPaymentRow(row paymentRow) entities.Payment {
	return entities.Payment{
		ID:               row.ID,
		GatewayOrderID:   row.GatewayOrderID,
		Amount:           row.Amount,
		Currency:         row.Currency,
		PaymentMethod:    entities.PaymentMethod(row.PaymentMethod),
		Status:           entities.PaymentStatus(row.Status),
		Description:      row.Description,
		CardToken:        row.CardToken,
		Installments:     row.Installments,
		PixQRCode:        row.PixQRCode,
		PixQRCodeURL:     row.PixQRCodeURL,
		CustomerName:     row.CustomerName,
		CustomerEmail:    row.CustomerEmail,
		CustomerDocument: row.CustomerDocument,
		ProposalID:       row.ProposalID,
		GatewayResponse:  row.GatewayResponse,
		CreatedAt:        row.CreatedAt,
		UpdatedAt:        row.UpdatedAt,
	}
}
