package usecase

import (
	"context"
	"errors"
	"log"

	"github.com/ltbreno/pagarme/internal/domain/entities"
	"github.com/ltbreno/pagarme/internal/usecase/interfaces"
)

var (
	ErrPaymentNotFound      = errors.New("payment not found")
	ErrInvalidPaymentID     = errors.New("invalid payment id")
	ErrInvalidPaymentAmount = errors.New("invalid payment amount")
	ErrMissingCardToken     = errors.New("missing card token")
	ErrGatewayNotConfigured = errors.New("payment gateway not configured")
)

// IPaymentUseCase covers the payment lifecycle: creation against Pagar.me,
// local reads, stats, the explicit delete, and the divergence scan. Status
// updates are driven exclusively by the webhook usecase.

type IPaymentUseCase interface {
	CreateCreditCardPayment(ctx context.Context, in interfaces.CreditCardOrderInput) (entities.Payment, error)
	CreatePixPayment(ctx context.Context, in interfaces.PixOrderInput) (entities.Payment, error)
	GetPayment(ctx context.Context, id uint) (entities.Payment, error)
	ListPayments(ctx context.Context, f interfaces.PaymentFilters, limit, offset int) ([]entities.Payment, error)
	GetStats(ctx context.Context) (interfaces.PaymentStats, error)
	DeletePayment(ctx context.Context, id uint) error
	CreateCardToken(ctx context.Context, in interfaces.CardTokenInput) (interfaces.CardToken, error)
	DivergenceScan(ctx context.Context) (interfaces.DivergenceReport, error)
}

type PaymentUseCase struct {
	repo    interfaces.IPaymentRepository
	gateway interfaces.IPaymentGateway
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(repo interfaces.IPaymentRepository, gateway interfaces.IPaymentGateway) *PaymentUseCase {
	return &PaymentUseCase{repo: repo, gateway: gateway}
}

func (u *PaymentUseCase) CreateCreditCardPayment(ctx context.Context, in interfaces.CreditCardOrderInput) (entities.Payment, error) {
	if u.gateway == nil {
		return entities.Payment{}, ErrGatewayNotConfigured
	}
	if in.Amount <= 0 {
		return entities.Payment{}, ErrInvalidPaymentAmount
	}
	if in.CardToken == "" {
		return entities.Payment{}, ErrMissingCardToken
	}

	log.Printf("[payment][usecase] create credit_card start amount=%d proposal_id=%s", in.Amount, in.ProposalID)
	order, err := u.gateway.CreateCreditCardOrder(ctx, in)
	if err != nil {
		log.Printf("[payment][usecase] gateway credit_card order failed err=%v", err)
		return entities.Payment{}, err
	}
	log.Printf("[payment][usecase] gateway order created pagarme_id=%s status=%s", order.ID, order.Status)

	installments := in.Installments
	if installments < 1 {
		installments = 1
	}

	payment := entities.Payment{
		GatewayOrderID:   order.ID,
		Amount:           in.Amount,
		Currency:         "BRL",
		PaymentMethod:    entities.PaymentMethodCreditCard,
		Status:           entities.NormalizeStatus(order.Status),
		Description:      in.Description,
		CardToken:        in.CardToken,
		Installments:     installments,
		CustomerName:     in.CustomerName,
		CustomerEmail:    in.CustomerEmail,
		CustomerDocument: in.CustomerDocument,
		ProposalID:       in.ProposalID,
		GatewayResponse:  order.Raw,
	}

	created, err := u.repo.Create(ctx, payment)
	if err != nil {
		log.Printf("[payment][usecase] persist failed pagarme_id=%s err=%v", order.ID, err)
		return entities.Payment{}, err
	}
	log.Printf("[payment][usecase] create credit_card success payment_id=%d pagarme_id=%s status=%s", created.ID, created.GatewayOrderID, created.Status)
	return created, nil
}

func (u *PaymentUseCase) CreatePixPayment(ctx context.Context, in interfaces.PixOrderInput) (entities.Payment, error) {
	if u.gateway == nil {
		return entities.Payment{}, ErrGatewayNotConfigured
	}
	if in.Amount <= 0 {
		return entities.Payment{}, ErrInvalidPaymentAmount
	}

	log.Printf("[payment][usecase] create pix start amount=%d proposal_id=%s", in.Amount, in.ProposalID)
	order, err := u.gateway.CreatePixOrder(ctx, in)
	if err != nil {
		log.Printf("[payment][usecase] gateway pix order failed err=%v", err)
		return entities.Payment{}, err
	}
	log.Printf("[payment][usecase] gateway order created pagarme_id=%s status=%s charges=%d", order.ID, order.Status, len(order.Charges))

	payment := entities.Payment{
		GatewayOrderID:   order.ID,
		Amount:           in.Amount,
		Currency:         "BRL",
		PaymentMethod:    entities.PaymentMethodPix,
		Status:           entities.NormalizeStatus(order.Status),
		Description:      in.Description,
		CustomerName:     in.CustomerName,
		CustomerEmail:    in.CustomerEmail,
		CustomerDocument: in.CustomerDocument,
		ProposalID:       in.ProposalID,
		GatewayResponse:  order.Raw,
	}
	if charge := order.PixCharge(); charge != nil && charge.LastTransaction != nil {
		payment.PixQRCode = charge.LastTransaction.QRCode
		payment.PixQRCodeURL = charge.LastTransaction.QRCodeURL
	}

	created, err := u.repo.Create(ctx, payment)
	if err != nil {
		log.Printf("[payment][usecase] persist failed pagarme_id=%s err=%v", order.ID, err)
		return entities.Payment{}, err
	}
	log.Printf("[payment][usecase] create pix success payment_id=%d pagarme_id=%s status=%s", created.ID, created.GatewayOrderID, created.Status)
	return created, nil
}

func (u *PaymentUseCase) GetPayment(ctx context.Context, id uint) (entities.Payment, error) {
	if id == 0 {
		return entities.Payment{}, ErrInvalidPaymentID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.ID == 0 {
		return entities.Payment{}, ErrPaymentNotFound
	}
	return p, nil
}

func (u *PaymentUseCase) ListPayments(ctx context.Context, f interfaces.PaymentFilters, limit, offset int) ([]entities.Payment, error) {
	return u.repo.List(ctx, f, limit, offset)
}

func (u *PaymentUseCase) GetStats(ctx context.Context) (interfaces.PaymentStats, error) {
	return u.repo.Stats(ctx)
}

func (u *PaymentUseCase) DeletePayment(ctx context.Context, id uint) error {
	if id == 0 {
		return ErrInvalidPaymentID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p.ID == 0 {
		return ErrPaymentNotFound
	}
	return u.repo.Delete(ctx, id)
}

func (u *PaymentUseCase) CreateCardToken(ctx context.Context, in interfaces.CardTokenInput) (interfaces.CardToken, error) {
	if u.gateway == nil {
		return interfaces.CardToken{}, ErrGatewayNotConfigured
	}
	return u.gateway.CreateCardToken(ctx, in)
}

func (u *PaymentUseCase) DivergenceScan(ctx context.Context) (interfaces.DivergenceReport, error) {
	return u.repo.DivergenceScan(ctx)
}
