package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"github.com/ltbreno/pagarme/internal/domain/entities"
	"github.com/ltbreno/pagarme/internal/usecase/interfaces"
)

// ErrInvalidWebhookEvent marks a malformed envelope (missing id or type).
// This is the only webhook error that surfaces to the caller; everything
// else is acknowledged so Pagar.me stops redelivering.
var ErrInvalidWebhookEvent = errors.New("invalid webhook event")

// WebhookOutcome describes what one event did, for logging and the response
// body. A recognized event with no matching local payment is still Handled.

type WebhookOutcome struct {
	EventType string
	Handled   bool
	Applied   bool
}

type IWebhookUseCase interface {
	ProcessEvent(ctx context.Context, eventID, eventType string, data json.RawMessage) (WebhookOutcome, error)
}

// statusTransition is one row of the reconciliation table: the status a
// recognized event targets, where to find the order id in the payload, and
// which current statuses block the transition.
type statusTransition struct {
	target      entities.PaymentStatus
	chargeEvent bool
	blockedFrom []entities.PaymentStatus
}

// Only charge.pending carries a guard: a late or duplicate pending
// notification must never downgrade a payment already marked paid. The
// order.* events overwrite unconditionally, refunded included.
var webhookTransitions = map[string]statusTransition{
	"order.paid":           {target: entities.PaymentStatusPaid},
	"order.payment_failed": {target: entities.PaymentStatusFailed},
	"charge.paid":          {target: entities.PaymentStatusPaid, chargeEvent: true},
	"charge.pending":       {target: entities.PaymentStatusPending, chargeEvent: true, blockedFrom: []entities.PaymentStatus{entities.PaymentStatusPaid}},
	"charge.refunded":      {target: entities.PaymentStatusRefunded, chargeEvent: true},
}

// webhookEventData is the subset of an event's data object the engine reads.
// Order events carry the order id at the top level; charge events nest it.
type webhookEventData struct {
	ID       string            `json:"id"`
	Metadata map[string]string `json:"metadata"`
	Order    *struct {
		ID       string            `json:"id"`
		Metadata map[string]string `json:"metadata"`
	} `json:"order"`
}

type WebhookUseCase struct {
	repo interfaces.IPaymentRepository
}

var _ IWebhookUseCase = (*WebhookUseCase)(nil)

func NewWebhookUseCase(repo interfaces.IPaymentRepository) *WebhookUseCase {
	return &WebhookUseCase{repo: repo}
}

// ProcessEvent translates one inbound Pagar.me event into at most one local
// status transition. Store failures past envelope validation are logged and
// swallowed: a non-2xx ack would only trigger a redelivery storm and cannot
// help a store that is down.
func (u *WebhookUseCase) ProcessEvent(ctx context.Context, eventID, eventType string, data json.RawMessage) (WebhookOutcome, error) {
	if eventID == "" || eventType == "" {
		log.Printf("[webhook][usecase] malformed envelope event_id=%q event_type=%q", eventID, eventType)
		return WebhookOutcome{EventType: eventType}, ErrInvalidWebhookEvent
	}

	outcome := WebhookOutcome{EventType: eventType}

	transition, recognized := webhookTransitions[eventType]
	if !recognized {
		log.Printf("[webhook][usecase] unhandled event type event_id=%s event_type=%s", eventID, eventType)
		return outcome, nil
	}
	outcome.Handled = true
	log.Printf("[webhook][usecase] processing event_id=%s event_type=%s target_status=%s", eventID, eventType, transition.target)

	var payload webhookEventData
	if err := json.Unmarshal(data, &payload); err != nil {
		log.Printf("[webhook][usecase] undecodable event data event_id=%s err=%v", eventID, err)
		return outcome, nil
	}

	orderID := payload.ID
	if transition.chargeEvent {
		orderID = ""
		if payload.Order != nil {
			orderID = payload.Order.ID
		}
	}
	if orderID == "" {
		log.Printf("[webhook][usecase] event carries no order id event_id=%s event_type=%s", eventID, eventType)
		return outcome, nil
	}

	payment, err := u.repo.GetByGatewayOrderID(ctx, orderID)
	if err != nil {
		log.Printf("[webhook][usecase] payment lookup failed pagarme_id=%s err=%v", orderID, err)
		return outcome, nil
	}
	if payment.ID == 0 && payment.MirrorID == "" {
		// An order we don't track: legitimate traffic or a sync race, not an error.
		log.Printf("[webhook][usecase] no payment for pagarme_id=%s event_type=%s", orderID, eventType)
		return outcome, nil
	}

	for _, blocked := range transition.blockedFrom {
		if payment.Status == blocked {
			log.Printf("[webhook][usecase] transition blocked pagarme_id=%s current=%s event_type=%s", orderID, payment.Status, eventType)
			return outcome, nil
		}
	}

	result, err := u.repo.UpdateStatus(ctx, payment.ID, transition.target, data)
	if err != nil {
		log.Printf("[webhook][usecase] status update failed payment_id=%d pagarme_id=%s err=%v", payment.ID, orderID, err)
	} else {
		outcome.Applied = result.BackupUpdated || result.MirrorUpdated
		log.Printf("[webhook][usecase] status update payment_id=%d status=%s backup=%t mirror=%t", payment.ID, transition.target, result.BackupUpdated, result.MirrorUpdated)
	}

	// The proposal id reaches mirror rows whose creation-time write diverged
	// from the backup store. Prefer the stored value, fall back to metadata
	// carried by the event itself.
	proposalID := payment.ProposalID
	if proposalID == "" {
		proposalID = payload.Metadata["proposal_id"]
	}
	if proposalID == "" && payload.Order != nil {
		proposalID = payload.Order.Metadata["proposal_id"]
	}
	if proposalID != "" {
		if err := u.repo.UpdateStatusByProposalID(ctx, proposalID, transition.target, data); err != nil {
			log.Printf("[webhook][usecase] proposal update failed proposal_id=%s err=%v", proposalID, err)
		} else {
			log.Printf("[webhook][usecase] proposal update done proposal_id=%s status=%s", proposalID, transition.target)
		}
	}

	return outcome, nil
}
