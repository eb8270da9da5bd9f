package repository

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"time"

	"github.com/ltbreno/pagarme/internal/domain/entities"
	"github.com/ltbreno/pagarme/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

const (
	defaultMirrorTableName = "payments_mirror"
	mirrorOrderIDIndex     = "pagarme_order_id-index"
	mirrorProposalIDIndex  = "proposal_id-index"
)

// paymentMirrorItem is the mirror's own shape of a payment: flattened card
// data extracted from the gateway response, no raw payload, uuid PK.
type paymentMirrorItem struct {
	ID                 string `dynamodbav:"id"`
	GatewayOrderID     string `dynamodbav:"pagarme_order_id"`
	GatewayChargeID    string `dynamodbav:"pagarme_payment_id,omitempty"`
	Amount             int64  `dynamodbav:"amount"`
	TotalAmount        int64  `dynamodbav:"total_amount"`
	PaymentMethod      string `dynamodbav:"payment_method"`
	Status             string `dynamodbav:"status"`
	CustomerName       string `dynamodbav:"customer_name,omitempty"`
	CustomerEmail      string `dynamodbav:"customer_email,omitempty"`
	CustomerDocument   string `dynamodbav:"customer_document,omitempty"`
	CardBrand          string `dynamodbav:"card_brand,omitempty"`
	CardLastFourDigits string `dynamodbav:"card_last_four_digits,omitempty"`
	PixQRCode          string `dynamodbav:"pix_qr_code,omitempty"`
	ProposalID         string `dynamodbav:"proposal_id,omitempty"`
	CreatedAt          string `dynamodbav:"created_at"`
	UpdatedAt          string `dynamodbav:"updated_at"`
}

// PaymentMirrorDynamoRepository holds the secondary copy of each payment in
// DynamoDB.
//
// Table requirements:
//   - PK: id (string, uuid)
//   - GSI: pagarme_order_id-index (PK: pagarme_order_id)
//   - GSI: proposal_id-index (PK: proposal_id)
//
// A nil client means the mirror is not configured; every method then degrades
// to a silent no-op, matching the backup-store-only mode.

type PaymentMirrorDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IMirrorPaymentStore = (*PaymentMirrorDynamoRepository)(nil)

func NewPaymentMirrorDynamoRepository(ddb *dynamodb.Client) *PaymentMirrorDynamoRepository {
	return &PaymentMirrorDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENT_MIRROR_TABLE", defaultMirrorTableName),
	}
}

func (r *PaymentMirrorDynamoRepository) IsAvailable() bool {
	return r != nil && r.ddb != nil
}

func (r *PaymentMirrorDynamoRepository) Create(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	if !r.IsAvailable() {
		return entities.Payment{}, nil
	}

	it := toMirrorItem(p)
	it.ID = uuid.NewString()

	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Payment{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Payment{}, err
	}

	p.MirrorID = it.ID
	return p, nil
}

func (r *PaymentMirrorDynamoRepository) GetByGatewayOrderID(ctx context.Context, gatewayOrderID string) (entities.Payment, error) {
	if !r.IsAvailable() {
		return entities.Payment{}, nil
	}

	it, err := r.queryFirst(ctx, mirrorOrderIDIndex, "pagarme_order_id", gatewayOrderID)
	if err != nil {
		return entities.Payment{}, err
	}
	if it == nil {
		return entities.Payment{}, nil
	}
	return fromMirrorItem(*it), nil
}

func (r *PaymentMirrorDynamoRepository) UpdateStatusByGatewayOrderID(ctx context.Context, gatewayOrderID string, status entities.PaymentStatus, gatewayResponse json.RawMessage) (entities.Payment, error) {
	if !r.IsAvailable() {
		return entities.Payment{}, nil
	}

	it, err := r.queryFirst(ctx, mirrorOrderIDIndex, "pagarme_order_id", gatewayOrderID)
	if err != nil {
		return entities.Payment{}, err
	}
	if it == nil {
		return entities.Payment{}, nil
	}
	return r.updateItemStatus(ctx, it.ID, status, gatewayResponse)
}

func (r *PaymentMirrorDynamoRepository) UpdateStatusByProposalID(ctx context.Context, proposalID string, status entities.PaymentStatus, gatewayResponse json.RawMessage) (entities.Payment, error) {
	if !r.IsAvailable() {
		return entities.Payment{}, nil
	}

	items, err := r.query(ctx, mirrorProposalIDIndex, "proposal_id", proposalID)
	if err != nil {
		return entities.Payment{}, err
	}
	if len(items) == 0 {
		return entities.Payment{}, nil
	}

	// A proposal may have produced more than one row; patch them all and
	// report the first.
	var first entities.Payment
	for i, it := range items {
		updated, err := r.updateItemStatus(ctx, it.ID, status, gatewayResponse)
		if err != nil {
			return entities.Payment{}, err
		}
		if i == 0 {
			first = updated
		}
	}
	return first, nil
}

func (r *PaymentMirrorDynamoRepository) ListGatewayOrderIDs(ctx context.Context) ([]string, error) {
	if !r.IsAvailable() {
		return nil, nil
	}

	var ids []string
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:                aws.String(r.tableName),
			ProjectionExpression:     aws.String("pagarme_order_id"),
			ExclusiveStartKey:        startKey,
			FilterExpression:         aws.String("attribute_exists(pagarme_order_id) AND pagarme_order_id <> :empty"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":empty": &types.AttributeValueMemberS{Value: ""},
			},
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it paymentMirrorItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			ids = append(ids, it.GatewayOrderID)
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return ids, nil
}

func (r *PaymentMirrorDynamoRepository) updateItemStatus(ctx context.Context, id string, status entities.PaymentStatus, gatewayResponse json.RawMessage) (entities.Payment, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	expr := "SET #status = :status, #updated_at = :updated_at"
	vals := map[string]types.AttributeValue{
		":status":     &types.AttributeValueMemberS{Value: string(status)},
		":updated_at": &types.AttributeValueMemberS{Value: now},
	}
	names := map[string]string{
		"#status":     "status",
		"#updated_at": "updated_at",
		"#id":         "id",
	}

	// Late charge data (charge id, card brand/last4) may only arrive with a
	// webhook; backfill it when the event payload carries it.
	if chargeID, card := chargeDetailsFromResponse(gatewayResponse); chargeID != "" || card != nil {
		if chargeID != "" {
			expr += ", #charge_id = :charge_id"
			names["#charge_id"] = "pagarme_payment_id"
			vals[":charge_id"] = &types.AttributeValueMemberS{Value: chargeID}
		}
		if card != nil && card.Brand != "" {
			expr += ", #card_brand = :card_brand"
			names["#card_brand"] = "card_brand"
			vals[":card_brand"] = &types.AttributeValueMemberS{Value: card.Brand}
		}
		if card != nil && card.LastFourDigits != "" {
			expr += ", #card_last4 = :card_last4"
			names["#card_last4"] = "card_last_four_digits"
			vals[":card_last4"] = &types.AttributeValueMemberS{Value: card.LastFourDigits}
		}
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: vals,
		ExpressionAttributeNames:  names,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Payment{}, nil
		}
		return entities.Payment{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Payment{}, nil
	}

	var it paymentMirrorItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromMirrorItem(it), nil
}

func (r *PaymentMirrorDynamoRepository) queryFirst(ctx context.Context, index, key, value string) (*paymentMirrorItem, error) {
	items, err := r.query(ctx, index, key, value)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}
	return &items[0], nil
}

func (r *PaymentMirrorDynamoRepository) query(ctx context.Context, index, key, value string) ([]paymentMirrorItem, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String("#k = :v"),
		ExpressionAttributeNames: map[string]string{
			"#k": key,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]paymentMirrorItem, 0, len(out.Items))
	for _, raw := range out.Items {
		var it paymentMirrorItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, nil
}

func toMirrorItem(p entities.Payment) paymentMirrorItem {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	it := paymentMirrorItem{
		GatewayOrderID:   p.GatewayOrderID,
		Amount:           p.Amount,
		TotalAmount:      p.Amount,
		PaymentMethod:    string(p.PaymentMethod),
		Status:           string(p.Status),
		CustomerName:     p.CustomerName,
		CustomerEmail:    p.CustomerEmail,
		CustomerDocument: p.CustomerDocument,
		PixQRCode:        p.PixQRCode,
		ProposalID:       p.ProposalID,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if chargeID, card := chargeDetailsFromResponse(p.GatewayResponse); chargeID != "" || card != nil {
		it.GatewayChargeID = chargeID
		if card != nil {
			it.CardBrand = card.Brand
			it.CardLastFourDigits = card.LastFourDigits
		}
	}
	return it
}

func fromMirrorItem(it paymentMirrorItem) entities.Payment {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Payment{
		MirrorID:         it.ID,
		GatewayOrderID:   it.GatewayOrderID,
		Amount:           it.Amount,
		PaymentMethod:    entities.PaymentMethod(it.PaymentMethod),
		Status:           entities.PaymentStatus(it.Status),
		CustomerName:     it.CustomerName,
		CustomerEmail:    it.CustomerEmail,
		CustomerDocument: it.CustomerDocument,
		PixQRCode:        it.PixQRCode,
		ProposalID:       it.ProposalID,
		CreatedAt:        createdAt,
		UpdatedAt:        updatedAt,
	}
}

// chargeDetailsFromResponse pulls the first charge id and card data out of a
// raw gateway payload (order response or webhook charge data).
func chargeDetailsFromResponse(raw json.RawMessage) (string, *entities.GatewayCard) {
	if len(raw) == 0 {
		return "", nil
	}

	var order entities.GatewayOrder
	if err := json.Unmarshal(raw, &order); err != nil {
		return "", nil
	}
	charge := order.FirstCharge()
	if charge == nil {
		return "", nil
	}
	if charge.LastTransaction != nil && charge.LastTransaction.Card != nil {
		return charge.ID, charge.LastTransaction.Card
	}
	return charge.ID, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
