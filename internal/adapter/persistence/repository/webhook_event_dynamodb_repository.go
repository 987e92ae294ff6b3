package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bokaboka_api/internal/domain/entities"
	"bokaboka_api/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultWebhookEventsTableName = "webhook_events"
	webhookEventsPaymentIDIndex   = "payment_id-index"
)

// DynamoAPI is the subset of *dynamodb.Client the archive uses.
type DynamoAPI interface {
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Query(ctx context.Context, in *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

type webhookEventItem struct {
	ID            string `dynamodbav:"id"`
	PaymentID     string `dynamodbav:"payment_id"`
	Type          string `dynamodbav:"type"`
	GatewayStatus string `dynamodbav:"gateway_status"`
	Outcome       string `dynamodbav:"outcome"`
	ReceivedAt    string `dynamodbav:"received_at"`
	PayloadRaw    string `dynamodbav:"payload_raw,omitempty"`
}

// WebhookEventDynamoRepository archives gateway notifications in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: payment_id-index (PK: payment_id, SK: received_at)
type WebhookEventDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IWebhookEventRepository = (*WebhookEventDynamoRepository)(nil)

func NewWebhookEventDynamoRepository(ddb DynamoAPI) *WebhookEventDynamoRepository {
	return &WebhookEventDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("WEBHOOK_EVENTS_TABLE", defaultWebhookEventsTableName),
	}
}

// TableName is the resolved table, WEBHOOK_EVENTS_TABLE or the default.
func (r *WebhookEventDynamoRepository) TableName() string { return r.tableName }

func (r *WebhookEventDynamoRepository) Save(ctx context.Context, e entities.WebhookEvent) error {
	av, err := attributevalue.MarshalMap(toWebhookEventItem(e))
	if err != nil {
		return err
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
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return fmt.Errorf("webhook event %s: %w", e.ID, interfaces.ErrAlreadyExists)
		}
		return err
	}
	return nil
}

// ListByPaymentID returns the archived events of one payment, oldest first.
func (r *WebhookEventDynamoRepository) ListByPaymentID(ctx context.Context, paymentID string) ([]entities.WebhookEvent, error) {
	events := make([]entities.WebhookEvent, 0)
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(webhookEventsPaymentIDIndex),
			KeyConditionExpression: aws.String("payment_id = :pid"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":pid": &types.AttributeValueMemberS{Value: paymentID},
			},
			ScanIndexForward:  aws.Bool(true),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it webhookEventItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			events = append(events, fromWebhookEventItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			return events, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func toWebhookEventItem(e entities.WebhookEvent) webhookEventItem {
	return webhookEventItem{
		ID:            e.ID,
		PaymentID:     e.PaymentID,
		Type:          e.Type,
		GatewayStatus: e.GatewayStatus,
		Outcome:       e.Outcome,
		ReceivedAt:    e.ReceivedAt.UTC().Format(time.RFC3339Nano),
		PayloadRaw:    string(e.Payload),
	}
}

func fromWebhookEventItem(it webhookEventItem) entities.WebhookEvent {
	receivedAt, _ := time.Parse(time.RFC3339Nano, it.ReceivedAt)
	ev := entities.WebhookEvent{
		ID:            it.ID,
		PaymentID:     it.PaymentID,
		Type:          it.Type,
		GatewayStatus: it.GatewayStatus,
		Outcome:       it.Outcome,
		ReceivedAt:    receivedAt,
	}
	if it.PayloadRaw != "" {
		ev.Payload = []byte(it.PayloadRaw)
	}
	return ev
}
