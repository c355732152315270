package repository

import (
	"context"
	"time"

	"vestapay/internal/domain/entities"
	"vestapay/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultTranscriptsTableName = "transcripts"
	transcriptsOrderIDIndex     = "order_id-index"
)

type transcriptItem struct {
	ID        string `dynamodbav:"id"`
	OrderID   string `dynamodbav:"order_id"`
	Operation string `dynamodbav:"operation"`
	Body      string `dynamodbav:"body"`
	CreatedAt string `dynamodbav:"created_at"`
}

// TranscriptDynamoRepository persists scrubbed provider transcripts in
// DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: order_id-index (PK: order_id)

type TranscriptDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ITranscriptRepository = (*TranscriptDynamoRepository)(nil)

func NewTranscriptDynamoRepository(ddb *dynamodb.Client) *TranscriptDynamoRepository {
	return &TranscriptDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TRANSCRIPTS_TABLE", defaultTranscriptsTableName),
	}
}

func (r *TranscriptDynamoRepository) Create(ctx context.Context, tr entities.Transcript) (entities.Transcript, error) {
	it := toTranscriptItem(tr)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Transcript{}, err
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
		return entities.Transcript{}, err
	}
	return tr, nil
}

func (r *TranscriptDynamoRepository) ListByOrderID(ctx context.Context, orderID string) ([]entities.Transcript, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(transcriptsOrderIDIndex),
		KeyConditionExpression: aws.String("order_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: orderID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Transcript, 0, len(out.Items))
	for _, raw := range out.Items {
		var it transcriptItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromTranscriptItem(it))
	}
	return items, nil
}

func toTranscriptItem(tr entities.Transcript) transcriptItem {
	return transcriptItem{
		ID:        tr.ID,
		OrderID:   tr.OrderID,
		Operation: tr.Operation,
		Body:      tr.Body,
		CreatedAt: tr.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromTranscriptItem(it transcriptItem) entities.Transcript {
	dt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Transcript{
		ID:        it.ID,
		OrderID:   it.OrderID,
		Operation: it.Operation,
		Body:      it.Body,
		CreatedAt: dt,
	}
}
