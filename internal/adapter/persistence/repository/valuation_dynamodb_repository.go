package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"valuation_report/internal/domain/entities"
	"valuation_report/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultValuationsTableName = "valuations"
	valuationsStatusIndex      = "status-index"
)

// ErrLocalAttachment is returned when a record still holds blobs that were
// never uploaded. Only URLs are ever written to the table.
var ErrLocalAttachment = errors.New("valuation holds local attachments")

type attachmentItem struct {
	URL         string `dynamodbav:"url"`
	Name        string `dynamodbav:"name"`
	ContentType string `dynamodbav:"content_type"`
	Size        int64  `dynamodbav:"size"`
}

type valuationItem struct {
	ID                string                      `dynamodbav:"id"`
	Status            string                      `dynamodbav:"status"`
	Fields            map[string]string           `dynamodbav:"fields"`
	Attachments       map[string][]attachmentItem `dynamodbav:"attachments,omitempty"`
	ManagerFeedback   string                      `dynamodbav:"manager_feedback"`
	CreatedBy         string                      `dynamodbav:"created_by"`
	CreatedAt         string                      `dynamodbav:"created_at"`
	LastUpdatedBy     string                      `dynamodbav:"last_updated_by"`
	LastUpdatedByRole string                      `dynamodbav:"last_updated_by_role"`
	LastUpdatedAt     string                      `dynamodbav:"last_updated_at"`
}

// ValuationDynamoRepository persists ValuationRecord entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI status-index: status (string)
//
// Persist writes the whole item; there is a single writer per record.

type ValuationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IValuationRepository = (*ValuationDynamoRepository)(nil)

func NewValuationDynamoRepository(ddb *dynamodb.Client, tableName string) *ValuationDynamoRepository {
	return &ValuationDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultValuationsTableName),
	}
}

func (r *ValuationDynamoRepository) Create(ctx context.Context, v entities.ValuationRecord) (entities.ValuationRecord, error) {
	return r.put(ctx, v, "attribute_not_exists(#id)")
}

// Persist overwrites an existing record. A missing record yields the zero value.
func (r *ValuationDynamoRepository) Persist(ctx context.Context, v entities.ValuationRecord) (entities.ValuationRecord, error) {
	out, err := r.put(ctx, v, "attribute_exists(#id)")
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.ValuationRecord{}, nil
		}
		return entities.ValuationRecord{}, err
	}
	return out, nil
}

func (r *ValuationDynamoRepository) GetByID(ctx context.Context, id string) (entities.ValuationRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ValuationRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.ValuationRecord{}, nil
	}

	var it valuationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ValuationRecord{}, err
	}
	return fromValuationItem(it), nil
}

func (r *ValuationDynamoRepository) ListByStatus(ctx context.Context, status entities.ValuationStatus) ([]entities.ValuationRecord, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(valuationsStatusIndex),
		KeyConditionExpression: aws.String("#status = :status"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
	})

	res := make([]entities.ValuationRecord, 0)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []valuationItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			res = append(res, fromValuationItem(it))
		}
	}
	return res, nil
}

func (r *ValuationDynamoRepository) put(ctx context.Context, v entities.ValuationRecord, condition string) (entities.ValuationRecord, error) {
	in, err := r.putItemInput(v, condition)
	if err != nil {
		return entities.ValuationRecord{}, err
	}
	if _, err := r.ddb.PutItem(ctx, in); err != nil {
		return entities.ValuationRecord{}, err
	}
	return v, nil
}

func (r *ValuationDynamoRepository) putItemInput(v entities.ValuationRecord, condition string) (*dynamodb.PutItemInput, error) {
	it, err := toValuationItem(v)
	if err != nil {
		return nil, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return nil, err
	}
	return &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String(condition),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	}, nil
}

func toValuationItem(v entities.ValuationRecord) (valuationItem, error) {
	if v.HasLocalAttachments() {
		return valuationItem{}, fmt.Errorf("%w: id=%s", ErrLocalAttachment, v.ID)
	}

	fields := v.Fields
	if fields == nil {
		fields = map[string]string{}
	}

	var attachments map[string][]attachmentItem
	for category, items := range v.Attachments {
		if len(items) == 0 {
			continue
		}
		if attachments == nil {
			attachments = make(map[string][]attachmentItem, len(v.Attachments))
		}
		for _, p := range v.PersistedAttachments(category) {
			attachments[string(category)] = append(attachments[string(category)], attachmentItem{
				URL:         p.URL,
				Name:        p.Name,
				ContentType: p.ContentType,
				Size:        p.Size,
			})
		}
	}

	return valuationItem{
		ID:                v.ID,
		Status:            string(v.Status),
		Fields:            fields,
		Attachments:       attachments,
		ManagerFeedback:   v.ManagerFeedback,
		CreatedBy:         v.CreatedBy,
		CreatedAt:         formatTime(v.CreatedAt),
		LastUpdatedBy:     v.LastUpdatedBy,
		LastUpdatedByRole: string(v.LastUpdatedByRole),
		LastUpdatedAt:     formatTime(v.LastUpdatedAt),
	}, nil
}

func fromValuationItem(it valuationItem) entities.ValuationRecord {
	fields := it.Fields
	if fields == nil {
		fields = map[string]string{}
	}
	attachments := make(map[entities.AttachmentCategory][]entities.Attachment, len(it.Attachments))
	for category, items := range it.Attachments {
		list := make([]entities.Attachment, 0, len(items))
		for _, a := range items {
			list = append(list, entities.PersistedAttachment{
				URL:         a.URL,
				Name:        a.Name,
				ContentType: a.ContentType,
				Size:        a.Size,
			})
		}
		attachments[entities.AttachmentCategory(category)] = list
	}

	return entities.ValuationRecord{
		ID:                it.ID,
		Status:            entities.ValuationStatus(it.Status),
		Fields:            fields,
		Attachments:       attachments,
		ManagerFeedback:   it.ManagerFeedback,
		CreatedBy:         it.CreatedBy,
		CreatedAt:         parseTime(it.CreatedAt),
		LastUpdatedBy:     it.LastUpdatedBy,
		LastUpdatedByRole: entities.Role(it.LastUpdatedByRole),
		LastUpdatedAt:     parseTime(it.LastUpdatedAt),
	}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}
