package repository

import (
	"context"
	"strings"

	"valuation_report/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultOptionsTableName = "valuation_options"

type optionsItem struct {
	Category string   `dynamodbav:"category"`
	Values   []string `dynamodbav:"values"`
}

// OptionsDynamoRepository serves dropdown values (banks, cities, DSAs,
// engineers) from one item per category.
//
// Table requirements:
//   - PK: category (string)

type OptionsDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOptionsProvider = (*OptionsDynamoRepository)(nil)

func NewOptionsDynamoRepository(ddb *dynamodb.Client, tableName string) *OptionsDynamoRepository {
	return &OptionsDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultOptionsTableName),
	}
}

// GetOptions returns the values of category; an unknown category yields an
// empty list.
func (r *OptionsDynamoRepository) GetOptions(ctx context.Context, category string) ([]string, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"category": &types.AttributeValueMemberS{Value: category},
		},
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return []string{}, nil
	}

	var it optionsItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, err
	}
	return normalizeOptions(it.Values), nil
}

// PutOptions replaces the values of a category. Used to seed local tables.
func (r *OptionsDynamoRepository) PutOptions(ctx context.Context, category string, values []string) error {
	av, err := attributevalue.MarshalMap(optionsItem{Category: category, Values: normalizeOptions(values)})
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func normalizeOptions(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
