package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/go-chat-nosql/internal/domain"
	"github.com/go-chat-nosql/internal/store"
)

// TypeIndexName is the GSI backing "list all of type T" queries.
const TypeIndexName = "GSIType-name-index"

// Table implements store.Store on a single DynamoDB table keyed by pk/sk
// with a GSIType secondary index.
type Table struct {
	client    *dynamodb.Client
	tableName string
}

func NewTable(client *dynamodb.Client, tableName string) *Table {
	return &Table{client: client, tableName: tableName}
}

// item is the loose read shape. IsLocked is untyped because historical rows
// stored the lock flag as either a boolean or the string "true"; it is
// normalized to a real boolean before any record leaves this package.
type item struct {
	PK           string      `dynamodbav:"pk"`
	SK           string      `dynamodbav:"sk"`
	GSIType      string      `dynamodbav:"GSIType"`
	Name         string      `dynamodbav:"name"`
	UserID       string      `dynamodbav:"userId"`
	PasswordHash string      `dynamodbav:"password"`
	Content      string      `dynamodbav:"content"`
	SenderID     string      `dynamodbav:"senderId"`
	IsLocked     interface{} `dynamodbav:"isLocked"`
	CreatorID    string      `dynamodbav:"creatorId"`
}

func (it *item) record() store.Record {
	return store.Record{
		PK:           it.PK,
		SK:           it.SK,
		GSIType:      it.GSIType,
		Name:         it.Name,
		UserID:       it.UserID,
		PasswordHash: it.PasswordHash,
		Content:      it.Content,
		SenderID:     it.SenderID,
		IsLocked:     lockedBool(it.IsLocked),
		CreatorID:    it.CreatorID,
	}
}

// lockedBool treats only boolean true and string "true" as locked.
// Everything else, including string "false", reads as unlocked.
func lockedBool(v interface{}) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		return t == "true"
	default:
		return false
	}
}

func (t *Table) Get(ctx context.Context, pk, sk string) (*store.Record, error) {
	out, err := t.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(t.tableName),
		Key:       primaryKey(pk, sk),
	})
	if err != nil {
		return nil, storeErr("get item", err)
	}
	if out.Item == nil {
		return nil, fmt.Errorf("record %s/%s: %w", pk, sk, domain.ErrNotFound)
	}
	var it item
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, storeErr("unmarshal item", err)
	}
	rec := it.record()
	return &rec, nil
}

func (t *Table) Put(ctx context.Context, rec *store.Record) error {
	av, err := attributevalue.MarshalMap(rec)
	if err != nil {
		return storeErr("marshal item", err)
	}
	_, err = t.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(t.tableName),
		Item:      av,
	})
	if err != nil {
		return storeErr("put item", err)
	}
	return nil
}

func (t *Table) QueryPartition(ctx context.Context, pk string) ([]store.Record, error) {
	out, err := t.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(t.tableName),
		KeyConditionExpression: aws.String("#pk = :pk"),
		ExpressionAttributeNames: map[string]string{
			"#pk": "pk",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: pk},
		},
	})
	if err != nil {
		return nil, storeErr("query partition", err)
	}
	return unmarshalItems(out.Items)
}

func (t *Table) QueryType(ctx context.Context, gsiType string) ([]store.Record, error) {
	out, err := t.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(t.tableName),
		IndexName:              aws.String(TypeIndexName),
		KeyConditionExpression: aws.String("#gsi_pk = :gsi_pk"),
		ExpressionAttributeNames: map[string]string{
			"#gsi_pk": "GSIType",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":gsi_pk": &types.AttributeValueMemberS{Value: gsiType},
		},
	})
	if err != nil {
		return nil, storeErr("query type index", err)
	}
	return unmarshalItems(out.Items)
}

func unmarshalItems(avs []map[string]types.AttributeValue) ([]store.Record, error) {
	var items []item
	if err := attributevalue.UnmarshalListOfMaps(avs, &items); err != nil {
		return nil, storeErr("unmarshal items", err)
	}
	recs := make([]store.Record, len(items))
	for i := range items {
		recs[i] = items[i].record()
	}
	return recs, nil
}

// primaryKey builds the composite pk/sk key map.
func primaryKey(pk, sk string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"pk": &types.AttributeValueMemberS{Value: pk},
		"sk": &types.AttributeValueMemberS{Value: sk},
	}
}

func storeErr(op string, err error) error {
	return fmt.Errorf("%s: %v: %w", op, err, domain.ErrStoreUnavailable)
}
