package services

import (
	"context"
	"errors"
	"fmt"

	"chatconnect_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoUserStore is the DynamoDB-backed UserStore, used when USERS_TABLE
// is configured. The id attribute is the table's partition key; duplicate
// detection and the increment both ride on condition expressions so the
// store stays correct without client-side locking.
type DynamoUserStore struct {
	Dynamo *DynamoService
	Table  string
}

func (ds *DynamoUserStore) Create(ctx context.Context, user models.User) error {
	err := ds.Dynamo.PutItemIfAbsent(ctx, ds.Table, user, "id")
	if errors.Is(err, ErrConditionFailed) {
		return ErrDuplicateUser
	}
	return err
}

func (ds *DynamoUserStore) Get(ctx context.Context, id string) (models.User, error) {
	item, err := ds.Dynamo.GetItem(ctx, ds.Table, userKey(id))
	if err != nil {
		return models.User{}, err
	}
	if item == nil {
		return models.User{}, ErrUserNotFound
	}

	var user models.User
	if err := attributevalue.UnmarshalMap(item, &user); err != nil {
		return models.User{}, fmt.Errorf("failed to unmarshal user %q: %w", id, err)
	}
	return user, nil
}

func (ds *DynamoUserStore) IncrementMatchCount(ctx context.Context, id string) (int, error) {
	attrs, err := ds.Dynamo.UpdateItem(
		ctx,
		ds.Table,
		"ADD #c :one",
		"attribute_exists(#k)",
		userKey(id),
		map[string]types.AttributeValue{":one": &types.AttributeValueMemberN{Value: "1"}},
		map[string]string{"#c": "matchCount", "#k": "id"},
	)
	if errors.Is(err, ErrConditionFailed) {
		return 0, ErrUserNotFound
	}
	if err != nil {
		return 0, err
	}

	var updated struct {
		MatchCount int `dynamodbav:"matchCount"`
	}
	if err := attributevalue.UnmarshalMap(attrs, &updated); err != nil {
		return 0, fmt.Errorf("failed to unmarshal matchCount for %q: %w", id, err)
	}
	return updated.MatchCount, nil
}

func userKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: id},
	}
}
