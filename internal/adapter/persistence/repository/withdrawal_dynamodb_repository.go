package repository

import (
	"context"

	"marketplace_billing/internal/domain/entities"
	"marketplace_billing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const withdrawalsProfessionalIDIndex = "professional_id-index"

type withdrawalItem struct {
	ID             string  `dynamodbav:"id"`
	ProfessionalID string  `dynamodbav:"professional_id"`
	Amount         string  `dynamodbav:"amount"`
	Status         string  `dynamodbav:"status"`
	PayoutMethod   string  `dynamodbav:"payout_method"`
	ReferenceID    *string `dynamodbav:"reference_id,omitempty"`
	RequestDate    string  `dynamodbav:"request_date"`
	ProcessedAt    string  `dynamodbav:"processed_at,omitempty"`
	Notes          *string `dynamodbav:"notes,omitempty"`
	UpdatedAt      string  `dynamodbav:"updated_at"`
}

// WithdrawalDynamoRepository persists Withdrawal entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: professional_id-index (PK: professional_id)

type WithdrawalDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IWithdrawalRepository = (*WithdrawalDynamoRepository)(nil)

func NewWithdrawalDynamoRepository(ddb DynamoAPI, tableName string) *WithdrawalDynamoRepository {
	return &WithdrawalDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *WithdrawalDynamoRepository) Create(ctx context.Context, w entities.Withdrawal) (entities.Withdrawal, error) {
	av, err := attributevalue.MarshalMap(toWithdrawalItem(w))
	if err != nil {
		return entities.Withdrawal{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.Withdrawal{}, alreadyExists(err)
	}
	return w, nil
}

func (r *WithdrawalDynamoRepository) GetByID(ctx context.Context, id string) (entities.Withdrawal, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Withdrawal{}, err
	}
	if len(out.Item) == 0 {
		return entities.Withdrawal{}, nil
	}

	var it withdrawalItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Withdrawal{}, err
	}
	return fromWithdrawalItem(it), nil
}

func (r *WithdrawalDynamoRepository) ListByProfessionalID(ctx context.Context, professionalID string) ([]entities.Withdrawal, error) {
	return queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(withdrawalsProfessionalIDIndex),
		KeyConditionExpression: aws.String("professional_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: professionalID},
		},
	}, unmarshalInto(fromWithdrawalItem))
}

func (r *WithdrawalDynamoRepository) Update(ctx context.Context, w entities.Withdrawal, expectedStatus entities.WithdrawalStatus) (entities.Withdrawal, error) {
	av, err := attributevalue.MarshalMap(toWithdrawalItem(w))
	if err != nil {
		return entities.Withdrawal{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("#status = :expected"),
		ExpressionAttributeNames: map[string]string{"#status": "status"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberS{Value: string(expectedStatus)},
		},
	})
	if err != nil {
		return entities.Withdrawal{}, versionConflict(err)
	}
	return w, nil
}

func toWithdrawalItem(w entities.Withdrawal) withdrawalItem {
	return withdrawalItem{
		ID:             w.ID,
		ProfessionalID: w.ProfessionalID,
		Amount:         formatDecimal(w.Amount),
		Status:         string(w.Status),
		PayoutMethod:   w.PayoutMethod,
		ReferenceID:    copyString(w.ReferenceID),
		RequestDate:    formatTime(w.RequestDate),
		ProcessedAt:    formatTimePtr(w.ProcessedAt),
		Notes:          copyString(w.Notes),
		UpdatedAt:      formatTime(w.UpdatedAt),
	}
}

func fromWithdrawalItem(it withdrawalItem) entities.Withdrawal {
	return entities.Withdrawal{
		ID:             it.ID,
		ProfessionalID: it.ProfessionalID,
		Amount:         parseDecimal(it.Amount),
		Status:         entities.WithdrawalStatus(it.Status),
		PayoutMethod:   it.PayoutMethod,
		ReferenceID:    copyString(it.ReferenceID),
		RequestDate:    parseTime(it.RequestDate),
		ProcessedAt:    parseTimePtr(it.ProcessedAt),
		Notes:          copyString(it.Notes),
		UpdatedAt:      parseTime(it.UpdatedAt),
	}
}
