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

const commissionsProfessionalIDIndex = "professional_id-index"

type commissionItem struct {
	OrderID          string `dynamodbav:"order_id"`
	ProfessionalID   string `dynamodbav:"professional_id"`
	OrderTotal       string `dynamodbav:"order_total"`
	RateApplied      string `dynamodbav:"rate_applied"`
	CommissionAmount string `dynamodbav:"commission_amount"`
	NetEarnings      string `dynamodbav:"net_earnings"`
	CompletedAt      string `dynamodbav:"completed_at"`
}

// CommissionDynamoRepository reads commission records from DynamoDB.
//
// Table requirements:
//   - PK: order_id (string), one record per completed order
//   - GSI: professional_id-index (PK: professional_id)

type CommissionDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ICommissionRepository = (*CommissionDynamoRepository)(nil)

func NewCommissionDynamoRepository(ddb DynamoAPI, tableName string) *CommissionDynamoRepository {
	return &CommissionDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *CommissionDynamoRepository) GetByOrderID(ctx context.Context, orderID string) (entities.CommissionRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"order_id": &types.AttributeValueMemberS{Value: orderID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.CommissionRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.CommissionRecord{}, nil
	}

	var it commissionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.CommissionRecord{}, err
	}
	return fromCommissionItem(it), nil
}

func (r *CommissionDynamoRepository) ListByProfessionalID(ctx context.Context, professionalID string) ([]entities.CommissionRecord, error) {
	return queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(commissionsProfessionalIDIndex),
		KeyConditionExpression: aws.String("professional_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: professionalID},
		},
	}, unmarshalInto(fromCommissionItem))
}

func toCommissionItem(c entities.CommissionRecord) commissionItem {
	return commissionItem{
		OrderID:          c.OrderID,
		ProfessionalID:   c.ProfessionalID,
		OrderTotal:       formatDecimal(c.OrderTotal),
		RateApplied:      formatDecimal(c.RateApplied),
		CommissionAmount: formatDecimal(c.CommissionAmount),
		NetEarnings:      formatDecimal(c.NetEarnings),
		CompletedAt:      formatTime(c.CompletedAt),
	}
}

func fromCommissionItem(it commissionItem) entities.CommissionRecord {
	return entities.CommissionRecord{
		OrderID:          it.OrderID,
		ProfessionalID:   it.ProfessionalID,
		OrderTotal:       parseDecimal(it.OrderTotal),
		RateApplied:      parseDecimal(it.RateApplied),
		CommissionAmount: parseDecimal(it.CommissionAmount),
		NetEarnings:      parseDecimal(it.NetEarnings),
		CompletedAt:      parseTime(it.CompletedAt),
	}
}
