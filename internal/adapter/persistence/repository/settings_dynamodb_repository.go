package repository

import (
	"context"
	"time"

	"marketplace_billing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const commissionRateKey = "commission_rate"

type settingItem struct {
	Key       string `dynamodbav:"key"`
	Value     string `dynamodbav:"value"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// SettingsDynamoRepository keeps platform settings as key/value items.
//
// Table requirements:
//   - PK: key (string)

type SettingsDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ISettingsRepository = (*SettingsDynamoRepository)(nil)

func NewSettingsDynamoRepository(ddb DynamoAPI, tableName string) *SettingsDynamoRepository {
	return &SettingsDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *SettingsDynamoRepository) GetCommissionRate(ctx context.Context) (decimal.Decimal, bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"key": &types.AttributeValueMemberS{Value: commissionRateKey},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return decimal.Zero, false, err
	}
	if len(out.Item) == 0 {
		return decimal.Zero, false, nil
	}

	var it settingItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return decimal.Zero, false, err
	}
	rate, err := decimal.NewFromString(it.Value)
	if err != nil {
		return decimal.Zero, false, err
	}
	return rate, true, nil
}

func (r *SettingsDynamoRepository) PutCommissionRate(ctx context.Context, rate decimal.Decimal, at time.Time) error {
	av, err := attributevalue.MarshalMap(settingItem{
		Key:       commissionRateKey,
		Value:     rate.String(),
		UpdatedAt: formatTime(at),
	})
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}
