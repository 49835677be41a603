package repository

import (
	"context"
	"strconv"

	"marketplace_billing/internal/domain/entities"
	"marketplace_billing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	ordersProfessionalIDIndex = "professional_id-index"
	ordersCustomerIDIndex     = "customer_id-index"
)

type orderItem struct {
	ID                 string  `dynamodbav:"id"`
	CustomerID         string  `dynamodbav:"customer_id"`
	ProfessionalID     string  `dynamodbav:"professional_id"`
	Status             string  `dynamodbav:"status"`
	TotalPrice         string  `dynamodbav:"total_price"`
	TotalPaidAmount    string  `dynamodbav:"total_paid_amount"`
	Quantity           int     `dynamodbav:"quantity"`
	PriceUnit          string  `dynamodbav:"price_unit,omitempty"`
	QualityType        string  `dynamodbav:"quality_type,omitempty"`
	OrderDate          string  `dynamodbav:"order_date"`
	ScheduledAt        string  `dynamodbav:"scheduled_at,omitempty"`
	OrderNotes         string  `dynamodbav:"order_notes,omitempty"`
	InspectionNotes    *string `dynamodbav:"inspection_notes,omitempty"`
	CancellationReason *string `dynamodbav:"cancellation_reason,omitempty"`
	ContactRevealed    bool    `dynamodbav:"contact_revealed"`
	AcceptedAt         string  `dynamodbav:"accepted_at,omitempty"`
	InspectedAt        string  `dynamodbav:"inspected_at,omitempty"`
	CompletedAt        string  `dynamodbav:"completed_at,omitempty"`
	CancelledAt        string  `dynamodbav:"cancelled_at,omitempty"`
	UpdatedAt          string  `dynamodbav:"updated_at"`
	Version            int     `dynamodbav:"version"`
}

// OrderDynamoRepository persists Order entities in DynamoDB.
//
// Table requirements:
//   - orders: PK id; GSIs professional_id-index and customer_id-index
//   - payments and commission_records as described on their repositories
//
// Every write replaces the whole item under a version condition. Complete and
// ApplyPayment write to the payments and commission tables in the same
// transaction.

type OrderDynamoRepository struct {
	ddb              DynamoAPI
	tableName        string
	paymentsTable    string
	commissionsTable string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb DynamoAPI, tableName, paymentsTable, commissionsTable string) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:              ddb,
		tableName:        tableName,
		paymentsTable:    paymentsTable,
		commissionsTable: commissionsTable,
	}
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return entities.Order{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.Order{}, alreadyExists(err)
	}
	return o, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) ListByProfessionalID(ctx context.Context, professionalID string) ([]entities.Order, error) {
	return r.listByIndex(ctx, ordersProfessionalIDIndex, "professional_id", professionalID)
}

func (r *OrderDynamoRepository) ListByCustomerID(ctx context.Context, customerID string) ([]entities.Order, error) {
	return r.listByIndex(ctx, ordersCustomerIDIndex, "customer_id", customerID)
}

func (r *OrderDynamoRepository) listByIndex(ctx context.Context, index, attr, value string) ([]entities.Order, error) {
	return queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:                aws.String(r.tableName),
		IndexName:                aws.String(index),
		KeyConditionExpression:   aws.String("#k = :v"),
		ExpressionAttributeNames: map[string]string{"#k": attr},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
	}, unmarshalInto(fromOrderItem))
}

func (r *OrderDynamoRepository) Update(ctx context.Context, o entities.Order, expectedVersion int) (entities.Order, error) {
	put, err := r.versionedPut(o, expectedVersion)
	if err != nil {
		return entities.Order{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                 put.TableName,
		Item:                      put.Item,
		ConditionExpression:       put.ConditionExpression,
		ExpressionAttributeNames:  put.ExpressionAttributeNames,
		ExpressionAttributeValues: put.ExpressionAttributeValues,
	})
	if err != nil {
		return entities.Order{}, versionConflict(err)
	}
	return o, nil
}

func (r *OrderDynamoRepository) Complete(ctx context.Context, o entities.Order, expectedVersion int, rec entities.CommissionRecord) (entities.Order, error) {
	orderPut, err := r.versionedPut(o, expectedVersion)
	if err != nil {
		return entities.Order{}, err
	}
	recAV, err := attributevalue.MarshalMap(toCommissionItem(rec))
	if err != nil {
		return entities.Order{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: orderPut},
			{Put: &types.Put{
				TableName:                aws.String(r.commissionsTable),
				Item:                     recAV,
				ConditionExpression:      aws.String("attribute_not_exists(#oid)"),
				ExpressionAttributeNames: map[string]string{"#oid": "order_id"},
			}},
		},
	})
	if err != nil {
		return entities.Order{}, versionConflict(err)
	}
	return o, nil
}

func (r *OrderDynamoRepository) ApplyPayment(ctx context.Context, o entities.Order, expectedVersion int, p entities.Payment) (entities.Order, error) {
	orderPut, err := r.versionedPut(o, expectedVersion)
	if err != nil {
		return entities.Order{}, err
	}
	payAV, err := attributevalue.MarshalMap(toPaymentItem(p))
	if err != nil {
		return entities.Order{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: orderPut},
			{Put: &types.Put{
				TableName:                aws.String(r.paymentsTable),
				Item:                     payAV,
				ConditionExpression:      aws.String("attribute_not_exists(#id) OR #status = :pending"),
				ExpressionAttributeNames: map[string]string{"#id": "id", "#status": "status"},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":pending": &types.AttributeValueMemberS{Value: string(entities.PaymentStatusPending)},
				},
			}},
		},
	})
	if err != nil {
		return entities.Order{}, versionConflict(err)
	}
	return o, nil
}

func (r *OrderDynamoRepository) versionedPut(o entities.Order, expectedVersion int) (*types.Put, error) {
	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return nil, err
	}
	return &types.Put{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("#version = :expected"),
		ExpressionAttributeNames: map[string]string{"#version": "version"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: strconv.Itoa(expectedVersion)},
		},
	}, nil
}

func toOrderItem(o entities.Order) orderItem {
	return orderItem{
		ID:                 o.ID,
		CustomerID:         o.CustomerID,
		ProfessionalID:     o.ProfessionalID,
		Status:             string(o.Status),
		TotalPrice:         formatDecimal(o.TotalPrice),
		TotalPaidAmount:    formatDecimal(o.TotalPaidAmount),
		Quantity:           o.Quantity,
		PriceUnit:          o.PriceUnit,
		QualityType:        o.QualityType,
		OrderDate:          formatTime(o.OrderDate),
		ScheduledAt:        formatTime(o.ScheduledAt),
		OrderNotes:         o.OrderNotes,
		InspectionNotes:    copyString(o.InspectionNotes),
		CancellationReason: copyString(o.CancellationReason),
		ContactRevealed:    o.ContactRevealed,
		AcceptedAt:         formatTimePtr(o.AcceptedAt),
		InspectedAt:        formatTimePtr(o.InspectedAt),
		CompletedAt:        formatTimePtr(o.CompletedAt),
		CancelledAt:        formatTimePtr(o.CancelledAt),
		UpdatedAt:          formatTime(o.UpdatedAt),
		Version:            o.Version,
	}
}

func fromOrderItem(it orderItem) entities.Order {
	return entities.Order{
		ID:                 it.ID,
		CustomerID:         it.CustomerID,
		ProfessionalID:     it.ProfessionalID,
		Status:             entities.OrderStatus(it.Status),
		TotalPrice:         parseDecimal(it.TotalPrice),
		TotalPaidAmount:    parseDecimal(it.TotalPaidAmount),
		Quantity:           it.Quantity,
		PriceUnit:          it.PriceUnit,
		QualityType:        it.QualityType,
		OrderDate:          parseTime(it.OrderDate),
		ScheduledAt:        parseTime(it.ScheduledAt),
		OrderNotes:         it.OrderNotes,
		InspectionNotes:    copyString(it.InspectionNotes),
		CancellationReason: copyString(it.CancellationReason),
		ContactRevealed:    it.ContactRevealed,
		AcceptedAt:         parseTimePtr(it.AcceptedAt),
		InspectedAt:        parseTimePtr(it.InspectedAt),
		CompletedAt:        parseTimePtr(it.CompletedAt),
		CancelledAt:        parseTimePtr(it.CancelledAt),
		UpdatedAt:          parseTime(it.UpdatedAt),
		Version:            it.Version,
	}
}
