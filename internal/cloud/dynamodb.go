package cloud

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/ANIKETSHETTY47/household-energy-calculator/internal/domain"
)

// DynamoDBClient keeps the calculation history. The table is keyed by
// unitId (partition) and timestamp (sort, unix nanoseconds).
type DynamoDBClient struct {
	svc   *dynamodb.Client
	table string
}

func NewDynamoDBClient(ctx context.Context, region, table string) (*DynamoDBClient, error) {
	cfg, err := loadConfig(ctx, region)
	if err != nil {
		return nil, err
	}

	return &DynamoDBClient{
		svc:   dynamodb.NewFromConfig(cfg),
		table: table,
	}, nil
}

// Calculation is the DynamoDB item for one calculation.
type Calculation struct {
	UnitID           int64   `dynamodbav:"unitId"`
	Timestamp        int64   `dynamodbav:"timestamp"`
	CalculationID    string  `dynamodbav:"calculationId"`
	TariffID         int64   `dynamodbav:"tariffId"`
	Period           string  `dynamodbav:"period"`
	DeviceIDs        []int64 `dynamodbav:"deviceIds"`
	TotalConsumption float64 `dynamodbav:"totalConsumption"`
	TotalCost        float64 `dynamodbav:"totalCost"`
}

func toItem(rec domain.CalculationRecord) Calculation {
	return Calculation{
		UnitID:           rec.ConsumerUnitID,
		Timestamp:        rec.CreatedAt.UnixNano(),
		CalculationID:    rec.ID,
		TariffID:         rec.TariffID,
		Period:           string(rec.Period),
		DeviceIDs:        rec.DeviceIDs,
		TotalConsumption: rec.TotalConsumption,
		TotalCost:        rec.TotalCost,
	}
}

func (c Calculation) record() domain.CalculationRecord {
	return domain.CalculationRecord{
		ID:             c.CalculationID,
		ConsumerUnitID: c.UnitID,
		TariffID:       c.TariffID,
		Period:         domain.Period(c.Period),
		DeviceIDs:      c.DeviceIDs,
		CalculationResult: domain.CalculationResult{
			TotalConsumption: c.TotalConsumption,
			TotalCost:        c.TotalCost,
		},
		CreatedAt: time.Unix(0, c.Timestamp).UTC(),
	}
}

func (c *DynamoDBClient) RecordCalculation(ctx context.Context, rec domain.CalculationRecord) error {
	item, err := attributevalue.MarshalMap(toItem(rec))
	if err != nil {
		return fmt.Errorf("failed to marshal calculation: %w", err)
	}

	_, err = c.svc.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(c.table),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("failed to put item in DynamoDB: %w", err)
	}

	return nil
}

// ListCalculations returns the unit's calculations, newest first.
func (c *DynamoDBClient) ListCalculations(ctx context.Context, unitID int64) ([]domain.CalculationRecord, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(c.table),
		KeyConditionExpression: aws.String("unitId = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberN{Value: strconv.FormatInt(unitID, 10)},
		},
		ScanIndexForward: aws.Bool(false),
	}

	out := []domain.CalculationRecord{}
	paginator := dynamodb.NewQueryPaginator(c.svc, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to query DynamoDB: %w", err)
		}

		var items []Calculation
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, fmt.Errorf("failed to unmarshal calculations: %w", err)
		}
		for _, it := range items {
			out = append(out, it.record())
		}
	}

	return out, nil
}
