package repository

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"joalheria_xpto/internal/domain/entities"
	"joalheria_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultEstimatesTableName = "estimates"

type stoneEntryItem struct {
	StoneTypeID string `dynamodbav:"stone_type_id"`
	Name        string `dynamodbav:"name"`
	Weight      string `dynamodbav:"weight"`
	Quantity    int    `dynamodbav:"quantity"`
}

type estimateItem struct {
	ID              string           `dynamodbav:"id"`
	CreatedAt       string           `dynamodbav:"created_at"`
	ProductName     string           `dynamodbav:"product_name"`
	ProductImageURL string           `dynamodbav:"product_image_url,omitempty"`
	Purity          string           `dynamodbav:"purity"`
	NetGoldWeight   string           `dynamodbav:"net_gold_weight"`
	Stones          []stoneEntryItem `dynamodbav:"stones,omitempty"`
}

// EstimateDynamoRepository persists EstimateRecord entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Items hold raw physical quantities only; weights are stored as exact
// decimal strings so a record round-trips bit-for-bit into the calculator.
// Records are immutable: there is no update path, only Save and Delete.

type EstimateDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEstimateRepository = (*EstimateDynamoRepository)(nil)

func NewEstimateDynamoRepository(ddb *dynamodb.Client) *EstimateDynamoRepository {
	return &EstimateDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ESTIMATES_TABLE", defaultEstimatesTableName),
	}
}

func (r *EstimateDynamoRepository) Save(ctx context.Context, rec entities.EstimateRecord) (entities.EstimateRecord, error) {
	av, err := attributevalue.MarshalMap(toEstimateItem(rec))
	if err != nil {
		return entities.EstimateRecord{}, err
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
		return entities.EstimateRecord{}, err
	}
	return rec, nil
}

func (r *EstimateDynamoRepository) GetByID(ctx context.Context, id string) (entities.EstimateRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.EstimateRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.EstimateRecord{}, nil
	}

	var it estimateItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.EstimateRecord{}, err
	}
	return fromEstimateItem(it), nil
}

// List scans the table and applies the raw-field filters in memory. The
// history table is small (one item per saved calculation of a single shop),
// so a filtered scan beats maintaining GSIs per filter dimension.
func (r *EstimateDynamoRepository) List(ctx context.Context, f entities.EstimateFilter) ([]entities.EstimateRecord, error) {
	var records []entities.EstimateRecord
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		var items []estimateItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			rec := fromEstimateItem(it)
			if matchesRawFilter(rec, f) {
				records = append(records, rec)
			}
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return records, nil
}

func (r *EstimateDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// matchesRawFilter covers the stored-fact dimensions only. Price-range
// filtering belongs to the use case, after live totals exist.
func matchesRawFilter(rec entities.EstimateRecord, f entities.EstimateFilter) bool {
	if q := strings.ToLower(strings.TrimSpace(f.NameQuery)); q != "" {
		if !strings.Contains(strings.ToLower(rec.ProductName), q) {
			return false
		}
	}
	if len(f.Purities) > 0 && !containsString(f.Purities, rec.Purity) {
		return false
	}
	if f.MinGoldWeight != nil && rec.NetGoldWeight < *f.MinGoldWeight {
		return false
	}
	if f.MaxGoldWeight != nil && rec.NetGoldWeight > *f.MaxGoldWeight {
		return false
	}
	if len(f.StoneTypeIDs) > 0 {
		found := false
		for _, st := range rec.Stones {
			if containsString(f.StoneTypeIDs, st.StoneTypeID) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func containsString(haystack []string, needle string) bool {
	for _, v := range haystack {
		if v == needle {
			return true
		}
	}
	return false
}

func toEstimateItem(rec entities.EstimateRecord) estimateItem {
	stones := make([]stoneEntryItem, 0, len(rec.Stones))
	for _, st := range rec.Stones {
		stones = append(stones, stoneEntryItem{
			StoneTypeID: st.StoneTypeID,
			Name:        st.Name,
			Weight:      floatToString(st.Weight),
			Quantity:    st.Quantity,
		})
	}
	return estimateItem{
		ID:              rec.ID,
		CreatedAt:       rec.CreatedAt.UTC().Format(time.RFC3339Nano),
		ProductName:     rec.ProductName,
		ProductImageURL: rec.ProductImageURL,
		Purity:          rec.Purity,
		NetGoldWeight:   floatToString(rec.NetGoldWeight),
		Stones:          stones,
	}
}

func fromEstimateItem(it estimateItem) entities.EstimateRecord {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	netGoldWeight, _ := strconv.ParseFloat(it.NetGoldWeight, 64)
	stones := make([]entities.StoneEntry, 0, len(it.Stones))
	for _, st := range it.Stones {
		weight, _ := strconv.ParseFloat(st.Weight, 64)
		stones = append(stones, entities.StoneEntry{
			StoneTypeID: st.StoneTypeID,
			Name:        st.Name,
			Weight:      weight,
			Quantity:    st.Quantity,
		})
	}
	return entities.EstimateRecord{
		ID:              it.ID,
		CreatedAt:       createdAt,
		ProductName:     it.ProductName,
		ProductImageURL: it.ProductImageURL,
		Purity:          it.Purity,
		NetGoldWeight:   netGoldWeight,
		Stones:          stones,
	}
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
