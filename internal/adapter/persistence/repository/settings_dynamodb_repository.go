package repository

import (
	"context"
	"encoding/json"
	"time"

	"joalheria_xpto/internal/domain/entities"
	"joalheria_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

const (
	defaultSettingsTableName = "settings"
	settingsItemID           = "pricing-settings"
)

type settingsItem struct {
	ID       string `dynamodbav:"id"`
	Blob     string `dynamodbav:"blob"`
	SyncedAt string `dynamodbav:"synced_at,omitempty"`
}

// SettingsDynamoRepository persists the single Settings value as one item
// holding an opaque JSON blob plus the last-synced timestamp.
//
// A missing item or a blob that fails the structural check on load falls
// back to the built-in defaults; a broken blob must never block startup.

type SettingsDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
	log       *zap.Logger
}

var _ interfaces.ISettingsRepository = (*SettingsDynamoRepository)(nil)

func NewSettingsDynamoRepository(ddb *dynamodb.Client, log *zap.Logger) *SettingsDynamoRepository {
	if log == nil {
		log = zap.NewNop()
	}
	return &SettingsDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SETTINGS_TABLE", defaultSettingsTableName),
		log:       log,
	}
}

func (r *SettingsDynamoRepository) Load(ctx context.Context) (entities.Settings, time.Time, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: settingsItemID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Settings{}, time.Time{}, err
	}
	if len(out.Item) == 0 {
		return entities.DefaultSettings(), time.Time{}, nil
	}

	var it settingsItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Settings{}, time.Time{}, err
	}

	var s entities.Settings
	if err := json.Unmarshal([]byte(it.Blob), &s); err != nil {
		r.log.Warn("discarding unreadable settings blob", zap.Error(err))
		return entities.DefaultSettings(), time.Time{}, nil
	}
	if err := s.Validate(); err != nil {
		r.log.Warn("discarding structurally invalid settings blob", zap.Error(err))
		return entities.DefaultSettings(), time.Time{}, nil
	}

	syncedAt, _ := time.Parse(time.RFC3339Nano, it.SyncedAt)
	return s, syncedAt, nil
}

func (r *SettingsDynamoRepository) Save(ctx context.Context, s entities.Settings, syncedAt time.Time) error {
	blob, err := json.Marshal(s)
	if err != nil {
		return err
	}

	it := settingsItem{
		ID:   settingsItemID,
		Blob: string(blob),
	}
	if !syncedAt.IsZero() {
		it.SyncedAt = syncedAt.UTC().Format(time.RFC3339Nano)
	}

	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}
