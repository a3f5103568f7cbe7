package registry

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/anoop23822/Autoresponder-Telegram/internal/logger"
)

const dateFormat = "2006-01-02"

// Registry remembers which phone numbers were already greeted on a given
// day, so a re-invoked run does not message the same contact twice. It
// is best effort: a broken registry never blocks sending.
type Registry interface {
	WasSent(ctx context.Context, phone string, day time.Time) bool
	MarkSent(ctx context.Context, phone string, day time.Time)
}

// NewRegistry returns a DynamoDB-backed registry, or a no-op one when no
// table is configured.
func NewRegistry(ctx context.Context, tableName, region string) Registry {
	if tableName == "" {
		return noopRegistry{}
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		logger.GetLogger().Errorw("could not load AWS config, sent registry disabled",
			"error", err)
		return noopRegistry{}
	}

	return &dynamoRegistry{
		table:  tableName,
		client: dynamodb.NewFromConfig(cfg),
	}
}

type noopRegistry struct{}

func (noopRegistry) WasSent(context.Context, string, time.Time) bool { return false }
func (noopRegistry) MarkSent(context.Context, string, time.Time) {}

type dynamoRegistry struct {
	table  string
	client *dynamodb.Client
}

func itemID(phone string, day time.Time) string {
	return phone + "#" + day.Format(dateFormat)
}

func (r *dynamoRegistry) WasSent(ctx context.Context, phone string, day time.Time) bool {
	res, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.table),
		Key: map[string]types.AttributeValue{
			"Id": &types.AttributeValueMemberS{Value: itemID(phone, day)},
		},
	})
	if err != nil {
		logger.GetLogger().Errorw("sent registry lookup failed",
			"phone", phone,
			"error", err)
		return false
	}

	return len(res.Item) > 0
}

func (r *dynamoRegistry) MarkSent(ctx context.Context, phone string, day time.Time) {
	_, err := r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.table),
		Item: map[string]types.AttributeValue{
			"Id":     &types.AttributeValueMemberS{Value: itemID(phone, day)},
			"Phone":  &types.AttributeValueMemberS{Value: phone},
			"Day":    &types.AttributeValueMemberS{Value: day.Format(dateFormat)},
			"SentAt": &types.AttributeValueMemberS{Value: time.Now().Format(time.RFC822Z)},
		},
	})
	if err != nil {
		logger.GetLogger().Errorw("sent registry update failed",
			"phone", phone,
			"error", err)
	}
}
