package cloud

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/rs/zerolog/log"

	"github.com/ANIKETSHETTY47/household-energy-calculator/internal/domain"
)

// SNSClient publishes cost alerts to a topic.
type SNSClient struct {
	svc      *sns.Client
	topicArn string
}

func NewSNSClient(ctx context.Context, region, topicArn string) (*SNSClient, error) {
	cfg, err := loadConfig(ctx, region)
	if err != nil {
		return nil, err
	}

	return &SNSClient{
		svc:      sns.NewFromConfig(cfg),
		topicArn: topicArn,
	}, nil
}

func (c *SNSClient) SendAlert(ctx context.Context, subject, message string) error {
	result, err := c.svc.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(c.topicArn),
		Subject:  aws.String(subject),
		Message:  aws.String(message),
	})
	if err != nil {
		return fmt.Errorf("failed to publish to SNS: %w", err)
	}

	log.Debug().Str("message_id", aws.ToString(result.MessageId)).Msg("alert sent")
	return nil
}

// SendCostAlert notifies that a calculated cost went over the threshold.
func (c *SNSClient) SendCostAlert(ctx context.Context, rec domain.CalculationRecord, threshold float64) error {
	subject := fmt.Sprintf("Alerta de consumo: unidade consumidora %d", rec.ConsumerUnitID)
	message := fmt.Sprintf(
		"Custo estimado acima do limite\n\n"+
			"Unidade consumidora: %d\n"+
			"Período: %s\n"+
			"Consumo total: %.2f\n"+
			"Custo total: %.2f\n"+
			"Limite: %.2f\n"+
			"Data: %s",
		rec.ConsumerUnitID,
		rec.Period,
		rec.TotalConsumption,
		rec.TotalCost,
		threshold,
		rec.CreatedAt.Format(time.RFC3339),
	)

	return c.SendAlert(ctx, subject, message)
}
