package kafka

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/TkachenkoRP/spring-booking/internal/config"
	kafkago "github.com/segmentio/kafka-go"
)

// batchTimeout bounds how long a synchronous Publish waits for a batch to fill.
const batchTimeout = 10 * time.Millisecond

type KafkaPublisher struct {
	writer *kafkago.Writer
}

var _ Publisher = (*KafkaPublisher)(nil)

// NewPublisher creates a writer that routes each message by its Topic.
func NewPublisher(cfg *config.Kafka) *KafkaPublisher {
	w := &kafkago.Writer{
		Addr:                   kafkago.TCP(cfg.Brokers...),
		Balancer:               &kafkago.LeastBytes{},
		WriteTimeout:           cfg.WriteTimeout.Duration,
		BatchTimeout:           batchTimeout,
		RequiredAcks:           kafkago.RequireOne,
		AllowAutoTopicCreation: true,
	}

	return &KafkaPublisher{writer: w}
}

func (p *KafkaPublisher) Publish(ctx context.Context, msg Message) error {
	err := p.writer.WriteMessages(ctx, kafkago.Message{
		Topic: msg.Topic,
		Key:   msg.Key,
		Value: msg.Value,
	})
	if err != nil {
		return fmt.Errorf("write message to %s: %w", msg.Topic, err)
	}

	slog.Debug("Message published.", "topic", msg.Topic, "key", string(msg.Key))
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
