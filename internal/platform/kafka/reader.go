package kafka

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/TkachenkoRP/spring-booking/internal/config"
	kafkago "github.com/segmentio/kafka-go"
)

type KafkaConsumer struct {
	reader *kafkago.Reader
}

var _ Consumer = (*KafkaConsumer)(nil)

// NewConsumer joins the configured consumer group on the given topics.
func NewConsumer(cfg *config.Kafka, topics ...string) *KafkaConsumer {
	r := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:     cfg.Brokers,
		GroupID:     cfg.GroupID,
		GroupTopics: topics,
		StartOffset: kafkago.FirstOffset,
	})

	return &KafkaConsumer{reader: r}
}

// Consume blocks until ctx is done or the reader fails.
// Offsets are committed after handle returns, whatever its result.
func (c *KafkaConsumer) Consume(ctx context.Context, handle HandlerFunc) error {
	slog.Info("Kafka consumer started.", "group_id", c.reader.Config().GroupID, "topics", c.reader.Config().GroupTopics)

	for {
		m, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				slog.Info("Kafka consumer stopped.")
				return nil
			}
			return fmt.Errorf("fetch message: %w", err)
		}

		msg := Message{Topic: m.Topic, Key: m.Key, Value: m.Value}
		if err := handle(ctx, msg); err != nil {
			slog.Error("failed to handle message", "topic", m.Topic, "partition", m.Partition, "offset", m.Offset, "reason", err)
		}

		if err := c.reader.CommitMessages(ctx, m); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("commit message: %w", err)
		}
	}
}

func (c *KafkaConsumer) Close() error {
	return c.reader.Close()
}
