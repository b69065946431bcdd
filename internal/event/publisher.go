package event

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"

	"github.com/TkachenkoRP/spring-booking/internal/config"
	"github.com/TkachenkoRP/spring-booking/internal/platform/kafka"
	"github.com/TkachenkoRP/spring-booking/internal/platform/metrics"
)

type KafkaPublisher struct {
	pub     kafka.Publisher
	cfg     *config.Kafka
	metrics *metrics.Metrics
}

var _ Publisher = (*KafkaPublisher)(nil)

func NewKafkaPublisher(pub kafka.Publisher, cfg *config.Kafka, m *metrics.Metrics) *KafkaPublisher {
	return &KafkaPublisher{
		pub:     pub,
		cfg:     cfg,
		metrics: m,
	}
}

func (p *KafkaPublisher) PublishRoomBooked(ctx context.Context, e RoomBookedEvent) {
	p.publish(ctx, p.cfg.RoomBookedTopic, e.UserID, e)
}

func (p *KafkaPublisher) PublishUserRegistered(ctx context.Context, e UserRegisteredEvent) {
	p.publish(ctx, p.cfg.UserRegisteredTopic, e.UserID, e)
}

func (p *KafkaPublisher) publish(ctx context.Context, topic string, userID int64, payload any) {
	value, err := json.Marshal(payload)
	if err != nil {
		p.record(topic, err)
		slog.Error("failed to encode event", "topic", topic, "reason", err)
		return
	}

	// a cancelled request must not drop an event for data that is already stored
	ctx = context.WithoutCancel(ctx)
	msg := kafka.Message{
		Topic: topic,
		Key:   []byte(strconv.FormatInt(userID, 10)),
		Value: value,
	}
	if err := p.pub.Publish(ctx, msg); err != nil {
		p.record(topic, err)
		slog.Error("failed to publish event", "topic", topic, "user_id", userID, "reason", err)
		return
	}

	p.record(topic, nil)
	slog.Info("Event published.", "topic", topic, "user_id", userID)
}

func (p *KafkaPublisher) record(topic string, err error) {
	if p.metrics == nil {
		return
	}
	result := "success"
	if err != nil {
		result = "error"
	}
	p.metrics.EventsPublishedTotal.WithLabelValues(topic, result).Inc()
}
