package event

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/TkachenkoRP/spring-booking/internal/config"
	"github.com/TkachenkoRP/spring-booking/internal/platform/kafka"
	"github.com/TkachenkoRP/spring-booking/internal/platform/metrics"
)

// Listener copies the events read from the broker into the Store.
type Listener struct {
	consumer kafka.Consumer
	store    Store
	cfg      *config.Kafka
	metrics  *metrics.Metrics
}

func NewListener(consumer kafka.Consumer, store Store, cfg *config.Kafka, m *metrics.Metrics) *Listener {
	return &Listener{
		consumer: consumer,
		store:    store,
		cfg:      cfg,
		metrics:  m,
	}
}

// Run blocks until ctx is cancelled.
func (l *Listener) Run(ctx context.Context) error {
	return l.consumer.Consume(ctx, l.Handle)
}

// Handle decodes msg by its topic and stores it.
func (l *Listener) Handle(ctx context.Context, msg kafka.Message) error {
	err := l.handle(ctx, msg)
	if l.metrics != nil {
		result := "success"
		if err != nil {
			result = "error"
		}
		l.metrics.EventsConsumedTotal.WithLabelValues(msg.Topic, result).Inc()
	}
	return err
}

func (l *Listener) handle(ctx context.Context, msg kafka.Message) error {
	switch msg.Topic {
	case l.cfg.RoomBookedTopic:
		var e RoomBookedEvent
		if err := json.Unmarshal(msg.Value, &e); err != nil {
			return fmt.Errorf("decode room booked event: %w", err)
		}
		if err := l.store.AddRoomBooked(ctx, e); err != nil {
			return fmt.Errorf("store room booked event: %w", err)
		}
		slog.Info("Room booked event received.", "user_id", e.UserID, "check_in", e.CheckInDate, "check_out", e.CheckOutDate)
	case l.cfg.UserRegisteredTopic:
		var e UserRegisteredEvent
		if err := json.Unmarshal(msg.Value, &e); err != nil {
			return fmt.Errorf("decode user registered event: %w", err)
		}
		if err := l.store.AddUserRegistered(ctx, e); err != nil {
			return fmt.Errorf("store user registered event: %w", err)
		}
		slog.Info("User registered event received.", "user_id", e.UserID)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownTopic, msg.Topic)
	}
	return nil
}

func (l *Listener) Topics() []string {
	return []string{l.cfg.RoomBookedTopic, l.cfg.UserRegisteredTopic}
}
