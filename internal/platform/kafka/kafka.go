package kafka

import (
	"context"
)

// Message is a record read from or written to a topic.
type Message struct {
	Topic string
	Key   []byte
	Value []byte
}

type Publisher interface {
	Publish(ctx context.Context, msg Message) error
	Close() error
}

// HandlerFunc processes one consumed message. A returned error is logged
// by the consumer and the message is skipped.
type HandlerFunc func(ctx context.Context, msg Message) error

type Consumer interface {
	Consume(ctx context.Context, handle HandlerFunc) error
	Close() error
}
