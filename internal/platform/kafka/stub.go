package kafka

import (
	"context"
	"errors"
)

type StubPublisher struct {
	PublishFunc func(ctx context.Context, msg Message) error
}

var _ Publisher = (*StubPublisher)(nil)

func (s *StubPublisher) Publish(ctx context.Context, msg Message) error {
	if s.PublishFunc == nil {
		return errors.New("Publish() not implemented by stub")
	}
	return s.PublishFunc(ctx, msg)
}

func (s *StubPublisher) Close() error {
	return nil
}

// StubConsumer hands Messages to the handler, then waits for ctx.
type StubConsumer struct {
	Messages []Message
}

var _ Consumer = (*StubConsumer)(nil)

func (s *StubConsumer) Consume(ctx context.Context, handle HandlerFunc) error {
	for _, msg := range s.Messages {
		_ = handle(ctx, msg)
	}
	<-ctx.Done()
	return nil
}

func (s *StubConsumer) Close() error {
	return nil
}
