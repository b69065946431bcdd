package event

import (
	"context"
	"errors"
	"sync"
)

// StubPublisher records every published event.
type StubPublisher struct {
	mu             sync.Mutex
	RoomBooked     []RoomBookedEvent
	UserRegistered []UserRegisteredEvent
}

var _ Publisher = (*StubPublisher)(nil)

func (s *StubPublisher) PublishRoomBooked(_ context.Context, e RoomBookedEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.RoomBooked = append(s.RoomBooked, e)
}

func (s *StubPublisher) PublishUserRegistered(_ context.Context, e UserRegisteredEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.UserRegistered = append(s.UserRegistered, e)
}

type StubStore struct {
	AddRoomBookedFunc     func(ctx context.Context, e RoomBookedEvent) error
	AddUserRegisteredFunc func(ctx context.Context, e UserRegisteredEvent) error
	RoomBookedFunc        func(ctx context.Context) ([]RoomBookedEvent, error)
	UserRegisteredFunc    func(ctx context.Context) ([]UserRegisteredEvent, error)
}

var _ Store = (*StubStore)(nil)

func (s *StubStore) AddRoomBooked(ctx context.Context, e RoomBookedEvent) error {
	if s.AddRoomBookedFunc == nil {
		return errors.New("AddRoomBooked() not implemented by stub")
	}
	return s.AddRoomBookedFunc(ctx, e)
}

func (s *StubStore) AddUserRegistered(ctx context.Context, e UserRegisteredEvent) error {
	if s.AddUserRegisteredFunc == nil {
		return errors.New("AddUserRegistered() not implemented by stub")
	}
	return s.AddUserRegisteredFunc(ctx, e)
}

func (s *StubStore) RoomBooked(ctx context.Context) ([]RoomBookedEvent, error) {
	if s.RoomBookedFunc == nil {
		return nil, errors.New("RoomBooked() not implemented by stub")
	}
	return s.RoomBookedFunc(ctx)
}

func (s *StubStore) UserRegistered(ctx context.Context) ([]UserRegisteredEvent, error) {
	if s.UserRegisteredFunc == nil {
		return nil, errors.New("UserRegistered() not implemented by stub")
	}
	return s.UserRegisteredFunc(ctx)
}
