package booking

import (
	"context"
	"errors"

	timex "github.com/TkachenkoRP/spring-booking/internal/pkg/time"
	"github.com/TkachenkoRP/spring-booking/internal/room"
	"github.com/TkachenkoRP/spring-booking/internal/user"
)

type StubService struct {
	ListFunc   func(ctx context.Context) ([]Booking, error)
	CreateFunc func(ctx context.Context, userID int64, params CreateParams) (*Booking, error)
}

var _ BookingService = (*StubService)(nil)

func (s *StubService) List(ctx context.Context) ([]Booking, error) {
	if s.ListFunc == nil {
		return nil, errors.New("List() not implemented by stub")
	}
	return s.ListFunc(ctx)
}

func (s *StubService) Create(ctx context.Context, userID int64, params CreateParams) (*Booking, error) {
	if s.CreateFunc == nil {
		return nil, errors.New("Create() not implemented by stub")
	}
	return s.CreateFunc(ctx, userID, params)
}

type StubRepo struct {
	CreateFunc func(ctx context.Context, b *Booking) error
	ListFunc   func(ctx context.Context) ([]Booking, error)
}

var _ Repository = (*StubRepo)(nil)

func (r *StubRepo) Create(ctx context.Context, b *Booking) error {
	if r.CreateFunc == nil {
		return errors.New("Create() not implemented by stub")
	}
	return r.CreateFunc(ctx, b)
}

func (r *StubRepo) List(ctx context.Context) ([]Booking, error) {
	if r.ListFunc == nil {
		return nil, errors.New("List() not implemented by stub")
	}
	return r.ListFunc(ctx)
}

type StubRoomLocker struct {
	FindForUpdateFunc       func(ctx context.Context, roomID int64) (*room.Room, error)
	IsUnavailableFunc       func(ctx context.Context, roomID int64, arrival, departure timex.Date) (bool, error)
	AddUnavailableDatesFunc func(ctx context.Context, roomID int64, days []timex.Date) error
}

var _ RoomLocker = (*StubRoomLocker)(nil)

func (s *StubRoomLocker) FindForUpdate(ctx context.Context, roomID int64) (*room.Room, error) {
	if s.FindForUpdateFunc == nil {
		return nil, errors.New("FindForUpdate() not implemented by stub")
	}
	return s.FindForUpdateFunc(ctx, roomID)
}

func (s *StubRoomLocker) IsUnavailable(ctx context.Context, roomID int64, arrival, departure timex.Date) (bool, error) {
	if s.IsUnavailableFunc == nil {
		return false, errors.New("IsUnavailable() not implemented by stub")
	}
	return s.IsUnavailableFunc(ctx, roomID, arrival, departure)
}

func (s *StubRoomLocker) AddUnavailableDates(ctx context.Context, roomID int64, days []timex.Date) error {
	if s.AddUnavailableDatesFunc == nil {
		return errors.New("AddUnavailableDates() not implemented by stub")
	}
	return s.AddUnavailableDatesFunc(ctx, roomID, days)
}

type StubUserFinder struct {
	FindFunc func(ctx context.Context, userID int64) (*user.User, error)
}

var _ UserFinder = (*StubUserFinder)(nil)

func (s *StubUserFinder) Find(ctx context.Context, userID int64) (*user.User, error) {
	if s.FindFunc == nil {
		return nil, errors.New("Find() not implemented by stub")
	}
	return s.FindFunc(ctx, userID)
}
