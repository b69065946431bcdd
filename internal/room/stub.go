package room

import (
	"context"
	"errors"

	"github.com/TkachenkoRP/spring-booking/internal/hotel"
	"github.com/TkachenkoRP/spring-booking/internal/model"
	timex "github.com/TkachenkoRP/spring-booking/internal/pkg/time"
)

type StubService struct {
	ListFunc   func(ctx context.Context, f Filter, page model.Page) ([]Room, error)
	FindFunc   func(ctx context.Context, roomID int64) (*Room, error)
	CreateFunc func(ctx context.Context, params Params) (*Room, error)
	UpdateFunc func(ctx context.Context, roomID int64, params Params) (*Room, error)
	DeleteFunc func(ctx context.Context, roomID int64) error
}

var _ RoomService = (*StubService)(nil)

func (s *StubService) List(ctx context.Context, f Filter, page model.Page) ([]Room, error) {
	if s.ListFunc == nil {
		return nil, errors.New("List() not implemented by stub")
	}
	return s.ListFunc(ctx, f, page)
}

func (s *StubService) Find(ctx context.Context, roomID int64) (*Room, error) {
	if s.FindFunc == nil {
		return nil, errors.New("Find() not implemented by stub")
	}
	return s.FindFunc(ctx, roomID)
}

func (s *StubService) Create(ctx context.Context, params Params) (*Room, error) {
	if s.CreateFunc == nil {
		return nil, errors.New("Create() not implemented by stub")
	}
	return s.CreateFunc(ctx, params)
}

func (s *StubService) Update(ctx context.Context, roomID int64, params Params) (*Room, error) {
	if s.UpdateFunc == nil {
		return nil, errors.New("Update() not implemented by stub")
	}
	return s.UpdateFunc(ctx, roomID, params)
}

func (s *StubService) Delete(ctx context.Context, roomID int64) error {
	if s.DeleteFunc == nil {
		return errors.New("Delete() not implemented by stub")
	}
	return s.DeleteFunc(ctx, roomID)
}

type StubRepo struct {
	CreateFunc              func(ctx context.Context, params Params) (*Room, error)
	ListFunc                func(ctx context.Context, f Filter, page model.Page) ([]Room, error)
	FindFunc                func(ctx context.Context, roomID int64) (*Room, error)
	FindForUpdateFunc       func(ctx context.Context, roomID int64) (*Room, error)
	UpdateFunc              func(ctx context.Context, roomID int64, params Params) error
	DeleteFunc              func(ctx context.Context, roomID int64) error
	IsUnavailableFunc       func(ctx context.Context, roomID int64, arrival, departure timex.Date) (bool, error)
	AddUnavailableDatesFunc func(ctx context.Context, roomID int64, days []timex.Date) error
}

var _ Repository = (*StubRepo)(nil)

func (r *StubRepo) Create(ctx context.Context, params Params) (*Room, error) {
	if r.CreateFunc == nil {
		return nil, errors.New("Create() not implemented by stub")
	}
	return r.CreateFunc(ctx, params)
}

func (r *StubRepo) List(ctx context.Context, f Filter, page model.Page) ([]Room, error) {
	if r.ListFunc == nil {
		return nil, errors.New("List() not implemented by stub")
	}
	return r.ListFunc(ctx, f, page)
}

func (r *StubRepo) Find(ctx context.Context, roomID int64) (*Room, error) {
	if r.FindFunc == nil {
		return nil, errors.New("Find() not implemented by stub")
	}
	return r.FindFunc(ctx, roomID)
}

func (r *StubRepo) FindForUpdate(ctx context.Context, roomID int64) (*Room, error) {
	if r.FindForUpdateFunc == nil {
		return nil, errors.New("FindForUpdate() not implemented by stub")
	}
	return r.FindForUpdateFunc(ctx, roomID)
}

func (r *StubRepo) Update(ctx context.Context, roomID int64, params Params) error {
	if r.UpdateFunc == nil {
		return errors.New("Update() not implemented by stub")
	}
	return r.UpdateFunc(ctx, roomID, params)
}

func (r *StubRepo) Delete(ctx context.Context, roomID int64) error {
	if r.DeleteFunc == nil {
		return errors.New("Delete() not implemented by stub")
	}
	return r.DeleteFunc(ctx, roomID)
}

func (r *StubRepo) IsUnavailable(ctx context.Context, roomID int64, arrival, departure timex.Date) (bool, error) {
	if r.IsUnavailableFunc == nil {
		return false, errors.New("IsUnavailable() not implemented by stub")
	}
	return r.IsUnavailableFunc(ctx, roomID, arrival, departure)
}

func (r *StubRepo) AddUnavailableDates(ctx context.Context, roomID int64, days []timex.Date) error {
	if r.AddUnavailableDatesFunc == nil {
		return errors.New("AddUnavailableDates() not implemented by stub")
	}
	return r.AddUnavailableDatesFunc(ctx, roomID, days)
}

type StubHotelFinder struct {
	FindFunc func(ctx context.Context, hotelID int64) (*hotel.Hotel, error)
}

var _ HotelFinder = (*StubHotelFinder)(nil)

func (s *StubHotelFinder) Find(ctx context.Context, hotelID int64) (*hotel.Hotel, error) {
	if s.FindFunc == nil {
		return nil, errors.New("Find() not implemented by stub")
	}
	return s.FindFunc(ctx, hotelID)
}
