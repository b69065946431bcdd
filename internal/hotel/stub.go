package hotel

import (
	"context"
	"errors"

	"github.com/TkachenkoRP/spring-booking/internal/model"
)

type StubService struct {
	ListFunc   func(ctx context.Context, f Filter, page model.Page) (*ListResult, error)
	FindFunc   func(ctx context.Context, hotelID int64) (*Hotel, error)
	CreateFunc func(ctx context.Context, params Params) (*Hotel, error)
	UpdateFunc func(ctx context.Context, hotelID int64, params Params) (*Hotel, error)
	DeleteFunc func(ctx context.Context, hotelID int64) error
	VoteFunc   func(ctx context.Context, hotelID int64, mark int) (*Hotel, error)
}

var _ HotelService = (*StubService)(nil)

func (s *StubService) List(ctx context.Context, f Filter, page model.Page) (*ListResult, error) {
	if s.ListFunc == nil {
		return nil, errors.New("List() not implemented by stub")
	}
	return s.ListFunc(ctx, f, page)
}

func (s *StubService) Find(ctx context.Context, hotelID int64) (*Hotel, error) {
	if s.FindFunc == nil {
		return nil, errors.New("Find() not implemented by stub")
	}
	return s.FindFunc(ctx, hotelID)
}

func (s *StubService) Create(ctx context.Context, params Params) (*Hotel, error) {
	if s.CreateFunc == nil {
		return nil, errors.New("Create() not implemented by stub")
	}
	return s.CreateFunc(ctx, params)
}

func (s *StubService) Update(ctx context.Context, hotelID int64, params Params) (*Hotel, error) {
	if s.UpdateFunc == nil {
		return nil, errors.New("Update() not implemented by stub")
	}
	return s.UpdateFunc(ctx, hotelID, params)
}

func (s *StubService) Delete(ctx context.Context, hotelID int64) error {
	if s.DeleteFunc == nil {
		return errors.New("Delete() not implemented by stub")
	}
	return s.DeleteFunc(ctx, hotelID)
}

func (s *StubService) Vote(ctx context.Context, hotelID int64, mark int) (*Hotel, error) {
	if s.VoteFunc == nil {
		return nil, errors.New("Vote() not implemented by stub")
	}
	return s.VoteFunc(ctx, hotelID, mark)
}

type StubRepo struct {
	CreateFunc        func(ctx context.Context, h *Hotel) error
	ListFunc          func(ctx context.Context, f Filter, page model.Page) ([]Hotel, error)
	CountFunc         func(ctx context.Context, f Filter) (int64, error)
	FindFunc          func(ctx context.Context, hotelID int64) (*Hotel, error)
	FindForUpdateFunc func(ctx context.Context, hotelID int64) (*Hotel, error)
	UpdateFunc        func(ctx context.Context, hotelID int64, params Params) error
	UpdateRatingFunc  func(ctx context.Context, h *Hotel) error
	DeleteFunc        func(ctx context.Context, hotelID int64) error
}

var _ Repository = (*StubRepo)(nil)

func (r *StubRepo) Create(ctx context.Context, h *Hotel) error {
	if r.CreateFunc == nil {
		return errors.New("Create() not implemented by stub")
	}
	return r.CreateFunc(ctx, h)
}

func (r *StubRepo) List(ctx context.Context, f Filter, page model.Page) ([]Hotel, error) {
	if r.ListFunc == nil {
		return nil, errors.New("List() not implemented by stub")
	}
	return r.ListFunc(ctx, f, page)
}

func (r *StubRepo) Count(ctx context.Context, f Filter) (int64, error) {
	if r.CountFunc == nil {
		return 0, errors.New("Count() not implemented by stub")
	}
	return r.CountFunc(ctx, f)
}

func (r *StubRepo) Find(ctx context.Context, hotelID int64) (*Hotel, error) {
	if r.FindFunc == nil {
		return nil, errors.New("Find() not implemented by stub")
	}
	return r.FindFunc(ctx, hotelID)
}

func (r *StubRepo) FindForUpdate(ctx context.Context, hotelID int64) (*Hotel, error) {
	if r.FindForUpdateFunc == nil {
		return nil, errors.New("FindForUpdate() not implemented by stub")
	}
	return r.FindForUpdateFunc(ctx, hotelID)
}

func (r *StubRepo) Update(ctx context.Context, hotelID int64, params Params) error {
	if r.UpdateFunc == nil {
		return errors.New("Update() not implemented by stub")
	}
	return r.UpdateFunc(ctx, hotelID, params)
}

func (r *StubRepo) UpdateRating(ctx context.Context, h *Hotel) error {
	if r.UpdateRatingFunc == nil {
		return errors.New("UpdateRating() not implemented by stub")
	}
	return r.UpdateRatingFunc(ctx, h)
}

func (r *StubRepo) Delete(ctx context.Context, hotelID int64) error {
	if r.DeleteFunc == nil {
		return errors.New("Delete() not implemented by stub")
	}
	return r.DeleteFunc(ctx, hotelID)
}
