package hotel

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/TkachenkoRP/spring-booking/internal/model"
	"github.com/TkachenkoRP/spring-booking/internal/platform/db"
	"github.com/TkachenkoRP/spring-booking/internal/platform/metrics"
)

type Repository interface {
	Create(ctx context.Context, h *Hotel) error
	List(ctx context.Context, f Filter, page model.Page) ([]Hotel, error)
	Count(ctx context.Context, f Filter) (int64, error)
	Find(ctx context.Context, hotelID int64) (*Hotel, error)
	FindForUpdate(ctx context.Context, hotelID int64) (*Hotel, error)
	Update(ctx context.Context, hotelID int64, params Params) error
	UpdateRating(ctx context.Context, h *Hotel) error
	Delete(ctx context.Context, hotelID int64) error
}

type Service struct {
	repo    Repository
	txMgr   db.TxManager
	metrics *metrics.Metrics
}

func NewService(repo Repository, txMgr db.TxManager, m *metrics.Metrics) *Service {
	return &Service{
		repo:    repo,
		txMgr:   txMgr,
		metrics: m,
	}
}

// ListResult is one page of hotels plus the number of all matching hotels.
type ListResult struct {
	Hotels     []Hotel
	TotalCount int64
	Page       model.Page
}

func (s *Service) List(ctx context.Context, f Filter, page model.Page) (*ListResult, error) {
	hotels, err := s.repo.List(ctx, f, page)
	if err != nil {
		return nil, err
	}

	total, err := s.repo.Count(ctx, f)
	if err != nil {
		return nil, err
	}

	return &ListResult{Hotels: hotels, TotalCount: total, Page: page}, nil
}

func (s *Service) Find(ctx context.Context, hotelID int64) (*Hotel, error) {
	return s.repo.Find(ctx, hotelID)
}

// Create stores a new hotel with no ratings.
func (s *Service) Create(ctx context.Context, params Params) (*Hotel, error) {
	h := &Hotel{
		Name:                   params.Name,
		Title:                  params.Title,
		City:                   params.City,
		Address:                params.Address,
		DistanceFromCityCenter: params.DistanceFromCityCenter,
	}
	if err := s.repo.Create(ctx, h); err != nil {
		return nil, err
	}

	slog.Info("Hotel created.", "hotel_id", h.ID)
	return h, nil
}

// Seed stores h as is, ratings included.
func (s *Service) Seed(ctx context.Context, h *Hotel) error {
	return s.repo.Create(ctx, h)
}

func (s *Service) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx, Filter{})
}

func (s *Service) Update(ctx context.Context, hotelID int64, params Params) (*Hotel, error) {
	if err := s.repo.Update(ctx, hotelID, params); err != nil {
		return nil, err
	}
	return s.repo.Find(ctx, hotelID)
}

func (s *Service) Delete(ctx context.Context, hotelID int64) error {
	return s.repo.Delete(ctx, hotelID)
}

// Vote adds mark to the hotel rating while holding the hotel row lock.
func (s *Service) Vote(ctx context.Context, hotelID int64, mark int) (*Hotel, error) {
	if mark < MinMark || mark > MaxMark {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMark, mark)
	}

	var voted *Hotel
	err := s.txMgr.RunInTx(ctx, func(txCtx context.Context) error {
		h, err := s.repo.FindForUpdate(txCtx, hotelID)
		if err != nil {
			return err
		}

		h.Vote(mark)
		if err := s.repo.UpdateRating(txCtx, h); err != nil {
			return err
		}

		voted = h
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("vote for hotel %d: %w", hotelID, err)
	}

	if s.metrics != nil {
		s.metrics.HotelVotesTotal.WithLabelValues(strconv.Itoa(mark)).Inc()
	}

	return voted, nil
}
