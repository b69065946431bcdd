package room

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/TkachenkoRP/spring-booking/internal/hotel"
	"github.com/TkachenkoRP/spring-booking/internal/model"
	timex "github.com/TkachenkoRP/spring-booking/internal/pkg/time"
)

type Repository interface {
	Create(ctx context.Context, params Params) (*Room, error)
	List(ctx context.Context, f Filter, page model.Page) ([]Room, error)
	Find(ctx context.Context, roomID int64) (*Room, error)
	FindForUpdate(ctx context.Context, roomID int64) (*Room, error)
	Update(ctx context.Context, roomID int64, params Params) error
	Delete(ctx context.Context, roomID int64) error
	IsUnavailable(ctx context.Context, roomID int64, arrival, departure timex.Date) (bool, error)
	AddUnavailableDates(ctx context.Context, roomID int64, days []timex.Date) error
}

// HotelFinder resolves the hotel a room belongs to.
type HotelFinder interface {
	Find(ctx context.Context, hotelID int64) (*hotel.Hotel, error)
}

var _ HotelFinder = (*hotel.Service)(nil)

type Service struct {
	repo   Repository
	hotels HotelFinder
	today  func() timex.Date
}

func NewService(repo Repository, hotels HotelFinder) *Service {
	return &Service{
		repo:   repo,
		hotels: hotels,
		today:  timex.Today,
	}
}

// List returns one page of rooms. A complete date range is checked first
// and then excludes rooms booked on any overlapping day.
func (s *Service) List(ctx context.Context, f Filter, page model.Page) ([]Room, error) {
	if f.hasDates() {
		if err := CheckDates(*f.Arrival, *f.Departure, s.today()); err != nil {
			return nil, err
		}
	}
	return s.repo.List(ctx, f, page)
}

func (s *Service) Find(ctx context.Context, roomID int64) (*Room, error) {
	return s.repo.Find(ctx, roomID)
}

func (s *Service) FindForUpdate(ctx context.Context, roomID int64) (*Room, error) {
	return s.repo.FindForUpdate(ctx, roomID)
}

func (s *Service) Create(ctx context.Context, params Params) (*Room, error) {
	h, err := s.hotels.Find(ctx, params.HotelID)
	if err != nil {
		return nil, fmt.Errorf("room hotel %d: %w", params.HotelID, err)
	}

	rm, err := s.repo.Create(ctx, params)
	if err != nil {
		return nil, err
	}
	rm.HotelName = h.Name

	slog.Info("Room created.", "room_id", rm.ID, "hotel_id", h.ID)
	return rm, nil
}

func (s *Service) Update(ctx context.Context, roomID int64, params Params) (*Room, error) {
	if _, err := s.hotels.Find(ctx, params.HotelID); err != nil {
		return nil, fmt.Errorf("room hotel %d: %w", params.HotelID, err)
	}

	if err := s.repo.Update(ctx, roomID, params); err != nil {
		return nil, err
	}
	return s.repo.Find(ctx, roomID)
}

func (s *Service) Delete(ctx context.Context, roomID int64) error {
	return s.repo.Delete(ctx, roomID)
}

func (s *Service) IsUnavailable(ctx context.Context, roomID int64, arrival, departure timex.Date) (bool, error) {
	return s.repo.IsUnavailable(ctx, roomID, arrival, departure)
}

func (s *Service) AddUnavailableDates(ctx context.Context, roomID int64, days []timex.Date) error {
	return s.repo.AddUnavailableDates(ctx, roomID, days)
}
