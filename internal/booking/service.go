package booking

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/TkachenkoRP/spring-booking/internal/event"
	timex "github.com/TkachenkoRP/spring-booking/internal/pkg/time"
	"github.com/TkachenkoRP/spring-booking/internal/platform/db"
	"github.com/TkachenkoRP/spring-booking/internal/platform/metrics"
	"github.com/TkachenkoRP/spring-booking/internal/room"
	"github.com/TkachenkoRP/spring-booking/internal/user"
)

type Repository interface {
	Create(ctx context.Context, b *Booking) error
	List(ctx context.Context) ([]Booking, error)
}

// RoomLocker is the part of the room service a booking needs.
type RoomLocker interface {
	FindForUpdate(ctx context.Context, roomID int64) (*room.Room, error)
	IsUnavailable(ctx context.Context, roomID int64, arrival, departure timex.Date) (bool, error)
	AddUnavailableDates(ctx context.Context, roomID int64, days []timex.Date) error
}

type UserFinder interface {
	Find(ctx context.Context, userID int64) (*user.User, error)
}

var (
	_ RoomLocker = (*room.Service)(nil)
	_ UserFinder = (*user.Service)(nil)
)

type ServiceDeps struct {
	TxManager db.TxManager
	Rooms     RoomLocker
	Users     UserFinder
	Publisher event.Publisher
	Metrics   *metrics.Metrics
}

type Service struct {
	repo      Repository
	txMgr     db.TxManager
	rooms     RoomLocker
	users     UserFinder
	publisher event.Publisher
	metrics   *metrics.Metrics
}

func NewService(repo Repository, deps *ServiceDeps) *Service {
	return &Service{
		repo:      repo,
		txMgr:     deps.TxManager,
		rooms:     deps.Rooms,
		users:     deps.Users,
		publisher: deps.Publisher,
		metrics:   deps.Metrics,
	}
}

type CreateParams struct {
	ArrivalDate   timex.Date
	DepartureDate timex.Date
	RoomID        int64
}

func (s *Service) List(ctx context.Context) ([]Booking, error) {
	return s.repo.List(ctx)
}

// Create books the room for userID on every day from arrival to departure.
// The room row stays locked until the days are marked unavailable, so two
// overlapping requests cannot both succeed.
func (s *Service) Create(ctx context.Context, userID int64, params CreateParams) (*Booking, error) {
	if params.ArrivalDate.After(params.DepartureDate) {
		return nil, ErrInvalidDates
	}

	b := &Booking{
		ArrivalDate:   params.ArrivalDate,
		DepartureDate: params.DepartureDate,
		RoomID:        params.RoomID,
		UserID:        userID,
	}

	err := s.txMgr.RunInTx(ctx, func(txCtx context.Context) error {
		rm, err := s.rooms.FindForUpdate(txCtx, params.RoomID)
		if err != nil {
			return err
		}

		taken, err := s.rooms.IsUnavailable(txCtx, rm.ID, params.ArrivalDate, params.DepartureDate)
		if err != nil {
			return err
		}
		if taken {
			return ErrRoomUnavailable
		}

		days := room.Days(params.ArrivalDate, params.DepartureDate)
		if err := s.rooms.AddUnavailableDates(txCtx, rm.ID, days); err != nil {
			return err
		}

		if err := s.repo.Create(txCtx, b); err != nil {
			return err
		}

		u, err := s.users.Find(txCtx, userID)
		if err != nil {
			return fmt.Errorf("booking user %d: %w", userID, err)
		}

		b.Room, b.User = rm, u
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("book room %d: %w", params.RoomID, err)
	}

	slog.Info("Room booked.", "booking_id", b.ID, "room_id", b.RoomID, "user_id", userID)
	if s.metrics != nil {
		s.metrics.BookingsCreatedTotal.Inc()
	}
	s.publisher.PublishRoomBooked(ctx, event.NewRoomBookedEvent(userID, b.ArrivalDate, b.DepartureDate))

	return b, nil
}
