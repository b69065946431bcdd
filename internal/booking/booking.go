package booking

import (
	"database/sql"
	"errors"
	"time"

	"github.com/TkachenkoRP/spring-booking/internal/event"
	timex "github.com/TkachenkoRP/spring-booking/internal/pkg/time"
	"github.com/TkachenkoRP/spring-booking/internal/platform/db"
	"github.com/TkachenkoRP/spring-booking/internal/platform/metrics"
	"github.com/TkachenkoRP/spring-booking/internal/room"
	"github.com/TkachenkoRP/spring-booking/internal/user"
)

var (
	ErrInvalidDates    = errors.New("arrival date is after departure date")
	ErrRoomUnavailable = errors.New("room is booked on the requested dates")
)

type Booking struct {
	ID            int64
	ArrivalDate   timex.Date
	DepartureDate timex.Date
	RoomID        int64
	UserID        int64
	CreatedAt     time.Time

	Room *room.Room
	User *user.User
}

type Module struct {
	repo    *SQLRepository
	svc     *Service
	handler *Handler
}

func (m *Module) Handler() *Handler {
	return m.handler
}

func (m *Module) Service() *Service {
	return m.svc
}

func (m *Module) Repository() *SQLRepository {
	return m.repo
}

type Deps struct {
	DB        *sql.DB
	TxManager db.TxManager
	Rooms     RoomLocker
	Users     UserFinder
	Publisher event.Publisher
	Metrics   *metrics.Metrics
}

func NewModule(deps *Deps) *Module {
	repo := NewRepository(deps.DB)
	svc := NewService(repo, &ServiceDeps{
		TxManager: deps.TxManager,
		Rooms:     deps.Rooms,
		Users:     deps.Users,
		Publisher: deps.Publisher,
		Metrics:   deps.Metrics,
	})
	return &Module{
		repo:    repo,
		svc:     svc,
		handler: NewHandler(svc),
	}
}
