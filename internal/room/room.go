package room

import (
	"database/sql"
	"errors"

	"github.com/TkachenkoRP/spring-booking/internal/model"
	timex "github.com/TkachenkoRP/spring-booking/internal/pkg/time"
)

var (
	ErrNotFound     = errors.New("room not found")
	ErrInvalidDates = errors.New("arrival date is after departure date")
	ErrPastDates    = errors.New("dates in the past")
)

type Room struct {
	model.Model

	Name        string
	Description string
	Number      int
	Price       float64
	Capacity    int
	HotelID     int64
	HotelName   string
}

// Filter narrows List. Nil fields are ignored, and the date range only
// applies when both ends are set.
type Filter struct {
	ID         *int64
	Name       *string
	MinPrice   *float64
	MaxPrice   *float64
	CountGuest *int
	HotelID    *int64
	Arrival    *timex.Date
	Departure  *timex.Date
}

func (f Filter) hasDates() bool {
	return f.Arrival != nil && f.Departure != nil
}

// CheckDates rejects an inverted range and ranges reaching before today.
func CheckDates(arrival, departure, today timex.Date) error {
	if arrival.After(departure) {
		return ErrInvalidDates
	}
	if arrival.Before(today) || departure.Before(today) {
		return ErrPastDates
	}
	return nil
}

// Days lists every calendar day from arrival to departure, both included.
func Days(arrival, departure timex.Date) []timex.Date {
	days := make([]timex.Date, 0)
	for d := arrival; !d.After(departure); d = d.AddDays(1) {
		days = append(days, d)
	}
	return days
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
	DB     *sql.DB
	Hotels HotelFinder
}

func NewModule(deps *Deps) *Module {
	repo := NewRepository(deps.DB)
	svc := NewService(repo, deps.Hotels)
	return &Module{
		repo:    repo,
		svc:     svc,
		handler: NewHandler(svc),
	}
}
