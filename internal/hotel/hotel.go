package hotel

import (
	"database/sql"
	"errors"
	"math"

	"github.com/TkachenkoRP/spring-booking/internal/model"
	"github.com/TkachenkoRP/spring-booking/internal/platform/db"
	"github.com/TkachenkoRP/spring-booking/internal/platform/metrics"
)

const (
	MinMark = 1
	MaxMark = 5
)

var (
	ErrNotFound    = errors.New("hotel not found")
	ErrInvalidMark = errors.New("invalid mark")
)

type Hotel struct {
	model.Model

	Name                   string
	Title                  string
	City                   string
	Address                string
	DistanceFromCityCenter float64
	Rating                 float64
	NumberOfRatings        int
}

// Vote folds mark into the running rating.
// The first vote sets the rating to the mark.
func (h *Hotel) Vote(mark int) {
	n := float64(h.NumberOfRatings)
	if n == 0 {
		h.Rating = float64(mark)
	} else {
		total := h.Rating*n - h.Rating + float64(mark)
		h.Rating = Round2(total / n)
	}
	h.NumberOfRatings++
}

func Round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// Filter narrows List. Nil fields are ignored.
type Filter struct {
	ID              *int64
	Name            *string
	Title           *string
	City            *string
	Address         *string
	Distance        *float64
	Rating          *float64
	NumberOfRatings *int
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
	Metrics   *metrics.Metrics
}

func NewModule(deps *Deps) *Module {
	repo := NewRepository(deps.DB)
	svc := NewService(repo, deps.TxManager, deps.Metrics)
	return &Module{
		repo:    repo,
		svc:     svc,
		handler: NewHandler(svc),
	}
}
