package stats

import (
	"errors"

	"github.com/TkachenkoRP/spring-booking/internal/config"
	"github.com/TkachenkoRP/spring-booking/internal/event"
	"github.com/TkachenkoRP/spring-booking/internal/platform/metrics"
)

const (
	RoomBookedFile     = "exportedRoomBookedEventData.csv"
	UserRegisteredFile = "exportedUserRegisteredEventData.csv"
)

var (
	ErrCreateDir      = errors.New("stats: create export directory")
	ErrOutsideBaseDir = errors.New("stats: folder escapes the base directory")
)

type Module struct {
	svc     *Service
	handler *Handler
}

func (m *Module) Handler() *Handler {
	return m.handler
}

func (m *Module) Service() *Service {
	return m.svc
}

type Deps struct {
	Cfg     *config.Stats
	Store   event.Store
	Metrics *metrics.Metrics
}

func NewModule(deps *Deps) *Module {
	svc := NewService(deps.Store, deps.Cfg, deps.Metrics)
	return &Module{
		svc:     svc,
		handler: NewHandler(svc),
	}
}
