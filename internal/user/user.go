package user

import (
	"database/sql"
	"errors"
	"fmt"
	"slices"

	"github.com/TkachenkoRP/spring-booking/internal/event"
	"github.com/TkachenkoRP/spring-booking/internal/model"
	"github.com/TkachenkoRP/spring-booking/internal/platform/db"
	"github.com/TkachenkoRP/spring-booking/internal/platform/hash"
	"github.com/TkachenkoRP/spring-booking/internal/platform/metrics"
)

type Role string

const (
	RoleUser  Role = "ROLE_USER"
	RoleAdmin Role = "ROLE_ADMIN"
)

var (
	ErrNotFound    = errors.New("user not found")
	ErrDuplicate   = errors.New("user already registered")
	ErrInvalidRole = errors.New("invalid role")
)

func ParseRole(s string) (Role, error) {
	switch r := Role(s); r {
	case RoleUser, RoleAdmin:
		return r, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidRole, s)
	}
}

type User struct {
	model.Model

	Name         string
	Email        string
	PasswordHash string
	Roles        []Role
}

func (u *User) HasRole(role Role) bool {
	return slices.Contains(u.Roles, role)
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
	Hasher    hash.Hasher
	Publisher event.Publisher
	Metrics   *metrics.Metrics
}

func NewModule(deps *Deps) *Module {
	repo := NewRepository(deps.DB)
	svc := NewService(repo, deps.TxManager, deps.Hasher, deps.Publisher, deps.Metrics)
	handler := NewHandler(svc)
	return &Module{
		repo:    repo,
		svc:     svc,
		handler: handler,
	}
}
