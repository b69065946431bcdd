package auth

import (
	"slices"

	"github.com/TkachenkoRP/spring-booking/internal/config"
	"github.com/TkachenkoRP/spring-booking/internal/platform/hash"
	"github.com/TkachenkoRP/spring-booking/internal/platform/jwt"
	"github.com/TkachenkoRP/spring-booking/internal/user"
)

// Principal is the authenticated caller of a request.
type Principal struct {
	UserID int64
	Name   string
	Roles  []user.Role
}

func NewPrincipal(u *user.User) *Principal {
	return &Principal{
		UserID: u.ID,
		Name:   u.Name,
		Roles:  u.Roles,
	}
}

// HasAnyRole reports whether the principal holds at least one of roles.
func (p *Principal) HasAnyRole(roles ...user.Role) bool {
	for _, r := range roles {
		if slices.Contains(p.Roles, r) {
			return true
		}
	}
	return false
}

type Deps struct {
	Cfg     *config.JWT
	Hasher  hash.Hasher
	Signer  jwt.Signer
	UserSvc UserFinder
}

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

func NewModule(deps *Deps) *Module {
	svc := NewService(deps.UserSvc, deps.Hasher, deps.Signer, deps.Cfg)
	return &Module{
		svc:     svc,
		handler: NewHandler(svc),
	}
}
