package auth

import (
	"context"
	"errors"

	"github.com/TkachenkoRP/spring-booking/internal/user"
)

type StubService struct {
	AuthenticateFunc func(ctx context.Context, name, password string) (*Principal, error)
	VerifyTokenFunc  func(ctx context.Context, token string) (*Principal, error)
	LoginFunc        func(ctx context.Context, name, password string) (*Token, error)
}

var _ AuthService = (*StubService)(nil)

func (s *StubService) Authenticate(ctx context.Context, name, password string) (*Principal, error) {
	if s.AuthenticateFunc == nil {
		return nil, errors.New("Authenticate() not implemented by stub")
	}
	return s.AuthenticateFunc(ctx, name, password)
}

func (s *StubService) VerifyToken(ctx context.Context, token string) (*Principal, error) {
	if s.VerifyTokenFunc == nil {
		return nil, errors.New("VerifyToken() not implemented by stub")
	}
	return s.VerifyTokenFunc(ctx, token)
}

func (s *StubService) Login(ctx context.Context, name, password string) (*Token, error) {
	if s.LoginFunc == nil {
		return nil, errors.New("Login() not implemented by stub")
	}
	return s.LoginFunc(ctx, name, password)
}

type StubUserFinder struct {
	FindFunc       func(ctx context.Context, userID int64) (*user.User, error)
	FindByNameFunc func(ctx context.Context, name string) (*user.User, error)
}

var _ UserFinder = (*StubUserFinder)(nil)

func (s *StubUserFinder) Find(ctx context.Context, userID int64) (*user.User, error) {
	if s.FindFunc == nil {
		return nil, errors.New("Find() not implemented by stub")
	}
	return s.FindFunc(ctx, userID)
}

func (s *StubUserFinder) FindByName(ctx context.Context, name string) (*user.User, error) {
	if s.FindByNameFunc == nil {
		return nil, errors.New("FindByName() not implemented by stub")
	}
	return s.FindByNameFunc(ctx, name)
}
