package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/TkachenkoRP/spring-booking/internal/config"
	"github.com/TkachenkoRP/spring-booking/internal/platform/hash"
	"github.com/TkachenkoRP/spring-booking/internal/platform/jwt"
	"github.com/TkachenkoRP/spring-booking/internal/user"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// UserFinder is the part of the user service authentication depends on.
type UserFinder interface {
	Find(ctx context.Context, userID int64) (*user.User, error)
	FindByName(ctx context.Context, name string) (*user.User, error)
}

var _ UserFinder = (*user.Service)(nil)

type Service struct {
	users  UserFinder
	hasher hash.Hasher
	signer jwt.Signer
	cfg    *config.JWT
}

var _ AuthService = (*Service)(nil)

func NewService(users UserFinder, hasher hash.Hasher, signer jwt.Signer, cfg *config.JWT) *Service {
	return &Service{
		users:  users,
		hasher: hasher,
		signer: signer,
		cfg:    cfg,
	}
}

type Token struct {
	AccessToken string
	ExpiresIn   int64
}

// Authenticate checks a name and password pair.
// Unknown names and wrong passwords both yield ErrInvalidCredentials.
func (s *Service) Authenticate(ctx context.Context, name, password string) (*Principal, error) {
	u, err := s.users.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user by name %q: %w", name, err)
	}

	ok, err := s.hasher.Verify(password, u.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("verify password for user %q: %w", name, err)
	}
	if !ok {
		return nil, ErrInvalidCredentials
	}

	return NewPrincipal(u), nil
}

func (s *Service) Login(ctx context.Context, name, password string) (*Token, error) {
	p, err := s.Authenticate(ctx, name, password)
	if err != nil {
		return nil, err
	}

	ttl := s.cfg.TTL.Duration
	accessToken, err := s.signer.Sign(strconv.FormatInt(p.UserID, 10), ttl)
	if err != nil {
		return nil, fmt.Errorf("sign access token for user %q: %w", name, err)
	}

	slog.Info("User logged in.", "user_id", p.UserID)
	return &Token{AccessToken: accessToken, ExpiresIn: int64(ttl.Seconds())}, nil
}

// VerifyToken resolves a bearer token to the current state of its user,
// so role changes and deletions take effect before the token expires.
func (s *Service) VerifyToken(ctx context.Context, token string) (*Principal, error) {
	claims, err := s.signer.Verify(token)
	if err != nil {
		return nil, err
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: subject %q", jwt.ErrInvalidToken, claims.Subject)
	}

	u, err := s.users.Find(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, fmt.Errorf("%w: user %d no longer exists", jwt.ErrInvalidToken, userID)
		}
		return nil, fmt.Errorf("find user %d: %w", userID, err)
	}

	return NewPrincipal(u), nil
}
