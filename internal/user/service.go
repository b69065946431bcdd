package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/TkachenkoRP/spring-booking/internal/event"
	"github.com/TkachenkoRP/spring-booking/internal/platform/db"
	"github.com/TkachenkoRP/spring-booking/internal/platform/hash"
	"github.com/TkachenkoRP/spring-booking/internal/platform/metrics"
)

// Repository is the interface for user persistence.
type Repository interface {
	Create(ctx context.Context, params CreateParams) (*User, error)
	List(ctx context.Context) ([]User, error)
	Find(ctx context.Context, userID int64) (*User, error)
	FindByName(ctx context.Context, name string) (*User, error)
	ExistsByNameOrEmail(ctx context.Context, name, email string, excludeID int64) (bool, error)
	Update(ctx context.Context, userID int64, params UpdateParams) error
	Delete(ctx context.Context, userID int64) error
}

type Service struct {
	repo      Repository
	txMgr     db.TxManager
	hasher    hash.Hasher
	publisher event.Publisher
	metrics   *metrics.Metrics
}

func NewService(repo Repository, txMgr db.TxManager, hasher hash.Hasher, publisher event.Publisher, m *metrics.Metrics) *Service {
	return &Service{
		repo:      repo,
		txMgr:     txMgr,
		hasher:    hasher,
		publisher: publisher,
		metrics:   m,
	}
}

// Credentials carries the plain values of a create or update request.
type Credentials struct {
	Name     string
	Password string
	Email    string
}

func (c Credentials) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("name", c.Name),
		slog.String("email", maskChar),
		slog.String("password", maskChar),
	)
}

// Create registers a user with the named role. A taken name or email is
// reported before an unknown role.
func (s *Service) Create(ctx context.Context, creds Credentials, roleType string) (*User, error) {
	passwordHash, err := s.hasher.Hash(creds.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	var created *User
	err = s.txMgr.RunInTx(ctx, func(txCtx context.Context) error {
		exists, err := s.repo.ExistsByNameOrEmail(txCtx, creds.Name, creds.Email, 0)
		if err != nil {
			return err
		}
		if exists {
			return fmt.Errorf("%w: name %s, email %s", ErrDuplicate, creds.Name, creds.Email)
		}

		role, err := ParseRole(roleType)
		if err != nil {
			return err
		}

		created, err = s.repo.Create(txCtx, CreateParams{
			Name:         creds.Name,
			Email:        creds.Email,
			PasswordHash: passwordHash,
			Roles:        []Role{role},
		})
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	slog.Info("User created.", "user_id", created.ID, "role", roleType)
	if s.metrics != nil {
		s.metrics.UsersRegisteredTotal.Inc()
	}
	s.publisher.PublishUserRegistered(ctx, event.UserRegisteredEvent{UserID: created.ID})

	return created, nil
}

func (s *Service) List(ctx context.Context) ([]User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (s *Service) Find(ctx context.Context, userID int64) (*User, error) {
	return s.repo.Find(ctx, userID)
}

func (s *Service) FindByName(ctx context.Context, name string) (*User, error) {
	return s.repo.FindByName(ctx, name)
}

// Update replaces name, email and password. The password is stored hashed.
func (s *Service) Update(ctx context.Context, userID int64, creds Credentials) (*User, error) {
	passwordHash, err := s.hasher.Hash(creds.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	var updated *User
	err = s.txMgr.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.repo.Find(txCtx, userID); err != nil {
			return err
		}

		exists, err := s.repo.ExistsByNameOrEmail(txCtx, creds.Name, creds.Email, userID)
		if err != nil {
			return err
		}
		if exists {
			return fmt.Errorf("%w: name %s, email %s", ErrDuplicate, creds.Name, creds.Email)
		}

		params := UpdateParams{Name: creds.Name, Email: creds.Email, PasswordHash: passwordHash}
		if err := s.repo.Update(txCtx, userID, params); err != nil {
			return err
		}

		updated, err = s.repo.Find(txCtx, userID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("update user %d: %w", userID, err)
	}

	return updated, nil
}

func (s *Service) Delete(ctx context.Context, userID int64) error {
	return s.repo.Delete(ctx, userID)
}
