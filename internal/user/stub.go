package user

import (
	"context"
	"errors"
)

type StubService struct {
	CreateFunc func(ctx context.Context, creds Credentials, roleType string) (*User, error)
	ListFunc   func(ctx context.Context) ([]User, error)
	FindFunc   func(ctx context.Context, userID int64) (*User, error)
	UpdateFunc func(ctx context.Context, userID int64, creds Credentials) (*User, error)
	DeleteFunc func(ctx context.Context, userID int64) error
}

var _ UserService = (*StubService)(nil)

func (s *StubService) Create(ctx context.Context, creds Credentials, roleType string) (*User, error) {
	if s.CreateFunc == nil {
		return nil, errors.New("Create() not implemented by stub")
	}
	return s.CreateFunc(ctx, creds, roleType)
}

func (s *StubService) List(ctx context.Context) ([]User, error) {
	if s.ListFunc == nil {
		return nil, errors.New("List() not implemented by stub")
	}
	return s.ListFunc(ctx)
}

func (s *StubService) Find(ctx context.Context, userID int64) (*User, error) {
	if s.FindFunc == nil {
		return nil, errors.New("Find() not implemented by stub")
	}
	return s.FindFunc(ctx, userID)
}

func (s *StubService) Update(ctx context.Context, userID int64, creds Credentials) (*User, error) {
	if s.UpdateFunc == nil {
		return nil, errors.New("Update() not implemented by stub")
	}
	return s.UpdateFunc(ctx, userID, creds)
}

func (s *StubService) Delete(ctx context.Context, userID int64) error {
	if s.DeleteFunc == nil {
		return errors.New("Delete() not implemented by stub")
	}
	return s.DeleteFunc(ctx, userID)
}

type StubRepo struct {
	CreateFunc              func(ctx context.Context, params CreateParams) (*User, error)
	ListFunc                func(ctx context.Context) ([]User, error)
	FindFunc                func(ctx context.Context, userID int64) (*User, error)
	FindByNameFunc          func(ctx context.Context, name string) (*User, error)
	ExistsByNameOrEmailFunc func(ctx context.Context, name, email string, excludeID int64) (bool, error)
	UpdateFunc              func(ctx context.Context, userID int64, params UpdateParams) error
	DeleteFunc              func(ctx context.Context, userID int64) error
}

var _ Repository = (*StubRepo)(nil)

func (r *StubRepo) Create(ctx context.Context, params CreateParams) (*User, error) {
	if r.CreateFunc == nil {
		return nil, errors.New("Create() not implemented by stub")
	}
	return r.CreateFunc(ctx, params)
}

func (r *StubRepo) List(ctx context.Context) ([]User, error) {
	if r.ListFunc == nil {
		return nil, errors.New("List() not implemented by stub")
	}
	return r.ListFunc(ctx)
}

func (r *StubRepo) Find(ctx context.Context, userID int64) (*User, error) {
	if r.FindFunc == nil {
		return nil, errors.New("Find() not implemented by stub")
	}
	return r.FindFunc(ctx, userID)
}

func (r *StubRepo) FindByName(ctx context.Context, name string) (*User, error) {
	if r.FindByNameFunc == nil {
		return nil, errors.New("FindByName() not implemented by stub")
	}
	return r.FindByNameFunc(ctx, name)
}

func (r *StubRepo) ExistsByNameOrEmail(ctx context.Context, name, email string, excludeID int64) (bool, error) {
	if r.ExistsByNameOrEmailFunc == nil {
		return false, errors.New("ExistsByNameOrEmail() not implemented by stub")
	}
	return r.ExistsByNameOrEmailFunc(ctx, name, email, excludeID)
}

func (r *StubRepo) Update(ctx context.Context, userID int64, params UpdateParams) error {
	if r.UpdateFunc == nil {
		return errors.New("Update() not implemented by stub")
	}
	return r.UpdateFunc(ctx, userID, params)
}

func (r *StubRepo) Delete(ctx context.Context, userID int64) error {
	if r.DeleteFunc == nil {
		return errors.New("Delete() not implemented by stub")
	}
	return r.DeleteFunc(ctx, userID)
}
