package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/TkachenkoRP/spring-booking/internal/platform/db"
	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolation is the postgres SQLSTATE for a unique constraint failure.
const uniqueViolation = "23505"

type SQLRepository struct {
	db *sql.DB
}

var _ Repository = (*SQLRepository)(nil)

func NewRepository(conn *sql.DB) *SQLRepository {
	return &SQLRepository{db: conn}
}

type CreateParams struct {
	Name         string
	Email        string
	PasswordHash string
	Roles        []Role
}

const queryUserCreate = `
INSERT INTO users (name, email, password)
VALUES ($1, $2, $3)
RETURNING id, created_at, updated_at`

const queryRoleCreate = "INSERT INTO user_roles (user_id, role) VALUES ($1, $2)"

// Create inserts the user and its roles. Callers run it inside a transaction.
func (r *SQLRepository) Create(ctx context.Context, params CreateParams) (*User, error) {
	exec := db.Conn(ctx, r.db)

	u := &User{
		Name:         params.Name,
		Email:        params.Email,
		PasswordHash: params.PasswordHash,
		Roles:        params.Roles,
	}

	row := exec.QueryRowContext(ctx, queryUserCreate, params.Name, params.Email, params.PasswordHash)
	if err := row.Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, mapErr(fmt.Errorf("create user %s: %w", params.Name, err))
	}

	for _, role := range params.Roles {
		if _, err := exec.ExecContext(ctx, queryRoleCreate, u.ID, string(role)); err != nil {
			return nil, fmt.Errorf("add role %s to user %d: %w", role, u.ID, err)
		}
	}

	return u, nil
}

const selectUser = `
SELECT u.id, u.name, u.email, u.password, u.created_at, u.updated_at,
       COALESCE(STRING_AGG(r.role, ',' ORDER BY r.role), '')
FROM users u
LEFT JOIN user_roles r ON r.user_id = u.id`

const groupUser = " GROUP BY u.id"

func (r *SQLRepository) List(ctx context.Context) ([]User, error) {
	rows, err := db.Conn(ctx, r.db).QueryContext(ctx, selectUser+groupUser+" ORDER BY u.id")
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	users := make([]User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate over user rows: %w", err)
	}

	return users, nil
}

func (r *SQLRepository) Find(ctx context.Context, userID int64) (*User, error) {
	row := db.Conn(ctx, r.db).QueryRowContext(ctx, selectUser+" WHERE u.id = $1"+groupUser, userID)
	u, err := scanUser(row)
	if err != nil {
		return nil, fmt.Errorf("find user with id %d: %w", userID, err)
	}
	return u, nil
}

func (r *SQLRepository) FindByName(ctx context.Context, name string) (*User, error) {
	row := db.Conn(ctx, r.db).QueryRowContext(ctx, selectUser+" WHERE u.name = $1"+groupUser, name)
	u, err := scanUser(row)
	if err != nil {
		return nil, fmt.Errorf("find user with name %s: %w", name, err)
	}
	return u, nil
}

const queryUserExists = `
SELECT EXISTS (
    SELECT 1 FROM users
    WHERE (name = $1 OR email = $2) AND id <> $3
)`

// ExistsByNameOrEmail ignores the user with id excludeID, or nobody when it is 0.
func (r *SQLRepository) ExistsByNameOrEmail(ctx context.Context, name, email string, excludeID int64) (bool, error) {
	var exists bool
	row := db.Conn(ctx, r.db).QueryRowContext(ctx, queryUserExists, name, email, excludeID)
	if err := row.Scan(&exists); err != nil {
		return false, fmt.Errorf("check user %s exists: %w", name, err)
	}
	return exists, nil
}

type UpdateParams struct {
	Name         string
	Email        string
	PasswordHash string
}

const queryUserUpdate = `
UPDATE users
SET name = $1, email = $2, password = $3, updated_at = NOW()
WHERE id = $4`

func (r *SQLRepository) Update(ctx context.Context, userID int64, params UpdateParams) error {
	res, err := db.Conn(ctx, r.db).ExecContext(ctx, queryUserUpdate, params.Name, params.Email, params.PasswordHash, userID)
	if err != nil {
		return mapErr(fmt.Errorf("update user %d: %w", userID, err))
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("update user %d: %w", userID, ErrNotFound)
	}
	return nil
}

func (r *SQLRepository) Delete(ctx context.Context, userID int64) error {
	if _, err := db.Conn(ctx, r.db).ExecContext(ctx, "DELETE FROM users WHERE id = $1", userID); err != nil {
		return fmt.Errorf("delete user %d: %w", userID, err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanUser(row scanner) (*User, error) {
	var (
		u     User
		roles string
	)
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt, &roles); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}

	u.Roles = splitRoles(roles)
	return &u, nil
}

func splitRoles(s string) []Role {
	if s == "" {
		return []Role{}
	}
	parts := strings.Split(s, ",")
	roles := make([]Role, 0, len(parts))
	for _, p := range parts {
		roles = append(roles, Role(p))
	}
	return roles
}

func mapErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("%w: %s", ErrDuplicate, pgErr.ConstraintName)
	}
	return err
}
