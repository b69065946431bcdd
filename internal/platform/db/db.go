package db

import (
	"context"
	"database/sql"
)

type Executor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// TxManager runs fn in one transaction, committed only when fn returns nil.
// Repositories pick the transaction up from the context through Conn.
type TxManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Conn returns the transaction stored in ctx, or fallback when there is none.
// Repositories call it so the same query runs inside or outside RunInTx.
//
//nolint:ireturn // callers only need the Executor surface.
func Conn(ctx context.Context, fallback Executor) Executor {
	if tx := TxFromContext(ctx); tx != nil {
		return tx
	}
	return fallback
}
