//go:build integration

package db

import (
	"context"
	"database/sql"
	"testing"

	"github.com/TkachenkoRP/spring-booking/internal/config"
	"github.com/ferdiebergado/gopherkit/env"
)

// Setup connects to the database from .env.testing and migrates it.
// projRoot is the path from the calling package to the repository root.
func Setup(t *testing.T, projRoot string) (dbConn *sql.DB, cleanUpFunc func(string)) {
	t.Helper()

	if err := env.Load(projRoot + ".env.testing"); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.Load(projRoot + "config.json")
	if err != nil {
		t.Fatal(err)
	}

	ctx := context.Background()
	conn, err := NewPostgresDB(ctx, cfg.DB)
	if err != nil {
		t.Fatal(err)
	}

	if err := Migrate(ctx, conn); err != nil {
		conn.Close()
		t.Fatal(err)
	}

	t.Cleanup(func() {
		conn.Close()
	})

	cleanUpFunc = func(cleanUpQuery string) {
		t.Helper()
		if _, err := conn.Exec(cleanUpQuery); err != nil {
			t.Logf("cannot cleanup db: %v", err)
		}
	}

	return conn, cleanUpFunc
}

// TxContext begins a transaction that is rolled back when the test ends
// and returns a context carrying it, so repositories never commit.
func TxContext(t *testing.T, conn *sql.DB) context.Context {
	t.Helper()

	tx, err := conn.Begin()
	if err != nil {
		t.Fatalf("unable to begin transaction: %v", err)
	}

	t.Cleanup(func() {
		if err := tx.Rollback(); err != nil {
			t.Logf("failed to rollback transaction: %v", err)
		}
	})

	return NewContextWithTx(context.Background(), tx)
}
