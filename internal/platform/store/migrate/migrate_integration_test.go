//go:build integration_pg

package migrate_test

import (
	"context"
	"testing"
	"time"

	"funhouse/internal/platform/store/migrate"
	"funhouse/internal/platform/store/pgtest"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

func TestMigrator_UpDownVersion_Integration(t *testing.T) {
	dsn := pgtest.Schema(t)
	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	m, err := migrate.New(dsn, zerolog.Nop())
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	t.Cleanup(func() { _ = m.Close() })

	if v, dirty, err := m.Version(); err != nil || v != 0 || dirty {
		t.Fatalf("fresh version = %d %v %v", v, dirty, err)
	}
	if err := m.Up(ctx); err != nil {
		t.Fatalf("up: %v", err)
	}
	// second run is a no-op
	if err := m.Up(ctx); err != nil {
		t.Fatalf("up again: %v", err)
	}
	if v, _, _ := m.Version(); v != 2 {
		t.Fatalf("expected version 2, got %d", v)
	}

	conn, err := pgx.Connect(ctx, dsn)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer conn.Close(context.Background())

	var n int
	if err := conn.QueryRow(ctx, `SELECT count(*) FROM jokes`).Scan(&n); err != nil || n != 10 {
		t.Fatalf("seeded jokes = %d, %v", n, err)
	}

	if err := m.Down(ctx); err != nil {
		t.Fatalf("down: %v", err)
	}
	if err := conn.QueryRow(ctx, `SELECT count(*) FROM jokes`).Scan(&n); err != nil || n != 0 {
		t.Fatalf("after seed rollback = %d, %v", n, err)
	}
	if v, _, _ := m.Version(); v != 1 {
		t.Fatalf("expected version 1, got %d", v)
	}
}
