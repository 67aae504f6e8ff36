// Package migrate applies the embedded schema migrations with golang-migrate
package migrate

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"strings"

	"funhouse/internal/platform/logger"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5" // registers pgx5://
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/rs/zerolog"
)

//go:embed migrations/*.sql
var files embed.FS

// Migrator runs versioned migrations against one database
type Migrator struct {
	m   *migrate.Migrate
	log logger.Logger
}

// DriverURL rewrites a postgres:// or postgresql:// url to the pgx5 scheme golang-migrate expects
func DriverURL(dbURL string) (string, error) {
	for _, p := range []string{"postgres://", "postgresql://"} {
		if strings.HasPrefix(dbURL, p) {
			return "pgx5://" + strings.TrimPrefix(dbURL, p), nil
		}
	}
	if strings.HasPrefix(dbURL, "pgx5://") {
		return dbURL, nil
	}
	return "", fmt.Errorf("migrate: unsupported database url scheme")
}

// New opens a migrator over the embedded files
func New(dbURL string, log logger.Logger) (*Migrator, error) {
	u, err := DriverURL(dbURL)
	if err != nil {
		return nil, err
	}
	src, err := iofs.New(files, "migrations")
	if err != nil {
		return nil, fmt.Errorf("migrate: source: %w", err)
	}
	m, err := migrate.NewWithSourceInstance("iofs", src, u)
	if err != nil {
		return nil, fmt.Errorf("migrate: open: %w", err)
	}
	m.Log = zlAdapter{log: log}
	return &Migrator{m: m, log: log}, nil
}

// Up applies every pending migration, an up-to-date schema is not an error
// a done ctx asks golang-migrate to stop after the running migration
func (mg *Migrator) Up(ctx context.Context) error {
	stop := context.AfterFunc(ctx, mg.gracefulStop)
	defer stop()

	if err := mg.m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate: up: %w", err)
	}
	v, dirty, _ := mg.Version()
	mg.log.Info().Uint("version", v).Bool("dirty", dirty).Msg("migrations applied")
	return nil
}

// Down rolls back the most recent migration
func (mg *Migrator) Down(ctx context.Context) error {
	stop := context.AfterFunc(ctx, mg.gracefulStop)
	defer stop()

	if err := mg.m.Steps(-1); err != nil {
		return fmt.Errorf("migrate: down: %w", err)
	}
	return nil
}

// Version reports the applied version, zero with no error before the first migration
func (mg *Migrator) Version() (uint, bool, error) {
	v, dirty, err := mg.m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	return v, dirty, err
}

// Close releases the source and database handles
func (mg *Migrator) Close() error {
	srcErr, dbErr := mg.m.Close()
	return errors.Join(srcErr, dbErr)
}

func (mg *Migrator) gracefulStop() {
	select {
	case mg.m.GracefulStop <- true:
	default:
	}
}

// zlAdapter satisfies migrate.Logger
type zlAdapter struct{ log logger.Logger }

func (z zlAdapter) Printf(format string, v ...any) {
	z.log.Debug().Str("component", "migrate").Msgf(strings.TrimRight(format, "\n"), v...)
}

func (z zlAdapter) Verbose() bool { return z.log.GetLevel() <= zerolog.DebugLevel }
