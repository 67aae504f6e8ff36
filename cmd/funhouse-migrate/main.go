// Command funhouse-migrate applies or rolls back the embedded schema migrations
//
//	funhouse-migrate [up|down|version]
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"funhouse/internal/platform/config"
	"funhouse/internal/platform/logger"
	"funhouse/internal/platform/store/migrate"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "usage: funhouse-migrate [up|down|version]")
		flag.PrintDefaults()
	}
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Init(logger.FromEnv())
	l := logger.Named("migrate")

	cmd := "up"
	if flag.NArg() > 0 {
		cmd = flag.Arg(0)
	}

	dbURL := config.New().Prefix("SERVICE_PGSQL_").MustString("DBURL")
	m, err := migrate.New(dbURL, *l)
	if err != nil {
		l.Fatal().Err(err).Msg("open migrator")
	}
	defer func() { _ = m.Close() }()

	switch cmd {
	case "up":
		err = m.Up(ctx)
	case "down":
		err = m.Down(ctx)
	case "version":
		v, dirty, verr := m.Version()
		if verr == nil {
			l.Info().Uint("version", v).Bool("dirty", dirty).Msg("schema version")
		}
		err = verr
	default:
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		l.Error().Err(err).Str("cmd", cmd).Msg("migrate failed")
		os.Exit(1)
	}
}
