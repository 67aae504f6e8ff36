// @title         Funhouse API
// @version       0.1.0
// @description   Greetings, dad jokes, name registration and weather moods

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"funhouse/internal/core/version"
	"funhouse/internal/modkit/repokit"
	"funhouse/internal/platform/config"
	"funhouse/internal/platform/logger"
	phttp "funhouse/internal/platform/net/http"
	"funhouse/internal/platform/store"
	"funhouse/internal/platform/store/migrate"

	"funhouse/internal/services/api"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	// bring up logging early
	logger.Init(logger.FromEnv())
	l := logger.Get()

	pgCfg := store.FromEnv(root, version.Service)

	// schema first so the seed jokes exist before the first request
	if apiCfg.MayBool("MIGRATE", true) {
		m, err := migrate.New(pgCfg.PG.URL, *logger.Named("migrate"))
		if err != nil {
			l.Panic().Err(err).Msg("migrate.New failed")
		}
		if err := m.Up(ctx); err != nil {
			l.Panic().Err(err).Msg("migrate up failed")
		}
		_ = m.Close()
	}

	// open the platform store (postgres)
	st, err := store.Open(ctx, pgCfg, store.WithLogger(*l))
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()
	repokit.MustGuard(ctx, st)

	// http server (reads CORE_API_PORT)
	srv := phttp.NewServer(apiCfg)

	// mount our API
	api.Mount(
		srv.Router(),
		api.Options{
			Config:         apiCfg,
			Store:          st,
			Logger:         l,
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", false),
		},
	)

	l.Info().Interface("build", version.Info()).Msg("funhouse api starting")

	// run until SIGINT or SIGTERM
	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
