// Package api provides the HTTP API for the application
package api

import (
	"funhouse/internal/platform/config"
	"funhouse/internal/platform/logger"
	phttp "funhouse/internal/platform/net/http"
	"funhouse/internal/platform/store"

	"funhouse/internal/modkit"
	"funhouse/internal/modkit/httpkit"
	"funhouse/internal/modkit/module"
	"funhouse/internal/modkit/swaggerkit"

	greetmod "funhouse/internal/services/api/greetings/module"
	jokesdomain "funhouse/internal/services/api/jokes/domain"
	jokesmod "funhouse/internal/services/api/jokes/module"
	metamod "funhouse/internal/services/api/meta/module"
	namesmod "funhouse/internal/services/api/names/module"
	weathermod "funhouse/internal/services/api/weather/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
// Store.PG is required, the jokes module queries it
func Mount(r phttp.Router, opt Options) {
	if opt.Store == nil || opt.Store.PG == nil {
		panic("api.Mount requires a store with postgres")
	}
	log := opt.Logger
	if log == nil {
		log = logger.Get()
	}

	// shared deps for modules
	deps := modkit.Deps{
		Log: *log,
		Cfg: opt.Config,
		PG:  opt.Store.PG,
	}

	// jokes first, meta reads its counter port for readiness
	jokes := jokesmod.New(deps)
	meta := metamod.New(deps, modkit.WithPorts(metamod.Ports{
		Jokes: module.MustPortsOf[jokesdomain.Counter](jokes),
	}))

	mods := []module.Module{
		meta,
		greetmod.New(deps),
		jokes,
		namesmod.New(deps),
		weathermod.New(deps),
	}

	// middlewares go on the root mux before any route so the fallbacks get them too
	r.Use(httpkit.CommonStack(opt.Config)...)

	swaggerkit.Mount(r, opt.EnableSwagger)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

	for _, m := range mods {
		log.Debug().Str("module", m.Name()).Msg("mounting module")
		m.MountRoutes(r)
	}
}
