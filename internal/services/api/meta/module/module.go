// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"net/http"
	"time"

	"funhouse/internal/core/version"
	modkit "funhouse/internal/modkit"
	"funhouse/internal/modkit/httpkit"
	str "funhouse/internal/platform/strings"

	metahttp "funhouse/internal/services/api/meta/http"
)

// Ports are the cross-module ports meta consumes, injected with modkit.WithPorts
type Ports struct {
	Jokes metahttp.Counter
}

// Module implements the modkit.Module interface
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string
	mws    []func(http.Handler) http.Handler
	ports  Ports

	register func(httpkit.Router)

	startedAt time.Time
}

// New constructs a meta module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		startedAt: time.Now(),
	}
	if p, ok := b.Ports.(Ports); ok {
		m.ports = p
	}

	var pg any
	if deps.PG != nil {
		pg = deps.PG
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		metahttp.Register(r, metahttp.Deps{
			ServiceName:  version.Service,
			StartedAt:    m.startedAt,
			PG:           pg,
			Jokes:        m.ports.Jokes,
			ReadyTimeout: deps.Cfg.MayDuration("READY_TIMEOUT", 2*time.Second),
		})
		external(r)
	}

	return m
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	httpkit.MountUnder(r, m.Prefix(), m.mws, m.register)
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return str.MustString(m.name, "meta") }

// Prefix implements the modkit.Module interface
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares implements the modkit.Module interface
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return m.ports }
