// Package module wires the weather mood endpoint into the API using modkit
package module

import (
	"net/http"

	modkit "funhouse/internal/modkit"
	"funhouse/internal/modkit/httpkit"
	str "funhouse/internal/platform/strings"

	weatherhttp "funhouse/internal/services/api/weather/http"
	weathersvc "funhouse/internal/services/api/weather/service"
)

// Module implements the weather module
type Module struct {
	name   string
	prefix string
	mws    []func(http.Handler) http.Handler

	register func(httpkit.Router)
	svc      *weathersvc.Svc
}

// New constructs the weather module, range warnings go to deps.Log
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("weather"), modkit.WithPrefix("/weather-mood")}, opts...)...)

	m := &Module{
		name:   b.Name,
		prefix: b.Prefix,
		mws:    b.Mw,
		svc:    weathersvc.New(deps.Log.With().Str("component", "weather").Logger()),
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		weatherhttp.Register(r, m.svc)
		external(r)
	}
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	httpkit.MountUnder(r, m.Prefix(), m.mws, m.register)
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }

// Ports exposes nothing
func (m *Module) Ports() any { return nil }
