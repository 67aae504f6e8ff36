// Package module wires names into the API using modkit
package module

import (
	"net/http"

	modkit "funhouse/internal/modkit"
	"funhouse/internal/modkit/httpkit"
	str "funhouse/internal/platform/strings"
	"funhouse/internal/services/api/names/domain"

	nameshttp "funhouse/internal/services/api/names/http"
	namessvc "funhouse/internal/services/api/names/service"
)

// Ports exposes the registry port
type Ports struct {
	Service domain.ServicePort
}

// Module implements the names module
type Module struct {
	name   string
	prefix string
	mws    []func(http.Handler) http.Handler
	ports  Ports

	register func(httpkit.Router)
	svc      *namessvc.Registry
}

// New constructs the names module with a fresh in-memory registry
func New(_ modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("names"), modkit.WithPrefix("/names")}, opts...)...)

	m := &Module{
		name:   b.Name,
		prefix: b.Prefix,
		mws:    b.Mw,
		svc:    namessvc.New(),
	}
	m.ports = Ports{Service: m.svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		nameshttp.Register(r, m.svc)
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

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
