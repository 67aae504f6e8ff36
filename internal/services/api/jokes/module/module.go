// Package module wires the jokes API into HTTP via modkit
package module

import (
	"net/http"

	"funhouse/internal/modkit"
	"funhouse/internal/modkit/httpkit"
	"funhouse/internal/platform/strings"
	"funhouse/internal/services/api/jokes/domain"

	jokeshttp "funhouse/internal/services/api/jokes/http"
	"funhouse/internal/services/api/jokes/repo"
	"funhouse/internal/services/api/jokes/service"
)

// Ports exposes the jokes ports for cross-module lookups
type Ports struct {
	Service domain.ServicePort
	Counter domain.Counter
}

// Module implements the jokes module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws   []func(http.Handler) http.Handler
	ports Ports

	register func(httpkit.Router)

	svc *service.Svc
}

// New constructs the jokes module, deps.PG must be set
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("jokes"), modkit.WithPrefix("/dad-jokes")}, opts...)...)

	svc := service.New(deps.PG, repo.NewPG())

	m := &Module{
		deps:   deps,
		name:   b.Name,
		prefix: b.Prefix,
		mws:    b.Mw,
		svc:    svc,
	}
	m.ports = Ports{Service: svc, Counter: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		jokeshttp.Register(r, m.svc)
		external(r)
	}
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	httpkit.MountUnder(r, m.Prefix(), m.mws, m.register)
}

// Name is the module name
func (m *Module) Name() string { return strings.MustString(m.name, "module name") }

// Prefix is the module route prefix
func (m *Module) Prefix() string { return strings.MustPrefix(m.prefix) }

// Middlewares is the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
