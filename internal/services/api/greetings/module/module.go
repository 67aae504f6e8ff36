// Package module wires greetings into the API using modkit
package module

import (
	"net/http"

	modkit "funhouse/internal/modkit"
	"funhouse/internal/modkit/httpkit"
	str "funhouse/internal/platform/strings"
	greethttp "funhouse/internal/services/api/greetings/http"
	greetsvc "funhouse/internal/services/api/greetings/service"
)

// Module implements the greetings module
type Module struct {
	name   string
	prefix string
	mws    []func(http.Handler) http.Handler

	register func(httpkit.Router)
	svc      *greetsvc.Svc
}

// New constructs the greetings module, it needs no storage
func New(_ modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("greetings"), modkit.WithPrefix("/greetings")}, opts...)...)

	m := &Module{
		name:   b.Name,
		prefix: b.Prefix,
		mws:    b.Mw,
		svc:    greetsvc.New(),
	}
	external := b.Register
	m.register = func(r httpkit.Router) {
		greethttp.Register(r, m.svc)
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

// Ports exposes nothing, no other module needs greetings
func (m *Module) Ports() any { return nil }
