// Package service keeps the process lifetime registry of names
package service

import (
	"context"
	"sync"

	perr "funhouse/internal/platform/errors"
	str "funhouse/internal/platform/strings"
	"funhouse/internal/services/api/names/domain"
)

// Registry is a case sensitive set of registered names
// zero value is ready to use
type Registry struct {
	mu    sync.Mutex
	names map[string]struct{}
}

// New returns an empty registry
func New() *Registry { return &Registry{names: map[string]struct{}{}} }

// Register adds name if absent
// check and insert happen under one lock so concurrent callers race for exactly one success
func (r *Registry) Register(_ context.Context, name string) error {
	if str.IsBlank(name) {
		return perr.WithField(perr.Validationf("name must not be blank"), "name")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.names == nil {
		r.names = map[string]struct{}{}
	}
	if _, ok := r.names[name]; ok {
		return perr.WithOp(perr.Conflictf(domain.ErrDuplicateReason), "names.register")
	}
	r.names[name] = struct{}{}
	return nil
}

// Len reports how many names are registered
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.names)
}
