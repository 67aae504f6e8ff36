// Package service implements the jokes use cases
package service

import (
	"context"

	"funhouse/internal/modkit/repokit"
	perr "funhouse/internal/platform/errors"
	"funhouse/internal/services/api/jokes/domain"
	"funhouse/internal/services/api/jokes/repo"
)

// Svc implements domain.ServicePort and domain.Counter
type Svc struct {
	DB   repokit.TxRunner
	Repo repokit.Binder[repo.Repo]
}

// New constructs a jokes service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("jokes.Service requires a non-nil TxRunner")
	}
	if binder == nil {
		panic("jokes.Service requires a non-nil repo Binder")
	}
	return &Svc{DB: db, Repo: binder}
}

// RandomJoke returns one stored joke, or a not found error when there are none
func (s *Svc) RandomJoke(ctx context.Context) (domain.Joke, error) {
	j, err := s.Repo.Bind(s.DB).Random(ctx)
	if perr.IsCode(err, perr.ErrorCodeNotFound) {
		return domain.Joke{}, perr.NotFoundf("No jokes found")
	}
	return j, err
}

// CountJokes reports the number of stored jokes
func (s *Svc) CountJokes(ctx context.Context) (int64, error) {
	return s.Repo.Bind(s.DB).Count(ctx)
}
