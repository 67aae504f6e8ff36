// Package repo provides the postgres accessor for jokes
package repo

import (
	"context"
	"strings"

	"funhouse/internal/modkit/repokit"
	perr "funhouse/internal/platform/errors"
	"funhouse/internal/platform/store"
	"funhouse/internal/services/api/jokes/domain"
)

// Repo is the jokes storage surface
// every method is a single statement, there is no cross statement transaction
type Repo interface {
	Random(ctx context.Context) (domain.Joke, error)
	Get(ctx context.Context, id int64) (domain.Joke, error)
	Insert(ctx context.Context, text string) (domain.Joke, error)
	UpdateText(ctx context.Context, id int64, text string) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}

// PG is the postgres binder for Repo
type PG struct{}

// NewPG returns a binder that produces postgres backed repos
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind implements repokit.Binder
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

type queries struct{ q repokit.Queryer }

const cols = `id, joke_text, created_at, updated_at`

func scanJoke(r repokit.Row) (domain.Joke, error) {
	var (
		j  domain.Joke
		id int64
	)
	if err := r.Scan(&id, &j.Text, &j.CreatedAt, &j.UpdatedAt); err != nil {
		return domain.Joke{}, err
	}
	j.ID = &id
	return j, nil
}

// Random picks one row uniformly
// ORDER BY random() scans and sorts the whole table, fine for the seeded set but not for large tables
func (s *queries) Random(ctx context.Context) (domain.Joke, error) {
	j, err := store.One(ctx, s.q, scanJoke, `SELECT `+cols+` FROM jokes ORDER BY random() LIMIT 1`)
	return j, mapErr(err, "random joke")
}

func (s *queries) Get(ctx context.Context, id int64) (domain.Joke, error) {
	j, err := store.One(ctx, s.q, scanJoke, `SELECT `+cols+` FROM jokes WHERE id = $1`, id)
	return j, mapErr(err, "get joke")
}

// Insert persists text and returns the row with server assigned id and timestamps
func (s *queries) Insert(ctx context.Context, text string) (domain.Joke, error) {
	if strings.TrimSpace(text) == "" {
		return domain.Joke{}, perr.WithField(perr.Validationf("joke text must not be blank"), "text")
	}
	j, err := store.One(ctx, s.q, scanJoke,
		`INSERT INTO jokes (joke_text) VALUES ($1) RETURNING `+cols, text)
	return j, mapErr(err, "insert joke")
}

func (s *queries) UpdateText(ctx context.Context, id int64, text string) error {
	if strings.TrimSpace(text) == "" {
		return perr.WithField(perr.Validationf("joke text must not be blank"), "text")
	}
	err := store.ExecOne(ctx, s.q,
		`UPDATE jokes SET joke_text = $2, updated_at = now() WHERE id = $1`, id, text)
	return mapErr(err, "update joke")
}

func (s *queries) Delete(ctx context.Context, id int64) error {
	return mapErr(store.ExecOne(ctx, s.q, `DELETE FROM jokes WHERE id = $1`, id), "delete joke")
}

func (s *queries) Count(ctx context.Context) (int64, error) {
	n, err := store.Scalar[int64](ctx, s.q, `SELECT count(*) FROM jokes`)
	return n, mapErr(err, "count jokes")
}

// mapErr keeps project errors as they are and tags driver errors with a code
func mapErr(err error, op string) error {
	if err == nil {
		return nil
	}
	if _, ok := perr.As(err); ok {
		return perr.WithOp(err, op)
	}
	return perr.WithOp(perr.FromPostgresf(err, "%s failed: %v", op, perr.Root(err)), op)
}
