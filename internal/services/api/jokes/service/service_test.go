package service

import (
	"context"
	"errors"
	"testing"

	"funhouse/internal/modkit/repokit"
	perr "funhouse/internal/platform/errors"
	kit "funhouse/internal/platform/testkit"
	"funhouse/internal/services/api/jokes/domain"
	"funhouse/internal/services/api/jokes/repo"
)

// stubRepo embeds repo.Repo so only the methods under test need bodies
type stubRepo struct {
	repo.Repo
	joke  domain.Joke
	err   error
	count int64
}

func (s stubRepo) Random(context.Context) (domain.Joke, error) { return s.joke, s.err }
func (s stubRepo) Count(context.Context) (int64, error)        { return s.count, s.err }

// nopDB is never queried, the stub repo ignores the Queryer
type nopDB struct{ repokit.TxRunner }

func binder(r stubRepo) repokit.Binder[repo.Repo] {
	return repokit.BindFunc[repo.Repo](func(repokit.Queryer) repo.Repo { return r })
}

func TestNew_PanicsOnNil(t *testing.T) {
	kit.MustPanic(t, func() { New(nil, repo.NewPG()) })
	kit.MustPanic(t, func() { New(nopDB{}, nil) })
}

func TestRandomJoke(t *testing.T) {
	id := int64(1)
	s := New(nopDB{}, binder(stubRepo{joke: domain.Joke{ID: &id, Text: "hi"}}))
	j, err := s.RandomJoke(context.Background())
	if err != nil || j.Text != "hi" {
		t.Fatalf("got %+v, %v", j, err)
	}
}

func TestRandomJoke_EmptyIsNotFound(t *testing.T) {
	s := New(nopDB{}, binder(stubRepo{err: perr.WithOp(perr.ErrNotFound, "random joke")}))
	_, err := s.RandomJoke(context.Background())
	if perr.HTTPStatus(err) != 404 {
		t.Fatalf("want 404, got %v", err)
	}
	if msg := perr.MessageOf(err); msg == nil || *msg != "No jokes found" {
		t.Fatalf("message = %v", msg)
	}
}

func TestRandomJoke_PassesOtherErrors(t *testing.T) {
	boom := errors.New("boom")
	s := New(nopDB{}, binder(stubRepo{err: boom}))
	if _, err := s.RandomJoke(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("want boom, got %v", err)
	}
}

func TestCountJokes(t *testing.T) {
	s := New(nopDB{}, binder(stubRepo{count: 10}))
	if n, err := s.CountJokes(context.Background()); err != nil || n != 10 {
		t.Fatalf("count = %d, %v", n, err)
	}
}
