package httpkit

import (
	"errors"
	"net/http"
	"testing"

	perr "funhouse/internal/platform/errors"
	"funhouse/internal/platform/config"
	phttp "funhouse/internal/platform/net/http"
	kit "funhouse/internal/platform/testkit"

	"github.com/go-chi/chi/v5"
)

func newRouter() (*chi.Mux, Router) {
	m := chi.NewRouter()
	m.NotFound(phttp.NotFoundHandler)
	m.MethodNotAllowed(phttp.MethodNotAllowedHandler)
	return m, phttp.AdaptChi(m)
}

type echoIn struct {
	Word string `json:"word" validate:"required,notblank"`
}

func TestSugar_RoutesAndStatuses(t *testing.T) {
	t.Parallel()
	m, r := newRouter()

	Get(r, "/ok", func(*http.Request) (any, error) { return map[string]string{"hi": "there"}, nil })
	Get(r, "/fail", func(*http.Request) (any, error) { return nil, perr.NotFoundf("nothing here") })
	Post(r, "/poke", func(*http.Request) (any, error) { return NoContent(), nil })
	PostJSON(r, "/echo", func(_ *http.Request, in echoIn) (any, error) {
		return Created(map[string]string{"word": in.Word}), nil
	})
	PutJSON(r, "/echo", func(_ *http.Request, in echoIn) (any, error) { return in, nil })
	Delete(r, "/echo", func(*http.Request) (any, error) { return nil, errors.New("db exploded") })

	cases := []struct {
		method, path string
		body         any
		want         int
	}{
		{http.MethodGet, "/ok", nil, 200},
		{http.MethodGet, "/fail", nil, 404},
		{http.MethodPost, "/poke", nil, 204},
		{http.MethodPost, "/echo", map[string]string{"word": "x"}, 201},
		{http.MethodPost, "/echo", map[string]string{"word": " "}, 400},
		{http.MethodPut, "/echo", map[string]string{"word": "y"}, 200},
		{http.MethodDelete, "/echo", nil, 500},
		{http.MethodGet, "/echo", nil, 405},
		{http.MethodGet, "/nope", nil, 404},
	}
	for _, c := range cases {
		rec := kit.Do(t, m, c.method, c.path, c.body)
		if rec.Code != c.want {
			t.Fatalf("%s %s: status %d want %d body=%s", c.method, c.path, rec.Code, c.want, rec.Body.String())
		}
	}

	env := kit.Decode[phttp.ErrorEnvelope](t, kit.Do(t, m, http.MethodDelete, "/echo", nil))
	if env.Message == nil || *env.Message != "db exploded" {
		t.Fatalf("foreign error message should pass through, got %v", env.Message)
	}
}

func TestMountUnder_PrefixAndRoot(t *testing.T) {
	t.Parallel()
	m, r := newRouter()

	hits := 0
	count := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits++
			next.ServeHTTP(w, r)
		})
	}

	MountUnder(r, "/things", []func(http.Handler) http.Handler{count}, func(sub Router) {
		Get(sub, "/", func(*http.Request) (any, error) { return "things", nil })
	})
	MountUnder(r, "", nil, func(sub Router) {
		Get(sub, "/root", func(*http.Request) (any, error) { return "root", nil })
	})

	if rec := kit.Do(t, m, http.MethodGet, "/things", nil); rec.Code != 200 {
		t.Fatalf("prefixed route status %d", rec.Code)
	}
	if rec := kit.Do(t, m, http.MethodGet, "/root", nil); rec.Code != 200 {
		t.Fatalf("root route status %d", rec.Code)
	}
	if hits != 1 {
		t.Fatalf("module middleware should only wrap its own prefix, hits=%d", hits)
	}
}

func TestCommonStack_Runs(t *testing.T) {
	t.Setenv("CORE_API_CORS_ORIGINS", "https://example.com")

	m := chi.NewRouter()
	m.Use(CommonStack(config.New().Prefix("CORE_API_"))...)
	r := phttp.AdaptChi(m)
	Get(r, "/x", func(*http.Request) (any, error) { return "ok", nil })

	rec := kit.Do(t, m, http.MethodGet, "/x/", nil)
	if rec.Code != 200 {
		t.Fatalf("expected trailing slash to be stripped, got %d", rec.Code)
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Fatalf("expected request id to be mirrored")
	}
	if rec.Header().Get("Cache-Control") == "" {
		t.Fatalf("expected no-cache headers")
	}
}
