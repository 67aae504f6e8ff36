// Package http provides the dad jokes endpoint
package http

import (
	stdhttp "net/http"

	"funhouse/internal/modkit/httpkit"
	"funhouse/internal/services/api/jokes/domain"
)

// Register mounts jokes endpoints on the given router
func Register(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}
	httpkit.Get(r, "/", h.random)
}

type handlers struct{ svc domain.ServicePort }

// swagger:route GET /dad-jokes Jokes jokesRandom
// @Summary Random dad joke
// @Tags Jokes
// @Produce json
// @Success 200 {object} domain.JokeResponse "ok"
// @Failure 404 {object} net.ErrorEnvelope "no jokes stored"
// @Router /dad-jokes [get]
func (h *handlers) random(r *stdhttp.Request) (any, error) {
	j, err := h.svc.RandomJoke(r.Context())
	if err != nil {
		return nil, err
	}
	return domain.JokeResponse{Joke: j.Text}, nil
}
