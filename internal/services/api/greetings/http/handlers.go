// Package http provides the greetings endpoint
package http

import (
	stdhttp "net/http"

	"funhouse/internal/modkit/httpkit"
	"funhouse/internal/services/api/greetings/domain"
)

// Register mounts greetings endpoints on the given router
func Register(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}
	httpkit.Get(r, "/", h.random)
}

type handlers struct{ svc domain.ServicePort }

// swagger:route GET /greetings Greetings greetingsRandom
// @Summary Random greeting
// @Tags Greetings
// @Produce json
// @Success 200 {object} domain.GreetingResponse "ok"
// @Router /greetings [get]
func (h *handlers) random(r *stdhttp.Request) (any, error) {
	return domain.GreetingResponse{Message: h.svc.Random(r.Context())}, nil
}
