// Package http provides the weather mood endpoint
package http

import (
	"context"
	stdhttp "net/http"

	"funhouse/internal/modkit/httpkit"
	"funhouse/internal/services/api/weather/domain"
)

// ServicePort is the mood decider consumed by handlers
type ServicePort interface {
	Mood(ctx context.Context, temperature int, condition string) string
}

// Register mounts weather endpoints on the given router
func Register(r httpkit.Router, s ServicePort) {
	h := &handlers{svc: s}
	httpkit.PostJSON(r, "/", h.mood)
}

type handlers struct{ svc ServicePort }

// swagger:route POST /weather-mood Weather weatherMood
// @Summary Outfit mood for a temperature and sky condition
// @Tags Weather
// @Accept json
// @Produce json
// @Param body body domain.WeatherInput true "reading"
// @Success 200 {object} domain.MoodResponse "ok"
// @Failure 400 {object} net.ErrorEnvelope "missing or blank fields"
// @Router /weather-mood [post]
func (h *handlers) mood(r *stdhttp.Request, in domain.WeatherInput) (any, error) {
	return domain.MoodResponse{Mood: h.svc.Mood(r.Context(), *in.Temperature, in.Condition)}, nil
}
