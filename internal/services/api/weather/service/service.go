// Package service implements the weather mood use case
package service

import (
	"context"

	"funhouse/internal/platform/logger"
	"funhouse/internal/services/api/weather/domain"
)

// Svc decides moods, it holds no state besides its logger
type Svc struct {
	log logger.Logger
}

// New constructs a weather service, a zero logger discards output
func New(log logger.Logger) *Svc { return &Svc{log: log} }

// Mood returns the outfit mood for the reading
// an implausible temperature is logged and still decided
func (s *Svc) Mood(ctx context.Context, temperature int, condition string) string {
	if !domain.Plausible(temperature) {
		l := s.log
		if id := logger.RequestID(ctx); id != "" {
			l = l.With().Str("request_id", id).Logger()
		}
		l.Warn().
			Int("temperature", temperature).
			Int("min", domain.MinPlausible).
			Int("max", domain.MaxPlausible).
			Msg("temperature outside plausible range")
	}
	return domain.DecideMood(temperature, condition)
}
