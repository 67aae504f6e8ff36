// Package service picks greetings
package service

import (
	"context"
	"math/rand/v2"

	"funhouse/internal/services/api/greetings/domain"
)

// Svc implements domain.ServicePort
type Svc struct {
	// pick returns an index in [0, n)
	pick func(n int) int
}

// New constructs a greetings service with a uniform picker
func New() *Svc { return &Svc{pick: rand.IntN} }

// Random returns one greeting chosen uniformly
func (s *Svc) Random(context.Context) string {
	return domain.Greetings[s.pick(len(domain.Greetings))]
}
