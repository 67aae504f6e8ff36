// Package domain holds the jokes entity, DTOs and ports
package domain

import (
	"context"
	"time"
)

// Joke is a persisted dad joke
// ID is nil only before the first insert
type Joke struct {
	ID        *int64
	Text      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// JokeResponse is the GET /dad-jokes body
// swagger:model
type JokeResponse struct {
	Joke string `json:"joke" example:"I only know 25 letters of the alphabet. I don't know y."`
}

// ServicePort is consumed by handlers
type ServicePort interface {
	RandomJoke(ctx context.Context) (Joke, error)
}

// Counter reports how many jokes are stored
// other modules (meta readiness) read it through the jokes module ports
type Counter interface {
	CountJokes(ctx context.Context) (int64, error)
}
