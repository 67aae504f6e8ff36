// Package domain holds the greetings vocabulary and port
package domain

import "context"

// Greetings is the fixed vocabulary the endpoint picks from
var Greetings = [...]string{
	"Hello, world!",
	"Hi there!",
	"Greetings, earthling!",
	"Howdy, partner!",
	"Good day to you!",
}

// GreetingResponse is the GET /greetings body
type GreetingResponse struct {
	Message string `json:"message" example:"Hi there!"`
}

// ServicePort is consumed by handlers
type ServicePort interface {
	Random(ctx context.Context) string
}

// IsGreeting reports whether s is one of the fixed greetings
func IsGreeting(s string) bool {
	for _, g := range Greetings {
		if g == s {
			return true
		}
	}
	return false
}
