// Package domain holds the names DTOs and port
package domain

import "context"

// ErrDuplicateReason is the exact conflict message for an already registered name
const ErrDuplicateReason = "Name already exists"

// CreatedMessage is the success message on registration
const CreatedMessage = "Name created successfully"

// NameInput is the POST /names body
type NameInput struct {
	Name string `json:"name" validate:"required,notblank" example:"Ada"`
}

// NameCreated is the 201 body
// swagger:model
type NameCreated struct {
	Name    string `json:"name"    example:"Ada"`
	Message string `json:"message" example:"Name created successfully"`
}

// ServicePort is consumed by handlers
type ServicePort interface {
	Register(ctx context.Context, name string) error
}
