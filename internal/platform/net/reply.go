package net

import (
	"net/http"
	"time"

	perr "funhouse/internal/platform/errors"
	pstrings "funhouse/internal/platform/strings"
)

// ErrorEnvelope is the single body shape for every failed request
// Message and Path render as JSON null when absent
type ErrorEnvelope struct {
	Timestamp time.Time `json:"timestamp"`
	Status    int       `json:"status"`
	Error     string    `json:"error"`
	Message   *string   `json:"message"`
	Path      *string   `json:"path"`
}

// now is a seam for tests
var now = time.Now

// Fail builds the status and envelope for err on path
func Fail(err error, path string) (int, ErrorEnvelope) {
	status := perr.HTTPStatus(err)
	return status, ErrorEnvelope{
		Timestamp: now().UTC(),
		Status:    status,
		Error:     http.StatusText(status),
		Message:   perr.MessageOf(err),
		Path:      pstrings.Ptr(path),
	}
}
