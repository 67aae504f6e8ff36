package http

import (
	"net/http"

	perr "funhouse/internal/platform/errors"
)

// NotFoundHandler answers requests that matched no route with a 404 envelope
func NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	RespondError(w, r, perr.Newf(perr.ErrorCodeRouteNotFound, "No handler found for %s %s", r.Method, r.URL.Path))
}

// MethodNotAllowedHandler answers a known path hit with an unsupported method
func MethodNotAllowedHandler(w http.ResponseWriter, r *http.Request) {
	RespondError(w, r, perr.Newf(perr.ErrorCodeMethodNotAllowed, "Request method '%s' is not supported", r.Method))
}
