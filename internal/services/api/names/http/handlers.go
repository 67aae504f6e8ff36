// Package http provides the names registration endpoint
package http

import (
	stdhttp "net/http"

	"funhouse/internal/modkit/httpkit"
	perr "funhouse/internal/platform/errors"
	"funhouse/internal/services/api/names/domain"
)

// Register mounts names endpoints on the given router
func Register(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}
	httpkit.PostJSON(r, "/", h.create)
}

type handlers struct{ svc domain.ServicePort }

// swagger:route POST /names Names namesCreate
// @Summary Register a name
// @Tags Names
// @Accept json
// @Produce json
// @Param body body domain.NameInput true "name to register"
// @Success 201 {object} domain.NameCreated "created"
// @Failure 400 {object} net.ErrorEnvelope "blank or missing name"
// @Failure 409 {object} net.ErrorEnvelope "Name already exists"
// @Router /names [post]
func (h *handlers) create(r *stdhttp.Request, in domain.NameInput) (any, error) {
	if err := h.svc.Register(r.Context(), in.Name); err != nil {
		return nil, classify(err)
	}
	return httpkit.Created(domain.NameCreated{Name: in.Name, Message: domain.CreatedMessage}), nil
}

// classify keeps the duplicate conflict as 409 and turns every other failure into a 400
func classify(err error) error {
	if perr.IsKind(err, perr.KindConflict) {
		if msg := perr.MessageOf(err); msg != nil && *msg == domain.ErrDuplicateReason {
			return err
		}
	}
	if perr.IsKind(err, perr.KindValidation) {
		return err
	}
	msg := "invalid name"
	if m := perr.MessageOf(err); m != nil {
		msg = *m
	}
	return perr.Wrap(err, perr.ErrorCodeValidation, msg)
}
