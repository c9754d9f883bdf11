// Package httpx provides HTTP response utilities.
package httpx

import (
	"errors"
	"net/http"
)

// Error classes for the domain layer. Domain rule violations wrap one of
// these so transport can pick a client-error status; anything else is
// treated as an infrastructure failure and rendered as a server error.
var (
	ErrNotFound   = errors.New("resource not found")
	ErrValidation = errors.New("validation failed")
	ErrConflict   = errors.New("conflict")
)

// DomainError tags a business rule violation with a machine-readable kind.
// Identity comparison via errors.Is works on package-level instances, and
// Unwrap exposes the class for status mapping.
type DomainError struct {
	Kind    string
	Class   error
	Message string
}

func (e *DomainError) Error() string { return e.Message }

func (e *DomainError) Unwrap() error { return e.Class }

// RespondError maps domain errors to HTTP responses using RFC7807.
// Infrastructure errors deliberately carry no detail to the client.
func RespondError(w http.ResponseWriter, err error) {
	var derr *DomainError
	if errors.As(err, &derr) {
		status := http.StatusBadRequest
		title := "Validation Failed"
		switch {
		case errors.Is(derr.Class, ErrNotFound):
			status = http.StatusNotFound
			title = "Not Found"
		case errors.Is(derr.Class, ErrConflict):
			status = http.StatusConflict
			title = "Conflict"
		}
		ProblemCode(w, status, title, derr.Message, derr.Kind)
		return
	}

	switch {
	case errors.Is(err, ErrNotFound):
		Problem(w, http.StatusNotFound, "Not Found", err.Error())
	case errors.Is(err, ErrValidation):
		Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
	case errors.Is(err, ErrConflict):
		Problem(w, http.StatusConflict, "Conflict", err.Error())
	default:
		Problem(w, http.StatusInternalServerError, "Internal Error", "")
	}
}
