package httpx

import (
	"errors"
	"net/http"
)

// Sentinel errors shared by the domain layer.
var (
	ErrNotFound      = errors.New("resource not found")
	ErrAlreadyExists = errors.New("duplicate entry")
	ErrValidation    = errors.New("validation failed")
	ErrTenantMissing = errors.New("tenant not identified")
)

// RespondError maps domain errors onto RFC7807 problem responses.
func RespondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		Problem(w, http.StatusNotFound, "Not Found", err.Error())
	case errors.Is(err, ErrAlreadyExists):
		Problem(w, http.StatusConflict, "Duplicate", err.Error())
	case errors.Is(err, ErrValidation):
		Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
	case errors.Is(err, ErrTenantMissing):
		Problem(w, http.StatusBadRequest, "Tenant Required", err.Error())
	default:
		Problem(w, http.StatusInternalServerError, "Internal Error", "")
	}
}
