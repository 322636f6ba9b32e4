package errors

import (
	stderrors "errors"
	"net/http"

	"carrental/internal/domain"
)

// HTTPError represents an error with an associated HTTP status code.
type HTTPError struct {
	Code    int
	Message string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTPError with the given code and message.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{
		Code:    code,
		Message: message,
	}
}

// FromDomain translates a domain error into the HTTP status the API layer
// should answer with: malformed input maps to 400, unknown ids to 404,
// booking conflicts to 409, anything else to 500.
func FromDomain(err error) *HTTPError {
	var (
		vehicleNotFound    *domain.VehicleNotFoundError
		categoryNotFound   *domain.CategoryNotFoundError
		invalidReservation *domain.InvalidReservationIDError
		notPossible        *domain.ReservationNotPossibleError
	)
	switch {
	case domain.IsInvalidInput(err):
		return NewHTTPError(http.StatusBadRequest, err.Error())
	case stderrors.As(err, &vehicleNotFound),
		stderrors.As(err, &categoryNotFound),
		stderrors.As(err, &invalidReservation):
		return NewHTTPError(http.StatusNotFound, err.Error())
	case stderrors.As(err, &notPossible):
		return NewHTTPError(http.StatusConflict, err.Error())
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}
