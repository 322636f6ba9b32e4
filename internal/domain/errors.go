package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Malformed-input errors. Each rule fails independently so callers can
// branch on the exact kind.
var (
	ErrNilDate             = errors.New("'from' and 'to' dates must be set")
	ErrIllegalMileage      = errors.New("mileage should be positive")
	ErrIllegalLicenseYears = errors.New("license-years should be positive")
	ErrInvalidDateRange    = errors.New("'from' date must not be after 'to' date")
	ErrPastDate            = errors.New("dates must not be in the past")
)

type VehicleNotFoundError struct {
	ID uuid.UUID
}

func (e *VehicleNotFoundError) Error() string {
	return fmt.Sprintf("given vehicle id [%s] is invalid", e.ID)
}

type CategoryNotFoundError struct {
	Name string
}

func (e *CategoryNotFoundError) Error() string {
	return fmt.Sprintf("%s vehicle category not available", e.Name)
}

type InvalidReservationIDError struct {
	ID uuid.UUID
}

func (e *InvalidReservationIDError) Error() string {
	return fmt.Sprintf("invalid reservation id: %s", e.ID)
}

// ReservationNotPossibleError reports that no vehicle (a specific one, or any
// in a category) is free on the requested range. Subject carries the vehicle
// id or the category name for diagnostics.
type ReservationNotPossibleError struct {
	Subject  string
	FromDate time.Time
	ToDate   time.Time
}

func (e *ReservationNotPossibleError) Error() string {
	return fmt.Sprintf("reservation not available for %s between %s and %s",
		e.Subject, e.FromDate.Format("2006-01-02"), e.ToDate.Format("2006-01-02"))
}

// IsInvalidInput reports whether err is one of the malformed-input kinds.
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrNilDate) ||
		errors.Is(err, ErrIllegalMileage) ||
		errors.Is(err, ErrIllegalLicenseYears) ||
		errors.Is(err, ErrInvalidDateRange) ||
		errors.Is(err, ErrPastDate)
}
