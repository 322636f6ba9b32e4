package domain

import (
	"time"

	"github.com/google/uuid"
)

// Reservation binds one vehicle to one date range at a price fixed at
// creation time. Build one through NewReservation only; the zero value and
// hand-filled literals skip validation.
type Reservation struct {
	ID       uuid.UUID `json:"id"`
	Vehicle  Vehicle   `json:"vehicle"`
	Price    float64   `json:"price"`
	FromDate time.Time `json:"from_date"`
	ToDate   time.Time `json:"to_date"`
}

// NewReservation validates the inputs, prices the stay with the vehicle's
// category formula and assigns a fresh id. It persists nothing; saving is the
// caller's job.
func NewReservation(vehicle Vehicle, fromDate, toDate time.Time, mileage, licenseYears int) (*Reservation, error) {
	if err := ValidateReservationInputs(fromDate, toDate, mileage, licenseYears); err != nil {
		return nil, err
	}
	days := DaysBetween(fromDate, toDate)
	return &Reservation{
		ID:       uuid.New(),
		Vehicle:  vehicle,
		Price:    vehicle.Category.Price(days, mileage, licenseYears),
		FromDate: Day(fromDate),
		ToDate:   Day(toDate),
	}, nil
}

// Day truncates t to its calendar date (midnight UTC). All reservation dates
// are stored in this form.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the calendar-day span from 'from' to 'to';
// Jan 1 -> Jan 3 is 2 days.
func DaysBetween(from, to time.Time) int {
	return int(Day(to).Sub(Day(from)) / (24 * time.Hour))
}
