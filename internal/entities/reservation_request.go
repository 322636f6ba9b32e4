package entities

// Contact is the optional customer contact data carried on requests. It is
// used for notifications only and never stored with the reservation.
type Contact struct {
	UserName  string `json:"user_name"`
	UserEmail string `json:"user_email" validate:"omitempty,email"`
	UserPhone string `json:"user_phone"`
}

// ReservationRequest books either a specific vehicle (vehicle_id) or the
// first free vehicle of a category.
type ReservationRequest struct {
	VehicleID    string `json:"vehicle_id" validate:"omitempty,uuid"`
	Category     string `json:"category" validate:"required_without=VehicleID"`
	FromDate     string `json:"from_date" validate:"required,datetime=2006-01-02"`
	ToDate       string `json:"to_date" validate:"required,datetime=2006-01-02"`
	Mileage      int    `json:"mileage"`
	LicenseYears int    `json:"license_years"`
	Contact
}

type ModifyReservationRequest struct {
	FromDate     string `json:"from_date" validate:"required,datetime=2006-01-02"`
	ToDate       string `json:"to_date" validate:"required,datetime=2006-01-02"`
	Mileage      int    `json:"mileage"`
	LicenseYears int    `json:"license_years"`
	Contact
}

// CancelReservationRequest carries optional contact data so the cancellation
// notice can still reach the customer.
type CancelReservationRequest struct {
	Contact
}
