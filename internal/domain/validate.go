package domain

import "time"

// ValidateQuoteInputs applies the checks shared by quoting and reserving:
// both dates present, positive mileage and license years, and 'from' not
// after 'to'. Equal dates pass; zero-length stays are allowed through here.
func ValidateQuoteInputs(fromDate, toDate time.Time, mileage, licenseYears int) error {
	if fromDate.IsZero() || toDate.IsZero() {
		return ErrNilDate
	}
	if mileage <= 0 {
		return ErrIllegalMileage
	}
	if licenseYears <= 0 {
		return ErrIllegalLicenseYears
	}
	if Day(fromDate).After(Day(toDate)) {
		return ErrInvalidDateRange
	}
	return nil
}

// ValidateReservationInputs adds the build-time rule that neither date may
// lie before today. Quotes do not enforce this, only actual reservations.
func ValidateReservationInputs(fromDate, toDate time.Time, mileage, licenseYears int) error {
	if err := ValidateQuoteInputs(fromDate, toDate, mileage, licenseYears); err != nil {
		return err
	}
	today := Day(time.Now())
	if Day(fromDate).Before(today) || Day(toDate).Before(today) {
		return ErrPastDate
	}
	return nil
}
