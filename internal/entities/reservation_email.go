package entities

type ReservationEmailData struct {
	UserName          string
	ReservationID     string
	Category          string
	Price             float64
	FromDateFormatted string
	ToDateFormatted   string
	Status            string
}
