package entities

import (
	"carrental/internal/domain"
	"carrental/internal/utils"
)

type ReservationResponse struct {
	ID        string  `json:"id"`
	VehicleID string  `json:"vehicle_id"`
	Category  string  `json:"category"`
	Price     float64 `json:"price"`
	FromDate  string  `json:"from_date"`
	ToDate    string  `json:"to_date"`
}

func ToReservationResponse(res *domain.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:        res.ID.String(),
		VehicleID: res.Vehicle.ID.String(),
		Category:  string(res.Vehicle.Category),
		Price:     res.Price,
		FromDate:  utils.FormatDate(res.FromDate),
		ToDate:    utils.FormatDate(res.ToDate),
	}
}

// CategoryOption is one priced quote in the options listing.
type CategoryOption struct {
	Category domain.VehicleCategory `json:"category"`
	Price    float64                `json:"price"`
}
