package domain

import "github.com/google/uuid"

// Vehicle is one physical fleet unit. Immutable once provisioned.
type Vehicle struct {
	ID       uuid.UUID       `json:"id"`
	Category VehicleCategory `json:"category"`
}

func NewVehicle(category VehicleCategory) Vehicle {
	return Vehicle{ID: uuid.New(), Category: category}
}
