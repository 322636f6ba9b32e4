package repository

import (
	"time"

	"carrental/internal/domain"

	"github.com/google/uuid"
)

// VehicleCatalog resolves fleet vehicles by id and by category. Vehicles are
// provisioned once and never mutated; DeleteAll exists for environment resets
// only.
type VehicleCatalog interface {
	Save(v domain.Vehicle) error
	SaveAll(vs []domain.Vehicle) error
	GetByID(id uuid.UUID) (domain.Vehicle, error)
	GetByCategory(category domain.VehicleCategory) ([]domain.Vehicle, error)
	List() ([]domain.Vehicle, error)
	DeleteAll() error
}

// ReservationStore keeps reservations indexed by reservation id and by
// vehicle id. Implementations must mutate both indices as a unit, and Save
// must re-check the vehicle's availability under the store's own
// synchronization so two conflicting saves cannot both succeed.
type ReservationStore interface {
	// Save persists the reservation, or fails with
	// *domain.ReservationNotPossibleError when the vehicle is already booked
	// on an overlapping range.
	Save(res *domain.Reservation) error
	// Remove deletes and returns the reservation, or fails with
	// *domain.InvalidReservationIDError.
	Remove(id uuid.UUID) (*domain.Reservation, error)
	Get(id uuid.UUID) (*domain.Reservation, error)
	// IsAvailable reports whether the vehicle is free on [fromDate, toDate].
	// Ranges sharing an endpoint day count as conflicting.
	IsAvailable(vehicleID uuid.UUID, fromDate, toDate time.Time) (bool, error)
	List() ([]*domain.Reservation, error)
	// RemoveEndedBefore drops reservations whose 'to' date lies strictly
	// before t and returns how many were removed.
	RemoveEndedBefore(t time.Time) (int, error)
	DeleteAll() error
}
