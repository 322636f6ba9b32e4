package service

import (
	"fmt"

	"carrental/internal/domain"
	"carrental/internal/logger"
	"carrental/internal/repository"
)

// AdminService covers fleet provisioning and back-office listings.
type AdminService struct {
	vehicles repository.VehicleCatalog
	store    repository.ReservationStore
}

func NewAdminService(vehicles repository.VehicleCatalog, store repository.ReservationStore) *AdminService {
	return &AdminService{vehicles: vehicles, store: store}
}

// ProvisionVehicles adds count fresh vehicles of the category to the fleet.
func (s *AdminService) ProvisionVehicles(category domain.VehicleCategory, count int) ([]domain.Vehicle, error) {
	if count <= 0 {
		return nil, fmt.Errorf("vehicle count should be positive, got %d", count)
	}
	fleet := make([]domain.Vehicle, 0, count)
	for i := 0; i < count; i++ {
		fleet = append(fleet, domain.NewVehicle(category))
	}
	if err := s.vehicles.SaveAll(fleet); err != nil {
		return nil, err
	}
	logger.Log.Infow("Provisioned vehicles", "category", category, "count", count)
	return fleet, nil
}

func (s *AdminService) ListVehicles() ([]domain.Vehicle, error) {
	return s.vehicles.List()
}

func (s *AdminService) ListReservations() ([]*domain.Reservation, error) {
	return s.store.List()
}

// Reset wipes all reservations and the whole fleet. Environment resets only,
// never a normal operational path.
func (s *AdminService) Reset() error {
	if err := s.store.DeleteAll(); err != nil {
		return err
	}
	if err := s.vehicles.DeleteAll(); err != nil {
		return err
	}
	logger.Log.Warnw("Reset: all reservations and vehicles deleted")
	return nil
}
