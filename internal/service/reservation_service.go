package service

import (
	"errors"
	"sort"
	"time"

	"carrental/internal/domain"
	"carrental/internal/entities"
	"carrental/internal/logger"
	"carrental/internal/repository"

	"github.com/google/uuid"
)

// ReservationService orchestrates quoting, reservation creation, modification
// and cancellation on top of the vehicle catalog and the reservation store.
type ReservationService struct {
	vehicles repository.VehicleCatalog
	store    repository.ReservationStore
}

func NewReservationService(vehicles repository.VehicleCatalog, store repository.ReservationStore) *ReservationService {
	return &ReservationService{vehicles: vehicles, store: store}
}

// GetOptions prices every category for the requested stay and returns the
// quotes sorted ascending by price; ties keep the category enumeration order.
// No inventory or availability is consulted, and past dates are accepted here.
func (s *ReservationService) GetOptions(fromDate, toDate time.Time, mileage, licenseYears int) ([]entities.CategoryOption, error) {
	if err := domain.ValidateQuoteInputs(fromDate, toDate, mileage, licenseYears); err != nil {
		return nil, err
	}
	days := domain.DaysBetween(fromDate, toDate)
	categories := domain.Categories()
	options := make([]entities.CategoryOption, 0, len(categories))
	for _, category := range categories {
		options = append(options, entities.CategoryOption{
			Category: category,
			Price:    category.Price(days, mileage, licenseYears),
		})
	}
	sort.SliceStable(options, func(i, j int) bool { return options[i].Price < options[j].Price })
	logger.Log.Infow("Priced category options", "days", days)
	return options, nil
}

// ReserveByVehicleID books one specific vehicle on [fromDate, toDate].
func (s *ReservationService) ReserveByVehicleID(vehicleID uuid.UUID, fromDate, toDate time.Time, mileage, licenseYears int) (*domain.Reservation, error) {
	vehicle, err := s.vehicles.GetByID(vehicleID)
	if err != nil {
		return nil, err
	}
	free, err := s.store.IsAvailable(vehicleID, fromDate, toDate)
	if err != nil {
		return nil, err
	}
	if !free {
		return nil, &domain.ReservationNotPossibleError{
			Subject:  vehicleID.String(),
			FromDate: domain.Day(fromDate),
			ToDate:   domain.Day(toDate),
		}
	}
	res, err := domain.NewReservation(vehicle, fromDate, toDate, mileage, licenseYears)
	if err != nil {
		return nil, err
	}
	if err := s.store.Save(res); err != nil {
		return nil, err
	}
	logger.Log.Infow("Reserved vehicle",
		"reservation_id", res.ID, "vehicle_id", vehicleID, "price", res.Price)
	return res, nil
}

// ReserveByCategory books the first vehicle of the category that is free on
// the requested range. Candidate order is unspecified; no fairness across the
// fleet is guaranteed.
func (s *ReservationService) ReserveByCategory(category domain.VehicleCategory, fromDate, toDate time.Time, mileage, licenseYears int) (*domain.Reservation, error) {
	candidates, err := s.vehicles.GetByCategory(category)
	if err != nil {
		return nil, err
	}
	for _, vehicle := range candidates {
		free, err := s.store.IsAvailable(vehicle.ID, fromDate, toDate)
		if err != nil {
			return nil, err
		}
		if !free {
			continue
		}
		res, err := domain.NewReservation(vehicle, fromDate, toDate, mileage, licenseYears)
		if err != nil {
			return nil, err
		}
		if err := s.store.Save(res); err != nil {
			var conflict *domain.ReservationNotPossibleError
			if errors.As(err, &conflict) {
				// lost a race for this vehicle, try the next one
				continue
			}
			return nil, err
		}
		logger.Log.Infow("Reserved vehicle by category",
			"reservation_id", res.ID, "category", category, "vehicle_id", vehicle.ID, "price", res.Price)
		return res, nil
	}
	return nil, &domain.ReservationNotPossibleError{
		Subject:  string(category),
		FromDate: domain.Day(fromDate),
		ToDate:   domain.Day(toDate),
	}
}

// ModifyReservation replaces an existing reservation with a new one for the
// same vehicle. The old reservation is removed before the new parameters are
// validated; when re-reserving fails the old reservation stays gone. There is
// no rollback.
func (s *ReservationService) ModifyReservation(id uuid.UUID, fromDate, toDate time.Time, mileage, licenseYears int) (*domain.Reservation, error) {
	old, err := s.store.Remove(id)
	if err != nil {
		return nil, err
	}
	res, err := s.ReserveByVehicleID(old.Vehicle.ID, fromDate, toDate, mileage, licenseYears)
	if err != nil {
		logger.Log.Warnw("Reservation modification failed after removal; original is not restored",
			"reservation_id", id, "error", err)
		return nil, err
	}
	logger.Log.Infow("Modified reservation", "old_id", id, "new_id", res.ID)
	return res, nil
}

// CancelReservation removes and returns the reservation, freeing its dates.
func (s *ReservationService) CancelReservation(id uuid.UUID) (*domain.Reservation, error) {
	res, err := s.store.Remove(id)
	if err != nil {
		return nil, err
	}
	logger.Log.Infow("Cancelled reservation", "reservation_id", id)
	return res, nil
}

func (s *ReservationService) GetReservation(id uuid.UUID) (*domain.Reservation, error) {
	return s.store.Get(id)
}
