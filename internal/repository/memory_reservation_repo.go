package repository

import (
	"sync"
	"time"

	"carrental/internal/domain"

	"github.com/google/uuid"
)

// InMemoryReservationStore holds two indices that are always mutated together
// under one write lock: reservations by id, and by vehicle id. Save re-checks
// the requested range inside the critical section, so a concurrent
// conflicting save for the same vehicle cannot slip in between the
// availability check and the insert.
type InMemoryReservationStore struct {
	mu        sync.RWMutex
	byID      map[uuid.UUID]*domain.Reservation
	byVehicle map[uuid.UUID]map[uuid.UUID]*domain.Reservation
}

func NewInMemoryReservationStore() *InMemoryReservationStore {
	return &InMemoryReservationStore{
		byID:      make(map[uuid.UUID]*domain.Reservation),
		byVehicle: make(map[uuid.UUID]map[uuid.UUID]*domain.Reservation),
	}
}

func (s *InMemoryReservationStore) Save(res *domain.Reservation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.freeOn(res.Vehicle.ID, res.FromDate, res.ToDate) {
		return &domain.ReservationNotPossibleError{
			Subject:  res.Vehicle.ID.String(),
			FromDate: res.FromDate,
			ToDate:   res.ToDate,
		}
	}
	s.byID[res.ID] = res
	forVehicle, ok := s.byVehicle[res.Vehicle.ID]
	if !ok {
		forVehicle = make(map[uuid.UUID]*domain.Reservation)
		s.byVehicle[res.Vehicle.ID] = forVehicle
	}
	forVehicle[res.ID] = res
	return nil
}

func (s *InMemoryReservationStore) Remove(id uuid.UUID) (*domain.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res, ok := s.byID[id]
	if !ok {
		return nil, &domain.InvalidReservationIDError{ID: id}
	}
	delete(s.byID, id)
	delete(s.byVehicle[res.Vehicle.ID], id)
	return res, nil
}

func (s *InMemoryReservationStore) Get(id uuid.UUID) (*domain.Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	res, ok := s.byID[id]
	if !ok {
		return nil, &domain.InvalidReservationIDError{ID: id}
	}
	return res, nil
}

func (s *InMemoryReservationStore) IsAvailable(vehicleID uuid.UUID, fromDate, toDate time.Time) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.freeOn(vehicleID, domain.Day(fromDate), domain.Day(toDate)), nil
}

// freeOn must run with the lock held. A candidate range conflicts with an
// existing one unless it ends strictly before it starts or starts strictly
// after it ends; ranges that share an endpoint day conflict.
func (s *InMemoryReservationStore) freeOn(vehicleID uuid.UUID, fromDate, toDate time.Time) bool {
	for _, r := range s.byVehicle[vehicleID] {
		exclusive := r.ToDate.Before(fromDate) || toDate.Before(r.FromDate)
		if !exclusive {
			return false
		}
	}
	return true
}

func (s *InMemoryReservationStore) List() ([]*domain.Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*domain.Reservation, 0, len(s.byID))
	for _, res := range s.byID {
		out = append(out, res)
	}
	return out, nil
}

func (s *InMemoryReservationStore) RemoveEndedBefore(t time.Time) (int, error) {
	cutoff := domain.Day(t)
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, res := range s.byID {
		if res.ToDate.Before(cutoff) {
			delete(s.byID, id)
			delete(s.byVehicle[res.Vehicle.ID], id)
			removed++
		}
	}
	return removed, nil
}

func (s *InMemoryReservationStore) DeleteAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byID = make(map[uuid.UUID]*domain.Reservation)
	s.byVehicle = make(map[uuid.UUID]map[uuid.UUID]*domain.Reservation)
	return nil
}
