package service

import (
	"fmt"
	"time"

	"carrental/internal/logger"
	"carrental/internal/repository"
)

// JobService owns periodic maintenance of the reservation store.
type JobService struct {
	store repository.ReservationStore
}

func NewJobService(store repository.ReservationStore) *JobService {
	return &JobService{store: store}
}

// SweepEndedReservations drops reservations whose 'to' date has already
// passed, so the per-vehicle indices only carry live bookings.
func (s *JobService) SweepEndedReservations() error {
	removed, err := s.store.RemoveEndedBefore(time.Now())
	if err != nil {
		return fmt.Errorf("cron job: failed to remove ended reservations: %w", err)
	}
	if removed > 0 {
		logger.Log.Infow("Cron job removed ended reservations", "count", removed)
	}
	return nil
}
