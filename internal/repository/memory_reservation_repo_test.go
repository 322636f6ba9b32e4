package repository

import (
	"sync"
	"testing"
	"time"

	"carrental/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(offset int) time.Time {
	return domain.Day(time.Now().AddDate(0, 0, offset))
}

func mustReservation(t *testing.T, vehicle domain.Vehicle, fromOffset, toOffset int) *domain.Reservation {
	t.Helper()
	res, err := domain.NewReservation(vehicle, day(fromOffset), day(toOffset), 100, 4)
	require.NoError(t, err)
	return res
}

func TestSaveAndGet(t *testing.T) {
	store := NewInMemoryReservationStore()
	vehicle := domain.NewVehicle(domain.CategoryVan)
	res := mustReservation(t, vehicle, 1, 3)

	require.NoError(t, store.Save(res))

	got, err := store.Get(res.ID)
	require.NoError(t, err)
	assert.Equal(t, res, got)
}

func TestGetUnknownID(t *testing.T) {
	store := NewInMemoryReservationStore()
	_, err := store.Get(uuid.New())
	var invalid *domain.InvalidReservationIDError
	assert.ErrorAs(t, err, &invalid)
}

func TestIsAvailable(t *testing.T) {
	store := NewInMemoryReservationStore()
	vehicle := domain.NewVehicle(domain.CategorySUV)
	require.NoError(t, store.Save(mustReservation(t, vehicle, 3, 5)))

	tests := []struct {
		name     string
		from, to int
		want     bool
	}{
		{"identical range", 3, 5, false},
		{"contained range", 4, 4, false},
		{"containing range", 2, 6, false},
		{"overlapping start", 2, 4, false},
		{"overlapping end", 4, 7, false},
		{"touching start day", 1, 3, false},
		{"touching end day", 5, 8, false},
		{"strictly before", 1, 2, true},
		{"strictly after", 6, 8, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			free, err := store.IsAvailable(vehicle.ID, day(tt.from), day(tt.to))
			require.NoError(t, err)
			assert.Equal(t, tt.want, free)
		})
	}
}

func TestIsAvailableOtherVehicleUnaffected(t *testing.T) {
	store := NewInMemoryReservationStore()
	booked := domain.NewVehicle(domain.CategoryVan)
	other := domain.NewVehicle(domain.CategoryVan)
	require.NoError(t, store.Save(mustReservation(t, booked, 1, 5)))

	free, err := store.IsAvailable(other.ID, day(1), day(5))
	require.NoError(t, err)
	assert.True(t, free)
}

func TestSaveRejectsConflict(t *testing.T) {
	store := NewInMemoryReservationStore()
	vehicle := domain.NewVehicle(domain.CategoryEconomySedan)
	require.NoError(t, store.Save(mustReservation(t, vehicle, 1, 4)))

	err := store.Save(mustReservation(t, vehicle, 4, 6))
	var conflict *domain.ReservationNotPossibleError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, vehicle.ID.String(), conflict.Subject)
}

func TestRemoveFreesTheRange(t *testing.T) {
	store := NewInMemoryReservationStore()
	vehicle := domain.NewVehicle(domain.CategoryPickupTruck)
	res := mustReservation(t, vehicle, 2, 5)
	require.NoError(t, store.Save(res))

	removed, err := store.Remove(res.ID)
	require.NoError(t, err)
	assert.Equal(t, res.ID, removed.ID)

	// The same range can be booked again.
	require.NoError(t, store.Save(mustReservation(t, vehicle, 2, 5)))

	_, err = store.Remove(res.ID)
	var invalid *domain.InvalidReservationIDError
	assert.ErrorAs(t, err, &invalid)
}

func TestRemoveUnknownID(t *testing.T) {
	store := NewInMemoryReservationStore()
	_, err := store.Remove(uuid.New())
	var invalid *domain.InvalidReservationIDError
	require.ErrorAs(t, err, &invalid)
}

func TestConcurrentSavesAdmitExactlyOne(t *testing.T) {
	store := NewInMemoryReservationStore()
	vehicle := domain.NewVehicle(domain.CategorySUV)

	const workers = 16
	var wg sync.WaitGroup
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		res := mustReservation(t, vehicle, 1, 5)
		wg.Add(1)
		go func(i int, res *domain.Reservation) {
			defer wg.Done()
			errs[i] = store.Save(res)
		}(i, res)
	}
	wg.Wait()

	saved := 0
	for _, err := range errs {
		if err == nil {
			saved++
			continue
		}
		var conflict *domain.ReservationNotPossibleError
		assert.ErrorAs(t, err, &conflict)
	}
	assert.Equal(t, 1, saved)
}

func TestRemoveEndedBefore(t *testing.T) {
	store := NewInMemoryReservationStore()
	vehicle := domain.NewVehicle(domain.CategoryVan)
	ended := mustReservation(t, vehicle, 1, 2)
	ongoing := mustReservation(t, vehicle, 5, 9)
	require.NoError(t, store.Save(ended))
	require.NoError(t, store.Save(ongoing))

	removed, err := store.RemoveEndedBefore(day(4))
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	_, err = store.Get(ended.ID)
	assert.Error(t, err)
	_, err = store.Get(ongoing.ID)
	assert.NoError(t, err)
}

func TestListAndDeleteAll(t *testing.T) {
	store := NewInMemoryReservationStore()
	vehicle := domain.NewVehicle(domain.CategorySUV)
	require.NoError(t, store.Save(mustReservation(t, vehicle, 1, 2)))
	require.NoError(t, store.Save(mustReservation(t, vehicle, 4, 6)))

	all, err := store.List()
	require.NoError(t, err)
	assert.Len(t, all, 2)

	require.NoError(t, store.DeleteAll())
	all, err = store.List()
	require.NoError(t, err)
	assert.Empty(t, all)
}
