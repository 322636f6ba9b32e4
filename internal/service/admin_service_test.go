package service

import (
	"testing"

	"carrental/internal/domain"
	"carrental/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProvisionVehicles(t *testing.T) {
	vehicles := repository.NewInMemoryVehicleCatalog()
	admin := NewAdminService(vehicles, repository.NewInMemoryReservationStore())

	fleet, err := admin.ProvisionVehicles(domain.CategoryVan, 3)
	require.NoError(t, err)
	assert.Len(t, fleet, 3)

	vans, err := vehicles.GetByCategory(domain.CategoryVan)
	require.NoError(t, err)
	assert.Equal(t, fleet, vans)
}

func TestProvisionVehiclesRejectsNonPositiveCount(t *testing.T) {
	admin := NewAdminService(repository.NewInMemoryVehicleCatalog(), repository.NewInMemoryReservationStore())

	_, err := admin.ProvisionVehicles(domain.CategorySUV, 0)
	assert.Error(t, err)
	_, err = admin.ProvisionVehicles(domain.CategorySUV, -2)
	assert.Error(t, err)
}

func TestReset(t *testing.T) {
	vehicles := repository.NewInMemoryVehicleCatalog()
	store := repository.NewInMemoryReservationStore()
	admin := NewAdminService(vehicles, store)
	svc := NewReservationService(vehicles, store)

	_, err := admin.ProvisionVehicles(domain.CategoryEconomySedan, 2)
	require.NoError(t, err)
	_, err = svc.ReserveByCategory(domain.CategoryEconomySedan, day(1), day(3), 100, 4)
	require.NoError(t, err)

	require.NoError(t, admin.Reset())

	fleet, err := admin.ListVehicles()
	require.NoError(t, err)
	assert.Empty(t, fleet)
	reservations, err := admin.ListReservations()
	require.NoError(t, err)
	assert.Empty(t, reservations)
}

func TestSweepEndedReservations(t *testing.T) {
	vehicles := repository.NewInMemoryVehicleCatalog()
	store := repository.NewInMemoryReservationStore()
	svc := NewReservationService(vehicles, store)
	job := NewJobService(store)

	require.NoError(t, vehicles.Save(domain.NewVehicle(domain.CategoryVan)))
	res, err := svc.ReserveByCategory(domain.CategoryVan, day(1), day(3), 100, 4)
	require.NoError(t, err)

	// Nothing has ended yet, the sweep removes nothing.
	require.NoError(t, job.SweepEndedReservations())
	_, err = store.Get(res.ID)
	assert.NoError(t, err)
}
