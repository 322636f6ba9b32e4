package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrice(t *testing.T) {
	tests := []struct {
		name         string
		category     VehicleCategory
		days         int
		mileage      int
		licenseYears int
		want         float64
	}{
		{"sedan below discount threshold", CategoryEconomySedan, 9, 100, 4, 180},
		{"sedan at discount threshold", CategoryEconomySedan, 10, 100, 4, 150},
		{"sedan above discount threshold", CategoryEconomySedan, 12, 100, 4, 180},
		{"sedan short stay", CategoryEconomySedan, 2, 100, 4, 40},
		{"van includes cleaning fee", CategoryVan, 2, 100, 4, 48.4},
		{"suv charges mileage", CategorySUV, 10, 100, 4, 200},
		{"suv mileage independent of days", CategorySUV, 2, 100, 4, 80},
		{"pickup new driver surcharge", CategoryPickupTruck, 10, 100, 2, 330},
		{"pickup experienced driver", CategoryPickupTruck, 10, 100, 4, 300},
		{"pickup threshold license years", CategoryPickupTruck, 10, 100, 3, 300},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.category.Price(tt.days, tt.mileage, tt.licenseYears)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestPriceIsDeterministic(t *testing.T) {
	for _, category := range Categories() {
		first := category.Price(7, 250, 1)
		assert.Equal(t, first, category.Price(7, 250, 1), "category %s", category)
	}
}

func TestCategoriesOrder(t *testing.T) {
	want := []VehicleCategory{CategoryEconomySedan, CategoryVan, CategorySUV, CategoryPickupTruck}
	assert.Equal(t, want, Categories())
}

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory("SUV")
	require.NoError(t, err)
	assert.Equal(t, CategorySUV, c)

	c, err = ParseCategory(" pickup-truck ")
	require.NoError(t, err)
	assert.Equal(t, CategoryPickupTruck, c)

	_, err = ParseCategory("limousine")
	var notFound *CategoryNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "limousine", notFound.Name)
}
