package domain

import "strings"

const (
	sedanDayRate          = 20
	sedanDiscountRate     = 15
	sedanDiscountDayLimit = 10

	vanDayRate     = 22
	vanCleaningFee = 0.1

	suvDayRate    = 15
	suvMileageFee = 0.5

	pickupDayRate            = 30
	pickupNewDriverSurcharge = 0.1
	experiencedDriverYears   = 3
)

// VehicleCategory is the closed set of rental categories. Each category
// carries its own pricing formula and nothing else.
type VehicleCategory string

const (
	CategoryEconomySedan VehicleCategory = "economy-sedan"
	CategoryVan          VehicleCategory = "van"
	CategorySUV          VehicleCategory = "suv"
	CategoryPickupTruck  VehicleCategory = "pickup-truck"
)

// Categories returns every category in its fixed enumeration order.
func Categories() []VehicleCategory {
	return []VehicleCategory{CategoryEconomySedan, CategoryVan, CategorySUV, CategoryPickupTruck}
}

// ParseCategory resolves a category name, case-insensitively.
func ParseCategory(name string) (VehicleCategory, error) {
	switch c := VehicleCategory(strings.ToLower(strings.TrimSpace(name))); c {
	case CategoryEconomySedan, CategoryVan, CategorySUV, CategoryPickupTruck:
		return c, nil
	}
	return "", &CategoryNotFoundError{Name: name}
}

// Price computes the rental price for this category. days is the calendar-day
// span of the stay; mileage and licenseYears are caller-supplied figures.
func (c VehicleCategory) Price(days, mileage, licenseYears int) float64 {
	switch c {
	case CategoryEconomySedan:
		if days < sedanDiscountDayLimit {
			return float64(days * sedanDayRate)
		}
		return float64(days * sedanDiscountRate)
	case CategoryVan:
		price := float64(days * vanDayRate)
		return price + price*vanCleaningFee // cleaning fee
	case CategorySUV:
		return float64(days*suvDayRate) + float64(mileage)*suvMileageFee
	case CategoryPickupTruck:
		price := float64(days * pickupDayRate)
		if licenseYears < experiencedDriverYears {
			price += price * pickupNewDriverSurcharge // new driver surcharge
		}
		return price
	}
	return 0
}
