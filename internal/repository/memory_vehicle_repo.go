package repository

import (
	"sync"

	"carrental/internal/domain"

	"github.com/google/uuid"
)

// InMemoryVehicleCatalog keeps the fleet in two indices, by vehicle id and by
// category. Both are mutated under the same lock.
type InMemoryVehicleCatalog struct {
	mu         sync.RWMutex
	byID       map[uuid.UUID]domain.Vehicle
	byCategory map[domain.VehicleCategory][]domain.Vehicle
}

func NewInMemoryVehicleCatalog() *InMemoryVehicleCatalog {
	return &InMemoryVehicleCatalog{
		byID:       make(map[uuid.UUID]domain.Vehicle),
		byCategory: make(map[domain.VehicleCategory][]domain.Vehicle),
	}
}

func (c *InMemoryVehicleCatalog) Save(v domain.Vehicle) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.save(v)
	return nil
}

func (c *InMemoryVehicleCatalog) SaveAll(vs []domain.Vehicle) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, v := range vs {
		c.save(v)
	}
	return nil
}

// save must run with the lock held.
func (c *InMemoryVehicleCatalog) save(v domain.Vehicle) {
	if _, exists := c.byID[v.ID]; exists {
		return
	}
	c.byID[v.ID] = v
	c.byCategory[v.Category] = append(c.byCategory[v.Category], v)
}

func (c *InMemoryVehicleCatalog) GetByID(id uuid.UUID) (domain.Vehicle, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.byID[id]
	if !ok {
		return domain.Vehicle{}, &domain.VehicleNotFoundError{ID: id}
	}
	return v, nil
}

func (c *InMemoryVehicleCatalog) GetByCategory(category domain.VehicleCategory) ([]domain.Vehicle, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	vs := c.byCategory[category]
	out := make([]domain.Vehicle, len(vs))
	copy(out, vs)
	return out, nil
}

func (c *InMemoryVehicleCatalog) List() ([]domain.Vehicle, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]domain.Vehicle, 0, len(c.byID))
	for _, v := range c.byID {
		out = append(out, v)
	}
	return out, nil
}

func (c *InMemoryVehicleCatalog) DeleteAll() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.byID = make(map[uuid.UUID]domain.Vehicle)
	c.byCategory = make(map[domain.VehicleCategory][]domain.Vehicle)
	return nil
}
