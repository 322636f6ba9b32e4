package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"carrental/internal/domain"

	"github.com/google/uuid"
)

// PostgresVehicleCatalog backs the fleet with the vehicles table.
type PostgresVehicleCatalog struct {
	DB *sql.DB
}

func NewPostgresVehicleCatalog(db *sql.DB) *PostgresVehicleCatalog {
	return &PostgresVehicleCatalog{DB: db}
}

func (c *PostgresVehicleCatalog) Save(v domain.Vehicle) error {
	_, err := c.DB.Exec(`
		INSERT INTO vehicles (id, category) VALUES ($1, $2)
		ON CONFLICT (id) DO NOTHING`, v.ID, v.Category)
	if err != nil {
		return fmt.Errorf("error saving vehicle: %w", err)
	}
	return nil
}

func (c *PostgresVehicleCatalog) SaveAll(vs []domain.Vehicle) error {
	tx, err := c.DB.Begin()
	if err != nil {
		return fmt.Errorf("error beginning fleet transaction: %w", err)
	}
	defer tx.Rollback()

	for _, v := range vs {
		if _, err := tx.Exec(`
			INSERT INTO vehicles (id, category) VALUES ($1, $2)
			ON CONFLICT (id) DO NOTHING`, v.ID, v.Category); err != nil {
			return fmt.Errorf("error saving vehicle %s: %w", v.ID, err)
		}
	}
	return tx.Commit()
}

func (c *PostgresVehicleCatalog) GetByID(id uuid.UUID) (domain.Vehicle, error) {
	var v domain.Vehicle
	err := c.DB.QueryRow(`SELECT id, category FROM vehicles WHERE id = $1`, id).
		Scan(&v.ID, &v.Category)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Vehicle{}, &domain.VehicleNotFoundError{ID: id}
		}
		return domain.Vehicle{}, fmt.Errorf("error querying vehicle: %w", err)
	}
	return v, nil
}

func (c *PostgresVehicleCatalog) GetByCategory(category domain.VehicleCategory) ([]domain.Vehicle, error) {
	return c.queryVehicles(`SELECT id, category FROM vehicles WHERE category = $1`, category)
}

func (c *PostgresVehicleCatalog) List() ([]domain.Vehicle, error) {
	return c.queryVehicles(`SELECT id, category FROM vehicles`)
}

func (c *PostgresVehicleCatalog) queryVehicles(query string, args ...any) ([]domain.Vehicle, error) {
	rows, err := c.DB.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing vehicles: %w", err)
	}
	defer rows.Close()

	var out []domain.Vehicle
	for rows.Next() {
		var v domain.Vehicle
		if err := rows.Scan(&v.ID, &v.Category); err != nil {
			return nil, fmt.Errorf("error scanning vehicle: %w", err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (c *PostgresVehicleCatalog) DeleteAll() error {
	_, err := c.DB.Exec(`DELETE FROM vehicles`)
	return err
}
