package db

import (
	"database/sql"
	"fmt"
)

// EnsureSchema creates the vehicles and reservations tables when they do not
// exist yet. Dates are stored as plain calendar dates; the overlap predicate
// in the repository layer relies on that.
func EnsureSchema(database *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS vehicles (
			id UUID PRIMARY KEY,
			category TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS reservations (
			id UUID PRIMARY KEY,
			vehicle_id UUID NOT NULL REFERENCES vehicles (id),
			category TEXT NOT NULL,
			price DOUBLE PRECISION NOT NULL,
			from_date DATE NOT NULL,
			to_date DATE NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS reservations_vehicle_id_idx ON reservations (vehicle_id)`,
	}
	for _, stmt := range statements {
		if _, err := database.Exec(stmt); err != nil {
			return fmt.Errorf("error ensuring schema: %w", err)
		}
	}
	return nil
}
