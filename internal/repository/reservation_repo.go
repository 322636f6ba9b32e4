package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"carrental/internal/domain"

	"github.com/google/uuid"
)

// PostgresReservationStore persists reservations in the reservations table.
// The by-id and by-vehicle views are the same rows, so they can never drift;
// Save locks the vehicle row and runs the overlap check and the insert in one
// transaction, which serializes concurrent attempts per vehicle.
type PostgresReservationStore struct {
	DB *sql.DB
}

func NewPostgresReservationStore(db *sql.DB) *PostgresReservationStore {
	return &PostgresReservationStore{DB: db}
}

// Two ranges conflict unless one ends strictly before the other starts;
// shared endpoint days conflict.
const overlapCondition = `vehicle_id = $1 AND NOT (to_date < $2 OR $3 < from_date)`

func (s *PostgresReservationStore) Save(res *domain.Reservation) error {
	tx, err := s.DB.Begin()
	if err != nil {
		return fmt.Errorf("error beginning save transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`SELECT id FROM vehicles WHERE id = $1 FOR UPDATE`, res.Vehicle.ID); err != nil {
		return fmt.Errorf("error locking vehicle row: %w", err)
	}

	var conflicts int
	query := `SELECT COUNT(*) FROM reservations WHERE ` + overlapCondition
	if err := tx.QueryRow(query, res.Vehicle.ID, res.FromDate, res.ToDate).Scan(&conflicts); err != nil {
		return fmt.Errorf("error checking for conflicting reservations: %w", err)
	}
	if conflicts > 0 {
		return &domain.ReservationNotPossibleError{
			Subject:  res.Vehicle.ID.String(),
			FromDate: res.FromDate,
			ToDate:   res.ToDate,
		}
	}

	_, err = tx.Exec(`
		INSERT INTO reservations (id, vehicle_id, category, price, from_date, to_date)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		res.ID, res.Vehicle.ID, res.Vehicle.Category, res.Price, res.FromDate, res.ToDate,
	)
	if err != nil {
		return fmt.Errorf("error inserting reservation: %w", err)
	}
	return tx.Commit()
}

func (s *PostgresReservationStore) Remove(id uuid.UUID) (*domain.Reservation, error) {
	row := s.DB.QueryRow(`
		DELETE FROM reservations WHERE id = $1
		RETURNING id, vehicle_id, category, price, from_date, to_date`, id)
	res, err := scanReservation(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &domain.InvalidReservationIDError{ID: id}
		}
		return nil, fmt.Errorf("error removing reservation: %w", err)
	}
	return res, nil
}

func (s *PostgresReservationStore) Get(id uuid.UUID) (*domain.Reservation, error) {
	row := s.DB.QueryRow(`
		SELECT id, vehicle_id, category, price, from_date, to_date
		FROM reservations WHERE id = $1`, id)
	res, err := scanReservation(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &domain.InvalidReservationIDError{ID: id}
		}
		return nil, fmt.Errorf("error querying reservation: %w", err)
	}
	return res, nil
}

func (s *PostgresReservationStore) IsAvailable(vehicleID uuid.UUID, fromDate, toDate time.Time) (bool, error) {
	var booked bool
	query := `SELECT EXISTS (SELECT 1 FROM reservations WHERE ` + overlapCondition + `)`
	err := s.DB.QueryRow(query, vehicleID, domain.Day(fromDate), domain.Day(toDate)).Scan(&booked)
	if err != nil {
		return false, fmt.Errorf("error checking availability: %w", err)
	}
	return !booked, nil
}

func (s *PostgresReservationStore) List() ([]*domain.Reservation, error) {
	rows, err := s.DB.Query(`
		SELECT id, vehicle_id, category, price, from_date, to_date
		FROM reservations ORDER BY from_date`)
	if err != nil {
		return nil, fmt.Errorf("error listing reservations: %w", err)
	}
	defer rows.Close()

	var out []*domain.Reservation
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning reservation: %w", err)
		}
		out = append(out, res)
	}
	return out, rows.Err()
}

func (s *PostgresReservationStore) RemoveEndedBefore(t time.Time) (int, error) {
	result, err := s.DB.Exec(`DELETE FROM reservations WHERE to_date < $1`, domain.Day(t))
	if err != nil {
		return 0, fmt.Errorf("error removing ended reservations: %w", err)
	}
	removed, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(removed), nil
}

func (s *PostgresReservationStore) DeleteAll() error {
	_, err := s.DB.Exec(`DELETE FROM reservations`)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReservation(row rowScanner) (*domain.Reservation, error) {
	var res domain.Reservation
	err := row.Scan(&res.ID, &res.Vehicle.ID, &res.Vehicle.Category, &res.Price, &res.FromDate, &res.ToDate)
	if err != nil {
		return nil, err
	}
	res.FromDate = domain.Day(res.FromDate)
	res.ToDate = domain.Day(res.ToDate)
	return &res, nil
}
