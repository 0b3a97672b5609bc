package testhelpers

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// InsertUser seeds a user row and returns its id
func InsertUser(db *sqlx.DB, firstName, lastName, email, passwordHash string, isAdmin bool) (int64, error) {
	var id int64
	err := db.QueryRowContext(context.Background(),
		`INSERT INTO users (first_name, last_name, email, password, is_admin)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		firstName, lastName, email, passwordHash, isAdmin,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert user %s: %w", email, err)
	}
	return id, nil
}

// InsertCategory seeds a category row and returns its id
func InsertCategory(db *sqlx.DB, name string) (int64, error) {
	var id int64
	err := db.QueryRowContext(context.Background(),
		`INSERT INTO categories (name) VALUES ($1) RETURNING id`, name,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert category %s: %w", name, err)
	}
	return id, nil
}

// InsertVehicle seeds a vehicle row and returns its id
func InsertVehicle(db *sqlx.DB, brand, model *string) (int64, error) {
	var id int64
	err := db.QueryRowContext(context.Background(),
		`INSERT INTO vehicles (brand, model) VALUES ($1, $2) RETURNING id`, brand, model,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert vehicle: %w", err)
	}
	return id, nil
}

// InsertLocation seeds a transport location row and returns its id.
// Nil coordinates produce a row the nearby search must never return.
func InsertLocation(db *sqlx.DB, categoryID, vehicleID *int64, address string, lat, lon *float64) (int64, error) {
	var id int64
	err := db.QueryRowContext(context.Background(),
		`INSERT INTO transport_locations (category_id, vehicle_id, address, latitude, longitude)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		categoryID, vehicleID, address, lat, lon,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert location %s: %w", address, err)
	}
	return id, nil
}

// InsertFavorite seeds a favorite pair
func InsertFavorite(db *sqlx.DB, userID, locationID int64) error {
	_, err := db.ExecContext(context.Background(),
		`INSERT INTO favorites (user_id, transport_location_id) VALUES ($1, $2)`,
		userID, locationID,
	)
	if err != nil {
		return fmt.Errorf("insert favorite (%d, %d): %w", userID, locationID, err)
	}
	return nil
}

// CountRows returns the number of rows in a table
func CountRows(db *sqlx.DB, table string) (int, error) {
	var n int
	err := db.QueryRowContext(context.Background(),
		fmt.Sprintf("SELECT COUNT(*) FROM %s", table),
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	return n, nil
}

// Ptr returns a pointer to v; fixture sugar for nullable columns
func Ptr[T any](v T) *T {
	return &v
}
