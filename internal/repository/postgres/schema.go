package postgres

import (
	"context"
	"fmt"
)

// schemaStatements create the directory schema when it does not exist yet.
// Favorites cascade away with their user or location; transport locations
// cascade away with their category or vehicle (the count-reporting variant of
// that cascade lives in the repositories, inside a transaction).
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id         SERIAL PRIMARY KEY,
		first_name TEXT NOT NULL,
		last_name  TEXT NOT NULL,
		email      TEXT NOT NULL UNIQUE,
		password   TEXT NOT NULL,
		is_admin   BOOLEAN NOT NULL DEFAULT FALSE
	)`,
	`CREATE TABLE IF NOT EXISTS categories (
		id   SERIAL PRIMARY KEY,
		name TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS vehicles (
		id    SERIAL PRIMARY KEY,
		brand TEXT,
		model TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS transport_locations (
		id          SERIAL PRIMARY KEY,
		category_id INTEGER REFERENCES categories(id) ON DELETE CASCADE,
		vehicle_id  INTEGER REFERENCES vehicles(id) ON DELETE CASCADE,
		address     TEXT NOT NULL,
		latitude    DOUBLE PRECISION CHECK (latitude BETWEEN -90 AND 90),
		longitude   DOUBLE PRECISION CHECK (longitude BETWEEN -180 AND 180)
	)`,
	`CREATE TABLE IF NOT EXISTS favorites (
		user_id               INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		transport_location_id INTEGER NOT NULL REFERENCES transport_locations(id) ON DELETE CASCADE,
		PRIMARY KEY (user_id, transport_location_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_transport_locations_category ON transport_locations(category_id)`,
	`CREATE INDEX IF NOT EXISTS idx_transport_locations_vehicle ON transport_locations(vehicle_id)`,
}

// Migrate applies the schema statements in order.
func (db *DB) Migrate(ctx context.Context) error {
	for i, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("schema statement %d failed: %w", i, err)
		}
	}
	db.logger.Info("Database schema ready")
	return nil
}
