package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// schema holds the idempotent DDL for the four persisted entities.
// Uniqueness and referential integrity are enforced by the engine, not
// only checked in application code.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS citizens (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		dob DATE NOT NULL,
		aadhaar VARCHAR(12) NOT NULL UNIQUE,
		mobile VARCHAR(10) NOT NULL UNIQUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS authorities (
		id UUID PRIMARY KEY,
		authority_id VARCHAR(50) NOT NULL UNIQUE,
		name TEXT NOT NULL,
		designation TEXT NOT NULL,
		department TEXT NOT NULL,
		email VARCHAR(120) NOT NULL UNIQUE,
		mobile VARCHAR(10) NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS problems (
		id UUID PRIMARY KEY,
		citizen_id UUID NOT NULL REFERENCES citizens(id),
		description TEXT NOT NULL,
		file_path TEXT,
		location TEXT NOT NULL,
		latitude DOUBLE PRECISION,
		longitude DOUBLE PRECISION,
		geohash VARCHAR(12),
		category VARCHAR(50) NOT NULL,
		status VARCHAR(20) NOT NULL DEFAULT 'Pending',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS otps (
		id UUID PRIMARY KEY,
		mobile VARCHAR(10) NOT NULL UNIQUE,
		code VARCHAR(6) NOT NULL,
		expires_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_problems_citizen_id ON problems (citizen_id)`,
	`CREATE INDEX IF NOT EXISTS idx_problems_status ON problems (status)`,
	`CREATE INDEX IF NOT EXISTS idx_problems_category ON problems (category)`,
}

// MigrateSchema applies the schema DDL. Safe to run on every startup.
func MigrateSchema(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema statement: %w", err)
		}
	}
	return nil
}
