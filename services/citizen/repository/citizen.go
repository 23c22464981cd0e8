package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/civease/civease/internal/pkg/models"
)

// CreateCitizen creates a new citizen in the database
func (r *CitizenRepo) CreateCitizen(ctx context.Context, citizen *models.Citizen) error {
	citizen.ID = uuid.New()
	citizen.CreatedAt = time.Now()

	query := `
		INSERT INTO citizens (id, name, dob, aadhaar, mobile, created_at)
		VALUES (:id, :name, :dob, :aadhaar, :mobile, :created_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, citizen); err != nil {
		return fmt.Errorf("failed to insert citizen: %w", err)
	}

	return nil
}

// GetCitizenByMobile retrieves a citizen by mobile number
func (r *CitizenRepo) GetCitizenByMobile(ctx context.Context, mobile string) (*models.Citizen, error) {
	return r.getCitizenByField(ctx, "mobile", mobile)
}

// GetCitizenByAadhaar retrieves a citizen by Aadhaar number
func (r *CitizenRepo) GetCitizenByAadhaar(ctx context.Context, aadhaar string) (*models.Citizen, error) {
	return r.getCitizenByField(ctx, "aadhaar", aadhaar)
}

// getCitizenByField is a helper to get a citizen by a unique column.
// Returns (nil, nil) when no row matches.
func (r *CitizenRepo) getCitizenByField(ctx context.Context, field, value string) (*models.Citizen, error) {
	query := fmt.Sprintf(`
		SELECT id, name, dob, aadhaar, mobile, created_at
		FROM citizens
		WHERE %s = $1
	`, field)

	var citizen models.Citizen
	err := r.db.GetContext(ctx, &citizen, query, value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get citizen: %w", err)
	}

	return &citizen, nil
}
