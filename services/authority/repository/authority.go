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

// CreateAuthority creates a new authority in the database
func (r *AuthorityRepo) CreateAuthority(ctx context.Context, authority *models.Authority) error {
	authority.ID = uuid.New()
	authority.CreatedAt = time.Now()

	query := `
		INSERT INTO authorities (
			id, authority_id, name, designation, department,
			email, mobile, password_hash, created_at
		) VALUES (
			:id, :authority_id, :name, :designation, :department,
			:email, :mobile, :password_hash, :created_at
		)
	`
	if _, err := r.db.NamedExecContext(ctx, query, authority); err != nil {
		return fmt.Errorf("failed to insert authority: %w", err)
	}

	return nil
}

// GetAuthorityByAuthorityID retrieves an authority by its external identifier
func (r *AuthorityRepo) GetAuthorityByAuthorityID(ctx context.Context, authorityID string) (*models.Authority, error) {
	return r.getAuthorityByField(ctx, "authority_id", authorityID)
}

// GetAuthorityByEmail retrieves an authority by email
func (r *AuthorityRepo) GetAuthorityByEmail(ctx context.Context, email string) (*models.Authority, error) {
	return r.getAuthorityByField(ctx, "email", email)
}

// getAuthorityByField is a helper to get an authority by a unique column.
// Returns (nil, nil) when no row matches.
func (r *AuthorityRepo) getAuthorityByField(ctx context.Context, field, value string) (*models.Authority, error) {
	query := fmt.Sprintf(`
		SELECT id, authority_id, name, designation, department,
			email, mobile, password_hash, created_at
		FROM authorities
		WHERE %s = $1
	`, field)

	var authority models.Authority
	err := r.db.GetContext(ctx, &authority, query, value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get authority: %w", err)
	}

	return &authority, nil
}
