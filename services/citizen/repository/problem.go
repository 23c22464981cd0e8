package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/civease/civease/internal/pkg/models"
)

// CreateProblem creates a new problem report owned by a citizen
func (r *CitizenRepo) CreateProblem(ctx context.Context, problem *models.Problem) error {
	problem.ID = uuid.New()
	problem.CreatedAt = time.Now()
	if problem.Status == "" {
		problem.Status = models.StatusPending
	}

	query := `
		INSERT INTO problems (
			id, citizen_id, description, file_path, location,
			latitude, longitude, geohash, category, status, created_at
		) VALUES (
			:id, :citizen_id, :description, :file_path, :location,
			:latitude, :longitude, :geohash, :category, :status, :created_at
		)
	`
	if _, err := r.db.NamedExecContext(ctx, query, problem); err != nil {
		return fmt.Errorf("failed to insert problem: %w", err)
	}

	return nil
}

// ListProblemsByCitizen returns all problems owned by a citizen in
// insertion order
func (r *CitizenRepo) ListProblemsByCitizen(ctx context.Context, citizenID uuid.UUID) ([]models.Problem, error) {
	query := `
		SELECT id, citizen_id, description, file_path, location,
			latitude, longitude, geohash, category, status, created_at
		FROM problems
		WHERE citizen_id = $1
		ORDER BY created_at
	`

	problems := []models.Problem{}
	if err := r.db.SelectContext(ctx, &problems, query, citizenID); err != nil {
		return nil, fmt.Errorf("failed to list problems: %w", err)
	}

	return problems, nil
}
