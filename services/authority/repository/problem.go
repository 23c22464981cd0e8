package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/civease/civease/internal/pkg/models"
)

// ListProblems returns all problems joined with their reporting citizen,
// optionally narrowed by exact-match status and category filters (AND)
func (r *AuthorityRepo) ListProblems(ctx context.Context, filter models.ProblemFilter) ([]models.ProblemWithReporter, error) {
	query := `
		SELECT p.id, p.citizen_id, p.description, p.file_path, p.location,
			p.latitude, p.longitude, p.geohash, p.category, p.status, p.created_at,
			c.name AS reporter_name, c.mobile AS reporter_mobile
		FROM problems p
		JOIN citizens c ON c.id = p.citizen_id
	`

	args := []interface{}{}
	conditions := []string{}
	if filter.Status != "" {
		args = append(args, filter.Status)
		conditions = append(conditions, fmt.Sprintf("p.status = $%d", len(args)))
	}
	if filter.Category != "" {
		args = append(args, filter.Category)
		conditions = append(conditions, fmt.Sprintf("p.category = $%d", len(args)))
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY p.created_at"

	rows, err := r.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list problems: %w", err)
	}
	defer rows.Close()

	problems := []models.ProblemWithReporter{}
	for rows.Next() {
		var p models.ProblemWithReporter
		if err := rows.Scan(
			&p.ID, &p.CitizenID, &p.Description, &p.FilePath, &p.Location,
			&p.Latitude, &p.Longitude, &p.Geohash, &p.Category, &p.Status, &p.CreatedAt,
			&p.Reporter.Name, &p.Reporter.Mobile,
		); err != nil {
			return nil, fmt.Errorf("failed to scan problem: %w", err)
		}
		problems = append(problems, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list problems: %w", err)
	}

	return problems, nil
}

// UpdateProblemStatus overwrites the status of a problem.
// The boolean reports whether a row with that id existed.
func (r *AuthorityRepo) UpdateProblemStatus(ctx context.Context, problemID uuid.UUID, status string) (bool, error) {
	query := `UPDATE problems SET status = $1 WHERE id = $2`

	result, err := r.db.ExecContext(ctx, query, status, problemID)
	if err != nil {
		return false, fmt.Errorf("failed to update problem status: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return affected > 0, nil
}

// GetAnalytics computes a fresh aggregate snapshot over all problems
func (r *AuthorityRepo) GetAnalytics(ctx context.Context) (*models.Analytics, error) {
	analytics := &models.Analytics{
		CategoryWiseCount: map[string]int64{},
	}

	countsQuery := `
		SELECT
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE status = $1) AS resolved,
			COUNT(*) FILTER (WHERE status = $2) AS pending
		FROM problems
	`
	row := r.db.QueryRowxContext(ctx, countsQuery, models.StatusResolved, models.StatusPending)
	if err := row.Scan(&analytics.TotalReports, &analytics.ResolvedReports, &analytics.PendingReports); err != nil {
		return nil, fmt.Errorf("failed to count problems: %w", err)
	}

	categoryQuery := `
		SELECT category, COUNT(*) AS count
		FROM problems
		GROUP BY category
	`
	rows, err := r.db.QueryxContext(ctx, categoryQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to count categories: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var category string
		var count int64
		if err := rows.Scan(&category, &count); err != nil {
			return nil, fmt.Errorf("failed to scan category count: %w", err)
		}
		analytics.CategoryWiseCount[category] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to count categories: %w", err)
	}

	return analytics, nil
}
