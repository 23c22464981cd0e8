package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/civease/civease/internal/pkg/apperrors"
	"github.com/civease/civease/internal/pkg/logger"
	"github.com/civease/civease/internal/pkg/models"
)

// ListProblems returns all problems with reporter details, narrowed by the
// optional exact-match filters
func (u *AuthorityUC) ListProblems(ctx context.Context, filter models.ProblemFilter) ([]models.ProblemWithReporter, error) {
	problems, err := u.authorityRepo.ListProblems(ctx, filter)
	if err != nil {
		return nil, apperrors.Internal("Failed to list problems", err)
	}
	return problems, nil
}

// UpdateStatus overwrites a problem's status. The status value is an open
// string set: any non-empty value is accepted.
func (u *AuthorityUC) UpdateStatus(ctx context.Context, problemID, status string) error {
	if problemID == "" || status == "" {
		return apperrors.Validation("Problem ID and status are required")
	}

	id, err := uuid.Parse(problemID)
	if err != nil {
		return apperrors.Validation("Invalid problem ID")
	}

	found, err := u.authorityRepo.UpdateProblemStatus(ctx, id, status)
	if err != nil {
		return apperrors.Internal("Failed to update status", err)
	}
	if !found {
		return apperrors.NotFound("Problem not found")
	}

	logger.Info("Problem status updated",
		logger.String("problem_id", problemID),
		logger.String("status", status))
	return nil
}

// Analytics returns a fresh aggregate snapshot over all problems
func (u *AuthorityUC) Analytics(ctx context.Context) (*models.Analytics, error) {
	analytics, err := u.authorityRepo.GetAnalytics(ctx)
	if err != nil {
		return nil, apperrors.Internal("Failed to compute analytics", err)
	}
	return analytics, nil
}
