package authority

import (
	"context"

	"github.com/google/uuid"

	"github.com/civease/civease/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/civease/civease/services/authority AuthorityRepo

// AuthorityRepo represents the authority repository interface.
// Lookups return (nil, nil) when no row matches.
type AuthorityRepo interface {
	CreateAuthority(ctx context.Context, authority *models.Authority) error
	GetAuthorityByAuthorityID(ctx context.Context, authorityID string) (*models.Authority, error)
	GetAuthorityByEmail(ctx context.Context, email string) (*models.Authority, error)

	ListProblems(ctx context.Context, filter models.ProblemFilter) ([]models.ProblemWithReporter, error)
	// UpdateProblemStatus reports whether a row with that id existed
	UpdateProblemStatus(ctx context.Context, problemID uuid.UUID, status string) (bool, error)
	GetAnalytics(ctx context.Context) (*models.Analytics, error)
}
