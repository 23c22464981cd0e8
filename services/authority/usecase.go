package authority

import (
	"context"

	"github.com/civease/civease/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/civease/civease/services/authority AuthorityUC

// AuthorityUC represents the authority usecase interface
type AuthorityUC interface {
	Register(ctx context.Context, req *models.RegisterAuthorityRequest) error
	Login(ctx context.Context, authorityID, password string) (*models.AuthResponse, error)

	// report triage
	ListProblems(ctx context.Context, filter models.ProblemFilter) ([]models.ProblemWithReporter, error)
	UpdateStatus(ctx context.Context, problemID, status string) error
	Analytics(ctx context.Context) (*models.Analytics, error)
}
