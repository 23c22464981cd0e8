package citizen

import (
	"context"

	"github.com/google/uuid"

	"github.com/civease/civease/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/civease/civease/services/citizen CitizenUC

// CitizenUC represents the citizen usecase interface
type CitizenUC interface {
	Register(ctx context.Context, req *models.RegisterCitizenRequest) error

	// OTP login
	SendOTP(ctx context.Context, mobile string) error
	VerifyOTP(ctx context.Context, mobile, code string) (*models.AuthResponse, error)

	// problem reporting
	ReportProblem(ctx context.Context, citizenID uuid.UUID, input *models.ReportProblemInput) (*models.Problem, error)
	MyReports(ctx context.Context, citizenID uuid.UUID) ([]models.Problem, error)
}
