package citizen

import (
	"context"

	"github.com/google/uuid"

	"github.com/civease/civease/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/civease/civease/services/citizen CitizenRepo

// CitizenRepo represents the citizen repository interface.
// Lookups return (nil, nil) when no row matches.
type CitizenRepo interface {
	CreateCitizen(ctx context.Context, citizen *models.Citizen) error
	GetCitizenByMobile(ctx context.Context, mobile string) (*models.Citizen, error)
	GetCitizenByAadhaar(ctx context.Context, aadhaar string) (*models.Citizen, error)

	// OTP rows are keyed by mobile: upsert overwrites, delete consumes
	UpsertOTP(ctx context.Context, otp *models.OTP) error
	GetOTPByMobile(ctx context.Context, mobile string) (*models.OTP, error)
	DeleteOTP(ctx context.Context, mobile string) error

	CreateProblem(ctx context.Context, problem *models.Problem) error
	ListProblemsByCitizen(ctx context.Context, citizenID uuid.UUID) ([]models.Problem, error)
}
