package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/civease/civease/internal/pkg/apperrors"
	"github.com/civease/civease/internal/pkg/logger"
	"github.com/civease/civease/internal/pkg/models"
	"github.com/civease/civease/internal/utils"
)

// ReportProblem persists a new problem report for the authenticated citizen,
// storing the optional attachment first.
func (u *CitizenUC) ReportProblem(ctx context.Context, citizenID uuid.UUID, input *models.ReportProblemInput) (*models.Problem, error) {
	if input.Description == "" || input.Location == "" || input.Category == "" {
		return nil, apperrors.Validation("Description, location, and category are required")
	}

	problem := &models.Problem{
		CitizenID:   citizenID,
		Description: input.Description,
		Location:    input.Location,
		Category:    input.Category,
		Status:      models.StatusPending,
	}

	if input.Latitude != nil && input.Longitude != nil {
		if !utils.ValidCoordinates(*input.Latitude, *input.Longitude) {
			return nil, apperrors.Validation("Invalid coordinates")
		}
		problem.Latitude = input.Latitude
		problem.Longitude = input.Longitude
		hash := utils.EncodeGeotag(*input.Latitude, *input.Longitude)
		problem.Geohash = &hash
	}

	if input.File != nil {
		path, err := u.fileStore.Save(input.FileName, input.File)
		if err != nil {
			return nil, apperrors.Internal("Failed to store attachment", err)
		}
		problem.FilePath = &path
	}

	if err := u.citizenRepo.CreateProblem(ctx, problem); err != nil {
		return nil, apperrors.Internal("Failed to report problem", err)
	}

	logger.Info("Problem reported",
		logger.String("problem_id", problem.ID.String()),
		logger.String("citizen_id", citizenID.String()),
		logger.String("category", problem.Category))

	return problem, nil
}

// MyReports returns all problems owned by the authenticated citizen
func (u *CitizenUC) MyReports(ctx context.Context, citizenID uuid.UUID) ([]models.Problem, error) {
	problems, err := u.citizenRepo.ListProblemsByCitizen(ctx, citizenID)
	if err != nil {
		return nil, apperrors.Internal("Failed to list reports", err)
	}
	return problems, nil
}
