package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/civease/civease/internal/pkg/models"
)

func TestCreateProblem(t *testing.T) {
	// Setup
	repo, mock, cleanup := setupCitizenRepoTest(t)
	defer cleanup()

	problem := &models.Problem{
		CitizenID:   uuid.New(),
		Description: "Streetlight out near the market",
		Location:    "MG Road, Ward 12",
		Category:    "Electricity",
	}

	mock.ExpectExec("INSERT INTO problems").
		WillReturnResult(sqlmock.NewResult(0, 1))

	// Execute
	err := repo.CreateProblem(context.Background(), problem)

	// Assert
	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, problem.ID)
	assert.Equal(t, models.StatusPending, problem.Status)
	assert.False(t, problem.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateProblem_DBError(t *testing.T) {
	repo, mock, cleanup := setupCitizenRepoTest(t)
	defer cleanup()

	problem := &models.Problem{
		CitizenID:   uuid.New(),
		Description: "Streetlight out",
		Location:    "MG Road",
		Category:    "Electricity",
	}

	mock.ExpectExec("INSERT INTO problems").
		WillReturnError(errors.New("foreign key violation"))

	err := repo.CreateProblem(context.Background(), problem)

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListProblemsByCitizen(t *testing.T) {
	// Setup
	repo, mock, cleanup := setupCitizenRepoTest(t)
	defer cleanup()

	citizenID := uuid.New()
	filePath := "uploads/photo.jpg"
	columns := []string{"id", "citizen_id", "description", "file_path", "location",
		"latitude", "longitude", "geohash", "category", "status", "created_at"}
	rows := sqlmock.NewRows(columns).
		AddRow(uuid.New(), citizenID, "Pothole", nil, "Residency Road",
			nil, nil, nil, "Roads", "Pending", time.Now().Add(-time.Hour)).
		AddRow(uuid.New(), citizenID, "Garbage pileup", filePath, "Sector 4",
			nil, nil, nil, "Sanitation", "Resolved", time.Now())

	mock.ExpectQuery("SELECT (.+) FROM problems").
		WithArgs(citizenID).
		WillReturnRows(rows)

	// Execute
	problems, err := repo.ListProblemsByCitizen(context.Background(), citizenID)

	// Assert
	assert.NoError(t, err)
	assert.Len(t, problems, 2)
	assert.Nil(t, problems[0].FilePath)
	assert.NotNil(t, problems[1].FilePath)
	assert.Equal(t, filePath, *problems[1].FilePath)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListProblemsByCitizen_Empty(t *testing.T) {
	repo, mock, cleanup := setupCitizenRepoTest(t)
	defer cleanup()

	citizenID := uuid.New()
	columns := []string{"id", "citizen_id", "description", "file_path", "location",
		"latitude", "longitude", "geohash", "category", "status", "created_at"}

	mock.ExpectQuery("SELECT (.+) FROM problems").
		WithArgs(citizenID).
		WillReturnRows(sqlmock.NewRows(columns))

	problems, err := repo.ListProblemsByCitizen(context.Background(), citizenID)

	assert.NoError(t, err)
	assert.Empty(t, problems)
	assert.NotNil(t, problems)
	assert.NoError(t, mock.ExpectationsWereMet())
}
