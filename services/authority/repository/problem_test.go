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

var problemColumns = []string{"id", "citizen_id", "description", "file_path", "location",
	"latitude", "longitude", "geohash", "category", "status", "created_at",
	"reporter_name", "reporter_mobile"}

func TestListProblems_NoFilter(t *testing.T) {
	// Setup
	repo, mock, cleanup := setupAuthorityRepoTest(t)
	defer cleanup()

	rows := sqlmock.NewRows(problemColumns).
		AddRow(uuid.New(), uuid.New(), "Pothole", nil, "Residency Road",
			nil, nil, nil, "Roads", "Pending", time.Now().Add(-time.Hour),
			"Asha Devi", "9876543210").
		AddRow(uuid.New(), uuid.New(), "Garbage pileup", "uploads/photo.jpg", "Sector 4",
			nil, nil, nil, "Sanitation", "Resolved", time.Now(),
			"Vikram Rao", "9123456780")

	mock.ExpectQuery("SELECT (.+) FROM problems p").
		WillReturnRows(rows)

	// Execute
	problems, err := repo.ListProblems(context.Background(), models.ProblemFilter{})

	// Assert
	assert.NoError(t, err)
	assert.Len(t, problems, 2)
	assert.Equal(t, "Asha Devi", problems[0].Reporter.Name)
	assert.Equal(t, "9876543210", problems[0].Reporter.Mobile)
	assert.NotNil(t, problems[1].FilePath)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListProblems_StatusFilter(t *testing.T) {
	repo, mock, cleanup := setupAuthorityRepoTest(t)
	defer cleanup()

	rows := sqlmock.NewRows(problemColumns).
		AddRow(uuid.New(), uuid.New(), "Pothole", nil, "Residency Road",
			nil, nil, nil, "Roads", "Pending", time.Now(),
			"Asha Devi", "9876543210")

	mock.ExpectQuery("SELECT (.+) FROM problems p").
		WithArgs("Pending").
		WillReturnRows(rows)

	problems, err := repo.ListProblems(context.Background(), models.ProblemFilter{Status: "Pending"})

	assert.NoError(t, err)
	assert.Len(t, problems, 1)
	assert.Equal(t, "Pending", problems[0].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListProblems_StatusAndCategoryFilter(t *testing.T) {
	// Both filters combine with AND
	repo, mock, cleanup := setupAuthorityRepoTest(t)
	defer cleanup()

	mock.ExpectQuery("SELECT (.+) FROM problems p").
		WithArgs("Pending", "Roads").
		WillReturnRows(sqlmock.NewRows(problemColumns))

	problems, err := repo.ListProblems(context.Background(),
		models.ProblemFilter{Status: "Pending", Category: "Roads"})

	assert.NoError(t, err)
	assert.Empty(t, problems)
	assert.NotNil(t, problems)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateProblemStatus_Found(t *testing.T) {
	repo, mock, cleanup := setupAuthorityRepoTest(t)
	defer cleanup()

	problemID := uuid.New()
	mock.ExpectExec("UPDATE problems SET status").
		WithArgs("Resolved", problemID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	found, err := repo.UpdateProblemStatus(context.Background(), problemID, "Resolved")

	assert.NoError(t, err)
	assert.True(t, found)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateProblemStatus_NotFound(t *testing.T) {
	// Zero affected rows means the id did not exist
	repo, mock, cleanup := setupAuthorityRepoTest(t)
	defer cleanup()

	problemID := uuid.New()
	mock.ExpectExec("UPDATE problems SET status").
		WithArgs("Resolved", problemID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	found, err := repo.UpdateProblemStatus(context.Background(), problemID, "Resolved")

	assert.NoError(t, err)
	assert.False(t, found)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateProblemStatus_DBError(t *testing.T) {
	repo, mock, cleanup := setupAuthorityRepoTest(t)
	defer cleanup()

	problemID := uuid.New()
	mock.ExpectExec("UPDATE problems SET status").
		WithArgs("Resolved", problemID).
		WillReturnError(errors.New("connection reset"))

	found, err := repo.UpdateProblemStatus(context.Background(), problemID, "Resolved")

	assert.Error(t, err)
	assert.False(t, found)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAnalytics(t *testing.T) {
	// Setup
	repo, mock, cleanup := setupAuthorityRepoTest(t)
	defer cleanup()

	countRows := sqlmock.NewRows([]string{"total", "resolved", "pending"}).
		AddRow(10, 4, 6)
	mock.ExpectQuery("SELECT (.+) FROM problems").
		WithArgs(models.StatusResolved, models.StatusPending).
		WillReturnRows(countRows)

	categoryRows := sqlmock.NewRows([]string{"category", "count"}).
		AddRow("Roads", 7).
		AddRow("Water", 3)
	mock.ExpectQuery("SELECT category, COUNT").
		WillReturnRows(categoryRows)

	// Execute
	analytics, err := repo.GetAnalytics(context.Background())

	// Assert
	assert.NoError(t, err)
	assert.NotNil(t, analytics)
	assert.Equal(t, int64(10), analytics.TotalReports)
	assert.Equal(t, int64(4), analytics.ResolvedReports)
	assert.Equal(t, int64(6), analytics.PendingReports)
	assert.Equal(t, int64(7), analytics.CategoryWiseCount["Roads"])
	assert.Equal(t, int64(3), analytics.CategoryWiseCount["Water"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAnalytics_EmptyTable(t *testing.T) {
	repo, mock, cleanup := setupAuthorityRepoTest(t)
	defer cleanup()

	countRows := sqlmock.NewRows([]string{"total", "resolved", "pending"}).
		AddRow(0, 0, 0)
	mock.ExpectQuery("SELECT (.+) FROM problems").
		WithArgs(models.StatusResolved, models.StatusPending).
		WillReturnRows(countRows)
	mock.ExpectQuery("SELECT category, COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"category", "count"}))

	analytics, err := repo.GetAnalytics(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(0), analytics.TotalReports)
	assert.Empty(t, analytics.CategoryWiseCount)
	assert.NotNil(t, analytics.CategoryWiseCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}
