package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civease/civease/internal/pkg/models"
)

func setupCitizenRepoTest(t *testing.T) (*CitizenRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")

	repo := NewCitizenRepo(&models.Config{}, sqlxDB)

	cleanup := func() {
		sqlxDB.Close()
	}

	return repo, mock, cleanup
}

func TestCreateCitizen(t *testing.T) {
	// Setup
	repo, mock, cleanup := setupCitizenRepoTest(t)
	defer cleanup()

	citizen := &models.Citizen{
		Name:    "Asha Devi",
		DOB:     time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC),
		Aadhaar: "123456789012",
		Mobile:  "9876543210",
	}

	mock.ExpectExec("INSERT INTO citizens").
		WillReturnResult(sqlmock.NewResult(0, 1))

	// Execute
	err := repo.CreateCitizen(context.Background(), citizen)

	// Assert
	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, citizen.ID)
	assert.False(t, citizen.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateCitizen_DBError(t *testing.T) {
	repo, mock, cleanup := setupCitizenRepoTest(t)
	defer cleanup()

	citizen := &models.Citizen{
		Name:    "Asha Devi",
		DOB:     time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC),
		Aadhaar: "123456789012",
		Mobile:  "9876543210",
	}

	mock.ExpectExec("INSERT INTO citizens").
		WillReturnError(errors.New("duplicate key value violates unique constraint"))

	err := repo.CreateCitizen(context.Background(), citizen)

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetCitizenByMobile(t *testing.T) {
	// Setup
	repo, mock, cleanup := setupCitizenRepoTest(t)
	defer cleanup()

	citizenID := uuid.New()
	rows := sqlmock.NewRows([]string{"id", "name", "dob", "aadhaar", "mobile", "created_at"}).
		AddRow(citizenID, "Asha Devi", time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC),
			"123456789012", "9876543210", time.Now())

	mock.ExpectQuery("SELECT (.+) FROM citizens").
		WithArgs("9876543210").
		WillReturnRows(rows)

	// Execute
	citizen, err := repo.GetCitizenByMobile(context.Background(), "9876543210")

	// Assert
	assert.NoError(t, err)
	assert.NotNil(t, citizen)
	assert.Equal(t, citizenID, citizen.ID)
	assert.Equal(t, "Asha Devi", citizen.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetCitizenByMobile_NotFound(t *testing.T) {
	// Absent rows come back as (nil, nil), not an error
	repo, mock, cleanup := setupCitizenRepoTest(t)
	defer cleanup()

	mock.ExpectQuery("SELECT (.+) FROM citizens").
		WithArgs("9876543210").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "dob", "aadhaar", "mobile", "created_at"}))

	citizen, err := repo.GetCitizenByMobile(context.Background(), "9876543210")

	assert.NoError(t, err)
	assert.Nil(t, citizen)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetCitizenByAadhaar(t *testing.T) {
	repo, mock, cleanup := setupCitizenRepoTest(t)
	defer cleanup()

	citizenID := uuid.New()
	rows := sqlmock.NewRows([]string{"id", "name", "dob", "aadhaar", "mobile", "created_at"}).
		AddRow(citizenID, "Asha Devi", time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC),
			"123456789012", "9876543210", time.Now())

	mock.ExpectQuery("SELECT (.+) FROM citizens").
		WithArgs("123456789012").
		WillReturnRows(rows)

	citizen, err := repo.GetCitizenByAadhaar(context.Background(), "123456789012")

	assert.NoError(t, err)
	assert.NotNil(t, citizen)
	assert.Equal(t, "123456789012", citizen.Aadhaar)
	assert.NoError(t, mock.ExpectationsWereMet())
}
