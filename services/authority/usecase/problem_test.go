package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/civease/civease/internal/pkg/apperrors"
	"github.com/civease/civease/internal/pkg/models"
	"github.com/civease/civease/services/authority/mocks"
)

func TestListProblems_NoFilter(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAuthorityRepo(ctrl)
	uc := NewAuthorityUC(mockRepo, testConfig())

	expected := []models.ProblemWithReporter{
		{
			Problem:  models.Problem{ID: uuid.New(), Category: "Roads", Status: models.StatusPending},
			Reporter: models.Reporter{Name: "Asha Devi", Mobile: "9876543210"},
		},
	}
	mockRepo.EXPECT().ListProblems(gomock.Any(), models.ProblemFilter{}).Return(expected, nil)

	// Act
	problems, err := uc.ListProblems(context.Background(), models.ProblemFilter{})

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, expected, problems)
}

func TestListProblems_WithFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAuthorityRepo(ctrl)
	uc := NewAuthorityUC(mockRepo, testConfig())

	filter := models.ProblemFilter{Status: "Pending", Category: "Roads"}
	mockRepo.EXPECT().ListProblems(gomock.Any(), filter).Return([]models.ProblemWithReporter{}, nil)

	problems, err := uc.ListProblems(context.Background(), filter)

	assert.NoError(t, err)
	assert.Empty(t, problems)
}

func TestUpdateStatus_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAuthorityRepo(ctrl)
	uc := NewAuthorityUC(mockRepo, testConfig())

	problemID := uuid.New()
	mockRepo.EXPECT().UpdateProblemStatus(gomock.Any(), problemID, "Resolved").Return(true, nil)

	err := uc.UpdateStatus(context.Background(), problemID.String(), "Resolved")

	assert.NoError(t, err)
}

func TestUpdateStatus_ArbitraryStatusAccepted(t *testing.T) {
	// Status is an open string set, not an enum
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAuthorityRepo(ctrl)
	uc := NewAuthorityUC(mockRepo, testConfig())

	problemID := uuid.New()
	mockRepo.EXPECT().UpdateProblemStatus(gomock.Any(), problemID, "In Progress").Return(true, nil)

	err := uc.UpdateStatus(context.Background(), problemID.String(), "In Progress")

	assert.NoError(t, err)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAuthorityRepo(ctrl)
	uc := NewAuthorityUC(mockRepo, testConfig())

	problemID := uuid.New()
	mockRepo.EXPECT().UpdateProblemStatus(gomock.Any(), problemID, "Resolved").Return(false, nil)

	err := uc.UpdateStatus(context.Background(), problemID.String(), "Resolved")

	assert.Error(t, err)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
	assert.Equal(t, "Problem not found", apperrors.MessageOf(err))
}

func TestUpdateStatus_MissingFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAuthorityRepo(ctrl)
	uc := NewAuthorityUC(mockRepo, testConfig())

	err := uc.UpdateStatus(context.Background(), "", "Resolved")

	assert.Error(t, err)
	assert.Equal(t, "Problem ID and status are required", apperrors.MessageOf(err))
}

func TestUpdateStatus_MalformedID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAuthorityRepo(ctrl)
	uc := NewAuthorityUC(mockRepo, testConfig())

	err := uc.UpdateStatus(context.Background(), "not-a-uuid", "Resolved")

	assert.Error(t, err)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
	assert.Equal(t, "Invalid problem ID", apperrors.MessageOf(err))
}

func TestAnalytics_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAuthorityRepo(ctrl)
	uc := NewAuthorityUC(mockRepo, testConfig())

	expected := &models.Analytics{
		TotalReports:    10,
		ResolvedReports: 4,
		PendingReports:  6,
		CategoryWiseCount: map[string]int64{
			"Roads": 7,
			"Water": 3,
		},
	}
	mockRepo.EXPECT().GetAnalytics(gomock.Any()).Return(expected, nil)

	analytics, err := uc.Analytics(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, expected, analytics)
}

func TestAnalytics_RepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAuthorityRepo(ctrl)
	uc := NewAuthorityUC(mockRepo, testConfig())

	mockRepo.EXPECT().GetAnalytics(gomock.Any()).Return(nil, errors.New("connection reset"))

	analytics, err := uc.Analytics(context.Background())

	assert.Error(t, err)
	assert.Nil(t, analytics)
	assert.Equal(t, apperrors.KindInternal, apperrors.KindOf(err))
}
