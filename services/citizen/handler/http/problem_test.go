package http

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civease/civease/internal/pkg/middleware"
	"github.com/civease/civease/internal/pkg/models"
	"github.com/civease/civease/services/citizen/mocks"
)

// buildMultipartRequest assembles a multipart form with the given fields and
// an optional file part named "file"
func buildMultipartRequest(t *testing.T, fields map[string]string, fileName, fileContent string) *http.Request {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	if fileName != "" {
		part, err := writer.CreateFormFile("file", fileName)
		require.NoError(t, err)
		_, err = io.Copy(part, strings.NewReader(fileContent))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/citizen/report-problem", body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	return req
}

func TestReportProblem_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockCitizenUC(ctrl)
	handler := NewProblemHandler(mockUC)

	citizenID := uuid.New()
	e := echo.New()
	req := buildMultipartRequest(t, map[string]string{
		"description": "Streetlight out near the market",
		"location":    "MG Road, Ward 12",
		"category":    "Electricity",
	}, "", "")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextSubjectID, citizenID)

	created := &models.Problem{
		ID:          uuid.New(),
		CitizenID:   citizenID,
		Description: "Streetlight out near the market",
		Location:    "MG Road, Ward 12",
		Category:    "Electricity",
		Status:      models.StatusPending,
		CreatedAt:   time.Now(),
	}
	mockUC.EXPECT().
		ReportProblem(gomock.Any(), citizenID, gomock.Any()).
		DoAndReturn(func(_ interface{}, _ uuid.UUID, input *models.ReportProblemInput) (*models.Problem, error) {
			assert.Equal(t, "Streetlight out near the market", input.Description)
			assert.Equal(t, "MG Road, Ward 12", input.Location)
			assert.Equal(t, "Electricity", input.Category)
			assert.Nil(t, input.File)
			return created, nil
		})

	// Act
	err := handler.ReportProblem(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var response map[string]interface{}
	err = json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, true, response["success"])
	assert.Equal(t, "Problem reported successfully", response["message"])
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "Pending", data["status"])
}

func TestReportProblem_WithFile(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockCitizenUC(ctrl)
	handler := NewProblemHandler(mockUC)

	citizenID := uuid.New()
	e := echo.New()
	req := buildMultipartRequest(t, map[string]string{
		"description": "Garbage pileup",
		"location":    "Sector 4",
		"category":    "Sanitation",
	}, "photo.jpg", "jpeg-bytes")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextSubjectID, citizenID)

	filePath := "uploads/photo.jpg"
	created := &models.Problem{
		ID:        uuid.New(),
		CitizenID: citizenID,
		FilePath:  &filePath,
		Status:    models.StatusPending,
	}
	mockUC.EXPECT().
		ReportProblem(gomock.Any(), citizenID, gomock.Any()).
		DoAndReturn(func(_ interface{}, _ uuid.UUID, input *models.ReportProblemInput) (*models.Problem, error) {
			assert.Equal(t, "photo.jpg", input.FileName)
			assert.NotNil(t, input.File)
			content, err := io.ReadAll(input.File)
			assert.NoError(t, err)
			assert.Equal(t, "jpeg-bytes", string(content))
			return created, nil
		})

	// Act
	err := handler.ReportProblem(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestReportProblem_NoIdentity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockCitizenUC(ctrl)
	handler := NewProblemHandler(mockUC)

	e := echo.New()
	req := buildMultipartRequest(t, map[string]string{"description": "Pothole"}, "", "")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	// no subject id set on the context

	err := handler.ReportProblem(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestReportProblem_InvalidCoordinates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockCitizenUC(ctrl)
	handler := NewProblemHandler(mockUC)

	citizenID := uuid.New()
	e := echo.New()
	req := buildMultipartRequest(t, map[string]string{
		"description": "Pothole",
		"location":    "Residency Road",
		"category":    "Roads",
		"latitude":    "not-a-number",
		"longitude":   "77.59",
	}, "", "")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextSubjectID, citizenID)

	err := handler.ReportProblem(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var response map[string]interface{}
	err = json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "Invalid coordinates", response["error"])
}

func TestMyReports_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockCitizenUC(ctrl)
	handler := NewProblemHandler(mockUC)

	citizenID := uuid.New()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/citizen/my-reports", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextSubjectID, citizenID)

	reports := []models.Problem{
		{ID: uuid.New(), CitizenID: citizenID, Category: "Roads", Status: models.StatusPending},
		{ID: uuid.New(), CitizenID: citizenID, Category: "Water", Status: models.StatusResolved},
	}
	mockUC.EXPECT().MyReports(gomock.Any(), citizenID).Return(reports, nil)

	// Act
	err := handler.MyReports(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	err = json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, true, response["success"])
	data := response["data"].([]interface{})
	assert.Len(t, data, 2)
}

func TestMyReports_NoIdentity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockCitizenUC(ctrl)
	handler := NewProblemHandler(mockUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/citizen/my-reports", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.MyReports(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
