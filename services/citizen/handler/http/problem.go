package http

import (
	nethttp "net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/civease/civease/internal/pkg/logger"
	"github.com/civease/civease/internal/pkg/middleware"
	"github.com/civease/civease/internal/pkg/models"
	"github.com/civease/civease/internal/utils"
	"github.com/civease/civease/services/citizen"
)

// ProblemHandler handles citizen problem reporting requests
type ProblemHandler struct {
	citizenUC citizen.CitizenUC
}

// NewProblemHandler creates a new citizen problem handler
func NewProblemHandler(citizenUC citizen.CitizenUC) *ProblemHandler {
	return &ProblemHandler{
		citizenUC: citizenUC,
	}
}

// ReportProblem handles multipart problem submissions with an optional
// file attachment
func (h *ProblemHandler) ReportProblem(c echo.Context) error {
	citizenID, ok := c.Get(middleware.ContextSubjectID).(uuid.UUID)
	if !ok {
		return utils.UnauthorizedResponse(c, "Invalid or expired token")
	}

	input := &models.ReportProblemInput{
		Description: c.FormValue("description"),
		Location:    c.FormValue("location"),
		Category:    c.FormValue("category"),
	}

	if latStr, lonStr := c.FormValue("latitude"), c.FormValue("longitude"); latStr != "" && lonStr != "" {
		lat, latErr := strconv.ParseFloat(latStr, 64)
		lon, lonErr := strconv.ParseFloat(lonStr, 64)
		if latErr != nil || lonErr != nil {
			return utils.BadRequestResponse(c, "Invalid coordinates")
		}
		input.Latitude = &lat
		input.Longitude = &lon
	}

	if fileHeader, err := c.FormFile("file"); err == nil && fileHeader != nil {
		src, err := fileHeader.Open()
		if err != nil {
			logger.Warn("Failed to open uploaded file", logger.Err(err))
			return utils.BadRequestResponse(c, "Invalid file upload")
		}
		defer src.Close()
		input.FileName = fileHeader.Filename
		input.File = src
	}

	problem, err := h.citizenUC.ReportProblem(c.Request().Context(), citizenID, input)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusCreated, "Problem reported successfully", problem)
}

// MyReports lists the authenticated citizen's problem reports
func (h *ProblemHandler) MyReports(c echo.Context) error {
	citizenID, ok := c.Get(middleware.ContextSubjectID).(uuid.UUID)
	if !ok {
		return utils.UnauthorizedResponse(c, "Invalid or expired token")
	}

	reports, err := h.citizenUC.MyReports(c.Request().Context(), citizenID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Reports retrieved successfully", reports)
}
