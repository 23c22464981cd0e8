package http

import (
	nethttp "net/http"

	"github.com/labstack/echo/v4"

	"github.com/civease/civease/internal/pkg/models"
	"github.com/civease/civease/internal/utils"
	"github.com/civease/civease/services/authority"
)

// ProblemHandler handles authority report triage requests
type ProblemHandler struct {
	authorityUC authority.AuthorityUC
}

// NewProblemHandler creates a new authority problem handler
func NewProblemHandler(authorityUC authority.AuthorityUC) *ProblemHandler {
	return &ProblemHandler{
		authorityUC: authorityUC,
	}
}

// ListProblems lists all problems, optionally filtered by exact status
// and category query parameters
func (h *ProblemHandler) ListProblems(c echo.Context) error {
	filter := models.ProblemFilter{
		Status:   c.QueryParam("status"),
		Category: c.QueryParam("category"),
	}

	problems, err := h.authorityUC.ListProblems(c.Request().Context(), filter)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Problems retrieved successfully", problems)
}

// UpdateStatus overwrites the status of a problem
func (h *ProblemHandler) UpdateStatus(c echo.Context) error {
	var req models.UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.authorityUC.UpdateStatus(c.Request().Context(), req.ProblemID, req.Status); err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Status updated successfully", nil)
}

// Analytics returns aggregate report counts
func (h *ProblemHandler) Analytics(c echo.Context) error {
	analytics, err := h.authorityUC.Analytics(c.Request().Context())
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Analytics retrieved successfully", analytics)
}
