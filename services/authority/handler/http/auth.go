package http

import (
	nethttp "net/http"

	"github.com/labstack/echo/v4"

	"github.com/civease/civease/internal/pkg/logger"
	"github.com/civease/civease/internal/pkg/models"
	"github.com/civease/civease/internal/utils"
	"github.com/civease/civease/services/authority"
)

// AuthHandler handles authority registration and login requests
type AuthHandler struct {
	authorityUC authority.AuthorityUC
}

// NewAuthHandler creates a new authority auth handler
func NewAuthHandler(authorityUC authority.AuthorityUC) *AuthHandler {
	return &AuthHandler{
		authorityUC: authorityUC,
	}
}

// Register handles authority registration requests
func (h *AuthHandler) Register(c echo.Context) error {
	var req models.RegisterAuthorityRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for authority registration", logger.Err(err))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.authorityUC.Register(c.Request().Context(), &req); err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusCreated, "Authority registered successfully", nil)
}

// Login handles authority credential login requests
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	auth, err := h.authorityUC.Login(c.Request().Context(), req.AuthorityID, req.Password)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Login successful", auth)
}
