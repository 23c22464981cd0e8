package http

import (
	nethttp "net/http"

	"github.com/labstack/echo/v4"

	"github.com/civease/civease/internal/pkg/logger"
	"github.com/civease/civease/internal/pkg/models"
	"github.com/civease/civease/internal/utils"
	"github.com/civease/civease/services/citizen"
)

// AuthHandler handles citizen registration and OTP login requests
type AuthHandler struct {
	citizenUC citizen.CitizenUC
}

// NewAuthHandler creates a new citizen auth handler
func NewAuthHandler(citizenUC citizen.CitizenUC) *AuthHandler {
	return &AuthHandler{
		citizenUC: citizenUC,
	}
}

// Register handles citizen self-registration requests
func (h *AuthHandler) Register(c echo.Context) error {
	var req models.RegisterCitizenRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for citizen registration", logger.Err(err))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.citizenUC.Register(c.Request().Context(), &req); err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusCreated, "Citizen registered successfully", nil)
}

// SendOTP handles requests to send a login code to a registered mobile
func (h *AuthHandler) SendOTP(c echo.Context) error {
	var req models.SendOTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Mobile == "" {
		return utils.BadRequestResponse(c, "Mobile is required")
	}

	if err := h.citizenUC.SendOTP(c.Request().Context(), req.Mobile); err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "OTP sent successfully", nil)
}

// VerifyOTP handles requests to exchange a login code for a session token
func (h *AuthHandler) VerifyOTP(c echo.Context) error {
	var req models.VerifyOTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Mobile == "" || req.OTP == "" {
		return utils.BadRequestResponse(c, "Mobile and OTP are required")
	}

	auth, err := h.citizenUC.VerifyOTP(c.Request().Context(), req.Mobile, req.OTP)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "OTP verified successfully", auth)
}
