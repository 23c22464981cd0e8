package handler

import (
	"github.com/labstack/echo/v4"

	jwtpkg "github.com/civease/civease/internal/pkg/jwt"
	"github.com/civease/civease/internal/pkg/middleware"
	"github.com/civease/civease/internal/pkg/models"
	"github.com/civease/civease/services/authority/handler/http"
)

// Handler coordinates the authority-facing HTTP handlers
type Handler struct {
	authHandler    *http.AuthHandler
	problemHandler *http.ProblemHandler
	cfg            *models.Config
}

// NewHandler creates and initializes the authority handler group
func NewHandler(
	authHandler *http.AuthHandler,
	problemHandler *http.ProblemHandler,
	cfg *models.Config,
) *Handler {
	return &Handler{
		authHandler:    authHandler,
		problemHandler: problemHandler,
		cfg:            cfg,
	}
}

// RegisterRoutes registers the /api/authority route group
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	group := e.Group("/api/authority")

	// Public routes (no authentication required)
	group.POST("/register", h.authHandler.Register)
	group.POST("/login", h.authHandler.Login)

	// Protected routes require an authority token
	protected := group.Group("", middleware.RequireIdentity(jwtpkg.IdentityAuthority, h.cfg.JWT))
	protected.GET("/problems", h.problemHandler.ListProblems)
	protected.PUT("/update-status", h.problemHandler.UpdateStatus)
	protected.GET("/analytics", h.problemHandler.Analytics)
}
