package handler

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/civease/civease/internal/pkg/database"
	jwtpkg "github.com/civease/civease/internal/pkg/jwt"
	"github.com/civease/civease/internal/pkg/middleware"
	"github.com/civease/civease/internal/pkg/models"
	"github.com/civease/civease/services/citizen/handler/http"
)

// Handler coordinates the citizen-facing HTTP handlers
type Handler struct {
	authHandler    *http.AuthHandler
	problemHandler *http.ProblemHandler
	redisClient    *database.RedisClient
	cfg            *models.Config
}

// NewHandler creates and initializes the citizen handler group
func NewHandler(
	authHandler *http.AuthHandler,
	problemHandler *http.ProblemHandler,
	redisClient *database.RedisClient,
	cfg *models.Config,
) *Handler {
	return &Handler{
		authHandler:    authHandler,
		problemHandler: problemHandler,
		redisClient:    redisClient,
		cfg:            cfg,
	}
}

// RegisterRoutes registers the /api/citizen route group
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	group := e.Group("/api/citizen")

	// Public routes (no authentication required)
	group.POST("/register", h.authHandler.Register)
	group.POST("/send-otp", h.authHandler.SendOTP,
		middleware.IPRateLimiter(
			h.cfg.OTP.SendLimit,
			time.Duration(h.cfg.OTP.SendLimitWindow)*time.Minute,
			h.redisClient.GetClient(),
		))
	group.POST("/verify-otp", h.authHandler.VerifyOTP)

	// Protected routes require a citizen token
	protected := group.Group("", middleware.RequireIdentity(jwtpkg.IdentityCitizen, h.cfg.JWT))
	protected.POST("/report-problem", h.problemHandler.ReportProblem)
	protected.GET("/my-reports", h.problemHandler.MyReports)
}
