package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	portssvc "github.com/FarmEase/farmease_backend/internal/core/ports/services"
	"github.com/FarmEase/farmease_backend/internal/dto"
	"github.com/FarmEase/farmease_backend/internal/middleware"
	"github.com/FarmEase/farmease_backend/internal/utils"
	"github.com/FarmEase/farmease_backend/pkg/config"
)

// authHandler handles registration, login and signup verification.
type authHandler struct {
	userService portssvc.UserSvcFacade
	cfg         *config.Config
}

func newAuthHandler(us portssvc.UserSvcFacade, cfg *config.Config) *authHandler {
	return &authHandler{userService: us, cfg: cfg}
}

// registerAuthRoutes registers the public authentication routes with a per-IP
// rate limit.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := newAuthHandler(services.User, cfg)

	rate := limiter.Rate{Period: time.Minute, Limit: 20}
	limiterInstance := limiter.New(memory.NewStore(), rate)

	auth := r.Group("/api/v1/auth", middleware.RateLimit(limiterInstance))
	{
		auth.POST("/register", h.register)
		auth.POST("/login", h.login)
		auth.POST("/verify-otp", h.verifyOTP)
	}
}

// register godoc
// @Summary Register a new account
// @Description Creates an unverified account and emails a verification code
// @Tags auth
// @Accept json
// @Produce json
// @Param user body dto.RegisterRequest true "Account details"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Username taken"
// @Router /auth/register [post]
func (h *authHandler) register(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for register", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	user, err := h.userService.Register(c.Request.Context(), req)
	if err != nil {
		logger.Warn("Registration failed", slog.String("username", req.Username), slog.String("error", err.Error()))
		respondServiceError(c, err, "Failed to register")
		return
	}

	logger.Info("User registered", slog.String("username", user.Username))
	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

// login godoc
// @Summary Log in
// @Description Checks credentials and issues a JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} map[string]string "Invalid credentials"
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	user, err := h.userService.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		logger.Warn("Login failed", slog.String("username", req.Username))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
		return
	}

	token, expiresAt, err := utils.GenerateJWT(user.Username, string(user.Role),
		h.cfg.JWTSecret, h.cfg.JWTExpiryDuration, h.cfg.JWTIssuer)
	if err != nil {
		logger.Error("Failed to sign token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
		return
	}

	logger.Info("User logged in", slog.String("username", user.Username))
	c.JSON(http.StatusOK, dto.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      dto.ToUserResponse(user),
	})
}

// verifyOTP godoc
// @Summary Verify a signup code
// @Description Confirms the emailed one-time code and marks the account verified
// @Tags auth
// @Accept json
// @Produce json
// @Param verification body dto.VerifyOTPRequest true "Verification payload"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} map[string]string "Invalid or expired code"
// @Failure 404 {object} map[string]string "Unknown user"
// @Router /auth/verify-otp [post]
func (h *authHandler) verifyOTP(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.userService.VerifySignupOTP(c.Request.Context(), req.Username, req.OTP); err != nil {
		logger.Warn("OTP verification failed", slog.String("username", req.Username), slog.String("error", err.Error()))
		respondServiceError(c, err, "Failed to verify account")
		return
	}

	c.JSON(http.StatusOK, gin.H{"verified": true})
}
