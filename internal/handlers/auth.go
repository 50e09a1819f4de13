package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/rsfinance/rsfinance-service/internal/config"
	"github.com/rsfinance/rsfinance-service/internal/middleware"
	"github.com/rsfinance/rsfinance-service/internal/services"
	"github.com/rsfinance/rsfinance-service/pkg/response"
	"gorm.io/gorm"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(db *gorm.DB, jwtCfg *config.JWTConfig) *AuthHandler {
	return &AuthHandler{
		authService: services.NewAuthService(db, jwtCfg),
	}
}

// Login authenticates a staff account
// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req services.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.authService.Login(&req, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		services.LogWarning("auth", "login", "failed login for "+req.Username, nil, c.ClientIP(), c.Request.UserAgent(), nil)
		response.Error(c, err)
		return
	}

	services.LogInfo("auth", "login", "login succeeded", &result.Admin.ID, c.ClientIP(), c.Request.UserAgent(), nil)
	response.Success(c, result)
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// Refresh rotates a refresh token and issues a new access token
// POST /api/auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.authService.Refresh(req.RefreshToken, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

type logoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// Logout revokes the presented refresh token
// POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	var req logoutRequest
	// Body is optional; an access token alone is enough to log out.
	_ = c.ShouldBindJSON(&req)

	if err := h.authService.RevokeRefreshToken(req.RefreshToken); err != nil {
		response.Error(c, err)
		return
	}

	adminID := middleware.GetAdminID(c)
	services.LogInfo("auth", "logout", "logout", &adminID, c.ClientIP(), c.Request.UserAgent(), nil)
	response.Success(c, gin.H{"message": "logged out"})
}

// Me returns the signed-in admin's account
// GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	admin, err := h.authService.GetAdminByID(middleware.GetAdminID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, admin)
}

// UpdateProfile edits the signed-in admin's contact details
// PUT /api/profile
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	var req services.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	admin, err := h.authService.UpdateProfile(middleware.GetAdminID(c), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, admin)
}

// ChangePassword replaces the signed-in admin's password
// POST /api/auth/change-password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req services.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.authService.ChangePassword(middleware.GetAdminID(c), &req); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"message": "password updated"})
}
