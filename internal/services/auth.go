package services

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strconv"
	"time"

	"github.com/rsfinance/rsfinance-service/internal/config"
	"github.com/rsfinance/rsfinance-service/internal/models"
	"github.com/rsfinance/rsfinance-service/internal/utils"
	"github.com/rsfinance/rsfinance-service/pkg/response"
	"gorm.io/gorm"
)

type AuthService struct {
	db        *gorm.DB
	jwtConfig *config.JWTConfig
	configSvc *SystemConfigService
}

func NewAuthService(db *gorm.DB, jwtCfg *config.JWTConfig) *AuthService {
	return &AuthService{
		db:        db,
		jwtConfig: jwtCfg,
		configSvc: NewSystemConfigService(db),
	}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResult struct {
	AccessToken     string        `json:"token"`
	AccessExpireAt  time.Time     `json:"expire_at"`
	RefreshToken    string        `json:"refresh_token"`
	RefreshExpireAt time.Time     `json:"refresh_expire_at"`
	Admin           *models.Admin `json:"admin"`
}

type RefreshResult struct {
	AccessToken     string    `json:"token"`
	AccessExpireAt  time.Time `json:"expire_at"`
	RefreshToken    string    `json:"refresh_token"`
	RefreshExpireAt time.Time `json:"refresh_expire_at"`
}

// Login authenticates a staff account and issues an access token plus a
// rotating refresh token. The error never reveals which of the two fields
// was wrong.
func (s *AuthService) Login(req *LoginRequest, clientIP, userAgent string) (*LoginResult, error) {
	var admin models.Admin
	if err := s.db.Where("username = ?", req.Username).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewUnauthorized("invalid username or password")
		}
		return nil, err
	}

	if !admin.IsActive {
		return nil, response.NewUnauthorized("account is disabled")
	}

	if !utils.CheckPassword(req.Password, admin.Password) {
		return nil, response.NewUnauthorized("invalid username or password")
	}

	accessHours := s.getAccessTokenExpireHours()
	refreshHours := s.getRefreshTokenExpireHours()

	token, err := utils.GenerateToken(admin.ID, admin.Username, accessHours)
	if err != nil {
		return nil, err
	}

	refreshToken, refreshHash, err := generateRefreshToken()
	if err != nil {
		return nil, err
	}

	refreshExpireAt := time.Now().Add(time.Duration(refreshHours) * time.Hour)
	refreshRecord := models.RefreshToken{
		AdminID:     admin.ID,
		TokenHash:   refreshHash,
		ExpiresAt:   refreshExpireAt,
		CreatedByIP: clientIP,
		UserAgent:   userAgent,
	}
	if err := s.db.Create(&refreshRecord).Error; err != nil {
		return nil, err
	}

	// Update last login time
	now := time.Now()
	admin.LastLogin = &now
	s.db.Save(&admin)

	return &LoginResult{
		AccessToken:     token,
		AccessExpireAt:  time.Now().Add(time.Duration(accessHours) * time.Hour),
		RefreshToken:    refreshToken,
		RefreshExpireAt: refreshExpireAt,
		Admin:           &admin,
	}, nil
}

// Refresh rotates a refresh token: the old one is revoked and replaced in
// the same transaction a new access token is issued.
func (s *AuthService) Refresh(refreshToken, clientIP, userAgent string) (*RefreshResult, error) {
	if refreshToken == "" {
		return nil, response.NewUnauthorized("refresh token required")
	}

	hash := hashRefreshToken(refreshToken)

	var stored models.RefreshToken
	if err := s.db.Where("token_hash = ?", hash).First(&stored).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewUnauthorized("invalid refresh token")
		}
		return nil, err
	}

	if stored.RevokedAt != nil {
		return nil, response.NewUnauthorized("refresh token revoked")
	}
	if time.Now().After(stored.ExpiresAt) {
		return nil, response.NewUnauthorized("refresh token expired")
	}

	var admin models.Admin
	if err := s.db.First(&admin, stored.AdminID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewUnauthorized("account not found")
		}
		return nil, err
	}
	if !admin.IsActive {
		return nil, response.NewUnauthorized("account is disabled")
	}

	accessHours := s.getAccessTokenExpireHours()
	refreshHours := s.getRefreshTokenExpireHours()

	newAccessToken, err := utils.GenerateToken(admin.ID, admin.Username, accessHours)
	if err != nil {
		return nil, err
	}

	newRefreshToken, newRefreshHash, err := generateRefreshToken()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	newRefresh := models.RefreshToken{
		AdminID:     admin.ID,
		TokenHash:   newRefreshHash,
		ExpiresAt:   now.Add(time.Duration(refreshHours) * time.Hour),
		CreatedByIP: clientIP,
		UserAgent:   userAgent,
	}

	if err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&newRefresh).Error; err != nil {
			return err
		}
		return tx.Model(&stored).Updates(map[string]interface{}{
			"revoked_at":           now,
			"replaced_by_token_id": newRefresh.ID,
		}).Error
	}); err != nil {
		return nil, err
	}

	return &RefreshResult{
		AccessToken:     newAccessToken,
		AccessExpireAt:  time.Now().Add(time.Duration(accessHours) * time.Hour),
		RefreshToken:    newRefreshToken,
		RefreshExpireAt: newRefresh.ExpiresAt,
	}, nil
}

// RevokeRefreshToken invalidates a refresh token at logout. Unknown tokens
// are ignored.
func (s *AuthService) RevokeRefreshToken(refreshToken string) error {
	if refreshToken == "" {
		return nil
	}

	hash := hashRefreshToken(refreshToken)
	now := time.Now()
	return s.db.Model(&models.RefreshToken{}).
		Where("token_hash = ? AND revoked_at IS NULL", hash).
		Update("revoked_at", now).Error
}

func (s *AuthService) getAccessTokenExpireHours() int {
	defaultHours := s.jwtConfig.ExpireHour
	value := s.configSvc.GetWithDefault("auth_access_token_expire_hours", strconv.Itoa(defaultHours))
	hours, err := strconv.Atoi(value)
	if err != nil || hours <= 0 {
		return defaultHours
	}
	return hours
}

func (s *AuthService) getRefreshTokenExpireHours() int {
	value := s.configSvc.GetWithDefault("auth_refresh_token_expire_hours", "720")
	hours, err := strconv.Atoi(value)
	if err != nil || hours <= 0 {
		return 720
	}
	return hours
}

func generateRefreshToken() (token string, tokenHash string, err error) {
	randomBytes := make([]byte, 32)
	if _, err = rand.Read(randomBytes); err != nil {
		return "", "", err
	}
	token = hex.EncodeToString(randomBytes)
	tokenHash = hashRefreshToken(token)
	return token, tokenHash, nil
}

func hashRefreshToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// GetAdminByID retrieves a staff account by ID.
func (s *AuthService) GetAdminByID(id uint) (*models.Admin, error) {
	var admin models.Admin
	if err := s.db.First(&admin, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("account not found")
		}
		return nil, err
	}
	return &admin, nil
}

type UpdateProfileRequest struct {
	Email    string `json:"email"`
	FullName string `json:"full_name"`
}

// UpdateProfile edits the signed-in admin's contact details.
func (s *AuthService) UpdateProfile(adminID uint, req *UpdateProfileRequest) (*models.Admin, error) {
	admin, err := s.GetAdminByID(adminID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if req.Email != "" {
		updates["email"] = req.Email
	}
	if req.FullName != "" {
		updates["full_name"] = req.FullName
	}
	if len(updates) > 0 {
		if err := s.db.Model(admin).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	s.db.First(admin, adminID)
	return admin, nil
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8"`
}

func (s *AuthService) ChangePassword(adminID uint, req *ChangePasswordRequest) error {
	admin, err := s.GetAdminByID(adminID)
	if err != nil {
		return err
	}

	if !utils.CheckPassword(req.OldPassword, admin.Password) {
		return response.NewUnauthorized("incorrect old password")
	}

	hashedPassword, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}

	admin.Password = hashedPassword
	return s.db.Save(admin).Error
}

// SeedAdmin creates the staff account from config if no account exists yet.
// The plaintext seed password is hashed before it touches the database.
func (s *AuthService) SeedAdmin(cfg *config.AdminConfig) error {
	var count int64
	s.db.Model(&models.Admin{}).Count(&count)
	if count > 0 {
		return nil
	}

	hashedPassword, err := utils.HashPassword(cfg.Password)
	if err != nil {
		return err
	}

	admin := models.Admin{
		Username: cfg.Username,
		Password: hashedPassword,
		Email:    cfg.Email,
		FullName: cfg.FullName,
		IsActive: true,
	}

	return s.db.Create(&admin).Error
}
