package services

import (
	"errors"
	"testing"

	"github.com/rsfinance/rsfinance-service/internal/config"
	"github.com/rsfinance/rsfinance-service/internal/utils"
	"github.com/rsfinance/rsfinance-service/pkg/response"
	"gorm.io/gorm"
)

func newAuthService(t *testing.T, db *gorm.DB) *AuthService {
	t.Helper()

	utils.SetJWTSecret("test-secret")
	svc := NewAuthService(db, &config.JWTConfig{Secret: "test-secret", ExpireHour: 24})
	if err := svc.SeedAdmin(&config.AdminConfig{
		Username: "admin",
		Password: "rsfinance2024",
		Email:    "admin@rsfinanceservice.com",
		FullName: "System Administrator",
	}); err != nil {
		t.Fatalf("SeedAdmin failed: %v", err)
	}
	return svc
}

func TestLogin_Success(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(t, db)

	result, err := svc.Login(&LoginRequest{Username: "admin", Password: "rsfinance2024"}, "127.0.0.1", "test-agent")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	if result.AccessToken == "" {
		t.Error("AccessToken should not be empty")
	}
	if result.RefreshToken == "" {
		t.Error("RefreshToken should not be empty")
	}
	if result.Admin.Username != "admin" {
		t.Errorf("Username = %q, expected %q", result.Admin.Username, "admin")
	}
	if result.Admin.LastLogin == nil {
		t.Error("LastLogin should be set after login")
	}

	claims, err := utils.ParseToken(result.AccessToken)
	if err != nil {
		t.Fatalf("ParseToken failed: %v", err)
	}
	if claims.Username != "admin" {
		t.Errorf("claims.Username = %q, expected %q", claims.Username, "admin")
	}
}

func TestLogin_WrongCredentials(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(t, db)

	// Wrong password and unknown user must fail the same way so the error
	// does not reveal which field was wrong.
	for _, req := range []*LoginRequest{
		{Username: "admin", Password: "wrong"},
		{Username: "nobody", Password: "rsfinance2024"},
	} {
		_, err := svc.Login(req, "127.0.0.1", "test-agent")
		var appErr *response.AppError
		if !errors.As(err, &appErr) {
			t.Fatalf("error type = %T, expected *response.AppError", err)
		}
		if appErr.Code != response.CodeAuth {
			t.Errorf("Code = %d, expected %d", appErr.Code, response.CodeAuth)
		}
		if appErr.Message != "invalid username or password" {
			t.Errorf("Message = %q, expected the unified message", appErr.Message)
		}
	}
}

func TestRefresh_RotatesToken(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(t, db)

	login, err := svc.Login(&LoginRequest{Username: "admin", Password: "rsfinance2024"}, "127.0.0.1", "test-agent")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	refreshed, err := svc.Refresh(login.RefreshToken, "127.0.0.1", "test-agent")
	if err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}
	if refreshed.RefreshToken == login.RefreshToken {
		t.Error("refresh token should rotate")
	}

	// The old token is revoked and cannot be used again.
	_, err = svc.Refresh(login.RefreshToken, "127.0.0.1", "test-agent")
	var appErr *response.AppError
	if !errors.As(err, &appErr) || appErr.Code != response.CodeAuth {
		t.Errorf("expected an auth error for the rotated-out token, got %v", err)
	}

	// The new token still works.
	if _, err := svc.Refresh(refreshed.RefreshToken, "127.0.0.1", "test-agent"); err != nil {
		t.Errorf("Refresh with new token failed: %v", err)
	}
}

func TestRevokeRefreshToken(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(t, db)

	login, err := svc.Login(&LoginRequest{Username: "admin", Password: "rsfinance2024"}, "127.0.0.1", "test-agent")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	if err := svc.RevokeRefreshToken(login.RefreshToken); err != nil {
		t.Fatalf("RevokeRefreshToken failed: %v", err)
	}

	_, err = svc.Refresh(login.RefreshToken, "127.0.0.1", "test-agent")
	var appErr *response.AppError
	if !errors.As(err, &appErr) || appErr.Code != response.CodeAuth {
		t.Errorf("expected an auth error after revocation, got %v", err)
	}

	// Revoking an unknown token is not an error.
	if err := svc.RevokeRefreshToken("deadbeef"); err != nil {
		t.Errorf("RevokeRefreshToken(unknown) = %v, expected nil", err)
	}
}

func TestChangePassword(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(t, db)

	login, err := svc.Login(&LoginRequest{Username: "admin", Password: "rsfinance2024"}, "127.0.0.1", "test-agent")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	adminID := login.Admin.ID

	err = svc.ChangePassword(adminID, &ChangePasswordRequest{
		OldPassword: "wrong",
		NewPassword: "new-password-1",
	})
	var appErr *response.AppError
	if !errors.As(err, &appErr) || appErr.Code != response.CodeAuth {
		t.Errorf("expected an auth error for wrong old password, got %v", err)
	}

	if err := svc.ChangePassword(adminID, &ChangePasswordRequest{
		OldPassword: "rsfinance2024",
		NewPassword: "new-password-1",
	}); err != nil {
		t.Fatalf("ChangePassword failed: %v", err)
	}

	if _, err := svc.Login(&LoginRequest{Username: "admin", Password: "rsfinance2024"}, "127.0.0.1", "test-agent"); err == nil {
		t.Error("old password should no longer work")
	}
	if _, err := svc.Login(&LoginRequest{Username: "admin", Password: "new-password-1"}, "127.0.0.1", "test-agent"); err != nil {
		t.Errorf("new password should work, got %v", err)
	}
}

func TestUpdateProfile(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(t, db)

	login, err := svc.Login(&LoginRequest{Username: "admin", Password: "rsfinance2024"}, "127.0.0.1", "test-agent")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	admin, err := svc.UpdateProfile(login.Admin.ID, &UpdateProfileRequest{
		Email:    "new@rsfinanceservice.com",
		FullName: "Admin User",
	})
	if err != nil {
		t.Fatalf("UpdateProfile failed: %v", err)
	}
	if admin.Email != "new@rsfinanceservice.com" {
		t.Errorf("Email = %q", admin.Email)
	}
	if admin.FullName != "Admin User" {
		t.Errorf("FullName = %q", admin.FullName)
	}
}

func TestSeedAdmin_Idempotent(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(t, db)

	// A second seed with different credentials must not create another
	// account or overwrite the existing one.
	if err := svc.SeedAdmin(&config.AdminConfig{Username: "other", Password: "whatever"}); err != nil {
		t.Fatalf("second SeedAdmin failed: %v", err)
	}

	if _, err := svc.Login(&LoginRequest{Username: "other", Password: "whatever"}, "", ""); err == nil {
		t.Error("second seed should not have created an account")
	}
	if _, err := svc.Login(&LoginRequest{Username: "admin", Password: "rsfinance2024"}, "", ""); err != nil {
		t.Errorf("original account should be untouched, got %v", err)
	}
}
