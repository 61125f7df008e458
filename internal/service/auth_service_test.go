package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/brewnext/internal/config"
	"github.com/brewnext/internal/models"
	"github.com/brewnext/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupAuthServiceTest(t *testing.T) (*AuthService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:auth_service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Admin{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	cfg := &config.Config{
		JWT: config.JWTConfig{SecretKey: "test-admin-secret", ExpireHours: 1},
	}
	return NewAuthService(cfg, repository.NewAdminRepository(db)), db
}

func createTestAdmin(t *testing.T, svc *AuthService, db *gorm.DB, username, password string) *models.Admin {
	t.Helper()
	hash, err := svc.HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	admin := &models.Admin{Username: username, PasswordHash: hash}
	if err := db.Create(admin).Error; err != nil {
		t.Fatalf("create admin failed: %v", err)
	}
	return admin
}

func TestAdminLogin(t *testing.T) {
	svc, db := setupAuthServiceTest(t)
	createTestAdmin(t, svc, db, "admin", "admin123456")

	admin, token, _, err := svc.Login("admin", "admin123456")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if token == "" || admin.LastLoginAt == nil {
		t.Fatalf("unexpected login result: token=%q lastLoginAt=%v", token, admin.LastLoginAt)
	}

	claims, err := svc.ParseJWT(token)
	if err != nil {
		t.Fatalf("ParseJWT error: %v", err)
	}
	if claims.AdminID != admin.ID || claims.Username != "admin" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestAdminLoginInvalidCredentials(t *testing.T) {
	svc, db := setupAuthServiceTest(t)
	createTestAdmin(t, svc, db, "admin", "admin123456")

	if _, _, _, err := svc.Login("admin", "wrongpass"); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got: %v", err)
	}
	if _, _, _, err := svc.Login("nobody", "admin123456"); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got: %v", err)
	}
}

func TestAdminParseJWTRejectsOtherSecret(t *testing.T) {
	svc, db := setupAuthServiceTest(t)
	admin := createTestAdmin(t, svc, db, "admin", "admin123456")

	other := NewAuthService(&config.Config{
		JWT: config.JWTConfig{SecretKey: "another-secret", ExpireHours: 1},
	}, nil)
	forged, _, err := other.GenerateJWT(admin)
	if err != nil {
		t.Fatalf("GenerateJWT error: %v", err)
	}
	if _, err := svc.ParseJWT(forged); err == nil {
		t.Fatalf("expected error for token signed with another secret")
	}
}
