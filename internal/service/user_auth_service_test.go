package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/brewnext/internal/config"
	"github.com/brewnext/internal/constants"
	"github.com/brewnext/internal/kvstore"
	"github.com/brewnext/internal/models"
	"github.com/brewnext/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func userAuthTestConfig() *config.Config {
	return &config.Config{
		UserJWT: config.JWTConfig{SecretKey: "test-user-secret", ExpireHours: 1},
		Security: config.SecurityConfig{
			PasswordPolicy: config.PasswordPolicyConfig{
				MinLength:     8,
				RequireLower:  true,
				RequireNumber: true,
			},
		},
	}
}

func setupUserAuthServiceTest(t *testing.T) (*UserAuthService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:user_auth_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	userRepo := repository.NewUserRepository(db)
	return NewUserAuthService(userAuthTestConfig(), userRepo, kvstore.NewMemoryStore()), db
}

func registerTestUser(t *testing.T, svc *UserAuthService) (*models.PublicUserData, string) {
	t.Helper()
	public, token, _, err := svc.Register(context.Background(), RegisterInput{
		Username:  "johndoe",
		Email:     "john@example.com",
		Password:  "password123",
		FirstName: "John",
		LastName:  "Doe",
	})
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	return public, token
}

func TestRegisterCreatesSession(t *testing.T) {
	svc, _ := setupUserAuthServiceTest(t)
	public, token := registerTestUser(t, svc)

	if public.Name != "John Doe" {
		t.Fatalf("unexpected public name: %s", public.Name)
	}
	claims, err := svc.ParseUserJWT(token)
	if err != nil {
		t.Fatalf("ParseUserJWT error: %v", err)
	}
	if claims.Username != "johndoe" || claims.ID == "" {
		t.Fatalf("unexpected claims: %+v", claims)
	}

	snapshot, ok := svc.SessionSnapshot(claims.ID)
	if !ok {
		t.Fatalf("session snapshot missing after register")
	}
	if snapshot.Email != "john@example.com" {
		t.Fatalf("unexpected snapshot: %+v", snapshot)
	}
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	svc, _ := setupUserAuthServiceTest(t)
	registerTestUser(t, svc)

	_, _, _, err := svc.Register(context.Background(), RegisterInput{
		Username:  "otheruser",
		Email:     "John@Example.com", // 邮箱大小写不敏感
		Password:  "password123",
		FirstName: "Other",
		LastName:  "User",
	})
	if err != ErrEmailExists {
		t.Fatalf("expected ErrEmailExists, got: %v", err)
	}

	_, _, _, err = svc.Register(context.Background(), RegisterInput{
		Username:  "johndoe",
		Email:     "other@example.com",
		Password:  "password123",
		FirstName: "Other",
		LastName:  "User",
	})
	if err != ErrUsernameExists {
		t.Fatalf("expected ErrUsernameExists, got: %v", err)
	}
}

func TestRegisterValidatesInput(t *testing.T) {
	svc, _ := setupUserAuthServiceTest(t)

	_, _, _, err := svc.Register(context.Background(), RegisterInput{
		Username: "johndoe", Email: "not-an-email", Password: "password123", FirstName: "J", LastName: "D",
	})
	if err != ErrInvalidEmail {
		t.Fatalf("expected ErrInvalidEmail, got: %v", err)
	}

	_, _, _, err = svc.Register(context.Background(), RegisterInput{
		Username: "johndoe", Email: "john@example.com", Password: "short1", FirstName: "J", LastName: "D",
	})
	if !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("expected ErrWeakPassword, got: %v", err)
	}

	_, _, _, err = svc.Register(context.Background(), RegisterInput{
		Username: "johndoe", Email: "john@example.com", Password: "NOLOWERCASE1", FirstName: "J", LastName: "D",
	})
	if !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("expected ErrWeakPassword, got: %v", err)
	}
}

func TestLoginFlow(t *testing.T) {
	svc, db := setupUserAuthServiceTest(t)
	registerTestUser(t, svc)

	public, token, _, err := svc.Login(context.Background(), "john@example.com", "password123")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if public.Username != "johndoe" || token == "" {
		t.Fatalf("unexpected login result: %+v", public)
	}

	if _, _, _, err := svc.Login(context.Background(), "john@example.com", "wrongpass1"); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got: %v", err)
	}
	if _, _, _, err := svc.Login(context.Background(), "nobody@example.com", "password123"); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got: %v", err)
	}

	if err := db.Model(&models.User{}).Where("username = ?", "johndoe").Update("status", constants.UserStatusDisabled).Error; err != nil {
		t.Fatalf("disable user failed: %v", err)
	}
	if _, _, _, err := svc.Login(context.Background(), "john@example.com", "password123"); err != ErrUserDisabled {
		t.Fatalf("expected ErrUserDisabled, got: %v", err)
	}
}

func TestLogoutInvalidatesSession(t *testing.T) {
	svc, _ := setupUserAuthServiceTest(t)
	_, token := registerTestUser(t, svc)

	claims, err := svc.ParseUserJWT(token)
	if err != nil {
		t.Fatalf("ParseUserJWT error: %v", err)
	}
	if _, ok := svc.SessionSnapshot(claims.ID); !ok {
		t.Fatalf("session snapshot missing before logout")
	}

	if err := svc.Logout(context.Background(), claims.UserID, claims.ID); err != nil {
		t.Fatalf("Logout error: %v", err)
	}
	if _, ok := svc.SessionSnapshot(claims.ID); ok {
		t.Fatalf("session snapshot still present after logout")
	}
}

func TestParseUserJWTRejectsForgedToken(t *testing.T) {
	svc, _ := setupUserAuthServiceTest(t)

	other := NewUserAuthService(&config.Config{
		UserJWT: config.JWTConfig{SecretKey: "another-secret", ExpireHours: 1},
	}, nil, kvstore.NewMemoryStore())
	user := &models.User{ID: 1, Username: "johndoe"}
	forged, _, _, err := other.GenerateUserJWT(user)
	if err != nil {
		t.Fatalf("GenerateUserJWT error: %v", err)
	}

	if _, err := svc.ParseUserJWT(forged); err == nil {
		t.Fatalf("expected error for token signed with another secret")
	}
}
