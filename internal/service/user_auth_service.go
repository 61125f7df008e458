package service

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/brewnext/internal/cache"
	"github.com/brewnext/internal/config"
	"github.com/brewnext/internal/constants"
	"github.com/brewnext/internal/kvstore"
	"github.com/brewnext/internal/logger"
	"github.com/brewnext/internal/models"
	"github.com/brewnext/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// UserAuthService 用户认证服务。登录会话由两部分组成：
// JWT 承载身份，键值存储 s:<jti>/user 下的脱敏快照承载会话有效性，
// 注销即删除快照，旧 token 随之失效。
type UserAuthService struct {
	cfg      *config.Config
	userRepo repository.UserRepository
	store    kvstore.Store
}

// NewUserAuthService 创建用户认证服务
func NewUserAuthService(cfg *config.Config, userRepo repository.UserRepository, store kvstore.Store) *UserAuthService {
	return &UserAuthService{cfg: cfg, userRepo: userRepo, store: store}
}

// UserJWTClaims 用户 JWT 声明
type UserJWTClaims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// GenerateUserJWT 生成用户 JWT Token
func (s *UserAuthService) GenerateUserJWT(user *models.User) (string, string, time.Time, error) {
	expireHours := s.cfg.UserJWT.ExpireHours
	if expireHours <= 0 {
		expireHours = 24
	}
	expiresAt := time.Now().Add(time.Duration(expireHours) * time.Hour)
	sessionID := uuid.NewString()
	claims := UserJWTClaims{
		UserID:   user.ID,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sessionID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.cfg.UserJWT.SecretKey))
	if err != nil {
		return "", "", time.Time{}, err
	}
	return tokenString, sessionID, expiresAt, nil
}

// ParseUserJWT 解析用户 JWT Token
func (s *UserAuthService) ParseUserJWT(tokenString string) (*UserJWTClaims, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	claims := &UserJWTClaims{}
	token, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.UserJWT.SecretKey), nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*UserJWTClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("invalid token")
}

// RegisterInput 注册入参
type RegisterInput struct {
	Username  string `json:"username" binding:"required"`
	Email     string `json:"email" binding:"required"`
	Password  string `json:"password" binding:"required"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
}

// Register 注册新用户。邮箱与用户名重复都是显式错误；
// 注册成功即视为登录，返回会话 token。
func (s *UserAuthService) Register(ctx context.Context, input RegisterInput) (*models.PublicUserData, string, time.Time, error) {
	email, err := normalizeEmail(input.Email)
	if err != nil {
		return nil, "", time.Time{}, ErrInvalidEmail
	}
	username := strings.TrimSpace(input.Username)
	if username == "" {
		return nil, "", time.Time{}, errors.New("username required")
	}
	if err := validatePassword(s.cfg.Security.PasswordPolicy, input.Password); err != nil {
		return nil, "", time.Time{}, err
	}

	if exist, err := s.userRepo.GetByEmail(email); err != nil {
		return nil, "", time.Time{}, err
	} else if exist != nil {
		return nil, "", time.Time{}, ErrEmailExists
	}
	if exist, err := s.userRepo.GetByUsername(username); err != nil {
		return nil, "", time.Time{}, err
	} else if exist != nil {
		return nil, "", time.Time{}, ErrUsernameExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		Addresses:    models.AddressList{},
		Status:       constants.UserStatusActive,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, "", time.Time{}, err
	}
	logger.Infow("user_registered", "user_id", user.ID, "username", user.Username)

	return s.openSession(ctx, user)
}

// Login 邮箱加密码登录
func (s *UserAuthService) Login(ctx context.Context, email, password string) (*models.PublicUserData, string, time.Time, error) {
	normalized, err := normalizeEmail(email)
	if err != nil {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}
	user, err := s.userRepo.GetByEmail(normalized)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	if user == nil {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}
	if user.Status == constants.UserStatusDisabled {
		return nil, "", time.Time{}, ErrUserDisabled
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}

	now := time.Now()
	user.LastLoginAt = &now
	if err := s.userRepo.Update(user); err != nil {
		logger.Warnw("user_last_login_update_failed", "user_id", user.ID, "error", err)
	}
	logger.Infow("user_login", "user_id", user.ID, "username", user.Username)

	return s.openSession(ctx, user)
}

// Logout 注销会话：删除会话快照并失效鉴权缓存
func (s *UserAuthService) Logout(ctx context.Context, userID uint, sessionID string) error {
	if err := s.sessionStore(sessionID).Delete(constants.StoreKeyUser); err != nil {
		return err
	}
	if err := cache.InvalidateUserAuthState(ctx, userID); err != nil {
		logger.Warnw("auth_state_invalidate_failed", "user_id", userID, "error", err)
	}
	logger.Infow("user_logout", "user_id", userID)
	return nil
}

// SessionSnapshot 读取会话快照，快照缺失说明会话已注销或从未建立
func (s *UserAuthService) SessionSnapshot(sessionID string) (*models.PublicUserData, bool) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, false
	}
	snapshot, ok := kvstore.LoadJSON(s.sessionStore(sessionID), constants.StoreKeyUser, func(d *models.PublicUserData) bool {
		return d.ID != ""
	})
	if !ok {
		return nil, false
	}
	return &snapshot, true
}

// RefreshSessionSnapshot 资料变更后刷新会话快照
func (s *UserAuthService) RefreshSessionSnapshot(sessionID string, user *models.User) {
	if strings.TrimSpace(sessionID) == "" || user == nil {
		return
	}
	public := user.Sanitize()
	if err := kvstore.SaveJSON(s.sessionStore(sessionID), constants.StoreKeyUser, public); err != nil {
		logger.Warnw("session_snapshot_refresh_failed", "user_id", user.ID, "error", err)
	}
}

// openSession 签发 token 并落会话快照
func (s *UserAuthService) openSession(ctx context.Context, user *models.User) (*models.PublicUserData, string, time.Time, error) {
	token, sessionID, expiresAt, err := s.GenerateUserJWT(user)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	public := user.Sanitize()
	if err := kvstore.SaveJSON(s.sessionStore(sessionID), constants.StoreKeyUser, public); err != nil {
		return nil, "", time.Time{}, err
	}
	if err := cache.SetUserAuthState(ctx, cache.BuildUserAuthState(user)); err != nil {
		logger.Warnw("auth_state_cache_failed", "user_id", user.ID, "error", err)
	}
	return &public, token, expiresAt, nil
}

func (s *UserAuthService) sessionStore(sessionID string) kvstore.Store {
	return kvstore.Scoped(s.store, constants.StoreScopeSession+sessionID)
}

func normalizeEmail(email string) (string, error) {
	trimmed := strings.TrimSpace(strings.ToLower(email))
	if trimmed == "" {
		return "", ErrInvalidEmail
	}
	if _, err := mail.ParseAddress(trimmed); err != nil {
		return "", ErrInvalidEmail
	}
	return trimmed, nil
}
