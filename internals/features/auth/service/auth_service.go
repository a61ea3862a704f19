package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"absenku_backend/internals/configs"
	"absenku_backend/internals/constants"
	adminModel "absenku_backend/internals/features/admin/model"
	authModel "absenku_backend/internals/features/auth/model"
	tendikModel "absenku_backend/internals/features/tendik/model"
)

const tokenLifetime = 24 * time.Hour

var ErrInvalidCredentials = errors.New("username atau password salah")

type AuthService struct {
	DB *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{DB: db}
}

// LoginAdmin memverifikasi kredensial admin dan menerbitkan access token.
// Username tidak ditemukan dan password salah sengaja dibalas dengan
// error yang sama.
func (s *AuthService) LoginAdmin(ctx context.Context, username, password string) (string, *adminModel.AdminModel, error) {
	var admin adminModel.AdminModel
	err := s.DB.WithContext(ctx).Where("admin_username = ?", username).First(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil, ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(admin.AdminPassword), []byte(password)) != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.issueToken(admin.AdminID, constants.RoleAdmin, admin.AdminName)
	if err != nil {
		return "", nil, err
	}
	return token, &admin, nil
}

// LoginTendik memverifikasi kredensial tendik dan menerbitkan access token.
func (s *AuthService) LoginTendik(ctx context.Context, username, password string) (string, *tendikModel.TendikModel, error) {
	var tendik tendikModel.TendikModel
	err := s.DB.WithContext(ctx).Where("tendik_username = ?", username).First(&tendik).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil, ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(tendik.TendikPassword), []byte(password)) != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.issueToken(tendik.TendikID, constants.RoleTendik, tendik.TendikName)
	if err != nil {
		return "", nil, err
	}
	return token, &tendik, nil
}

// Logout memasukkan token ke blacklist sampai kedaluwarsa alaminya.
func (s *AuthService) Logout(ctx context.Context, rawToken string) error {
	expiresAt := time.Now().Add(tokenLifetime)

	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, _, err := parser.ParseUnverified(rawToken, claims); err == nil {
		if exp, ok := claims["exp"].(float64); ok {
			expiresAt = time.Unix(int64(exp), 0)
		}
	}

	return s.DB.WithContext(ctx).Create(&authModel.TokenBlacklistModel{
		Token:     rawToken,
		ExpiresAt: expiresAt,
	}).Error
}

func (s *AuthService) issueToken(id uuid.UUID, role, name string) (string, error) {
	if configs.JWTSecret == "" {
		return "", errors.New("JWT_SECRET belum diset")
	}
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":       id.String(),
		"role":      role,
		"user_name": name,
		"iat":       now.Unix(),
		"exp":       now.Add(tokenLifetime).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(configs.JWTSecret))
}
