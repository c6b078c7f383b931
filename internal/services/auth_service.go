package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"netpoleon-site/internal/auth"
	"netpoleon-site/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	db *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

// Login checks the admin's credentials and returns a signed session token.
// The error is the same for an unknown email and a wrong password.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *models.AdminUser, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return "", nil, fmt.Errorf("email and password are required")
	}

	var admin models.AdminUser
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&admin).Error
	if err != nil {
		return "", nil, fmt.Errorf("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return "", nil, fmt.Errorf("invalid credentials")
	}

	now := time.Now()
	admin.LastLoginAt = &now
	if err := s.db.WithContext(ctx).Model(&admin).Update("last_login_at", now).Error; err != nil {
		return "", nil, fmt.Errorf("update last login: %w", err)
	}

	token, err := auth.GenerateToken(admin.ID, admin.Email)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}

	return token, &admin, nil
}

// CreateAdmin registers a new panel user with a bcrypt-hashed password
func (s *AuthService) CreateAdmin(ctx context.Context, email, password, name string) (*models.AdminUser, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if len(password) < 8 {
		return nil, fmt.Errorf("password must be at least 8 characters")
	}

	var existing models.AdminUser
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&existing).Error; err == nil {
		return nil, fmt.Errorf("an admin with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	admin := models.AdminUser{
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
	}
	if err := s.db.WithContext(ctx).Create(&admin).Error; err != nil {
		return nil, fmt.Errorf("create admin: %w", err)
	}

	return &admin, nil
}

// GetAdmin returns an admin user by id
func (s *AuthService) GetAdmin(ctx context.Context, id uint) (*models.AdminUser, error) {
	var admin models.AdminUser
	if err := s.db.WithContext(ctx).First(&admin, id).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}
