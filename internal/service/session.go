package service

import (
	"errors"
	"fmt"
	"time"

	"erp-portal-backend/internal/database/models"
	apperrors "erp-portal-backend/internal/errors"
	"erp-portal-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SessionService authenticates platform admins and issues the session
// tokens that back the trusted tenant header.
type SessionService struct {
	admins  repository.PlatformAdminRepositoryInterface
	tenants repository.TenantRepositoryInterface
	secret  []byte
	ttl     time.Duration
}

// NewSessionService creates a new session service
func NewSessionService(
	admins repository.PlatformAdminRepositoryInterface,
	tenants repository.TenantRepositoryInterface,
	secret string,
	ttl time.Duration,
) *SessionService {
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &SessionService{admins: admins, tenants: tenants, secret: []byte(secret), ttl: ttl}
}

// SessionClaims are the JWT claims of an admin session
type SessionClaims struct {
	AdminID   string           `json:"admin_id"`
	TenantKey string           `json:"tenant_key"`
	Role      models.AdminRole `json:"role"`
	jwt.RegisteredClaims
}

// SessionResponse is returned on a successful admin login
type SessionResponse struct {
	Token     string           `json:"token"`
	ExpiresAt time.Time        `json:"expires_at"`
	TenantKey string           `json:"tenant_key"`
	AdminName string           `json:"admin_name"`
	Role      models.AdminRole `json:"role"`
}

// Login verifies the admin's password and issues a session token embedding
// the admin's tenant key. A blocked tenant cannot open a session.
func (s *SessionService) Login(email, password string) (*SessionResponse, error) {
	admin, err := s.admins.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get admin: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	tenant, err := s.tenants.GetByID(admin.TenantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTenantNotFound
		}
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}
	if tenant.Blocked {
		return nil, apperrors.ErrTenantBlocked
	}

	expiresAt := time.Now().Add(s.ttl)
	claims := &SessionClaims{
		AdminID:   admin.ID.String(),
		TenantKey: tenant.TenantKey,
		Role:      admin.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   admin.Email,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign session token: %w", err)
	}

	return &SessionResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		TenantKey: tenant.TenantKey,
		AdminName: admin.Name,
		Role:      admin.Role,
	}, nil
}

// Parse validates a session token and returns its claims
func (s *SessionService) Parse(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, apperrors.ErrInvalidSession
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok {
		return nil, apperrors.ErrInvalidSession
	}
	return claims, nil
}
