package service

import (
	"context"
	"errors"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/guttosm/export-go/config"
	"github.com/guttosm/export-go/internal/domain/dto"
)

// RoleAdmin is the role carried by every token this service issues.
const RoleAdmin = "admin"

var (
	// ErrInvalidCredentials is returned when email or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrInvalidToken is returned when token is invalid or expired.
	ErrInvalidToken = errors.New("invalid or expired token")
	// ErrLoginDisabled is returned when no administrator is configured.
	ErrLoginDisabled = errors.New("admin login is not configured")
)

// ClaimsWithJWT extends dto.Claims with JWT RegisteredClaims for token generation.
type ClaimsWithJWT struct {
	dto.Claims
	jwt.RegisteredClaims
}

// AuthService authenticates the site administrator.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*dto.LoginResponse, error)
	ValidateToken(ctx context.Context, tokenString string) (*dto.Claims, error)
}

// AuthServiceImpl checks credentials against the single configured admin
// account and delegates token handling to TokenService.
type AuthServiceImpl struct {
	adminEmail   string
	passwordHash []byte
	tokenService TokenService
}

// unknownUserHash is compared against when the email does not match, so a
// wrong email costs the same as a wrong password.
var unknownUserHash, _ = bcrypt.GenerateFromPassword([]byte("export-go-unknown-user"), bcrypt.MinCost)

// NewAuthService creates a new authentication service.
func NewAuthService(authConfig config.AuthConfig) AuthService {
	return NewAuthServiceWithTokenService(authConfig, NewTokenService(NewTokenConfigFromAuthConfig(authConfig)))
}

// NewAuthServiceWithTokenService creates a new authentication service with an existing TokenService.
func NewAuthServiceWithTokenService(authConfig config.AuthConfig, tokenService TokenService) AuthService {
	return &AuthServiceImpl{
		adminEmail:   strings.ToLower(strings.TrimSpace(authConfig.AdminEmail)),
		passwordHash: []byte(authConfig.AdminPasswordHash),
		tokenService: tokenService,
	}
}

// Login authenticates the administrator and returns an access token.
func (s *AuthServiceImpl) Login(_ context.Context, email, password string) (*dto.LoginResponse, error) {
	if s.adminEmail == "" || len(s.passwordHash) == 0 {
		return nil, ErrLoginDisabled
	}

	hash := s.passwordHash
	emailMatches := strings.EqualFold(strings.TrimSpace(email), s.adminEmail)
	if !emailMatches {
		hash = unknownUserHash
	}

	if err := bcrypt.CompareHashAndPassword(hash, []byte(password)); err != nil || !emailMatches {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokenService.GenerateAccessToken(dto.Claims{Email: s.adminEmail, Role: RoleAdmin})
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: int64(s.tokenService.TTL().Seconds()),
	}, nil
}

// ValidateToken validates an access token and returns its claims.
func (s *AuthServiceImpl) ValidateToken(_ context.Context, tokenString string) (*dto.Claims, error) {
	claims, err := s.tokenService.ValidateAccessToken(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.Role != RoleAdmin {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
