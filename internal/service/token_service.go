package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/guttosm/export-go/config"
	"github.com/guttosm/export-go/internal/domain/dto"
)

// TokenService issues and validates access tokens.
type TokenService interface {
	// GenerateAccessToken signs a token for the given subject.
	GenerateAccessToken(claims dto.Claims) (string, error)
	// ValidateAccessToken validates an access token and returns its claims.
	ValidateAccessToken(tokenString string) (*dto.Claims, error)
	// TTL returns the lifetime of issued tokens.
	TTL() time.Duration
}

// TokenServiceImpl implements TokenService with HS256 signed JWTs.
// Tokens are stateless; there is no refresh or revocation.
type TokenServiceImpl struct {
	secretKey      []byte
	issuer         string
	accessTokenTTL time.Duration
	now            func() time.Time
}

// TokenConfig holds configuration for the token service.
type TokenConfig struct {
	SecretKey      string
	Issuer         string
	AccessTokenTTL time.Duration
}

// NewTokenConfigFromAuthConfig creates TokenConfig from config.AuthConfig.
func NewTokenConfigFromAuthConfig(authConfig config.AuthConfig) TokenConfig {
	return TokenConfig{
		SecretKey:      authConfig.JWTSecretKey,
		Issuer:         authConfig.JWTIssuer,
		AccessTokenTTL: authConfig.AccessTokenTTL,
	}
}

// NewTokenService creates a new token service.
func NewTokenService(cfg TokenConfig) *TokenServiceImpl {
	return &TokenServiceImpl{
		secretKey:      []byte(cfg.SecretKey),
		issuer:         cfg.Issuer,
		accessTokenTTL: cfg.AccessTokenTTL,
		now:            time.Now,
	}
}

// TTL returns the lifetime of issued tokens.
func (s *TokenServiceImpl) TTL() time.Duration {
	return s.accessTokenTTL
}

// GenerateAccessToken signs a new access token.
func (s *TokenServiceImpl) GenerateAccessToken(claims dto.Claims) (string, error) {
	if claims.Email == "" {
		return "", errors.New("cannot create token without a subject")
	}

	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &ClaimsWithJWT{
		Claims: claims,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   claims.Email,
			Issuer:    s.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	})

	signed, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}
	return signed, nil
}

// ValidateAccessToken validates an access token and returns its claims.
func (s *TokenServiceImpl) ValidateAccessToken(tokenString string) (*dto.Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, &ClaimsWithJWT{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return s.secretKey, nil
	}, opts...)
	if err != nil {
		return nil, ErrInvalidToken
	}

	if claimsWithJWT, ok := token.Claims.(*ClaimsWithJWT); ok && token.Valid {
		return &claimsWithJWT.Claims, nil
	}

	return nil, ErrInvalidToken
}
