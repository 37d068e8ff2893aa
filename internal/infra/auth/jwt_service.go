// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"eats/config"
	"eats/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret string        // Secret key for signing access tokens.
	accessTTL    time.Duration // Time-to-live for access tokens.
	now          func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	return &jwtService{
		accessSecret: cfg.SecretKey.Access,
		accessTTL:    cfg.Auth.TokenTTL,
		now:          time.Now,
	}, nil
}

// GenerateAccessToken creates a signed token for an owner and the restaurants they manage.
func (s *jwtService) GenerateAccessToken(ownerID uuid.UUID, restaurantIDs []string) (string, error) {
	now := s.now()
	claims := &service.Claims{
		RestaurantIDs: restaurantIDs,
		Type:          service.TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   ownerID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.accessSecret))
	if err != nil {
		return "", errors.Wrap(err, "sign access token")
	}

	return signed, nil
}

// ValidateToken checks the validity of a token string and returns its claims.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.accessSecret), nil
	}, jwt.WithTimeFunc(s.now), jwt.WithExpirationRequired())
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if claims.Type != service.TokenTypeAccess {
		return nil, errors.Errorf("unexpected token type %q", claims.Type)
	}

	return claims, nil
}

// GetAccessTokenDuration returns the configured duration for access tokens.
func (s *jwtService) GetAccessTokenDuration() time.Duration {
	return s.accessTTL
}
