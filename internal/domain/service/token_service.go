package service

import (
	"time"

	"eats/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// TokenTypeAccess marks owner access tokens.
const TokenTypeAccess = "access"

// Claims defines the custom claims for owner tokens.
type Claims struct {
	RestaurantIDs []string `json:"restaurant_ids"`
	Type          string   `json:"type"`
	jwt.RegisteredClaims
}

// Owner converts validated claims into the owner identity.
func (c *Claims) Owner() (*entity.OwnerClaims, error) {
	ownerID, err := uuid.Parse(c.Subject)
	if err != nil {
		return nil, errors.Wrap(err, "parse token subject")
	}

	return &entity.OwnerClaims{OwnerID: ownerID, RestaurantIDs: c.RestaurantIDs}, nil
}

// TokenService defines the interface for generating and validating JWTs.
type TokenService interface {
	// GenerateAccessToken issues a token for an owner of the given restaurants.
	GenerateAccessToken(ownerID uuid.UUID, restaurantIDs []string) (string, error)

	// ValidateToken checks the signature, expiry and type of a token string.
	ValidateToken(tokenString string) (*Claims, error)

	// GetAccessTokenDuration returns the configured lifetime of access tokens.
	GetAccessTokenDuration() time.Duration
}
