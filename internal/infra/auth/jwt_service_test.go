package auth

import (
	"testing"
	"time"

	"eats/config"
	"eats/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *jwtService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.ApplyDefaults()

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	jwtService := newTestService(t)
	ownerID := uuid.New()

	token, err := jwtService.GenerateAccessToken(ownerID, []string{"1", "3"})
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, ownerID.String(), claims.Subject)
	assert.Equal(t, []string{"1", "3"}, claims.RestaurantIDs)
	assert.Equal(t, service.TokenTypeAccess, claims.Type)

	owner, err := claims.Owner()
	require.NoError(t, err)
	assert.Equal(t, ownerID, owner.OwnerID)
	assert.True(t, owner.CanManage("3"))
	assert.False(t, owner.CanManage("2"))

	assert.Equal(t, 12*time.Hour, jwtService.GetAccessTokenDuration())
}

func TestJWTService_MissingSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService := newTestService(t)

	_, err := jwtService.ValidateToken("invalid.token.string")
	assert.Error(t, err)

	other := newTestService(t)
	other.accessSecret = "another_secret"
	token, err := other.GenerateAccessToken(uuid.New(), []string{"1"})
	require.NoError(t, err)
	_, err = jwtService.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	jwtService := newTestService(t)
	issued := time.Now().Add(-24 * time.Hour)
	jwtService.now = func() time.Time { return issued }

	token, err := jwtService.GenerateAccessToken(uuid.New(), []string{"1"})
	require.NoError(t, err)

	jwtService.now = time.Now
	_, err = jwtService.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTService_WrongType(t *testing.T) {
	jwtService := newTestService(t)
	claims := &service.Claims{
		Type: "refresh",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(jwtService.accessSecret))
	require.NoError(t, err)

	_, err = jwtService.ValidateToken(token)
	assert.ErrorContains(t, err, "unexpected token type")
}

func TestJWTService_RejectsNoneAlgorithm(t *testing.T) {
	jwtService := newTestService(t)
	claims := &service.Claims{
		Type: service.TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = jwtService.ValidateToken(token)
	assert.Error(t, err)
}
