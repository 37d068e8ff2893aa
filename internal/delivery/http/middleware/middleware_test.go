package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "eats/internal/delivery/context"
	domainerrors "eats/internal/domain/errors"
	"eats/internal/domain/service"
	mockservice "eats/internal/mocks/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type errorBody struct {
	Success bool `json:"success"`
	Error   struct {
		Code    string `json:"code"`
		Details string `json:"details"`
	} `json:"error"`
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	t.Helper()

	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func newAuthEcho(tokenSvc service.TokenService) *echo.Echo {
	auth := NewAuthMiddleware(tokenSvc)

	e := echo.New()
	g := e.Group("/admin/restaurants/:id", auth.Authenticate, auth.RequireRestaurantAccess)
	g.GET("/analytics", func(c echo.Context) error {
		return c.String(http.StatusOK, deliverycontext.GetOwner(c).OwnerID.String())
	})

	return e
}

func TestAuthMiddleware(t *testing.T) {
	ownerID := uuid.New()
	validClaims := &service.Claims{
		RestaurantIDs:    []string{"1", "2"},
		Type:             service.TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{Subject: ownerID.String()},
	}

	tests := []struct {
		name       string
		header     string
		restaurant string
		setup      func(m *mockservice.MockTokenService)
		wantStatus int
		wantCode   string
	}{
		{
			name:       "missing header",
			restaurant: "1",
			wantStatus: http.StatusUnauthorized,
			wantCode:   "MISSING_TOKEN",
		},
		{
			name:       "not a bearer token",
			header:     "Basic abc",
			restaurant: "1",
			wantStatus: http.StatusUnauthorized,
			wantCode:   "INVALID_TOKEN_FORMAT",
		},
		{
			name:       "empty bearer token",
			header:     "Bearer ",
			restaurant: "1",
			wantStatus: http.StatusUnauthorized,
			wantCode:   "INVALID_TOKEN_FORMAT",
		},
		{
			name:       "rejected token",
			header:     "Bearer expired",
			restaurant: "1",
			setup: func(m *mockservice.MockTokenService) {
				m.EXPECT().ValidateToken("expired").Return(nil, jwt.ErrTokenExpired)
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "INVALID_TOKEN",
		},
		{
			name:       "subject is not an owner id",
			header:     "Bearer odd",
			restaurant: "1",
			setup: func(m *mockservice.MockTokenService) {
				m.EXPECT().ValidateToken("odd").Return(&service.Claims{
					Type:             service.TokenTypeAccess,
					RegisteredClaims: jwt.RegisteredClaims{Subject: "owner-1"},
				}, nil)
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "INVALID_TOKEN",
		},
		{
			name:       "restaurant not managed",
			header:     "Bearer good",
			restaurant: "3",
			setup: func(m *mockservice.MockTokenService) {
				m.EXPECT().ValidateToken("good").Return(validClaims, nil)
			},
			wantStatus: http.StatusForbidden,
			wantCode:   "FORBIDDEN",
		},
		{
			name:       "allowed",
			header:     "Bearer good",
			restaurant: "2",
			setup: func(m *mockservice.MockTokenService) {
				m.EXPECT().ValidateToken("good").Return(validClaims, nil)
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := mockservice.NewMockTokenService(t)
			if tt.setup != nil {
				tt.setup(tokenSvc)
			}
			e := newAuthEcho(tokenSvc)

			req := httptest.NewRequest(http.MethodGet, "/admin/restaurants/"+tt.restaurant+"/analytics", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode == "" {
				assert.Equal(t, ownerID.String(), rec.Body.String())

				return
			}
			body := decodeError(t, rec)
			assert.False(t, body.Success)
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.Empty(t, body.Error.Details)
		})
	}
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantDetails string
	}{
		{
			name:        "client app error keeps details",
			err:         errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("rating out of range"), "update profile"),
			wantStatus:  http.StatusBadRequest,
			wantCode:    "VALIDATION_FAILED",
			wantDetails: "rating out of range",
		},
		{
			name:       "database error hides details",
			err:        domainerrors.NewDatabaseExecuteError(errors.New("connection refused"), "find restaurant"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "DATABASE_EXECUTE_FAILED",
		},
		{
			name:       "echo error",
			err:        echo.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantCode:   "HTTP_ERROR",
		},
		{
			name:       "unknown error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			NewErrorMiddleware(slog.Default()).HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			body := decodeError(t, rec)
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.Equal(t, tt.wantDetails, body.Error.Details)
		})
	}
}

func TestErrorMiddleware_SkipsCommittedResponse(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	require.NoError(t, c.NoContent(http.StatusAccepted))

	NewErrorMiddleware(slog.Default()).HandleHTTPError(errors.New("late"), c)

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Empty(t, rec.Body.String())
}
