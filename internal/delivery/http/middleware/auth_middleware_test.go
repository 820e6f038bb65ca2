package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"ecodeli/internal/domain/entity"
	domainerrors "ecodeli/internal/domain/errors"
	"ecodeli/internal/domain/service"
	mockservice "ecodeli/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthTestContext(authorization string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/deliveries", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAuthenticate_ValidToken(t *testing.T) {
	tokenSvc := mockservice.NewMockTokenService(t)
	userID := uuid.New()
	tokenSvc.EXPECT().
		ValidateToken("valid-token").
		Return(&service.Claims{UserID: userID, Roles: []string{entity.RoleDeliverer}}, nil)

	m := NewAuthMiddleware(tokenSvc)

	c, _ := newAuthTestContext("Bearer valid-token")
	next := func(c echo.Context) error {
		actor, ok := Actor(c)
		require.True(t, ok)
		assert.Equal(t, userID, actor.ID)
		assert.Equal(t, []string{entity.RoleDeliverer}, actor.Roles)

		return c.NoContent(http.StatusOK)
	}

	require.NoError(t, m.Authenticate(next)(c))
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	m := NewAuthMiddleware(mockservice.NewMockTokenService(t))

	c, rec := newAuthTestContext("")

	require.NoError(t, m.Authenticate(failingNext(t))(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_NotBearer(t *testing.T) {
	m := NewAuthMiddleware(mockservice.NewMockTokenService(t))

	c, rec := newAuthTestContext("Basic dXNlcjpwYXNz")

	require.NoError(t, m.Authenticate(failingNext(t))(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	tokenSvc := mockservice.NewMockTokenService(t)
	tokenSvc.EXPECT().
		ValidateToken("expired").
		Return(nil, domainerrors.ErrTokenInvalid)

	m := NewAuthMiddleware(tokenSvc)

	c, rec := newAuthTestContext("Bearer expired")

	require.NoError(t, m.Authenticate(failingNext(t))(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRole(t *testing.T) {
	m := NewAuthMiddleware(mockservice.NewMockTokenService(t))

	t.Run("role present", func(t *testing.T) {
		c, rec := newAuthTestContext("")
		c.Set("roles", []string{entity.RoleClient, entity.RoleAdmin})

		handler := m.RequireRole(entity.RoleAdmin)(func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})

		require.NoError(t, handler(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("role missing", func(t *testing.T) {
		c, rec := newAuthTestContext("")
		c.Set("roles", []string{entity.RoleClient})

		require.NoError(t, m.RequireRole(entity.RoleAdmin)(failingNext(t))(c))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("roles absent", func(t *testing.T) {
		c, rec := newAuthTestContext("")

		require.NoError(t, m.RequireRole(entity.RoleAdmin)(failingNext(t))(c))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func failingNext(t *testing.T) echo.HandlerFunc {
	return func(c echo.Context) error {
		t.Fatal("next handler should not be reached")

		return nil
	}
}
