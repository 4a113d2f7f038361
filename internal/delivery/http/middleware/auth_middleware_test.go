package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"reliefmap/internal/domain/constants"
	"reliefmap/internal/domain/entity"
	"reliefmap/internal/domain/service"
	mockservice "reliefmap/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthContext(t *testing.T, authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/admin/points", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAuthMiddleware_Authenticate_SetsIdentity(t *testing.T) {
	t.Parallel()

	tokenSvc := mockservice.NewMockTokenService(t)
	userID := uuid.New()
	tokenSvc.EXPECT().ValidateAccessToken("good-token").Return(&service.Claims{
		UserID: userID,
		Role:   entity.RoleAdmin.String(),
		Type:   "access",
	}, nil)

	mw := NewAuthMiddleware(tokenSvc)
	c, _ := newAuthContext(t, "Bearer good-token")

	nextCalled := false
	err := mw.Authenticate(func(c echo.Context) error {
		nextCalled = true

		return nil
	})(c)

	require.NoError(t, err)
	assert.True(t, nextCalled)
	assert.Equal(t, userID, c.Get(constants.ContextKeyUserID))
	assert.Equal(t, entity.RoleAdmin.String(), c.Get(constants.ContextKeyRole))
}

func TestAuthMiddleware_Authenticate_Rejections(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		authHeader string
		tokenErr   bool
	}{
		{name: "missing header", authHeader: ""},
		{name: "not a bearer token", authHeader: "Basic abc123"},
		{name: "invalid token", authHeader: "Bearer bad-token", tokenErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tokenSvc := mockservice.NewMockTokenService(t)
			if tt.tokenErr {
				tokenSvc.EXPECT().ValidateAccessToken("bad-token").Return(nil, assert.AnError)
			}

			mw := NewAuthMiddleware(tokenSvc)
			c, rec := newAuthContext(t, tt.authHeader)

			err := mw.Authenticate(func(c echo.Context) error {
				t.Fatal("next handler must not run")

				return nil
			})(c)

			require.NoError(t, err)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	t.Parallel()

	tokenSvc := mockservice.NewMockTokenService(t)
	mw := NewAuthMiddleware(tokenSvc)

	next := func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}

	t.Run("matching role passes", func(t *testing.T) {
		t.Parallel()

		c, rec := newAuthContext(t, "")
		c.Set(constants.ContextKeyRole, entity.RoleAdmin.String())

		require.NoError(t, mw.RequireRole(entity.RoleAdmin.String())(next)(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("other role is forbidden", func(t *testing.T) {
		t.Parallel()

		c, rec := newAuthContext(t, "")
		c.Set(constants.ContextKeyRole, entity.RoleReviewer.String())

		require.NoError(t, mw.RequireRole(entity.RoleAdmin.String())(next)(c))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("missing role is forbidden", func(t *testing.T) {
		t.Parallel()

		c, rec := newAuthContext(t, "")

		require.NoError(t, mw.RequireRole(entity.RoleAdmin.String())(next)(c))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
