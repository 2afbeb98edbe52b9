package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ghostkitchen/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSigningSecret = "test-signing-secret"

func issuedRequest(t *testing.T, issuer TokenIssuer, role string, kitchenID *string) echo.Context {
	t.Helper()

	token, err := issuer.Issue("user-1", role, kitchenID)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)

	claims, err := issuer.Parse(token)
	require.NoError(t, err)
	ctx.Set(claimsContextKey, claims)

	return ctx
}

func Test_TokenIssuer_IssueAndParse_RoundTrips(t *testing.T) {
	// Arrange
	issuer := NewTokenIssuer(testSigningSecret, time.Hour)
	kitchenID := "3f8c4d4e-0000-0000-0000-000000000001"

	// Act
	token, err := issuer.Issue("user-1", "KITCHEN", &kitchenID)
	require.NoError(t, err)
	claims, err := issuer.Parse(token)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "KITCHEN", claims.Role)
	require.NotNil(t, claims.KitchenID)
	assert.Equal(t, kitchenID, *claims.KitchenID)
}

func Test_TokenIssuer_Parse_RejectsWrongSecret(t *testing.T) {
	// Arrange
	issuer := NewTokenIssuer(testSigningSecret, time.Hour)
	other := NewTokenIssuer("different-secret", time.Hour)

	token, err := issuer.Issue("user-1", "KITCHEN", nil)
	require.NoError(t, err)

	// Act
	_, err = other.Parse(token)

	// Assert
	assert.Error(t, err)
}

func Test_TokenIssuer_Parse_RejectsExpiredToken(t *testing.T) {
	// Arrange
	issuer := NewTokenIssuer(testSigningSecret, -time.Minute)

	token, err := issuer.Issue("user-1", "KITCHEN", nil)
	require.NoError(t, err)

	// Act
	_, err = issuer.Parse(token)

	// Assert
	assert.Error(t, err)
}

func Test_Middleware_InvalidTokenIsRejected(t *testing.T) {
	// Arrange
	issuer := NewTokenIssuer(testSigningSecret, time.Hour)
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer not-a-token")
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)

	next := func(echo.Context) error { return nil }

	// Act
	err := issuer.Middleware()(next)(ctx)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func Test_Middleware_MissingTokenPassesThroughAnonymously(t *testing.T) {
	// Arrange
	issuer := NewTokenIssuer(testSigningSecret, time.Hour)
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)

	called := false
	next := func(c echo.Context) error {
		called = true
		_, ok := claimsFrom(c)
		assert.False(t, ok)
		return nil
	}

	// Act
	err := issuer.Middleware()(next)(ctx)

	// Assert
	require.NoError(t, err)
	assert.True(t, called)
}

func Test_ActorRole_AnonymousCallersAreCustomers(t *testing.T) {
	// Arrange
	e := echo.New()
	ctx := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	// Act & Assert
	assert.Equal(t, order.RoleCustomer, actorRole(ctx))
}

func Test_ActorRole_KitchenTokenResolvesToKitchen(t *testing.T) {
	// Arrange
	issuer := NewTokenIssuer(testSigningSecret, time.Hour)
	kitchenID := "3f8c4d4e-0000-0000-0000-000000000001"
	ctx := issuedRequest(t, issuer, "KITCHEN", &kitchenID)

	// Act & Assert
	assert.Equal(t, order.RoleKitchen, actorRole(ctx))
}

func Test_RequireKitchen_AccessRules(t *testing.T) {
	issuer := NewTokenIssuer(testSigningSecret, time.Hour)
	ownKitchen := "3f8c4d4e-0000-0000-0000-000000000001"
	otherKitchen := "3f8c4d4e-0000-0000-0000-000000000002"

	testCases := []struct {
		name       string
		ctx        func(t *testing.T) echo.Context
		kitchenID  string
		wantStatus int
	}{
		{
			name: "kitchen accesses own tenant",
			ctx: func(t *testing.T) echo.Context {
				return issuedRequest(t, issuer, "KITCHEN", &ownKitchen)
			},
			kitchenID:  ownKitchen,
			wantStatus: 0,
		},
		{
			name: "kitchen denied another tenant",
			ctx: func(t *testing.T) echo.Context {
				return issuedRequest(t, issuer, "KITCHEN", &ownKitchen)
			},
			kitchenID:  otherKitchen,
			wantStatus: http.StatusForbidden,
		},
		{
			name: "admin accesses any tenant",
			ctx: func(t *testing.T) echo.Context {
				return issuedRequest(t, issuer, "ADMIN", nil)
			},
			kitchenID:  otherKitchen,
			wantStatus: 0,
		},
		{
			name: "anonymous is unauthorized",
			ctx: func(t *testing.T) echo.Context {
				e := echo.New()
				return e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
			},
			kitchenID:  ownKitchen,
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Act
			claims, err := requireKitchen(tc.ctx(t), tc.kitchenID)

			// Assert
			if tc.wantStatus == 0 {
				require.NoError(t, err)
				assert.NotNil(t, claims)
				return
			}

			var httpErr *echo.HTTPError
			require.ErrorAs(t, err, &httpErr)
			assert.Equal(t, tc.wantStatus, httpErr.Code)
		})
	}
}
