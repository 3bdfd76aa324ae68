package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

var testKey = []byte("test-signing-key")

func signToken(t *testing.T, claims *Claims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(testKey)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func runMiddleware(mw echo.MiddlewareFunc, req *http.Request) (*httptest.ResponseRecorder, echo.Context, error) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	var captured echo.Context
	err := mw(func(c echo.Context) error {
		captured = c
		return c.NoContent(http.StatusOK)
	})(c)
	return rec, captured, err
}

func TestJWTMiddleware_ValidToken(t *testing.T) {
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "3f2b8c4e-0000-0000-0000-000000000001",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Roles: []string{"doctor"},
	}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, claims))

	_, captured, err := runMiddleware(JWTMiddleware(JWTConfig{SigningKey: testKey}), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx := captured.Request().Context()
	if got := UserIDFromContext(ctx); got != claims.Subject {
		t.Errorf("expected subject %s on context, got %s", claims.Subject, got)
	}
	if roles := RolesFromContext(ctx); len(roles) != 1 || roles[0] != "doctor" {
		t.Errorf("expected doctor role on context, got %v", roles)
	}
}

func TestJWTMiddleware_MissingHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, _, err := runMiddleware(JWTMiddleware(JWTConfig{SigningKey: testKey}), req)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %v", err)
	}
}

func TestJWTMiddleware_ExpiredToken(t *testing.T) {
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "expired",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, claims))

	_, _, err := runMiddleware(JWTMiddleware(JWTConfig{SigningKey: testKey}), req)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for expired token, got %v", err)
	}
}

func TestJWTMiddleware_WrongKey(t *testing.T) {
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "u",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, _ := token.SignedString([]byte("other-key"))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signed)

	_, _, err := runMiddleware(JWTMiddleware(JWTConfig{SigningKey: testKey}), req)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for bad signature, got %v", err)
	}
}

func TestDevAuthMiddleware_SetsIdentity(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, captured, err := runMiddleware(DevAuthMiddleware("dev-doctor"), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := UserIDFromContext(captured.Request().Context()); got != "dev-doctor" {
		t.Errorf("expected dev-doctor, got %s", got)
	}
}
