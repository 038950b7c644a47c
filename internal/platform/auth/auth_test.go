package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/anime-catalog/internal/platform/api"
)

var testSecret = []byte("test-secret-key-32-bytes-long!!!")

func newVerifier() JWTVerifier { return JWTVerifier{Secret: testSecret} }

func makeToken(t *testing.T, subject, role string, exp time.Time) string {
	t.Helper()
	tok, err := newVerifier().Sign(Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		Role: role,
	})
	require.NoError(t, err)
	return tok
}

// ─── JWTVerifier tests ──────────────────────────────────────────────────────

func TestJWTVerifier_ValidToken(t *testing.T) {
	tok := makeToken(t, "ops-1", RoleAdmin, time.Now().Add(time.Hour))
	claims, err := newVerifier().Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, "ops-1", claims.Subject)
	assert.Equal(t, RoleAdmin, claims.Role)
}

func TestJWTVerifier_ExpiredToken(t *testing.T) {
	tok := makeToken(t, "ops-1", RoleAdmin, time.Now().Add(-time.Hour))
	_, err := newVerifier().Parse(tok)
	assert.Error(t, err)
}

func TestJWTVerifier_WrongSecret(t *testing.T) {
	tok := makeToken(t, "ops-1", RoleAdmin, time.Now().Add(time.Hour))
	_, err := JWTVerifier{Secret: []byte("wrong-secret")}.Parse(tok)
	assert.Error(t, err)
}

func TestJWTVerifier_EmptySecret(t *testing.T) {
	_, err := JWTVerifier{}.Parse("a.b.c")
	assert.ErrorIs(t, err, ErrNoSecret)
	_, err = JWTVerifier{}.Sign(Claims{})
	assert.ErrorIs(t, err, ErrNoSecret)
}

func TestJWTVerifier_TamperedPayload(t *testing.T) {
	tok := makeToken(t, "ops-1", "viewer", time.Now().Add(time.Hour))
	parts := strings.Split(tok, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + ".dGFtcGVyZWQ." + parts[2]
	_, err := newVerifier().Parse(tampered)
	assert.Error(t, err)
}

// ─── RequireRole middleware tests ────────────────────────────────────────────

func callRequireRole(req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	RequireRole(newVerifier(), RoleAdmin)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sub, _ := SubjectFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(sub))
	})).ServeHTTP(rr, req)
	return rr
}

func errorCode(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var body api.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body.Error.Code
}

func TestRequireRole_Admin(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set("Authorization", "Bearer "+makeToken(t, "ops-42", "Admin", time.Now().Add(time.Hour)))

	rr := callRequireRole(req)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "ops-42", rr.Body.String())
}

func TestRequireRole_MissingHeader(t *testing.T) {
	rr := callRequireRole(httptest.NewRequest(http.MethodPost, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "UNAUTHORIZED", errorCode(t, rr))
}

func TestRequireRole_NonBearerScheme(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	rr := callRequireRole(req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestRequireRole_InvalidToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set("Authorization", "Bearer invalid.token.here")
	rr := callRequireRole(req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestRequireRole_MissingSubject(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set("Authorization", "Bearer "+makeToken(t, "", RoleAdmin, time.Now().Add(time.Hour)))
	rr := callRequireRole(req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestRequireRole_WrongRole(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set("Authorization", "Bearer "+makeToken(t, "viewer-1", "viewer", time.Now().Add(time.Hour)))
	rr := callRequireRole(req)
	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Equal(t, "FORBIDDEN", errorCode(t, rr))
}
