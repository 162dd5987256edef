package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerr "github.com/atgamehub/storefront/internal/domain/error"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newAuthRouter(auth *Authenticator) *gin.Engine {
	r := gin.New()
	r.GET("/me", auth.RequireAuth(), func(c *gin.Context) {
		c.String(http.StatusOK, AccountID(c))
	})
	r.GET("/admin", auth.RequireAuth(), RequireAdmin(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func serve(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAuth(t *testing.T) {
	auth := NewAuthenticator("secret", "atg")
	r := newAuthRouter(auth)

	t.Run("valid token exposes subject", func(t *testing.T) {
		token, err := auth.IssueToken("user-1", false, time.Hour)
		require.NoError(t, err)

		w := serve(r, "/me", token)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "user-1", w.Body.String())
	})

	t.Run("missing token", func(t *testing.T) {
		w := serve(r, "/me", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), `"code":4011`)
	})

	t.Run("expired token", func(t *testing.T) {
		token, err := auth.IssueToken("user-1", false, -time.Minute)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, serve(r, "/me", token).Code)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := NewAuthenticator("other", "atg").IssueToken("user-1", false, time.Hour)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, serve(r, "/me", token).Code)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		token, err := NewAuthenticator("secret", "elsewhere").IssueToken("user-1", false, time.Hour)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, serve(r, "/me", token).Code)
	})

	t.Run("non HMAC algorithm", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
			RegisteredClaims: jwt.RegisteredClaims{Subject: "user-1"},
		}).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, serve(r, "/me", token).Code)
	})
}

func TestRequireAdmin(t *testing.T) {
	auth := NewAuthenticator("secret", "")
	r := newAuthRouter(auth)

	user, err := auth.IssueToken("user-1", false, time.Hour)
	require.NoError(t, err)
	admin, err := auth.IssueToken("admin-1", true, time.Hour)
	require.NoError(t, err)

	w := serve(r, "/admin", user)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), `"code":4030`)

	assert.Equal(t, http.StatusOK, serve(r, "/admin", admin).Code)
}

func TestVerifyRejectsMissingSubject(t *testing.T) {
	auth := NewAuthenticator("secret", "")
	token, err := auth.IssueToken("", false, time.Hour)
	require.NoError(t, err)

	_, err = auth.Verify(token)
	assert.ErrorIs(t, err, domainerr.ErrUnauthorized)
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header string
		token  string
		ok     bool
	}{
		{"Bearer abc", "abc", true},
		{"bearer abc", "abc", true},
		{"Basic abc", "", false},
		{"Bearer ", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		token, ok := bearerToken(tt.header)
		assert.Equal(t, tt.ok, ok, tt.header)
		assert.Equal(t, tt.token, token, tt.header)
	}
}
