package middleware

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"

	domainerr "github.com/atgamehub/storefront/internal/domain/error"
	"github.com/atgamehub/storefront/internal/infrastructure/adapter/api/dto"
)

// Context keys set by the auth middleware
const (
	AccountIDKey = "accountID"
	IsAdminKey   = "isAdmin"
)

// IdempotencyKeyHeader carries the client's purchase request key
const IdempotencyKeyHeader = "Idempotency-Key"

// Claims are the bearer token claims; Subject is the account id
type Claims struct {
	Admin bool `json:"admin,omitempty"`
	jwt.RegisteredClaims
}

// Authenticator verifies HS256 bearer tokens issued by the auth provider
type Authenticator struct {
	secret []byte
	issuer string
	parser *jwt.Parser
}

// NewAuthenticator creates an Authenticator; an empty issuer skips the iss check
func NewAuthenticator(secret, issuer string) *Authenticator {
	return &Authenticator{
		secret: []byte(secret),
		issuer: issuer,
		parser: jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})),
	}
}

// IssueToken signs a token for subject, valid for ttl
func (a *Authenticator) IssueToken(subject string, admin bool, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Admin: admin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    a.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
}

// Verify parses and validates a raw token
func (a *Authenticator) Verify(raw string) (*Claims, error) {
	claims := &Claims{}
	_, err := a.parser.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return a.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domainerr.ErrUnauthorized, err.Error())
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: token has no subject", domainerr.ErrUnauthorized)
	}
	if a.issuer != "" && !claims.VerifyIssuer(a.issuer, true) {
		return nil, fmt.Errorf("%w: unexpected issuer", domainerr.ErrUnauthorized)
	}
	return claims, nil
}

// RequireAuth rejects requests without a valid bearer token and stores the caller's identity
func (a *Authenticator) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			abortAuth(c, http.StatusUnauthorized, domainerr.ErrUnauthorized, "Missing bearer token")
			return
		}

		claims, err := a.Verify(raw)
		if err != nil {
			abortAuth(c, http.StatusUnauthorized, err, "Invalid or expired token")
			return
		}

		c.Set(AccountIDKey, claims.Subject)
		c.Set(IsAdminKey, claims.Admin)
		c.Next()
	}
}

// RequireAdmin must run after RequireAuth
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool(IsAdminKey) {
			abortAuth(c, http.StatusForbidden, domainerr.ErrForbidden, "Admin access required")
			return
		}
		c.Next()
	}
}

// AccountID returns the authenticated caller
func AccountID(c *gin.Context) string {
	return c.GetString(AccountIDKey)
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func abortAuth(c *gin.Context, status int, err error, message string) {
	_ = c.Error(err)
	c.AbortWithStatusJSON(status, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: message,
	})
}
