package middleware

import (
	"log/slog"
	"strings"

	"nightpass/internal/domain/identity"
	"nightpass/internal/pkg/cookie"
	"nightpass/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	ctxOwnerKey     = "owner"
	sessionIDHeader = "X-Session-ID"
)

// IdentityMiddleware resolves who owns the cart on every request. A valid
// bearer token wins; otherwise the visitor is tracked by an anonymous session
// id from the np_session cookie or the X-Session-ID header. Visitors arriving
// with neither get a fresh session id minted and set as a cookie, so the very
// first cart add already has an owner.
type IdentityMiddleware struct {
	tokens       *jwt.Service
	cookieDomain string
	secureCookie bool
}

func NewIdentityMiddleware(tokens *jwt.Service) *IdentityMiddleware {
	return &IdentityMiddleware{
		tokens:       tokens,
		secureCookie: gin.Mode() == gin.ReleaseMode,
	}
}

func (m *IdentityMiddleware) ResolveOwner() gin.HandlerFunc {
	return func(c *gin.Context) {
		if owner, ok := m.ownerFromBearer(c); ok {
			c.Set(ctxOwnerKey, owner)
			c.Next()
			return
		}

		sessionID := cookie.GetSessionID(c)
		if sessionID == "" {
			sessionID = c.GetHeader(sessionIDHeader)
		}
		if sessionID == "" {
			sessionID = uuid.New().String()
			cookie.SetSessionID(c, sessionID, m.cookieDomain, m.secureCookie)
		}

		owner, err := identity.NewAnonymous(sessionID)
		if err != nil {
			// Unreachable: sessionID is never empty here.
			c.Next()
			return
		}
		c.Set(ctxOwnerKey, owner)
		c.Next()
	}
}

func (m *IdentityMiddleware) ownerFromBearer(c *gin.Context) (identity.Owner, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return identity.Owner{}, false
	}
	tokenString := strings.TrimSpace(authHeader[len("Bearer "):])
	if tokenString == "" {
		return identity.Owner{}, false
	}

	claims, err := m.tokens.ValidateToken(tokenString)
	if err != nil {
		// An invalid token degrades to anonymous instead of blocking the cart.
		slog.Warn("bearer token rejected", "error", err.Error())
		return identity.Owner{}, false
	}

	owner, err := identity.NewAuthenticated(claims.UserID, claims.Email)
	if err != nil {
		return identity.Owner{}, false
	}
	return owner, true
}

// GetOwner returns the request owner resolved by ResolveOwner.
func GetOwner(c *gin.Context) (identity.Owner, bool) {
	v, exists := c.Get(ctxOwnerKey)
	if !exists {
		return identity.Owner{}, false
	}
	owner, ok := v.(identity.Owner)
	return owner, ok
}
