package middleware

import (
	"github.com/SscSPs/cashit_ledger/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// Keys for values set by the auth middlewares.
const (
	accountIDKey = contextKey("accountID")
	portalKey    = contextKey("portal")
	principalKey = contextKey("principal")
)

// GetAccountIDFromContext retrieves the authenticated account ID from the Gin context.
// It returns the account ID and a boolean indicating if it was found.
func GetAccountIDFromContext(c *gin.Context) (string, bool) {
	if v, exists := c.Get(string(accountIDKey)); exists {
		id, ok := v.(string)
		return id, ok
	}
	// check in the request context as well
	if v, ok := c.Request.Context().Value(accountIDKey).(string); ok {
		return v, true
	}
	return "", false
}

// GetPortalFromContext returns the portal the bearer token was issued for.
func GetPortalFromContext(c *gin.Context) string {
	return c.GetString(string(portalKey))
}

// GetPrincipalFromContext returns the session principal confirmed by SessionGuard.
func GetPrincipalFromContext(c *gin.Context) (domain.Account, bool) {
	v, exists := c.Get(string(principalKey))
	if !exists {
		return domain.Account{}, false
	}
	acc, ok := v.(domain.Account)
	return acc, ok
}
