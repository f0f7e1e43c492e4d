package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	portssvc "github.com/SscSPs/cashit_ledger/internal/core/ports/services"
	"github.com/SscSPs/cashit_ledger/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func abort(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"success": false, "message": msg})
}

// AuthMiddleware creates a Gin middleware handler that validates JWT tokens.
func AuthMiddleware(jwtSecret, issuer string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Warn("Authorization header missing")
			abort(c, http.StatusUnauthorized, "Authorization header required")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			logger.Warn("Authorization header format invalid")
			abort(c, http.StatusUnauthorized, "Authorization header format must be Bearer {token}")
			return
		}

		claims, err := utils.ParseAndValidateJWT(parts[1], jwtSecret, issuer)
		if err != nil {
			logger.Warn("Invalid token", slog.String("error", err.Error()))
			msg := "Invalid token"
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "Token has expired"
			} else if errors.Is(err, jwt.ErrTokenNotValidYet) {
				msg = "Token not valid yet"
			}
			abort(c, http.StatusUnauthorized, msg)
			return
		}

		accountID := claims.Subject
		ctx := context.WithValue(c.Request.Context(), accountIDKey, accountID)
		ctx = WithLogger(ctx, logger.With(slog.String("account_id", accountID)))
		c.Request = c.Request.WithContext(ctx)
		c.Set(string(accountIDKey), accountID)
		c.Set(string(portalKey), claims.Portal)

		c.Next()
	}
}

// SessionGuard admits the request only while the token's account is the current
// session principal. A later login by someone else or a logout invalidates older tokens.
func SessionGuard(sessions portssvc.SessionSvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		accountID, ok := GetAccountIDFromContext(c)
		current, hasSession := sessions.Current(c.Request.Context())
		if !ok || !hasSession || current.ID != accountID {
			GetLoggerFromCtx(c.Request.Context()).Info("Token does not match current session")
			abort(c, http.StatusUnauthorized, "Session expired")
			return
		}
		c.Set(string(principalKey), *current)
		c.Next()
	}
}

// RequireAdminPortal rejects tokens not issued by the admin login.
func RequireAdminPortal() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetPortalFromContext(c) != utils.PortalAdmin {
			abort(c, http.StatusForbidden, "Access Denied: Not an admin account")
			return
		}
		c.Next()
	}
}
