package handlers

import (
	"fmt"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/cashit_ledger/internal/core/ports/services"
	"github.com/SscSPs/cashit_ledger/internal/dto"
	"github.com/SscSPs/cashit_ledger/internal/middleware"
	"github.com/SscSPs/cashit_ledger/internal/platform/config"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) error {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := dto.RegisterValidators(v); err != nil {
			return fmt.Errorf("failed to register validators: %w", err)
		}
	}

	loginLimiter, err := middleware.NewLoginLimiter(cfg.LoginRateLimit)
	if err != nil {
		return fmt.Errorf("invalid LOGIN_RATE_LIMIT %q: %w", cfg.LoginRateLimit, err)
	}

	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORSAllowedOrigins,
			AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
			ExposeHeaders:    []string{"X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	authed := []gin.HandlerFunc{
		middleware.AuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer),
		middleware.SessionGuard(services.Session),
	}

	v1 := r.Group("/api/v1")
	registerAuthRoutes(v1, newAuthHandler(services.Session, services.Accounts, cfg), middleware.RateLimit(loginLimiter), authed...)

	customer := v1.Group("", authed...)
	registerMeRoutes(customer, &meHandler{accounts: services.Accounts, query: services.Query, now: time.Now})
	registerPaymentRoutes(customer, &paymentsHandler{payments: services.Operations})

	admin := v1.Group("", append(authed, middleware.RequireAdminPortal())...)
	registerAdminRoutes(admin, &adminHandler{accounts: services.Accounts, operations: services.Operations, query: services.Query})

	return nil
}
