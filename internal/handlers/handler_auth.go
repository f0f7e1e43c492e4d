package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/cashit_ledger/internal/core/ports/services"
	"github.com/SscSPs/cashit_ledger/internal/dto"
	"github.com/SscSPs/cashit_ledger/internal/middleware"
	"github.com/SscSPs/cashit_ledger/internal/platform/config"
	"github.com/SscSPs/cashit_ledger/internal/utils"
	"github.com/gin-gonic/gin"
)

// authHandler handles registration, login and logout.
type authHandler struct {
	sessions portssvc.SessionSvc
	accounts portssvc.AccountSvcFacade
	cfg      *config.Config
}

func newAuthHandler(sessions portssvc.SessionSvc, accounts portssvc.AccountSvcFacade, cfg *config.Config) *authHandler {
	return &authHandler{sessions: sessions, accounts: accounts, cfg: cfg}
}

// registerAuthRoutes sets up the routes for authentication.
func registerAuthRoutes(rg *gin.RouterGroup, h *authHandler, loginLimit gin.HandlerFunc, authed ...gin.HandlerFunc) {
	auth := rg.Group("/auth")
	{
		auth.POST("/register", h.register)
		auth.POST("/login", loginLimit, h.customerLogin)
		auth.POST("/admin/login", loginLimit, h.adminLogin)
		auth.POST("/logout", append(authed, h.logout)...)
	}
}

func (h *authHandler) register(c *gin.Context) {
	var req dto.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	acc, res := h.accounts.Register(c.Request.Context(), req.Name, req.NationalID, req.Secret)
	if !res.Success {
		respondResult(c, http.StatusCreated, res, nil)
		return
	}
	respondResult(c, http.StatusCreated, res, gin.H{"account": dto.ToAccountResponse(*acc)})
}

func (h *authHandler) customerLogin(c *gin.Context) {
	h.login(c, false)
}

func (h *authHandler) adminLogin(c *gin.Context) {
	h.login(c, true)
}

func (h *authHandler) login(c *gin.Context, adminPortal bool) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	acc, res := h.sessions.Login(c.Request.Context(), req.NationalID, req.Secret, adminPortal)
	if !res.Success {
		logger.Info("Login rejected", slog.Bool("admin_portal", adminPortal), slog.String("reason", res.Message))
		respondResult(c, http.StatusOK, res, nil)
		return
	}

	portal := utils.PortalCustomer
	if adminPortal {
		portal = utils.PortalAdmin
	}
	token, err := utils.GenerateJWT(acc.ID, portal, h.cfg.JWTSecret, h.cfg.JWTExpiryDuration, h.cfg.JWTIssuer)
	if err != nil {
		logger.Error("Failed to sign JWT token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Success: true,
		Message: res.Message,
		Token:   token,
		Account: dto.ToAccountResponse(*acc),
	})
}

func (h *authHandler) logout(c *gin.Context) {
	respondResult(c, http.StatusOK, h.sessions.Logout(c.Request.Context()), nil)
}
