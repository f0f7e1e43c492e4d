package handlers

import (
	"net/http"
	"time"

	portssvc "github.com/SscSPs/cashit_ledger/internal/core/ports/services"
	"github.com/SscSPs/cashit_ledger/internal/dto"
	"github.com/SscSPs/cashit_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// meHandler serves the session principal's own views.
type meHandler struct {
	accounts portssvc.AccountSvcFacade
	query    portssvc.QuerySvc
	now      func() time.Time
}

func registerMeRoutes(rg *gin.RouterGroup, h *meHandler) {
	me := rg.Group("/me")
	{
		me.GET("", h.dashboard)
		me.GET("/transactions", h.transactions)
		me.POST("/secret", h.changeSecret)
	}
}

func (h *meHandler) dashboard(c *gin.Context) {
	principal, _ := middleware.GetPrincipalFromContext(c)

	dash, ok := h.query.Dashboard(c.Request.Context(), principal.ID, h.now())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Session expired"})
		return
	}
	c.JSON(http.StatusOK, dto.ToDashboardResponse(*dash))
}

func (h *meHandler) transactions(c *gin.Context) {
	principal, _ := middleware.GetPrincipalFromContext(c)
	txs := h.query.TransactionsFor(c.Request.Context(), principal.ID)
	c.JSON(http.StatusOK, gin.H{"transactions": dto.ToTransactionResponses(txs)})
}

func (h *meHandler) changeSecret(c *gin.Context) {
	var req dto.ChangeSecretRequest
	if !bindJSON(c, &req) {
		return
	}
	respondResult(c, http.StatusOK, h.accounts.ChangeSecret(c.Request.Context(), req.Current, req.New, req.Confirm), nil)
}
