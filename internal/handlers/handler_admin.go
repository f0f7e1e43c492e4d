package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/cashit_ledger/internal/core/ports/services"
	"github.com/SscSPs/cashit_ledger/internal/dto"
	"github.com/gin-gonic/gin"
)

// adminHandler backs the administrator console.
type adminHandler struct {
	accounts   portssvc.AccountSvcFacade
	operations portssvc.AdminOperationsSvc
	query      portssvc.QuerySvc
}

func registerAdminRoutes(rg *gin.RouterGroup, h *adminHandler) {
	accounts := rg.Group("/admin/accounts")
	{
		accounts.GET("", h.listAccounts)
		accounts.POST("/:accountID/toggle", h.toggleActive)
		accounts.POST("/:accountID/funds", h.addFunds)
		accounts.POST("/:accountID/tax", h.deductTax)
		accounts.GET("/:accountID/transactions", h.transactions)
	}
}

func (h *adminHandler) listAccounts(c *gin.Context) {
	accounts := h.accounts.ListAccounts(c.Request.Context(), false)
	c.JSON(http.StatusOK, gin.H{"accounts": dto.ToAccountResponses(accounts)})
}

func (h *adminHandler) toggleActive(c *gin.Context) {
	respondResult(c, http.StatusOK, h.accounts.ToggleActive(c.Request.Context(), c.Param("accountID")), nil)
}

func (h *adminHandler) addFunds(c *gin.Context) {
	var req dto.AdminAmountRequest
	if !bindJSON(c, &req) {
		return
	}
	amount, ok := bindAmount(c, req.Amount)
	if !ok {
		return
	}
	respondResult(c, http.StatusOK, h.operations.AdminAddFunds(c.Request.Context(), c.Param("accountID"), amount), nil)
}

func (h *adminHandler) deductTax(c *gin.Context) {
	var req dto.AdminAmountRequest
	if !bindJSON(c, &req) {
		return
	}
	amount, ok := bindAmount(c, req.Amount)
	if !ok {
		return
	}
	respondResult(c, http.StatusOK, h.operations.AdminDeductTax(c.Request.Context(), c.Param("accountID"), amount), nil)
}

func (h *adminHandler) transactions(c *gin.Context) {
	accountID := c.Param("accountID")
	if _, ok := h.accounts.FindByID(c.Request.Context(), accountID); !ok {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
		return
	}
	txs := h.query.TransactionsFor(c.Request.Context(), accountID)
	c.JSON(http.StatusOK, gin.H{"transactions": dto.ToTransactionResponses(txs)})
}
