package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/cashit_ledger/internal/core/ports/services"
	"github.com/SscSPs/cashit_ledger/internal/dto"
	"github.com/gin-gonic/gin"
)

// paymentsHandler exposes the debit operations of the session principal.
type paymentsHandler struct {
	payments portssvc.PaymentSvc
}

func registerPaymentRoutes(rg *gin.RouterGroup, h *paymentsHandler) {
	payments := rg.Group("/payments")
	{
		payments.POST("/transfer", h.transfer)
		payments.POST("/bill", h.payBill)
		payments.POST("/tax", h.payTax)
		payments.POST("/challan", h.payChallan)
		payments.POST("/fee", h.payFee)
	}
}

func (h *paymentsHandler) transfer(c *gin.Context) {
	var req dto.TransferRequest
	if !bindJSON(c, &req) {
		return
	}
	amount, ok := bindAmount(c, req.Amount)
	if !ok {
		return
	}
	respondResult(c, http.StatusOK, h.payments.Transfer(c.Request.Context(), amount, req.RecipientNationalID), nil)
}

func (h *paymentsHandler) payBill(c *gin.Context) {
	var req dto.BillRequest
	if !bindJSON(c, &req) {
		return
	}
	amount, ok := bindAmount(c, req.Amount)
	if !ok {
		return
	}
	respondResult(c, http.StatusOK, h.payments.PayBill(c.Request.Context(), amount, req.BillType, req.ConsumerID), nil)
}

func (h *paymentsHandler) payTax(c *gin.Context) {
	var req dto.TaxRequest
	if !bindJSON(c, &req) {
		return
	}
	amount, ok := bindAmount(c, req.Amount)
	if !ok {
		return
	}
	respondResult(c, http.StatusOK, h.payments.PayTax(c.Request.Context(), amount, req.TaxID), nil)
}

func (h *paymentsHandler) payChallan(c *gin.Context) {
	var req dto.ChallanRequest
	if !bindJSON(c, &req) {
		return
	}
	amount, ok := bindAmount(c, req.Amount)
	if !ok {
		return
	}
	respondResult(c, http.StatusOK, h.payments.PayChallan(c.Request.Context(), amount, req.ChallanNumber, req.PSID), nil)
}

func (h *paymentsHandler) payFee(c *gin.Context) {
	var req dto.FeeRequest
	if !bindJSON(c, &req) {
		return
	}
	amount, ok := bindAmount(c, req.Amount)
	if !ok {
		return
	}
	respondResult(c, http.StatusOK, h.payments.PayFee(c.Request.Context(), amount, req.Institute, req.RollNo, req.PSID), nil)
}
