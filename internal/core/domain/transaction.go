package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind classifies a ledger entry.
type TransactionKind string

const (
	KindTransfer TransactionKind = "transfer"
	KindDeposit  TransactionKind = "deposit"
	KindBill     TransactionKind = "bill"
	KindTax      TransactionKind = "tax"
	KindChallan  TransactionKind = "challan"
	KindFee      TransactionKind = "fee"
)

// Transaction is one immutable entry of the ledger, affecting one account.
type Transaction struct {
	ID          string          `json:"id"`
	AccountID   string          `json:"accountId"`
	Timestamp   time.Time       `json:"timestamp"`
	Kind        TransactionKind `json:"kind"`
	Amount      decimal.Decimal `json:"amount"` // always non-negative; IsDebit carries the direction
	Description string          `json:"description"`
	IsDebit     bool            `json:"isDebit"`
	Sequence    int64           `json:"sequence"` // creation order, breaks timestamp ties
}

// SignedAmount returns the effect of the entry on its account's balance.
func (t Transaction) SignedAmount() decimal.Decimal {
	if t.IsDebit {
		return t.Amount.Neg()
	}
	return t.Amount
}
