package services

import (
	"context"

	"github.com/SscSPs/cashit_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PaymentSvc defines the debit operations available to the session principal.
type PaymentSvc interface {
	Transfer(ctx context.Context, amount decimal.Decimal, recipientNationalID string) domain.Result
	PayBill(ctx context.Context, amount decimal.Decimal, billType, consumerID string) domain.Result
	PayTax(ctx context.Context, amount decimal.Decimal, taxID string) domain.Result
	PayChallan(ctx context.Context, amount decimal.Decimal, challanNumber, psid string) domain.Result
	PayFee(ctx context.Context, amount decimal.Decimal, institute, rollNo, psid string) domain.Result
}

// AdminOperationsSvc defines operations an administrator runs against any account.
type AdminOperationsSvc interface {
	AdminAddFunds(ctx context.Context, accountID string, amount decimal.Decimal) domain.Result
	AdminDeductTax(ctx context.Context, accountID string, amount decimal.Decimal) domain.Result
}

// OperationsSvcFacade combines the financial operations engine interfaces.
type OperationsSvcFacade interface {
	PaymentSvc
	AdminOperationsSvc
}
