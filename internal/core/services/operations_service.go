package services

import (
	"context"
	"fmt"

	"github.com/SscSPs/cashit_ledger/internal/apperrors"
	"github.com/SscSPs/cashit_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/cashit_ledger/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

type operationsService struct {
	BaseService
	ledger *Ledger
}

// NewOperationsService creates the financial operations engine over ledger.
func NewOperationsService(ledger *Ledger) portssvc.OperationsSvcFacade {
	return &operationsService{ledger: ledger}
}

var _ portssvc.OperationsSvcFacade = (*operationsService)(nil)

// debit is the shared skeleton of every payment made by the session principal:
// session, amount, then funds, then one debit entry.
func (s *operationsService) debit(ctx context.Context, op string, amount decimal.Decimal, kind domain.TransactionKind, description, message string) domain.Result {
	return s.ledger.update(ctx, op, func(tx *ledgerTx) (string, error) {
		payer, err := tx.principal()
		if err != nil {
			return "", err
		}
		if err := domain.ValidateAmount(amount); err != nil {
			return "", err
		}
		if payer.Balance.LessThan(amount) {
			return "", apperrors.Insufficient("Insufficient funds")
		}
		if err := tx.updateBalance(payer.ID, amount.Neg()); err != nil {
			return "", err
		}
		tx.record(payer.ID, kind, amount, description, true)
		return message, nil
	})
}

func (s *operationsService) Transfer(ctx context.Context, amount decimal.Decimal, recipientNationalID string) domain.Result {
	return s.ledger.update(ctx, "transfer", func(tx *ledgerTx) (string, error) {
		sender, err := tx.principal()
		if err != nil {
			return "", err
		}
		if err := domain.ValidateAmount(amount); err != nil {
			return "", err
		}
		idx := indexOfNationalID(tx.accounts, recipientNationalID)
		if idx < 0 {
			return "", apperrors.NotFound("Recipient CNIC not found")
		}
		recipient := tx.accounts[idx]
		if recipient.ID == sender.ID {
			return "", apperrors.Validation(apperrors.ErrSelfTransfer, "Cannot transfer to self")
		}
		if sender.Balance.LessThan(amount) {
			return "", apperrors.Insufficient("Insufficient funds")
		}

		if err := tx.updateBalance(sender.ID, amount.Neg()); err != nil {
			return "", err
		}
		if err := tx.updateBalance(recipient.ID, amount); err != nil {
			return "", err
		}
		tx.record(sender.ID, domain.KindTransfer, amount, "Transfer to "+recipient.Name, true)
		tx.record(recipient.ID, domain.KindDeposit, amount, "Received from "+sender.Name, false)
		return "Transfer successful", nil
	})
}

func (s *operationsService) PayBill(ctx context.Context, amount decimal.Decimal, billType, consumerID string) domain.Result {
	desc := fmt.Sprintf("%s Bill (Consumer ID: %s)", billType, consumerID)
	return s.debit(ctx, "pay_bill", amount, domain.KindBill, desc, "Bill paid successfully")
}

func (s *operationsService) PayTax(ctx context.Context, amount decimal.Decimal, taxID string) domain.Result {
	desc := fmt.Sprintf("Tax Payment (PSID: %s)", taxID)
	return s.debit(ctx, "pay_tax", amount, domain.KindTax, desc, "Tax paid successfully")
}

func (s *operationsService) PayChallan(ctx context.Context, amount decimal.Decimal, challanNumber, psid string) domain.Result {
	desc := fmt.Sprintf("Challan Payment (%s, PSID: %s)", challanNumber, psid)
	return s.debit(ctx, "pay_challan", amount, domain.KindChallan, desc, "Challan paid successfully")
}

func (s *operationsService) PayFee(ctx context.Context, amount decimal.Decimal, institute, rollNo, psid string) domain.Result {
	desc := fmt.Sprintf("Fee Payment (%s, Roll No: %s, PSID: %s)", institute, rollNo, psid)
	return s.debit(ctx, "pay_fee", amount, domain.KindFee, desc, "Fee paid successfully")
}

func (s *operationsService) AdminAddFunds(ctx context.Context, accountID string, amount decimal.Decimal) domain.Result {
	return s.ledger.update(ctx, "admin_add_funds", func(tx *ledgerTx) (string, error) {
		if _, err := tx.requireAdmin(); err != nil {
			return "", err
		}
		if err := domain.ValidateAmount(amount); err != nil {
			return "", err
		}
		target, err := tx.account(accountID, "User not found")
		if err != nil {
			return "", err
		}
		if err := tx.updateBalance(target.ID, amount); err != nil {
			return "", err
		}
		tx.record(target.ID, domain.KindDeposit, amount, "Admin Deposit", false)
		return "Funds added successfully", nil
	})
}

func (s *operationsService) AdminDeductTax(ctx context.Context, accountID string, amount decimal.Decimal) domain.Result {
	return s.ledger.update(ctx, "admin_deduct_tax", func(tx *ledgerTx) (string, error) {
		if _, err := tx.requireAdmin(); err != nil {
			return "", err
		}
		if err := domain.ValidateAmount(amount); err != nil {
			return "", err
		}
		target, err := tx.account(accountID, "User not found")
		if err != nil {
			return "", err
		}
		if target.Balance.LessThan(amount) {
			return "", apperrors.Insufficient("Insufficient user funds")
		}
		if err := tx.updateBalance(target.ID, amount.Neg()); err != nil {
			return "", err
		}
		tx.record(target.ID, domain.KindTax, amount, "Admin Tax Deduction", true)
		return "Tax deducted successfully", nil
	})
}
