package services

import (
	portssvc "github.com/SscSPs/cashit_ledger/internal/core/ports/services"
)

// NewServiceContainer creates a service container whose services share one ledger.
func NewServiceContainer(ledger *Ledger) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Session:    NewSessionService(ledger),
		Accounts:   NewAccountService(ledger),
		Operations: NewOperationsService(ledger),
		Query:      NewQueryService(ledger),
	}
}
