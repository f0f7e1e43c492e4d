package services

// ServiceContainer holds instances of all the ledger services.
// Handlers and CLI commands reach the core only through it.
type ServiceContainer struct {
	Session    SessionSvc
	Accounts   AccountSvcFacade
	Operations OperationsSvcFacade
	Query      QuerySvc
}
