package apperrors

import (
	"errors"
	"fmt"
)

// Error kinds. Every AppError unwraps to exactly one of these.
var (
	// ErrValidation indicates that input data failed validation checks.
	ErrValidation = errors.New("validation error")
	// ErrAuth indicates that a principal could not be authenticated or is not allowed in.
	ErrAuth = errors.New("authentication error")
	// ErrState indicates that the ledger is not in a state that allows the operation.
	ErrState = errors.New("state error")
	// ErrFunds indicates that an account cannot cover a debit.
	ErrFunds = errors.New("funds error")
	// ErrLookup indicates that a referenced record could not be resolved.
	ErrLookup = errors.New("lookup error")
	// ErrStorage indicates that the persistence medium failed.
	ErrStorage = errors.New("storage error")
)

// Reasons, grouped by kind.
var (
	ErrDuplicateIdentity = errors.New("national identity already registered")
	ErrSelfTransfer      = errors.New("transfer to self")
	ErrMalformedAmount   = errors.New("malformed amount")
	ErrSecretMismatch    = errors.New("secrets do not match")
	ErrWeakSecret        = errors.New("secret too short")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDeactivated        = errors.New("account deactivated")
	ErrRoleMismatch       = errors.New("role does not match portal")

	ErrNoSession = errors.New("no active session")

	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrNotFound indicates that a requested resource could not be found.
	// KV adapters also return it when a key is absent.
	ErrNotFound = errors.New("resource not found")
)

// AppError is a classified failure. Message is safe to show to an end user.
type AppError struct {
	Kind    error
	Reason  error
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap exposes kind, reason and cause to errors.Is / errors.As.
func (e *AppError) Unwrap() []error {
	errs := make([]error, 0, 3)
	for _, err := range []error{e.Reason, e.Kind, e.Err} {
		if err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

// New builds an AppError of the given kind and reason.
func New(kind, reason error, message string) *AppError {
	return &AppError{Kind: kind, Reason: reason, Message: message}
}

// Wrap builds an AppError carrying an underlying cause.
func Wrap(kind, reason error, message string, cause error) *AppError {
	return &AppError{Kind: kind, Reason: reason, Message: message, Err: cause}
}

func Validation(reason error, message string) *AppError { return New(ErrValidation, reason, message) }
func Auth(reason error, message string) *AppError       { return New(ErrAuth, reason, message) }
func NotFound(message string) *AppError                 { return New(ErrLookup, ErrNotFound, message) }
func NoSession() *AppError                              { return New(ErrState, ErrNoSession, "Session expired") }
func Insufficient(message string) *AppError             { return New(ErrFunds, ErrInsufficientFunds, message) }

// Storage wraps a persistence failure with a generic user-facing message.
func Storage(cause error) *AppError {
	return Wrap(ErrStorage, nil, "Operation failed, please try again", cause)
}

// MessageOf returns the user-facing message of err. Unclassified errors get a generic one.
func MessageOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "Something went wrong"
}
