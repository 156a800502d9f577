package apperrors

import (
	"errors"
	"net/http"
)

// Kind identifies one variant of the closed application error set. Every error
// the core raises carries exactly one Kind; the handler layer maps kinds to
// HTTP status codes through the fixed table below.
type Kind int

const (
	// Request-shape violations.
	KindInvalidAmount Kind = iota
	KindSameAccount
	KindNegativeDeposit

	// Missing entities.
	KindCustomerNotFound
	KindAccountNotFound
	KindTransferNotFound

	// Business-rule violations.
	KindAccountNotActive
	KindInsufficientFunds

	// Storage-constraint violations.
	KindDuplicateIdempotencyKey
	KindConstraintViolation

	// Any other storage failure.
	KindDatabase
)

func (k Kind) String() string {
	switch k {
	case KindInvalidAmount:
		return "invalid amount"
	case KindSameAccount:
		return "same account"
	case KindNegativeDeposit:
		return "negative deposit"
	case KindCustomerNotFound:
		return "customer not found"
	case KindAccountNotFound:
		return "account not found"
	case KindTransferNotFound:
		return "transfer not found"
	case KindAccountNotActive:
		return "account not active"
	case KindInsufficientFunds:
		return "insufficient funds"
	case KindDuplicateIdempotencyKey:
		return "duplicate idempotency key"
	case KindConstraintViolation:
		return "constraint violation"
	default:
		return "database error"
	}
}

// HTTPStatus returns the response status for this kind.
func (k Kind) HTTPStatus() int {
	switch k {
	case KindInvalidAmount, KindSameAccount, KindNegativeDeposit,
		KindAccountNotActive, KindInsufficientFunds,
		KindDuplicateIdempotencyKey, KindConstraintViolation:
		return http.StatusBadRequest
	case KindCustomerNotFound, KindAccountNotFound, KindTransferNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// AppError is the error type raised by services and repositories. Detail is
// safe for clients; Err holds the underlying cause for logs only.
type AppError struct {
	Kind   Kind
	Detail string
	Err    error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Kind.String() + ": " + e.Detail + ": " + e.Err.Error()
	}
	return e.Kind.String() + ": " + e.Detail
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates an AppError without an underlying cause.
func New(kind Kind, detail string) *AppError {
	return &AppError{Kind: kind, Detail: detail}
}

// Wrap creates an AppError that records the underlying cause.
func Wrap(kind Kind, detail string, err error) *AppError {
	return &AppError{Kind: kind, Detail: detail, Err: err}
}

// KindOf extracts the Kind from an error chain. The second return is false
// when the chain contains no AppError.
func KindOf(err error) (Kind, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind, true
	}
	return KindDatabase, false
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}
