package domain

import "errors"

// Not-found errors: a referenced entity is absent.
var (
	ErrPaymentNotFound         = errors.New("payment not found")
	ErrInvoiceNotFound         = errors.New("invoice not found")
	ErrFinAccountNotFound      = errors.New("financial account not found")
	ErrGlAccountNotFound       = errors.New("gl account not found")
	ErrFinAccountTransNotFound = errors.New("financial account transaction not found")
)

// Invalid-state errors: the entity exists but its state forbids the operation.
var (
	ErrFinAccountFrozen      = errors.New("financial account is manually frozen")
	ErrFinAccountCancelled   = errors.New("financial account is cancelled")
	ErrPaymentAlreadyLinked  = errors.New("payment is already linked to a financial account transaction")
	ErrPaymentWrongStatus    = errors.New("payment is not in a sent or received status")
	ErrGroupRequiresReceived = errors.New("grouped deposit accepts only received payments")
)

// Integrity faults: a broken reference where absence is not a valid outcome.
var (
	ErrGlAccountClassNotFound = errors.New("gl account references a missing account class")
	ErrGlAccountClassCycle    = errors.New("cycle detected in gl account class hierarchy")
)

// Validation faults.
var (
	ErrNoPaymentIDs  = errors.New("no payment ids supplied")
	ErrNegativeScale = errors.New("decimal scale must be non-negative")
	ErrInvalidAmount = errors.New("amount must be positive")
)

// Downstream failures: an external collaborator reported failure.
var (
	ErrGlPostingFailed     = errors.New("gl posting failed")
	ErrPaymentUpdateFailed = errors.New("payment status update failed")
	ErrPaymentGroupFailed  = errors.New("payment group creation failed")
)
