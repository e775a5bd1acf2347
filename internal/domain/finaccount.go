package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// FinAccountStatus is a financial account's lifecycle state.
type FinAccountStatus string

const (
	FinAccountStatusActive    FinAccountStatus = "active"
	FinAccountStatusFrozen    FinAccountStatus = "manually-frozen"
	FinAccountStatusCancelled FinAccountStatus = "cancelled"
)

// FinAccount is a financial account owned by a party. Deposits and
// withdrawals are recorded against it as FinAccountTrans rows.
type FinAccount struct {
	ID           string
	Status       FinAccountStatus
	OwnerPartyID string
	Currency     string
	Name         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CanTransact reports whether new transactions may be created against the
// account.
func (a *FinAccount) CanTransact() error {
	switch a.Status {
	case FinAccountStatusFrozen:
		return ErrFinAccountFrozen
	case FinAccountStatusCancelled:
		return ErrFinAccountCancelled
	default:
		return nil
	}
}

// FinAccountTransType distinguishes deposits from withdrawals.
type FinAccountTransType string

const (
	FinAccountTransDeposit    FinAccountTransType = "deposit"
	FinAccountTransWithdrawal FinAccountTransType = "withdrawal"
)

// FinAccountTransStatus is a transaction's lifecycle state.
type FinAccountTransStatus string

const (
	FinAccountTransCreated  FinAccountTransStatus = "created"
	FinAccountTransApproved FinAccountTransStatus = "approved"
)

// FinAccountTrans is a deposit or withdrawal against a financial account,
// distinct from a general-ledger posting but optionally linked to one.
// Identity is immutable once a sequence id is assigned.
type FinAccountTrans struct {
	ID              string
	FinAccountID    string
	Type            FinAccountTransType
	Status          FinAccountTransStatus
	PartyID         string
	PaymentID       *string
	Amount          decimal.Decimal
	TransactionDate time.Time
	EntryDate       time.Time
	Comments        string
}
