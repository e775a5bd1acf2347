package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Debit/credit flags on ledger entry lines.
const (
	FlagDebit  = "D"
	FlagCredit = "C"
)

// Ledger transaction type tags this core filters on.
const (
	AcctgTransPurchaseInvoice = "PURCHASE_INVOICE"
	AcctgTransOutgoingPayment = "OUTGOING_PAYMENT"
)

// GL account type tags this core filters on.
const (
	GlAccountTypePayable = "ACCOUNTS_PAYABLE"
)

// AcctgTrans is a posted ledger transaction header. Posted transactions
// are immutable; this core reads them and never writes.
type AcctgTrans struct {
	ID         string
	TransType  string
	InvoiceID  *string
	PaymentID  *string
	PostedDate time.Time
}

// AcctgTransEntry is a single debit/credit line of a ledger transaction.
// OrigAmount is in the transaction's native currency, Amount is the
// settled amount in the ledger's base currency. Either may be absent on
// lines posted without conversion data.
type AcctgTransEntry struct {
	ID              string
	AcctgTransID    string
	GlAccountID     string
	GlAccountTypeID string
	DebitCreditFlag string
	OrigAmount      *decimal.Decimal
	Amount          *decimal.Decimal
}
