package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/iho/finacct/internal/domain"
)

// ExchangeRateUseCase derives effective exchange rates from amounts already
// posted to the ledger, rather than from a rate table. A payment or invoice
// that was settled in another currency leaves behind an entry line whose
// original and settled amounts imply the conversion that actually happened.
type ExchangeRateUseCase struct {
	ledgerRepo LedgerRepository
}

// NewExchangeRateUseCase creates a new ExchangeRateUseCase.
func NewExchangeRateUseCase(ledgerRepo LedgerRepository) *ExchangeRateUseCase {
	return &ExchangeRateUseCase{ledgerRepo: ledgerRepo}
}

// PurchaseInvoiceRate resolves the conversion rate applied when the
// application's invoice was posted as a purchase invoice.
func (uc *ExchangeRateUseCase) PurchaseInvoiceRate(ctx context.Context, app *domain.PaymentApplication) (decimal.Decimal, error) {
	entry, err := uc.ledgerRepo.FindEntry(ctx, LedgerEntryFilter{
		GlAccountTypeID:  domain.GlAccountTypePayable,
		DebitCreditFlag:  domain.FlagCredit,
		AcctgTransTypeID: domain.AcctgTransPurchaseInvoice,
		InvoiceID:        app.InvoiceID,
	})
	if err != nil {
		return decimal.Decimal{}, err
	}

	return rateFromEntry(entry), nil
}

// OutgoingPaymentRate resolves the conversion rate applied when the
// application's payment was posted as an outgoing payment.
func (uc *ExchangeRateUseCase) OutgoingPaymentRate(ctx context.Context, app *domain.PaymentApplication) (decimal.Decimal, error) {
	entry, err := uc.ledgerRepo.FindEntry(ctx, LedgerEntryFilter{
		GlAccountTypeID:  domain.GlAccountTypePayable,
		DebitCreditFlag:  domain.FlagDebit,
		AcctgTransTypeID: domain.AcctgTransOutgoingPayment,
		PaymentID:        app.PaymentID,
	})
	if err != nil {
		return decimal.Decimal{}, err
	}

	return rateFromEntry(entry), nil
}

// rateFromEntry computes settled/original from a single entry line. The
// rate is exactly 1 when there is no line, when either amount is absent or
// zero, or when the two are equal: in all those cases no conversion is
// known to have happened, or the data is insufficient to compute one.
func rateFromEntry(entry *domain.AcctgTransEntry) decimal.Decimal {
	one := decimal.NewFromInt(1)

	if entry == nil {
		return one
	}
	if entry.OrigAmount == nil || entry.Amount == nil {
		return one
	}
	if entry.OrigAmount.IsZero() || entry.Amount.IsZero() {
		return one
	}
	if entry.OrigAmount.Equal(*entry.Amount) {
		return one
	}

	return entry.Amount.Div(*entry.OrigAmount)
}
