package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"github.com/iho/finacct/internal/domain"
	"github.com/iho/finacct/internal/usecase"
	"github.com/iho/finacct/internal/usecase/mocks"
)

func TestAllocationUseCase_ListUnappliedInvoices(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	paymentRepo := mocks.NewMockPaymentRepository()
	paymentRepo.Put(&domain.Payment{
		ID:          "pay-1",
		Status:      domain.PaymentStatusReceived,
		Amount:      decimal.NewFromInt(100),
		Currency:    "USD",
		PartyIDFrom: "buyer",
		PartyIDTo:   "seller",
	})

	appRepo := mocks.NewMockPaymentApplicationRepository()

	invoiceRepo := mocks.NewMockInvoiceRepository()
	invoiceRepo.ListOpenFunc = func(ctx context.Context, q usecase.OpenInvoiceQuery) ([]*domain.Invoice, error) {
		want := usecase.OpenInvoiceQuery{PartyIDFrom: "seller", PartyID: "buyer", Currency: "USD"}
		if q != want {
			t.Errorf("expected query %+v, got %+v", want, q)
		}
		return []*domain.Invoice{
			{ID: "inv-1", Status: domain.InvoiceStatusReady, Currency: "USD", PartyIDFrom: "seller", PartyID: "buyer"},
			{ID: "inv-2", Status: domain.InvoiceStatusReady, Currency: "USD", PartyIDFrom: "seller", PartyID: "buyer"},
		}, nil
	}

	calc := mocks.NewMockInvoiceCalculator(ctrl)
	calc.EXPECT().Total(gomock.Any(), "inv-1", false).Return(decimal.NewFromInt(40), nil)
	calc.EXPECT().Applied(gomock.Any(), "inv-1", gomock.Any(), false).Return(decimal.Zero, nil)
	calc.EXPECT().Total(gomock.Any(), "inv-2", false).Return(decimal.NewFromInt(80), nil)
	calc.EXPECT().Applied(gomock.Any(), "inv-2", gomock.Any(), false).Return(decimal.Zero, nil)

	uc := usecase.NewAllocationUseCase(nil, paymentRepo, appRepo, invoiceRepo, calc, nil, nil, nil, nil, nil)

	result, err := uc.ListUnappliedInvoices(context.Background(), "pay-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Invoices) != 2 {
		t.Fatalf("expected 2 proposals, got %d", len(result.Invoices))
	}

	// Both proposals see the full payment remaining; the cap is not
	// decremented from one invoice to the next.
	if !result.Invoices[0].AmountToApply.Equal(decimal.NewFromInt(40)) {
		t.Errorf("expected 40 for inv-1, got %s", result.Invoices[0].AmountToApply)
	}
	if !result.Invoices[1].AmountToApply.Equal(decimal.NewFromInt(80)) {
		t.Errorf("expected 80 for inv-2, got %s", result.Invoices[1].AmountToApply)
	}
	if len(result.InvoicesOtherCurrency) != 0 {
		t.Errorf("expected no secondary set, got %d", len(result.InvoicesOtherCurrency))
	}
}

func TestAllocationUseCase_ListUnappliedInvoices_PriorApplicationsReduceCap(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	paymentRepo := mocks.NewMockPaymentRepository()
	paymentRepo.Put(&domain.Payment{
		ID:          "pay-1",
		Status:      domain.PaymentStatusReceived,
		Amount:      decimal.NewFromInt(100),
		Currency:    "USD",
		PartyIDFrom: "buyer",
		PartyIDTo:   "seller",
	})

	appRepo := mocks.NewMockPaymentApplicationRepository()
	appRepo.Add(&domain.PaymentApplication{
		ID:            "app-1",
		PaymentID:     "pay-1",
		InvoiceID:     "inv-0",
		AmountApplied: decimal.NewFromInt(70),
	})

	invoiceRepo := mocks.NewMockInvoiceRepository()
	invoiceRepo.Put(&domain.Invoice{
		ID:          "inv-1",
		Status:      domain.InvoiceStatusReady,
		Currency:    "USD",
		PartyIDFrom: "seller",
		PartyID:     "buyer",
	})

	calc := mocks.NewMockInvoiceCalculator(ctrl)
	calc.EXPECT().Total(gomock.Any(), "inv-1", false).Return(decimal.NewFromInt(40), nil)
	calc.EXPECT().Applied(gomock.Any(), "inv-1", gomock.Any(), false).Return(decimal.Zero, nil)

	uc := usecase.NewAllocationUseCase(nil, paymentRepo, appRepo, invoiceRepo, calc, nil, nil, nil, nil, nil)

	result, err := uc.ListUnappliedInvoices(context.Background(), "pay-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Invoices) != 1 {
		t.Fatalf("expected 1 proposal, got %d", len(result.Invoices))
	}
	if !result.Invoices[0].AmountToApply.Equal(decimal.NewFromInt(30)) {
		t.Errorf("expected remaining 30, got %s", result.Invoices[0].AmountToApply)
	}
}

func TestAllocationUseCase_ListUnappliedInvoices_FullyAppliedPayment(t *testing.T) {
	paymentRepo := mocks.NewMockPaymentRepository()
	paymentRepo.Put(&domain.Payment{
		ID:          "pay-1",
		Status:      domain.PaymentStatusReceived,
		Amount:      decimal.NewFromInt(100),
		Currency:    "USD",
		PartyIDFrom: "buyer",
		PartyIDTo:   "seller",
	})

	appRepo := mocks.NewMockPaymentApplicationRepository()
	appRepo.Add(&domain.PaymentApplication{
		ID:            "app-1",
		PaymentID:     "pay-1",
		InvoiceID:     "inv-0",
		AmountApplied: decimal.NewFromInt(100),
	})

	invoiceRepo := mocks.NewMockInvoiceRepository()
	invoiceRepo.ListOpenFunc = func(ctx context.Context, q usecase.OpenInvoiceQuery) ([]*domain.Invoice, error) {
		t.Error("expected no invoice listing for a fully applied payment")
		return nil, nil
	}

	uc := usecase.NewAllocationUseCase(nil, paymentRepo, appRepo, invoiceRepo, nil, nil, nil, nil, nil, nil)

	result, err := uc.ListUnappliedInvoices(context.Background(), "pay-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Invoices) != 0 {
		t.Errorf("expected no proposals, got %d", len(result.Invoices))
	}
}

func TestAllocationUseCase_ListUnappliedInvoices_ActualCurrency(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	actual := decimal.NewFromInt(90)
	paymentRepo := mocks.NewMockPaymentRepository()
	paymentRepo.Put(&domain.Payment{
		ID:             "pay-1",
		Status:         domain.PaymentStatusReceived,
		Amount:         decimal.NewFromInt(100),
		Currency:       "USD",
		ActualAmount:   &actual,
		ActualCurrency: "EUR",
		PartyIDFrom:    "buyer",
		PartyIDTo:      "seller",
	})

	appRepo := mocks.NewMockPaymentApplicationRepository()

	invoiceRepo := mocks.NewMockInvoiceRepository()
	invoiceRepo.ListOpenFunc = func(ctx context.Context, q usecase.OpenInvoiceQuery) ([]*domain.Invoice, error) {
		if q.Currency == "EUR" {
			return []*domain.Invoice{
				{ID: "inv-eur", Status: domain.InvoiceStatusReady, Currency: "EUR", PartyIDFrom: "seller", PartyID: "buyer"},
			}, nil
		}
		return nil, nil
	}

	calc := mocks.NewMockInvoiceCalculator(ctrl)
	calc.EXPECT().Total(gomock.Any(), "inv-eur", true).Return(decimal.NewFromInt(50), nil)
	calc.EXPECT().Applied(gomock.Any(), "inv-eur", gomock.Any(), true).Return(decimal.Zero, nil)

	uc := usecase.NewAllocationUseCase(nil, paymentRepo, appRepo, invoiceRepo, calc, nil, nil, nil, nil, nil)

	result, err := uc.ListUnappliedInvoices(context.Background(), "pay-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Invoices) != 0 {
		t.Errorf("expected empty primary set, got %d", len(result.Invoices))
	}
	if len(result.InvoicesOtherCurrency) != 1 {
		t.Fatalf("expected 1 secondary proposal, got %d", len(result.InvoicesOtherCurrency))
	}
	if !result.InvoicesOtherCurrency[0].AmountToApply.Equal(decimal.NewFromInt(50)) {
		t.Errorf("expected 50 for inv-eur, got %s", result.InvoicesOtherCurrency[0].AmountToApply)
	}
}

func TestAllocationUseCase_ReconcileInvoicePayments(t *testing.T) {
	jan10 := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	feb5 := time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		invoiceStatus domain.InvoiceStatus
		total         decimal.Decimal
		payments      []*domain.Payment
		parentTypes   map[string]string
		amounts       []decimal.Decimal
		wantPaid      bool
		wantPaidDate  time.Time
	}{
		{
			name:          "pays when consistent applications cover the total",
			invoiceStatus: domain.InvoiceStatusReady,
			total:         decimal.NewFromInt(100),
			payments: []*domain.Payment{
				{ID: "pay-1", Status: domain.PaymentStatusReceived, EffectiveDate: jan10},
				{ID: "pay-2", Status: domain.PaymentStatusSent, EffectiveDate: feb5},
			},
			parentTypes: map[string]string{
				"pay-1": domain.PaymentParentReceipt,
				"pay-2": domain.PaymentParentDisbursement,
			},
			amounts:      []decimal.Decimal{decimal.NewFromInt(60), decimal.NewFromInt(40)},
			wantPaid:     true,
			wantPaidDate: feb5,
		},
		{
			name:          "inconsistent applications do not count toward the threshold",
			invoiceStatus: domain.InvoiceStatusReady,
			total:         decimal.NewFromInt(100),
			payments: []*domain.Payment{
				{ID: "pay-1", Status: domain.PaymentStatusReceived, EffectiveDate: jan10},
				{ID: "pay-2", Status: domain.PaymentStatusReceived, EffectiveDate: feb5},
			},
			parentTypes: map[string]string{
				"pay-1": domain.PaymentParentReceipt,
				"pay-2": domain.PaymentParentDisbursement,
			},
			amounts:  []decimal.Decimal{decimal.NewFromInt(60), decimal.NewFromInt(40)},
			wantPaid: false,
		},
		{
			name:          "paid date is the latest across all applications",
			invoiceStatus: domain.InvoiceStatusReady,
			total:         decimal.NewFromInt(60),
			payments: []*domain.Payment{
				{ID: "pay-1", Status: domain.PaymentStatusReceived, EffectiveDate: jan10},
				{ID: "pay-2", Status: domain.PaymentStatusReceived, EffectiveDate: feb5},
			},
			parentTypes: map[string]string{
				"pay-1": domain.PaymentParentReceipt,
				"pay-2": domain.PaymentParentDisbursement,
			},
			amounts:      []decimal.Decimal{decimal.NewFromInt(60), decimal.NewFromInt(40)},
			wantPaid:     true,
			wantPaidDate: feb5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			invoiceRepo := mocks.NewMockInvoiceRepository()
			invoiceRepo.Put(&domain.Invoice{
				ID:          "inv-1",
				Status:      tt.invoiceStatus,
				Currency:    "USD",
				PartyIDFrom: "seller",
				PartyID:     "buyer",
			})

			paymentRepo := mocks.NewMockPaymentRepository()
			appRepo := mocks.NewMockPaymentApplicationRepository()
			for i, payment := range tt.payments {
				paymentRepo.Put(payment)
				appRepo.Add(&domain.PaymentApplication{
					ID:            payment.ID + "-app",
					PaymentID:     payment.ID,
					InvoiceID:     "inv-1",
					AmountApplied: tt.amounts[i],
				})
			}

			classifier := mocks.NewMockPaymentClassifier(ctrl)
			classifier.EXPECT().ParentType(gomock.Any(), gomock.Any()).DoAndReturn(
				func(ctx context.Context, paymentID string) (string, error) {
					return tt.parentTypes[paymentID], nil
				}).AnyTimes()

			calc := mocks.NewMockInvoiceCalculator(ctrl)
			calc.EXPECT().Total(gomock.Any(), "inv-1", false).Return(tt.total, nil).AnyTimes()

			txMgr := mocks.NewMockTransactionManager()
			seqGen := mocks.NewMockSequenceGenerator()

			uc := usecase.NewAllocationUseCase(txMgr, paymentRepo, appRepo, invoiceRepo, calc, classifier, nil, nil, seqGen, nil)

			if err := uc.ReconcileInvoicePayments(context.Background(), "inv-1"); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			invoice, err := invoiceRepo.GetByID(context.Background(), "inv-1")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if tt.wantPaid {
				if invoice.Status != domain.InvoiceStatusPaid {
					t.Fatalf("expected invoice paid, got %s", invoice.Status)
				}
				if invoice.PaidDate == nil || !invoice.PaidDate.Equal(tt.wantPaidDate) {
					t.Errorf("expected paid date %s, got %v", tt.wantPaidDate, invoice.PaidDate)
				}
			} else {
				if invoice.Status != tt.invoiceStatus {
					t.Errorf("expected invoice to stay %s, got %s", tt.invoiceStatus, invoice.Status)
				}
			}
		})
	}
}

func TestAllocationUseCase_ReconcileInvoicePayments_NonReadyNoOp(t *testing.T) {
	invoiceRepo := mocks.NewMockInvoiceRepository()
	invoiceRepo.Put(&domain.Invoice{
		ID:     "inv-1",
		Status: domain.InvoiceStatusSent,
	})

	appRepo := mocks.NewMockPaymentApplicationRepository()
	appRepo.ListByInvoiceFunc = func(ctx context.Context, invoiceID string) ([]*domain.PaymentApplication, error) {
		t.Error("expected no application listing for a non-ready invoice")
		return nil, nil
	}

	uc := usecase.NewAllocationUseCase(nil, nil, appRepo, invoiceRepo, nil, nil, nil, nil, nil, nil)

	if err := uc.ReconcileInvoicePayments(context.Background(), "inv-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestAllocationUseCase_ReconcileInvoicePayments_PendingWinsOverPersisted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	jan10 := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	invoiceRepo := mocks.NewMockInvoiceRepository()
	invoiceRepo.Put(&domain.Invoice{
		ID:     "inv-1",
		Status: domain.InvoiceStatusReady,
	})

	// The persisted store does not hold pay-1 at all; only the pending
	// set does.
	paymentRepo := mocks.NewMockPaymentRepository()

	pending := usecase.NewPendingPaymentSet()
	pending.Put(&domain.Payment{
		ID:            "pay-1",
		Status:        domain.PaymentStatusReceived,
		EffectiveDate: jan10,
	})

	appRepo := mocks.NewMockPaymentApplicationRepository()
	appRepo.Add(&domain.PaymentApplication{
		ID:            "app-1",
		PaymentID:     "pay-1",
		InvoiceID:     "inv-1",
		AmountApplied: decimal.NewFromInt(100),
	})

	classifier := mocks.NewMockPaymentClassifier(ctrl)
	classifier.EXPECT().ParentType(gomock.Any(), "pay-1").Return(domain.PaymentParentReceipt, nil)

	calc := mocks.NewMockInvoiceCalculator(ctrl)
	calc.EXPECT().Total(gomock.Any(), "inv-1", false).Return(decimal.NewFromInt(100), nil)

	txMgr := mocks.NewMockTransactionManager()
	seqGen := mocks.NewMockSequenceGenerator()

	uc := usecase.NewAllocationUseCase(txMgr, paymentRepo, appRepo, invoiceRepo, calc, classifier, pending, nil, seqGen, nil)

	if err := uc.ReconcileInvoicePayments(context.Background(), "inv-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	invoice, _ := invoiceRepo.GetByID(context.Background(), "inv-1")
	if invoice.Status != domain.InvoiceStatusPaid {
		t.Errorf("expected invoice paid, got %s", invoice.Status)
	}
}
