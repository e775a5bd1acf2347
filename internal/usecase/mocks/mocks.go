package mocks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/iho/finacct/internal/domain"
	"github.com/iho/finacct/internal/usecase"
)

// MockPaymentRepository is a mock implementation of PaymentRepository.
type MockPaymentRepository struct {
	mu       sync.RWMutex
	payments map[string]*domain.Payment

	GetByIDFunc  func(ctx context.Context, id string) (*domain.Payment, error)
	GetByIDsFunc func(ctx context.Context, ids []string) ([]*domain.Payment, error)
}

func NewMockPaymentRepository() *MockPaymentRepository {
	return &MockPaymentRepository{
		payments: make(map[string]*domain.Payment),
	}
}

func (m *MockPaymentRepository) Put(payment *domain.Payment) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.payments[payment.ID] = payment
}

func (m *MockPaymentRepository) GetByID(ctx context.Context, id string) (*domain.Payment, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if p, ok := m.payments[id]; ok {
		return p, nil
	}
	return nil, domain.ErrPaymentNotFound
}

func (m *MockPaymentRepository) GetByIDs(ctx context.Context, ids []string) ([]*domain.Payment, error) {
	if m.GetByIDsFunc != nil {
		return m.GetByIDsFunc(ctx, ids)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var payments []*domain.Payment
	for _, id := range ids {
		if p, ok := m.payments[id]; ok {
			payments = append(payments, p)
		}
	}
	return payments, nil
}

// MockPaymentApplicationRepository is a mock implementation of PaymentApplicationRepository.
type MockPaymentApplicationRepository struct {
	mu   sync.RWMutex
	apps []*domain.PaymentApplication

	ListByPaymentFunc func(ctx context.Context, paymentID string) ([]*domain.PaymentApplication, error)
	ListByInvoiceFunc func(ctx context.Context, invoiceID string) ([]*domain.PaymentApplication, error)
}

func NewMockPaymentApplicationRepository() *MockPaymentApplicationRepository {
	return &MockPaymentApplicationRepository{}
}

func (m *MockPaymentApplicationRepository) Add(app *domain.PaymentApplication) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.apps = append(m.apps, app)
}

func (m *MockPaymentApplicationRepository) ListByPayment(ctx context.Context, paymentID string) ([]*domain.PaymentApplication, error) {
	if m.ListByPaymentFunc != nil {
		return m.ListByPaymentFunc(ctx, paymentID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var apps []*domain.PaymentApplication
	for _, a := range m.apps {
		if a.PaymentID == paymentID {
			apps = append(apps, a)
		}
	}
	return apps, nil
}

func (m *MockPaymentApplicationRepository) ListByInvoice(ctx context.Context, invoiceID string) ([]*domain.PaymentApplication, error) {
	if m.ListByInvoiceFunc != nil {
		return m.ListByInvoiceFunc(ctx, invoiceID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var apps []*domain.PaymentApplication
	for _, a := range m.apps {
		if a.InvoiceID == invoiceID {
			apps = append(apps, a)
		}
	}
	return apps, nil
}

// MockInvoiceRepository is a mock implementation of InvoiceRepository.
type MockInvoiceRepository struct {
	mu       sync.RWMutex
	invoices map[string]*domain.Invoice

	GetByIDFunc  func(ctx context.Context, id string) (*domain.Invoice, error)
	ListOpenFunc func(ctx context.Context, q usecase.OpenInvoiceQuery) ([]*domain.Invoice, error)
	MarkPaidFunc func(ctx context.Context, tx usecase.Transaction, id string, paidDate, updatedAt time.Time) error
}

func NewMockInvoiceRepository() *MockInvoiceRepository {
	return &MockInvoiceRepository{
		invoices: make(map[string]*domain.Invoice),
	}
}

func (m *MockInvoiceRepository) Put(invoice *domain.Invoice) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.invoices[invoice.ID] = invoice
}

func (m *MockInvoiceRepository) GetByID(ctx context.Context, id string) (*domain.Invoice, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if inv, ok := m.invoices[id]; ok {
		return inv, nil
	}
	return nil, domain.ErrInvoiceNotFound
}

func (m *MockInvoiceRepository) ListOpen(ctx context.Context, q usecase.OpenInvoiceQuery) ([]*domain.Invoice, error) {
	if m.ListOpenFunc != nil {
		return m.ListOpenFunc(ctx, q)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var invoices []*domain.Invoice
	for _, inv := range m.invoices {
		if inv.IsOpen() && inv.PartyIDFrom == q.PartyIDFrom && inv.PartyID == q.PartyID && inv.Currency == q.Currency {
			invoices = append(invoices, inv)
		}
	}
	return invoices, nil
}

func (m *MockInvoiceRepository) MarkPaid(ctx context.Context, tx usecase.Transaction, id string, paidDate, updatedAt time.Time) error {
	if m.MarkPaidFunc != nil {
		return m.MarkPaidFunc(ctx, tx, id, paidDate, updatedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if inv, ok := m.invoices[id]; ok {
		inv.Status = domain.InvoiceStatusPaid
		inv.PaidDate = &paidDate
		inv.UpdatedAt = updatedAt
		return nil
	}
	return domain.ErrInvoiceNotFound
}

// MockFinAccountRepository is a mock implementation of FinAccountRepository.
type MockFinAccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]*domain.FinAccount

	GetByIDFunc func(ctx context.Context, id string) (*domain.FinAccount, error)
}

func NewMockFinAccountRepository() *MockFinAccountRepository {
	return &MockFinAccountRepository{
		accounts: make(map[string]*domain.FinAccount),
	}
}

func (m *MockFinAccountRepository) Put(account *domain.FinAccount) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accounts[account.ID] = account
}

func (m *MockFinAccountRepository) GetByID(ctx context.Context, id string) (*domain.FinAccount, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if acc, ok := m.accounts[id]; ok {
		return acc, nil
	}
	return nil, domain.ErrFinAccountNotFound
}

// MockFinAccountTransRepository is a mock implementation of FinAccountTransRepository.
type MockFinAccountTransRepository struct {
	mu    sync.RWMutex
	trans map[string]*domain.FinAccountTrans

	CreateFunc  func(ctx context.Context, tx usecase.Transaction, trans *domain.FinAccountTrans) error
	GetByIDFunc func(ctx context.Context, id string) (*domain.FinAccountTrans, error)
}

func NewMockFinAccountTransRepository() *MockFinAccountTransRepository {
	return &MockFinAccountTransRepository{
		trans: make(map[string]*domain.FinAccountTrans),
	}
}

func (m *MockFinAccountTransRepository) Create(ctx context.Context, tx usecase.Transaction, trans *domain.FinAccountTrans) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, trans)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.trans[trans.ID] = trans
	return nil
}

func (m *MockFinAccountTransRepository) GetByID(ctx context.Context, id string) (*domain.FinAccountTrans, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if t, ok := m.trans[id]; ok {
		return t, nil
	}
	return nil, domain.ErrFinAccountTransNotFound
}

func (m *MockFinAccountTransRepository) All() []*domain.FinAccountTrans {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var all []*domain.FinAccountTrans
	for _, t := range m.trans {
		all = append(all, t)
	}
	return all
}

// MockTransactionManager is a mock implementation of TransactionManager.
type MockTransactionManager struct {
	BeginFunc func(ctx context.Context) (usecase.Transaction, error)
}

func NewMockTransactionManager() *MockTransactionManager {
	return &MockTransactionManager{}
}

func (m *MockTransactionManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}
	return &MockTransaction{}, nil
}

// MockTransaction is a mock implementation of Transaction.
type MockTransaction struct {
	CommitFunc   func(ctx context.Context) error
	RollbackFunc func(ctx context.Context) error

	Committed  bool
	RolledBack bool
}

func (m *MockTransaction) Commit(ctx context.Context) error {
	if m.CommitFunc != nil {
		return m.CommitFunc(ctx)
	}
	m.Committed = true
	return nil
}

func (m *MockTransaction) Rollback(ctx context.Context) error {
	if m.RollbackFunc != nil {
		return m.RollbackFunc(ctx)
	}
	m.RolledBack = true
	return nil
}

// MockSequenceGenerator is a mock implementation of SequenceGenerator.
type MockSequenceGenerator struct {
	NextSequenceFunc func(entity string) string
	counter          int
	mu               sync.Mutex
}

func NewMockSequenceGenerator() *MockSequenceGenerator {
	return &MockSequenceGenerator{}
}

func (m *MockSequenceGenerator) NextSequence(entity string) string {
	if m.NextSequenceFunc != nil {
		return m.NextSequenceFunc(entity)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counter++
	return fmt.Sprintf("%s-%04d", entity, m.counter)
}

// MockIdempotencyStore is a mock implementation of IdempotencyStore.
type MockIdempotencyStore struct {
	mu   sync.RWMutex
	data map[string][]byte

	CheckAndSetFunc func(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	UpdateFunc      func(ctx context.Context, key string, response []byte, ttl time.Duration) error
}

func NewMockIdempotencyStore() *MockIdempotencyStore {
	return &MockIdempotencyStore{
		data: make(map[string][]byte),
	}
}

func (m *MockIdempotencyStore) CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error) {
	if m.CheckAndSetFunc != nil {
		return m.CheckAndSetFunc(ctx, key, response, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.data[key]; ok {
		return true, existing, nil
	}
	if response != nil {
		m.data[key] = response
	} else {
		m.data[key] = []byte("processing")
	}
	return false, nil, nil
}

func (m *MockIdempotencyStore) Update(ctx context.Context, key string, response []byte, ttl time.Duration) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, key, response, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = response
	return nil
}
