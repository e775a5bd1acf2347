//	mockgen -source=internal/usecase/interfaces.go -destination=internal/usecase/mocks/mock_interfaces.go -package=mocks
//

// Package mocks is a generated GoMock package.
package mocks

import (
	context "context"
	reflect "reflect"
	time "time"

	domain "github.com/iho/finacct/internal/domain"
	usecase "github.com/iho/finacct/internal/usecase"
	decimal "github.com/shopspring/decimal"
	gomock "go.uber.org/mock/gomock"
)

// MockLedgerRepository is a mock of LedgerRepository interface.
type MockLedgerRepository struct {
	ctrl     *gomock.Controller
	recorder *MockLedgerRepositoryMockRecorder
	isgomock struct{}
}

// MockLedgerRepositoryMockRecorder is the mock recorder for MockLedgerRepository.
type MockLedgerRepositoryMockRecorder struct {
	mock *MockLedgerRepository
}

// NewMockLedgerRepository creates a new mock instance.
func NewMockLedgerRepository(ctrl *gomock.Controller) *MockLedgerRepository {
	mock := &MockLedgerRepository{ctrl: ctrl}
	mock.recorder = &MockLedgerRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockLedgerRepository) EXPECT() *MockLedgerRepositoryMockRecorder {
	return m.recorder
}

// FindEntry mocks base method.
func (m *MockLedgerRepository) FindEntry(ctx context.Context, f usecase.LedgerEntryFilter) (*domain.AcctgTransEntry, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FindEntry", ctx, f)
	ret0, _ := ret[0].(*domain.AcctgTransEntry)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// FindEntry indicates an expected call of FindEntry.
func (mr *MockLedgerRepositoryMockRecorder) FindEntry(ctx, f any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FindEntry", reflect.TypeOf((*MockLedgerRepository)(nil).FindEntry), ctx, f)
}

// MockGlAccountRepository is a mock of GlAccountRepository interface.
type MockGlAccountRepository struct {
	ctrl     *gomock.Controller
	recorder *MockGlAccountRepositoryMockRecorder
	isgomock struct{}
}

// MockGlAccountRepositoryMockRecorder is the mock recorder for MockGlAccountRepository.
type MockGlAccountRepositoryMockRecorder struct {
	mock *MockGlAccountRepository
}

// NewMockGlAccountRepository creates a new mock instance.
func NewMockGlAccountRepository(ctrl *gomock.Controller) *MockGlAccountRepository {
	mock := &MockGlAccountRepository{ctrl: ctrl}
	mock.recorder = &MockGlAccountRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockGlAccountRepository) EXPECT() *MockGlAccountRepositoryMockRecorder {
	return m.recorder
}

// GetAccount mocks base method.
func (m *MockGlAccountRepository) GetAccount(ctx context.Context, id string) (*domain.GlAccount, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetAccount", ctx, id)
	ret0, _ := ret[0].(*domain.GlAccount)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetAccount indicates an expected call of GetAccount.
func (mr *MockGlAccountRepositoryMockRecorder) GetAccount(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetAccount", reflect.TypeOf((*MockGlAccountRepository)(nil).GetAccount), ctx, id)
}

// GetClass mocks base method.
func (m *MockGlAccountRepository) GetClass(ctx context.Context, id string) (*domain.GlAccountClass, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetClass", ctx, id)
	ret0, _ := ret[0].(*domain.GlAccountClass)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetClass indicates an expected call of GetClass.
func (mr *MockGlAccountRepositoryMockRecorder) GetClass(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetClass", reflect.TypeOf((*MockGlAccountRepository)(nil).GetClass), ctx, id)
}

// MockPaymentUpdater is a mock of PaymentUpdater interface.
type MockPaymentUpdater struct {
	ctrl     *gomock.Controller
	recorder *MockPaymentUpdaterMockRecorder
	isgomock struct{}
}

// MockPaymentUpdaterMockRecorder is the mock recorder for MockPaymentUpdater.
type MockPaymentUpdaterMockRecorder struct {
	mock *MockPaymentUpdater
}

// NewMockPaymentUpdater creates a new mock instance.
func NewMockPaymentUpdater(ctrl *gomock.Controller) *MockPaymentUpdater {
	mock := &MockPaymentUpdater{ctrl: ctrl}
	mock.recorder = &MockPaymentUpdaterMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockPaymentUpdater) EXPECT() *MockPaymentUpdaterMockRecorder {
	return m.recorder
}

// UpdatePayment mocks base method.
func (m *MockPaymentUpdater) UpdatePayment(ctx context.Context, tx usecase.Transaction, input usecase.UpdatePaymentInput) (*domain.Payment, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdatePayment", ctx, tx, input)
	ret0, _ := ret[0].(*domain.Payment)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// UpdatePayment indicates an expected call of UpdatePayment.
func (mr *MockPaymentUpdaterMockRecorder) UpdatePayment(ctx, tx, input any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdatePayment", reflect.TypeOf((*MockPaymentUpdater)(nil).UpdatePayment), ctx, tx, input)
}

// MockPaymentGroupCreator is a mock of PaymentGroupCreator interface.
type MockPaymentGroupCreator struct {
	ctrl     *gomock.Controller
	recorder *MockPaymentGroupCreatorMockRecorder
	isgomock struct{}
}

// MockPaymentGroupCreatorMockRecorder is the mock recorder for MockPaymentGroupCreator.
type MockPaymentGroupCreatorMockRecorder struct {
	mock *MockPaymentGroupCreator
}

// NewMockPaymentGroupCreator creates a new mock instance.
func NewMockPaymentGroupCreator(ctrl *gomock.Controller) *MockPaymentGroupCreator {
	mock := &MockPaymentGroupCreator{ctrl: ctrl}
	mock.recorder = &MockPaymentGroupCreatorMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockPaymentGroupCreator) EXPECT() *MockPaymentGroupCreatorMockRecorder {
	return m.recorder
}

// CreatePaymentGroup mocks base method.
func (m *MockPaymentGroupCreator) CreatePaymentGroup(ctx context.Context, tx usecase.Transaction, paymentIDs []string) (string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreatePaymentGroup", ctx, tx, paymentIDs)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreatePaymentGroup indicates an expected call of CreatePaymentGroup.
func (mr *MockPaymentGroupCreatorMockRecorder) CreatePaymentGroup(ctx, tx, paymentIDs any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreatePaymentGroup", reflect.TypeOf((*MockPaymentGroupCreator)(nil).CreatePaymentGroup), ctx, tx, paymentIDs)
}

// MockGlPoster is a mock of GlPoster interface.
type MockGlPoster struct {
	ctrl     *gomock.Controller
	recorder *MockGlPosterMockRecorder
	isgomock struct{}
}

// MockGlPosterMockRecorder is the mock recorder for MockGlPoster.
type MockGlPosterMockRecorder struct {
	mock *MockGlPoster
}

// NewMockGlPoster creates a new mock instance.
func NewMockGlPoster(ctrl *gomock.Controller) *MockGlPoster {
	mock := &MockGlPoster{ctrl: ctrl}
	mock.recorder = &MockGlPosterMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockGlPoster) EXPECT() *MockGlPosterMockRecorder {
	return m.recorder
}

// PostFinAccountTrans mocks base method.
func (m *MockGlPoster) PostFinAccountTrans(ctx context.Context, req usecase.PostGlRequest) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "PostFinAccountTrans", ctx, req)
	ret0, _ := ret[0].(error)
	return ret0
}

// PostFinAccountTrans indicates an expected call of PostFinAccountTrans.
func (mr *MockGlPosterMockRecorder) PostFinAccountTrans(ctx, req any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "PostFinAccountTrans", reflect.TypeOf((*MockGlPoster)(nil).PostFinAccountTrans), ctx, req)
}

// MockInvoiceCalculator is a mock of InvoiceCalculator interface.
type MockInvoiceCalculator struct {
	ctrl     *gomock.Controller
	recorder *MockInvoiceCalculatorMockRecorder
	isgomock struct{}
}

// MockInvoiceCalculatorMockRecorder is the mock recorder for MockInvoiceCalculator.
type MockInvoiceCalculatorMockRecorder struct {
	mock *MockInvoiceCalculator
}

// NewMockInvoiceCalculator creates a new mock instance.
func NewMockInvoiceCalculator(ctrl *gomock.Controller) *MockInvoiceCalculator {
	mock := &MockInvoiceCalculator{ctrl: ctrl}
	mock.recorder = &MockInvoiceCalculatorMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockInvoiceCalculator) EXPECT() *MockInvoiceCalculatorMockRecorder {
	return m.recorder
}

// Total mocks base method.
func (m *MockInvoiceCalculator) Total(ctx context.Context, invoiceID string, actual bool) (decimal.Decimal, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Total", ctx, invoiceID, actual)
	ret0, _ := ret[0].(decimal.Decimal)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Total indicates an expected call of Total.
func (mr *MockInvoiceCalculatorMockRecorder) Total(ctx, invoiceID, actual any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Total", reflect.TypeOf((*MockInvoiceCalculator)(nil).Total), ctx, invoiceID, actual)
}

// Applied mocks base method.
func (m *MockInvoiceCalculator) Applied(ctx context.Context, invoiceID string, asOf time.Time, actual bool) (decimal.Decimal, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Applied", ctx, invoiceID, asOf, actual)
	ret0, _ := ret[0].(decimal.Decimal)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Applied indicates an expected call of Applied.
func (mr *MockInvoiceCalculatorMockRecorder) Applied(ctx, invoiceID, asOf, actual any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Applied", reflect.TypeOf((*MockInvoiceCalculator)(nil).Applied), ctx, invoiceID, asOf, actual)
}

// MockPaymentClassifier is a mock of PaymentClassifier interface.
type MockPaymentClassifier struct {
	ctrl     *gomock.Controller
	recorder *MockPaymentClassifierMockRecorder
	isgomock struct{}
}

// MockPaymentClassifierMockRecorder is the mock recorder for MockPaymentClassifier.
type MockPaymentClassifierMockRecorder struct {
	mock *MockPaymentClassifier
}

// NewMockPaymentClassifier creates a new mock instance.
func NewMockPaymentClassifier(ctrl *gomock.Controller) *MockPaymentClassifier {
	mock := &MockPaymentClassifier{ctrl: ctrl}
	mock.recorder = &MockPaymentClassifierMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockPaymentClassifier) EXPECT() *MockPaymentClassifierMockRecorder {
	return m.recorder
}

// ParentType mocks base method.
func (m *MockPaymentClassifier) ParentType(ctx context.Context, paymentID string) (string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ParentType", ctx, paymentID)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ParentType indicates an expected call of ParentType.
func (mr *MockPaymentClassifierMockRecorder) ParentType(ctx, paymentID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ParentType", reflect.TypeOf((*MockPaymentClassifier)(nil).ParentType), ctx, paymentID)
}

// MockOutboxRepository is a mock of OutboxRepository interface.
type MockOutboxRepository struct {
	ctrl     *gomock.Controller
	recorder *MockOutboxRepositoryMockRecorder
	isgomock struct{}
}

// MockOutboxRepositoryMockRecorder is the mock recorder for MockOutboxRepository.
type MockOutboxRepositoryMockRecorder struct {
	mock *MockOutboxRepository
}

// NewMockOutboxRepository creates a new mock instance.
func NewMockOutboxRepository(ctrl *gomock.Controller) *MockOutboxRepository {
	mock := &MockOutboxRepository{ctrl: ctrl}
	mock.recorder = &MockOutboxRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockOutboxRepository) EXPECT() *MockOutboxRepositoryMockRecorder {
	return m.recorder
}

// Create mocks base method.
func (m *MockOutboxRepository) Create(ctx context.Context, tx usecase.Transaction, event *domain.OutboxEvent) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, tx, event)
	ret0, _ := ret[0].(error)
	return ret0
}

// Create indicates an expected call of Create.
func (mr *MockOutboxRepositoryMockRecorder) Create(ctx, tx, event any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockOutboxRepository)(nil).Create), ctx, tx, event)
}

// GetUnpublished mocks base method.
func (m *MockOutboxRepository) GetUnpublished(ctx context.Context, limit int) ([]*domain.OutboxEvent, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetUnpublished", ctx, limit)
	ret0, _ := ret[0].([]*domain.OutboxEvent)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetUnpublished indicates an expected call of GetUnpublished.
func (mr *MockOutboxRepositoryMockRecorder) GetUnpublished(ctx, limit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetUnpublished", reflect.TypeOf((*MockOutboxRepository)(nil).GetUnpublished), ctx, limit)
}

// MarkPublished mocks base method.
func (m *MockOutboxRepository) MarkPublished(ctx context.Context, id string, publishedAt time.Time) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "MarkPublished", ctx, id, publishedAt)
	ret0, _ := ret[0].(error)
	return ret0
}

// MarkPublished indicates an expected call of MarkPublished.
func (mr *MockOutboxRepositoryMockRecorder) MarkPublished(ctx, id, publishedAt any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "MarkPublished", reflect.TypeOf((*MockOutboxRepository)(nil).MarkPublished), ctx, id, publishedAt)
}

// GetByAggregate mocks base method.
func (m *MockOutboxRepository) GetByAggregate(ctx context.Context, aggregateType, aggregateID string, limit, offset int) ([]*domain.OutboxEvent, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByAggregate", ctx, aggregateType, aggregateID, limit, offset)
	ret0, _ := ret[0].([]*domain.OutboxEvent)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByAggregate indicates an expected call of GetByAggregate.
func (mr *MockOutboxRepositoryMockRecorder) GetByAggregate(ctx, aggregateType, aggregateID, limit, offset any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByAggregate", reflect.TypeOf((*MockOutboxRepository)(nil).GetByAggregate), ctx, aggregateType, aggregateID, limit, offset)
}

// DeletePublished mocks base method.
func (m *MockOutboxRepository) DeletePublished(ctx context.Context, before time.Time) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeletePublished", ctx, before)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeletePublished indicates an expected call of DeletePublished.
func (mr *MockOutboxRepositoryMockRecorder) DeletePublished(ctx, before any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeletePublished", reflect.TypeOf((*MockOutboxRepository)(nil).DeletePublished), ctx, before)
}

// MockAuditRepository is a mock of AuditRepository interface.
type MockAuditRepository struct {
	ctrl     *gomock.Controller
	recorder *MockAuditRepositoryMockRecorder
	isgomock struct{}
}

// MockAuditRepositoryMockRecorder is the mock recorder for MockAuditRepository.
type MockAuditRepositoryMockRecorder struct {
	mock *MockAuditRepository
}

// NewMockAuditRepository creates a new mock instance.
func NewMockAuditRepository(ctrl *gomock.Controller) *MockAuditRepository {
	mock := &MockAuditRepository{ctrl: ctrl}
	mock.recorder = &MockAuditRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockAuditRepository) EXPECT() *MockAuditRepositoryMockRecorder {
	return m.recorder
}

// Create mocks base method.
func (m *MockAuditRepository) Create(ctx context.Context, log *domain.AuditLog) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, log)
	ret0, _ := ret[0].(error)
	return ret0
}

// Create indicates an expected call of Create.
func (mr *MockAuditRepositoryMockRecorder) Create(ctx, log any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockAuditRepository)(nil).Create), ctx, log)
}

// CreateTx mocks base method.
func (m *MockAuditRepository) CreateTx(ctx context.Context, tx usecase.Transaction, log *domain.AuditLog) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateTx", ctx, tx, log)
	ret0, _ := ret[0].(error)
	return ret0
}

// CreateTx indicates an expected call of CreateTx.
func (mr *MockAuditRepositoryMockRecorder) CreateTx(ctx, tx, log any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateTx", reflect.TypeOf((*MockAuditRepository)(nil).CreateTx), ctx, tx, log)
}

// List mocks base method.
func (m *MockAuditRepository) List(ctx context.Context, filter domain.AuditFilter) ([]*domain.AuditLog, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "List", ctx, filter)
	ret0, _ := ret[0].([]*domain.AuditLog)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// List indicates an expected call of List.
func (mr *MockAuditRepositoryMockRecorder) List(ctx, filter any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "List", reflect.TypeOf((*MockAuditRepository)(nil).List), ctx, filter)
}

// GetByResourceID mocks base method.
func (m *MockAuditRepository) GetByResourceID(ctx context.Context, resourceType, resourceID string) ([]*domain.AuditLog, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByResourceID", ctx, resourceType, resourceID)
	ret0, _ := ret[0].([]*domain.AuditLog)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByResourceID indicates an expected call of GetByResourceID.
func (mr *MockAuditRepositoryMockRecorder) GetByResourceID(ctx, resourceType, resourceID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByResourceID", reflect.TypeOf((*MockAuditRepository)(nil).GetByResourceID), ctx, resourceType, resourceID)
}

// MockCache is a mock of Cache interface.
type MockCache struct {
	ctrl     *gomock.Controller
	recorder *MockCacheMockRecorder
	isgomock struct{}
}

// MockCacheMockRecorder is the mock recorder for MockCache.
type MockCacheMockRecorder struct {
	mock *MockCache
}

// NewMockCache creates a new mock instance.
func NewMockCache(ctrl *gomock.Controller) *MockCache {
	mock := &MockCache{ctrl: ctrl}
	mock.recorder = &MockCacheMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockCache) EXPECT() *MockCacheMockRecorder {
	return m.recorder
}

// Get mocks base method.
func (m *MockCache) Get(ctx context.Context, key string) ([]byte, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Get", ctx, key)
	ret0, _ := ret[0].([]byte)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Get indicates an expected call of Get.
func (mr *MockCacheMockRecorder) Get(ctx, key any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Get", reflect.TypeOf((*MockCache)(nil).Get), ctx, key)
}

// Set mocks base method.
func (m *MockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Set", ctx, key, value, ttl)
	ret0, _ := ret[0].(error)
	return ret0
}

// Set indicates an expected call of Set.
func (mr *MockCacheMockRecorder) Set(ctx, key, value, ttl any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Set", reflect.TypeOf((*MockCache)(nil).Set), ctx, key, value, ttl)
}

// Delete mocks base method.
func (m *MockCache) Delete(ctx context.Context, key string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Delete", ctx, key)
	ret0, _ := ret[0].(error)
	return ret0
}

// Delete indicates an expected call of Delete.
func (mr *MockCacheMockRecorder) Delete(ctx, key any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Delete", reflect.TypeOf((*MockCache)(nil).Delete), ctx, key)
}
