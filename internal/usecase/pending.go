package usecase

import (
	"sync"

	"github.com/iho/finacct/internal/domain"
)

// PendingPaymentSet is an explicit pending-changes index keyed by payment
// id. A workflow that mutates payments registers the uncommitted records
// here so that reconciliation running inside the same unit of work sees
// them instead of the stale persisted rows.
type PendingPaymentSet struct {
	mu       sync.RWMutex
	payments map[string]*domain.Payment
}

// NewPendingPaymentSet creates an empty index.
func NewPendingPaymentSet() *PendingPaymentSet {
	return &PendingPaymentSet{
		payments: make(map[string]*domain.Payment),
	}
}

// Put registers an uncommitted payment mutation.
func (s *PendingPaymentSet) Put(payment *domain.Payment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payments[payment.ID] = payment
}

// Pending returns the uncommitted record for a payment, if any.
func (s *PendingPaymentSet) Pending(paymentID string) (*domain.Payment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.payments[paymentID]
	return p, ok
}

// Remove drops a single registered mutation once its unit of work has
// committed or rolled back.
func (s *PendingPaymentSet) Remove(paymentID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.payments, paymentID)
}

// Clear drops all registered mutations, for reuse after commit or rollback.
func (s *PendingPaymentSet) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payments = make(map[string]*domain.Payment)
}
