package usecase

import "time"

const (
	// DefaultTransactionTimeout is the maximum duration for a database transaction
	// This prevents long-running transactions from blocking tables
	DefaultTransactionTimeout = 10 * time.Second

	// IdempotencyKeyTTL is how long idempotency keys are cached
	IdempotencyKeyTTL = 24 * time.Hour

	// GlClassCacheTTL is how long classification nodes are cached
	GlClassCacheTTL = 5 * time.Minute

	// GroupInOneTransaction is the flag value that requests a single
	// grouped deposit for a batch of payments
	GroupInOneTransaction = "Y"
)

// Sequence entity names handed to the sequence generator.
const (
	SeqFinAccountTrans = "FinAccountTrans"
	SeqOutboxEvent     = "OutboxEvent"
	SeqAuditLog        = "AuditLog"
)
