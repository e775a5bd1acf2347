package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Financial account transaction metrics
	DepositsCreated       prometheus.Counter
	WithdrawalsCreated    prometheus.Counter
	PaymentGroupsCreated  prometheus.Counter
	DepositWithdrawErrors *prometheus.CounterVec
	TransactionAmount     prometheus.Histogram

	// Allocation / reconciliation metrics
	AllocationListings prometheus.Counter
	InvoicesPaid       prometheus.Counter

	// GL posting metrics
	GlPostings      prometheus.Counter
	GlPostingErrors prometheus.Counter

	// API metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	// Database metrics
	DBQueries     *prometheus.CounterVec
	DBDuration    *prometheus.HistogramVec
	DBConnections prometheus.Gauge
	DBErrors      *prometheus.CounterVec

	// Redis metrics
	RedisOperations *prometheus.CounterVec
	RedisDuration   *prometheus.HistogramVec
	RedisErrors     *prometheus.CounterVec

	// Authentication metrics
	AuthAttempts *prometheus.CounterVec
	AuthFailures *prometheus.CounterVec

	// Rate limiting metrics
	RateLimitHits *prometheus.CounterVec

	// Audit metrics
	AuditLogsCreated *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		// Financial account transaction metrics
		DepositsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "finacct_deposits_created_total",
			Help: "Total number of deposit transactions created",
		}),
		WithdrawalsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "finacct_withdrawals_created_total",
			Help: "Total number of withdrawal transactions created",
		}),
		PaymentGroupsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "finacct_payment_groups_created_total",
			Help: "Total number of payment groups created",
		}),
		DepositWithdrawErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finacct_deposit_withdraw_errors_total",
				Help: "Total number of deposit/withdraw failures by type",
			},
			[]string{"error_type"},
		),
		TransactionAmount: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "finacct_transaction_amount",
			Help:    "Financial account transaction amounts",
			Buckets: []float64{1, 10, 100, 1000, 10000, 100000, 1000000},
		}),

		// Allocation / reconciliation metrics
		AllocationListings: promauto.NewCounter(prometheus.CounterOpts{
			Name: "finacct_allocation_listings_total",
			Help: "Total number of unapplied-invoice listings served",
		}),
		InvoicesPaid: promauto.NewCounter(prometheus.CounterOpts{
			Name: "finacct_invoices_paid_total",
			Help: "Total number of invoices transitioned to paid",
		}),

		// GL posting metrics
		GlPostings: promauto.NewCounter(prometheus.CounterOpts{
			Name: "finacct_gl_postings_total",
			Help: "Total number of successful GL postings",
		}),
		GlPostingErrors: promauto.NewCounter(prometheus.CounterOpts{
			Name: "finacct_gl_posting_errors_total",
			Help: "Total number of failed GL postings",
		}),

		// API metrics
		HTTPRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finacct_http_requests_total",
				Help: "Total HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "finacct_http_duration_seconds",
				Help:    "HTTP request duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),

		// Database metrics
		DBQueries: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finacct_db_queries_total",
				Help: "Total database queries",
			},
			[]string{"operation", "table"},
		),
		DBDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "finacct_db_query_duration_seconds",
				Help:    "Database query duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation", "table"},
		),
		DBConnections: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "finacct_db_connections",
			Help: "Current number of database connections",
		}),
		DBErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finacct_db_errors_total",
				Help: "Total database errors",
			},
			[]string{"operation"},
		),

		// Redis metrics
		RedisOperations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finacct_redis_operations_total",
				Help: "Total Redis operations",
			},
			[]string{"operation"},
		),
		RedisDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "finacct_redis_duration_seconds",
				Help:    "Redis operation duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		RedisErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finacct_redis_errors_total",
				Help: "Total Redis errors",
			},
			[]string{"operation"},
		),

		// Authentication metrics
		AuthAttempts: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finacct_auth_attempts_total",
				Help: "Total authentication attempts",
			},
			[]string{"status"},
		),
		AuthFailures: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finacct_auth_failures_total",
				Help: "Total authentication failures",
			},
			[]string{"reason"},
		),

		// Rate limiting metrics
		RateLimitHits: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finacct_rate_limit_hits_total",
				Help: "Total rate limit hits",
			},
			[]string{"endpoint"},
		),

		// Audit metrics
		AuditLogsCreated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finacct_audit_logs_created_total",
				Help: "Total audit logs created",
			},
			[]string{"action"},
		),
	}
}
