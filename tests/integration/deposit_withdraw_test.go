package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	adaptershttp "github.com/iho/finacct/internal/adapter/http"
	"github.com/iho/finacct/internal/adapter/http/dto"
	"github.com/iho/finacct/internal/adapter/http/handler"
	"github.com/iho/finacct/internal/adapter/repository/postgres"
	redisrepo "github.com/iho/finacct/internal/adapter/repository/redis"
	"github.com/iho/finacct/internal/domain"
	infraredis "github.com/iho/finacct/internal/infrastructure/redis"
	"github.com/iho/finacct/internal/usecase"
	"github.com/iho/finacct/tests/testutil"
)

func newTestRouter(t *testing.T, pool *testutil.TestDB) http.Handler {
	t.Helper()

	ctx := context.Background()

	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}
	redisClient, err := infraredis.NewClient(ctx, redisURL)
	if err != nil {
		t.Fatalf("failed to connect to redis: %v", err)
	}
	t.Cleanup(func() { redisClient.Close() })

	txManager := postgres.NewTxManager(pool.Pool)
	paymentRepo := postgres.NewPaymentRepository(pool.Pool)
	appRepo := postgres.NewPaymentApplicationRepository(pool.Pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool.Pool)
	invoiceCalc := postgres.NewInvoiceCalculator(pool.Pool)
	finAccountRepo := postgres.NewFinAccountRepository(pool.Pool)
	transRepo := postgres.NewFinAccountTransRepository(pool.Pool)
	groupRepo := postgres.NewPaymentGroupRepository(pool.Pool)
	classifier := postgres.NewPaymentClassifier(pool.Pool)
	glPoster := postgres.NewGlPoster(pool.Pool)
	outboxRepo := postgres.NewOutboxRepository(pool.Pool)
	seqGen := postgres.NewULIDSequenceGenerator()

	pendingPayments := usecase.NewPendingPaymentSet()
	finAccountUC := usecase.NewFinAccountUseCase(
		txManager, finAccountRepo, transRepo, paymentRepo,
		paymentRepo, groupRepo, glPoster, outboxRepo, nil,
		seqGen, pendingPayments, domain.DefaultArithmeticSettings(), nil)
	allocationUC := usecase.NewAllocationUseCase(
		txManager, paymentRepo, appRepo, invoiceRepo, invoiceCalc,
		classifier, pendingPayments, outboxRepo, seqGen, nil)

	return adaptershttp.NewRouter(adaptershttp.RouterConfig{
		FinAccountHandler: handler.NewFinAccountHandler(finAccountUC),
		AllocationHandler: handler.NewAllocationHandler(allocationUC),
		RateHandler:       handler.NewRateHandler(usecase.NewExchangeRateUseCase(postgres.NewLedgerRepository(pool.Pool))),
		GlClassHandler:    handler.NewGlClassHandler(usecase.NewGlClassUseCase(postgres.NewGlAccountRepository(pool.Pool), nil)),
		HealthHandler:     handler.NewHealthHandler(pool.Pool, redisClient),
		IdempotencyStore:  redisrepo.NewIdempotencyStore(redisClient),
		Logger:            zerolog.Nop(),
	})
}

func TestDepositWithdrawPerPayment(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	testDB := testutil.NewTestDB(t)
	defer testDB.Cleanup()
	testDB.TruncateAll(ctx)

	router := newTestRouter(t, testDB)

	account := testDB.CreateTestFinAccount(ctx, "owner-1", "USD")
	payment := testDB.CreateTestPayment(ctx, domain.PaymentStatusReceived,
		decimal.RequireFromString("50"), "USD", "customer-1", "owner-1")

	body, _ := json.Marshal(dto.DepositWithdrawRequest{PaymentIDs: []string{payment.ID}})
	r := httptest.NewRequest(http.MethodPost, "/api/v1/fin-accounts/"+account.ID+"/deposit-withdraw", bytes.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, r)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, w.Code, w.Body.String())
	}

	var resp dto.DepositWithdrawResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if len(resp.TransIDs) != 1 {
		t.Fatalf("expected one created transaction, got %+v", resp)
	}

	// The payment must now be confirmed and linked to the transaction.
	var status, transID string
	err := testDB.Pool.QueryRow(ctx,
		`SELECT status, fin_account_trans_id FROM payments WHERE id = $1`,
		payment.ID).Scan(&status, &transID)
	if err != nil {
		t.Fatalf("failed to read payment: %v", err)
	}
	if status != string(domain.PaymentStatusConfirmed) || transID != resp.TransIDs[0] {
		t.Fatalf("expected confirmed linked payment, got status=%s trans=%s", status, transID)
	}
}

func TestDepositWithdrawGrouped(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	testDB := testutil.NewTestDB(t)
	defer testDB.Cleanup()
	testDB.TruncateAll(ctx)

	router := newTestRouter(t, testDB)

	account := testDB.CreateTestFinAccount(ctx, "owner-1", "USD")
	pay1 := testDB.CreateTestPayment(ctx, domain.PaymentStatusReceived,
		decimal.RequireFromString("30"), "USD", "customer-1", "owner-1")
	pay2 := testDB.CreateTestPayment(ctx, domain.PaymentStatusReceived,
		decimal.RequireFromString("20"), "USD", "customer-2", "owner-1")

	body, _ := json.Marshal(dto.DepositWithdrawRequest{
		PaymentIDs:            []string{pay1.ID, pay2.ID},
		GroupInOneTransaction: "Y",
	})
	r := httptest.NewRequest(http.MethodPost, "/api/v1/fin-accounts/"+account.ID+"/deposit-withdraw", bytes.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, r)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, w.Code, w.Body.String())
	}

	var resp dto.DepositWithdrawResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if resp.FinAccountTransID == "" || resp.PaymentGroupID == "" {
		t.Fatalf("expected grouped deposit ids, got %+v", resp)
	}

	// One transaction for the batch total.
	var amount decimal.Decimal
	var amountStr string
	err := testDB.Pool.QueryRow(ctx,
		`SELECT amount::text FROM fin_account_trans WHERE id = $1`,
		resp.FinAccountTransID).Scan(&amountStr)
	if err != nil {
		t.Fatalf("failed to read transaction: %v", err)
	}
	amount = decimal.RequireFromString(amountStr)
	if !amount.Equal(decimal.RequireFromString("50")) {
		t.Fatalf("expected grouped amount 50, got %s", amount)
	}

	var members int
	err = testDB.Pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM payment_group_members WHERE payment_group_id = $1`,
		resp.PaymentGroupID).Scan(&members)
	if err != nil {
		t.Fatalf("failed to count group members: %v", err)
	}
	if members != 2 {
		t.Fatalf("expected 2 group members, got %d", members)
	}
}

func TestDepositWithdrawRejectsLinkedPayment(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	testDB := testutil.NewTestDB(t)
	defer testDB.Cleanup()
	testDB.TruncateAll(ctx)

	router := newTestRouter(t, testDB)

	account := testDB.CreateTestFinAccount(ctx, "owner-1", "USD")
	payment := testDB.CreateTestPayment(ctx, domain.PaymentStatusReceived,
		decimal.RequireFromString("50"), "USD", "customer-1", "owner-1")

	body, _ := json.Marshal(dto.DepositWithdrawRequest{PaymentIDs: []string{payment.ID}})

	first := httptest.NewRequest(http.MethodPost, "/api/v1/fin-accounts/"+account.ID+"/deposit-withdraw", bytes.NewReader(body))
	firstRec := httptest.NewRecorder()
	router.ServeHTTP(firstRec, first)
	if firstRec.Code != http.StatusCreated {
		t.Fatalf("expected first batch to succeed, got %d: %s", firstRec.Code, firstRec.Body.String())
	}

	second := httptest.NewRequest(http.MethodPost, "/api/v1/fin-accounts/"+account.ID+"/deposit-withdraw", bytes.NewReader(body))
	secondRec := httptest.NewRecorder()
	router.ServeHTTP(secondRec, second)
	if secondRec.Code != http.StatusConflict {
		t.Fatalf("expected conflict for already linked payment, got %d: %s", secondRec.Code, secondRec.Body.String())
	}
}
