package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/dtella/chartledger/internal/adapter/http/handler"
	"github.com/dtella/chartledger/internal/domain"
	"github.com/dtella/chartledger/internal/infrastructure/metrics"
)

var testMetrics = metrics.New()

type ledgerStub struct{}

func (ledgerStub) TypeBalance(ctx context.Context, accountType domain.AccountType, period domain.Period) (decimal.Decimal, error) {
	if !accountType.Valid() {
		return decimal.Zero, domain.ErrInvalidType
	}
	return decimal.NewFromInt(700), nil
}

func (ledgerStub) TrialBalance(ctx context.Context, period domain.Period) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

func newTestRouter() http.Handler {
	return NewRouter(RouterConfig{
		AccountHandler: handler.NewAccountHandler(nil, testMetrics),
		EntryHandler:   handler.NewEntryHandler(nil, testMetrics),
		BalanceHandler: handler.NewBalanceHandler(nil, testMetrics),
		LedgerHandler:  handler.NewLedgerHandler(ledgerStub{}, testMetrics),
		HealthHandler:  handler.NewHealthHandler(nil, nil),
		Logger:         zerolog.Nop(),
	})
}

func TestNewRouter_HealthEndpointAvailable(t *testing.T) {
	router := newTestRouter()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected /health to return 200, got %d", rec.Code)
	}
}

func TestNewRouter_MetricsEndpointAvailable(t *testing.T) {
	router := newTestRouter()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected /metrics to return 200, got %d", rec.Code)
	}
}

func TestNewRouter_TrialBalanceRoute(t *testing.T) {
	router := newTestRouter()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/ledger/trial-balance", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Balanced bool `json:"balanced"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.Balanced {
		t.Fatal("expected balanced ledger")
	}
}

func TestNewRouter_TypeBalanceRoute(t *testing.T) {
	router := newTestRouter()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/ledger/balance/asset", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestNewRouter_UnknownRoute(t *testing.T) {
	router := newTestRouter()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/nope", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
