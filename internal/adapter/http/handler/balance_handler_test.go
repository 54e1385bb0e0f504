package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/dtella/chartledger/internal/adapter/http/dto"
	"github.com/dtella/chartledger/internal/domain"
)

type balanceServiceStub struct {
	balanceFn  func(ctx context.Context, accountID string, period domain.Period) (decimal.Decimal, error)
	rollupFn   func(ctx context.Context, accountID string, period domain.Period) (decimal.Decimal, error)
	creditsFn  func(ctx context.Context, accountID string, period domain.Period) (decimal.Decimal, error)
	debitsFn   func(ctx context.Context, accountID string, period domain.Period) (decimal.Decimal, error)
	childrenFn func(ctx context.Context, accountID string) ([]*domain.Account, error)
}

func (s *balanceServiceStub) Balance(ctx context.Context, accountID string, period domain.Period) (decimal.Decimal, error) {
	return s.balanceFn(ctx, accountID, period)
}

func (s *balanceServiceStub) RollupBalance(ctx context.Context, accountID string, period domain.Period) (decimal.Decimal, error) {
	return s.rollupFn(ctx, accountID, period)
}

func (s *balanceServiceStub) CreditsBalance(ctx context.Context, accountID string, period domain.Period) (decimal.Decimal, error) {
	return s.creditsFn(ctx, accountID, period)
}

func (s *balanceServiceStub) DebitsBalance(ctx context.Context, accountID string, period domain.Period) (decimal.Decimal, error) {
	return s.debitsFn(ctx, accountID, period)
}

func (s *balanceServiceStub) ChildAccounts(ctx context.Context, accountID string) ([]*domain.Account, error) {
	return s.childrenFn(ctx, accountID)
}

func TestBalanceHandler_Balance_WithPeriod(t *testing.T) {
	h := NewBalanceHandler(&balanceServiceStub{
		balanceFn: func(ctx context.Context, accountID string, period domain.Period) (decimal.Decimal, error) {
			if accountID != "acc-1" {
				t.Fatalf("unexpected account: %s", accountID)
			}
			if period.From == nil || period.To == nil {
				t.Fatal("expected bounded period")
			}
			if period.From.Format("2006-01-02") != "2026-01-01" {
				t.Fatalf("unexpected from bound: %v", period.From)
			}
			return decimal.NewFromInt(500), nil
		},
	}, testMetrics)

	target := "/accounts/acc-1/balance?from=2026-01-01&to=2026-06-30"
	req := withURLParam(httptest.NewRequest(http.MethodGet, target, nil), "id", "acc-1")
	rec := httptest.NewRecorder()

	h.Balance(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp dto.BalanceResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Balance != "500" || resp.From != "2026-01-01" || resp.To != "2026-06-30" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestBalanceHandler_Balance_BadPeriod(t *testing.T) {
	h := NewBalanceHandler(&balanceServiceStub{
		balanceFn: func(ctx context.Context, accountID string, period domain.Period) (decimal.Decimal, error) {
			t.Fatal("Balance should not be called for a malformed period")
			return decimal.Zero, nil
		},
	}, testMetrics)

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/accounts/acc-1/balance?from=junk", nil), "id", "acc-1")
	rec := httptest.NewRecorder()

	h.Balance(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestBalanceHandler_Balance_RollupAccount(t *testing.T) {
	h := NewBalanceHandler(&balanceServiceStub{
		balanceFn: func(ctx context.Context, accountID string, period domain.Period) (decimal.Decimal, error) {
			return decimal.Zero, domain.ErrBalanceOnRollup
		},
	}, testMetrics)

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/accounts/acc-roll/balance", nil), "id", "acc-roll")
	rec := httptest.NewRecorder()

	h.Balance(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestBalanceHandler_RollupBalance_LeafAccount(t *testing.T) {
	h := NewBalanceHandler(&balanceServiceStub{
		rollupFn: func(ctx context.Context, accountID string, period domain.Period) (decimal.Decimal, error) {
			return decimal.Zero, domain.ErrNotRollup
		},
	}, testMetrics)

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/accounts/acc-1/balance/rollup", nil), "id", "acc-1")
	rec := httptest.NewRecorder()

	h.RollupBalance(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestBalanceHandler_Credits(t *testing.T) {
	h := NewBalanceHandler(&balanceServiceStub{
		creditsFn: func(ctx context.Context, accountID string, period domain.Period) (decimal.Decimal, error) {
			return decimal.NewFromInt(1200), nil
		},
	}, testMetrics)

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/accounts/acc-1/balance/credits", nil), "id", "acc-1")
	rec := httptest.NewRecorder()

	h.Credits(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp dto.BalanceResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Balance != "1200" {
		t.Fatalf("expected 1200, got %s", resp.Balance)
	}
}

func TestBalanceHandler_Children(t *testing.T) {
	h := NewBalanceHandler(&balanceServiceStub{
		childrenFn: func(ctx context.Context, accountID string) ([]*domain.Account, error) {
			return []*domain.Account{
				{ID: "acc-2", Type: domain.Asset, Code: 110, RollupCode: 100, Name: "Cash"},
				{ID: "acc-3", Type: domain.Asset, Code: 120, RollupCode: 100, Name: "Receivables"},
			}, nil
		},
	}, testMetrics)

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/accounts/acc-roll/children", nil), "id", "acc-roll")
	rec := httptest.NewRecorder()

	h.Children(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp dto.ListAccountsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Total != 2 {
		t.Fatalf("expected 2 children, got %d", resp.Total)
	}
}
