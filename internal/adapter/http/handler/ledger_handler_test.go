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

type ledgerServiceStub struct {
	typeBalanceFn  func(ctx context.Context, accountType domain.AccountType, period domain.Period) (decimal.Decimal, error)
	trialBalanceFn func(ctx context.Context, period domain.Period) (decimal.Decimal, error)
}

func (s *ledgerServiceStub) TypeBalance(ctx context.Context, accountType domain.AccountType, period domain.Period) (decimal.Decimal, error) {
	return s.typeBalanceFn(ctx, accountType, period)
}

func (s *ledgerServiceStub) TrialBalance(ctx context.Context, period domain.Period) (decimal.Decimal, error) {
	return s.trialBalanceFn(ctx, period)
}

func TestLedgerHandler_TypeBalance(t *testing.T) {
	h := NewLedgerHandler(&ledgerServiceStub{
		typeBalanceFn: func(ctx context.Context, accountType domain.AccountType, period domain.Period) (decimal.Decimal, error) {
			if accountType != domain.Asset {
				t.Fatalf("unexpected type: %s", accountType)
			}
			return decimal.NewFromInt(700), nil
		},
	}, testMetrics)

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/ledger/balance/asset", nil), "type", "asset")
	rec := httptest.NewRecorder()

	h.TypeBalance(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp dto.BalanceResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Type != "asset" || resp.Balance != "700" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestLedgerHandler_TypeBalance_InvalidType(t *testing.T) {
	h := NewLedgerHandler(&ledgerServiceStub{
		typeBalanceFn: func(ctx context.Context, accountType domain.AccountType, period domain.Period) (decimal.Decimal, error) {
			return decimal.Zero, domain.ErrInvalidType
		},
	}, testMetrics)

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/ledger/balance/goodwill", nil), "type", "goodwill")
	rec := httptest.NewRecorder()

	h.TypeBalance(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestLedgerHandler_TrialBalance_Balanced(t *testing.T) {
	h := NewLedgerHandler(&ledgerServiceStub{
		trialBalanceFn: func(ctx context.Context, period domain.Period) (decimal.Decimal, error) {
			return decimal.Zero, nil
		},
	}, testMetrics)

	req := httptest.NewRequest(http.MethodGet, "/ledger/trial-balance", nil)
	rec := httptest.NewRecorder()

	h.TrialBalance(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp dto.TrialBalanceResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.Balanced || resp.TrialBalance != "0" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestLedgerHandler_TrialBalance_Imbalance(t *testing.T) {
	h := NewLedgerHandler(&ledgerServiceStub{
		trialBalanceFn: func(ctx context.Context, period domain.Period) (decimal.Decimal, error) {
			return decimal.NewFromInt(500), nil
		},
	}, testMetrics)

	req := httptest.NewRequest(http.MethodGet, "/ledger/trial-balance", nil)
	rec := httptest.NewRecorder()

	h.TrialBalance(rec, req)

	// An imbalance is reported, not treated as a request failure.
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp dto.TrialBalanceResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Balanced || resp.TrialBalance != "500" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}
