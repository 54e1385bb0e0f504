package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/dtella/chartledger/internal/adapter/http/dto"
	"github.com/dtella/chartledger/internal/domain"
	"github.com/dtella/chartledger/internal/infrastructure/metrics"
)

// LedgerService defines the behavior needed by LedgerHandler.
type LedgerService interface {
	TypeBalance(ctx context.Context, accountType domain.AccountType, period domain.Period) (decimal.Decimal, error)
	TrialBalance(ctx context.Context, period domain.Period) (decimal.Decimal, error)
}

// LedgerHandler handles ledger-wide operations.
type LedgerHandler struct {
	ledgerUC LedgerService
	metrics  *metrics.Metrics
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(ledgerUC LedgerService, m *metrics.Metrics) *LedgerHandler {
	return &LedgerHandler{ledgerUC: ledgerUC, metrics: m}
}

// TypeBalance returns the combined balance of every account of one type.
func (h *LedgerHandler) TypeBalance(w http.ResponseWriter, r *http.Request) {
	accountType := domain.AccountType(chi.URLParam(r, "type"))

	period, err := parsePeriod(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid period", err.Error())
		return
	}

	start := time.Now()

	balance, err := h.ledgerUC.TypeBalance(r.Context(), accountType, period)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to compute type balance", err.Error())
		return
	}

	h.metrics.BalanceQueries.WithLabelValues("type").Inc()
	h.metrics.BalanceDuration.Observe(time.Since(start).Seconds())

	from, to := periodBounds(period)
	writeJSON(w, http.StatusOK, dto.BalanceResponse{
		Type:    string(accountType),
		Balance: balance.String(),
		From:    from,
		To:      to,
	})
}

// TrialBalance checks the accounting equation over the whole ledger.
func (h *LedgerHandler) TrialBalance(w http.ResponseWriter, r *http.Request) {
	period, err := parsePeriod(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid period", err.Error())
		return
	}

	start := time.Now()

	trial, err := h.ledgerUC.TrialBalance(r.Context(), period)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to compute trial balance", err.Error())
		return
	}

	h.metrics.BalanceQueries.WithLabelValues("trial").Inc()
	h.metrics.BalanceDuration.Observe(time.Since(start).Seconds())

	if period.Unbounded() {
		f, _ := trial.Float64()
		h.metrics.TrialBalance.Set(f)
	}

	from, to := periodBounds(period)
	writeJSON(w, http.StatusOK, dto.TrialBalanceResponse{
		TrialBalance: trial.String(),
		Balanced:     trial.IsZero(),
		From:         from,
		To:           to,
	})
}
