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

// BalanceService defines the behavior needed by BalanceHandler.
type BalanceService interface {
	Balance(ctx context.Context, accountID string, period domain.Period) (decimal.Decimal, error)
	RollupBalance(ctx context.Context, accountID string, period domain.Period) (decimal.Decimal, error)
	CreditsBalance(ctx context.Context, accountID string, period domain.Period) (decimal.Decimal, error)
	DebitsBalance(ctx context.Context, accountID string, period domain.Period) (decimal.Decimal, error)
	ChildAccounts(ctx context.Context, accountID string) ([]*domain.Account, error)
}

// BalanceHandler handles per-account balance requests.
type BalanceHandler struct {
	balanceUC BalanceService
	metrics   *metrics.Metrics
}

// NewBalanceHandler creates a new BalanceHandler.
func NewBalanceHandler(balanceUC BalanceService, m *metrics.Metrics) *BalanceHandler {
	return &BalanceHandler{balanceUC: balanceUC, metrics: m}
}

// Balance returns an account's signed balance.
func (h *BalanceHandler) Balance(w http.ResponseWriter, r *http.Request) {
	h.serveBalance(w, r, "account", h.balanceUC.Balance)
}

// RollupBalance returns the aggregate balance of a rollup account.
func (h *BalanceHandler) RollupBalance(w http.ResponseWriter, r *http.Request) {
	h.serveBalance(w, r, "rollup", h.balanceUC.RollupBalance)
}

// Credits returns an account's raw credit total.
func (h *BalanceHandler) Credits(w http.ResponseWriter, r *http.Request) {
	h.serveBalance(w, r, "credits", h.balanceUC.CreditsBalance)
}

// Debits returns an account's raw debit total.
func (h *BalanceHandler) Debits(w http.ResponseWriter, r *http.Request) {
	h.serveBalance(w, r, "debits", h.balanceUC.DebitsBalance)
}

// Children lists a rollup account's child accounts.
func (h *BalanceHandler) Children(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "id")
	if accountID == "" {
		writeError(w, http.StatusBadRequest, "missing account ID", "")
		return
	}

	accounts, err := h.balanceUC.ChildAccounts(r.Context(), accountID)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list child accounts", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListAccountsResponse{
		Accounts: dto.AccountsFromDomain(accounts),
		Total:    int64(len(accounts)),
	})
}

type balanceFunc func(ctx context.Context, accountID string, period domain.Period) (decimal.Decimal, error)

func (h *BalanceHandler) serveBalance(w http.ResponseWriter, r *http.Request, kind string, fn balanceFunc) {
	accountID := chi.URLParam(r, "id")
	if accountID == "" {
		writeError(w, http.StatusBadRequest, "missing account ID", "")
		return
	}

	period, err := parsePeriod(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid period", err.Error())
		return
	}

	start := time.Now()

	balance, err := fn(r.Context(), accountID, period)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to compute balance", err.Error())
		return
	}

	h.metrics.BalanceQueries.WithLabelValues(kind).Inc()
	h.metrics.BalanceDuration.Observe(time.Since(start).Seconds())

	from, to := periodBounds(period)
	writeJSON(w, http.StatusOK, dto.BalanceResponse{
		AccountID: accountID,
		Balance:   balance.String(),
		From:      from,
		To:        to,
	})
}
