package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dtella/chartledger/internal/adapter/http/dto"
	"github.com/dtella/chartledger/internal/domain"
	"github.com/dtella/chartledger/internal/usecase"
)

type entryServiceStub struct {
	createFn func(ctx context.Context, input usecase.CreateEntryInput) (*domain.Entry, error)
	getFn    func(ctx context.Context, id string) (*domain.Entry, error)
	listFn   func(ctx context.Context, input usecase.ListEntriesByAccountInput) ([]*domain.Entry, error)
}

func (s *entryServiceStub) CreateEntry(ctx context.Context, input usecase.CreateEntryInput) (*domain.Entry, error) {
	return s.createFn(ctx, input)
}

func (s *entryServiceStub) GetEntry(ctx context.Context, id string) (*domain.Entry, error) {
	return s.getFn(ctx, id)
}

func (s *entryServiceStub) ListEntriesByAccount(ctx context.Context, input usecase.ListEntriesByAccountInput) ([]*domain.Entry, error) {
	return s.listFn(ctx, input)
}

func postEntryBody(t *testing.T) *bytes.Reader {
	t.Helper()

	body, err := json.Marshal(dto.CreateEntryRequest{
		Description: "office supplies",
		Date:        "2026-03-01",
		Amounts: []dto.AmountItem{
			{AccountID: "acc-exp", Side: "debit", Amount: decimal.NewFromInt(75)},
			{AccountID: "acc-cash", Side: "credit", Amount: decimal.NewFromInt(75)},
		},
	})
	if err != nil {
		t.Fatalf("failed to marshal request: %v", err)
	}
	return bytes.NewReader(body)
}

func TestEntryHandler_Create_Success(t *testing.T) {
	entry := &domain.Entry{
		ID:          "ent-1",
		Description: "office supplies",
		Date:        time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		Amounts: []domain.Amount{
			{ID: "amt-1", EntryID: "ent-1", AccountID: "acc-exp", Side: domain.Debit, Amount: decimal.NewFromInt(75)},
			{ID: "amt-2", EntryID: "ent-1", AccountID: "acc-cash", Side: domain.Credit, Amount: decimal.NewFromInt(75)},
		},
	}

	var captured usecase.CreateEntryInput
	h := NewEntryHandler(&entryServiceStub{
		createFn: func(ctx context.Context, input usecase.CreateEntryInput) (*domain.Entry, error) {
			captured = input
			return entry, nil
		},
	}, testMetrics)

	req := httptest.NewRequest(http.MethodPost, "/entries", postEntryBody(t))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	if len(captured.Amounts) != 2 || captured.Amounts[0].Side != domain.Debit {
		t.Fatalf("expected input to match request, got %+v", captured)
	}
	if captured.Date.Format("2006-01-02") != "2026-03-01" {
		t.Fatalf("expected parsed date, got %v", captured.Date)
	}

	var resp dto.EntryResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.ID != "ent-1" || len(resp.Amounts) != 2 {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestEntryHandler_Create_BadDate(t *testing.T) {
	h := NewEntryHandler(&entryServiceStub{
		createFn: func(ctx context.Context, input usecase.CreateEntryInput) (*domain.Entry, error) {
			t.Fatal("CreateEntry should not be called for a malformed date")
			return nil, nil
		},
	}, testMetrics)

	body, _ := json.Marshal(dto.CreateEntryRequest{Description: "x", Date: "03/01/2026"})
	req := httptest.NewRequest(http.MethodPost, "/entries", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestEntryHandler_Create_Unbalanced(t *testing.T) {
	h := NewEntryHandler(&entryServiceStub{
		createFn: func(ctx context.Context, input usecase.CreateEntryInput) (*domain.Entry, error) {
			return nil, domain.ErrUnbalancedEntry
		},
	}, testMetrics)

	req := httptest.NewRequest(http.MethodPost, "/entries", postEntryBody(t))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestEntryHandler_Create_RollupAccount(t *testing.T) {
	h := NewEntryHandler(&entryServiceStub{
		createFn: func(ctx context.Context, input usecase.CreateEntryInput) (*domain.Entry, error) {
			return nil, domain.ErrAmountOnRollup
		},
	}, testMetrics)

	req := httptest.NewRequest(http.MethodPost, "/entries", postEntryBody(t))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestEntryHandler_Get_NotFound(t *testing.T) {
	h := NewEntryHandler(&entryServiceStub{
		getFn: func(ctx context.Context, id string) (*domain.Entry, error) {
			return nil, domain.ErrEntryNotFound
		},
	}, testMetrics)

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/entries/missing", nil), "id", "missing")
	rec := httptest.NewRecorder()

	h.Get(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestEntryHandler_ListByAccount(t *testing.T) {
	h := NewEntryHandler(&entryServiceStub{
		listFn: func(ctx context.Context, input usecase.ListEntriesByAccountInput) ([]*domain.Entry, error) {
			if input.AccountID != "acc-1" || input.Limit != 5 {
				t.Fatalf("unexpected input: %+v", input)
			}
			return []*domain.Entry{{ID: "ent-1", Description: "first"}}, nil
		},
	}, testMetrics)

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/accounts/acc-1/entries?limit=5", nil), "id", "acc-1")
	rec := httptest.NewRecorder()

	h.ListByAccount(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp dto.ListEntriesResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Total != 1 || resp.Entries[0].ID != "ent-1" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}
