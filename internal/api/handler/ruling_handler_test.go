package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/resolvia/dispute-portal/internal/core/domain"
	"github.com/resolvia/dispute-portal/internal/core/ports"
)

type stubRulingService struct {
	listFn func(ctx context.Context, q ports.RulingQuery) (*ports.RulingListResult, error)
	getFn  func(ctx context.Context, orderNumber string) (*ports.RulingDetail, error)
}

func (s *stubRulingService) List(ctx context.Context, q ports.RulingQuery) (*ports.RulingListResult, error) {
	return s.listFn(ctx, q)
}

func (s *stubRulingService) Get(ctx context.Context, orderNumber string) (*ports.RulingDetail, error) {
	return s.getFn(ctx, orderNumber)
}

type memRulingCache struct {
	entries map[string][]byte
}

func (c *memRulingCache) Get(_ context.Context, category string, page, limit int) ([]byte, error) {
	return c.entries[cacheKey(category, page, limit)], nil
}

func (c *memRulingCache) Set(_ context.Context, category string, page, limit int, payload []byte) error {
	if c.entries == nil {
		c.entries = make(map[string][]byte)
	}
	c.entries[cacheKey(category, page, limit)] = payload
	return nil
}

func cacheKey(category string, page, limit int) string {
	return fmt.Sprintf("%s|%d|%d", category, page, limit)
}

func rulingContext(t *testing.T, path string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func sampleResult() *ports.RulingListResult {
	return &ports.RulingListResult{
		Items: []ports.RulingListItem{{
			OrderNumber: "ORD-2024-001",
			CaseNumber:  "C2024-045",
			Title:       "Faulty Goods Decision",
			IssuedDate:  time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			Status:      "resolved",
			Summary:     "The tribunal finds in favour of the consumer.",
		}},
		Total: 1,
		Page:  1,
		Limit: 20,
	}
}

func TestRulingHandler_List_PopulatesCache(t *testing.T) {
	calls := 0
	stub := &stubRulingService{
		listFn: func(_ context.Context, q ports.RulingQuery) (*ports.RulingListResult, error) {
			calls++
			if q.Category != "faulty goods" {
				t.Fatalf("unexpected category: %q", q.Category)
			}
			return sampleResult(), nil
		},
	}
	cache := &memRulingCache{}
	h := NewRulingHandler(stub, cache, zerolog.Nop())

	for i := 0; i < 2; i++ {
		c, rec := rulingContext(t, "/rulings?category=faulty+goods")
		if err := h.List(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}

		var result ports.RulingListResult
		if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if len(result.Items) != 1 || result.Items[0].OrderNumber != "ORD-2024-001" {
			t.Fatalf("unexpected result: %+v", result)
		}
	}

	if calls != 1 {
		t.Fatalf("expected a single service call with a warm cache, got %d", calls)
	}
}

func TestRulingHandler_List_NilCache(t *testing.T) {
	stub := &stubRulingService{
		listFn: func(context.Context, ports.RulingQuery) (*ports.RulingListResult, error) {
			return sampleResult(), nil
		},
	}
	h := NewRulingHandler(stub, nil, zerolog.Nop())

	c, rec := rulingContext(t, "/rulings")
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRulingHandler_Get_NotFound(t *testing.T) {
	stub := &stubRulingService{
		getFn: func(context.Context, string) (*ports.RulingDetail, error) {
			return nil, domain.ErrRulingNotFound
		},
	}
	h := NewRulingHandler(stub, nil, zerolog.Nop())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/rulings/ORD-0000-000", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("order_number")
	c.SetParamValues("ORD-0000-000")

	if err := h.Get(c); !errors.Is(err, domain.ErrRulingNotFound) {
		t.Fatalf("expected ErrRulingNotFound, got %v", err)
	}
}
