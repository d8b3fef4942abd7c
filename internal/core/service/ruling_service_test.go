package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/resolvia/dispute-portal/internal/core/domain"
	"github.com/resolvia/dispute-portal/internal/core/ports"
)

type stubRulingRepo struct {
	rulings   []domain.Ruling
	lastQuery ports.RulingQuery
}

func (r *stubRulingRepo) List(_ context.Context, q ports.RulingQuery) ([]domain.Ruling, int64, error) {
	r.lastQuery = q
	return r.rulings, int64(len(r.rulings)), nil
}

func (r *stubRulingRepo) FindByOrderNumber(_ context.Context, orderNumber string) (*domain.Ruling, error) {
	for i := range r.rulings {
		if r.rulings[i].OrderNumber == orderNumber {
			return &r.rulings[i], nil
		}
	}
	return nil, domain.ErrRulingNotFound
}

func sampleRuling() domain.Ruling {
	return domain.Ruling{
		OrderNumber:          "ORD-2024-001",
		CaseNumber:           "C2024-045",
		Category:             "faulty goods",
		Status:               "resolved",
		IssuedDate:           time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		FiledDate:            time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		Content:              "The tribunal finds in favour of the consumer.",
		AdjudicatorFirstName: "Dana",
		AdjudicatorLastName:  "Reyes",
	}
}

func TestRulingService_List_DerivedFields(t *testing.T) {
	repo := &stubRulingRepo{rulings: []domain.Ruling{sampleRuling()}}
	svc := NewRulingService(repo)

	result, err := svc.List(context.Background(), ports.RulingQuery{})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(result.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(result.Items))
	}

	item := result.Items[0]
	if item.Title != "Faulty Goods Decision" {
		t.Fatalf("unexpected title: %q", item.Title)
	}
	if item.Summary != "The tribunal finds in favour of the consumer." {
		t.Fatalf("unexpected summary: %q", item.Summary)
	}
	if item.AdjudicatorName != "Dana Reyes" {
		t.Fatalf("unexpected adjudicator name: %q", item.AdjudicatorName)
	}
}

func TestRulingService_List_NormalizesPagination(t *testing.T) {
	repo := &stubRulingRepo{}
	svc := NewRulingService(repo)

	if _, err := svc.List(context.Background(), ports.RulingQuery{Page: -2, Limit: 0}); err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if repo.lastQuery.Page != 1 || repo.lastQuery.Limit != defaultPageLimit {
		t.Fatalf("expected page=1 limit=%d, got %+v", defaultPageLimit, repo.lastQuery)
	}

	if _, err := svc.List(context.Background(), ports.RulingQuery{Page: 3, Limit: 5000}); err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if repo.lastQuery.Limit != maxPageLimit {
		t.Fatalf("expected limit clamped to %d, got %d", maxPageLimit, repo.lastQuery.Limit)
	}
}

func TestRulingService_TitleFallback(t *testing.T) {
	ruling := sampleRuling()
	ruling.Category = ""
	repo := &stubRulingRepo{rulings: []domain.Ruling{ruling}}
	svc := NewRulingService(repo)

	result, err := svc.List(context.Background(), ports.RulingQuery{})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if got := result.Items[0].Title; got != "Decision for C2024-045" {
		t.Fatalf("unexpected fallback title: %q", got)
	}
}

func TestRulingService_SummaryClamped(t *testing.T) {
	ruling := sampleRuling()
	ruling.Content = strings.Repeat("word ", 200)
	repo := &stubRulingRepo{rulings: []domain.Ruling{ruling}}
	svc := NewRulingService(repo)

	result, err := svc.List(context.Background(), ports.RulingQuery{})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}

	summary := result.Items[0].Summary
	if got := len([]rune(summary)); got > summaryMaxLen {
		t.Fatalf("summary exceeds %d runes: %d", summaryMaxLen, got)
	}
	if !strings.HasSuffix(summary, "…") {
		t.Fatalf("clamped summary should end with ellipsis: %q", summary)
	}
}

func TestRulingService_SummaryFallback(t *testing.T) {
	ruling := sampleRuling()
	ruling.Content = "   \n\t "
	repo := &stubRulingRepo{rulings: []domain.Ruling{ruling}}
	svc := NewRulingService(repo)

	result, err := svc.List(context.Background(), ports.RulingQuery{})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if result.Items[0].Summary != fallbackSummary {
		t.Fatalf("expected fallback summary, got %q", result.Items[0].Summary)
	}
}

func TestRulingService_Get(t *testing.T) {
	repo := &stubRulingRepo{rulings: []domain.Ruling{sampleRuling()}}
	svc := NewRulingService(repo)

	detail, err := svc.Get(context.Background(), "ORD-2024-001")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if detail.Content != "The tribunal finds in favour of the consumer." {
		t.Fatalf("unexpected content: %q", detail.Content)
	}
	if detail.FiledDate.IsZero() {
		t.Fatalf("expected filed date on detail")
	}

	if _, err := svc.Get(context.Background(), "ORD-0000-000"); !errors.Is(err, domain.ErrRulingNotFound) {
		t.Fatalf("expected ErrRulingNotFound, got %v", err)
	}
}
