package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/resolvia/dispute-portal/internal/core/domain"
	"github.com/resolvia/dispute-portal/internal/core/ports"
)

const (
	summaryMaxLen  = 240
	fallbackSummary = "Final decision issued by the tribunal. Details will be available soon."

	defaultPageLimit = 20
	maxPageLimit     = 100
)

// RulingService shapes published rulings for the public directory. Title,
// summary and adjudicator display name are derived on the way out and never
// stored.
type RulingService struct {
	repo ports.RulingRepository
}

func NewRulingService(repo ports.RulingRepository) *RulingService {
	return &RulingService{repo: repo}
}

func (s *RulingService) List(ctx context.Context, q ports.RulingQuery) (*ports.RulingListResult, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = defaultPageLimit
	}
	if q.Limit > maxPageLimit {
		q.Limit = maxPageLimit
	}

	rulings, total, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, err
	}

	items := make([]ports.RulingListItem, 0, len(rulings))
	for i := range rulings {
		items = append(items, listItem(&rulings[i]))
	}
	return &ports.RulingListResult{Items: items, Total: total, Page: q.Page, Limit: q.Limit}, nil
}

func (s *RulingService) Get(ctx context.Context, orderNumber string) (*ports.RulingDetail, error) {
	ruling, err := s.repo.FindByOrderNumber(ctx, orderNumber)
	if err != nil {
		return nil, err
	}
	return &ports.RulingDetail{
		RulingListItem:  listItem(ruling),
		FiledDate:       ruling.FiledDate,
		CaseDescription: ruling.CaseDescription,
		Content:         ruling.Content,
		PDFPath:         ruling.PDFPath,
	}, nil
}

func listItem(r *domain.Ruling) ports.RulingListItem {
	return ports.RulingListItem{
		OrderNumber:     r.OrderNumber,
		CaseNumber:      r.CaseNumber,
		Title:           buildTitle(r),
		Category:        r.Category,
		IssuedDate:      r.IssuedDate,
		Status:          r.Status,
		ClaimAmount:     r.ClaimAmount,
		Summary:         buildSummary(r.Content),
		AdjudicatorName: adjudicatorName(r),
	}
}

// buildTitle prefers "<Category> Decision" and falls back to the case number
// when the case was filed without a category.
func buildTitle(r *domain.Ruling) string {
	if r.Category != "" {
		return titleCase(r.Category) + " Decision"
	}
	return "Decision for " + r.CaseNumber
}

// buildSummary collapses whitespace and clamps the decision text to 240
// characters, reserving room for an ellipsis.
func buildSummary(content string) string {
	trimmed := strings.Join(strings.Fields(content), " ")
	if trimmed == "" {
		return fallbackSummary
	}
	if utf8.RuneCountInString(trimmed) <= summaryMaxLen {
		return trimmed
	}
	runes := []rune(trimmed)
	return string(runes[:summaryMaxLen-3]) + "…"
}

func adjudicatorName(r *domain.Ruling) string {
	first := strings.TrimSpace(r.AdjudicatorFirstName)
	last := strings.TrimSpace(r.AdjudicatorLastName)
	switch {
	case first != "" && last != "":
		return first + " " + last
	case first != "":
		return first
	default:
		return last
	}
}

func titleCase(s string) string {
	parts := strings.Split(s, " ")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}
