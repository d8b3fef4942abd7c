package ports

import (
	"context"
	"time"
)

// RulingListItem is the public shape of one directory entry. Title, summary
// and adjudicator name are derived by the service, not stored.
type RulingListItem struct {
	OrderNumber     string    `json:"order_number"`
	CaseNumber      string    `json:"case_number"`
	Title           string    `json:"title"`
	Category        string    `json:"category,omitempty"`
	IssuedDate      time.Time `json:"issued_date"`
	Status          string    `json:"status"`
	ClaimAmount     float64   `json:"claim_amount,omitempty"`
	Summary         string    `json:"summary"`
	AdjudicatorName string    `json:"adjudicator_name,omitempty"`
}

// RulingDetail extends the list item with the full decision.
type RulingDetail struct {
	RulingListItem
	FiledDate       time.Time `json:"filed_date"`
	CaseDescription string    `json:"case_description,omitempty"`
	Content         string    `json:"content"`
	PDFPath         string    `json:"pdf_path,omitempty"`
}

// RulingListResult is one page of the directory plus the total match count.
type RulingListResult struct {
	Items []RulingListItem `json:"items"`
	Total int64            `json:"total"`
	Page  int              `json:"page"`
	Limit int              `json:"limit"`
}

type RulingService interface {
	List(ctx context.Context, q RulingQuery) (*RulingListResult, error)
	Get(ctx context.Context, orderNumber string) (*RulingDetail, error)
}
