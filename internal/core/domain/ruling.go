package domain

import "time"

// Ruling is a published adjudication decision in the public directory.
// Rulings are written by out-of-scope adjudication tooling; this service
// only reads them.
type Ruling struct {
	OrderNumber     string    `json:"order_number"`
	CaseNumber      string    `json:"case_number"`
	Category        string    `json:"category,omitempty"`
	Status          string    `json:"status"`
	FiledDate       time.Time `json:"filed_date"`
	IssuedDate      time.Time `json:"issued_date"`
	ClaimAmount     float64   `json:"claim_amount,omitempty"`
	CaseDescription string    `json:"case_description,omitempty"`
	Content         string    `json:"content"`
	PDFPath         string    `json:"pdf_path,omitempty"`
	AdjudicatorFirstName string `json:"-"`
	AdjudicatorLastName  string `json:"-"`
}
