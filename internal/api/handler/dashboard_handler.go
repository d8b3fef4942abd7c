package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/resolvia/dispute-portal/internal/core/domain"
)

// DashboardHandler serves the role-scoped dashboard data. Stats and
// activity are placeholder values until the case-management service is
// connected; the shapes match what the portal frontend renders.
type DashboardHandler struct{}

func NewDashboardHandler() *DashboardHandler {
	return &DashboardHandler{}
}

type dashboardStats struct {
	ActiveCases      int `json:"activeCases"`
	PendingActions   int `json:"pendingActions"`
	UnreadMessages   int `json:"unreadMessages"`
	UpcomingHearings int `json:"upcomingHearings"`
}

type activityItem struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	CaseNumber  string    `json:"caseNumber"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
	Href        string    `json:"href,omitempty"`
}

type dashboardResponse struct {
	Role       string         `json:"role"`
	Greeting   string         `json:"greeting"`
	Stats      dashboardStats `json:"stats"`
	Activities []activityItem `json:"activities"`
}

// Show returns the dashboard for one role. The gate guarantees the session
// role matches before this runs; the RBAC middleware backs that up.
func (h *DashboardHandler) Show(role domain.Role) echo.HandlerFunc {
	return func(c echo.Context) error {
		p, err := ctxPrincipal(c)
		if err != nil {
			return err
		}

		greeting := "Welcome back"
		if p.FirstName != "" {
			greeting = "Welcome back, " + p.FirstName
		}

		return c.JSON(http.StatusOK, dashboardResponse{
			Role:       string(role),
			Greeting:   greeting,
			Stats:      placeholderStats(),
			Activities: placeholderActivities(),
		})
	}
}

func placeholderStats() dashboardStats {
	return dashboardStats{
		ActiveCases:      2,
		PendingActions:   1,
		UnreadMessages:   3,
		UpcomingHearings: 0,
	}
}

func placeholderActivities() []activityItem {
	now := time.Now()
	return []activityItem{
		{
			ID:          "1",
			Type:        "status_update",
			CaseNumber:  "C2024-045",
			Description: "New status update for case #C2024-045: Under Review",
			Timestamp:   now.Add(-1 * 24 * time.Hour),
			Href:        "/cases/C2024-045",
		},
		{
			ID:          "2",
			Type:        "message",
			CaseNumber:  "C2024-012",
			Description: "New message from mediator regarding case #C2024-012",
			Timestamp:   now.Add(-3 * 24 * time.Hour),
			Href:        "/cases/C2024-012/messages",
		},
		{
			ID:          "3",
			Type:        "filed",
			CaseNumber:  "C2024-045",
			Description: "Complaint #C2024-045 successfully filed.",
			Timestamp:   now.Add(-4 * 24 * time.Hour),
			Href:        "/cases/C2024-045",
		},
	}
}

// Cases handles GET /cases — the signed-in user's case summaries. Backed by
// the same placeholder source as the dashboard until the case service lands.
func (h *DashboardHandler) Cases(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{
		"owner": p.Email,
		"cases": placeholderActivities(),
	})
}
