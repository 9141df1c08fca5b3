package ports

import (
	"context"

	"github.com/lorrc/medspa-leads-backend/internal/core/domain"
)

// UpdateStatusParams defines the input for changing a lead's status.
type UpdateStatusParams struct {
	LeadID string
	Status domain.LeadStatus
}

// FilterParams defines the active search and status filter.
type FilterParams struct {
	SearchTerm   string
	StatusFilter string
}

// ExportResult is a rendered CSV export ready for download.
type ExportResult struct {
	Filename string
	Content  string
}

// DashboardService defines the core operations behind the dashboard.
type DashboardService interface {
	// Load replaces the in-memory collection from the store, falling
	// back to generated sample data when the store is unreachable or
	// empty. The fallback means loading cannot fail; Load returns the
	// number of leads now held.
	Load(ctx context.Context) int
	// Leads returns a snapshot of the full, unfiltered collection.
	Leads() []domain.Lead
	// VisibleLeads applies the given filter intents to dashboard
	// state and returns the resulting view.
	VisibleLeads(params FilterParams) []domain.Lead
	// UpdateLeadStatus applies a status transition to one lead,
	// persists it best-effort, and records a notification.
	UpdateLeadStatus(ctx context.Context, params UpdateStatusParams) (domain.Lead, error)
	// Stats derives the summary statistics from the collection.
	Stats() domain.DerivedStats
	// Charts derives the three chart series from the collection.
	Charts() domain.ChartData
	// ExportCSV renders the full collection as a CSV download.
	ExportCSV() ExportResult
	// Notifications returns the retained activity feed, newest first.
	Notifications() []domain.Notification
	// PendingSaves lists lead IDs whose last save failed and whose
	// persisted state may lag the in-memory state.
	PendingSaves() []string
	// Shutdown waits for in-flight background saves to settle.
	Shutdown()
}

// EventBroadcaster defines the port for pushing real-time events to
// connected dashboard clients.
type EventBroadcaster interface {
	Broadcast(event domain.Event) error
}
