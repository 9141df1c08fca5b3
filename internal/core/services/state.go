package services

import (
	"github.com/lorrc/medspa-leads-backend/internal/core/domain"
	apperrors "github.com/lorrc/medspa-leads-backend/internal/core/errors"
)

// maxNotifications bounds the activity feed; older entries are dropped.
const maxNotifications = 5

// DashboardState is the complete in-memory state behind the dashboard:
// the lead collection, the active filter intents, the activity feed and
// the set of leads whose last save failed. It is a value type; every
// mutation goes through a pure With* updater that returns a new state.
type DashboardState struct {
	Leads         []domain.Lead
	SearchTerm    string
	StatusFilter  string
	Notifications []domain.Notification
	PendingSaves  map[string]bool
}

// NewDashboardState returns an empty state with no active filters.
func NewDashboardState() DashboardState {
	return DashboardState{
		StatusFilter: "all",
		PendingSaves: map[string]bool{},
	}
}

// WithLeads replaces the lead collection.
func (s DashboardState) WithLeads(leads []domain.Lead) DashboardState {
	s.Leads = leads
	return s
}

// WithSearchTerm records a search-term-changed intent.
func (s DashboardState) WithSearchTerm(term string) DashboardState {
	s.SearchTerm = term
	return s
}

// WithStatusFilter records a status-filter-changed intent.
func (s DashboardState) WithStatusFilter(filter string) DashboardState {
	s.StatusFilter = filter
	return s
}

// WithLeadStatus returns a new state in which only the matching lead's
// status is replaced, together with the updated lead. The collection is
// left untouched when the lead is not found.
func (s DashboardState) WithLeadStatus(leadID string, status domain.LeadStatus) (DashboardState, domain.Lead, error) {
	for i, lead := range s.Leads {
		if lead.ID != leadID {
			continue
		}

		updated := lead.WithStatus(status)
		leads := make([]domain.Lead, len(s.Leads))
		copy(leads, s.Leads)
		leads[i] = updated

		s.Leads = leads
		return s, updated, nil
	}

	return s, domain.Lead{}, apperrors.ErrLeadNotFound
}

// WithNotification prepends a notification and truncates the feed to
// the retention limit.
func (s DashboardState) WithNotification(n domain.Notification) DashboardState {
	feed := make([]domain.Notification, 0, len(s.Notifications)+1)
	feed = append(feed, n)
	feed = append(feed, s.Notifications...)
	if len(feed) > maxNotifications {
		feed = feed[:maxNotifications]
	}

	s.Notifications = feed
	return s
}

// WithPendingSave flags a lead whose persisted state may lag the
// in-memory state after a failed save.
func (s DashboardState) WithPendingSave(leadID string) DashboardState {
	pending := make(map[string]bool, len(s.PendingSaves)+1)
	for id := range s.PendingSaves {
		pending[id] = true
	}
	pending[leadID] = true

	s.PendingSaves = pending
	return s
}

// WithSaveSettled clears the reconciliation flag for a lead after a
// successful save.
func (s DashboardState) WithSaveSettled(leadID string) DashboardState {
	if !s.PendingSaves[leadID] {
		return s
	}

	pending := make(map[string]bool, len(s.PendingSaves))
	for id := range s.PendingSaves {
		if id != leadID {
			pending[id] = true
		}
	}

	s.PendingSaves = pending
	return s
}
