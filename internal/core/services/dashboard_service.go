package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/lorrc/medspa-leads-backend/internal/core/domain"
	apperrors "github.com/lorrc/medspa-leads-backend/internal/core/errors"
	"github.com/lorrc/medspa-leads-backend/internal/core/metrics"
	"github.com/lorrc/medspa-leads-backend/internal/core/ports"
)

// DashboardService implements the business logic behind the lead
// dashboard. It is the single owner of the dashboard state; handlers
// deliver user intents and read derived views, nothing else.
type DashboardService struct {
	leadRepo    ports.LeadRepository
	broadcaster ports.EventBroadcaster
	sampleSize  int
	logger      *slog.Logger

	mu    sync.RWMutex
	state DashboardState
	wg    sync.WaitGroup
}

var _ ports.DashboardService = (*DashboardService)(nil)

// NewDashboardService creates a new dashboard service.
func NewDashboardService(
	leadRepo ports.LeadRepository,
	broadcaster ports.EventBroadcaster,
	sampleSize int,
	logger *slog.Logger,
) *DashboardService {
	return &DashboardService{
		leadRepo:    leadRepo,
		broadcaster: broadcaster,
		sampleSize:  sampleSize,
		logger:      logger.With("service", "dashboard"),
		state:       NewDashboardState(),
	}
}

// Load replaces the in-memory collection from the store. A listing
// failure or an empty store is not an error: the dashboard falls back
// to generated sample data and stays usable, so loading cannot fail.
func (s *DashboardService) Load(ctx context.Context) int {
	leads, err := s.leadRepo.LoadAll(ctx)
	if err != nil || len(leads) == 0 {
		if err != nil {
			s.logger.Warn("store unavailable, generating sample data", "error", err)
		} else {
			s.logger.Info("store empty, generating sample data")
		}
		leads = GenerateSampleLeads(s.sampleSize)
		metrics.RecordSampleFallback()
	} else {
		metrics.RecordLeadsLoaded(len(leads))
	}

	s.mu.Lock()
	s.state = s.state.WithLeads(leads)
	s.mu.Unlock()

	s.broadcast(domain.Event{Type: domain.EventDataReloaded, Payload: len(leads)})

	return len(leads)
}

// Leads returns a snapshot of the full, unfiltered collection.
func (s *DashboardService) Leads() []domain.Lead {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return snapshot(s.state.Leads)
}

// VisibleLeads records the filter intents on the dashboard state and
// returns the visible subset. An empty result is a valid view.
func (s *DashboardService) VisibleLeads(params ports.FilterParams) []domain.Lead {
	s.mu.Lock()
	s.state = s.state.
		WithSearchTerm(params.SearchTerm).
		WithStatusFilter(params.StatusFilter)
	leads := s.state.Leads
	search := s.state.SearchTerm
	status := s.state.StatusFilter
	s.mu.Unlock()

	return FilterLeads(leads, search, status)
}

// UpdateLeadStatus is the only mutation path in the system. The change
// is applied to the in-memory collection first and persisted in the
// background; a failed save never rolls the local change back, it only
// flags the lead for reconciliation.
func (s *DashboardService) UpdateLeadStatus(ctx context.Context, params ports.UpdateStatusParams) (domain.Lead, error) {
	if params.LeadID == "" {
		return domain.Lead{}, apperrors.ErrLeadIDRequired
	}
	if !params.Status.IsValid() {
		return domain.Lead{}, apperrors.ErrInvalidStatus
	}

	s.mu.Lock()
	next, updated, err := s.state.WithLeadStatus(params.LeadID, params.Status)
	if err != nil {
		s.mu.Unlock()
		return domain.Lead{}, err
	}
	notif := domain.NewNotification(
		fmt.Sprintf("Lead %s updated to %s", updated.Name, params.Status),
		domain.NotificationSuccess,
	)
	s.state = next.WithNotification(notif)
	s.mu.Unlock()

	metrics.RecordStatusUpdate(string(params.Status))

	// Persist best-effort in the background; the UI is optimistic.
	s.wg.Add(1)
	go s.persistLead(updated)

	s.broadcast(domain.Event{Type: domain.EventLeadUpdated, Payload: updated})
	s.broadcast(domain.Event{Type: domain.EventNotification, Payload: notif})

	return updated, nil
}

// persistLead writes one lead back to the store. Failures are logged
// and flagged, never retried or rolled back.
func (s *DashboardService) persistLead(lead domain.Lead) {
	defer s.wg.Done()

	// The originating HTTP request may already be done.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.leadRepo.Save(ctx, lead); err != nil {
		s.logger.Warn("lead save failed, keeping in-memory state",
			"lead_id", lead.ID,
			"error", err,
		)
		metrics.RecordSaveFailure()

		s.mu.Lock()
		s.state = s.state.WithPendingSave(lead.ID)
		s.mu.Unlock()
		return
	}

	s.mu.Lock()
	s.state = s.state.WithSaveSettled(lead.ID)
	s.mu.Unlock()
}

// Stats derives the summary statistics from the current collection.
func (s *DashboardService) Stats() domain.DerivedStats {
	s.mu.RLock()
	leads := s.state.Leads
	s.mu.RUnlock()

	return Aggregate(leads)
}

// Charts derives the three chart series from the current collection.
func (s *DashboardService) Charts() domain.ChartData {
	s.mu.RLock()
	leads := s.state.Leads
	s.mu.RUnlock()

	return domain.ChartData{
		Treatments: TreatmentDistribution(leads),
		Statuses:   StatusDistribution(leads),
		DailyTrend: DailyTrend(leads),
	}
}

// ExportCSV renders the full collection, ignoring any active filters,
// and records the export in the activity feed.
func (s *DashboardService) ExportCSV() ports.ExportResult {
	notif := domain.NewNotification("Data exported successfully", domain.NotificationSuccess)

	s.mu.Lock()
	leads := s.state.Leads
	s.state = s.state.WithNotification(notif)
	s.mu.Unlock()

	metrics.RecordExport()
	s.broadcast(domain.Event{Type: domain.EventNotification, Payload: notif})

	return ports.ExportResult{
		Filename: ExportFilename(time.Now()),
		Content:  LeadsToCSV(leads),
	}
}

// Notifications returns the retained activity feed, newest first.
func (s *DashboardService) Notifications() []domain.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return snapshot(s.state.Notifications)
}

// PendingSaves lists leads whose persisted state may lag the dashboard
// after a failed save.
func (s *DashboardService) PendingSaves() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.state.PendingSaves))
	for id := range s.state.PendingSaves {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Shutdown waits for in-flight background saves to settle.
func (s *DashboardService) Shutdown() {
	s.wg.Wait()
}

func (s *DashboardService) broadcast(event domain.Event) {
	if s.broadcaster == nil {
		return
	}
	_ = s.broadcaster.Broadcast(event)
}

// snapshot copies a slice so callers never alias internal state.
func snapshot[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}
