package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/lorrc/medspa-leads-backend/internal/core/domain"
	"github.com/lorrc/medspa-leads-backend/internal/core/ports"
)

// DashboardHandler serves the derived views behind the dashboard:
// summary statistics, chart series and the activity feed.
type DashboardHandler struct {
	dashboard ports.DashboardService
	logger    *slog.Logger
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboard ports.DashboardService, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboard: dashboard,
		logger:    logger.With("handler", "dashboard"),
	}
}

// RegisterRoutes sets up the routing for the dashboard endpoints.
func (h *DashboardHandler) RegisterRoutes(r chi.Router) {
	r.Get("/stats", h.HandleStats)
	r.Get("/charts", h.HandleCharts)
}

// StatsResponse is the summary payload for the dashboard header cards.
type StatsResponse struct {
	domain.DerivedStats
	PendingSaves []string `json:"pendingSaves,omitempty"`
}

// HandleStats handles GET /dashboard/stats
func (h *DashboardHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, StatsResponse{
		DerivedStats: h.dashboard.Stats(),
		PendingSaves: h.dashboard.PendingSaves(),
	})
}

// HandleCharts handles GET /dashboard/charts
func (h *DashboardHandler) HandleCharts(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, h.dashboard.Charts())
}

// NotificationDTO defines the JSON response for activity feed entries.
type NotificationDTO struct {
	ID        int64  `json:"id"`
	Message   string `json:"message"`
	Type      string `json:"type"`
	Timestamp string `json:"timestamp"`
}

// NotificationHandler serves the retained activity feed.
type NotificationHandler struct {
	dashboard ports.DashboardService
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(dashboard ports.DashboardService) *NotificationHandler {
	return &NotificationHandler{dashboard: dashboard}
}

// HandleList handles GET /notifications, newest first.
func (h *NotificationHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	notifications := h.dashboard.Notifications()

	dtos := make([]NotificationDTO, 0, len(notifications))
	for _, n := range notifications {
		dtos = append(dtos, NotificationDTO{
			ID:        n.ID,
			Message:   n.Message,
			Type:      string(n.Type),
			Timestamp: n.Timestamp.Format(time.RFC3339),
		})
	}

	WriteList(w, dtos)
}
