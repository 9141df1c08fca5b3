package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/lorrc/medspa-leads-backend/internal/adapters/primary/validation"
	"github.com/lorrc/medspa-leads-backend/internal/core/domain"
	"github.com/lorrc/medspa-leads-backend/internal/core/ports"
)

// LeadHandler handles HTTP requests for the lead collection
type LeadHandler struct {
	dashboard    ports.DashboardService
	errorHandler *ErrorHandler
	logger       *slog.Logger
}

// NewLeadHandler creates a new lead handler
func NewLeadHandler(
	dashboard ports.DashboardService,
	errorHandler *ErrorHandler,
	logger *slog.Logger,
) *LeadHandler {
	return &LeadHandler{
		dashboard:    dashboard,
		errorHandler: errorHandler,
		logger:       logger.With("handler", "lead"),
	}
}

// RegisterRoutes sets up the routing for all lead endpoints.
func (h *LeadHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.HandleListLeads)
	r.Get("/export", h.HandleExport)
	r.Post("/reload", h.HandleReload)

	r.Route("/{leadID}", func(r chi.Router) {
		r.Patch("/status", h.HandleUpdateStatus)
	})
}

// --- Request/Response DTOs ---

// UpdateStatusRequest defines the expected JSON body for status updates
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// Validate validates the update status request
func (r *UpdateStatusRequest) Validate() error {
	v := validation.NewValidator()

	v.Required("status", r.Status).
		OneOf("status", r.Status, []string{"New", "Contacted", "Qualified", "Booked", "Lost"})

	if v.HasErrors() {
		return v.Errors()
	}
	return nil
}

// LeadDTO defines the JSON response for leads.
type LeadDTO struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Phone        string  `json:"phone"`
	Treatment    string  `json:"treatment"`
	Status       string  `json:"status"`
	Availability string  `json:"availability"`
	Source       string  `json:"source"`
	Message      string  `json:"message"`
	Created      string  `json:"created"`
	ResponseTime float64 `json:"responseTime"`
}

func toLeadDTO(lead domain.Lead) LeadDTO {
	return LeadDTO{
		ID:           lead.ID,
		Name:         lead.Name,
		Email:        lead.Email,
		Phone:        lead.Phone,
		Treatment:    lead.Treatment,
		Status:       string(lead.Status),
		Availability: string(lead.Availability),
		Source:       lead.Source,
		Message:      lead.Message,
		Created:      lead.Created.Format(time.RFC3339),
		ResponseTime: lead.ResponseTime,
	}
}

func toLeadDTOs(leads []domain.Lead) []LeadDTO {
	response := make([]LeadDTO, 0, len(leads))
	for _, lead := range leads {
		response = append(response, toLeadDTO(lead))
	}
	return response
}

// --- Handlers ---

// HandleListLeads handles GET /leads with optional search and status
// filter intents.
func (h *LeadHandler) HandleListLeads(w http.ResponseWriter, r *http.Request) {
	search := ""
	if s := validation.ParseStringQueryParam(r, "search"); s != nil {
		search = *s
	}

	status := "all"
	if s := validation.ParseStringQueryParam(r, "status"); s != nil {
		status = *s
	}

	leads := h.dashboard.VisibleLeads(ports.FilterParams{
		SearchTerm:   search,
		StatusFilter: status,
	})

	WriteList(w, toLeadDTOs(leads))
}

// HandleUpdateStatus handles PATCH /leads/{leadID}/status
func (h *LeadHandler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	leadID := chi.URLParam(r, "leadID")

	req, err := validation.DecodeAndValidate[UpdateStatusRequest](r)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	lead, err := h.dashboard.UpdateLeadStatus(r.Context(), ports.UpdateStatusParams{
		LeadID: leadID,
		Status: domain.LeadStatus(req.Status),
	})
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	WriteSuccess(w, toLeadDTO(lead))
}

// HandleExport handles GET /leads/export. The export always covers the
// full collection, ignoring any active search or status filter.
func (h *LeadHandler) HandleExport(w http.ResponseWriter, r *http.Request) {
	result := h.dashboard.ExportCSV()

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+result.Filename+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(result.Content))
}

// HandleReload handles POST /leads/reload
func (h *LeadHandler) HandleReload(w http.ResponseWriter, r *http.Request) {
	count := h.dashboard.Load(r.Context())

	WriteSuccess(w, map[string]int{"count": count})
}
