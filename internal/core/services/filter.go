package services

import (
	"strings"

	"github.com/lorrc/medspa-leads-backend/internal/core/domain"
)

// FilterLeads applies the search term and status filter to the
// collection, returning a stable subsequence in the original order.
// The search matches name and email case-insensitively and phone
// case-sensitively; the status filter requires an exact match unless
// it is "all" (or empty). Both conditions are ANDed when active.
func FilterLeads(leads []domain.Lead, searchTerm, statusFilter string) []domain.Lead {
	term := strings.ToLower(searchTerm)

	filtered := make([]domain.Lead, 0, len(leads))
	for _, lead := range leads {
		if searchTerm != "" &&
			!strings.Contains(strings.ToLower(lead.Name), term) &&
			!strings.Contains(strings.ToLower(lead.Email), term) &&
			!strings.Contains(lead.Phone, searchTerm) {
			continue
		}

		if statusFilter != "" && statusFilter != "all" && string(lead.Status) != statusFilter {
			continue
		}

		filtered = append(filtered, lead)
	}

	return filtered
}
