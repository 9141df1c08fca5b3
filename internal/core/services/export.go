package services

import (
	"encoding/csv"
	"strings"
	"time"

	"github.com/lorrc/medspa-leads-backend/internal/core/domain"
)

// csvDateLayout renders the creation timestamp date-only, matching the
// en-US short date the dashboard displays elsewhere.
const csvDateLayout = "1/2/2006"

// csvHeader is the fixed seven-column export contract.
var csvHeader = []string{"Name", "Email", "Phone", "Treatment", "Status", "Availability", "Created"}

// LeadsToCSV serializes the full collection to CSV, one row per lead in
// input order. Fields containing delimiters or quotes are quoted per
// RFC 4180; for plain fields the output is a bare comma join.
func LeadsToCSV(leads []domain.Lead) string {
	var sb strings.Builder
	w := csv.NewWriter(&sb)

	_ = w.Write(csvHeader)
	for _, lead := range leads {
		_ = w.Write([]string{
			lead.Name,
			lead.Email,
			lead.Phone,
			lead.Treatment,
			string(lead.Status),
			string(lead.Availability),
			lead.Created.Format(csvDateLayout),
		})
	}
	w.Flush()

	return sb.String()
}

// ExportFilename names a CSV download after the export day.
func ExportFilename(now time.Time) string {
	return "medspa-leads-" + now.Format("2006-01-02") + ".csv"
}
