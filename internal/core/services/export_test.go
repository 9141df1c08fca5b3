package services_test

import (
	"strings"
	"testing"
	"time"

	"github.com/lorrc/medspa-leads-backend/internal/core/domain"
	"github.com/lorrc/medspa-leads-backend/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeadsToCSV(t *testing.T) {
	t.Run("renders the seven-column header and one row per lead", func(t *testing.T) {
		leads := []domain.Lead{
			{
				Name:         "Jane Doe",
				Email:        "jane@example.com",
				Phone:        "+234 801 111 1111",
				Treatment:    "Botox",
				Status:       domain.StatusBooked,
				Availability: domain.AvailabilityMorning,
				Created:      time.Date(2026, time.August, 5, 14, 30, 0, 0, time.UTC),
			},
		}

		content := services.LeadsToCSV(leads)
		lines := strings.Split(strings.TrimRight(content, "\n"), "\n")

		require.Len(t, lines, 2)
		assert.Equal(t, "Name,Email,Phone,Treatment,Status,Availability,Created", lines[0])
		assert.Equal(t, "Jane Doe,jane@example.com,+234 801 111 1111,Botox,Booked,Morning,8/5/2026", lines[1])
	})

	t.Run("quotes fields containing delimiters", func(t *testing.T) {
		leads := []domain.Lead{
			{
				Name:    `Doe, Jane`,
				Email:   "jane@example.com",
				Status:  domain.StatusNew,
				Created: time.Date(2026, time.August, 5, 0, 0, 0, 0, time.UTC),
			},
		}

		content := services.LeadsToCSV(leads)

		assert.Contains(t, content, `"Doe, Jane"`)
	})

	t.Run("empty collection yields header only", func(t *testing.T) {
		content := services.LeadsToCSV(nil)
		lines := strings.Split(strings.TrimRight(content, "\n"), "\n")

		require.Len(t, lines, 1)
		assert.Equal(t, "Name,Email,Phone,Treatment,Status,Availability,Created", lines[0])
	})
}

func TestExportFilename(t *testing.T) {
	now := time.Date(2026, time.August, 30, 10, 15, 0, 0, time.UTC)

	assert.Equal(t, "medspa-leads-2026-08-30.csv", services.ExportFilename(now))
}
