package domain_test

import (
	"testing"
	"time"

	"github.com/lorrc/medspa-leads-backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestLeadStatus_IsValid(t *testing.T) {
	for _, status := range domain.AllStatuses {
		assert.True(t, status.IsValid(), "status %q", status)
	}

	assert.False(t, domain.LeadStatus("").IsValid())
	assert.False(t, domain.LeadStatus("Archived").IsValid())
	assert.False(t, domain.LeadStatus("new").IsValid(), "statuses are case-sensitive")
}

func TestLead_WithStatus(t *testing.T) {
	original := domain.Lead{
		ID:           "lead-1",
		Name:         "Jane Doe",
		Email:        "jane@example.com",
		Status:       domain.StatusLost,
		Created:      time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC),
		ResponseTime: 4,
	}

	// Transitions are unrestricted, including out of Lost.
	updated := original.WithStatus(domain.StatusBooked)

	assert.Equal(t, domain.StatusBooked, updated.Status)
	assert.Equal(t, domain.StatusLost, original.Status)

	updated.Status = original.Status
	assert.Equal(t, original, updated, "only the status may change")
}

func TestNewNotification(t *testing.T) {
	before := time.Now().UTC()
	n := domain.NewNotification("Data exported successfully", domain.NotificationSuccess)
	after := time.Now().UTC()

	assert.Equal(t, "Data exported successfully", n.Message)
	assert.Equal(t, domain.NotificationSuccess, n.Type)
	assert.Equal(t, n.Timestamp.UnixMilli(), n.ID)
	assert.False(t, n.Timestamp.Before(before))
	assert.False(t, n.Timestamp.After(after))
}
