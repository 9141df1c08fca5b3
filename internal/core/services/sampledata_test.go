package services_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/lorrc/medspa-leads-backend/internal/core/domain"
	"github.com/lorrc/medspa-leads-backend/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSampleLeads(t *testing.T) {
	t.Run("produces the requested number of leads", func(t *testing.T) {
		leads := services.GenerateSampleLeads(25)

		require.Len(t, leads, 25)
	})

	t.Run("generated fields stay within their domains", func(t *testing.T) {
		now := time.Now().UTC()
		leads := services.GenerateSampleLeads(50)

		for i, lead := range leads {
			assert.Equal(t, fmt.Sprintf("lead-%d", i+1), lead.ID)
			assert.Equal(t, fmt.Sprintf("Lead %d", i+1), lead.Name)
			assert.Equal(t, fmt.Sprintf("lead%d@example.com", i+1), lead.Email)
			assert.Equal(t, "Landing page", lead.Source)
			assert.Equal(t, "Interested in consultation", lead.Message)

			assert.True(t, lead.Status.IsValid(), "status %q", lead.Status)
			assert.Contains(t, domain.AllAvailabilities, lead.Availability)

			assert.False(t, lead.Created.After(now), "created in the future")
			assert.True(t, lead.Created.After(now.Add(-31*24*time.Hour)), "created too far in the past")

			assert.GreaterOrEqual(t, lead.ResponseTime, 0.0)
			assert.Less(t, lead.ResponseTime, 48.0)
		}
	})

	t.Run("zero leads is a valid request", func(t *testing.T) {
		assert.Empty(t, services.GenerateSampleLeads(0))
	})
}
