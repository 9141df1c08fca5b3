package services_test

import (
	"testing"
	"time"

	"github.com/lorrc/medspa-leads-backend/internal/core/domain"
	"github.com/lorrc/medspa-leads-backend/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregate(t *testing.T) {
	t.Run("empty collection yields zero stats", func(t *testing.T) {
		stats := services.Aggregate(nil)

		assert.Equal(t, domain.DerivedStats{}, stats)
	})

	t.Run("counts statuses and rounds derived values", func(t *testing.T) {
		leads := []domain.Lead{
			{ID: "lead-1", Status: domain.StatusNew, ResponseTime: 2},
			{ID: "lead-2", Status: domain.StatusBooked, ResponseTime: 5},
			{ID: "lead-3", Status: domain.StatusBooked, ResponseTime: 3},
		}

		stats := services.Aggregate(leads)

		assert.Equal(t, 3, stats.Total)
		assert.Equal(t, 1, stats.New)
		assert.Equal(t, 0, stats.Contacted)
		assert.Equal(t, 2, stats.Booked)
		// 2 of 3 booked rounds to one decimal place.
		assert.InDelta(t, 66.7, stats.ConversionRate, 0.001)
		assert.InDelta(t, 3.3, stats.AvgResponseTime, 0.001)
	})

	t.Run("all booked is a 100 percent conversion", func(t *testing.T) {
		leads := []domain.Lead{
			{ID: "lead-1", Status: domain.StatusBooked, ResponseTime: 10},
			{ID: "lead-2", Status: domain.StatusBooked, ResponseTime: 20},
		}

		stats := services.Aggregate(leads)

		assert.InDelta(t, 100.0, stats.ConversionRate, 0.001)
		assert.InDelta(t, 15.0, stats.AvgResponseTime, 0.001)
	})
}

func TestTreatmentDistribution(t *testing.T) {
	t.Run("preserves first-seen order", func(t *testing.T) {
		leads := []domain.Lead{
			{Treatment: "Botox"},
			{Treatment: "Dermal Fillers"},
			{Treatment: "Botox"},
			{Treatment: "Chemical Peels"},
			{Treatment: "Botox"},
		}

		dist := services.TreatmentDistribution(leads)

		require.Len(t, dist, 3)
		assert.Equal(t, domain.TreatmentCount{Name: "Botox", Value: 3}, dist[0])
		assert.Equal(t, domain.TreatmentCount{Name: "Dermal Fillers", Value: 1}, dist[1])
		assert.Equal(t, domain.TreatmentCount{Name: "Chemical Peels", Value: 1}, dist[2])
	})

	t.Run("empty collection yields empty distribution", func(t *testing.T) {
		assert.Empty(t, services.TreatmentDistribution(nil))
	})
}

func TestStatusDistribution(t *testing.T) {
	t.Run("skips empty buckets and tags colors", func(t *testing.T) {
		leads := []domain.Lead{
			{Status: domain.StatusLost},
			{Status: domain.StatusNew},
			{Status: domain.StatusNew},
		}

		dist := services.StatusDistribution(leads)

		require.Len(t, dist, 2)
		// Pipeline display order, not input order.
		assert.Equal(t, domain.StatusCount{Name: domain.StatusNew, Value: 2, Color: "#3b82f6"}, dist[0])
		assert.Equal(t, domain.StatusCount{Name: domain.StatusLost, Value: 1, Color: "#ef4444"}, dist[1])
	})

	t.Run("values sum to the collection size", func(t *testing.T) {
		leads := services.GenerateSampleLeads(40)

		total := 0
		for _, sc := range services.StatusDistribution(leads) {
			total += sc.Value
		}

		assert.Equal(t, len(leads), total)
	})
}

func TestDailyTrend(t *testing.T) {
	day := func(month time.Month, d int, hour int) time.Time {
		return time.Date(2026, month, d, hour, 0, 0, 0, time.UTC)
	}

	t.Run("merges same-day leads and counts bookings", func(t *testing.T) {
		leads := []domain.Lead{
			{Status: domain.StatusBooked, Created: day(time.January, 2, 16)},
			{Status: domain.StatusNew, Created: day(time.January, 1, 9)},
			{Status: domain.StatusBooked, Created: day(time.January, 1, 18)},
		}

		trend := services.DailyTrend(leads)

		require.Len(t, trend, 2)
		assert.Equal(t, domain.TrendPoint{Date: "Jan 1", Leads: 2, Booked: 1}, trend[0])
		assert.Equal(t, domain.TrendPoint{Date: "Jan 2", Leads: 1, Booked: 1}, trend[1])
	})

	t.Run("keeps only the most recent fourteen days", func(t *testing.T) {
		leads := make([]domain.Lead, 0, 20)
		for d := 1; d <= 20; d++ {
			leads = append(leads, domain.Lead{Created: day(time.March, d, 12)})
		}

		trend := services.DailyTrend(leads)

		require.Len(t, trend, 14)
		assert.Equal(t, "Mar 7", trend[0].Date)
		assert.Equal(t, "Mar 20", trend[13].Date)
	})

	t.Run("empty collection yields empty trend", func(t *testing.T) {
		assert.Empty(t, services.DailyTrend(nil))
	})
}
