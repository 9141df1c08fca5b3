package services

import (
	"math"
	"sort"
	"time"

	"github.com/lorrc/medspa-leads-backend/internal/core/domain"
)

// trendLabelLayout formats a creation timestamp into a calendar-day
// bucket label. The layout must round-trip through time.Parse so the
// buckets can be ordered by date.
const trendLabelLayout = "Jan 2"

// trendDays bounds the daily trend to the most recent distinct days.
const trendDays = 14

// statusColors are the fixed display colors of the status chart.
var statusColors = map[domain.LeadStatus]string{
	domain.StatusNew:       "#3b82f6",
	domain.StatusContacted: "#f59e0b",
	domain.StatusQualified: "#8b5cf6",
	domain.StatusBooked:    "#10b981",
	domain.StatusLost:      "#ef4444",
}

// Aggregate reduces the lead collection to the dashboard summary in a
// single pass. An empty collection yields all-zero stats; the rate and
// average guard against division by zero.
func Aggregate(leads []domain.Lead) domain.DerivedStats {
	counts := make(map[domain.LeadStatus]int, len(domain.AllStatuses))
	var responseSum float64

	for _, lead := range leads {
		counts[lead.Status]++
		responseSum += lead.ResponseTime
	}

	stats := domain.DerivedStats{
		Total:     len(leads),
		New:       counts[domain.StatusNew],
		Contacted: counts[domain.StatusContacted],
		Booked:    counts[domain.StatusBooked],
	}

	if stats.Total > 0 {
		stats.ConversionRate = round1(100 * float64(stats.Booked) / float64(stats.Total))
		stats.AvgResponseTime = round1(responseSum / float64(stats.Total))
	}

	return stats
}

// TreatmentDistribution counts leads per treatment label, preserving
// first-seen order. Treatments with no leads never appear.
func TreatmentDistribution(leads []domain.Lead) []domain.TreatmentCount {
	index := make(map[string]int, len(leads))
	dist := make([]domain.TreatmentCount, 0)

	for _, lead := range leads {
		if i, ok := index[lead.Treatment]; ok {
			dist[i].Value++
			continue
		}
		index[lead.Treatment] = len(dist)
		dist = append(dist, domain.TreatmentCount{Name: lead.Treatment, Value: 1})
	}

	return dist
}

// StatusDistribution counts leads per pipeline status, dropping empty
// buckets and tagging each slice with its display color.
func StatusDistribution(leads []domain.Lead) []domain.StatusCount {
	counts := make(map[domain.LeadStatus]int, len(domain.AllStatuses))
	for _, lead := range leads {
		counts[lead.Status]++
	}

	dist := make([]domain.StatusCount, 0, len(domain.AllStatuses))
	for _, status := range domain.AllStatuses {
		if counts[status] == 0 {
			continue
		}
		dist = append(dist, domain.StatusCount{
			Name:  status,
			Value: counts[status],
			Color: statusColors[status],
		})
	}

	return dist
}

// DailyTrend buckets leads by the calendar day they were created,
// counting total and booked leads per day. Two leads created on the
// same formatted day merge regardless of time of day. The result is
// sorted ascending by date and truncated to the most recent days.
func DailyTrend(leads []domain.Lead) []domain.TrendPoint {
	index := make(map[string]int, len(leads))
	trend := make([]domain.TrendPoint, 0)

	for _, lead := range leads {
		label := lead.Created.Format(trendLabelLayout)

		i, ok := index[label]
		if !ok {
			i = len(trend)
			index[label] = i
			trend = append(trend, domain.TrendPoint{Date: label})
		}

		trend[i].Leads++
		if lead.Status == domain.StatusBooked {
			trend[i].Booked++
		}
	}

	// Order by re-parsing the label; the year-agnostic layout keeps
	// this comparable within the 30-day windows the dashboard shows.
	sort.SliceStable(trend, func(a, b int) bool {
		ta, _ := time.Parse(trendLabelLayout, trend[a].Date)
		tb, _ := time.Parse(trendLabelLayout, trend[b].Date)
		return ta.Before(tb)
	})

	if len(trend) > trendDays {
		trend = trend[len(trend)-trendDays:]
	}

	return trend
}

// round1 rounds to one decimal place.
func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
