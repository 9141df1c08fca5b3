package services

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/lorrc/medspa-leads-backend/internal/core/domain"
)

// sampleTreatments are the treatment labels used for generated demo
// leads.
var sampleTreatments = []string{
	"Botox",
	"Dermal Fillers",
	"Laser Treatment",
	"Medical Facials",
	"Chemical Peels",
}

// GenerateSampleLeads produces n synthetic leads for demo and
// bootstrap use when the store is empty or unreachable. The shape is
// fixed; treatment, status, availability, creation time (past 30 days)
// and response time (under 48 hours) are randomized. Generated leads
// are never merged with real data.
func GenerateSampleLeads(n int) []domain.Lead {
	now := time.Now().UTC()

	leads := make([]domain.Lead, 0, n)
	for i := 1; i <= n; i++ {
		leads = append(leads, domain.Lead{
			ID:    fmt.Sprintf("lead-%d", i),
			Name:  fmt.Sprintf("Lead %d", i),
			Email: fmt.Sprintf("lead%d@example.com", i),
			Phone: fmt.Sprintf("+234 %d %d %d",
				800+rand.Intn(100), 100+rand.Intn(900), 1000+rand.Intn(9000)),
			Treatment:    sampleTreatments[rand.Intn(len(sampleTreatments))],
			Status:       domain.AllStatuses[rand.Intn(len(domain.AllStatuses))],
			Availability: domain.AllAvailabilities[rand.Intn(len(domain.AllAvailabilities))],
			Source:       "Landing page",
			Message:      "Interested in consultation",
			Created:      now.Add(-time.Duration(rand.Int63n(int64(30 * 24 * time.Hour)))),
			ResponseTime: float64(rand.Intn(48)),
		})
	}

	return leads
}
