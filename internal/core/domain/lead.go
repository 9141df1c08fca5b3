package domain

import (
	"time"
)

// LeadStatus represents a lead's position in the sales pipeline.
type LeadStatus string

const (
	StatusNew       LeadStatus = "New"
	StatusContacted LeadStatus = "Contacted"
	StatusQualified LeadStatus = "Qualified"
	StatusBooked    LeadStatus = "Booked"
	StatusLost      LeadStatus = "Lost"
)

// AllStatuses lists every pipeline status in display order.
var AllStatuses = []LeadStatus{
	StatusNew,
	StatusContacted,
	StatusQualified,
	StatusBooked,
	StatusLost,
}

// IsValid reports whether s is one of the five pipeline statuses.
func (s LeadStatus) IsValid() bool {
	switch s {
	case StatusNew, StatusContacted, StatusQualified, StatusBooked, StatusLost:
		return true
	}
	return false
}

// Availability represents a lead's preferred contact window.
type Availability string

const (
	AvailabilityMorning   Availability = "Morning"
	AvailabilityAfternoon Availability = "Afternoon"
	AvailabilityEvening   Availability = "Evening"
)

// AllAvailabilities lists every availability window.
var AllAvailabilities = []Availability{
	AvailabilityMorning,
	AvailabilityAfternoon,
	AvailabilityEvening,
}

// Lead is the core domain entity: one inbound inquiry tracked through
// the pipeline. Leads are created by the landing page and persisted in
// the key-value store; this service only ever mutates Status.
type Lead struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Email        string       `json:"email"`
	Phone        string       `json:"phone"`
	Treatment    string       `json:"treatment"`
	Status       LeadStatus   `json:"status"`
	Availability Availability `json:"availability"`
	Source       string       `json:"source"`
	Message      string       `json:"message"`
	Created      time.Time    `json:"created"`
	ResponseTime float64      `json:"responseTime"`
}

// WithStatus returns a copy of the lead with its status replaced.
// Every other field is carried over unchanged; status transitions are
// intentionally unrestricted (Lost -> Booked is allowed).
func (l Lead) WithStatus(status LeadStatus) Lead {
	l.Status = status
	return l
}
