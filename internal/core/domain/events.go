package domain

// EventType identifies a real-time event pushed to connected dashboards.
type EventType string

const (
	EventNotification EventType = "NOTIFICATION"
	EventLeadUpdated  EventType = "LEAD_UPDATED"
	EventDataReloaded EventType = "DATA_RELOADED"
)

// Event is the envelope broadcast over the websocket hub.
type Event struct {
	Type    EventType `json:"type"`
	Payload any       `json:"payload,omitempty"`
}
