package domain

import "time"

// NotificationType classifies an activity feed entry.
type NotificationType string

const (
	NotificationInfo    NotificationType = "info"
	NotificationSuccess NotificationType = "success"
	NotificationError   NotificationType = "error"
)

// Notification is an ephemeral activity feed entry. Notifications are
// never persisted; only the most recent few are retained in memory.
type Notification struct {
	ID        int64            `json:"id"`
	Message   string           `json:"message"`
	Type      NotificationType `json:"type"`
	Timestamp time.Time        `json:"timestamp"`
}

// NewNotification creates a notification stamped with the current time.
// The ID is derived from the creation time so it is monotonic for the
// rates this system sees.
func NewNotification(message string, ntype NotificationType) Notification {
	now := time.Now().UTC()
	return Notification{
		ID:        now.UnixMilli(),
		Message:   message,
		Type:      ntype,
		Timestamp: now,
	}
}
