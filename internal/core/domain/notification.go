package domain

import "time"

// WBSChangedEvent is the channel name notifications are published under.
const WBSChangedEvent = "wbs-changed"

// Notification tells a consumer that the watched file of an entity changed.
type Notification struct {
	// EntityID is the project owning the changed file.
	EntityID string `json:"entityId"`
	// Path is the absolute path of the changed file.
	Path string `json:"path"`
	// Timestamp is the wall-clock time the change was processed, in RFC 3339.
	Timestamp string `json:"timestamp"`
}

// NewNotification builds a Notification stamped with the given time in UTC.
func NewNotification(entityID, path string, at time.Time) Notification {
	return Notification{
		EntityID:  entityID,
		Path:      path,
		Timestamp: at.UTC().Format(time.RFC3339Nano),
	}
}

// Time parses the notification timestamp.
func (n Notification) Time() (time.Time, error) {
	return time.Parse(time.RFC3339Nano, n.Timestamp)
}
