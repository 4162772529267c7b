package tui

import "go.trai.ch/orchay/internal/core/domain"

// MsgNotification is sent when the session emits a notification.
type MsgNotification struct {
	Notification domain.Notification
}

// MsgSessionStatus is sent when the session becomes alive or exits.
type MsgSessionStatus struct {
	Root  string
	Alive bool
}

// MsgBatch is sent after the session has processed a debounce batch.
type MsgBatch struct {
	Summary domain.BatchSummary
}
