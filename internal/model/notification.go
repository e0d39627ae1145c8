package model

import (
	"fmt"
	"time"
)

// NotificationType is the closed set of events a notification can
// describe.
type NotificationType string

const (
	// NotificationAssignment records that a user was assigned to a task.
	NotificationAssignment NotificationType = "assignment"

	// NotificationUpdateRequest records that someone asked an assignee
	// for a status update.
	NotificationUpdateRequest NotificationType = "update-request"

	// NotificationCompletion records that a task was completed.
	NotificationCompletion NotificationType = "completion"
)

// Valid reports whether t is one of the known notification types.
func (t NotificationType) Valid() bool {
	switch t {
	case NotificationAssignment, NotificationUpdateRequest, NotificationCompletion:
		return true
	}
	return false
}

// ParseNotificationType converts a raw string into a NotificationType.
func ParseNotificationType(s string) (NotificationType, error) {
	t := NotificationType(s)
	if !t.Valid() {
		return "", fmt.Errorf("unknown notification type %q", s)
	}
	return t, nil
}

// Notification is an event record targeted at a single recipient.
type Notification struct {
	// ID is the unique identifier for this notification.
	ID string `json:"id"`

	// Type classifies the event being reported.
	Type NotificationType `json:"type"`

	// Message is the human-readable notification text.
	Message string `json:"message"`

	// TaskID optionally links the notification to a task.
	TaskID string `json:"taskId,omitempty"`

	// UserID is the user whose action triggered the notification.
	UserID string `json:"userId"`

	// TargetUserID is the user who should receive the notification.
	TargetUserID string `json:"targetUserId"`

	// Timestamp is when the notification was created. Set once.
	Timestamp time.Time `json:"timestamp"`

	// IsRead indicates whether the recipient has seen the
	// notification. The transition to true is one-way.
	IsRead bool `json:"isRead"`
}

// NotificationDraft is the caller-supplied portion of a new
// notification. The store assigns the ID and timestamp and forces the
// read flag off.
type NotificationDraft struct {
	Type         NotificationType
	Message      string
	TaskID       string
	UserID       string
	TargetUserID string
}
