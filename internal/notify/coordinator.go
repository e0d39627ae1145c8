// Package notify links task events to notification creation. The
// fan-out is an explicit service the caller invokes after a successful
// task mutation, so the workflow stays visible and the task store never
// grows a hidden dependency on notifications. Notification creation
// never mutates tasks.
package notify

import (
	"fmt"

	"github.com/nhle/teampulse/internal/model"
	"github.com/nhle/teampulse/internal/store"
)

// Coordinator produces notifications for task events.
type Coordinator struct {
	users         *store.UserStore
	notifications *store.NotificationStore
}

// New creates a Coordinator over the given stores.
func New(users *store.UserStore, notifications *store.NotificationStore) *Coordinator {
	return &Coordinator{users: users, notifications: notifications}
}

// TaskCreated notifies every assignee of a newly created task.
func (c *Coordinator) TaskCreated(task model.Task) []model.Notification {
	actor := c.displayName(task.AssignedBy)
	message := fmt.Sprintf("%s assigned you to %q", actor, task.Title)

	out := make([]model.Notification, 0, len(task.AssignedTo))
	for _, userID := range task.AssignedTo {
		out = append(out, c.notifications.Add(model.NotificationDraft{
			Type:         model.NotificationAssignment,
			Message:      message,
			TaskID:       task.ID,
			UserID:       task.AssignedBy,
			TargetUserID: userID,
		}))
	}
	return out
}

// UpdateRequested notifies every assignee that actorID asked for a
// status update on the task. This is a distinct user-initiated action,
// not a task mutation.
func (c *Coordinator) UpdateRequested(actorID string, task model.Task) []model.Notification {
	actor := c.displayName(actorID)
	message := fmt.Sprintf("%s requested an update on %q", actor, task.Title)

	out := make([]model.Notification, 0, len(task.AssignedTo))
	for _, userID := range task.AssignedTo {
		out = append(out, c.notifications.Add(model.NotificationDraft{
			Type:         model.NotificationUpdateRequest,
			Message:      message,
			TaskID:       task.ID,
			UserID:       actorID,
			TargetUserID: userID,
		}))
	}
	return out
}

// TaskCompleted notifies the assigner and the other assignees that
// actorID completed the task. The trigger (usually the transition to
// Completed) is the caller's decision; the task store does not fire
// this automatically.
func (c *Coordinator) TaskCompleted(actorID string, task model.Task) []model.Notification {
	actor := c.displayName(actorID)
	message := fmt.Sprintf("%s completed %q", actor, task.Title)

	targets := make([]string, 0, len(task.AssignedTo)+1)
	if task.AssignedBy != "" && task.AssignedBy != actorID {
		targets = append(targets, task.AssignedBy)
	}
	for _, userID := range task.AssignedTo {
		if userID != actorID {
			targets = append(targets, userID)
		}
	}

	out := make([]model.Notification, 0, len(targets))
	for _, userID := range targets {
		out = append(out, c.notifications.Add(model.NotificationDraft{
			Type:         model.NotificationCompletion,
			Message:      message,
			TaskID:       task.ID,
			UserID:       actorID,
			TargetUserID: userID,
		}))
	}
	return out
}

// displayName resolves a user id to a name for message interpolation.
// A dangling id falls back to the raw id; a missing reference is never
// fatal here.
func (c *Coordinator) displayName(userID string) string {
	if user, ok := c.users.ByID(userID); ok {
		return user.Name
	}
	return userID
}
