package model

import (
	"fmt"
	"time"
)

// TaskStatus is the closed set of workflow states for a task. The set
// is a sequence for display purposes only; no transition order is
// enforced and any status is reachable from any other.
type TaskStatus string

const (
	StatusTodo       TaskStatus = "Todo"
	StatusInProgress TaskStatus = "In Progress"
	StatusInReview   TaskStatus = "In Review"
	StatusCompleted  TaskStatus = "Completed"
)

// TaskStatuses lists every valid status in board-column order.
var TaskStatuses = []TaskStatus{
	StatusTodo,
	StatusInProgress,
	StatusInReview,
	StatusCompleted,
}

// Valid reports whether s is one of the known statuses.
func (s TaskStatus) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusInReview, StatusCompleted:
		return true
	}
	return false
}

// ParseTaskStatus converts a raw string into a TaskStatus.
func ParseTaskStatus(s string) (TaskStatus, error) {
	st := TaskStatus(s)
	if !st.Valid() {
		return "", fmt.Errorf("unknown task status %q", s)
	}
	return st, nil
}

// Task is a unit of work assigned to one or more users.
type Task struct {
	// ID is the unique identifier for this task.
	ID string `json:"id"`

	// Title is the short human-readable summary.
	Title string `json:"title"`

	// Description is the full body text.
	Description string `json:"description"`

	// Status is the current workflow state.
	Status TaskStatus `json:"status"`

	// Deadline is when the task is due.
	Deadline time.Time `json:"deadline"`

	// CreatedAt is when the task was created. Set once.
	CreatedAt time.Time `json:"createdAt"`

	// AssignedBy is the ID of the user who created the assignment.
	AssignedBy string `json:"assignedBy"`

	// AssignedTo holds the IDs of the users responsible for the task.
	AssignedTo []string `json:"assignedTo"`

	// Department scopes the task to an organizational unit.
	Department Department `json:"department"`

	// Tags is a free-form set of labels.
	Tags []string `json:"tags"`

	// IsDeleted marks the task as soft-deleted. Soft-deleted tasks
	// stay in storage but are excluded from every read query.
	IsDeleted bool `json:"isDeleted"`
}

// AssignedToUser reports whether userID appears in AssignedTo.
func (t Task) AssignedToUser(userID string) bool {
	for _, id := range t.AssignedTo {
		if id == userID {
			return true
		}
	}
	return false
}

// TaskDraft is the caller-supplied portion of a new task. The store
// assigns the ID and creation time and forces the soft-delete flag off.
type TaskDraft struct {
	Title       string
	Description string
	Deadline    time.Time
	AssignedBy  string
	AssignedTo  []string
	Department  Department
	Tags        []string
}

// TaskPatch carries a partial task update. Nil fields are left
// unchanged by the merge. CreatedAt and IsDeleted are deliberately
// absent: creation time is set once and deletion goes through
// SoftDelete.
type TaskPatch struct {
	Title       *string
	Description *string
	Status      *TaskStatus
	Deadline    *time.Time
	AssignedBy  *string
	AssignedTo  *[]string
	Department  *Department
	Tags        *[]string
}

// Apply merges the patch into t.
func (p TaskPatch) Apply(t *Task) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.Deadline != nil {
		t.Deadline = *p.Deadline
	}
	if p.AssignedBy != nil {
		t.AssignedBy = *p.AssignedBy
	}
	if p.AssignedTo != nil {
		t.AssignedTo = *p.AssignedTo
	}
	if p.Department != nil {
		t.Department = *p.Department
	}
	if p.Tags != nil {
		t.Tags = *p.Tags
	}
}
