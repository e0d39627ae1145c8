package store

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nhle/teampulse/internal/model"
	"github.com/nhle/teampulse/internal/storage"
)

// TaskStore owns the task collection. Deletion is always soft: deleted
// tasks stay in storage with IsDeleted set and are filtered out of
// every read query.
type TaskStore struct {
	persister
	now   func() time.Time
	tasks []model.Task
}

func newTaskStore(
	adapter storage.Adapter,
	logger *zap.Logger,
	now func() time.Time,
) *TaskStore {
	s := &TaskStore{
		persister: persister{adapter: adapter, logger: logger, key: storage.KeyTasks},
		now:       now,
	}
	s.hydrate(&s.tasks)
	return s
}

// Add creates a task from the draft. The store assigns the id, stamps
// the creation time, and forces status Todo with the soft-delete flag
// off. An empty assignee set is accepted; validating it is the
// caller's concern.
func (s *TaskStore) Add(draft model.TaskDraft) model.Task {
	task := model.Task{
		ID:          uuid.New().String(),
		Title:       draft.Title,
		Description: draft.Description,
		Status:      model.StatusTodo,
		Deadline:    draft.Deadline,
		CreatedAt:   s.now(),
		AssignedBy:  draft.AssignedBy,
		AssignedTo:  draft.AssignedTo,
		Department:  draft.Department,
		Tags:        draft.Tags,
		IsDeleted:   false,
	}
	s.tasks = append(s.tasks, task)
	s.persist(s.tasks)
	return task
}

// Update merges the patch into the task with the given id. Any status
// value is accepted, including re-opening a completed task; no
// transition graph is enforced. Returns ErrNotFound if no such task
// exists (a soft-deleted task can still be updated).
func (s *TaskStore) Update(id string, patch model.TaskPatch) error {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			patch.Apply(&s.tasks[i])
			s.persist(s.tasks)
			return nil
		}
	}
	return ErrNotFound
}

// SoftDelete marks the task as deleted. Idempotent: deleting an
// already-deleted or missing task is not an error.
func (s *TaskStore) SoftDelete(id string) {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			if s.tasks[i].IsDeleted {
				return
			}
			s.tasks[i].IsDeleted = true
			s.persist(s.tasks)
			return
		}
	}
}

// All returns every live task in insertion order.
func (s *TaskStore) All() []model.Task {
	var out []model.Task
	for _, t := range s.tasks {
		if !t.IsDeleted {
			out = append(out, t)
		}
	}
	return out
}

// ByID returns the task with the given id. A soft-deleted task is
// indistinguishable from a never-existing one here.
func (s *TaskStore) ByID(id string) (model.Task, bool) {
	for _, t := range s.tasks {
		if t.ID == id && !t.IsDeleted {
			return t, true
		}
	}
	return model.Task{}, false
}

// ByUser returns live tasks the user is assigned to or assigned out.
func (s *TaskStore) ByUser(userID string) []model.Task {
	var out []model.Task
	for _, t := range s.tasks {
		if t.IsDeleted {
			continue
		}
		if t.AssignedToUser(userID) || t.AssignedBy == userID {
			out = append(out, t)
		}
	}
	return out
}

// ByDepartment returns live tasks scoped to dept, in insertion order.
func (s *TaskStore) ByDepartment(dept model.Department) []model.Task {
	var out []model.Task
	for _, t := range s.tasks {
		if !t.IsDeleted && t.Department == dept {
			out = append(out, t)
		}
	}
	return out
}

// ByStatus returns live tasks with the given status, sorted by
// ascending deadline so the most urgent items come first in
// status-grouped views.
func (s *TaskStore) ByStatus(status model.TaskStatus) []model.Task {
	var out []model.Task
	for _, t := range s.tasks {
		if !t.IsDeleted && t.Status == status {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Deadline.Before(out[j].Deadline)
	})
	return out
}
