package store

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nhle/teampulse/internal/model"
	"github.com/nhle/teampulse/internal/storage"
)

// NotificationStore owns the notification collection. Notifications
// are never deleted; the only mutation after creation is the one-way
// read-state transition.
type NotificationStore struct {
	persister
	now           func() time.Time
	notifications []model.Notification
}

func newNotificationStore(
	adapter storage.Adapter,
	logger *zap.Logger,
	now func() time.Time,
	seed bool,
) *NotificationStore {
	s := &NotificationStore{
		persister: persister{adapter: adapter, logger: logger, key: storage.KeyNotifications},
		now:       now,
	}
	if !s.hydrate(&s.notifications) && seed {
		s.notifications = seedNotifications(now())
		s.persist(s.notifications)
	}
	return s
}

// Add creates a notification from the draft. The store assigns the id,
// stamps the creation time, and forces the read flag off.
func (s *NotificationStore) Add(draft model.NotificationDraft) model.Notification {
	n := model.Notification{
		ID:           uuid.New().String(),
		Type:         draft.Type,
		Message:      draft.Message,
		TaskID:       draft.TaskID,
		UserID:       draft.UserID,
		TargetUserID: draft.TargetUserID,
		Timestamp:    s.now(),
		IsRead:       false,
	}
	s.notifications = append(s.notifications, n)
	s.persist(s.notifications)
	return n
}

// MarkRead marks a single notification as read. Idempotent, and a
// no-op when the id is absent.
func (s *NotificationStore) MarkRead(id string) {
	for i := range s.notifications {
		if s.notifications[i].ID == id {
			if s.notifications[i].IsRead {
				return
			}
			s.notifications[i].IsRead = true
			s.persist(s.notifications)
			return
		}
	}
}

// MarkAllRead marks every notification as read, regardless of target
// user. Callers wanting a per-user sweep pre-filter with ForUser and
// call MarkRead per id.
func (s *NotificationStore) MarkAllRead() {
	changed := false
	for i := range s.notifications {
		if !s.notifications[i].IsRead {
			s.notifications[i].IsRead = true
			changed = true
		}
	}
	if changed {
		s.persist(s.notifications)
	}
}

// UnreadCount returns the number of unread notifications across the
// whole collection.
func (s *NotificationStore) UnreadCount() int {
	count := 0
	for _, n := range s.notifications {
		if !n.IsRead {
			count++
		}
	}
	return count
}

// UnreadCountFor returns the number of unread notifications targeted
// at the given user. This is the canonical per-user unread badge.
func (s *NotificationStore) UnreadCountFor(userID string) int {
	count := 0
	for _, n := range s.notifications {
		if n.TargetUserID == userID && !n.IsRead {
			count++
		}
	}
	return count
}

// ForUser returns every notification targeted at the given user,
// newest first. Equal timestamps break toward the most recently
// created notification.
func (s *NotificationStore) ForUser(userID string) []model.Notification {
	var out []model.Notification
	// Collect in reverse so the stable sort leaves equal-time entries
	// in newest-insertion-first order.
	for i := len(s.notifications) - 1; i >= 0; i-- {
		if s.notifications[i].TargetUserID == userID {
			out = append(out, s.notifications[i])
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out
}
