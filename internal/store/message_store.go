package store

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nhle/teampulse/internal/model"
	"github.com/nhle/teampulse/internal/storage"
)

// MessageStore owns the department-channel message collection.
// Messages are append-only.
type MessageStore struct {
	persister
	now      func() time.Time
	messages []model.Message
}

func newMessageStore(
	adapter storage.Adapter,
	logger *zap.Logger,
	now func() time.Time,
	seed bool,
) *MessageStore {
	s := &MessageStore{
		persister: persister{adapter: adapter, logger: logger, key: storage.KeyMessages},
		now:       now,
	}
	if !s.hydrate(&s.messages) && seed {
		s.messages = seedMessages()
		s.persist(s.messages)
	}
	return s
}

// Add creates a message from the draft. The store assigns the id and
// stamps the send time.
func (s *MessageStore) Add(draft model.MessageDraft) model.Message {
	m := model.Message{
		ID:         uuid.New().String(),
		SenderID:   draft.SenderID,
		Content:    draft.Content,
		Department: draft.Department,
		Timestamp:  s.now(),
		ParentID:   draft.ParentID,
	}
	s.messages = append(s.messages, m)
	s.persist(s.messages)
	return m
}

// ByDepartment returns the messages in a department channel, newest
// first. Date grouping and within-day reordering for display belong to
// the presentation layer; this ordering is the store's baseline
// guarantee.
func (s *MessageStore) ByDepartment(dept model.Department) []model.Message {
	var out []model.Message
	for _, m := range s.messages {
		if m.Department == dept {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out
}

// Thread returns the replies to the given parent message, in reply
// order (oldest first).
func (s *MessageStore) Thread(parentID string) []model.Message {
	var out []model.Message
	for _, m := range s.messages {
		if m.ParentID == parentID {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	return out
}
