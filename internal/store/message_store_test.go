package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/teampulse/internal/model"
	"github.com/nhle/teampulse/tests/testutil"
)

func TestMessageAddAssignsIDAndTimestamp(t *testing.T) {
	st := testutil.NewTestState(t)

	m := st.Messages.Add(model.MessageDraft{
		SenderID:   "u1",
		Content:    "hello",
		Department: model.DepartmentHR,
	})

	assert.NotEmpty(t, m.ID)
	assert.Equal(t, testutil.FixedNow, m.Timestamp)
}

func TestMessagesByDepartmentNewestFirst(t *testing.T) {
	st := newTickingState(t)

	first := st.Messages.Add(model.MessageDraft{
		SenderID: "u1", Content: "one", Department: model.DepartmentHR,
	})
	st.Messages.Add(model.MessageDraft{
		SenderID: "u1", Content: "elsewhere", Department: model.DepartmentSales,
	})
	last := st.Messages.Add(model.MessageDraft{
		SenderID: "u2", Content: "two", Department: model.DepartmentHR,
	})

	got := st.Messages.ByDepartment(model.DepartmentHR)
	require.Len(t, got, 2)
	assert.Equal(t, last.ID, got[0].ID)
	assert.Equal(t, first.ID, got[1].ID)
}

func TestMessageThreadOldestFirst(t *testing.T) {
	st := newTickingState(t)

	parent := st.Messages.Add(model.MessageDraft{
		SenderID: "u1", Content: "root", Department: model.DepartmentDesign,
	})
	reply1 := st.Messages.Add(model.MessageDraft{
		SenderID: "u2", Content: "first reply", ParentID: parent.ID,
	})
	st.Messages.Add(model.MessageDraft{
		SenderID: "u3", Content: "unrelated",
	})
	reply2 := st.Messages.Add(model.MessageDraft{
		SenderID: "u1", Content: "second reply", ParentID: parent.ID,
	})

	thread := st.Messages.Thread(parent.ID)
	require.Len(t, thread, 2)
	assert.Equal(t, reply1.ID, thread[0].ID)
	assert.Equal(t, reply2.ID, thread[1].ID)
}

func TestSeededStateShipsWelcomeMessages(t *testing.T) {
	st := testutil.NewSeededState(t)

	hr := st.Messages.ByDepartment(model.DepartmentHR)
	require.Len(t, hr, 1)
	assert.Equal(t, "Hello team, welcome to the HR channel!", hr[0].Content)
}
