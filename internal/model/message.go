package model

import "time"

// Message is a single entry in a department chat channel. Messages are
// append-only: there is no edit or delete operation.
type Message struct {
	// ID is the unique identifier for this message.
	ID string `json:"id"`

	// SenderID is the user who wrote the message.
	SenderID string `json:"senderId"`

	// Content is the message body.
	Content string `json:"content"`

	// Department scopes the message to a channel. Empty means the
	// message belongs to no department channel.
	Department Department `json:"department,omitempty"`

	// Timestamp is when the message was sent. Set once.
	Timestamp time.Time `json:"timestamp"`

	// ParentID links a threaded reply to its parent message.
	ParentID string `json:"parentId,omitempty"`
}

// MessageDraft is the caller-supplied portion of a new message. The
// store assigns the ID and timestamp.
type MessageDraft struct {
	SenderID   string
	Content    string
	Department Department
	ParentID   string
}
