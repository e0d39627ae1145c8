package store

import (
	"time"

	"github.com/google/uuid"

	"github.com/nhle/teampulse/internal/model"
)

// Seed data installed when a store loads with no persisted document.
// The entries mirror the demo workspace shipped with the original
// application so a fresh install is immediately explorable.

func seedUsers() []model.User {
	return []model.User{
		{
			ID:          "1",
			Name:        "John Doe",
			Email:       "john@epack.com",
			Department:  model.DepartmentHR,
			IsAvailable: true,
			Avatar:      "https://ui-avatars.com/api/?name=John+Doe&background=0D8ABC",
		},
		{
			ID:          "2",
			Name:        "Jane Smith",
			Email:       "jane@epack.com",
			Department:  model.DepartmentDesign,
			IsAvailable: true,
			Avatar:      "https://ui-avatars.com/api/?name=Jane+Smith&background=F59E0B",
		},
		{
			ID:          "3",
			Name:        "Mike Johnson",
			Email:       "mike@epack.com",
			Department:  model.DepartmentDevelopment,
			IsAvailable: false,
			Avatar:      "https://ui-avatars.com/api/?name=Mike+Johnson&background=10B981",
		},
		{
			ID:          "4",
			Name:        "Sarah Lee",
			Email:       "sarah@epack.com",
			Department:  model.DepartmentMarketing,
			IsAvailable: true,
			Avatar:      "https://ui-avatars.com/api/?name=Sarah+Lee&background=8B5CF6",
		},
		{
			ID:          "5",
			Name:        "Alex Chen",
			Email:       "alex@epack.com",
			Department:  model.DepartmentDevelopment,
			IsAvailable: true,
			Avatar:      "https://ui-avatars.com/api/?name=Alex+Chen&background=EC4899",
		},
		{
			ID:          "6",
			Name:        "Maria Garcia",
			Email:       "maria@epack.com",
			Department:  model.DepartmentDesign,
			IsAvailable: false,
			Avatar:      "https://ui-avatars.com/api/?name=Maria+Garcia&background=F43F5E",
		},
		{
			ID:          "7",
			Name:        "David Kim",
			Email:       "david@epack.com",
			Department:  model.DepartmentSales,
			IsAvailable: true,
			Avatar:      "https://ui-avatars.com/api/?name=David+Kim&background=6366F1",
		},
		{
			ID:          "8",
			Name:        "Lisa Wang",
			Email:       "lisa@epack.com",
			Department:  model.DepartmentManagement,
			IsAvailable: true,
			Avatar:      "https://ui-avatars.com/api/?name=Lisa+Wang&background=14B8A6",
		},
	}
}

func seedMessages() []model.Message {
	return []model.Message{
		{
			ID:         "1",
			SenderID:   "1",
			Content:    "Hello team, welcome to the HR channel!",
			Department: model.DepartmentHR,
			Timestamp:  time.Date(2023, 5, 1, 9, 0, 0, 0, time.UTC),
		},
		{
			ID:         "2",
			SenderID:   "2",
			Content:    "Check out the new design system updates",
			Department: model.DepartmentDesign,
			Timestamp:  time.Date(2023, 5, 1, 10, 15, 0, 0, time.UTC),
		},
		{
			ID:         "3",
			SenderID:   "3",
			Content:    "The API endpoints are now available for testing",
			Department: model.DepartmentDevelopment,
			Timestamp:  time.Date(2023, 5, 1, 11, 30, 0, 0, time.UTC),
		},
		{
			ID:         "4",
			SenderID:   "4",
			Content:    "New marketing campaign kicks off next week",
			Department: model.DepartmentMarketing,
			Timestamp:  time.Date(2023, 5, 1, 13, 45, 0, 0, time.UTC),
		},
	}
}

// seedNotifications produces the demo inbox for user "1", spread over
// the day before now so the newest-first ordering is visible.
func seedNotifications(now time.Time) []model.Notification {
	seeds := []struct {
		typ     model.NotificationType
		message string
		taskID  string
		userID  string
		age     time.Duration
	}{
		{
			typ:     model.NotificationAssignment,
			message: `You have been assigned to the new task "Update Dashboard UI"`,
			taskID:  "task-1",
			userID:  "2",
			age:     time.Hour,
		},
		{
			typ:     model.NotificationUpdateRequest,
			message: `Jane Smith requested changes on "API Integration"`,
			taskID:  "task-2",
			userID:  "2",
			age:     3 * time.Hour,
		},
		{
			typ:     model.NotificationCompletion,
			message: `Mike Johnson completed "User Authentication Flow"`,
			taskID:  "task-3",
			userID:  "3",
			age:     6 * time.Hour,
		},
		{
			typ:     model.NotificationAssignment,
			message: `Sarah Lee mentioned you in a comment on "Mobile Responsiveness"`,
			taskID:  "task-4",
			userID:  "4",
			age:     12 * time.Hour,
		},
	}

	out := make([]model.Notification, 0, len(seeds))
	for _, s := range seeds {
		out = append(out, model.Notification{
			ID:           uuid.New().String(),
			Type:         s.typ,
			Message:      s.message,
			TaskID:       s.taskID,
			UserID:       s.userID,
			TargetUserID: "1",
			Timestamp:    now.Add(-s.age),
			IsRead:       false,
		})
	}
	return out
}
