package chat

import (
	"time"

	"github.com/loanmo/crm/internal/models"
)

// Demo data carried over from the original dashboard.

func seedContacts() []models.ChatContact {
	return []models.ChatContact{
		{ID: 1, Name: "Alexander Pierce", Presence: models.PresenceOnline, Unread: 2},
		{ID: 2, Name: "Sarah Bullock", Presence: models.PresenceOffline},
		{ID: 3, Name: "Norman", Presence: models.PresenceOnline, Unread: 1},
		{ID: 4, Name: "Jane", Presence: models.PresenceAway},
		{ID: 5, Name: "John", Presence: models.PresenceOnline},
		{ID: 6, Name: "Nora", Presence: models.PresenceOffline},
		{ID: 7, Name: "Nadia", Presence: models.PresenceOnline},
	}
}

func at(hour, min int) time.Time {
	return time.Date(2025, 2, 27, hour, min, 0, 0, time.Local)
}

func seedConversations() map[int][]models.ChatMessage {
	return map[int][]models.ChatMessage{
		1: {
			{ID: "1-1", ContactID: 1, Text: "Is this template really for free?", SentAt: at(14, 0)},
			{ID: "1-2", ContactID: 1, Text: "Yes, it is completely free and open source!", SentAt: at(14, 5), Outgoing: true},
			{ID: "1-3", ContactID: 1, Text: "Working with AdminLTE on a great new app! Wanna join?", SentAt: at(17, 37)},
			{ID: "1-4", ContactID: 1, Text: "I would love to hear more about it.", SentAt: at(17, 38), Outgoing: true},
			{ID: "1-5", ContactID: 1, Text: "What kind of features are you implementing?", SentAt: at(17, 39), Outgoing: true},
		},
		2: {
			{ID: "2-1", ContactID: 2, Text: "You better believe it!", SentAt: at(14, 5)},
			{ID: "2-2", ContactID: 2, Text: "I'm working on a new project.", SentAt: at(14, 10), Outgoing: true},
			{ID: "2-3", ContactID: 2, Text: "That sounds interesting!", SentAt: at(18, 10)},
		},
		3: {
			{ID: "3-1", ContactID: 3, Text: "Looking forward to your reply", SentAt: at(9, 0)},
			{ID: "3-2", ContactID: 3, Text: "Sorry for the delay, I was in a meeting.", SentAt: at(11, 30), Outgoing: true},
		},
	}
}
