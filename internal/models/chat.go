package models

import "time"

// Presence mirrors the contact states shown in the chat sidebar.
type Presence string

const (
	PresenceOnline  Presence = "online"
	PresenceAway    Presence = "away"
	PresenceOffline Presence = "offline"
)

// ChatContact is a direct-chat peer.
type ChatContact struct {
	ID       int
	Name     string
	Presence Presence
	Unread   int
}

// ChatMessage is a single message of a conversation. Outgoing marks
// messages sent by the current user.
type ChatMessage struct {
	ID        string
	ContactID int
	Text      string
	SentAt    time.Time
	Outgoing  bool
}
