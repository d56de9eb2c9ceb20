// Package chat holds the direct-chat state: a fixed contact list and
// per-contact conversations. Delivery is out of scope; Send only appends
// to the local conversation.
package chat

import (
	"time"

	"github.com/google/uuid"

	"github.com/loanmo/crm/internal/common"
	"github.com/loanmo/crm/internal/models"
)

// Service owns the chat state for one process.
type Service struct {
	contacts      []models.ChatContact
	conversations map[int][]models.ChatMessage

	// now is a test seam for message timestamps.
	now func() time.Time
}

// NewService returns a Service preloaded with the demo contacts and
// conversations.
func NewService() *Service {
	return &Service{
		contacts:      seedContacts(),
		conversations: seedConversations(),
		now:           time.Now,
	}
}

// Contacts lists all chat peers.
func (s *Service) Contacts() []models.ChatContact {
	out := make([]models.ChatContact, len(s.contacts))
	copy(out, s.contacts)
	return out
}

// Conversation returns the message history with the given contact, oldest
// first. An unknown contact is an error; a known contact with no history
// yields an empty slice.
func (s *Service) Conversation(contactID int) ([]models.ChatMessage, error) {
	if !s.hasContact(contactID) {
		return nil, common.ErrContactNotFound
	}
	msgs := s.conversations[contactID]
	out := make([]models.ChatMessage, len(msgs))
	copy(out, msgs)
	return out, nil
}

// Send appends an outgoing message to the conversation and returns it.
func (s *Service) Send(contactID int, text string) (models.ChatMessage, error) {
	if !s.hasContact(contactID) {
		return models.ChatMessage{}, common.ErrContactNotFound
	}
	if isBlank(text) {
		return models.ChatMessage{}, common.ErrEmptyMessage
	}

	msg := models.ChatMessage{
		ID:        uuid.NewString(),
		ContactID: contactID,
		Text:      text,
		SentAt:    s.now(),
		Outgoing:  true,
	}
	s.conversations[contactID] = append(s.conversations[contactID], msg)
	return msg, nil
}

func (s *Service) hasContact(id int) bool {
	for _, c := range s.contacts {
		if c.ID == id {
			return true
		}
	}
	return false
}

func isBlank(text string) bool {
	for _, r := range text {
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			return false
		}
	}
	return true
}
