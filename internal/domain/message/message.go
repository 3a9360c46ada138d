package message

import (
	"errors"
	"strings"
)

var (
	ErrMissingSender = errors.New("sender name and email are required")
	ErrEmptyBody     = errors.New("message body is required")
)

type Message struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Phone     *string `json:"phone,omitempty"`
	Subject   string  `json:"subject"`
	Message   string  `json:"message"`
	CreatedAt string  `json:"createdAt"`
	IsRead    bool    `json:"isRead"`
}

func (m Message) EntityID() string { return m.ID }

// MarkRead flips the read flag once. It reports whether anything changed, so a second call is a no-op.
func (m *Message) MarkRead() bool {
	if m.IsRead {
		return false
	}
	m.IsRead = true
	return true
}

func (m Message) Validate() error {
	if strings.TrimSpace(m.Name) == "" || strings.TrimSpace(m.Email) == "" {
		return ErrMissingSender
	}
	if strings.TrimSpace(m.Message) == "" {
		return ErrEmptyBody
	}
	return nil
}

func CountUnread(msgs []Message) int {
	n := 0
	for _, m := range msgs {
		if !m.IsRead {
			n++
		}
	}
	return n
}
