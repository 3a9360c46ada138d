package testimonial

import (
	"errors"
	"strings"
)

var ErrIncomplete = errors.New("testimonial name and content are required")

type Testimonial struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	Content   string `json:"content"`
	CreatedAt string `json:"createdAt,omitempty"`
}

func (t Testimonial) EntityID() string { return t.ID }

func (t Testimonial) Validate() error {
	if strings.TrimSpace(t.Name) == "" || strings.TrimSpace(t.Content) == "" {
		return ErrIncomplete
	}
	return nil
}
