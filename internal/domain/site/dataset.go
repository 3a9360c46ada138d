package site

import (
	"decor-rental/internal/domain/booking"
	"decor-rental/internal/domain/catalog"
	"decor-rental/internal/domain/content"
	"decor-rental/internal/domain/inventory"
	"decor-rental/internal/domain/message"
	"decor-rental/internal/domain/settings"
	"decor-rental/internal/domain/testimonial"
	"decor-rental/internal/domain/user"
)

// Dataset is the single document holding every record of the site.
// It is always read and written as a whole.
type Dataset struct {
	Version      int64                     `json:"version"`
	Items        []inventory.Item          `json:"items"`
	Bookings     []booking.Booking         `json:"bookings"`
	Packages     []catalog.Package         `json:"packages"`
	Messages     []message.Message         `json:"messages"`
	Testimonials []testimonial.Testimonial `json:"testimonials"`
	Users        []user.User               `json:"users"`
	Content      content.SiteContent       `json:"content"`
	Settings     settings.Settings         `json:"settings"`
}

// Normalize replaces nil collections with empty ones so the document always
// serializes arrays rather than nulls.
func (d *Dataset) Normalize() {
	if d.Items == nil {
		d.Items = []inventory.Item{}
	}
	if d.Bookings == nil {
		d.Bookings = []booking.Booking{}
	}
	if d.Packages == nil {
		d.Packages = []catalog.Package{}
	}
	if d.Messages == nil {
		d.Messages = []message.Message{}
	}
	if d.Testimonials == nil {
		d.Testimonials = []testimonial.Testimonial{}
	}
	if d.Users == nil {
		d.Users = []user.User{}
	}
}

func (d *Dataset) FindUserByEmail(email string) (*user.User, bool) {
	for i := range d.Users {
		if d.Users[i].HasEmail(email) {
			return &d.Users[i], true
		}
	}
	return nil, false
}

// Identifiable is implemented by every record kept in a Dataset collection.
type Identifiable interface {
	EntityID() string
}

// IndexOf returns the position of the record with the given id, or -1.
func IndexOf[T Identifiable](records []T, id string) int {
	for i := range records {
		if records[i].EntityID() == id {
			return i
		}
	}
	return -1
}

// Remove drops the record with the given id and reports whether it existed.
func Remove[T Identifiable](records []T, id string) ([]T, bool) {
	i := IndexOf(records, id)
	if i < 0 {
		return records, false
	}
	return append(records[:i:i], records[i+1:]...), true
}
