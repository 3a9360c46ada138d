package backup

import (
	"errors"

	"decor-rental/internal/domain/booking"
	"decor-rental/internal/domain/catalog"
	"decor-rental/internal/domain/content"
	"decor-rental/internal/domain/inventory"
	"decor-rental/internal/domain/message"
	"decor-rental/internal/domain/settings"
	"decor-rental/internal/domain/site"
	"decor-rental/internal/domain/testimonial"
	"decor-rental/internal/domain/user"
	"decor-rental/internal/pkg/errs"
)

var (
	// ErrMissingCollections rejects a backup that carries neither inventory nor bookings.
	ErrMissingCollections = errors.New("backup must contain inventory items or bookings")
	ErrUnreadableFile     = errors.New("backup file could not be read")
	ErrUnsupportedFormat  = errors.New("unsupported backup format")
	// ErrInvalidRecord rejects a backup carrying a record the data model forbids,
	// such as a negative quantity or an unknown booking status.
	ErrInvalidRecord = errors.New("backup contains an invalid record")
)

// Snapshot is the decoded content of a backup file. The Has* flags record
// which collections the file actually carried, so an absent collection is
// distinguishable from an empty one.
type Snapshot struct {
	Items        []inventory.Item
	Bookings     []booking.Booking
	Packages     []catalog.Package
	Messages     []message.Message
	Testimonials []testimonial.Testimonial
	Users        []user.User
	Content      *content.SiteContent
	Settings     *settings.Settings

	HasItems        bool
	HasBookings     bool
	HasPackages     bool
	HasMessages     bool
	HasTestimonials bool
	HasUsers        bool
}

// Validate checks that the snapshot carries inventory or bookings and that
// every record it carries is valid on its own.
func (s *Snapshot) Validate() error {
	if !s.HasItems && !s.HasBookings {
		return ErrMissingCollections
	}
	checks := []error{
		validateAll("inventory item", s.Items),
		validateAll("booking", s.Bookings),
		validateAll("package", s.Packages),
		validateAll("message", s.Messages),
		validateAll("testimonial", s.Testimonials),
		validateAll("user", s.Users),
	}
	for _, err := range checks {
		if err != nil {
			return err
		}
	}
	if s.Settings != nil {
		if err := s.Settings.Validate(); err != nil {
			return errs.Mark(errs.Wrap(err, "settings"), ErrInvalidRecord)
		}
	}
	return nil
}

type validatable interface {
	Validate() error
}

func validateAll[T validatable](kind string, records []T) error {
	for i, r := range records {
		if err := r.Validate(); err != nil {
			return errs.Mark(errs.Wrapf(err, "%s %d", kind, i+1), ErrInvalidRecord)
		}
	}
	return nil
}

// ApplyTo replaces every collection the snapshot carries and leaves the rest
// of ds untouched. Users are only replaced when the snapshot keeps at least
// one Super Admin, so a restore can never lock everybody out.
func (s *Snapshot) ApplyTo(ds *site.Dataset) {
	if s.HasItems {
		ds.Items = s.Items
	}
	if s.HasBookings {
		ds.Bookings = s.Bookings
	}
	if s.HasPackages {
		ds.Packages = s.Packages
	}
	if s.HasMessages {
		ds.Messages = s.Messages
	}
	if s.HasTestimonials {
		ds.Testimonials = s.Testimonials
	}
	if s.HasUsers && user.CountRole(s.Users, user.RoleSuperAdmin) > 0 {
		ds.Users = s.Users
	}
	if s.Content != nil {
		ds.Content = *s.Content
	}
	if s.Settings != nil {
		ds.Settings = *s.Settings
	}
	ds.Normalize()
}

// Counts summarizes what a restore brought in.
type Counts struct {
	Items    int `json:"items"`
	Bookings int `json:"bookings"`
	Packages int `json:"packages"`
}

func (s *Snapshot) Counts() Counts {
	return Counts{Items: len(s.Items), Bookings: len(s.Bookings), Packages: len(s.Packages)}
}
