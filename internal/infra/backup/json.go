package backup

import (
	"bytes"
	"encoding/json"
	"io"

	"decor-rental/internal/domain/site"
	"decor-rental/internal/pkg/errs"
)

// ExportJSON renders the whole dataset as an indented JSON backup.
func ExportJSON(ds *site.Dataset) ([]byte, error) {
	ds.Normalize()
	data, err := json.MarshalIndent(ds, "", "  ")
	if err != nil {
		return nil, errs.Wrap(err, "failed to encode json backup")
	}
	return data, nil
}

// ImportJSON decodes a JSON backup. A collection counts as present only when
// its key exists with a non-null value.
func ImportJSON(r io.Reader) (*Snapshot, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "failed to read json backup"), ErrUnreadableFile)
	}
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "failed to decode json backup"), ErrUnreadableFile)
	}

	s := &Snapshot{}
	fields := []struct {
		key     string
		target  any
		present *bool
	}{
		{"items", &s.Items, &s.HasItems},
		{"bookings", &s.Bookings, &s.HasBookings},
		{"packages", &s.Packages, &s.HasPackages},
		{"messages", &s.Messages, &s.HasMessages},
		{"testimonials", &s.Testimonials, &s.HasTestimonials},
		{"users", &s.Users, &s.HasUsers},
		{"content", &s.Content, nil},
		{"settings", &s.Settings, nil},
	}
	for _, f := range fields {
		v, ok := doc[f.key]
		if !ok || isNull(v) {
			continue
		}
		if err := json.Unmarshal(v, f.target); err != nil {
			return nil, errs.Mark(errs.Wrap(err, "invalid "+f.key+" in json backup"), ErrUnreadableFile)
		}
		if f.present != nil {
			*f.present = true
		}
	}
	return s, nil
}

func isNull(v json.RawMessage) bool {
	return len(bytes.TrimSpace(v)) == 0 || bytes.Equal(bytes.TrimSpace(v), []byte("null"))
}
