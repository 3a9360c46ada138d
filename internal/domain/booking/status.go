package booking

import (
	"strings"
)

type Status string

const (
	StatusPending   Status = "Pending"
	StatusApproved  Status = "Approved"
	StatusConfirmed Status = "Confirmed"
	StatusPaid      Status = "Paid"
	StatusCompleted Status = "Completed"
	StatusCancelled Status = "Cancelled"
)

var allStatuses = []Status{
	StatusPending,
	StatusApproved,
	StatusConfirmed,
	StatusPaid,
	StatusCompleted,
	StatusCancelled,
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	for _, v := range allStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// ParseStatus accepts any casing ("paid", "PAID") and returns the canonical value.
func ParseStatus(s string) (Status, error) {
	s = strings.TrimSpace(s)
	for _, v := range allStatuses {
		if strings.EqualFold(s, string(v)) {
			return v, nil
		}
	}
	return "", ErrInvalidStatus
}

func AllStatuses() []Status {
	out := make([]Status, len(allStatuses))
	copy(out, allStatuses)
	return out
}
