package sales

import (
	"sort"
	"strings"
	"time"

	"decor-rental/internal/domain/booking"

	"github.com/shopspring/decimal"
)

const dayLayout = "2006-01-02"

// StatusSet is the set of booking statuses that count as revenue.
type StatusSet map[booking.Status]struct{}

func NewStatusSet(statuses ...booking.Status) StatusSet {
	set := make(StatusSet, len(statuses))
	for _, s := range statuses {
		set[s] = struct{}{}
	}
	return set
}

// ParseStatusSet builds a set from a comma separated list such as "Approved,Paid".
func ParseStatusSet(csv string) (StatusSet, error) {
	set := StatusSet{}
	for _, part := range strings.Split(csv, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		s, err := booking.ParseStatus(part)
		if err != nil {
			return nil, err
		}
		set[s] = struct{}{}
	}
	return set, nil
}

func (s StatusSet) Contains(status booking.Status) bool {
	_, ok := s[status]
	return ok
}

func DefaultConfirmedStatuses() StatusSet {
	return NewStatusSet(booking.StatusApproved, booking.StatusConfirmed, booking.StatusPaid, booking.StatusCompleted)
}

type Options struct {
	Confirmed StatusSet
	Location  *time.Location
}

func (o Options) withDefaults() Options {
	if len(o.Confirmed) == 0 {
		o.Confirmed = DefaultConfirmedStatuses()
	}
	if o.Location == nil {
		o.Location = time.Local
	}
	return o
}

type DailyBucket struct {
	Date     string            `json:"date"`
	Count    int               `json:"count"`
	Total    float64           `json:"total"`
	Bookings []booking.Booking `json:"bookings"`
}

type Report struct {
	LifetimeTotal       float64       `json:"lifetimeTotal"`
	ConfirmedCount      int           `json:"confirmedCount"`
	TotalCount          int           `json:"totalCount"`
	ConfirmedPercentage float64       `json:"confirmedPercentage"`
	Daily               []DailyBucket `json:"daily"`
	Monthly             [12]float64   `json:"monthly"`
}

// Aggregate computes revenue figures over the confirmed bookings. Bookings
// whose revenue date cannot be parsed still count toward the totals but are
// left out of the daily and monthly buckets.
func Aggregate(bookings []booking.Booking, opts Options) Report {
	opts = opts.withDefaults()

	lifetime := decimal.Zero
	var monthly [12]decimal.Decimal
	for i := range monthly {
		monthly[i] = decimal.Zero
	}
	type dayAcc struct {
		total    decimal.Decimal
		bookings []booking.Booking
	}
	days := map[string]*dayAcc{}

	confirmed := 0
	for _, b := range bookings {
		if !opts.Confirmed.Contains(b.Status) {
			continue
		}
		confirmed++
		amount := decimal.NewFromFloat(b.Amount())
		lifetime = lifetime.Add(amount)

		t, ok := ParseDate(b.RevenueDate(), opts.Location)
		if !ok {
			continue
		}
		monthly[t.Month()-1] = monthly[t.Month()-1].Add(amount)

		key := t.Format(dayLayout)
		acc, found := days[key]
		if !found {
			acc = &dayAcc{total: decimal.Zero}
			days[key] = acc
		}
		acc.total = acc.total.Add(amount)
		acc.bookings = append(acc.bookings, b)
	}

	report := Report{
		LifetimeTotal:  lifetime.InexactFloat64(),
		ConfirmedCount: confirmed,
		TotalCount:     len(bookings),
		Daily:          make([]DailyBucket, 0, len(days)),
	}
	if report.TotalCount > 0 {
		report.ConfirmedPercentage = decimal.NewFromInt(int64(confirmed)).
			Mul(decimal.NewFromInt(100)).
			Div(decimal.NewFromInt(int64(report.TotalCount))).
			InexactFloat64()
	}
	for i, m := range monthly {
		report.Monthly[i] = m.InexactFloat64()
	}
	for key, acc := range days {
		report.Daily = append(report.Daily, DailyBucket{
			Date:     key,
			Count:    len(acc.bookings),
			Total:    acc.total.InexactFloat64(),
			Bookings: acc.bookings,
		})
	}
	// YYYY-MM-DD keys sort lexically in date order.
	sort.Slice(report.Daily, func(i, j int) bool {
		return report.Daily[i].Date > report.Daily[j].Date
	})
	return report
}
