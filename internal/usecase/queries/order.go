package queries

import (
	"sort"
	"time"

	"decor-rental/internal/domain/sales"
)

// sortNewestFirst orders records by createdAt descending. Unparseable
// timestamps sort last, keeping their relative order.
func sortNewestFirst[T any](records []T, createdAt func(T) string) {
	sort.SliceStable(records, func(i, j int) bool {
		ti, iok := sales.ParseDate(createdAt(records[i]), time.UTC)
		tj, jok := sales.ParseDate(createdAt(records[j]), time.UTC)
		switch {
		case iok && jok:
			return ti.After(tj)
		default:
			return iok && !jok
		}
	})
}
