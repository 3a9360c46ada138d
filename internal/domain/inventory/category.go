package inventory

import "strings"

const (
	CategoryAll    = "All"
	CategoryOthers = "Others"
)

var StandardCategories = []string{
	"Chairs",
	"Tents",
	"Tables",
	"Lighting",
	"Backdrops",
	"Flooring",
	"Decor",
	"Tableware",
	"Kitchen ware",
	"Flowers",
	"Systems",
	"Electronics",
}

var normalizedStandard = func() map[string]struct{} {
	m := make(map[string]struct{}, len(StandardCategories))
	for _, c := range StandardCategories {
		m[NormalizeCategory(c)] = struct{}{}
	}
	return m
}()

// NormalizeCategory lower-cases, trims and strips a single trailing "s" so that
// "Chair" and "Chairs" compare equal.
func NormalizeCategory(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.TrimSuffix(s, "s")
}

func IsStandardCategory(category string) bool {
	_, ok := normalizedStandard[NormalizeCategory(category)]
	return ok
}

// MatchesCategory decides whether an item category belongs to the selected filter.
// "Others" is the complement of the standard taxonomy, not a literal tag.
func MatchesCategory(filter, category string) bool {
	f := strings.TrimSpace(filter)
	switch {
	case f == "" || strings.EqualFold(f, CategoryAll):
		return true
	case strings.EqualFold(f, CategoryOthers):
		return !IsStandardCategory(category)
	default:
		return NormalizeCategory(f) == NormalizeCategory(category)
	}
}

func FilterByCategory(items []Item, filter string) []Item {
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if MatchesCategory(filter, it.Category) {
			out = append(out, it)
		}
	}
	return out
}

// Categories returns the filter options offered to the catalog, in display order.
func Categories() []string {
	out := make([]string, 0, len(StandardCategories)+2)
	out = append(out, CategoryAll)
	out = append(out, StandardCategories...)
	return append(out, CategoryOthers)
}
