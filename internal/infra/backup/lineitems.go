package backup

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"decor-rental/internal/domain/booking"
)

const lineItemSeparator = ", "

var (
	quantityPrefix = regexp.MustCompile(`^(\d+)\s*x\s+(.+)$`)
	quantitySuffix = regexp.MustCompile(`^(.*) \((\d+)\)$`)
)

// EncodeLineItems flattens booking lines into one cell: "50x Chiavari chair, 5x Round table".
func EncodeLineItems(items []booking.LineItem) string {
	parts := make([]string, 0, len(items))
	for _, li := range items {
		parts = append(parts, fmt.Sprintf("%dx %s", li.Quantity, li.Name))
	}
	return strings.Join(parts, lineItemSeparator)
}

// DecodeLineItems reverses EncodeLineItems. It also reads the older
// "Chiavari chair (50)" form; a segment matching neither is one unit of that name.
// Prices are not carried by the cell and come back as 0. The separator is not
// escaped, so a name containing ", " comes back as separate lines.
func DecodeLineItems(cell string) []booking.LineItem {
	var out []booking.LineItem
	for _, seg := range strings.Split(cell, lineItemSeparator) {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		out = append(out, decodeSegment(seg))
	}
	return out
}

func decodeSegment(seg string) booking.LineItem {
	if m := quantityPrefix.FindStringSubmatch(seg); m != nil {
		return booking.LineItem{Name: strings.TrimSpace(m[2]), Quantity: atoiMin1(m[1])}
	}
	if m := quantitySuffix.FindStringSubmatch(seg); m != nil {
		return booking.LineItem{Name: strings.TrimSpace(m[1]), Quantity: atoiMin1(m[2])}
	}
	return booking.LineItem{Name: seg, Quantity: 1}
}

func atoiMin1(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 1
	}
	return n
}
