package backup

import (
	"strings"
	"time"
	"unicode"
)

// FileName is the download name of an xlsx export, e.g. "decor_rentals_system_backup_2026-01-27.xlsx".
func FileName(siteName string, now time.Time) string {
	return baseName(siteName, now) + ".xlsx"
}

func JSONFileName(siteName string, now time.Time) string {
	return baseName(siteName, now) + ".json"
}

func baseName(siteName string, now time.Time) string {
	return slug(siteName) + "_system_backup_" + now.Format("2006-01-02")
}

func slug(s string) string {
	var b strings.Builder
	lastUnderscore := true
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastUnderscore = false
			continue
		}
		if !lastUnderscore {
			b.WriteByte('_')
			lastUnderscore = true
		}
	}
	out := strings.TrimSuffix(b.String(), "_")
	if out == "" {
		return "site"
	}
	return out
}
