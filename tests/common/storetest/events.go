//go:build unit || e2e

package storetest

import "sync"

// EventLog records business events in memory.
type EventLog struct {
	mu     sync.Mutex
	Events []string
}

func (l *EventLog) add(e string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Events = append(l.Events, e)
}

func (l *EventLog) BookingSubmitted(status string)     { l.add("booking_submitted:" + status) }
func (l *EventLog) BookingStatusChanged(status string) { l.add("booking_status:" + status) }
func (l *EventLog) BackupExported(format string)       { l.add("backup_exported:" + format) }
func (l *EventLog) DatasetReset()                      { l.add("dataset_reset") }

func (l *EventLog) BackupRestored(format string, ok bool) {
	outcome := "ok"
	if !ok {
		outcome = "rejected"
	}
	l.add("backup_restored:" + format + ":" + outcome)
}
