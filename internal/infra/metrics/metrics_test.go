//go:build unit

package metrics_test

import (
	"testing"

	"decor-rental/internal/infra/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestDomainCounters(t *testing.T) {
	m := metrics.New()

	m.BookingSubmitted("Pending")
	m.BookingSubmitted("Pending")
	m.BackupRestored("xlsx", false)
	m.DatasetReset()

	count, err := testutil.GatherAndCount(m.Registry(), "decor_rental_booking_created_total")
	assert.NoError(t, err)
	assert.Equal(t, 1, count, "one series per status label")

	count, err = testutil.GatherAndCount(m.Registry(), "decor_rental_backup_restore_total")
	assert.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestInstancesDoNotCollide(t *testing.T) {
	assert.NotPanics(t, func() {
		metrics.New()
		metrics.New()
	})
}
