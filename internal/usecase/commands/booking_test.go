//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"decor-rental/internal/domain/booking"
	"decor-rental/internal/domain/site"
	"decor-rental/internal/pkg/clock"
	"decor-rental/internal/pkg/errs"
	"decor-rental/internal/usecase/commands"
	"decor-rental/tests/common/builder"
	"decor-rental/tests/common/storetest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type BookingCommandsTestSuite struct {
	suite.Suite
	ctx    context.Context
	clock  *clock.MockClock
	events *storetest.EventLog
}

func (s *BookingCommandsTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.clock = clock.NewMockClock(time.Date(2026, 5, 10, 9, 30, 0, 0, time.UTC))
	s.events = &storetest.EventLog{}
}

func (s *BookingCommandsTestSuite) newCommands(existing ...booking.Booking) (commands.BookingCommands, func() *site.Dataset) {
	store := storetest.NewSeededStore(s.T(), &site.Dataset{Bookings: existing})
	return commands.NewBookingCommands(store, s.clock, s.events), func() *site.Dataset {
		return storetest.MustRead(s.T(), store)
	}
}

func TestBookingCommandsTestSuite(t *testing.T) {
	suite.Run(t, new(BookingCommandsTestSuite))
}

func (s *BookingCommandsTestSuite) TestSubmit() {
	s.Run("always starts pending", func() {
		uc, read := s.newCommands()
		in := builder.NewBookingBuilder().WithStatus(booking.StatusPaid).BuildDomain()
		in.ID = ""

		got, err := uc.Submit(s.ctx, in)
		require.NoError(s.T(), err)

		assert.Equal(s.T(), booking.StatusPending, got.Status)
		assert.NotEmpty(s.T(), got.ID)
		assert.Equal(s.T(), "2026-05-10T09:30:00Z", got.CreatedAt)

		stored := read().Bookings
		require.Len(s.T(), stored, 1)
		assert.Equal(s.T(), got.ID, stored[0].ID)
		assert.Equal(s.T(), []string{"booking_submitted:Pending"}, s.events.Events)
	})

	s.Run("invalid booking is rejected without a write", func() {
		uc, read := s.newCommands()
		in := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.CustomerName = " " }).BuildDomain()

		_, err := uc.Submit(s.ctx, in)
		require.Error(s.T(), err)
		assert.True(s.T(), errs.Is(err, errs.ErrDomainValidation))
		assert.True(s.T(), errs.Is(err, booking.ErrMissingCustomer))
		assert.Empty(s.T(), read().Bookings)
	})
}

func (s *BookingCommandsTestSuite) TestUpdate() {
	existing := builder.NewBookingBuilder().BuildDomain()

	s.Run("keeps id and createdAt", func() {
		uc, read := s.newCommands(existing)
		in := builder.NewBookingBuilder().WithTotal(900).WithStatus(booking.StatusConfirmed).
			WithCreatedAt("2030-01-01T00:00:00Z").BuildDomain()

		got, err := uc.Update(s.ctx, existing.ID, in)
		require.NoError(s.T(), err)
		assert.Equal(s.T(), existing.ID, got.ID)
		assert.Equal(s.T(), existing.CreatedAt, got.CreatedAt)
		assert.Equal(s.T(), 900.0, read().Bookings[0].Amount())
		assert.Equal(s.T(), booking.StatusConfirmed, read().Bookings[0].Status)
	})

	s.Run("unknown id is not found", func() {
		uc, _ := s.newCommands(existing)
		_, err := uc.Update(s.ctx, "missing", builder.NewBookingBuilder().BuildDomain())
		assert.True(s.T(), errs.Is(err, errs.ErrNotFound))
		assert.True(s.T(), errs.Is(err, errs.ErrBookingNotFound))
	})
}

func (s *BookingCommandsTestSuite) TestChangeStatus() {
	existing := builder.NewBookingBuilder().BuildDomain()

	s.Run("moves to any valid status", func() {
		uc, read := s.newCommands(existing)
		got, err := uc.ChangeStatus(s.ctx, existing.ID, booking.StatusCompleted)
		require.NoError(s.T(), err)
		assert.Equal(s.T(), booking.StatusCompleted, got.Status)
		assert.Equal(s.T(), booking.StatusCompleted, read().Bookings[0].Status)
		assert.Contains(s.T(), s.events.Events, "booking_status:Completed")
	})

	s.Run("unknown status is rejected", func() {
		uc, read := s.newCommands(existing)
		_, err := uc.ChangeStatus(s.ctx, existing.ID, booking.Status("Lost"))
		assert.True(s.T(), errs.Is(err, errs.ErrDomainValidation))
		assert.Equal(s.T(), booking.StatusPending, read().Bookings[0].Status)
	})

	s.Run("unknown id is not found", func() {
		uc, _ := s.newCommands(existing)
		_, err := uc.ChangeStatus(s.ctx, "missing", booking.StatusPaid)
		assert.True(s.T(), errs.Is(err, errs.ErrNotFound))
	})
}

func (s *BookingCommandsTestSuite) TestDelete() {
	a := builder.NewBookingBuilder().BuildDomain()
	b := builder.NewBookingBuilder().BuildDomain()

	uc, read := s.newCommands(a, b)
	require.NoError(s.T(), uc.Delete(s.ctx, a.ID))

	remaining := read().Bookings
	require.Len(s.T(), remaining, 1)
	assert.Equal(s.T(), b.ID, remaining[0].ID)

	err := uc.Delete(s.ctx, a.ID)
	assert.True(s.T(), errs.Is(err, errs.ErrNotFound))
}
