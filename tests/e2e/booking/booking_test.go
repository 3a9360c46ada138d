//go:build e2e

package booking_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"decor-rental/internal/domain/booking"
	"decor-rental/internal/handler/dto/request"
	resdto "decor-rental/internal/handler/dto/response"
	"decor-rental/internal/pkg/config"
	"decor-rental/internal/usecase/queries"
	"decor-rental/tests/common/authtest"
	"decor-rental/tests/common/builder"
	"decor-rental/tests/common/httptest"
	"decor-rental/tests/e2e"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type bookingSuite struct {
	e2e.SharedSuite
	token string
}

func TestBookingSuitePostgres(t *testing.T) {
	t.Parallel()
	suite.Run(t, &bookingSuite{SharedSuite: e2e.SharedSuite{Driver: config.DriverPostgres}})
}

func TestBookingSuiteRedis(t *testing.T) {
	t.Parallel()
	suite.Run(t, &bookingSuite{SharedSuite: e2e.SharedSuite{Driver: config.DriverRedis}})
}

func (s *bookingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
	email, password := s.AdminCredentials()
	s.token = authtest.LoginUser(s.T(), s.Router, email, password)
}

func (s *bookingSuite) submit(total float64) booking.Booking {
	s.T().Helper()
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/bookings",
		builder.NewBookingBuilder().WithTotal(total).BuildDTO(), "")
	var created booking.Booking
	httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &created)
	return created
}

func (s *bookingSuite) TestBookingLifecycle() {
	s.Run("public submission to confirmed revenue", func() {
		created := s.submit(350)
		assert.Equal(s.T(), booking.StatusPending, created.Status)
		s.submit(120)

		var report queries.SalesReport
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/reports/sales", nil, s.token)
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &report)
		assert.Equal(s.T(), 0.0, report.LifetimeTotal)
		assert.Equal(s.T(), 2, report.TotalCount)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPatch, "/api/bookings/"+created.ID+"/status",
			request.BookingStatusRequest{Status: "paid"}, s.token)
		var updated booking.Booking
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &updated)
		assert.Equal(s.T(), booking.StatusPaid, updated.Status)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/reports/sales", nil, s.token)
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &report)
		assert.Equal(s.T(), 350.0, report.LifetimeTotal)
		assert.Equal(s.T(), 1, report.ConfirmedCount)
		assert.Equal(s.T(), 50.0, report.ConfirmedPercentage)
		require.Len(s.T(), report.Daily, 1)

		var list resdto.ListResponse[booking.Booking]
		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/bookings?status=Pending", nil, s.token)
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &list)
		assert.Equal(s.T(), 1, list.Total)
	})

	s.Run("submission without a phone is rejected", func() {
		dto := builder.NewBookingBuilder().BuildDTO()
		dto.Phone = ""
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/bookings", dto, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *bookingSuite) TestBackupRoundTrip() {
	s.Run("export, reset and restore bring bookings back", func() {
		s.submit(350)
		s.submit(200)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/backup", nil, s.token)
		require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())
		exported := json.RawMessage(w.Body.Bytes())

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/reset", nil, s.token)
		require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())

		var list resdto.ListResponse[booking.Booking]
		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/bookings", nil, s.token)
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &list)
		assert.Equal(s.T(), 0, list.Total)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/backup/restore", exported, s.token)
		var restored resdto.RestoreResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &restored)
		assert.Equal(s.T(), 2, restored.Counts.Bookings)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/bookings", nil, s.token)
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &list)
		assert.Equal(s.T(), 2, list.Total)

		// the seeded admin survives the round trip
		authtest.LoginUser(s.T(), s.Router, s.Config.Admin.Email, s.Config.Admin.Password)
	})

	s.Run("a backup without inventory or bookings is refused", func() {
		s.submit(350)
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/backup/restore",
			json.RawMessage(`{"packages":[]}`), s.token)
		assert.Equal(s.T(), http.StatusUnprocessableEntity, w.Code, w.Body.String())

		var list resdto.ListResponse[booking.Booking]
		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/bookings", nil, s.token)
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &list)
		assert.Equal(s.T(), 1, list.Total)
	})
}
