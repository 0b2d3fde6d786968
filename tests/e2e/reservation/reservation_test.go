//go:build e2e

package reservation_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	nethttptest "net/http/httptest"
	"sync"
	"testing"
	"time"

	"court-booking/internal/handler/dto/request"
	"court-booking/internal/handler/dto/response"
	"court-booking/internal/infra/events"
	sqlc "court-booking/internal/infra/sqlc/generated"
	"court-booking/internal/pkg/clock"
	"court-booking/tests/common/builder"
	"court-booking/tests/common/dbtest"
	"court-booking/tests/common/httptest"
	"court-booking/tests/common/testutil"
	"court-booking/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	reservationsURL    = "/reservaciones/"
	reservationURL     = "/reservaciones/%d"
	byCourtAndDateURL  = "/reservaciones/por_cancha_y_fecha/?cancha_id=%d&fecha=%s"
	createdTopic       = "reservation.created"
	updatedTopic       = "reservation.updated"
	deletedTopic       = "reservation.deleted"
	overlapMessagePart = "overlaps"
)

type ReservationSuite struct {
	e2e.SharedSuite
}

func (s *ReservationSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestReservationSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ReservationSuite))
}

func (s *ReservationSuite) book(t *testing.T, req request.ReservationRequest) (int, response.ReservationResponse) {
	t.Helper()

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, req)
	var res response.ReservationResponse
	if w.Code == http.StatusCreated {
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
	}
	return w.Code, res
}

func slot(courtID int64, date, start string, minutes int) request.ReservationRequest {
	return builder.NewReservationBuilder().WithCourtID(courtID).WithSlot(date, start, minutes).BuildRequestDTO()
}

// =============================================================================
// TestReservationCRUD
// =============================================================================

func (s *ReservationSuite) TestReservationCRUD() {
	s.Run("Normal case: create, read, update and delete a reservation", func() {
		t := s.T()
		courtID := dbtest.CreateTestCourt(t, s.DB, "Cancha 1", false)

		req := builder.NewReservationBuilder().
			WithCourtID(courtID).
			WithSlot("2024-05-10", "19:00", 90).
			WithContact("  Ana Gomez ", "+54 9 11 1234-5678").
			BuildRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, req)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.ReservationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
		require.Equal(t, fmt.Sprintf(reservationURL, created.ID), w.Header().Get("Location"))

		want := response.ReservationResponse{
			ID:              created.ID,
			CourtID:         courtID,
			Date:            "2024-05-10",
			StartTime:       "19:00",
			EndTime:         "20:30",
			DurationMinutes: 90,
			ContactName:     "Ana Gomez",
			ContactPhone:    "+54 9 11 1234-5678",
		}
		ignoreTimestamps := cmpopts.IgnoreFields(response.ReservationResponse{}, "CreatedAt", "UpdatedAt")
		if diff := cmp.Diff(want, created, ignoreTimestamps); diff != "" {
			t.Errorf("created reservation mismatch (-want +got):\n%s", diff)
		}

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(reservationURL, created.ID), nil)
		require.Equal(t, http.StatusOK, w.Code)
		var fetched response.ReservationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &fetched))
		if diff := cmp.Diff(created, fetched); diff != "" {
			t.Errorf("fetched reservation mismatch (-created +fetched):\n%s", diff)
		}

		update := slot(courtID, "2024-05-10", "20:00", 60)
		w = httptest.PerformRequest(t, s.Router, http.MethodPut, fmt.Sprintf(reservationURL, created.ID), update)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var updated response.ReservationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &updated))
		require.Equal(t, "20:00", updated.StartTime)
		require.Equal(t, "21:00", updated.EndTime)

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, fmt.Sprintf(reservationURL, created.ID), nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.JSONEq(t, `{"message":"reservation deleted"}`, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(reservationURL, created.ID), nil)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Reservation not found")

		require.Equal(t, []string{createdTopic, updatedTopic, deletedTopic}, dbtest.OutboxTopics(t, s.DB))
	})

	s.Run("Normal case: list returns reservations in insertion order", func() {
		t := s.T()
		courtA := dbtest.CreateTestCourt(t, s.DB, "A", false)
		courtB := dbtest.CreateTestCourt(t, s.DB, "B", true)

		code, first := s.book(t, slot(courtB, "2024-05-12", "10:00", 60))
		require.Equal(t, http.StatusCreated, code)
		code, second := s.book(t, slot(courtA, "2024-05-10", "10:00", 60))
		require.Equal(t, http.StatusCreated, code)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, reservationsURL, nil)
		require.Equal(t, http.StatusOK, w.Code)
		var list []response.ReservationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &list))
		require.Len(t, list, 2)
		require.Equal(t, []int64{first.ID, second.ID}, []int64{list[0].ID, list[1].ID})
	})

	s.Run("Error case: unknown court leaves nothing behind", func() {
		t := s.T()

		code, _ := s.book(t, slot(999, "2024-05-10", "10:00", 60))
		require.Equal(t, http.StatusNotFound, code)
		require.Zero(t, dbtest.CountRows(t, s.DB, "reservations"))
		require.Empty(t, dbtest.OutboxTopics(t, s.DB))
	})

	s.Run("Error case: invalid input", func() {
		t := s.T()
		courtID := dbtest.CreateTestCourt(t, s.DB, "Cancha 1", false)
		base := slot(courtID, "2024-05-10", "10:00", 60)

		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{"zero duration", testutil.Field("duration_minutes", 0)},
			{"duration above one day", testutil.Field("duration_minutes", 1441)},
			{"negative duration", testutil.Field("duration_minutes", -30)},
			{"bad date", testutil.Field("date", "2024-02-30")},
			{"bad time", testutil.Field("start_time", "7pm")},
			{"blank contact", testutil.Field("contact_name", "   ")},
			{"phone with letters", testutil.Field("contact_phone", "call me")},
		}
		for _, tc := range cases {
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, testutil.DtoMap(t, base, tc.mutate))
			require.Equal(t, http.StatusBadRequest, w.Code, "%s: %s", tc.name, w.Body.String())
		}
		require.Zero(t, dbtest.CountRows(t, s.DB, "reservations"))
	})
}

// =============================================================================
// TestOverlap
// =============================================================================

func (s *ReservationSuite) TestOverlap() {
	s.Run("Error case: strict overlap is rejected with 409", func() {
		t := s.T()
		courtID := dbtest.CreateTestCourt(t, s.DB, "Cancha 1", false)
		dbtest.CreateTestReservation(t, s.DB, courtID, "2024-05-10", "10:00", 60)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, slot(courtID, "2024-05-10", "10:30", 60))
		httptest.AssertErrorResponse(t, w, http.StatusConflict, overlapMessagePart)
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "reservations"))
	})

	s.Run("Normal case: touching endpoints are accepted", func() {
		t := s.T()
		courtID := dbtest.CreateTestCourt(t, s.DB, "Cancha 1", false)
		dbtest.CreateTestReservation(t, s.DB, courtID, "2024-05-10", "10:00", 60)

		code, _ := s.book(t, slot(courtID, "2024-05-10", "11:00", 60))
		require.Equal(t, http.StatusCreated, code)
		code, _ = s.book(t, slot(courtID, "2024-05-10", "09:00", 60))
		require.Equal(t, http.StatusCreated, code)
	})

	s.Run("Error case: overlap across midnight", func() {
		t := s.T()
		courtID := dbtest.CreateTestCourt(t, s.DB, "Cancha 1", false)
		dbtest.CreateTestReservation(t, s.DB, courtID, "2024-05-10", "23:30", 60)

		code, _ := s.book(t, slot(courtID, "2024-05-11", "00:00", 30))
		require.Equal(t, http.StatusConflict, code)
		code, _ = s.book(t, slot(courtID, "2024-05-11", "00:30", 30))
		require.Equal(t, http.StatusCreated, code)
	})

	s.Run("Normal case: different courts never conflict", func() {
		t := s.T()
		courtA := dbtest.CreateTestCourt(t, s.DB, "A", false)
		courtB := dbtest.CreateTestCourt(t, s.DB, "B", false)
		dbtest.CreateTestReservation(t, s.DB, courtA, "2024-05-10", "10:00", 120)

		code, _ := s.book(t, slot(courtB, "2024-05-10", "10:00", 120))
		require.Equal(t, http.StatusCreated, code)
	})

	s.Run("Normal case: update may overlap its own previous slot", func() {
		t := s.T()
		courtID := dbtest.CreateTestCourt(t, s.DB, "Cancha 1", false)
		id := dbtest.CreateTestReservation(t, s.DB, courtID, "2024-05-10", "10:00", 60)

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, fmt.Sprintf(reservationURL, id), slot(courtID, "2024-05-10", "10:30", 60))
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})

	s.Run("Error case: update into another reservation is rejected", func() {
		t := s.T()
		courtID := dbtest.CreateTestCourt(t, s.DB, "Cancha 1", false)
		dbtest.CreateTestReservation(t, s.DB, courtID, "2024-05-10", "10:00", 60)
		id := dbtest.CreateTestReservation(t, s.DB, courtID, "2024-05-10", "12:00", 60)

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, fmt.Sprintf(reservationURL, id), slot(courtID, "2024-05-10", "10:45", 60))
		httptest.AssertErrorResponse(t, w, http.StatusConflict, overlapMessagePart)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(reservationURL, id), nil)
		var unchanged response.ReservationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &unchanged))
		require.Equal(t, "12:00", unchanged.StartTime)
	})

	s.Run("Error case: concurrent bookings of one slot admit exactly one", func() {
		t := s.T()
		courtID := dbtest.CreateTestCourt(t, s.DB, "Cancha 1", false)

		body, err := json.Marshal(slot(courtID, "2024-05-10", "18:00", 60))
		require.NoError(t, err)

		// workers only touch the router; assertions stay on the test goroutine
		const attempts = 8
		codes := make([]int, attempts)
		var wg sync.WaitGroup
		for i := range attempts {
			wg.Add(1)
			go func() {
				defer wg.Done()
				req := nethttptest.NewRequest(http.MethodPost, reservationsURL, bytes.NewReader(body))
				req.Header.Set("Content-Type", "application/json")
				w := nethttptest.NewRecorder()
				s.Router.ServeHTTP(w, req)
				codes[i] = w.Code
			}()
		}
		wg.Wait()

		created := 0
		for _, code := range codes {
			if code == http.StatusCreated {
				created++
				continue
			}
			require.Equal(t, http.StatusConflict, code)
		}
		require.Equal(t, 1, created)
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "reservations"))
	})
}

// =============================================================================
// TestListByCourtAndDate
// =============================================================================

func (s *ReservationSuite) TestListByCourtAndDate() {
	s.Run("Normal case: one court on one day ordered by start", func() {
		t := s.T()
		courtID := dbtest.CreateTestCourt(t, s.DB, "Cancha 1", false)
		otherID := dbtest.CreateTestCourt(t, s.DB, "Cancha 2", false)
		late := dbtest.CreateTestReservation(t, s.DB, courtID, "2024-05-10", "20:00", 60)
		early := dbtest.CreateTestReservation(t, s.DB, courtID, "2024-05-10", "08:00", 60)
		dbtest.CreateTestReservation(t, s.DB, courtID, "2024-05-11", "08:00", 60)
		dbtest.CreateTestReservation(t, s.DB, otherID, "2024-05-10", "09:00", 60)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(byCourtAndDateURL, courtID, "2024-05-10"), nil)
		require.Equal(t, http.StatusOK, w.Code)
		var list []response.ReservationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &list))
		require.Len(t, list, 2)
		require.Equal(t, []int64{early, late}, []int64{list[0].ID, list[1].ID})
	})

	s.Run("Error case: no reservations on that day is 404", func() {
		t := s.T()
		courtID := dbtest.CreateTestCourt(t, s.DB, "Cancha 1", false)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(byCourtAndDateURL, courtID, "2024-05-10"), nil)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "No reservations found")
	})

	s.Run("Error case: malformed date", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(byCourtAndDateURL, 1, "10-05-2024"), nil)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid date")
	})
}

// =============================================================================
// TestEventRelay
// =============================================================================

type capturePublisher struct {
	mu     sync.Mutex
	topics []string
}

func (p *capturePublisher) Publish(_ context.Context, topic string, _ []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.topics = append(p.topics, topic)
	return nil
}

func (p *capturePublisher) Close() error { return nil }

func (s *ReservationSuite) TestEventRelay() {
	s.Run("Normal case: committed events are published once", func() {
		t := s.T()
		courtID := dbtest.CreateTestCourt(t, s.DB, "Cancha 1", false)

		code, res := s.book(t, slot(courtID, "2024-05-10", "10:00", 60))
		require.Equal(t, http.StatusCreated, code)
		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, fmt.Sprintf(reservationURL, res.ID), nil)
		require.Equal(t, http.StatusOK, w.Code)

		// run_at comes from the app clock; pull it back so container clock skew cannot hide the jobs
		_, err := s.DB.Exec(context.Background(), "UPDATE notification_jobs SET run_at = now() - interval '1 second'")
		require.NoError(t, err)

		pub := &capturePublisher{}
		outbox, err := events.NewPostgresOutbox(s.DB, sqlc.New(), clock.NewRealClock(), s.Config.Events.MaxAttempts)
		require.NoError(t, err)
		relay, err := events.NewRelay(outbox, pub, time.Hour, s.Config.Events.BatchSize, slog.New(slog.NewTextHandler(io.Discard, nil)))
		require.NoError(t, err)

		require.Equal(t, 2, relay.Flush(context.Background()))
		require.Equal(t, []string{createdTopic, deletedTopic}, pub.topics)

		var sent int
		err = s.DB.QueryRow(context.Background(), "SELECT count(*) FROM notification_jobs WHERE status = 'sent'").Scan(&sent)
		require.NoError(t, err)
		require.Equal(t, 2, sent)

		require.Zero(t, relay.Flush(context.Background()))
	})
}
