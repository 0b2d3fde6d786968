//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"court-booking/internal/domain/reservation"
	"court-booking/internal/handler/api"
	resdto "court-booking/internal/handler/dto/response"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/usecase/queries"
	"court-booking/tests/common/builder"
	"court-booking/tests/common/httptest"
	"court-booking/tests/common/testutil"
	commandsmock "court-booking/tests/mock/commands"
	queriesmock "court-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockQueries  *queriesmock.MockReservationQueries
	handler      *api.ReservationHandler
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockCommands, s.mockQueries)

	g := s.router.Group("/reservaciones")
	g.POST("/", s.handler.Create)
	g.GET("/", s.handler.List)
	g.GET("/por_cancha_y_fecha/", s.handler.ListByCourtAndDate)
	g.GET("/:id", s.handler.Get)
	g.PUT("/:id", s.handler.Update)
	g.DELETE("/:id", s.handler.Delete)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

type testCaseReservation struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCreate() {
	url := "/reservaciones/"
	b := builder.NewReservationBuilder().WithID(7)
	reqBody := b.BuildRequestDTO()
	view := b.BuildView()

	s.Run("success: 201 with body and Location", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), b.BuildInput()).Return(&view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/reservaciones/7"})
		want := resdto.ReservationResponse{
			ID:              7,
			CourtID:         1,
			Date:            "2024-05-10",
			StartTime:       "10:00",
			EndTime:         "11:00",
			DurationMinutes: 60,
			ContactName:     b.ContactName,
			ContactPhone:    b.ContactPhone,
			CreatedAt:       b.CreatedAt,
			UpdatedAt:       b.UpdatedAt,
		}
		if diff := cmp.Diff(want, body); diff != "" {
			s.T().Errorf("response mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("error: 400 on malformed JSON", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, `{"court_id": 1,`)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 400 on invalid fields", func() {
		cases := []testCaseReservation{
			{name: "missing court_id", mutate: testutil.Field("court_id", nil), expectCode: http.StatusBadRequest},
			{name: "zero court_id", mutate: testutil.Field("court_id", 0), expectCode: http.StatusBadRequest},
			{name: "missing date", mutate: testutil.Field("date", nil), expectCode: http.StatusBadRequest},
			{name: "bad date", mutate: testutil.Field("date", "10/05/2024"), expectCode: http.StatusBadRequest},
			{name: "bad start_time", mutate: testutil.Field("start_time", "25:00"), expectCode: http.StatusBadRequest},
			{name: "missing duration", mutate: testutil.Field("duration_minutes", nil), expectCode: http.StatusBadRequest},
			{name: "duration as string", mutate: testutil.Field("duration_minutes", "60"), expectCode: http.StatusBadRequest},
			{name: "missing contact_name", mutate: testutil.Field("contact_name", nil), expectCode: http.StatusBadRequest},
			{name: "contact_name too long", mutate: testutil.Field("contact_name", strings.Repeat("a", 256)), expectCode: http.StatusBadRequest},
			{name: "contact_phone too long", mutate: testutil.Field("contact_phone", strings.Repeat("1", 33)), expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, tc.mutate))
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})

	s.Run("error: maps usecase errors to statuses", func() {
		cases := []struct {
			name           string
			err            error
			expectedStatus int
			expectedMsg    string
		}{
			{"domain validation", errs.Mark(reservation.ErrInvalidContactPhone, errs.ErrDomainValidation), http.StatusBadRequest, "Validation failed"},
			{"court missing", errs.Mark(errors.New("no rows"), errs.ErrCourtNotFound), http.StatusNotFound, "Court not found"},
			{"overlap", errs.Mark(reservation.ErrOverlappingReservation, errs.ErrReservationConflict), http.StatusConflict, "overlaps"},
			{"unexpected", errors.New("database exploded"), http.StatusInternalServerError, "Internal server error"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
				s.NotContains(rec.Body.String(), "database exploded")
			})
		}
	})
}

// ================================================================================
// TestGet / TestList
// ================================================================================

func (s *ReservationHandlerTestSuite) TestGet() {
	s.Run("success", func() {
		view := builder.NewReservationBuilder().WithID(3).WithSlot("2024-05-10", "23:30", 60).BuildView()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(3)).Return(&view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservaciones/3", nil)

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(int64(3), body.ID)
		s.Equal("00:30", body.EndTime)
	})

	s.Run("not found", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(4)).Return(nil, errs.Mark(errors.New("miss"), errs.ErrReservationNotFound))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservaciones/4", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})

	s.Run("invalid id", func() {
		for _, id := range []string{"abc", "0", "-3"} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservaciones/"+id, nil)
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
		}
	})
}

func (s *ReservationHandlerTestSuite) TestList() {
	s.Run("empty list is an empty array", func() {
		s.mockQueries.EXPECT().List(gomock.Any()).Return([]*queries.ReservationView{}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservaciones/", nil)
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`[]`, rec.Body.String())
	})
}

// ================================================================================
// TestUpdate / TestDelete
// ================================================================================

func (s *ReservationHandlerTestSuite) TestUpdate() {
	b := builder.NewReservationBuilder().WithID(5).WithSlot("2024-05-10", "12:00", 90)

	s.Run("success", func() {
		view := b.BuildView()
		s.mockCommands.EXPECT().Update(gomock.Any(), int64(5), b.BuildInput()).Return(&view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/reservaciones/5", b.BuildRequestDTO())

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("13:30", body.EndTime)
	})

	s.Run("conflict carries detail", func() {
		conflict := errs.Mark(errs.Wrapf(reservation.ErrOverlappingReservation, "conflicts with reservation 9"), errs.ErrReservationConflict)
		s.mockCommands.EXPECT().Update(gomock.Any(), int64(5), gomock.Any()).Return(nil, conflict)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/reservaciones/5", b.BuildRequestDTO())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
		s.Contains(rec.Body.String(), "conflicts with reservation 9")
	})
}

func (s *ReservationHandlerTestSuite) TestDelete() {
	s.Run("success", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), int64(5)).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/reservaciones/5", nil)
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"message":"reservation deleted"}`, rec.Body.String())
	})

	s.Run("not found", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), int64(6)).Return(errs.Mark(errors.New("miss"), errs.ErrReservationNotFound))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/reservaciones/6", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})
}

// ================================================================================
// TestListByCourtAndDate
// ================================================================================

func (s *ReservationHandlerTestSuite) TestListByCourtAndDate() {
	url := "/reservaciones/por_cancha_y_fecha/"
	date, err := reservation.ParseDate("2024-05-10")
	s.Require().NoError(err)

	s.Run("success", func() {
		view := builder.NewReservationBuilder().WithCourtID(2).BuildView()
		s.mockQueries.EXPECT().ListByCourtAndDate(gomock.Any(), int64(2), date).
			Return([]*queries.ReservationView{&view}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?cancha_id=2&fecha=2024-05-10", nil)

		var body []resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
	})

	s.Run("no rows is 404", func() {
		s.mockQueries.EXPECT().ListByCourtAndDate(gomock.Any(), int64(2), date).Return(nil, errs.ErrNoReservationsFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?cancha_id=2&fecha=2024-05-10", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "No reservations found")
	})

	s.Run("bad query", func() {
		for _, q := range []string{"", "?cancha_id=2", "?fecha=2024-05-10", "?cancha_id=x&fecha=2024-05-10", "?cancha_id=2&fecha=10-05-2024"} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+q, nil)
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
		}
	})
}
