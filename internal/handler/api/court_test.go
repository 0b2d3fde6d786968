//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"court-booking/internal/domain/court"
	"court-booking/internal/handler/api"
	resdto "court-booking/internal/handler/dto/response"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/usecase/commands"
	"court-booking/internal/usecase/queries"
	"court-booking/tests/common/builder"
	"court-booking/tests/common/httptest"
	"court-booking/tests/common/testutil"
	commandsmock "court-booking/tests/mock/commands"
	queriesmock "court-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CourtHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCourtCommands
	mockQueries  *queriesmock.MockCourtQueries
	handler      *api.CourtHandler
}

func (s *CourtHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCourtCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCourtQueries(s.mockCtrl)
	s.handler = api.NewCourtHandler(s.mockCommands, s.mockQueries)

	g := s.router.Group("/canchas")
	g.POST("/", s.handler.Create)
	g.GET("/", s.handler.List)
	g.GET("/:id", s.handler.Get)
	g.PUT("/:id", s.handler.Update)
	g.DELETE("/:id", s.handler.Delete)
	g.GET("/:id/reservas", s.handler.ListReservations)
}

func (s *CourtHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCourtHandlerSuite(t *testing.T) {
	suite.Run(t, new(CourtHandlerTestSuite))
}

func (s *CourtHandlerTestSuite) TestCreate() {
	url := "/canchas/"
	b := builder.NewCourtBuilder().WithID(12).WithName("Cancha Techada").WithCovered(true)

	s.Run("success", func() {
		view := b.BuildView()
		s.mockCommands.EXPECT().
			Create(gomock.Any(), commands.CourtInput{Name: "Cancha Techada", IsCovered: true}).
			Return(&view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, b.BuildRequestDTO())

		var body resdto.CourtResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/canchas/12"})
		s.Equal(int64(12), body.ID)
		s.Equal("Cancha Techada", body.Name)
		s.True(body.IsCovered)
		s.True(b.CreatedAt.Equal(body.CreatedAt))
	})

	s.Run("is_covered defaults to false", func() {
		view := builder.NewCourtBuilder().BuildView()
		s.mockCommands.EXPECT().
			Create(gomock.Any(), commands.CourtInput{Name: "Cancha Central", IsCovered: false}).
			Return(&view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, `{"name":"Cancha Central"}`)

		var body resdto.CourtResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.False(body.IsCovered)
	})

	s.Run("error: 400 on invalid body", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{"missing name", testutil.Field("name", nil)},
			{"empty name", testutil.Field("name", "")},
			{"name too long", testutil.Field("name", strings.Repeat("x", 256))},
			{"is_covered not bool", testutil.Field("is_covered", "yes")},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), b.BuildRequestDTO(), tc.mutate))
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: blank name rejected by domain", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(court.ErrEmptyCourtName, errs.ErrDomainValidation))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, `{"name":"   "}`)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Validation failed")
	})
}

func (s *CourtHandlerTestSuite) TestGetAndList() {
	s.Run("get", func() {
		view := builder.NewCourtBuilder().WithID(2).BuildView()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(2)).Return(&view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/canchas/2", nil)

		var body resdto.CourtResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(int64(2), body.ID)
	})

	s.Run("get missing", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(99)).
			Return(nil, errs.Mark(errors.New("no rows"), errs.ErrCourtNotFound))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/canchas/99", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Court not found")
	})

	s.Run("list keeps order", func() {
		a := builder.NewCourtBuilder().WithID(1).WithName("A").BuildView()
		c := builder.NewCourtBuilder().WithID(2).WithName("B").BuildView()
		s.mockQueries.EXPECT().List(gomock.Any()).Return([]*queries.CourtView{&a, &c}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/canchas/", nil)

		var body []resdto.CourtResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 2)
		s.Equal("A", body[0].Name)
		s.Equal("B", body[1].Name)
	})

	s.Run("list empty", func() {
		s.mockQueries.EXPECT().List(gomock.Any()).Return(nil, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/canchas/", nil)
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`[]`, rec.Body.String())
	})

	s.Run("list storage failure", func() {
		s.mockQueries.EXPECT().List(gomock.Any()).
			Return(nil, errs.Mark(errors.New("pool closed"), errs.ErrDatabaseOperationFailed))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/canchas/", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
		s.NotContains(rec.Body.String(), "pool closed")
	})
}

func (s *CourtHandlerTestSuite) TestUpdate() {
	b := builder.NewCourtBuilder().WithID(4).WithName("Renamed")

	s.Run("success", func() {
		view := b.BuildView()
		s.mockCommands.EXPECT().
			Update(gomock.Any(), int64(4), commands.CourtInput{Name: "Renamed", IsCovered: false}).
			Return(&view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/canchas/4", b.BuildRequestDTO())

		var body resdto.CourtResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("Renamed", body.Name)
		s.Empty(rec.Header().Get("Location"))
	})

	s.Run("missing", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), int64(4), gomock.Any()).
			Return(nil, errs.Mark(errors.New("no rows"), errs.ErrCourtNotFound))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/canchas/4", b.BuildRequestDTO())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Court not found")
	})

	s.Run("invalid id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/canchas/x", b.BuildRequestDTO())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}

func (s *CourtHandlerTestSuite) TestDelete() {
	s.Run("success", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), int64(3)).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/canchas/3", nil)
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"message":"court deleted"}`, rec.Body.String())
	})

	s.Run("has reservations", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), int64(3)).
			Return(errs.Mark(errors.New("2 reservations"), errs.ErrCourtHasReservations))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/canchas/3", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Court has reservations")
	})

	s.Run("missing", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), int64(8)).
			Return(errs.Mark(errors.New("no rows"), errs.ErrCourtNotFound))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/canchas/8", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Court not found")
	})
}

func (s *CourtHandlerTestSuite) TestListReservations() {
	s.Run("success", func() {
		first := builder.NewReservationBuilder().WithID(1).WithCourtID(5).WithSlot("2024-05-10", "09:00", 60).BuildView()
		second := builder.NewReservationBuilder().WithID(2).WithCourtID(5).WithSlot("2024-05-10", "10:00", 30).BuildView()
		s.mockQueries.EXPECT().ListReservations(gomock.Any(), int64(5)).
			Return([]*queries.ReservationView{&first, &second}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/canchas/5/reservas", nil)

		var body []resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 2)
		s.Equal("09:00", body[0].StartTime)
		s.Equal("10:30", body[1].EndTime)
	})

	s.Run("court missing", func() {
		s.mockQueries.EXPECT().ListReservations(gomock.Any(), int64(6)).
			Return(nil, errs.Mark(errors.New("no rows"), errs.ErrCourtNotFound))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/canchas/6/reservas", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Court not found")
	})
}
