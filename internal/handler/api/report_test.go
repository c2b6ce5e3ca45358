//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"parking-facility/internal/handler/api"
	resdto "parking-facility/internal/handler/dto/response"
	"parking-facility/internal/usecase/queries"
	"parking-facility/tests/common/httptest"
	queriesmock "parking-facility/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReportHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockReportQueries
	handler     *api.ReportHandler
}

func (s *ReportHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockReportQueries(s.mockCtrl)
	s.handler = api.NewReportHandler(s.mockQueries)

	s.router.GET("/reports/daily", s.handler.Daily)
	s.router.GET("/reports/monthly", s.handler.Monthly)
}

func (s *ReportHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReportHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReportHandlerTestSuite))
}

func (s *ReportHandlerTestSuite) reportView(title string, period queries.ReportPeriod) *queries.ReportView {
	return &queries.ReportView{
		Title:                title,
		Period:               period,
		GeneratedAt:          time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC),
		TotalEntries:         4,
		TotalRevenue:         90.0,
		OccupancyPercentage:  25.0,
		AverageDurationHours: 3.5,
		Vehicles: []queries.VehicleRow{
			{Class: "car", Entries: 3, Revenue: 72.0, AverageDurationHours: 4.0, AccessiblePercentage: 0.0},
			{Class: "motorcycle", Entries: 1, Revenue: 18.0, AverageDurationHours: 2.0, AccessiblePercentage: 100.0},
		},
		Colors: map[string]int{"blue": 2, "red": 2},
	}
}

func (s *ReportHandlerTestSuite) TestDaily() {
	s.mockQueries.EXPECT().Daily().
		Return(s.reportView("Daily Parking Report", queries.PeriodDaily)).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reports/daily", nil, "")

	var response resdto.ReportResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Equal("Daily Parking Report", response.Title)
	s.Equal("daily", response.Period)
	s.Equal(4, response.TotalEntries)
	s.InDelta(90.0, response.TotalRevenue, 1e-9)
	s.Require().Len(response.Vehicles, 2)
	s.Equal("car", response.Vehicles[0].Class)
	s.InDelta(72.0, response.Vehicles[0].Revenue, 1e-9)
	s.Equal(map[string]int{"blue": 2, "red": 2}, response.Colors)
}

func (s *ReportHandlerTestSuite) TestMonthly() {
	s.mockQueries.EXPECT().Monthly().
		Return(s.reportView("Monthly Parking Report", queries.PeriodMonthly)).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reports/monthly", nil, "")

	var response resdto.ReportResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Equal("Monthly Parking Report", response.Title)
	s.Equal("monthly", response.Period)
}
