//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"parking-facility/internal/handler/api"
	resdto "parking-facility/internal/handler/dto/response"
	"parking-facility/internal/pkg/errs"
	"parking-facility/internal/usecase/commands"
	"parking-facility/internal/usecase/queries"
	"parking-facility/tests/common/builder"
	"parking-facility/tests/common/httptest"
	"parking-facility/tests/common/testutil"
	commandsmock "parking-facility/tests/mock/commands"
	queriesmock "parking-facility/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SubscriptionHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockSubscriptionCommands
	mockQueries  *queriesmock.MockSubscriptionQueries
	handler      *api.SubscriptionHandler
}

func (s *SubscriptionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockSubscriptionCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockSubscriptionQueries(s.mockCtrl)
	s.handler = api.NewSubscriptionHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/subscriptions", s.handler.Create)
	s.router.GET("/subscriptions/quote", s.handler.AnnualQuote)
	s.router.GET("/subscriptions/history", s.handler.History)
	s.router.GET("/subscriptions/:id", s.handler.Get)
	s.router.GET("/subscriptions/:id/validity", s.handler.Validity)
}

func (s *SubscriptionHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSubscriptionHandlerSuite(t *testing.T) {
	suite.Run(t, new(SubscriptionHandlerTestSuite))
}

type testCaseSubscription struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

func (s *SubscriptionHandlerTestSuite) TestCreate() {
	url := "/subscriptions"

	reqBody := builder.NewSubscriptionBuilder().BuildCreateDTO()
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	created := &commands.SubscriptionResult{
		ID:         uuid.NewString(),
		Plate:      reqBody.Plate,
		Subscriber: reqBody.Subscriber,
		StartDate:  start,
		EndDate:    start.AddDate(0, reqBody.Months, 0),
		Tier:       "standard",
	}

	s.Run("success: returns 201 Created", func() {
		s.mockCommands.EXPECT().Create(reqBody).Return(created, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.SubscriptionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(created.ID, response.ID)
		s.Equal("standard", response.Tier)
		s.True(response.Active)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		bound := []testCaseSubscription{
			{name: "tier boundary OK (vip)", mutate: testutil.Field("tier", "vip"), expectCode: http.StatusCreated},
			{name: "tier boundary invalid (gold)", mutate: testutil.Field("tier", "gold"), expectCode: http.StatusBadRequest},
			{name: "months boundary OK (1)", mutate: testutil.Field("months", 1), expectCode: http.StatusCreated},
			{name: "months boundary invalid (0)", mutate: testutil.Field("months", 0), expectCode: http.StatusBadRequest},
		}

		missing := []testCaseSubscription{
			{name: "missing field: plate (required)", mutate: testutil.Field("plate", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: subscriber (required)", mutate: testutil.Field("subscriber", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: tier (required)", mutate: testutil.Field("tier", nil), expectCode: http.StatusBadRequest},
		}

		for _, group := range [][]testCaseSubscription{bound, missing} {
			for _, tc := range group {
				s.Run(tc.name, func() {
					requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

					if tc.expectCode == http.StatusCreated {
						s.mockCommands.EXPECT().Create(gomock.Any()).Return(created, nil).Times(1)
					}

					rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
					if tc.expectCode == http.StatusCreated {
						httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
					} else {
						httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
					}
				})
			}
		}
	})

	s.Run("error: 400 when the registry rejects the data", func() {
		s.mockCommands.EXPECT().Create(reqBody).Return(nil, errs.Mark(errs.New("unknown vehicle class"), commands.ErrDomainValidation)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid subscription data")
	})
}

func (s *SubscriptionHandlerTestSuite) TestValidity() {
	id := uuid.NewString()
	url := "/subscriptions/" + id + "/validity"

	s.Run("success: reports a valid subscription", func() {
		s.mockCommands.EXPECT().Validate(id).Return(true, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.ValidityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(id, response.ID)
		s.True(response.Valid)
	})

	s.Run("success: reports a lapsed subscription as invalid", func() {
		s.mockCommands.EXPECT().Validate(id).Return(false, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.ValidityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.False(response.Valid)
	})

	s.Run("error: 404 for an unknown id", func() {
		s.mockCommands.EXPECT().Validate(id).Return(false, commands.ErrSubscriptionNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Subscription not found")
	})
}

func (s *SubscriptionHandlerTestSuite) TestGet() {
	id := uuid.NewString()
	url := "/subscriptions/" + id

	s.Run("success: returns the subscription", func() {
		s.mockQueries.EXPECT().Get(id).Return(&queries.SubscriptionView{
			ID:    id,
			Plate: "AB-123-CD",
			Tier:  "premium",
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.SubscriptionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(id, response.ID)
		s.Equal("premium", response.Tier)
	})

	s.Run("error: 404 for an unknown id", func() {
		s.mockQueries.EXPECT().Get(id).Return(nil, queries.ErrSubscriptionNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Subscription not found")
	})
}

func (s *SubscriptionHandlerTestSuite) TestHistory() {
	s.Run("success: lists every subscription for the plate", func() {
		s.mockQueries.EXPECT().HistoryByPlate("AB-123-CD").Return([]queries.SubscriptionView{
			{ID: uuid.NewString(), Plate: "AB-123-CD", Tier: "standard", Active: false},
			{ID: uuid.NewString(), Plate: "AB-123-CD", Tier: "vip", Active: true},
		}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/subscriptions/history?plate=AB-123-CD", nil, "")

		var response []resdto.SubscriptionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 2)
		s.False(response[0].Active)
		s.True(response[1].Active)
	})

	s.Run("error: 400 without a plate", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/subscriptions/history", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Query parameter plate is required")
	})
}

func (s *SubscriptionHandlerTestSuite) TestAnnualQuote() {
	s.Run("success: returns the annual price for a class", func() {
		s.mockQueries.EXPECT().AnnualQuote("car").Return(&queries.AnnualQuoteView{
			Class:      "car",
			HourlyRate: 18.0,
			AnnualFee:  10368.0,
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/subscriptions/quote?class=car", nil, "")

		var response resdto.AnnualQuoteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.InDelta(18.0, response.HourlyRate, 1e-9)
		s.InDelta(10368.0, response.AnnualFee, 1e-9)
	})

	s.Run("error: 400 for an unknown class", func() {
		s.mockQueries.EXPECT().AnnualQuote("boat").Return(nil, queries.ErrUnknownVehicleClass).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/subscriptions/quote?class=boat", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Unknown vehicle class")
	})

	s.Run("error: 500 on unexpected failures", func() {
		s.mockQueries.EXPECT().AnnualQuote("car").Return(nil, errors.New("boom")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/subscriptions/quote?class=car", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
