//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"soundlight-quotes/internal/domain/quote"
	"soundlight-quotes/internal/domain/wizard"
	"soundlight-quotes/internal/handler/api"
	resdto "soundlight-quotes/internal/handler/dto/response"
	"soundlight-quotes/internal/pkg/clock"
	"soundlight-quotes/internal/pkg/errs"
	"soundlight-quotes/internal/usecase/commands"
	"soundlight-quotes/tests/common/builder"
	"soundlight-quotes/tests/common/httptest"
	"soundlight-quotes/tests/common/testutil"
	commandsmock "soundlight-quotes/tests/mock/commands"

	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type WizardHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockWizardCommands
	handler      *api.WizardHandler
	sessionID    uuid.UUID
}

func (s *WizardHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockWizardCommands(s.mockCtrl)

	fixed := clock.NewFixedClock(time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC))
	s.handler = api.NewWizardHandler(s.mockCommands, fixed)
	s.sessionID = uuid.New()

	// Stand-in for the session middleware.
	sessionStub := func(c *gin.Context) {
		c.Set("session_id", s.sessionID.String())
		c.Next()
	}

	group := s.router.Group("/api/quote", sessionStub)
	group.GET("/wizard", s.handler.GetState)
	group.PUT("/wizard/event", s.handler.SubmitEvent)
	group.PUT("/wizard/equipment", s.handler.SubmitEquipment)
	group.POST("/wizard/next", s.handler.Next)
	group.POST("/wizard/back", s.handler.Back)
	group.POST("/wizard/edit", s.handler.EditStep)
	group.POST("/wizard/tier", s.handler.SelectTier)
	group.POST("/wizard/checkout", s.handler.Checkout)
	group.DELETE("/wizard", s.handler.Discard)
}

func (s *WizardHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestWizardHandlerSuite(t *testing.T) {
	suite.Run(t, new(WizardHandlerTestSuite))
}

func (s *WizardHandlerTestSuite) TestGetState() {
	view := builder.NewWizardBuilder().BuildWizardView()
	s.mockCommands.EXPECT().GetState(gomock.Any(), s.sessionID).Return(view, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/quote/wizard", nil)

	var body resdto.WizardResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Equal("result", body.StepName)
	s.Equal(int64(210000), body.EquipmentTotal)
	s.NotEmpty(body.EquipmentTotalDisplay)
	s.Require().NotNil(body.Quote)
	s.Equal(int64(252000), body.Quote.Standard.Price)
	s.NotEmpty(body.Quote.Standard.PriceDisplay)
}

func (s *WizardHandlerTestSuite) TestSubmitEvent() {
	url := "/api/quote/wizard/event"
	reqBody := builder.NewWizardBuilder().BuildEventRequestDTO()

	s.Run("success: returns 200 with the updated wizard", func() {
		view := builder.NewWizardBuilder().BuildWizardView()
		s.mockCommands.EXPECT().SubmitEvent(gomock.Any(), s.sessionID, gomock.Any()).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request on binding failures", func() {
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "missing date", mutate: testutil.Field("date", nil)},
			{name: "bad date layout", mutate: testutil.Field("date", "21/11/2030")},
			{name: "short location", mutate: testutil.Field("location", "BA")},
			{name: "unknown event type", mutate: testutil.Field("event_type", "festival")},
			{name: "too few guests", mutate: testutil.Field("guest_count", 5)},
			{name: "too many guests", mutate: testutil.Field("guest_count", 2000)},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				m := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, m)
				s.Equal(http.StatusBadRequest, rec.Code, rec.Body.String())
			})
		}
	})

	s.Run("error: 400 on a past event date", func() {
		m := testutil.DtoMap(s.T(), reqBody, testutil.Field("date", "2020-01-01"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, m)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "past")
	})

	s.Run("error: 410 Gone once completed", func() {
		s.mockCommands.EXPECT().SubmitEvent(gomock.Any(), s.sessionID, gomock.Any()).Return(nil, wizard.ErrCompleted).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusGone, "completed")
	})
}

func (s *WizardHandlerTestSuite) TestSubmitEquipment() {
	url := "/api/quote/wizard/equipment"
	reqBody := builder.NewWizardBuilder().BuildEquipmentRequestDTO()

	s.Run("success: returns 200", func() {
		view := builder.NewWizardBuilder().BuildWizardView()
		s.mockCommands.EXPECT().SubmitEquipment(gomock.Any(), s.sessionID, gomock.Any()).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 422 when the guard blocks, state still returned", func() {
		view := builder.NewWizardBuilder().BuildWizardView()
		s.mockCommands.EXPECT().SubmitEquipment(gomock.Any(), s.sessionID, gomock.Any()).
			Return(view, quote.ErrNoBasicService).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "at least one")
		s.Contains(rec.Body.String(), "wizard")
	})

	s.Run("error: 400 on invalid variants", func() {
		m := testutil.DtoMap(s.T(), reqBody, testutil.Field("sound_type", "quadraphonic"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, m)
		s.Equal(http.StatusBadRequest, rec.Code, rec.Body.String())
	})

	s.Run("error: 400 on an out-of-window dj schedule", func() {
		m := testutil.DtoMap(s.T(), reqBody, testutil.Field("dj_schedule", "10:00 - 14:00"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, m)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "13:00")
	})
}

func (s *WizardHandlerTestSuite) TestNext() {
	url := "/api/quote/wizard/next"

	s.Run("success", func() {
		view := builder.NewWizardBuilder().BuildWizardView()
		s.mockCommands.EXPECT().Next(gomock.Any(), s.sessionID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 404 when no draft exists", func() {
		s.mockCommands.EXPECT().Next(gomock.Any(), s.sessionID).Return(nil, errs.ErrDraftNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "draft")
	})

	s.Run("error: 422 when the guard blocks advancing", func() {
		s.mockCommands.EXPECT().Next(gomock.Any(), s.sessionID).Return(nil, quote.ErrScheduleRequired).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "schedule")
	})

	s.Run("error: 422 at the last step", func() {
		s.mockCommands.EXPECT().Next(gomock.Any(), s.sessionID).Return(nil, wizard.ErrAtLastStep).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "last step")
	})
}

func (s *WizardHandlerTestSuite) TestEditStep() {
	url := "/api/quote/wizard/edit"

	s.Run("success", func() {
		view := builder.NewWizardBuilder().BuildWizardView()
		s.mockCommands.EXPECT().EditStep(gomock.Any(), s.sessionID, 1).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"step": 1})
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("step zero binds", func() {
		view := builder.NewWizardBuilder().BuildWizardView()
		s.mockCommands.EXPECT().EditStep(gomock.Any(), s.sessionID, 0).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"step": 0})
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 out of range", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"step": 7})
		s.Equal(http.StatusBadRequest, rec.Code)

		rec = httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{})
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *WizardHandlerTestSuite) TestSelectTier() {
	url := "/api/quote/wizard/tier"

	s.Run("success", func() {
		view := builder.NewWizardBuilder().BuildWizardView()
		s.mockCommands.EXPECT().SelectTier(gomock.Any(), s.sessionID, quote.TierPremium).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"tier": "premium"})
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 on unknown tier", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"tier": "vip"})
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: 422 off the result step", func() {
		s.mockCommands.EXPECT().SelectTier(gomock.Any(), s.sessionID, quote.TierBasic).Return(nil, wizard.ErrNotAtResultStep).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"tier": "basic"})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "result step")
	})
}

func (s *WizardHandlerTestSuite) TestCheckout() {
	url := "/api/quote/wizard/checkout"
	reqBody := builder.NewWizardBuilder().BuildCheckoutRequestDTO()

	s.Run("success: 201 with the booking reference", func() {
		result := &commands.CheckoutResult{Booking: builder.NewWizardBuilder().BuildBookingView()}
		s.mockCommands.EXPECT().Checkout(gomock.Any(), s.sessionID, gomock.Any()).Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("SL-0007", body.Reference)
		s.Equal(int64(126000), body.Deposit)
		s.NotEmpty(body.DepositDisplay)
	})

	s.Run("error: 400 on checkout form validation", func() {
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "short name", mutate: testutil.Field("name", "Mo")},
			{name: "bad email", mutate: testutil.Field("email", "nope")},
			{name: "short phone", mutate: testutil.Field("phone", "123")},
			{name: "unknown payment method", mutate: testutil.Field("payment_method", "cash")},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				m := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, m)
				s.Equal(http.StatusBadRequest, rec.Code, rec.Body.String())
			})
		}
	})

	s.Run("error: 400 when the policy box is unchecked", func() {
		m := testutil.DtoMap(s.T(), reqBody, testutil.Field("accept_cancellation_policy", false))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, m)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "policy")
	})

	s.Run("error: 409 when checkout is not open", func() {
		s.mockCommands.EXPECT().Checkout(gomock.Any(), s.sessionID, gomock.Any()).Return(nil, errs.ErrCheckoutNotOpen).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "not open")
	})

	s.Run("error: 502 when the booking write fails", func() {
		s.mockCommands.EXPECT().Checkout(gomock.Any(), s.sessionID, gomock.Any()).Return(nil, errs.ErrDatabaseOperationFailed).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadGateway, "try again")
	})
}

func (s *WizardHandlerTestSuite) TestDiscard() {
	url := "/api/quote/wizard"

	s.Run("success: 204", func() {
		s.mockCommands.EXPECT().Discard(gomock.Any(), s.sessionID).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil)
		s.Equal(http.StatusNoContent, rec.Code)
		s.Empty(rec.Body.String())
	})

	s.Run("error: 500 when the store fails", func() {
		s.mockCommands.EXPECT().Discard(gomock.Any(), s.sessionID).Return(errs.ErrDraftStoreFailed).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil)
		s.Equal(http.StatusInternalServerError, rec.Code)
	})
}
