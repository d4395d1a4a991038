//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"lift-reservation/internal/domain/user"
	"lift-reservation/internal/handler/api"
	resdto "lift-reservation/internal/handler/dto/response"
	"lift-reservation/internal/handler/httperr"
	"lift-reservation/internal/handler/middleware"
	"lift-reservation/internal/pkg/errs"
	"lift-reservation/internal/usecase/commands"
	"lift-reservation/internal/usecase/queries"
	"lift-reservation/tests/common/builder"
	"lift-reservation/tests/common/httptest"
	"lift-reservation/tests/common/testutil"
	commandsmock "lift-reservation/tests/mock/commands"
	queriesmock "lift-reservation/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockReserve *commandsmock.MockReservationCommands
	mockCancel  *commandsmock.MockCancellationCommands
	mockQueries *queriesmock.MockBookingQueries
	userID      uuid.UUID
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())

	s.mockCtrl = gomock.NewController(s.T())
	s.mockReserve = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockCancel = commandsmock.NewMockCancellationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	h := api.NewReservationHandler(s.mockReserve, s.mockCancel, s.mockQueries)
	s.userID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			httperr.Abort(c, http.StatusUnauthorized, "Unauthorized", httperr.CodeUnauthorized)
			return
		}
		c.Set("user_id", s.userID)
		c.Set("user_role", user.RoleSkier)
		c.Next()
	}

	s.router.POST("/reservations", authMiddleware, h.Create)
	s.router.GET("/reservations", authMiddleware, h.ListMine)
	s.router.GET("/reservations/:id", authMiddleware, h.Get)
	s.router.POST("/reservations/:id/cancel", authMiddleware, h.Cancel)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCreate() {
	url := "/reservations"
	b := builder.NewReservationBuilder()
	reqBody := b.BuildRequestDTO()

	s.Run("success: returns 201 with the ticket", func() {
		result := b.BuildTicketResult()
		result.QRImageURL = "https://qr.example/img"
		s.mockReserve.EXPECT().Reserve(gomock.Any(), b.WithUser(s.userID).BuildInput()).Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.TicketResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(result.TicketID.String(), body.TicketID)
		s.Equal(result.BookingID.String(), body.BookingID)
		s.Equal(result.QRPayload, body.QRPayload)
		s.Equal("https://qr.example/img", body.QRImageURL)
		s.Equal("/api/reservations/"+result.BookingID.String(), rec.Header().Get("Location"))
	})

	s.Run("error: 400 on malformed body", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: resortId", mutate: testutil.Field("resortId", nil)},
			{name: "missing field: date", mutate: testutil.Field("date", nil)},
			{name: "missing field: slot", mutate: testutil.Field("slot", nil)},
			{name: "date of wrong length", mutate: testutil.Field("date", "2026-1-1")},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, tc.mutate), "bearer-token")
				httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, httperr.CodeValidation)
			})
		}
	})

	s.Run("error: 401 when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to statuses and codes", func() {
		testCases := []struct {
			name           string
			err            error
			expectedStatus int
			expectedCode   string
		}{
			{name: "validation", err: errs.Mark(errs.New("bad slot"), commands.ErrValidation), expectedStatus: http.StatusBadRequest, expectedCode: httperr.CodeValidation},
			{name: "duplicate booking", err: commands.ErrDuplicateBooking, expectedStatus: http.StatusConflict, expectedCode: httperr.CodeDuplicateBooking},
			{name: "no capacity", err: errs.Mark(errs.New("no rows"), commands.ErrNoCapacity), expectedStatus: http.StatusConflict, expectedCode: httperr.CodeNoCapacity},
			{name: "store unavailable", err: errs.Mark(errs.New("timeout"), commands.ErrStoreUnavailable), expectedStatus: http.StatusServiceUnavailable, expectedCode: httperr.CodeStoreUnavailable},
			{name: "unexpected", err: errs.New("boom"), expectedStatus: http.StatusInternalServerError, expectedCode: httperr.CodeInternal},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockReserve.EXPECT().Reserve(gomock.Any(), gomock.Any()).Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorCode(s.T(), rec, tc.expectedStatus, tc.expectedCode)
			})
		}
	})
}

// ================================================================================
// TestCancel
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCancel() {
	bookingID := uuid.New()
	url := "/reservations/" + bookingID.String() + "/cancel"

	s.Run("success: returns 200 canceled", func() {
		s.mockCancel.EXPECT().Cancel(gomock.Any(), bookingID, s.userID).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var body resdto.CancelResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("canceled", body.Status)
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/not-a-uuid/cancel", nil, "bearer-token")
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, httperr.CodeValidation)
	})

	s.Run("error: maps usecase errors", func() {
		testCases := []struct {
			name           string
			err            error
			expectedStatus int
			expectedCode   string
		}{
			{name: "not found", err: commands.ErrBookingNotFound, expectedStatus: http.StatusNotFound, expectedCode: httperr.CodeNotFound},
			{name: "forbidden", err: commands.ErrForbidden, expectedStatus: http.StatusForbidden, expectedCode: httperr.CodeForbidden},
			{name: "store unavailable", err: errs.Mark(errs.New("timeout"), commands.ErrStoreUnavailable), expectedStatus: http.StatusServiceUnavailable, expectedCode: httperr.CodeStoreUnavailable},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCancel.EXPECT().Cancel(gomock.Any(), bookingID, s.userID).Return(tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
				httptest.AssertErrorCode(s.T(), rec, tc.expectedStatus, tc.expectedCode)
			})
		}
	})
}

// ================================================================================
// TestGet / TestListMine
// ================================================================================

func (s *ReservationHandlerTestSuite) TestGet() {
	view := builder.NewReservationBuilder().BuildView()
	url := "/reservations/" + view.ID.String()

	s.Run("success: returns the booking", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.userID, view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.ID.String(), body.ID)
		s.Equal(view.TicketID.String(), body.TicketID)
		s.Equal("confirmed", body.Status)
		s.Nil(body.CanceledAt)
	})

	s.Run("error: other user's booking is 403", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.userID, view.ID).Return(nil, queries.ErrBookingAccess).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorCode(s.T(), rec, http.StatusForbidden, httperr.CodeForbidden)
	})

	s.Run("error: unknown booking is 404", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.userID, view.ID).Return(nil, queries.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorCode(s.T(), rec, http.StatusNotFound, httperr.CodeNotFound)
	})
}

func (s *ReservationHandlerTestSuite) TestListMine() {
	views := []*queries.BookingView{
		builder.NewReservationBuilder().WithSlot("AM").BuildView(),
		builder.NewReservationBuilder().WithSlot("PM").BuildView(),
	}
	s.mockQueries.EXPECT().ListMine(gomock.Any(), s.userID).Return(views, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations", nil, "bearer-token")

	var body struct {
		Reservations []resdto.BookingResponse `json:"reservations"`
	}
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Len(body.Reservations, 2)
	s.Equal("AM", body.Reservations[0].Slot)
	s.Equal("PM", body.Reservations[1].Slot)
}
