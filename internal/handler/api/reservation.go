package api

import (
	"net/http"

	reqdto "lift-reservation/internal/handler/dto/request"
	resdto "lift-reservation/internal/handler/dto/response"
	"lift-reservation/internal/handler/httperr"
	"lift-reservation/internal/handler/middleware"
	"lift-reservation/internal/usecase/commands"
	"lift-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	reserve commands.ReservationCommands
	cancel  commands.CancellationCommands
	q       queries.BookingQueries
}

func NewReservationHandler(reserve commands.ReservationCommands, cancel commands.CancellationCommands, q queries.BookingQueries) *ReservationHandler {
	return &ReservationHandler{reserve: reserve, cancel: cancel, q: q}
}

// @Summary Reserve a slot
// @Description Reserve one lift ticket for a resort, date and half-day slot.
// @Description The date must not be before today in the resort time zone. A same-day slot is rejected with 400 once its window has ended (AM at 12:30, PM at 16:30 resort time).
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.TicketResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 409 {object} httperr.Response "DUPLICATE_BOOKING or NO_CAPACITY"
// @Failure 503 {object} httperr.Response
// @Router /reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.Abort(c, http.StatusUnauthorized, "Unauthorized", httperr.CodeUnauthorized)
		return
	}
	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithCode(c, http.StatusBadRequest, err, "Invalid request", httperr.CodeValidation)
		return
	}

	result, err := h.reserve.Reserve(c.Request.Context(), req.ToInput(userID))
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Location", "/api/reservations/"+result.BookingID.String())
	c.JSON(http.StatusCreated, resdto.FromTicketResult(result))
}

// @Summary Cancel reservation
// @Description Cancel own reservation and return its ticket to the pool. Repeating the call is a no-op.
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.CancelResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /reservations/{id}/cancel [post]
func (h *ReservationHandler) Cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithCode(c, http.StatusBadRequest, err, "Invalid id", httperr.CodeValidation)
		return
	}
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.Abort(c, http.StatusUnauthorized, "Unauthorized", httperr.CodeUnauthorized)
		return
	}

	if err := h.cancel.Cancel(c.Request.Context(), id, userID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.CancelResponse{Status: "canceled"})
}

// @Summary Get reservation
// @Description Get own reservation with its ticket
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithCode(c, http.StatusBadRequest, err, "Invalid id", httperr.CodeValidation)
		return
	}
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.Abort(c, http.StatusUnauthorized, "Unauthorized", httperr.CodeUnauthorized)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), userID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary List my reservations
// @Description List the caller's confirmed reservations ordered by date and slot
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string][]resdto.BookingResponse
// @Failure 401 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /reservations [get]
func (h *ReservationHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.Abort(c, http.StatusUnauthorized, "Unauthorized", httperr.CodeUnauthorized)
		return
	}

	views, err := h.q.ListMine(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservations": resdto.FromBookingViews(views)})
}
