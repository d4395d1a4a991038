package api

import (
	"net/http"
	"strconv"

	reqdto "lift-reservation/internal/handler/dto/request"
	resdto "lift-reservation/internal/handler/dto/response"
	"lift-reservation/internal/handler/httperr"
	"lift-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	q       queries.BookingQueries
	tickets queries.TicketQueries
}

func NewAdminHandler(q queries.BookingQueries, tickets queries.TicketQueries) *AdminHandler {
	return &AdminHandler{q: q, tickets: tickets}
}

// @Summary List reservations for a resort day
// @Description Staff listing of all bookings (confirmed and canceled) with keyset pagination
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param resortId path string true "Resort ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param limit query int false "Max items (default 50)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {array} resdto.BookingListItemResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /admin/resorts/{resortId}/reservations [get]
func (h *AdminHandler) ListByResortDay(c *gin.Context) {
	limit := queries.DefaultListLimit
	if v := c.Query("limit"); v != "" {
		if iv, e := strconv.Atoi(v); e == nil {
			limit = queries.ValidateLimit(iv)
		}
	}
	var cursor *queries.Cursor
	if after := c.Query("after"); after != "" {
		cursor = &queries.Cursor{After: after}
	}

	items, next, err := h.q.ListByResortDay(c.Request.Context(), c.Param("resortId"), c.Query("date"), cursor, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	resp := gin.H{"reservations": resdto.FromBookingList(items)}
	if next != nil {
		resp["nextCursor"] = next.After
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Verify a scanned ticket
// @Description Check the signature of a QR payload at the lift gate and return what it attests to.
// @Description The booking's current status is not consulted.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.VerifyTicketRequest true "Scanned payload"
// @Success 200 {object} resdto.TicketClaimsResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 422 {object} httperr.Response "INVALID_TICKET"
// @Router /admin/tickets/verify [post]
func (h *AdminHandler) VerifyTicket(c *gin.Context) {
	var req reqdto.VerifyTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithCode(c, http.StatusBadRequest, err, "Invalid request", httperr.CodeValidation)
		return
	}

	claims, err := h.tickets.Verify(c.Request.Context(), req.QRPayload)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTicketClaims(claims))
}
