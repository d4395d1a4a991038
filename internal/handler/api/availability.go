package api

import (
	"net/http"

	resdto "lift-reservation/internal/handler/dto/response"
	"lift-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	q queries.AvailabilityQueries
}

func NewAvailabilityHandler(q queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{q: q}
}

// @Summary Slot availability
// @Description Remaining tickets per slot for a resort day. May lag writes by the cache TTL.
// @Tags availability
// @Produce json
// @Param resortId path string true "Resort ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /resorts/{resortId}/availability [get]
func (h *AvailabilityHandler) Get(c *gin.Context) {
	view, err := h.q.Get(c.Request.Context(), c.Param("resortId"), c.Query("date"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailabilityView(view))
}
