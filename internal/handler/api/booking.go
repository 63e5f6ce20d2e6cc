package api

import (
	"errors"
	"net/http"
	"strings"

	resdto "soundlight-quotes/internal/handler/dto/response"
	"soundlight-quotes/internal/handler/httperr"
	"soundlight-quotes/internal/pkg/errs"
	"soundlight-quotes/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookingQueries queries.BookingQueries
}

func NewBookingHandler(bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingQueries: bookingQueries,
	}
}

// @Summary Get booking by reference
// @Description Look up a confirmed booking by its SL-#### reference
// @Tags bookings
// @Produce json
// @Param reference path string true "Booking reference (SL-0001)"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /quote/bookings/{reference} [get]
func (h *BookingHandler) GetByReference(c *gin.Context) {
	reference := strings.ToUpper(strings.TrimSpace(c.Param("reference")))
	if !strings.HasPrefix(reference, "SL-") {
		httperr.AbortWithError(c, http.StatusBadRequest,
			errs.New("malformed booking reference"), "Invalid booking reference", nil)
		return
	}

	view, err := h.bookingQueries.GetByReference(c.Request.Context(), reference)
	if err != nil {
		if errors.Is(err, errs.ErrBookingNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}
