package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"apartment-availability-backend/internal/failure"
	"apartment-availability-backend/internal/model"
	"apartment-availability-backend/internal/parse"
)

// GetFlats handles GET /api/flats.
func (h *Handler) GetFlats(c *gin.Context) {
	loc, err := parse.Location(c.Query("location"))
	if err != nil {
		respondError(c, failure.BadRequest(err))
		return
	}

	flats := h.dataset.Registry().ByLocation(loc)
	if flats == nil {
		flats = []model.Flat{}
	}
	c.JSON(http.StatusOK, flats)
}

// CalendarResponse is the generated calendar of one location.
type CalendarResponse struct {
	Location model.Location          `json:"location"`
	Days     []model.DayAvailability `json:"days"`
}

// GetCalendar handles GET /api/locations/:location/calendar.
func (h *Handler) GetCalendar(c *gin.Context) {
	loc := model.Location(c.Param("location"))
	if !loc.Valid() {
		respondError(c, failure.NotFound("location"))
		return
	}

	c.JSON(http.StatusOK, CalendarResponse{Location: loc, Days: h.dataset.Days(loc)})
}
