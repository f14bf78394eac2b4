package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"apartment-availability-backend/internal/availability"
	"apartment-availability-backend/internal/failure"
	"apartment-availability-backend/internal/inventory"
	"apartment-availability-backend/internal/model"
)

type dayResponse struct {
	Date           string   `json:"date"`
	Day            string   `json:"day"`
	AvailableFlats []string `json:"availableFlats"`
}

// AvailabilityResponse is the JSON form of a search result.
type AvailabilityResponse struct {
	Location        model.Location `json:"location"`
	Date            string         `json:"date"`
	GuestCount      int            `json:"guestCount"`
	FlexibilityDays int            `json:"flexibilityDays"`
	Days            []dayResponse  `json:"days"`
	AvailableFlats  []string       `json:"availableFlats"`
	Empty           bool           `json:"empty"`
}

func newAvailabilityResponse(res availability.Result) AvailabilityResponse {
	days := make([]dayResponse, 0, len(res.Days))
	for _, d := range res.Days {
		days = append(days, dayResponse{
			Date:           d.Date.Format(time.DateOnly),
			Day:            inventory.WeekdayName(d.Date),
			AvailableFlats: d.AvailableFlats,
		})
	}
	return AvailabilityResponse{
		Location:        res.Request.Location,
		Date:            res.Request.Date.Format(time.DateOnly),
		GuestCount:      res.Request.GuestCount,
		FlexibilityDays: res.Request.FlexibilityDays,
		Days:            days,
		AvailableFlats:  res.FlatIDs(),
		Empty:           res.Empty(),
	}
}

// GetAvailability handles GET /api/availability.
func (h *Handler) GetAvailability(c *gin.Context) {
	var q availabilityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondError(c, failure.BadRequestFromString(validationMessage(err)))
		return
	}

	flex := h.flexibilityDays
	if q.Flex != nil {
		flex = *q.Flex
	}
	req, err := toRequest(q.Location, q.Date, q.Guests, flex)
	if err != nil {
		respondError(c, failure.BadRequest(err))
		return
	}

	c.JSON(http.StatusOK, newAvailabilityResponse(availability.Search(h.dataset, req)))
}
