package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"apartment-availability-backend/internal/availability"
	"apartment-availability-backend/internal/model"
	"apartment-availability-backend/internal/parse"
)

type formValues struct {
	Location string
	Date     string
	Guests   string
}

type locationOption struct {
	Value    model.Location
	Label    string
	Selected bool
}

type pageData struct {
	Form            formValues
	Errors          map[string]string
	Locations       []locationOption
	FlexibilityDays int
	Notice          string
	Searched        bool
	Summary         availability.Summary
}

func (h *Handler) newPage(form formValues) pageData {
	// An unparsable value leaves nothing selected; the form shows its error.
	selected, _ := parse.Location(form.Location)
	var options []locationOption
	for _, loc := range append([]model.Location{model.LocationAll}, model.Locations...) {
		options = append(options, locationOption{
			Value:    loc,
			Label:    loc.Title(),
			Selected: loc == selected,
		})
	}
	return pageData{
		Form:            form,
		Errors:          map[string]string{},
		Locations:       options,
		FlexibilityDays: h.flexibilityDays,
	}
}

// IndexPage handles GET / with an empty search form.
func (h *Handler) IndexPage(c *gin.Context) {
	c.HTML(http.StatusOK, "index.tmpl", h.newPage(formValues{Guests: "1"}))
}

// SearchPage handles GET /search, the form submission.
func (h *Handler) SearchPage(c *gin.Context) {
	page := h.newPage(formValues{
		Location: c.Query("location"),
		Date:     c.Query("date"),
		Guests:   c.Query("guests"),
	})

	var form searchForm
	if err := c.ShouldBindQuery(&form); err != nil {
		page.Errors = fieldErrors(err)
		c.HTML(http.StatusBadRequest, "index.tmpl", page)
		return
	}

	req, err := toRequest(form.Location, form.Date, form.Guests, h.flexibilityDays)
	if err != nil {
		page.Errors["Date"] = msgDateFormat
		c.HTML(http.StatusBadRequest, "index.tmpl", page)
		return
	}

	res := availability.Search(h.dataset, req)
	h.logSearch(c, res)

	page.Searched = true
	page.Summary = availability.Summarize(h.dataset, res)
	page.Notice = fmt.Sprintf("Showing available apartments for %d guests.", req.GuestCount)
	c.HTML(http.StatusOK, "index.tmpl", page)
}
