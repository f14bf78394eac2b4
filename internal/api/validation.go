package api

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"apartment-availability-backend/internal/availability"
	"apartment-availability-backend/internal/parse"
)

const (
	msgDateRequired  = "Please select a date."
	msgDateFormat    = "Please enter the date as YYYY-MM-DD."
	msgGuestsMin     = "Must have at least 1 guest."
	msgGuestsMax     = "Maximum 10 guests allowed."
	msgGuestsInvalid = "Enter the number of guests (1-10)."
	msgLocation      = "Choose Kadri, Bejai or All Locations."
	msgFlex          = "Flexibility must be between 0 and 7 days."
)

// fieldOrder is the order messages are reported in.
var fieldOrder = []string{"Location", "Date", "Guests", "Flex"}

// searchForm is the form submission contract of the search page.
type searchForm struct {
	Location string `form:"location" binding:"omitempty,location"`
	Date     string `form:"date" binding:"required,datetime=2006-01-02"`
	Guests   int    `form:"guests" binding:"required,min=1,max=10"`
}

// availabilityQuery is searchForm plus an explicit flexibility for the JSON API.
type availabilityQuery struct {
	Location string `form:"location" binding:"omitempty,location"`
	Date     string `form:"date" binding:"required,datetime=2006-01-02"`
	Guests   int    `form:"guests" binding:"required,min=1,max=10"`
	Flex     *int   `form:"flex" binding:"omitempty,min=0,max=7"`
}

func registerValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	if err := v.RegisterValidation("location", validLocation); err != nil {
		log.Error().Err(err).Msg("failed to register location validator")
	}
}

func validLocation(fl validator.FieldLevel) bool {
	_, err := parse.Location(fl.Field().String())
	return err == nil
}

func toRequest(location, date string, guests, flex int) (availability.Request, error) {
	loc, err := parse.Location(location)
	if err != nil {
		return availability.Request{}, err
	}
	d, err := parse.Date(date)
	if err != nil {
		return availability.Request{}, err
	}
	return availability.Request{
		Location:        loc,
		Date:            d,
		GuestCount:      guests,
		FlexibilityDays: flex,
	}, nil
}

// fieldErrors maps a binding error to one message per form field.
func fieldErrors(err error) map[string]string {
	errs := make(map[string]string)

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// binding fails before validation only when a number does not parse
		errs["Guests"] = msgGuestsInvalid
		return errs
	}

	for _, fe := range verrs {
		if _, seen := errs[fe.Field()]; seen {
			continue
		}
		switch fe.Field() {
		case "Date":
			if fe.Tag() == "required" {
				errs["Date"] = msgDateRequired
			} else {
				errs["Date"] = msgDateFormat
			}
		case "Guests":
			if fe.Tag() == "max" {
				errs["Guests"] = msgGuestsMax
			} else {
				errs["Guests"] = msgGuestsMin
			}
		case "Location":
			errs["Location"] = msgLocation
		case "Flex":
			errs["Flex"] = msgFlex
		}
	}
	return errs
}

// validationMessage flattens fieldErrors into one line.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "invalid query: " + err.Error()
	}

	errs := fieldErrors(err)
	msgs := make([]string, 0, len(errs))
	for _, f := range fieldOrder {
		if m, ok := errs[f]; ok {
			msgs = append(msgs, m)
		}
	}
	return strings.Join(msgs, " ")
}
