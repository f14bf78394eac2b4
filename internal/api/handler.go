package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"apartment-availability-backend/internal/availability"
	"apartment-availability-backend/internal/failure"
	"apartment-availability-backend/internal/inventory"
	"apartment-availability-backend/internal/logger"
	"apartment-availability-backend/internal/model"
	"apartment-availability-backend/internal/store"
)

// SearchIDHeader carries the id of the logged search.
const SearchIDHeader = "X-Search-ID"

// SearchDispatcher queues a search record for logging.
type SearchDispatcher interface {
	Dispatch(rec model.SearchRecord) bool
}

// Handler holds shared dependencies for API handlers.
type Handler struct {
	dataset         *inventory.Dataset
	flexibilityDays int
	store           store.Store
	searches        SearchDispatcher
}

// NewHandler creates a new API handler. s and searches may be nil when the
// database is disabled.
func NewHandler(ds *inventory.Dataset, flexibilityDays int, s store.Store, searches SearchDispatcher) *Handler {
	return &Handler{
		dataset:         ds,
		flexibilityDays: flexibilityDays,
		store:           s,
		searches:        searches,
	}
}

func (h *Handler) logSearch(c *gin.Context, res availability.Result) {
	if h.searches == nil {
		return
	}
	rec := model.SearchRecord{
		ID:              uuid.NewString(),
		Location:        res.Request.Location,
		TargetDate:      res.Request.Date.Format(time.DateOnly),
		GuestCount:      res.Request.GuestCount,
		FlexibilityDays: res.Request.FlexibilityDays,
		MatchedFlats:    len(res.FlatIDs()),
		CreatedAt:       time.Now().UTC(),
	}
	c.Header(SearchIDHeader, rec.ID)
	h.searches.Dispatch(rec)
}

func respondError(c *gin.Context, err error) {
	code := failure.GetCode(err)
	switch {
	case code == http.StatusServiceUnavailable:
		log.Warn().Err(err).Str("path", c.Request.URL.Path).Msg("dependency unavailable")
	case code >= http.StatusInternalServerError:
		logger.ErrorWithStack(err)
	}
	c.AbortWithStatusJSON(code, failure.Failure{Code: code, Message: err.Error()})
}
