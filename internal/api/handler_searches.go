package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"apartment-availability-backend/internal/failure"
)

const (
	defaultSearchLimit = 20
	maxSearchLimit     = 100
)

// GetRecentSearches handles GET /api/searches.
func (h *Handler) GetRecentSearches(c *gin.Context) {
	if h.store == nil {
		respondError(c, failure.Unavailable("search log is disabled"))
		return
	}

	limit := defaultSearchLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxSearchLimit {
			respondError(c, failure.BadRequestFromString("limit must be between 1 and 100"))
			return
		}
		limit = n
	}

	records, err := h.store.RecentSearches(c.Request.Context(), limit)
	if err != nil {
		respondError(c, failure.InternalError(err))
		return
	}
	c.JSON(http.StatusOK, records)
}
