package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"apartment-availability-backend/config"
	"apartment-availability-backend/internal/mw"
)

// NewRouter creates and configures a new Gin router.
func NewRouter(cfg *config.ServerConfig, h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), mw.RequestLogger())
	_ = r.SetTrustedProxies(nil)

	registerValidators()
	r.SetHTMLTemplate(loadTemplates())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	limited := r.Group("/")
	if cfg.RateLimitPerSec > 0 {
		limited.Use(mw.RateLimiter(rate.Limit(cfg.RateLimitPerSec), cfg.RateLimitBurst))
	}

	// the dataset never changes after startup, so read endpoints are safe to cache
	cacheStore := cache.New(cfg.CacheTTL, 2*cfg.CacheTTL)
	caching := mw.Cache(cacheStore, cfg.CacheTTL)

	limited.GET("/", h.IndexPage)
	limited.GET("/search", h.SearchPage)

	api := limited.Group("/api")
	{
		api.GET("/flats", caching, h.GetFlats)
		api.GET("/availability", caching, h.GetAvailability)
		api.GET("/locations/:location/calendar", caching, h.GetCalendar)
		api.GET("/searches", h.GetRecentSearches)
	}

	return r
}
