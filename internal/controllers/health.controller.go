package controllers

import (
	"context"
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
)

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type CacheStatusReporter interface {
	GetStatus(ctx context.Context) (map[string]interface{}, error)
}

type HealthController struct {
	db      Pinger
	cache   CacheStatusReporter
	version string
	started time.Time
}

// NewHealthController builds the service info and health endpoints. cache
// may be nil when the plan cache is disabled.
func NewHealthController(db Pinger, cache CacheStatusReporter, version string) *HealthController {
	return &HealthController{
		db:      db,
		cache:   cache,
		version: version,
		started: time.Now(),
	}
}

// Root godoc
// @Summary Service info
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (hc *HealthController) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Planova API is running",
		"version": hc.version,
		"docs":    "/swagger/index.html",
	})
}

// Health godoc
// @Summary Health check
// @Description Ping the database and report cache and runtime statistics
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Healthy"
// @Failure 503 {object} map[string]interface{} "Database unreachable"
// @Router /health [get]
func (hc *HealthController) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	response := gin.H{
		"status":         "healthy",
		"database":       "ok",
		"cache":          gin.H{"enabled": false},
		"uptime_seconds": int(time.Since(hc.started).Seconds()),
		"goroutines":     runtime.NumGoroutine(),
		"memory_mb":      m.Alloc / 1024 / 1024,
	}

	if hc.cache != nil {
		stats, err := hc.cache.GetStatus(ctx)
		if err != nil {
			response["cache"] = gin.H{"enabled": true, "connected": false, "error": err.Error()}
		} else {
			stats["enabled"] = true
			response["cache"] = stats
		}
	}

	if err := hc.db.PingContext(ctx); err != nil {
		response["status"] = "unhealthy"
		response["database"] = err.Error()
		c.JSON(http.StatusServiceUnavailable, response)
		return
	}

	c.JSON(http.StatusOK, response)
}
