package v1

import (
	"cdn_manager/api/v1/cache_rules"
	"cdn_manager/api/v1/middleware"
	"cdn_manager/api/v1/origins"
	"cdn_manager/api/v1/purges"
	"cdn_manager/internal/httpx"
	"cdn_manager/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// SetupRouter sets up the API v1 routes
func SetupRouter(r *gin.Engine, s *store.Store, logger *logrus.Logger) {
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(logger))

	v1 := r.Group("/api/v1")
	{
		v1.GET("/ping", pingHandler)

		originsHandler := origins.NewHandler(s)
		originsGroup := v1.Group("/origins")
		{
			originsGroup.GET("", originsHandler.List)
			originsGroup.POST("/create", originsHandler.Create)
		}

		rulesHandler := cache_rules.NewHandler(s)
		v1.POST("/cache-rules/create", rulesHandler.Create)

		purgesHandler := purges.NewHandler(s)
		v1.POST("/purges/create", purgesHandler.Create)

		v1.GET("/status", statusHandler(s))
		v1.GET("/export", exportHandler(s))
	}
}

// pingHandler handles the ping request using the unified response
func pingHandler(c *gin.Context) {
	httpx.OK(c, gin.H{"pong": true})
}

// statusHandler returns the aggregate fleet summary
// GET /api/v1/status
func statusHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		summary, err := s.Status()
		if err != nil {
			httpx.FailErr(c, httpx.ErrDatabaseError("failed to compute status", err))
			return
		}
		httpx.OK(c, summary)
	}
}

// exportHandler returns the full configuration snapshot. Writing it to a file
// is the caller's business; over HTTP the payload itself is the export.
// GET /api/v1/export
func exportHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		payload, err := s.Export()
		if err != nil {
			httpx.FailErr(c, httpx.ErrDatabaseError("failed to export configuration", err))
			return
		}
		httpx.OK(c, payload)
	}
}
