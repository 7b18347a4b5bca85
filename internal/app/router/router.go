package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	mdhandler "stock_analyzer/internal/feature/marketdata/transport/handler"
	platformhandler "stock_analyzer/internal/platform/http/handler"
)

// NewRouter assembles the gin engine with CORS, the health probe and the
// analysis API routes.
func NewRouter(analyze *mdhandler.AnalyzeHandler, keys *mdhandler.KeysHandler) *gin.Engine {
	r := gin.Default()

	// The API is consumed by browser frontends on other origins.
	r.Use(cors.Default())

	// Liveness probe, no auth.
	r.GET("/healthz", platformhandler.Health)
	r.HEAD("/healthz", platformhandler.Health)

	api := r.Group("/api")
	{
		api.POST("/analyze", analyze.Analyze)
		api.GET("/check-keys", keys.CheckKeys)
	}

	return r
}
