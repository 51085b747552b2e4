package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/persistorai/friendgraph/internal/middleware"
)

// RouterDeps holds all dependencies needed by the router.
type RouterDeps struct {
	Log         *logrus.Logger
	Analysis    AnalysisService
	Stats       GraphStats
	CORSOrigins []string
	Version     string
}

// Router-level limits.
const (
	rateLimit = 20 // requests per second per IP; reports run one BFS per node
	rateBurst = 40
)

// setupMiddleware configures all middleware on the Gin engine.
func setupMiddleware(ctx context.Context, r *gin.Engine, deps *RouterDeps) {
	r.SetTrustedProxies(nil) //nolint:errcheck // nil always succeeds.
	r.Use(middleware.RequestID(deps.Log))
	r.Use(ginLogger(deps.Log))
	r.Use(gin.Recovery())
	r.Use(middleware.SecurityHeaders())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     deps.CORSOrigins,
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", middleware.RequestIDHeader},
		ExposeHeaders:    []string{middleware.RequestIDHeader},
		MaxAge:           1 * time.Hour,
		AllowCredentials: false,
	}))
	r.Use(middleware.NewRateLimiter(ctx, rateLimit, rateBurst).Handler())
	r.Use(middleware.PrometheusMiddleware())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// registerRoutes sets up all API route handlers on the given router group.
func registerRoutes(api *gin.RouterGroup, deps *RouterDeps) {
	health := NewHealthHandler(deps.Stats, deps.Log, deps.Version)
	analysis := NewAnalysisHandler(deps.Analysis, deps.Log)

	api.GET("/health", health.Liveness)
	api.GET("/ready", health.Readiness)

	api.GET("/report", analysis.Report)
	api.GET("/distances/:id", analysis.Distances)
	api.GET("/nodes/:id/neighbors", analysis.Neighbors)
	api.GET("/path/:from/:to", analysis.Path)
	api.GET("/histograms/degree", analysis.DegreeHistogram)
	api.GET("/histograms/second-order", analysis.SecondOrderHistogram)
}

// NewRouter creates and configures the Gin engine with all middleware and routes.
func NewRouter(ctx context.Context, deps *RouterDeps) http.Handler {
	r := gin.New()
	setupMiddleware(ctx, r, deps)
	registerRoutes(r.Group("/api/v1"), deps)

	return r
}
