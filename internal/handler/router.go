package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"parking-facility/internal/handler/api"
	"parking-facility/internal/handler/middleware"
	"parking-facility/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	registry *prometheus.Registry,
	authHandler *api.AuthHandler,
	parkingHandler *api.ParkingHandler,
	subscriptionHandler *api.SubscriptionHandler,
	reportHandler *api.ReportHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, registry, authHandler, parkingHandler, subscriptionHandler, reportHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	registry *prometheus.Registry,
	authHandler *api.AuthHandler,
	parkingHandler *api.ParkingHandler,
	subscriptionHandler *api.SubscriptionHandler,
	reportHandler *api.ReportHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
			})
		}

		parking := apiGroup.Group("/parking")
		{
			addRoutes(parking, []route{
				{Method: http.MethodPost, Path: "/entries", Handler: parkingHandler.Entry},
				{Method: http.MethodPost, Path: "/exits", Handler: parkingHandler.Exit},
				{Method: http.MethodGet, Path: "/status", Handler: parkingHandler.Status},
			})

			staff := parking.Group("/sessions")
			staff.Use(authMiddleware.RequireOperator())
			addRoutes(staff, []route{
				{Method: http.MethodGet, Path: "", Handler: parkingHandler.Sessions},
				{Method: http.MethodGet, Path: "/history", Handler: parkingHandler.SessionHistory},
			})
		}

		subscriptions := apiGroup.Group("/subscriptions")
		{
			addRoutes(subscriptions, []route{
				{Method: http.MethodPost, Path: "", Handler: subscriptionHandler.Create},
				{Method: http.MethodGet, Path: "/quote", Handler: subscriptionHandler.AnnualQuote},
				{Method: http.MethodGet, Path: "/:id", Handler: subscriptionHandler.Get},
				{Method: http.MethodGet, Path: "/:id/validity", Handler: subscriptionHandler.Validity},
				{Method: http.MethodGet, Path: "/history", Handler: subscriptionHandler.History, Mw: []gin.HandlerFunc{authMiddleware.RequireOperator()}},
			})
		}

		reports := apiGroup.Group("/reports")
		reports.Use(authMiddleware.RequireOperator())
		{
			addRoutes(reports, []route{
				{Method: http.MethodGet, Path: "/daily", Handler: reportHandler.Daily},
				{Method: http.MethodGet, Path: "/monthly", Handler: reportHandler.Monthly},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireOperator())
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/reset", Handler: parkingHandler.Reset},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
