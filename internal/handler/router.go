package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"soundlight-quotes/internal/handler/api"
	"soundlight-quotes/internal/handler/middleware"
	"soundlight-quotes/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, wizardHandler *api.WizardHandler, bookingHandler *api.BookingHandler, sessionMiddleware *middleware.SessionMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, wizardHandler, bookingHandler, sessionMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, wizardHandler *api.WizardHandler, bookingHandler *api.BookingHandler, sessionMiddleware *middleware.SessionMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		quoteGroup := apiGroup.Group("/quote")
		quoteGroup.Use(sessionMiddleware.EnsureSession())
		{
			addRoutes(quoteGroup, []route{
				{Method: http.MethodGet, Path: "/wizard", Handler: wizardHandler.GetState},
				{Method: http.MethodPut, Path: "/wizard/event", Handler: wizardHandler.SubmitEvent},
				{Method: http.MethodPut, Path: "/wizard/equipment", Handler: wizardHandler.SubmitEquipment},
				{Method: http.MethodPost, Path: "/wizard/next", Handler: wizardHandler.Next},
				{Method: http.MethodPost, Path: "/wizard/back", Handler: wizardHandler.Back},
				{Method: http.MethodPost, Path: "/wizard/edit", Handler: wizardHandler.EditStep},
				{Method: http.MethodPost, Path: "/wizard/tier", Handler: wizardHandler.SelectTier},
				{Method: http.MethodPost, Path: "/wizard/checkout", Handler: wizardHandler.Checkout},
				{Method: http.MethodDelete, Path: "/wizard", Handler: wizardHandler.Discard},
				{Method: http.MethodGet, Path: "/bookings/:reference", Handler: bookingHandler.GetByReference},
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
		case http.MethodPatch:
			g.PATCH(r.Path, h)
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
