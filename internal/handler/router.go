package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"webnebula-api/internal/handler/api"
	"webnebula-api/internal/handler/middleware"
	"webnebula-api/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, formHandler *api.FormHandler, csrfMiddleware *middleware.CSRFMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, formHandler, csrfMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, formHandler *api.FormHandler, csrfMiddleware *middleware.CSRFMiddleware) {
	engine.GET("/health", healthCheck)

	apiGroup := engine.Group("/api")
	{
		contact := apiGroup.Group("/contact")
		{
			addRoutes(contact, []route{
				{Method: http.MethodGet, Path: "", Handler: formHandler.IssueToken},
				{Method: http.MethodPost, Path: "", Handler: formHandler.SubmitContact, Mw: []gin.HandlerFunc{csrfMiddleware.RequireToken()}},
			})
		}

		checkout := apiGroup.Group("/checkout")
		{
			addRoutes(checkout, []route{
				{Method: http.MethodGet, Path: "", Handler: formHandler.IssueToken},
				{Method: http.MethodPost, Path: "", Handler: formHandler.SubmitCheckout, Mw: []gin.HandlerFunc{csrfMiddleware.RequireToken()}},
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
