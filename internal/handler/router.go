package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"nightpass/internal/handler/api"
	"nightpass/internal/handler/middleware"
	"nightpass/internal/pkg/config"
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
	cartHandler *api.CartHandler,
	checkoutHandler *api.CheckoutHandler,
	transactionHandler *api.TransactionHandler,
	identityMiddleware *middleware.IdentityMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, cartHandler, checkoutHandler, transactionHandler, identityMiddleware)
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
	cartHandler *api.CartHandler,
	checkoutHandler *api.CheckoutHandler,
	transactionHandler *api.TransactionHandler,
	identityMiddleware *middleware.IdentityMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(identityMiddleware.ResolveOwner())
	{
		cartGroup := apiGroup.Group("/cart")
		{
			addRoutes(cartGroup, []route{
				{Method: http.MethodGet, Path: "", Handler: cartHandler.GetCart},
				{Method: http.MethodPost, Path: "/lines", Handler: cartHandler.AddLine},
				{Method: http.MethodPatch, Path: "/lines/:id", Handler: cartHandler.UpdateLine},
				{Method: http.MethodDelete, Path: "/lines/:id", Handler: cartHandler.RemoveLine},
			})
		}

		checkoutGroup := apiGroup.Group("/checkout")
		{
			addRoutes(checkoutGroup, []route{
				{Method: http.MethodGet, Path: "/quote", Handler: cartHandler.Quote},
				{Method: http.MethodPost, Path: "", Handler: checkoutHandler.Checkout},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/transactions/:id", Handler: transactionHandler.GetTransaction},
			{Method: http.MethodGet, Path: "/purchases/:token/qr", Handler: transactionHandler.GetPurchaseQR},
		})
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
