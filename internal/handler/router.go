package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"extinguard/internal/domain/user"
	"extinguard/internal/handler/api"
	"extinguard/internal/handler/middleware"
	"extinguard/internal/pkg/config"
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
	authHandler *api.AuthHandler,
	userHandler *api.UserHandler,
	catalogHandler *api.CatalogHandler,
	cartHandler *api.CartHandler,
	recargaHandler *api.RecargaHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, userHandler, catalogHandler, cartHandler, recargaHandler, authMiddleware)
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
	authHandler *api.AuthHandler,
	userHandler *api.UserHandler,
	catalogHandler *api.CatalogHandler,
	cartHandler *api.CartHandler,
	recargaHandler *api.RecargaHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	adminOnly := []gin.HandlerFunc{authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RoleAdmin)}

	productos := engine.Group("/productos")
	{
		addRoutes(productos, []route{
			{Method: http.MethodGet, Path: "/list", Handler: catalogHandler.ListProducts},
			{Method: http.MethodPost, Path: "/", Handler: catalogHandler.CreateProduct, Mw: adminOnly},
			{Method: http.MethodDelete, Path: "/:id", Handler: catalogHandler.DeleteProduct, Mw: adminOnly},
		})
	}

	categorias := engine.Group("/categorias")
	{
		addRoutes(categorias, []route{
			{Method: http.MethodGet, Path: "/list", Handler: catalogHandler.ListCategories},
			{Method: http.MethodPost, Path: "/", Handler: catalogHandler.CreateCategory, Mw: adminOnly},
			{Method: http.MethodDelete, Path: "/:id", Handler: catalogHandler.DeleteCategory, Mw: adminOnly},
		})
	}

	apiGroup := engine.Group("/api")
	{
		users := apiGroup.Group("/users")
		{
			addRoutes(users, []route{
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
				{Method: http.MethodPost, Path: "/add", Handler: userHandler.Register},
				{Method: http.MethodGet, Path: "/all", Handler: userHandler.ListUsers, Mw: adminOnly},
				{Method: http.MethodDelete, Path: "/delete/:id", Handler: userHandler.DeleteUser, Mw: adminOnly},
			})
		}

		auth := apiGroup.Group("/auth")
		auth.Use(authMiddleware.RequireAuth())
		{
			addRoutes(auth, []route{
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		cart := apiGroup.Group("/cart")
		cart.Use(authMiddleware.RequireAuth())
		{
			addRoutes(cart, []route{
				{Method: http.MethodGet, Path: "", Handler: cartHandler.GetCart},
				{Method: http.MethodDelete, Path: "", Handler: cartHandler.ClearCart},
				{Method: http.MethodPost, Path: "/items", Handler: cartHandler.AddItem},
				{Method: http.MethodPatch, Path: "/items/:productId", Handler: cartHandler.UpdateItem},
				{Method: http.MethodDelete, Path: "/items/:productId", Handler: cartHandler.RemoveItem},
			})
		}

		recargas := apiGroup.Group("/recargas")
		recargas.Use(authMiddleware.RequireAuth())
		{
			adminRole := []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(user.RoleAdmin)}
			addRoutes(recargas, []route{
				{Method: http.MethodPost, Path: "", Handler: recargaHandler.CreateRecarga},
				{Method: http.MethodGet, Path: "", Handler: recargaHandler.ListOwnRecargas},
				{Method: http.MethodGet, Path: "/all", Handler: recargaHandler.ListAllRecargas, Mw: adminRole},
				{Method: http.MethodGet, Path: "/:id", Handler: recargaHandler.GetRecarga},
				{Method: http.MethodPatch, Path: "/:id/status", Handler: recargaHandler.UpdateRecargaStatus, Mw: adminRole},
				{Method: http.MethodDelete, Path: "/:id", Handler: recargaHandler.DeleteRecarga, Mw: adminRole},
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
