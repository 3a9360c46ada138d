package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"decor-rental/internal/domain/user"
	"decor-rental/internal/handler/api"
	"decor-rental/internal/handler/middleware"
	"decor-rental/internal/infra/metrics"
	"decor-rental/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type RouterParams struct {
	fx.In

	Config         config.Config
	Logger         *slog.Logger
	Metrics        *metrics.Metrics
	AuthMiddleware *middleware.AuthMiddleware

	Auth        *api.AuthHandler
	Inventory   *api.InventoryHandler
	Booking     *api.BookingHandler
	Package     *api.PackageHandler
	Message     *api.MessageHandler
	Testimonial *api.TestimonialHandler
	Site        *api.SiteHandler
	User        *api.UserHandler
	Report      *api.ReportHandler
	Backup      *api.BackupHandler
}

func NewRouter(engine *gin.Engine, p RouterParams) {
	setupMiddleware(engine, p)
	setupRoutes(engine, p)
}

func setupMiddleware(engine *gin.Engine, p RouterParams) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery(p.Logger))
	engine.Use(middleware.NewCORSMiddleware(p.Config.CORS, p.Logger))
	engine.Use(middleware.LoggingMiddleware(p.Logger))
	engine.Use(middleware.MetricsMiddleware(p.Metrics))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, p RouterParams) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(p.Metrics.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	authMw := p.AuthMiddleware
	editor := []gin.HandlerFunc{authMw.RequireAuth(), authMw.RequireRoleAtLeast(user.RoleEditor)}
	manager := []gin.HandlerFunc{authMw.RequireAuth(), authMw.RequireRoleAtLeast(user.RoleManager)}
	admin := []gin.HandlerFunc{authMw.RequireAuth(), authMw.RequireRoleAtLeast(user.RoleAdmin)}
	superAdmin := []gin.HandlerFunc{authMw.RequireAuth(), authMw.RequireRoleAtLeast(user.RoleSuperAdmin)}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: p.Auth.Login},
				{Method: http.MethodPost, Path: "/logout", Handler: p.Auth.Logout},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMw.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: p.Auth.Me},
				{Method: http.MethodPost, Path: "/change-password", Handler: p.Auth.ChangePassword},
			})
		}

		addRoutes(apiGroup.Group("/inventory"), []route{
			{Method: http.MethodGet, Path: "", Handler: p.Inventory.List},
			{Method: http.MethodGet, Path: "/categories", Handler: p.Inventory.Categories},
			{Method: http.MethodGet, Path: "/stats", Handler: p.Inventory.Stats, Mw: manager},
			{Method: http.MethodGet, Path: "/:id", Handler: p.Inventory.Get},
			{Method: http.MethodPost, Path: "", Handler: p.Inventory.Create, Mw: manager},
			{Method: http.MethodPut, Path: "/:id", Handler: p.Inventory.Update, Mw: manager},
			{Method: http.MethodDelete, Path: "/:id", Handler: p.Inventory.Delete, Mw: manager},
		})

		addRoutes(apiGroup.Group("/bookings"), []route{
			{Method: http.MethodPost, Path: "", Handler: p.Booking.Submit},
			{Method: http.MethodGet, Path: "", Handler: p.Booking.List, Mw: manager},
			{Method: http.MethodGet, Path: "/:id", Handler: p.Booking.Get, Mw: manager},
			{Method: http.MethodPut, Path: "/:id", Handler: p.Booking.Update, Mw: manager},
			{Method: http.MethodPatch, Path: "/:id/status", Handler: p.Booking.ChangeStatus, Mw: manager},
			{Method: http.MethodDelete, Path: "/:id", Handler: p.Booking.Delete, Mw: manager},
		})

		addRoutes(apiGroup.Group("/packages"), []route{
			{Method: http.MethodGet, Path: "", Handler: p.Package.List},
			{Method: http.MethodGet, Path: "/:id", Handler: p.Package.Get},
			{Method: http.MethodPost, Path: "", Handler: p.Package.Create, Mw: manager},
			{Method: http.MethodPut, Path: "/:id", Handler: p.Package.Update, Mw: manager},
			{Method: http.MethodDelete, Path: "/:id", Handler: p.Package.Delete, Mw: manager},
		})

		addRoutes(apiGroup.Group("/messages"), []route{
			{Method: http.MethodPost, Path: "", Handler: p.Message.Submit},
			{Method: http.MethodGet, Path: "", Handler: p.Message.List, Mw: manager},
			{Method: http.MethodPatch, Path: "/:id/read", Handler: p.Message.MarkRead, Mw: manager},
			{Method: http.MethodDelete, Path: "/:id", Handler: p.Message.Delete, Mw: manager},
		})

		addRoutes(apiGroup.Group("/testimonials"), []route{
			{Method: http.MethodGet, Path: "", Handler: p.Testimonial.List},
			{Method: http.MethodPost, Path: "", Handler: p.Testimonial.Create, Mw: editor},
			{Method: http.MethodPut, Path: "/:id", Handler: p.Testimonial.Update, Mw: editor},
			{Method: http.MethodDelete, Path: "/:id", Handler: p.Testimonial.Delete, Mw: editor},
		})

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/content", Handler: p.Site.Content},
			{Method: http.MethodPut, Path: "/content", Handler: p.Site.ReplaceContent, Mw: editor},
			{Method: http.MethodGet, Path: "/settings", Handler: p.Site.Settings},
			{Method: http.MethodPut, Path: "/settings", Handler: p.Site.ReplaceSettings, Mw: admin},
			{Method: http.MethodGet, Path: "/reports/sales", Handler: p.Report.Sales, Mw: manager},
			{Method: http.MethodPost, Path: "/reset", Handler: p.Backup.Reset, Mw: superAdmin},
		})

		users := apiGroup.Group("/users")
		users.Use(admin...)
		addRoutes(users, []route{
			{Method: http.MethodGet, Path: "", Handler: p.User.List},
			{Method: http.MethodPost, Path: "", Handler: p.User.Create},
			{Method: http.MethodPut, Path: "/:id", Handler: p.User.Update},
			{Method: http.MethodDelete, Path: "/:id", Handler: p.User.Delete},
		})

		backupGroup := apiGroup.Group("/backup")
		backupGroup.Use(admin...)
		addRoutes(backupGroup, []route{
			{Method: http.MethodGet, Path: "", Handler: p.Backup.ExportJSON},
			{Method: http.MethodGet, Path: "/export", Handler: p.Backup.ExportXLSX},
			{Method: http.MethodPost, Path: "/restore", Handler: p.Backup.Restore},
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
			h = chainHandlers(append(r.Mw[:len(r.Mw):len(r.Mw)], r.Handler)...)
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
