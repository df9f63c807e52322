package router

import (
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"c4inventario/internal/config"
	"c4inventario/internal/server/handlers"
	"c4inventario/internal/server/middleware"
	"c4inventario/internal/service/inventory"
	"c4inventario/internal/session"
)

// Handlers groups the screen handlers the router wires up.
type Handlers struct {
	Auth      *handlers.AuthHandler
	Dashboard *handlers.DashboardHandler
	Products  *handlers.ProductHandler
	Reports   *handlers.ReportHandler
	Settings  *handlers.SettingsHandler
}

// New wires the Gin engine with templates, static assets, the session guard
// and all screen routes.
func New(cfg config.ServerConfig, h Handlers, store *session.Store, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))

	r.SetFuncMap(templateFuncs())
	r.LoadHTMLGlob(cfg.TemplateGlob)
	r.Static("/static", cfg.StaticDir)

	r.GET("/login", h.Auth.LoginPage)
	r.POST("/login", h.Auth.Login)
	r.POST("/register", h.Auth.Register)
	r.POST("/logout", h.Auth.Logout)
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	protected := r.Group("/", middleware.RequireSession(store, logger))
	{
		protected.GET("/", func(c *gin.Context) {
			c.Redirect(http.StatusSeeOther, "/dashboard")
		})
		protected.GET("/dashboard", h.Dashboard.Dashboard)
		protected.GET("/dashboard/quick-report.pdf", h.Dashboard.QuickReport)

		protected.GET("/products", h.Products.Table)
		protected.GET("/products/new", h.Products.NewForm)
		protected.POST("/products/new", h.Products.Create)
		protected.GET("/products/:id/edit", h.Products.EditForm)
		protected.POST("/products/:id/edit", h.Products.Update)
		protected.POST("/products/:id/delete", h.Products.Delete)

		protected.GET("/reports", h.Reports.Page)
		protected.GET("/reports/movements.pdf", h.Reports.MonthlyMovementsPDF)
		protected.GET("/reports/inventory.pdf", h.Reports.InventoryPDF)

		protected.GET("/settings", h.Settings.Page)
		protected.POST("/settings/users", h.Settings.CreateUser)
		protected.POST("/settings/users/:id", h.Settings.UpdateUser)
		protected.POST("/settings/users/:id/delete", h.Settings.DeleteUser)
		protected.GET("/settings/export.xlsx", h.Settings.ExportExcel)
	}

	// Unknown paths land on the login screen.
	r.NoRoute(func(c *gin.Context) {
		c.Redirect(http.StatusSeeOther, "/login")
	})

	if logger != nil {
		logger.Info("router initialized")
	}

	return r
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		// sortLink builds a column-header URL carrying the current search
		// and filter plus the toggled sort state for the clicked key.
		"sortLink": func(q inventory.ProductQuery, key string) string {
			next := q.Sort.Toggle(key)
			values := url.Values{}
			if q.Search != "" {
				values.Set("q", q.Search)
			}
			if q.Status != "" {
				values.Set("status", q.Status)
			}
			values.Set("sort", next.Key)
			values.Set("dir", next.Direction)
			return "/products?" + values.Encode()
		},
		"money": func(v float64) string {
			return fmt.Sprintf("$%.2f", v)
		},
		"percent": func(v float64) string {
			return fmt.Sprintf("%.1f%%", v)
		},
		"dateShort": func(t time.Time) string {
			if t.IsZero() {
				return ""
			}
			return t.Format("02/01/2006")
		},
		"timeShort": func(t time.Time) string {
			if t.IsZero() {
				return ""
			}
			return t.Format("15:04")
		},
		"orDash": func(s string) string {
			if s == "" {
				return "-"
			}
			return s
		},
	}
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}
