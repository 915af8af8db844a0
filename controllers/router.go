package controllers

import (
	"html/template"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/srezaie/resto-board/config"
	"github.com/srezaie/resto-board/middleware"
	"github.com/srezaie/resto-board/utils"
)

// NewRouter wires the full HTTP surface: the landing page, the
// dashboard, and the create/update/delete routes for menu items,
// customers, and orders. Every mutation redirects back to the
// dashboard with a flash message.
func NewRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, err any) {
		logrus.WithField("panic", err).Error("Request handler panicked")
		c.HTML(http.StatusInternalServerError, "500.html", nil)
		c.Abort()
	}))
	router.Use(middleware.Sessions(cfg.SecretKey))

	router.SetFuncMap(template.FuncMap{
		"money": utils.Money,
	})
	router.LoadHTMLGlob(filepath.Join(cfg.TemplatesDir, "*.html"))

	dashboard := NewDashboardController(db)
	menu := NewMenuController(db)
	customers := NewCustomerController(db)
	orders := NewOrderController(db)

	router.GET("/", dashboard.Welcome)
	router.GET("/dashboard", dashboard.Show)

	router.POST("/menu", menu.Create)
	router.POST("/menu/:id/update", menu.Update)
	router.POST("/menu/:id/delete", menu.Delete)

	router.POST("/customers", customers.Create)
	router.POST("/customers/:id/update", customers.Update)
	router.POST("/customers/:id/delete", customers.Delete)

	router.POST("/orders", orders.Create)
	router.POST("/orders/:id/update", orders.Update)
	router.POST("/orders/:id/delete", orders.Delete)

	router.NoRoute(func(c *gin.Context) {
		c.HTML(http.StatusNotFound, "404.html", nil)
	})

	return router
}
