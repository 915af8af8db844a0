package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/srezaie/resto-board/middleware"
	"github.com/srezaie/resto-board/repository"
)

// DashboardController renders the landing page and the dashboard view.
type DashboardController struct {
	repo *repository.DashboardRepository
}

// NewDashboardController creates a DashboardController bound to db.
func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{repo: repository.NewDashboardRepository(db)}
}

// Welcome handles GET / - the landing page.
func (dc *DashboardController) Welcome(c *gin.Context) {
	c.HTML(http.StatusOK, "welcome.html", nil)
}

// Show handles GET /dashboard - listings, counters, and any flash
// messages queued by the last mutation.
func (dc *DashboardController) Show(c *gin.Context) {
	data, err := dc.repo.Fetch()
	if err != nil {
		renderServerError(c, err)
		return
	}

	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"Items":     data.Items,
		"Customers": data.Customers,
		"Orders":    data.Orders,
		"Stats":     data.Stats,
		"Flashes":   middleware.TakeFlashes(c),
	})
}
