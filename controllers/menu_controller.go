package controllers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/srezaie/resto-board/apperr"
	"github.com/srezaie/resto-board/models"
	"github.com/srezaie/resto-board/repository"
)

// MenuItemForm is the dashboard form payload for creating or updating
// a menu item. Numeric fields bind as strings so malformed input
// becomes a validation message instead of a binder error.
type MenuItemForm struct {
	Name        string `form:"name"`
	Category    string `form:"category"`
	Price       string `form:"price"`
	IsAvailable string `form:"is_available"`
}

// parse normalizes and validates the form, returning the item to
// write or a validation error with a user-facing reason.
func (f MenuItemForm) parse() (models.MenuItem, error) {
	name := strings.TrimSpace(f.Name)
	if name == "" {
		return models.MenuItem{}, apperr.Invalid("Item name cannot be empty.")
	}

	category := strings.TrimSpace(f.Category)
	if category == "" {
		category = models.DefaultCategory
	}

	priceRaw := strings.TrimSpace(f.Price)
	if priceRaw == "" {
		priceRaw = "0"
	}
	price, err := strconv.ParseInt(priceRaw, 10, 64)
	if err != nil || price < 0 {
		return models.MenuItem{}, apperr.Invalid("Price is invalid.")
	}

	return models.MenuItem{
		Name:        name,
		Price:       price,
		Category:    category,
		IsAvailable: f.IsAvailable == "on",
	}, nil
}

// MenuController handles menu item mutations.
type MenuController struct {
	repo *repository.MenuRepository
}

// NewMenuController creates a MenuController bound to db.
func NewMenuController(db *gorm.DB) *MenuController {
	return &MenuController{repo: repository.NewMenuRepository(db)}
}

// Create handles POST /menu.
func (mc *MenuController) Create(c *gin.Context) {
	var form MenuItemForm
	// All fields bind as strings; binding itself cannot fail.
	_ = c.ShouldBind(&form)

	item, err := form.parse()
	if err == nil {
		err = mc.repo.Create(&item)
		if err == nil {
			logrus.WithFields(logrus.Fields{"id": item.ID, "name": item.Name}).Info("Menu item created")
		}
	}
	finishWrite(c, err, "Menu item added.")
}

// Update handles POST /menu/:id/update.
func (mc *MenuController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var form MenuItemForm
	_ = c.ShouldBind(&form)

	item, err := form.parse()
	if err == nil {
		err = mc.repo.Update(id, item)
	}
	finishWrite(c, err, "Menu item updated.")
}

// Delete handles POST /menu/:id/delete. Orders referencing the item
// are removed with it.
func (mc *MenuController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	err := mc.repo.Delete(id)
	if err == nil {
		logrus.WithField("id", id).Info("Menu item deleted")
	}
	finishWrite(c, err, "Menu item deleted.")
}
