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

// OrderForm is the dashboard form payload for creating or updating an
// order. The item price and total never come from the form; the
// repository snapshots them from the referenced menu item.
type OrderForm struct {
	CustomerID string `form:"customer_id"`
	ItemID     string `form:"item_id"`
	Quantity   string `form:"quantity"`
	Status     string `form:"status"`
	Notes      string `form:"notes"`
}

func (f OrderForm) parse() (repository.OrderInput, error) {
	customerID, err := strconv.ParseUint(strings.TrimSpace(f.CustomerID), 10, 32)
	if err != nil {
		return repository.OrderInput{}, apperr.Invalid("Order details are invalid.")
	}
	itemID, err := strconv.ParseUint(strings.TrimSpace(f.ItemID), 10, 32)
	if err != nil {
		return repository.OrderInput{}, apperr.Invalid("Order details are invalid.")
	}

	qtyRaw := strings.TrimSpace(f.Quantity)
	if qtyRaw == "" {
		qtyRaw = "1"
	}
	qty, err := strconv.Atoi(qtyRaw)
	if err != nil || qty <= 0 {
		return repository.OrderInput{}, apperr.Invalid("Order details are invalid.")
	}

	status := strings.TrimSpace(f.Status)
	if status == "" {
		status = models.DefaultOrderStatus
	}

	var notes *string
	if n := strings.TrimSpace(f.Notes); n != "" {
		notes = &n
	}

	return repository.OrderInput{
		CustomerID: uint(customerID),
		MenuItemID: uint(itemID),
		Quantity:   qty,
		Status:     status,
		Notes:      notes,
	}, nil
}

// OrderController handles order mutations.
type OrderController struct {
	repo *repository.OrderRepository
}

// NewOrderController creates an OrderController bound to db.
func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{repo: repository.NewOrderRepository(db)}
}

// Create handles POST /orders.
func (oc *OrderController) Create(c *gin.Context) {
	var form OrderForm
	_ = c.ShouldBind(&form)

	input, err := form.parse()
	if err == nil {
		var order *models.Order
		order, err = oc.repo.Create(input)
		if err == nil {
			logrus.WithFields(logrus.Fields{
				"id":    order.ID,
				"total": order.TotalPrice,
			}).Info("Order created")
		}
	}
	finishWrite(c, err, "Order placed.")
}

// Update handles POST /orders/:id/update. The price snapshot and
// total are recomputed from the referenced item.
func (oc *OrderController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var form OrderForm
	_ = c.ShouldBind(&form)

	input, err := form.parse()
	if err == nil {
		err = oc.repo.Update(id, input)
	}
	finishWrite(c, err, "Order updated.")
}

// Delete handles POST /orders/:id/delete.
func (oc *OrderController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	err := oc.repo.Delete(id)
	if err == nil {
		logrus.WithField("id", id).Info("Order deleted")
	}
	finishWrite(c, err, "Order deleted.")
}
