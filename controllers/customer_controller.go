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

// CustomerForm is the dashboard form payload for creating or updating
// a customer.
type CustomerForm struct {
	FirstName string `form:"first_name"`
	LastName  string `form:"last_name"`
	Phone     string `form:"phone"`
}

func (f CustomerForm) parse() (models.Customer, error) {
	first := strings.TrimSpace(f.FirstName)
	last := strings.TrimSpace(f.LastName)
	if first == "" || last == "" {
		return models.Customer{}, apperr.Invalid("First and last name are required.")
	}

	phone, err := strconv.ParseInt(strings.TrimSpace(f.Phone), 10, 64)
	if err != nil || phone <= 0 {
		return models.Customer{}, apperr.Invalid("Phone number is invalid.")
	}

	return models.Customer{
		FirstName: first,
		LastName:  last,
		Phone:     phone,
	}, nil
}

// CustomerController handles customer mutations.
type CustomerController struct {
	repo *repository.CustomerRepository
}

// NewCustomerController creates a CustomerController bound to db.
func NewCustomerController(db *gorm.DB) *CustomerController {
	return &CustomerController{repo: repository.NewCustomerRepository(db)}
}

// Create handles POST /customers.
func (cc *CustomerController) Create(c *gin.Context) {
	var form CustomerForm
	_ = c.ShouldBind(&form)

	customer, err := form.parse()
	if err == nil {
		err = cc.repo.Create(&customer)
		if err == nil {
			logrus.WithField("id", customer.ID).Info("Customer created")
		}
	}
	finishWrite(c, err, "Customer added.")
}

// Update handles POST /customers/:id/update.
func (cc *CustomerController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var form CustomerForm
	_ = c.ShouldBind(&form)

	customer, err := form.parse()
	if err == nil {
		err = cc.repo.Update(id, customer)
	}
	finishWrite(c, err, "Customer updated.")
}

// Delete handles POST /customers/:id/delete. Orders referencing the
// customer are removed with them.
func (cc *CustomerController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	err := cc.repo.Delete(id)
	if err == nil {
		logrus.WithField("id", id).Info("Customer deleted")
	}
	finishWrite(c, err, "Customer deleted.")
}
