package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/srezaie/resto-board/apperr"
	"github.com/srezaie/resto-board/models"
)

// CustomerRepository performs customer writes against an explicitly
// provided database handle.
type CustomerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository creates a CustomerRepository using the given handle.
func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// Create inserts a new customer and fills in its assigned ID.
// CreatedAt is set by the store at insert time.
func (r *CustomerRepository) Create(customer *models.Customer) error {
	return r.db.Create(customer).Error
}

// Update replaces the name and phone of an existing customer.
// CreatedAt is deliberately excluded from the column list and is
// never mutated. Returns apperr.ErrNotFound when no customer has the
// given id.
func (r *CustomerRepository) Update(id uint, fields models.Customer) error {
	var customer models.Customer
	if err := r.db.First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.ErrNotFound
		}
		return err
	}

	return r.db.Model(&customer).
		Select("FirstName", "LastName", "Phone").
		Updates(fields).Error
}

// Delete removes a customer and all orders referencing them, in one
// transaction. Returns apperr.ErrNotFound when no customer has the
// given id.
func (r *CustomerRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var customer models.Customer
		if err := tx.First(&customer, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.ErrNotFound
			}
			return err
		}
		if err := tx.Where("customer_id = ?", id).Delete(&models.Order{}).Error; err != nil {
			return err
		}
		return tx.Delete(&customer).Error
	})
}
