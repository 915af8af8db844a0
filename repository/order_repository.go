package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/srezaie/resto-board/apperr"
	"github.com/srezaie/resto-board/models"
)

// OrderInput carries the validated fields for an order write. The
// price snapshot and total are not part of the input; the repository
// derives them from the referenced menu item at write time.
type OrderInput struct {
	CustomerID uint
	MenuItemID uint
	Quantity   int
	Status     string
	Notes      *string
}

// OrderRepository performs order writes against an explicitly
// provided database handle.
type OrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates an OrderRepository using the given handle.
func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// resolveRefs checks that the referenced customer and menu item exist
// and returns the item so its price can be snapshotted. A missing
// reference is a validation failure, not a not-found outcome.
func resolveRefs(tx *gorm.DB, in OrderInput) (*models.MenuItem, error) {
	var customer models.Customer
	if err := tx.First(&customer, in.CustomerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Invalid("The selected customer does not exist.")
		}
		return nil, err
	}
	var item models.MenuItem
	if err := tx.First(&item, in.MenuItemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Invalid("The selected menu item does not exist.")
		}
		return nil, err
	}
	return &item, nil
}

// Create inserts a new order. The referenced customer and item are
// resolved inside the write transaction; the item's current price is
// snapshotted into ItemPrice and TotalPrice is computed from it.
func (r *OrderRepository) Create(in OrderInput) (*models.Order, error) {
	var order models.Order
	err := r.db.Transaction(func(tx *gorm.DB) error {
		item, err := resolveRefs(tx, in)
		if err != nil {
			return err
		}
		order = models.Order{
			CustomerID: in.CustomerID,
			MenuItemID: in.MenuItemID,
			Quantity:   in.Quantity,
			ItemPrice:  item.Price,
			TotalPrice: item.Price * int64(in.Quantity),
			Status:     in.Status,
			Notes:      in.Notes,
		}
		return tx.Create(&order).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// Update rewrites an existing order. The price snapshot is taken
// fresh from the (possibly different) referenced item, and the total
// recomputed. Returns apperr.ErrNotFound when no order has the given
// id; a missing customer or item reference is a validation failure.
func (r *OrderRepository) Update(id uint, in OrderInput) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.First(&order, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.ErrNotFound
			}
			return err
		}
		item, err := resolveRefs(tx, in)
		if err != nil {
			return err
		}
		return tx.Model(&order).
			Select("CustomerID", "MenuItemID", "Quantity", "ItemPrice", "TotalPrice", "Status", "Notes").
			Updates(models.Order{
				CustomerID: in.CustomerID,
				MenuItemID: in.MenuItemID,
				Quantity:   in.Quantity,
				ItemPrice:  item.Price,
				TotalPrice: item.Price * int64(in.Quantity),
				Status:     in.Status,
				Notes:      in.Notes,
			}).Error
	})
}

// Delete removes a single order. Returns apperr.ErrNotFound when no
// order has the given id.
func (r *OrderRepository) Delete(id uint) error {
	res := r.db.Delete(&models.Order{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
