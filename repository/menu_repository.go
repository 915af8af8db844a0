package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/srezaie/resto-board/apperr"
	"github.com/srezaie/resto-board/models"
)

// MenuRepository performs menu item writes against an explicitly
// provided database handle.
type MenuRepository struct {
	db *gorm.DB
}

// NewMenuRepository creates a MenuRepository using the given handle.
func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{db: db}
}

// Create inserts a new menu item and fills in its assigned ID.
func (r *MenuRepository) Create(item *models.MenuItem) error {
	return r.db.Create(item).Error
}

// Update replaces the mutable fields of an existing menu item.
// Returns apperr.ErrNotFound when no item has the given id.
func (r *MenuRepository) Update(id uint, fields models.MenuItem) error {
	var item models.MenuItem
	if err := r.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.ErrNotFound
		}
		return err
	}

	// Select forces zero values (price 0, unavailable) to be written.
	return r.db.Model(&item).
		Select("Name", "Price", "Category", "IsAvailable").
		Updates(fields).Error
}

// Delete removes a menu item and all orders referencing it. The
// cascade and the item delete run in one transaction so no orphaned
// order is ever visible. Returns apperr.ErrNotFound when no item has
// the given id.
func (r *MenuRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var item models.MenuItem
		if err := tx.First(&item, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.ErrNotFound
			}
			return err
		}
		if err := tx.Where("menu_item_id = ?", id).Delete(&models.Order{}).Error; err != nil {
			return err
		}
		return tx.Delete(&item).Error
	})
}
