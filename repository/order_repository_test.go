package repository

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/srezaie/resto-board/apperr"
	"github.com/srezaie/resto-board/models"
)

func seedOrderRefs(t *testing.T, db *gorm.DB) (models.Customer, models.MenuItem) {
	t.Helper()
	customer := models.Customer{FirstName: "Ali", LastName: "Rezaei", Phone: 9121234567}
	item := models.MenuItem{Name: "Tea", Price: 15000, Category: "Drinks", IsAvailable: true}
	assert.NoError(t, db.Create(&customer).Error)
	assert.NoError(t, db.Create(&item).Error)
	return customer, item
}

func TestOrderCreateSnapshotsPrice(t *testing.T) {
	db := setupRepoTestDB(t)
	repo := NewOrderRepository(db)
	customer, item := seedOrderRefs(t, db)

	order, err := repo.Create(OrderInput{
		CustomerID: customer.ID,
		MenuItemID: item.ID,
		Quantity:   3,
		Status:     "pending",
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(15000), order.ItemPrice, "ItemPrice should snapshot the item's current price")
	assert.Equal(t, int64(45000), order.TotalPrice, "TotalPrice should be ItemPrice * Quantity")
	assert.False(t, order.CreatedAt.IsZero())
}

func TestOrderSnapshotSurvivesPriceChange(t *testing.T) {
	db := setupRepoTestDB(t)
	repo := NewOrderRepository(db)
	customer, item := seedOrderRefs(t, db)

	order, err := repo.Create(OrderInput{CustomerID: customer.ID, MenuItemID: item.ID, Quantity: 3, Status: "pending"})
	assert.NoError(t, err)

	// Repricing the item must not rewrite history.
	assert.NoError(t, db.Model(&item).Update("price", 99000).Error)

	var got models.Order
	assert.NoError(t, db.First(&got, order.ID).Error)
	assert.Equal(t, int64(15000), got.ItemPrice)
	assert.Equal(t, int64(45000), got.TotalPrice)
}

func TestOrderCreateMissingReferences(t *testing.T) {
	db := setupRepoTestDB(t)
	repo := NewOrderRepository(db)
	customer, item := seedOrderRefs(t, db)

	tests := []struct {
		name  string
		input OrderInput
	}{
		{"unknown customer", OrderInput{CustomerID: 999999, MenuItemID: item.ID, Quantity: 1, Status: "pending"}},
		{"unknown item", OrderInput{CustomerID: customer.ID, MenuItemID: 999999, Quantity: 1, Status: "pending"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := repo.Create(tt.input)
			assert.True(t, apperr.IsValidation(err), "A missing reference is a validation failure")

			var count int64
			db.Model(&models.Order{}).Count(&count)
			assert.Zero(t, count, "Rejected create must not write")
		})
	}
}

func TestOrderUpdateResnapshots(t *testing.T) {
	db := setupRepoTestDB(t)
	repo := NewOrderRepository(db)
	customer, item := seedOrderRefs(t, db)

	order, err := repo.Create(OrderInput{CustomerID: customer.ID, MenuItemID: item.ID, Quantity: 3, Status: "pending"})
	assert.NoError(t, err)

	assert.NoError(t, db.Model(&item).Update("price", 20000).Error)

	err = repo.Update(order.ID, OrderInput{CustomerID: customer.ID, MenuItemID: item.ID, Quantity: 2, Status: "served"})
	assert.NoError(t, err)

	var got models.Order
	assert.NoError(t, db.First(&got, order.ID).Error)
	assert.Equal(t, int64(20000), got.ItemPrice, "Update takes a fresh snapshot")
	assert.Equal(t, int64(40000), got.TotalPrice)
	assert.Equal(t, "served", got.Status)
	assert.Equal(t, order.CreatedAt.Unix(), got.CreatedAt.Unix(), "Update must not touch CreatedAt")
}

func TestOrderUpdateNotFound(t *testing.T) {
	db := setupRepoTestDB(t)
	repo := NewOrderRepository(db)
	customer, item := seedOrderRefs(t, db)

	err := repo.Update(999999, OrderInput{CustomerID: customer.ID, MenuItemID: item.ID, Quantity: 1, Status: "pending"})
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
	assert.False(t, apperr.IsValidation(err))
}

func TestOrderDelete(t *testing.T) {
	db := setupRepoTestDB(t)
	repo := NewOrderRepository(db)
	customer, item := seedOrderRefs(t, db)

	order, err := repo.Create(OrderInput{CustomerID: customer.ID, MenuItemID: item.ID, Quantity: 1, Status: "pending"})
	assert.NoError(t, err)

	assert.NoError(t, repo.Delete(order.ID))
	assert.True(t, errors.Is(repo.Delete(order.ID), apperr.ErrNotFound), "Second delete should report not found")
}
