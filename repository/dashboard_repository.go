package repository

import (
	"gorm.io/gorm"

	"github.com/srezaie/resto-board/models"
)

// Stats holds the dashboard's scalar counters.
type Stats struct {
	Customers int64
	Items     int64
	Orders    int64
	Revenue   int64
}

// DashboardData bundles everything the dashboard view renders:
// newest-first listings of the three entities plus the counters.
// Orders carry their customer and menu item for denormalized display.
type DashboardData struct {
	Items     []models.MenuItem
	Customers []models.Customer
	Orders    []models.Order
	Stats     Stats
}

// DashboardRepository runs the read-only reporting queries.
type DashboardRepository struct {
	db *gorm.DB
}

// NewDashboardRepository creates a DashboardRepository using the given handle.
func NewDashboardRepository(db *gorm.DB) *DashboardRepository {
	return &DashboardRepository{db: db}
}

// Fetch reads the current committed state. Nothing is cached; every
// call re-runs the queries.
func (r *DashboardRepository) Fetch() (*DashboardData, error) {
	data := &DashboardData{}

	if err := r.db.Order("id DESC").Find(&data.Items).Error; err != nil {
		return nil, err
	}
	if err := r.db.Order("id DESC").Find(&data.Customers).Error; err != nil {
		return nil, err
	}
	if err := r.db.Preload("Customer").Preload("MenuItem").
		Order("id DESC").Find(&data.Orders).Error; err != nil {
		return nil, err
	}

	if err := r.db.Model(&models.Customer{}).Count(&data.Stats.Customers).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.MenuItem{}).Count(&data.Stats.Items).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.Order{}).Count(&data.Stats.Orders).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.Order{}).
		Select("COALESCE(SUM(total_price), 0)").
		Scan(&data.Stats.Revenue).Error; err != nil {
		return nil, err
	}

	return data, nil
}
