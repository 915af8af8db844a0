package controllers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/srezaie/resto-board/config"
	"github.com/srezaie/resto-board/models"
)

func setupTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	if err := config.RunMigrations(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	cfg := &config.Config{
		DatabaseURL:  ":memory:",
		GoEnv:        "test",
		SecretKey:    "test-secret",
		TemplatesDir: "../templates",
	}
	return NewRouter(db, cfg), db
}

func postForm(router *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func assertRedirectsToDashboard(t *testing.T, w *httptest.ResponseRecorder) {
	t.Helper()
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/dashboard", w.Header().Get("Location"))
}

func seedCustomerAndItem(t *testing.T, db *gorm.DB) (models.Customer, models.MenuItem) {
	t.Helper()
	customer := models.Customer{FirstName: "Ali", LastName: "Rezaei", Phone: 9121234567}
	item := models.MenuItem{Name: "Tea", Price: 15000, Category: "Drinks", IsAvailable: true}
	if err := db.Create(&customer).Error; err != nil {
		t.Fatalf("Failed to seed customer: %v", err)
	}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("Failed to seed menu item: %v", err)
	}
	return customer, item
}
