package services

import (
	"fmt"
	"strings"
	"testing"

	"food-ordering-api/config"
	"food-ordering-api/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory database per test. The DSN is keyed by
// test name so parallel tests never share state.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := config.Migrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func createUser(t *testing.T, db *gorm.DB, name string, role models.UserRole, country models.Country) models.User {
	t.Helper()
	user := models.User{
		Name:         name,
		Email:        strings.ToLower(strings.ReplaceAll(name, " ", ".")) + "@example.com",
		PasswordHash: "irrelevant",
		Role:         role,
		Country:      country,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user %s: %v", name, err)
	}
	return user
}

func asCaller(u models.User) Caller {
	return Caller{ID: u.ID, Email: u.Email, Role: u.Role, Country: u.Country}
}

func createRestaurant(t *testing.T, db *gorm.DB, name string, country models.Country) models.Restaurant {
	t.Helper()
	r := models.Restaurant{Name: name, Country: country, Rating: 4.0, Address: "1 Test St"}
	if err := db.Create(&r).Error; err != nil {
		t.Fatalf("create restaurant %s: %v", name, err)
	}
	return r
}

func createMenuItem(t *testing.T, db *gorm.DB, restaurantID uint, name string, price float64, available bool) models.MenuItem {
	t.Helper()
	m := models.MenuItem{RestaurantID: restaurantID, Name: name, Price: price, Available: available}
	if err := db.Create(&m).Error; err != nil {
		t.Fatalf("create menu item %s: %v", name, err)
	}
	return m
}
