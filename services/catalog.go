package services

import (
	"errors"

	"food-ordering-api/models"

	"gorm.io/gorm"
)

// FindRestaurantsByCountry lists restaurants for one country, or all of
// them when country is empty.
func FindRestaurantsByCountry(db *gorm.DB, country string) ([]models.Restaurant, error) {
	var restaurants []models.Restaurant

	if country == "" {
		if err := db.Find(&restaurants).Error; err != nil {
			return nil, err
		}
		return restaurants, nil
	}

	if !models.ValidCountry(models.Country(country)) {
		return nil, models.InvalidInput("Invalid country: " + country)
	}

	if err := db.Where("country = ?", country).Find(&restaurants).Error; err != nil {
		return nil, err
	}
	return restaurants, nil
}

// GetMenuItems returns a restaurant's available menu items. Non-admin
// callers only see menus of restaurants in their own country.
func GetMenuItems(db *gorm.DB, caller Caller, restaurantID uint) ([]models.MenuItem, error) {
	var restaurant models.Restaurant
	if err := db.First(&restaurant, restaurantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NotFound("Restaurant not found")
		}
		return nil, err
	}

	if caller.Role != models.RoleAdmin && restaurant.Country != caller.Country {
		return nil, models.Forbidden("Access denied: country restriction")
	}

	var items []models.MenuItem
	if err := db.Where("restaurant_id = ? AND available = ?", restaurantID, true).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
