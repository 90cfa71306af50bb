package config

import (
	"log"

	"food-ordering-api/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seed loads demo users, restaurants, and menus. Idempotent: rows already
// present (by email / name) are left untouched.
func Seed(db *gorm.DB) error {
	users := []struct {
		email, password, name string
		role                  models.UserRole
		country               models.Country
		paymentMethod         string
	}{
		{"nick.fury@shield.com", "admin123", "Nick Fury", models.RoleAdmin, models.CountryAmerica, "Credit Card **** 1234"},
		{"captain.marvel@shield.com", "manager123", "Captain Marvel", models.RoleManager, models.CountryIndia, ""},
		{"captain.america@shield.com", "manager123", "Captain America", models.RoleManager, models.CountryAmerica, ""},
		{"thanos@shield.com", "member123", "Thanos", models.RoleMember, models.CountryIndia, ""},
		{"thor@shield.com", "member123", "Thor", models.RoleMember, models.CountryIndia, ""},
		{"travis@shield.com", "member123", "Travis", models.RoleMember, models.CountryAmerica, ""},
	}

	for _, u := range users {
		var existing models.User
		if err := db.Where("email = ?", u.email).First(&existing).Error; err == nil {
			continue
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), 10)
		if err != nil {
			return err
		}
		user := models.User{
			Email:         u.email,
			PasswordHash:  string(hash),
			Name:          u.name,
			Role:          u.role,
			Country:       u.country,
			PaymentMethod: u.paymentMethod,
		}
		if err := db.Create(&user).Error; err != nil {
			return err
		}
	}

	restaurants := []models.Restaurant{
		{
			Name:        "Spice Palace",
			Description: "Authentic Indian cuisine with traditional spices",
			Image:       "https://images.unsplash.com/photo-1565557623262-b51c2513a641?w=400",
			Country:     models.CountryIndia,
			Rating:      4.5,
			Address:     "123 Delhi Road, Mumbai",
		},
		{
			Name:        "Curry House",
			Description: "Modern Indian dining experience",
			Image:       "https://images.unsplash.com/photo-1631452180519-c014fe946bc7?w=400",
			Country:     models.CountryIndia,
			Rating:      4.2,
			Address:     "456 Bangalore Street, Pune",
		},
		{
			Name:        "American Diner",
			Description: "Classic American comfort food",
			Image:       "https://images.unsplash.com/photo-1550547660-d9450f859349?w=400",
			Country:     models.CountryAmerica,
			Rating:      4.0,
			Address:     "789 Main Street, New York",
		},
		{
			Name:        "Burger Junction",
			Description: "Gourmet burgers and fries",
			Image:       "https://images.unsplash.com/photo-1568901346375-23c9450c58cd?w=400",
			Country:     models.CountryAmerica,
			Rating:      4.3,
			Address:     "321 Broadway, Los Angeles",
		},
	}

	for _, r := range restaurants {
		var existing models.Restaurant
		if err := db.Where("name = ?", r.Name).First(&existing).Error; err == nil {
			continue
		}
		if err := db.Create(&r).Error; err != nil {
			return err
		}
	}

	menuItems := []struct {
		name, description string
		price             float64
		image, category   string
		restaurantName    string
	}{
		{"Butter Chicken", "Creamy tomato-based curry with tender chicken", 12.99, "https://images.unsplash.com/photo-1588166524941-3bf61a9c41db?w=400", "Main Course", "Spice Palace"},
		{"Biryani", "Fragrant basmati rice with spiced meat", 14.99, "https://images.unsplash.com/photo-1563379091339-03246963d51a?w=400", "Main Course", "Spice Palace"},
		{"Naan Bread", "Fresh baked Indian bread", 3.99, "https://images.unsplash.com/photo-1619221582174-de3708e2ad1c?w=400", "Sides", "Spice Palace"},
		{"Paneer Tikka", "Grilled cottage cheese with spices", 11.99, "https://images.unsplash.com/photo-1567188040759-fb8a883dc6d8?w=400", "Appetizer", "Curry House"},
		{"Dal Makhani", "Rich and creamy black lentil curry", 9.99, "https://images.unsplash.com/photo-1546833999-b9f581a1996d?w=400", "Main Course", "Curry House"},
		{"Classic Burger", "Beef patty with lettuce, tomato, and cheese", 13.99, "https://images.unsplash.com/photo-1568901346375-23c9450c58cd?w=400", "Main Course", "American Diner"},
		{"French Fries", "Crispy golden fries", 4.99, "https://images.unsplash.com/photo-1573080496219-bb080dd4f877?w=400", "Sides", "American Diner"},
		{"Milkshake", "Creamy vanilla milkshake", 5.99, "https://images.unsplash.com/photo-1572490122747-3968b75cc699?w=400", "Beverages", "American Diner"},
		{"BBQ Bacon Burger", "Beef patty with BBQ sauce and crispy bacon", 15.99, "https://images.unsplash.com/photo-1553979459-d2229ba7433a?w=400", "Main Course", "Burger Junction"},
		{"Chicken Wings", "Spicy buffalo wings with ranch dip", 8.99, "https://images.unsplash.com/photo-1527477396000-e27163b481c2?w=400", "Appetizer", "Burger Junction"},
	}

	for _, item := range menuItems {
		var restaurant models.Restaurant
		if err := db.Where("name = ?", item.restaurantName).First(&restaurant).Error; err != nil {
			continue
		}
		var existing models.MenuItem
		if err := db.Where("name = ? AND restaurant_id = ?", item.name, restaurant.ID).First(&existing).Error; err == nil {
			continue
		}
		menuItem := models.MenuItem{
			RestaurantID: restaurant.ID,
			Name:         item.name,
			Description:  item.description,
			Price:        item.price,
			Image:        item.image,
			Category:     item.category,
			Available:    true,
		}
		if err := db.Create(&menuItem).Error; err != nil {
			return err
		}
	}

	log.Println("Database seeded")
	return nil
}
