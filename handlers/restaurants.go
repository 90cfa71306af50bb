package handlers

import (
	"net/http"
	"strconv"

	"food-ordering-api/config"
	"food-ordering-api/models"
	"food-ordering-api/services"

	"github.com/gin-gonic/gin"
)

// ListRestaurants returns restaurants scoped to the caller's country.
// Admins may pass ?country= freely (or omit it for all countries);
// everyone else always gets their own country's listing.
func ListRestaurants(c *gin.Context) {
	caller := currentCaller(c)

	country := c.Query("country")
	if caller.Role != models.RoleAdmin {
		country = string(caller.Country)
	}

	restaurants, err := services.FindRestaurantsByCountry(config.DB, country)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "Restaurants retrieved successfully", restaurants)
}

// GetMenu returns the available menu items of one restaurant
func GetMenu(c *gin.Context) {
	restaurantID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, models.InvalidInput("Invalid restaurant ID"))
		return
	}

	items, err := services.GetMenuItems(config.DB, currentCaller(c), uint(restaurantID))
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "Menu retrieved successfully", items)
}
