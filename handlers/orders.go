package handlers

import (
	"net/http"
	"strconv"

	"food-ordering-api/config"
	"food-ordering-api/models"
	"food-ordering-api/services"

	"github.com/gin-gonic/gin"
)

// CreateOrder places a new order for the caller
func CreateOrder(c *gin.Context) {
	var in services.CreateOrderInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	order, err := services.CreateOrder(config.DB, currentCaller(c), in)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusCreated, "Order created successfully", order)
}

// CheckoutOrder confirms a pending order
func CheckoutOrder(c *gin.Context) {
	orderID, err := parseOrderID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	order, err := services.CheckoutOrder(config.DB, currentCaller(c), orderID)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "Order confirmed", order)
}

// CancelOrder cancels an order
func CancelOrder(c *gin.Context) {
	orderID, err := parseOrderID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	order, err := services.CancelOrder(config.DB, currentCaller(c), orderID)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "Order cancelled", order)
}

// ListOrders returns the role-scoped order listing
func ListOrders(c *gin.Context) {
	orders, err := services.ListOrders(config.DB, currentCaller(c))
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "Orders retrieved successfully", orders)
}

func parseOrderID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, models.InvalidInput("Invalid order ID")
	}
	return uint(id), nil
}
