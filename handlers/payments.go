package handlers

import (
	"net/http"

	"food-ordering-api/config"
	"food-ordering-api/services"

	"github.com/gin-gonic/gin"
)

type updatePaymentMethodRequest struct {
	PaymentMethod string `json:"paymentMethod"`
}

// UpdatePaymentMethod stores the caller's payment method (admin only)
func UpdatePaymentMethod(c *gin.Context) {
	var req updatePaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	user, err := services.UpdatePaymentMethod(config.DB, currentCaller(c), req.PaymentMethod)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "Payment method updated successfully", user)
}
