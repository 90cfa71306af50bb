package services

import (
	"errors"
	"strings"

	"food-ordering-api/models"

	"gorm.io/gorm"
)

// UpdatePaymentMethod stores a free-text payment method on the caller's
// own account. No gateway integration — the value is opaque to the system.
func UpdatePaymentMethod(db *gorm.DB, caller Caller, paymentMethod string) (*models.User, error) {
	paymentMethod = strings.TrimSpace(paymentMethod)
	if paymentMethod == "" {
		return nil, models.InvalidInput("Payment method is required")
	}

	var user models.User
	if err := db.First(&user, caller.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NotFound("User not found")
		}
		return nil, err
	}

	user.PaymentMethod = paymentMethod
	if err := db.Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
