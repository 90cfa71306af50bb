package services

import (
	"errors"
	"fmt"

	"food-ordering-api/models"

	"gorm.io/gorm"
)

type OrderItemInput struct {
	MenuItemID uint `json:"menuItemId"`
	Quantity   int  `json:"quantity"`
}

type CreateOrderInput struct {
	RestaurantID    uint             `json:"restaurantId"`
	Items           []OrderItemInput `json:"items"`
	DeliveryAddress string           `json:"deliveryAddress"`
}

// CreateOrder validates the cart against the live catalog and persists the
// order with its line items in one transaction. Prices are snapshotted per
// line, so later menu edits never touch existing orders.
func CreateOrder(db *gorm.DB, caller Caller, in CreateOrderInput) (*models.Order, error) {
	var created models.Order

	err := db.Transaction(func(tx *gorm.DB) error {
		var restaurant models.Restaurant
		if err := tx.First(&restaurant, in.RestaurantID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NotFound(fmt.Sprintf("Restaurant %d not found", in.RestaurantID))
			}
			return err
		}

		if caller.Role != models.RoleAdmin && restaurant.Country != caller.Country {
			return models.Forbidden("Cannot order from restaurants in other countries")
		}

		if len(in.Items) == 0 {
			return models.InvalidInput("Order must contain at least one item")
		}

		var total float64
		var orderItems []models.OrderItem
		for _, item := range in.Items {
			var menuItem models.MenuItem
			if err := tx.Where("id = ? AND restaurant_id = ?", item.MenuItemID, in.RestaurantID).
				First(&menuItem).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return models.NotFound(fmt.Sprintf("Menu item %d not found in restaurant %d", item.MenuItemID, in.RestaurantID))
				}
				return err
			}
			if item.Quantity <= 0 {
				return models.InvalidInput("Item quantity must be greater than 0")
			}

			total += menuItem.Price * float64(item.Quantity)
			orderItems = append(orderItems, models.OrderItem{
				MenuItemID: menuItem.ID,
				Quantity:   item.Quantity,
				Price:      menuItem.Price,
			})
		}

		order := models.Order{
			UserID:          caller.ID,
			RestaurantID:    in.RestaurantID,
			TotalAmount:     total,
			DeliveryAddress: in.DeliveryAddress,
			Status:          models.StatusPending,
			Items:           orderItems,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		return tx.Preload("Items.MenuItem").Preload("Restaurant").Preload("User").
			First(&created, order.ID).Error
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// CheckoutOrder confirms an order. Managers may only confirm orders from
// their own country; members may not confirm at all. Confirming an already
// confirmed order is a no-op.
func CheckoutOrder(db *gorm.DB, caller Caller, orderID uint) (*models.Order, error) {
	return transitionOrder(db, caller, orderID, models.StatusConfirmed, "checkout")
}

// CancelOrder cancels an order with the same authorization rules as
// checkout. Cancelling an already cancelled order is a no-op.
func CancelOrder(db *gorm.DB, caller Caller, orderID uint) (*models.Order, error) {
	return transitionOrder(db, caller, orderID, models.StatusCancelled, "cancel")
}

func transitionOrder(db *gorm.DB, caller Caller, orderID uint, target models.OrderStatus, verb string) (*models.Order, error) {
	var out models.Order

	err := db.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.Preload("User").Preload("Restaurant").
			Preload("Items.MenuItem.Restaurant").
			First(&order, orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NotFound("Order not found")
			}
			return err
		}

		if caller.Role == models.RoleMember {
			return models.Forbidden(fmt.Sprintf("Members cannot %s orders", verb))
		}

		if caller.Role != models.RoleAdmin {
			// The order's country comes from its first line item's
			// restaurant. An order with no items has no resolvable country
			// and is treated as cross-country.
			if country := resolveOrderCountry(&order); country != caller.Country {
				return models.Forbidden(fmt.Sprintf("Cannot %s orders from other countries", verb))
			}
		}

		if order.Status != target {
			if err := tx.Model(&models.Order{}).Where("id = ?", order.ID).
				Update("status", target).Error; err != nil {
				return err
			}
			order.Status = target
		}

		out = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func resolveOrderCountry(order *models.Order) models.Country {
	if len(order.Items) == 0 {
		return ""
	}
	return order.Items[0].MenuItem.Restaurant.Country
}

// ListOrders returns orders scoped by role: admins see everything,
// managers see orders owned by users of their own country, members see
// only their own. Newest first.
func ListOrders(db *gorm.DB, caller Caller) ([]models.Order, error) {
	query := db.Preload("User").Preload("Restaurant").Preload("Items.MenuItem").
		Order("orders.created_at desc")

	switch caller.Role {
	case models.RoleAdmin:
		// no filter
	case models.RoleManager:
		// Scoped by the order owner's country, not the restaurant's.
		query = query.Joins("JOIN users ON users.id = orders.user_id").
			Where("users.country = ?", caller.Country)
	default:
		query = query.Where("user_id = ?", caller.ID)
	}

	var orders []models.Order
	if err := query.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}
