// Package cart holds a client session's in-memory order selection. It is
// single-user, unsynchronized state: lines are keyed by (restaurant, menu
// item), quantities aggregate, and Split turns a mixed selection into one
// order payload per restaurant since the API accepts single-restaurant
// orders only.
package cart

import "food-ordering-api/models"

// Line is one cart entry: a menu item, its restaurant, and a quantity.
type Line struct {
	Item       models.MenuItem
	Restaurant models.Restaurant
	Quantity   int
}

// Cart aggregates selected menu items prior to order submission.
// It carries no server-side state and is lost with the session.
type Cart struct {
	lines []Line
}

func New() *Cart {
	return &Cart{}
}

// Add puts one unit of the item in the cart, merging with an existing line
// for the same item and restaurant.
func (c *Cart) Add(item models.MenuItem, restaurant models.Restaurant) {
	for i := range c.lines {
		if c.lines[i].Item.ID == item.ID && c.lines[i].Restaurant.ID == restaurant.ID {
			c.lines[i].Quantity++
			return
		}
	}
	c.lines = append(c.lines, Line{Item: item, Restaurant: restaurant, Quantity: 1})
}

// Remove takes one unit of the item out of the cart, dropping the line
// when the quantity reaches zero.
func (c *Cart) Remove(itemID uint) {
	for i := range c.lines {
		if c.lines[i].Item.ID == itemID {
			if c.lines[i].Quantity > 1 {
				c.lines[i].Quantity--
			} else {
				c.lines = append(c.lines[:i], c.lines[i+1:]...)
			}
			return
		}
	}
}

// SetQuantity overrides a line's quantity; zero or less removes the line.
func (c *Cart) SetQuantity(itemID uint, quantity int) {
	for i := range c.lines {
		if c.lines[i].Item.ID == itemID {
			if quantity <= 0 {
				c.lines = append(c.lines[:i], c.lines[i+1:]...)
			} else {
				c.lines[i].Quantity = quantity
			}
			return
		}
	}
}

func (c *Cart) Clear() {
	c.lines = nil
}

func (c *Cart) Lines() []Line {
	return c.lines
}

// TotalAmount sums price*quantity over the whole cart. Prices here are the
// catalog prices at selection time; the server re-prices from the live
// catalog when the order is placed.
func (c *Cart) TotalAmount() float64 {
	var total float64
	for _, l := range c.lines {
		total += l.Item.Price * float64(l.Quantity)
	}
	return total
}

// TotalItems counts units across all lines.
func (c *Cart) TotalItems() int {
	var n int
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

// ItemQuantity returns the quantity for one menu item, 0 if absent.
func (c *Cart) ItemQuantity(itemID uint) int {
	for _, l := range c.lines {
		if l.Item.ID == itemID {
			return l.Quantity
		}
	}
	return 0
}

// OrderDraft is the payload for one order submission.
type OrderDraft struct {
	RestaurantID uint
	Items        []OrderDraftItem
}

type OrderDraftItem struct {
	MenuItemID uint
	Quantity   int
}

// Split groups the cart into one draft per restaurant, in the order the
// restaurants first appeared in the cart.
func (c *Cart) Split() []OrderDraft {
	var drafts []OrderDraft
	index := make(map[uint]int)
	for _, l := range c.lines {
		i, ok := index[l.Restaurant.ID]
		if !ok {
			i = len(drafts)
			index[l.Restaurant.ID] = i
			drafts = append(drafts, OrderDraft{RestaurantID: l.Restaurant.ID})
		}
		drafts[i].Items = append(drafts[i].Items, OrderDraftItem{
			MenuItemID: l.Item.ID,
			Quantity:   l.Quantity,
		})
	}
	return drafts
}
