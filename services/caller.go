package services

import "food-ordering-api/models"

// Caller identifies the authenticated user behind a service call. It is
// threaded explicitly through every operation; there is no ambient
// request-scoped user state.
type Caller struct {
	ID      uint
	Email   string
	Role    models.UserRole
	Country models.Country
}
