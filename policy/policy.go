package policy

import (
	"food-ordering-api/models"
)

// Requirement declares what an operation demands from its caller: a set of
// admitted roles, and optionally that the caller's country must match the
// country of the resource being touched. Admins bypass country scoping.
type Requirement struct {
	AllowedRoles  []models.UserRole
	CountryScoped bool
}

// Check evaluates a Requirement against the caller. resourceCountry is the
// country of the resource under access; pass an empty value when the
// operation has no country-bound resource (nothing to scope against).
// Check is side-effect free and must run before any mutation.
func Check(req Requirement, role models.UserRole, userCountry, resourceCountry models.Country) error {
	allowed := false
	for _, r := range req.AllowedRoles {
		if r == role {
			allowed = true
			break
		}
	}
	if !allowed {
		return models.Forbidden("Insufficient permissions")
	}

	if req.CountryScoped && role != models.RoleAdmin {
		if resourceCountry != "" && resourceCountry != userCountry {
			return models.Forbidden("Access denied: country restriction")
		}
	}

	return nil
}
