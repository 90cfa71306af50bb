package models

import (
	"time"
)

// UserRole defines allowed roles in the system
type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleManager UserRole = "manager"
	RoleMember  UserRole = "member"
)

// ValidRole reports whether the value is one of the known roles.
func ValidRole(r UserRole) bool {
	switch r {
	case RoleAdmin, RoleManager, RoleMember:
		return true
	}
	return false
}

// Country is the tenancy boundary: every user and restaurant belongs to
// exactly one country, and non-admin access never crosses it.
type Country string

const (
	CountryIndia   Country = "india"
	CountryAmerica Country = "america"
)

// ValidCountry reports whether the value is one of the known countries.
func ValidCountry(c Country) bool {
	switch c {
	case CountryIndia, CountryAmerica:
		return true
	}
	return false
}

type User struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Name          string    `json:"name" gorm:"not null"`
	Email         string    `json:"email" gorm:"uniqueIndex;not null"` // stored lowercase
	PasswordHash  string    `json:"-" gorm:"not null"`
	Role          UserRole  `json:"role" gorm:"not null;default:'member'"`
	Country       Country   `json:"country" gorm:"not null"`
	PaymentMethod string    `json:"paymentMethod,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
