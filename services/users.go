package services

import (
	"errors"
	"strings"

	"food-ordering-api/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserPage struct {
	Users []models.User `json:"users"`
	Total int64         `json:"total"`
	Page  int           `json:"page"`
	Limit int           `json:"limit"`
}

// ListUsers returns a page of users, optionally filtered by role and
// country.
func ListUsers(db *gorm.DB, page, limit int, role, country string) (*UserPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	query := db.Model(&models.User{})
	if role != "" {
		if !models.ValidRole(models.UserRole(role)) {
			return nil, models.InvalidInput("Invalid role specified")
		}
		query = query.Where("role = ?", role)
	}
	if country != "" {
		if !models.ValidCountry(models.Country(country)) {
			return nil, models.InvalidInput("Invalid country specified")
		}
		query = query.Where("country = ?", country)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	var users []models.User
	if err := query.Offset((page - 1) * limit).Limit(limit).Find(&users).Error; err != nil {
		return nil, err
	}

	return &UserPage{Users: users, Total: total, Page: page, Limit: limit}, nil
}

// GetUser loads one user by id.
func GetUser(db *gorm.DB, id uint) (*models.User, error) {
	var user models.User
	if err := db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NotFound("User not found")
		}
		return nil, err
	}
	return &user, nil
}

type UpdateProfileInput struct {
	Name          string `json:"name"`
	PaymentMethod string `json:"paymentMethod"`
}

// UpdateProfile lets a user change their own mutable fields. Role and
// country only change through the explicit admin paths.
func UpdateProfile(db *gorm.DB, caller Caller, in UpdateProfileInput) (*models.User, error) {
	user, err := GetUser(db, caller.ID)
	if err != nil {
		return nil, err
	}

	if name := strings.TrimSpace(in.Name); name != "" {
		user.Name = name
	}
	if pm := strings.TrimSpace(in.PaymentMethod); pm != "" {
		user.PaymentMethod = pm
	}

	if err := db.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateRole changes a user's role. Admin-only at the route boundary.
func UpdateRole(db *gorm.DB, id uint, role models.UserRole) (*models.User, error) {
	if !models.ValidRole(role) {
		return nil, models.InvalidInput("Invalid role specified")
	}

	user, err := GetUser(db, id)
	if err != nil {
		return nil, err
	}

	user.Role = role
	if err := db.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// ChangePassword verifies the current password before replacing it.
func ChangePassword(db *gorm.DB, caller Caller, in ChangePasswordInput) error {
	if len(in.NewPassword) < 6 {
		return models.InvalidInput("Password must be at least 6 characters long")
	}

	user, err := GetUser(db, caller.ID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.CurrentPassword)); err != nil {
		return models.Unauthorized("Current password is incorrect")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcryptCost)
	if err != nil {
		return err
	}

	user.PasswordHash = string(hash)
	return db.Save(user).Error
}

// RemoveUser deletes a user account. Admin-only at the route boundary.
func RemoveUser(db *gorm.DB, id uint) error {
	user, err := GetUser(db, id)
	if err != nil {
		return err
	}
	return db.Delete(user).Error
}
