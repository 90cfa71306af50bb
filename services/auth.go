package services

import (
	"errors"
	"regexp"
	"strings"

	"food-ordering-api/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const bcryptCost = 12

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type SignupInput struct {
	Email         string          `json:"email"`
	Password      string          `json:"password"`
	Name          string          `json:"name"`
	Role          models.UserRole `json:"role"`
	Country       models.Country  `json:"country"`
	PaymentMethod string          `json:"paymentMethod"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signup validates the registration, hashes the password, and persists the
// user. Emails are stored lowercase so duplicate detection is
// case-insensitive.
func Signup(db *gorm.DB, in SignupInput) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	if !emailPattern.MatchString(email) {
		return nil, models.InvalidInput("Invalid email format")
	}
	if len(in.Password) < 6 {
		return nil, models.InvalidInput("Password must be at least 6 characters long")
	}
	if strings.TrimSpace(in.Name) == "" {
		return nil, models.InvalidInput("Name is required")
	}
	if !models.ValidCountry(in.Country) {
		return nil, models.InvalidInput("Invalid country specified")
	}
	role := in.Role
	if role == "" {
		role = models.RoleMember
	}
	if !models.ValidRole(role) {
		return nil, models.InvalidInput("Invalid role specified")
	}

	var existing models.User
	if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
		return nil, models.Conflict("User with this email already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Email:         email,
		PasswordHash:  string(hash),
		Name:          strings.TrimSpace(in.Name),
		Role:          role,
		Country:       in.Country,
		PaymentMethod: strings.TrimSpace(in.PaymentMethod),
	}
	if err := db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Login verifies credentials. Unknown email and wrong password return the
// same generic message to avoid user enumeration.
func Login(db *gorm.DB, in LoginInput) (*models.User, error) {
	if in.Email == "" || in.Password == "" {
		return nil, models.InvalidInput("Email and password are required")
	}

	var user models.User
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.Unauthorized("Invalid email or password")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, models.Unauthorized("Invalid email or password")
	}
	return &user, nil
}
