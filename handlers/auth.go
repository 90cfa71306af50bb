package handlers

import (
	"net/http"

	"food-ordering-api/config"
	"food-ordering-api/middleware"
	"food-ordering-api/services"

	"github.com/gin-gonic/gin"
)

// authPayload is the {access_token, user} shape both auth endpoints return.
type authPayload struct {
	AccessToken string      `json:"access_token"`
	User        interface{} `json:"user"`
}

// Signup registers a new account and returns a token for it
func Signup(c *gin.Context) {
	var in services.SignupInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	user, err := services.Signup(config.DB, in)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := middleware.GenerateToken(user)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusCreated, "User registered successfully", authPayload{
		AccessToken: token,
		User:        user,
	})
}

// Login authenticates a user and returns a token
func Login(c *gin.Context) {
	var in services.LoginInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	user, err := services.Login(config.DB, in)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := middleware.GenerateToken(user)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "Login successful", authPayload{
		AccessToken: token,
		User:        user,
	})
}

// VerifyToken echoes the decoded claims for a valid bearer token
func VerifyToken(c *gin.Context) {
	claims := middleware.GetClaims(c)
	respond(c, http.StatusOK, "Token is valid", gin.H{
		"userId":  middleware.GetUserID(c),
		"email":   claims.Email,
		"role":    claims.Role,
		"country": claims.Country,
	})
}
