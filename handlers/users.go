package handlers

import (
	"net/http"
	"strconv"

	"food-ordering-api/config"
	"food-ordering-api/models"
	"food-ordering-api/services"

	"github.com/gin-gonic/gin"
)

// ListUsers returns a paginated user listing (admin/manager)
func ListUsers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	result, err := services.ListUsers(config.DB, page, limit, c.Query("role"), c.Query("country"))
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "Users retrieved successfully", result)
}

// GetProfile returns the caller's own account
func GetProfile(c *gin.Context) {
	user, err := services.GetUser(config.DB, currentCaller(c).ID)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "Profile retrieved successfully", user)
}

// UpdateProfile updates the caller's own mutable fields
func UpdateProfile(c *gin.Context) {
	var in services.UpdateProfileInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	user, err := services.UpdateProfile(config.DB, currentCaller(c), in)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "Profile updated successfully", user)
}

type updateRoleRequest struct {
	Role models.UserRole `json:"role"`
}

// UpdateUserRole changes another user's role (admin only)
func UpdateUserRole(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, models.InvalidInput("Invalid user ID"))
		return
	}

	var req updateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	user, err := services.UpdateRole(config.DB, uint(id), req.Role)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "User role updated successfully", user)
}

// ChangePassword replaces the caller's password after verifying the
// current one
func ChangePassword(c *gin.Context) {
	var in services.ChangePasswordInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	if err := services.ChangePassword(config.DB, currentCaller(c), in); err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "Password changed successfully", nil)
}

// RemoveUser deletes a user account (admin only)
func RemoveUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, models.InvalidInput("Invalid user ID"))
		return
	}

	if err := services.RemoveUser(config.DB, uint(id)); err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "User deleted successfully", nil)
}
