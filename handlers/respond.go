package handlers

import (
	"errors"
	"net/http"

	"food-ordering-api/middleware"
	"food-ordering-api/models"
	"food-ordering-api/services"

	"github.com/gin-gonic/gin"
)

// respond writes the uniform success envelope.
func respond(c *gin.Context, status int, message string, data interface{}) {
	body := gin.H{"success": true, "message": message}
	if data != nil {
		body["data"] = data
	}
	c.JSON(status, body)
}

// respondError classifies a service error and writes the failure
// envelope. Unclassified errors surface as a generic 500 so internals
// never leak to the client.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "Internal server error"

	switch {
	case errors.Is(err, models.ErrInvalidInput):
		status, message = http.StatusBadRequest, err.Error()
	case errors.Is(err, models.ErrUnauthorized):
		status, message = http.StatusUnauthorized, err.Error()
	case errors.Is(err, models.ErrForbidden):
		status, message = http.StatusForbidden, err.Error()
	case errors.Is(err, models.ErrNotFound):
		status, message = http.StatusNotFound, err.Error()
	case errors.Is(err, models.ErrConflict):
		status, message = http.StatusConflict, err.Error()
	}

	c.JSON(status, gin.H{"success": false, "message": message})
}

// currentCaller builds the explicit caller identity from verified claims.
func currentCaller(c *gin.Context) services.Caller {
	claims := middleware.GetClaims(c)
	if claims == nil {
		return services.Caller{}
	}
	return services.Caller{
		ID:      middleware.GetUserID(c),
		Email:   claims.Email,
		Role:    claims.Role,
		Country: claims.Country,
	}
}
