package routes

import (
	"food-ordering-api/handlers"
	"food-ordering-api/middleware"
	"food-ordering-api/models"
	"food-ordering-api/policy"

	"github.com/gin-gonic/gin"
)

var (
	anyRole = policy.Requirement{
		AllowedRoles: []models.UserRole{models.RoleAdmin, models.RoleManager, models.RoleMember},
	}
	anyRoleCountryScoped = policy.Requirement{
		AllowedRoles:  []models.UserRole{models.RoleAdmin, models.RoleManager, models.RoleMember},
		CountryScoped: true,
	}
	managerAndUp = policy.Requirement{
		AllowedRoles: []models.UserRole{models.RoleAdmin, models.RoleManager},
	}
	adminOnly = policy.Requirement{
		AllowedRoles: []models.UserRole{models.RoleAdmin},
	}
)

func SetupRoutes(r *gin.Engine) {
	// ── Public ─────────────────────────────────────────────────────
	r.POST("/auth/signup", handlers.Signup)
	r.POST("/auth/login", handlers.Login)
	r.GET("/state-machine", handlers.GetStateMachineInfo)

	// ── Authenticated ──────────────────────────────────────────────
	auth := r.Group("/")
	auth.Use(middleware.AuthRequired())
	{
		auth.POST("/auth/verify-token", handlers.VerifyToken)

		// Catalog: country filter param is policy-checked at the boundary
		auth.GET("/restaurants", middleware.Authorize(anyRoleCountryScoped), handlers.ListRestaurants)
		auth.GET("/restaurants/:id/menu", middleware.Authorize(anyRole), handlers.GetMenu)

		// Orders
		auth.POST("/orders", middleware.Authorize(anyRole), handlers.CreateOrder)
		auth.GET("/orders", middleware.Authorize(anyRoleCountryScoped), handlers.ListOrders)
		auth.POST("/orders/:id/checkout", middleware.Authorize(managerAndUp), handlers.CheckoutOrder)
		auth.DELETE("/orders/:id", middleware.Authorize(managerAndUp), handlers.CancelOrder)

		// Payments
		auth.PUT("/payments/paymentMethod", middleware.Authorize(adminOnly), handlers.UpdatePaymentMethod)

		// Users
		auth.GET("/users/profile", handlers.GetProfile)
		auth.PATCH("/users/profile", handlers.UpdateProfile)
		auth.PATCH("/users/change-password", handlers.ChangePassword)
		auth.GET("/users", middleware.Authorize(managerAndUp), handlers.ListUsers)
		auth.PATCH("/users/:id/role", middleware.Authorize(adminOnly), handlers.UpdateUserRole)
		auth.DELETE("/users/:id", middleware.Authorize(adminOnly), handlers.RemoveUser)
	}
}
