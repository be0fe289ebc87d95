package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/nadeemahmad9/real-estate/handlers"
	"github.com/nadeemahmad9/real-estate/middleware"
)

// RegisterRoutes wires the route table. Reads are public; property
// mutations sit behind the admin gate.
func RegisterRoutes(e *echo.Echo, auth *handlers.AuthController, properties *handlers.PropertyController) {
	api := e.Group("/api")

	api.GET("/health", handlers.HealthCheck)

	authGroup := api.Group("/auth")
	authGroup.POST("/register", auth.Register)
	authGroup.POST("/login", auth.Login)

	props := api.Group("/properties")
	props.GET("", properties.ListProperties)
	props.GET("/:id", properties.GetProperty)

	props.POST("", properties.CreateProperty, middleware.AdminOnly())
	props.PUT("/:id", properties.UpdateProperty, middleware.AdminOnly())
	props.DELETE("/:id", properties.DeleteProperty, middleware.AdminOnly())
}
