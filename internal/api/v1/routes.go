package v1

import (
	"github.com/gofiber/fiber/v2"

	"edunet-planner/internal/api/v1/handlers"
	"edunet-planner/internal/middleware"
)

func RegisterRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	// Auth
	api.Post("/login", handlers.Login)
	api.Post("/register", handlers.Register)

	// Task
	taskRoutes := api.Group("/tasks", middleware.UseToken)
	taskRoutes.Get("/", handlers.ListTasks)
	taskRoutes.Post("/", handlers.CreateTask)
	taskRoutes.Post("/complete", handlers.CompleteTask)
	taskRoutes.Post("/email", handlers.EmailTasks)
	taskRoutes.Delete("/:name", handlers.DeleteTask)

	// Dashboard
	api.Get("/dashboard", middleware.UseToken, handlers.GetDashboard)
}
