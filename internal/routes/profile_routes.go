package routes

import (
	"github.com/gofiber/fiber/v2"

	"civic-reports/internal/controllers"
)

func SetupProfile(app *fiber.App) {
	app.Get("/profile", controllers.ProfileHandler())
	app.Get("/dashboard", controllers.DashboardHandler())
}
