package routes

import (
	"github.com/gofiber/fiber/v2"

	"civic-reports/internal/controllers"
)

func SetupSessions(app *fiber.App, d Deps) {
	app.Post("/sessions", controllers.CreateSessionHandler(d.Store, d.Secret, d.TokenTTL))
	// curl -X POST http://127.0.0.1:8000/sessions
}

func SetupSessionToken(app *fiber.App, d Deps) {
	app.Post("/sessions/token", controllers.RefreshTokenHandler(d.Secret, d.TokenTTL))
	app.Delete("/sessions", controllers.DeleteSessionHandler(d.Store))
}
