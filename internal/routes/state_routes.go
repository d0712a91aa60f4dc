package routes

import (
	"github.com/gofiber/fiber/v2"

	"civic-reports/internal/controllers"
)

func SetupState(app *fiber.App) {
	app.Get("/state", controllers.GetStateHandler())
	app.Post("/navigate", controllers.NavigateHandler())

	app.Get("/i18n", controllers.GetI18nHandler())
	app.Get("/i18n/:key", controllers.TranslateHandler())
	app.Put("/locale", controllers.SetLocaleHandler())
}
