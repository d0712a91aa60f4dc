package routes

import (
	"github.com/gofiber/fiber/v2"

	"civic-reports/internal/controllers"
	"civic-reports/internal/services"
)

func SetupMunicipalities(app *fiber.App, b *services.Backend) {
	m := app.Group("/municipalities")

	m.Get("/", controllers.ListMunicipalitiesHandler(b.Municipalities))
	m.Post("/select", controllers.SelectMunicipalityHandler())
	m.Post("/confirm", controllers.ConfirmMunicipalityHandler())
	m.Post("/change", controllers.ChangeMunicipalityHandler())
	m.Get("/:id/info", controllers.MunicipalityInfoHandler())
}
