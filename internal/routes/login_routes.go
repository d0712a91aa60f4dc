package routes

import (
	"github.com/gofiber/fiber/v2"

	"civic-reports/internal/controllers"
)

func SetupLogin(app *fiber.App) {
	login := app.Group("/login")

	login.Get("/", controllers.GetLoginHandler())
	login.Post("/role", controllers.SelectRoleHandler())
	login.Post("/name", controllers.SetNameHandler())
	login.Post("/credential", controllers.SubmitCredentialHandler())
	// curl -X POST "http://127.0.0.1:8000/login/credential?wait=true" \
	// -H "Authorization: Bearer $TOKEN" -H "Content-Type: application/json" \
	// -d '{"credential": "1234 5678 9012"}'
	login.Post("/code", controllers.SubmitCodeHandler())
	login.Post("/back", controllers.LoginBackHandler())

	app.Post("/logout", controllers.LogoutHandler())
}
