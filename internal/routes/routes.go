package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"civic-reports/internal/middleware"
	"civic-reports/internal/services"
)

type Deps struct {
	Store    *services.SessionStore
	Secret   string
	TokenTTL time.Duration
}

// Register mounts every route. Session creation is public; everything
// registered after the JWT middleware needs a live session.
func Register(app *fiber.App, d Deps) {
	SetupSessions(app, d)

	app.Use(middleware.JWTSession(d.Secret))
	app.Use(middleware.InjectState(d.Store))

	SetupSessionToken(app, d)
	SetupState(app)
	SetupLogin(app)
	SetupMunicipalities(app, d.Store.Backend())
	SetupPosts(app)
	SetupProfile(app)
}
