package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"absenku_backend/internals/route/details"
)

// SetupRoutes menyusun tiga lapis route:
//   - /api       : publik (login)
//   - /api/u     : butuh token (tendik & admin)
//   - /api/a     : butuh token + role admin
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	details.PublicRoutes(api, db)
	details.UserRoutes(api, db)
	details.AdminRoutes(api, db)
}
