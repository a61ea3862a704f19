package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "absenku_backend/internals/features/auth/controller"
	"absenku_backend/internals/middlewares"
)

// AuthPublicRoutes: login (rate-limited ketat, tanpa token).
func AuthPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	auth := api.Group("/auth", middlewares.LoginRateLimiter())
	auth.Post("/login/admin", ctrl.LoginAdmin)
	auth.Post("/login/tendik", ctrl.LoginTendik)
}

// AuthProtectedRoutes: butuh token valid (dipasang di grup /api/u).
func AuthProtectedRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	auth := api.Group("/auth")
	auth.Post("/logout", ctrl.Logout)
	auth.Get("/me", ctrl.Me)
}
