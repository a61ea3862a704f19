package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authRoute "absenku_backend/internals/features/auth/route"
	authMiddleware "absenku_backend/internals/middlewares/auth"
)

// PublicRoutes: login tanpa token; logout & me di prefix yang sama
// tapi di belakang AuthMiddleware.
func PublicRoutes(api fiber.Router, db *gorm.DB) {
	authRoute.AuthPublicRoutes(api, db)

	secured := api.Group("/", authMiddleware.AuthMiddleware(db))
	authRoute.AuthProtectedRoutes(secured, db)
}
