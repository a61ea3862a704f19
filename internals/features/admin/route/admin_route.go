package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	adminController "absenku_backend/internals/features/admin/controller"
)

// AdminAdminRoutes: CRUD akun admin (grup /api/a, khusus admin).
func AdminAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := adminController.NewAdminController(db)

	admins := api.Group("/admins")
	admins.Get("/", ctrl.GetAll)
	admins.Get("/:id", ctrl.GetByID)
	admins.Post("/", ctrl.Create)
	admins.Put("/:id", ctrl.Update)
	admins.Delete("/:id", ctrl.Delete)
}
