package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	permissionController "absenku_backend/internals/features/permission/controller"
)

// PermissionAdminRoutes: pencatatan izin tendik (khusus admin).
func PermissionAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := permissionController.NewPermissionController(db)

	permissions := api.Group("/permissions")
	permissions.Get("/", ctrl.GetAll)
	permissions.Get("/:id", ctrl.GetByID)
	permissions.Post("/", ctrl.Create)
	permissions.Delete("/:id", ctrl.Delete)
}
