package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	tendikController "absenku_backend/internals/features/tendik/controller"
)

// TendikAdminRoutes: CRUD data tendik (grup /api/a, khusus admin).
func TendikAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := tendikController.NewTendikController(db)

	tendiks := api.Group("/tendiks")
	tendiks.Get("/", ctrl.GetAll)
	tendiks.Get("/:id", ctrl.GetByID)
	tendiks.Post("/", ctrl.Create)
	tendiks.Put("/:id", ctrl.Update)
	tendiks.Delete("/:id", ctrl.Delete)
}
