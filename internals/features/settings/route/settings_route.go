package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	settingsController "absenku_backend/internals/features/settings/controller"
)

// SettingsAdminRoutes: pengaturan geotag/sistem + kalender libur (khusus admin).
func SettingsAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := settingsController.NewSettingsController(db)

	settings := api.Group("/settings")
	settings.Get("/geotag", ctrl.GetGeotag)
	settings.Put("/geotag", ctrl.UpdateGeotag)
	settings.Get("/system", ctrl.GetSystem)
	settings.Put("/system", ctrl.UpdateSystem)

	holidays := api.Group("/holidays")
	holidays.Get("/", ctrl.GetHolidays)
	holidays.Post("/", ctrl.CreateHoliday)
	holidays.Put("/:id", ctrl.UpdateHoliday)
	holidays.Delete("/:id", ctrl.DeleteHoliday)
}
