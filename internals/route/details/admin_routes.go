package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	adminRoute "absenku_backend/internals/features/admin/route"
	attendanceRoute "absenku_backend/internals/features/attendance/route"
	permissionRoute "absenku_backend/internals/features/permission/route"
	settingsRoute "absenku_backend/internals/features/settings/route"
	tendikRoute "absenku_backend/internals/features/tendik/route"
	authMiddleware "absenku_backend/internals/middlewares/auth"
)

// AdminRoutes: grup /api/a, butuh token valid + role admin.
func AdminRoutes(api fiber.Router, db *gorm.DB) {
	admin := api.Group("/a",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyAdmin("manajemen absensi"),
	)

	adminRoute.AdminAdminRoutes(admin, db)
	tendikRoute.TendikAdminRoutes(admin, db)
	attendanceRoute.AttendanceAdminRoutes(admin, db)
	settingsRoute.SettingsAdminRoutes(admin, db)
	permissionRoute.PermissionAdminRoutes(admin, db)
}
