package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceRoute "absenku_backend/internals/features/attendance/route"
	authMiddleware "absenku_backend/internals/middlewares/auth"
)

// UserRoutes: grup /api/u untuk semua user ber-token (tendik maupun admin).
func UserRoutes(api fiber.Router, db *gorm.DB) {
	user := api.Group("/u", authMiddleware.AuthMiddleware(db))

	attendanceRoute.AttendanceUserRoutes(user, db)
}
