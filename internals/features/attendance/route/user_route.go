package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceController "absenku_backend/internals/features/attendance/controller"
)

// AttendanceUserRoutes: route absensi untuk tendik (sudah lewat AuthMiddleware).
func AttendanceUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := attendanceController.NewAttendanceController(db)

	attendance := api.Group("/attendance")
	attendance.Post("/checkin", ctrl.CheckIn)
	attendance.Post("/checkout", ctrl.CheckOut)
	attendance.Get("/history", ctrl.History)
	attendance.Get("/history/:tendikId", ctrl.HistoryByTendik)
}
