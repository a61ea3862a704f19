package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceController "absenku_backend/internals/features/attendance/controller"
)

// AttendanceAdminRoutes: monitoring & rekap untuk admin.
func AttendanceAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := attendanceController.NewAttendanceController(db)

	attendance := api.Group("/attendance")
	attendance.Get("/recapitulation", ctrl.Recapitulation)
	attendance.Get("/recapitulation/export/pdf", ctrl.ExportRecapPDF)
	attendance.Get("/recapitulation/export/excel", ctrl.ExportRecapExcel)
	attendance.Get("/today", ctrl.Today)
	attendance.Get("/live", ctrl.Live)
}
