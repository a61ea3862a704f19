package controller

import (
	"errors"
	"log"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"absenku_backend/internals/configs"
	"absenku_backend/internals/constants"
	"absenku_backend/internals/features/attendance/dto"
	"absenku_backend/internals/features/attendance/repository"
	"absenku_backend/internals/features/attendance/service"
	helper "absenku_backend/internals/helpers"
)

var validate = validator.New()

type AttendanceController struct {
	DB      *gorm.DB
	Service *service.AttendanceService
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	clock := service.NewClock(configs.AppLocation)
	return &AttendanceController{
		DB: db,
		Service: service.NewAttendanceService(
			repository.NewTendikDirectory(db),
			repository.NewGeofenceSource(db),
			repository.NewHolidayCalendar(db),
			repository.NewAttendanceRepository(db),
			service.NewTimePolicy(clock, nil),
			clock,
		),
	}
}

// =============================
// POST /api/u/attendance/checkin
// =============================
func (ctrl *AttendanceController) CheckIn(c *fiber.Ctx) error {
	var req dto.CheckinRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Latitude, longitude, dan selfie wajib diisi")
	}

	tendikID, err := resolveTendikID(c, req.TendikID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	selfiePath, err := helper.SaveBase64Image("selfies", req.SelfiePhoto)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Selfie tidak valid: "+err.Error())
	}

	rec, err := ctrl.Service.CheckIn(c.Context(), tendikID, *req.Latitude, *req.Longitude, &selfiePath)
	if err != nil {
		return attendanceError(c, err)
	}

	log.Printf("[INFO] check-in tendik=%s status=%s", tendikID, rec.AttendanceStatus)
	return helper.JsonCreated(c, "Check-in berhasil", dto.ToAttendanceDTO(*rec))
}

// =============================
// POST /api/u/attendance/checkout
// =============================
func (ctrl *AttendanceController) CheckOut(c *fiber.Ctx) error {
	var req dto.CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Latitude, longitude, dan selfie wajib diisi")
	}

	tendikID, err := resolveTendikID(c, req.TendikID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	rec, err := ctrl.Service.CheckOut(c.Context(), tendikID, *req.Latitude, *req.Longitude)
	if err != nil {
		return attendanceError(c, err)
	}

	log.Printf("[INFO] check-out tendik=%s", tendikID)
	return helper.JsonUpdated(c, "Check-out berhasil", dto.ToAttendanceDTO(*rec))
}

// =============================
// GET /api/u/attendance/history
// =============================
func (ctrl *AttendanceController) History(c *fiber.Ctx) error {
	tendikID, err := resolveTendikID(c, c.Query("tendik_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	recs, err := ctrl.Service.History(c.Context(), tendikID)
	if err != nil {
		return attendanceError(c, err)
	}
	return helper.JsonOK(c, "Riwayat absensi", dto.ToAttendanceDTOs(recs))
}

// =============================
// GET /api/u/attendance/history/:tendikId
// =============================
// Tendik non-admin tetap jatuh ke ID dari tokennya sendiri.
func (ctrl *AttendanceController) HistoryByTendik(c *fiber.Ctx) error {
	tendikID, err := resolveTendikID(c, c.Params("tendikId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	recs, err := ctrl.Service.History(c.Context(), tendikID)
	if err != nil {
		return attendanceError(c, err)
	}
	return helper.JsonOK(c, "Riwayat absensi", dto.ToAttendanceDTOs(recs))
}

// =============================
// GET /api/a/attendance/recapitulation
// =============================
func (ctrl *AttendanceController) Recapitulation(c *fiber.Ctx) error {
	filter, err := parseRecapFilter(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	recs, err := ctrl.Service.Recapitulation(c.Context(), filter)
	if err != nil {
		return attendanceError(c, err)
	}
	return helper.JsonOK(c, "Rekapitulasi absensi", dto.ToAttendanceDTOs(recs))
}

// =============================
// GET /api/a/attendance/today
// =============================
func (ctrl *AttendanceController) Today(c *fiber.Ctx) error {
	recs, err := ctrl.Service.Today(c.Context())
	if err != nil {
		return attendanceError(c, err)
	}
	return helper.JsonOK(c, "Absensi hari ini", dto.ToAttendanceDTOs(recs))
}

// =============================
// GET /api/a/attendance/live
// =============================
func (ctrl *AttendanceController) Live(c *fiber.Ctx) error {
	var window time.Duration
	if raw := c.Query("window_minutes"); raw != "" {
		minutes, err := strconv.Atoi(raw)
		if err != nil || minutes <= 0 {
			return helper.JsonError(c, fiber.StatusBadRequest, "window_minutes tidak valid")
		}
		window = time.Duration(minutes) * time.Minute
	}

	entries, err := ctrl.Service.Live(c.Context(), window)
	if err != nil {
		return attendanceError(c, err)
	}
	return helper.JsonOK(c, "Aktivitas absensi terakhir", entries)
}

/* =========================================
   Helpers
========================================= */

// resolveTendikID: tendik selalu memakai ID dari token sendiri, admin
// boleh menunjuk tendik lain lewat body/query.
func resolveTendikID(c *fiber.Ctx, requested string) (uuid.UUID, error) {
	role, _ := c.Locals("role").(string)
	if role != constants.RoleAdmin || requested == "" {
		raw, _ := c.Locals("user_id").(string)
		id, err := uuid.Parse(raw)
		if err != nil {
			return uuid.Nil, errors.New("user_id pada token tidak valid")
		}
		return id, nil
	}
	id, err := uuid.Parse(requested)
	if err != nil {
		return uuid.Nil, errors.New("tendik_id tidak valid")
	}
	return id, nil
}

func parseRecapFilter(c *fiber.Ctx) (service.RecapFilter, error) {
	var f service.RecapFilter

	if raw := c.Query("start_date"); raw != "" {
		t, err := time.ParseInLocation("2006-01-02", raw, configs.AppLocation)
		if err != nil {
			return f, errors.New("start_date harus berformat YYYY-MM-DD")
		}
		f.StartDate = &t
	}
	if raw := c.Query("end_date"); raw != "" {
		t, err := time.ParseInLocation("2006-01-02", raw, configs.AppLocation)
		if err != nil {
			return f, errors.New("end_date harus berformat YYYY-MM-DD")
		}
		f.EndDate = &t
	}
	if raw := c.Query("tendik_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return f, errors.New("tendik_id tidak valid")
		}
		f.TendikID = &id
	}
	if raw := c.Query("status"); raw != "" {
		f.Status = &raw
	}
	return f, nil
}

func attendanceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrTendikNotFound),
		errors.Is(err, service.ErrNoCheckinToday):
		return helper.JsonError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrGeofenceNotConfigured):
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, service.ErrOutOfRange),
		errors.Is(err, service.ErrHolidayToday):
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrAlreadyCheckedIn),
		errors.Is(err, service.ErrAlreadyCheckedOut):
		return helper.JsonError(c, fiber.StatusConflict, err.Error())
	default:
		log.Println("[ERROR] attendance:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Terjadi kesalahan pada server")
	}
}
