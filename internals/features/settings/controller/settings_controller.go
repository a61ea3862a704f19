package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"absenku_backend/internals/configs"
	"absenku_backend/internals/features/settings/dto"
	"absenku_backend/internals/features/settings/model"
	helper "absenku_backend/internals/helpers"
)

var validate = validator.New()

type SettingsController struct {
	DB *gorm.DB
}

func NewSettingsController(db *gorm.DB) *SettingsController {
	return &SettingsController{DB: db}
}

/* =========================================
   Geotag (baris tunggal, upsert)
========================================= */

// =============================
// GET /api/a/settings/geotag
// =============================
func (ctrl *SettingsController) GetGeotag(c *fiber.Ctx) error {
	var setting model.GeotagSettingModel
	err := ctrl.DB.WithContext(c.Context()).First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Geotag belum dikonfigurasi")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pengaturan geotag")
	}
	return helper.JsonOK(c, "Pengaturan geotag", setting)
}

// =============================
// PUT /api/a/settings/geotag
// =============================
func (ctrl *SettingsController) UpdateGeotag(c *fiber.Ctx) error {
	var req dto.UpdateGeotagRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Koordinat atau radius tidak valid")
	}

	var setting model.GeotagSettingModel
	err := ctrl.DB.WithContext(c.Context()).First(&setting).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pengaturan geotag")
	}

	setting.SchoolLatitude = *req.SchoolLatitude
	setting.SchoolLongitude = *req.SchoolLongitude
	setting.ToleranceRadius = *req.ToleranceRadius

	if err := ctrl.DB.WithContext(c.Context()).Save(&setting).Error; err != nil {
		log.Println("[ERROR] simpan geotag:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan pengaturan geotag")
	}
	return helper.JsonUpdated(c, "Pengaturan geotag disimpan", setting)
}

/* =========================================
   System setting (baris tunggal, upsert)
========================================= */

// =============================
// GET /api/a/settings/system
// =============================
func (ctrl *SettingsController) GetSystem(c *fiber.Ctx) error {
	var setting model.SystemSettingModel
	err := ctrl.DB.WithContext(c.Context()).First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Pengaturan sistem belum dibuat")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pengaturan sistem")
	}
	return helper.JsonOK(c, "Pengaturan sistem", setting)
}

// =============================
// PUT /api/a/settings/system
// =============================
func (ctrl *SettingsController) UpdateSystem(c *fiber.Ctx) error {
	var req dto.UpdateSystemSettingRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tahun ajaran wajib diisi")
	}

	var setting model.SystemSettingModel
	err := ctrl.DB.WithContext(c.Context()).First(&setting).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pengaturan sistem")
	}

	setting.AcademicYear = req.AcademicYear
	if req.SchoolLogo != nil && *req.SchoolLogo != "" {
		path, err := helper.SaveBase64Image("logos", *req.SchoolLogo)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Logo tidak valid: "+err.Error())
		}
		setting.SchoolLogo = &path
	}

	if err := ctrl.DB.WithContext(c.Context()).Save(&setting).Error; err != nil {
		log.Println("[ERROR] simpan pengaturan sistem:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan pengaturan sistem")
	}
	return helper.JsonUpdated(c, "Pengaturan sistem disimpan", setting)
}

/* =========================================
   Holiday (CRUD)
========================================= */

// =============================
// GET /api/a/holidays
// =============================
func (ctrl *SettingsController) GetHolidays(c *fiber.Ctx) error {
	tx := ctrl.DB.WithContext(c.Context()).Model(&model.HolidayModel{})
	if raw := c.Query("year"); raw != "" {
		tx = tx.Where("EXTRACT(YEAR FROM holiday_date) = ?", raw)
	}

	var holidays []model.HolidayModel
	if err := tx.Order("holiday_date ASC").Find(&holidays).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar hari libur")
	}
	return helper.JsonOK(c, "Daftar hari libur", holidays)
}

// =============================
// POST /api/a/holidays
// =============================
func (ctrl *SettingsController) CreateHoliday(c *fiber.Ctx) error {
	var req dto.CreateHolidayRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tanggal dan keterangan libur wajib diisi")
	}

	date, err := time.ParseInLocation("2006-01-02", req.HolidayDate, configs.AppLocation)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "holiday_date harus berformat YYYY-MM-DD")
	}

	holiday := model.HolidayModel{
		HolidayDate:        datatypes.Date(date),
		HolidayDescription: req.HolidayDescription,
	}
	if err := ctrl.DB.WithContext(c.Context()).Create(&holiday).Error; err != nil {
		log.Println("[ERROR] create holiday:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menambah hari libur")
	}
	return helper.JsonCreated(c, "Hari libur ditambahkan", holiday)
}

// =============================
// PUT /api/a/holidays/:id
// =============================
func (ctrl *SettingsController) UpdateHoliday(c *fiber.Ctx) error {
	var req dto.UpdateHolidayRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	var holiday model.HolidayModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&holiday, "holiday_id = ?", c.Params("id")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Hari libur tidak ditemukan")
	}

	if req.HolidayDate != nil {
		date, err := time.ParseInLocation("2006-01-02", *req.HolidayDate, configs.AppLocation)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "holiday_date harus berformat YYYY-MM-DD")
		}
		holiday.HolidayDate = datatypes.Date(date)
	}
	if req.HolidayDescription != nil {
		holiday.HolidayDescription = *req.HolidayDescription
	}

	if err := ctrl.DB.WithContext(c.Context()).Save(&holiday).Error; err != nil {
		log.Println("[ERROR] update holiday:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui hari libur")
	}
	return helper.JsonUpdated(c, "Hari libur diperbarui", holiday)
}

// =============================
// DELETE /api/a/holidays/:id
// =============================
func (ctrl *SettingsController) DeleteHoliday(c *fiber.Ctx) error {
	res := ctrl.DB.WithContext(c.Context()).
		Delete(&model.HolidayModel{}, "holiday_id = ?", c.Params("id"))
	if res.Error != nil {
		log.Println("[ERROR] delete holiday:", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus hari libur")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Hari libur tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Hari libur dihapus", nil)
}
