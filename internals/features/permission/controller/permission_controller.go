package controller

import (
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"absenku_backend/internals/configs"
	"absenku_backend/internals/features/permission/dto"
	"absenku_backend/internals/features/permission/model"
	tendikModel "absenku_backend/internals/features/tendik/model"
	helper "absenku_backend/internals/helpers"
)

var validate = validator.New()

// Jenis izin yang dikenal
var permissionTypes = []string{"Sakit", "Izin", "Dinas Luar"}

type PermissionController struct {
	DB *gorm.DB
}

func NewPermissionController(db *gorm.DB) *PermissionController {
	return &PermissionController{DB: db}
}

// =============================
// GET /api/a/permissions
// =============================
func (ctrl *PermissionController) GetAll(c *fiber.Ctx) error {
	tx := ctrl.DB.WithContext(c.Context()).Model(&model.StaffPermissionModel{})
	if raw := c.Query("tendik_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "tendik_id tidak valid")
		}
		tx = tx.Where("permission_tendik_id = ?", id)
	}
	if raw := c.Query("date"); raw != "" {
		date, err := time.ParseInLocation("2006-01-02", raw, configs.AppLocation)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "date harus berformat YYYY-MM-DD")
		}
		tx = tx.Where("permission_date = ?", datatypes.Date(date))
	}

	var permissions []model.StaffPermissionModel
	if err := tx.Order("permission_date DESC").Find(&permissions).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar izin")
	}
	return helper.JsonOK(c, "Daftar izin tendik", permissions)
}

// =============================
// GET /api/a/permissions/:id
// =============================
func (ctrl *PermissionController) GetByID(c *fiber.Ctx) error {
	var permission model.StaffPermissionModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&permission, "permission_id = ?", c.Params("id")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Izin tidak ditemukan")
	}
	return helper.JsonOK(c, "Detail izin", permission)
}

// =============================
// POST /api/a/permissions
// =============================
func (ctrl *PermissionController) Create(c *fiber.Ctx) error {
	var req dto.CreatePermissionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Data izin tidak lengkap atau tidak valid")
	}
	if !validPermissionType(req.Type) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Jenis izin tidak dikenal")
	}

	tendikID, err := uuid.Parse(req.TendikID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "tendik_id tidak valid")
	}
	date, err := time.ParseInLocation("2006-01-02", req.Date, configs.AppLocation)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "date harus berformat YYYY-MM-DD")
	}

	var count int64
	if err := ctrl.DB.WithContext(c.Context()).
		Model(&tendikModel.TendikModel{}).
		Where("tendik_id = ?", tendikID).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa tendik")
	}
	if count == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Tendik tidak ditemukan")
	}

	approverRaw, _ := c.Locals("user_id").(string)
	approvedBy, err := uuid.Parse(approverRaw)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Token tidak valid")
	}

	permission := model.StaffPermissionModel{
		PermissionTendikID:    tendikID,
		PermissionDate:        datatypes.Date(date),
		PermissionType:        req.Type,
		PermissionDescription: req.Description,
		PermissionApprovedBy:  approvedBy,
	}
	if err := ctrl.DB.WithContext(c.Context()).Create(&permission).Error; err != nil {
		log.Println("[ERROR] create permission:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan izin")
	}
	return helper.JsonCreated(c, "Izin berhasil dicatat", permission)
}

// =============================
// DELETE /api/a/permissions/:id
// =============================
func (ctrl *PermissionController) Delete(c *fiber.Ctx) error {
	res := ctrl.DB.WithContext(c.Context()).
		Delete(&model.StaffPermissionModel{}, "permission_id = ?", c.Params("id"))
	if res.Error != nil {
		log.Println("[ERROR] delete permission:", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus izin")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Izin tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Izin dihapus", nil)
}

func validPermissionType(t string) bool {
	for _, p := range permissionTypes {
		if p == t {
			return true
		}
	}
	return false
}
