package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"absenku_backend/internals/constants"
	"absenku_backend/internals/features/tendik/dto"
	"absenku_backend/internals/features/tendik/model"
	helper "absenku_backend/internals/helpers"
)

var validate = validator.New()

type TendikController struct {
	DB *gorm.DB
}

func NewTendikController(db *gorm.DB) *TendikController {
	return &TendikController{DB: db}
}

// =============================
// GET /api/a/tendiks
// =============================
func (ctrl *TendikController) GetAll(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	tx := ctrl.DB.WithContext(c.Context()).Model(&model.TendikModel{})
	if q := c.Query("search"); q != "" {
		like := "%" + q + "%"
		tx = tx.Where("tendik_name ILIKE ? OR tendik_username ILIKE ?", like, like)
	}
	if pos := c.Query("position"); pos != "" {
		tx = tx.Where("tendik_position = ?", pos)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data tendik")
	}

	var tendiks []model.TendikModel
	if err := tx.Order("tendik_name ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&tendiks).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data tendik")
	}

	return helper.JsonList(c, "Daftar tendik", tendiks, helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// =============================
// GET /api/a/tendiks/:id
// =============================
func (ctrl *TendikController) GetByID(c *fiber.Ctx) error {
	var tendik model.TendikModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&tendik, "tendik_id = ?", c.Params("id")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Tendik tidak ditemukan")
	}
	return helper.JsonOK(c, "Detail tendik", tendik)
}

// =============================
// POST /api/a/tendiks
// =============================
func (ctrl *TendikController) Create(c *fiber.Ctx) error {
	var req dto.CreateTendikRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Data tendik tidak lengkap atau tidak valid")
	}
	if !validPosition(req.TendikPosition) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Jabatan tendik tidak dikenal")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.TendikPassword), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses password")
	}

	tendik := model.TendikModel{
		TendikName:     req.TendikName,
		TendikUsername: req.TendikUsername,
		TendikPassword: string(hashed),
		TendikPosition: req.TendikPosition,
	}
	if req.ProfilePhoto != nil && *req.ProfilePhoto != "" {
		path, err := helper.SaveBase64Image("profiles", *req.ProfilePhoto)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Foto profil tidak valid: "+err.Error())
		}
		tendik.TendikProfilePhoto = &path
	}

	if err := ctrl.DB.WithContext(c.Context()).Create(&tendik).Error; err != nil {
		if isUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Username sudah dipakai")
		}
		log.Println("[ERROR] create tendik:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat tendik")
	}
	return helper.JsonCreated(c, "Tendik berhasil dibuat", tendik)
}

// =============================
// PUT /api/a/tendiks/:id
// =============================
func (ctrl *TendikController) Update(c *fiber.Ctx) error {
	var req dto.UpdateTendikRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Data tendik tidak valid")
	}
	if req.TendikPosition != nil && !validPosition(*req.TendikPosition) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Jabatan tendik tidak dikenal")
	}

	var tendik model.TendikModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&tendik, "tendik_id = ?", c.Params("id")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Tendik tidak ditemukan")
	}

	if req.TendikName != nil {
		tendik.TendikName = *req.TendikName
	}
	if req.TendikUsername != nil {
		tendik.TendikUsername = *req.TendikUsername
	}
	if req.TendikPassword != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.TendikPassword), bcrypt.DefaultCost)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses password")
		}
		tendik.TendikPassword = string(hashed)
	}
	if req.TendikPosition != nil {
		tendik.TendikPosition = *req.TendikPosition
	}
	if req.ProfilePhoto != nil && *req.ProfilePhoto != "" {
		path, err := helper.SaveBase64Image("profiles", *req.ProfilePhoto)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Foto profil tidak valid: "+err.Error())
		}
		tendik.TendikProfilePhoto = &path
	}

	if err := ctrl.DB.WithContext(c.Context()).Save(&tendik).Error; err != nil {
		if isUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Username sudah dipakai")
		}
		log.Println("[ERROR] update tendik:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui tendik")
	}
	return helper.JsonUpdated(c, "Tendik berhasil diperbarui", tendik)
}

// =============================
// DELETE /api/a/tendiks/:id
// =============================
func (ctrl *TendikController) Delete(c *fiber.Ctx) error {
	res := ctrl.DB.WithContext(c.Context()).
		Delete(&model.TendikModel{}, "tendik_id = ?", c.Params("id"))
	if res.Error != nil {
		log.Println("[ERROR] delete tendik:", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus tendik")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Tendik tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Tendik berhasil dihapus", nil)
}

func validPosition(pos string) bool {
	for _, p := range constants.TendikPositions {
		if p == pos {
			return true
		}
	}
	return false
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
