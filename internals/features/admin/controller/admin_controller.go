package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"absenku_backend/internals/features/admin/dto"
	"absenku_backend/internals/features/admin/model"
	helper "absenku_backend/internals/helpers"
)

var validate = validator.New()

type AdminController struct {
	DB *gorm.DB
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{DB: db}
}

// =============================
// GET /api/a/admins
// =============================
func (ctrl *AdminController) GetAll(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	tx := ctrl.DB.WithContext(c.Context()).Model(&model.AdminModel{})
	if q := c.Query("search"); q != "" {
		like := "%" + q + "%"
		tx = tx.Where("admin_name ILIKE ? OR admin_username ILIKE ?", like, like)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data admin")
	}

	var admins []model.AdminModel
	if err := tx.Order("admin_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&admins).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data admin")
	}

	return helper.JsonList(c, "Daftar admin", admins, helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// =============================
// GET /api/a/admins/:id
// =============================
func (ctrl *AdminController) GetByID(c *fiber.Ctx) error {
	var admin model.AdminModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&admin, "admin_id = ?", c.Params("id")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Admin tidak ditemukan")
	}
	return helper.JsonOK(c, "Detail admin", admin)
}

// =============================
// POST /api/a/admins
// =============================
func (ctrl *AdminController) Create(c *fiber.Ctx) error {
	var req dto.CreateAdminRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Data admin tidak lengkap atau tidak valid")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses password")
	}

	admin := model.AdminModel{
		AdminName:     req.AdminName,
		AdminUsername: req.AdminUsername,
		AdminPassword: string(hashed),
	}
	if req.ProfilePhoto != nil && *req.ProfilePhoto != "" {
		path, err := helper.SaveBase64Image("profiles", *req.ProfilePhoto)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Foto profil tidak valid: "+err.Error())
		}
		admin.AdminProfilePhoto = &path
	}

	if err := ctrl.DB.WithContext(c.Context()).Create(&admin).Error; err != nil {
		if isUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Username sudah dipakai")
		}
		log.Println("[ERROR] create admin:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat admin")
	}
	return helper.JsonCreated(c, "Admin berhasil dibuat", admin)
}

// =============================
// PUT /api/a/admins/:id
// =============================
func (ctrl *AdminController) Update(c *fiber.Ctx) error {
	var req dto.UpdateAdminRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Data admin tidak valid")
	}

	var admin model.AdminModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&admin, "admin_id = ?", c.Params("id")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Admin tidak ditemukan")
	}

	if req.AdminName != nil {
		admin.AdminName = *req.AdminName
	}
	if req.AdminUsername != nil {
		admin.AdminUsername = *req.AdminUsername
	}
	if req.AdminPassword != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.AdminPassword), bcrypt.DefaultCost)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses password")
		}
		admin.AdminPassword = string(hashed)
	}
	if req.ProfilePhoto != nil && *req.ProfilePhoto != "" {
		path, err := helper.SaveBase64Image("profiles", *req.ProfilePhoto)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Foto profil tidak valid: "+err.Error())
		}
		admin.AdminProfilePhoto = &path
	}

	if err := ctrl.DB.WithContext(c.Context()).Save(&admin).Error; err != nil {
		if isUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Username sudah dipakai")
		}
		log.Println("[ERROR] update admin:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui admin")
	}
	return helper.JsonUpdated(c, "Admin berhasil diperbarui", admin)
}

// =============================
// DELETE /api/a/admins/:id
// =============================
func (ctrl *AdminController) Delete(c *fiber.Ctx) error {
	res := ctrl.DB.WithContext(c.Context()).
		Delete(&model.AdminModel{}, "admin_id = ?", c.Params("id"))
	if res.Error != nil {
		log.Println("[ERROR] delete admin:", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus admin")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Admin tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Admin berhasil dihapus", nil)
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
