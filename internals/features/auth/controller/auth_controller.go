package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"absenku_backend/internals/constants"
	adminModel "absenku_backend/internals/features/admin/model"
	"absenku_backend/internals/features/auth/service"
	tendikModel "absenku_backend/internals/features/tendik/model"
	helper "absenku_backend/internals/helpers"
)

var validate = validator.New()

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AuthController struct {
	DB      *gorm.DB
	Service *service.AuthService
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db, Service: service.NewAuthService(db)}
}

// =============================
// POST /api/auth/login/admin
// =============================
func (ctrl *AuthController) LoginAdmin(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Username dan password wajib diisi")
	}

	token, admin, err := ctrl.Service.LoginAdmin(c.Context(), req.Username, req.Password)
	if err != nil {
		return loginError(c, err)
	}

	log.Printf("[INFO] login admin username=%s", req.Username)
	return helper.JsonOK(c, "Login berhasil", fiber.Map{
		"token": token,
		"role":  constants.RoleAdmin,
		"user":  admin,
	})
}

// =============================
// POST /api/auth/login/tendik
// =============================
func (ctrl *AuthController) LoginTendik(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Username dan password wajib diisi")
	}

	token, tendik, err := ctrl.Service.LoginTendik(c.Context(), req.Username, req.Password)
	if err != nil {
		return loginError(c, err)
	}

	log.Printf("[INFO] login tendik username=%s", req.Username)
	return helper.JsonOK(c, "Login berhasil", fiber.Map{
		"token": token,
		"role":  constants.RoleTendik,
		"user":  tendik,
	})
}

// =============================
// POST /api/u/auth/logout
// =============================
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	rawToken, _ := c.Locals("raw_token").(string)
	if rawToken == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Token tidak ditemukan")
	}
	if err := ctrl.Service.Logout(c.Context(), rawToken); err != nil {
		log.Println("[ERROR] logout:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal logout")
	}
	return helper.JsonOK(c, "Logout berhasil", nil)
}

// =============================
// GET /api/u/auth/me
// =============================
func (ctrl *AuthController) Me(c *fiber.Ctx) error {
	rawID, _ := c.Locals("user_id").(string)
	role, _ := c.Locals("role").(string)

	id, err := uuid.Parse(rawID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Token tidak valid")
	}

	switch role {
	case constants.RoleAdmin:
		var admin adminModel.AdminModel
		if err := ctrl.DB.WithContext(c.Context()).First(&admin, "admin_id = ?", id).Error; err != nil {
			return helper.JsonError(c, fiber.StatusNotFound, "Admin tidak ditemukan")
		}
		return helper.JsonOK(c, "Profil admin", admin)
	case constants.RoleTendik:
		var tendik tendikModel.TendikModel
		if err := ctrl.DB.WithContext(c.Context()).First(&tendik, "tendik_id = ?", id).Error; err != nil {
			return helper.JsonError(c, fiber.StatusNotFound, "Tendik tidak ditemukan")
		}
		return helper.JsonOK(c, "Profil tendik", tendik)
	default:
		return helper.JsonError(c, fiber.StatusForbidden, "Role tidak dikenal")
	}
}

func loginError(c *fiber.Ctx, err error) error {
	if errors.Is(err, service.ErrInvalidCredentials) {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	log.Println("[ERROR] login:", err)
	return helper.JsonError(c, fiber.StatusInternalServerError, "Terjadi kesalahan pada server")
}
