package dto

// ============================
// Request DTO
// ============================

type CreateAdminRequest struct {
	AdminName     string  `json:"admin_name" validate:"required,min=3,max=100"`
	AdminUsername string  `json:"admin_username" validate:"required,min=3,max=50"`
	AdminPassword string  `json:"admin_password" validate:"required,min=6"`
	ProfilePhoto  *string `json:"profile_photo"` // base64, opsional
}

// Semua field pointer: hanya yang dikirim yang diubah.
type UpdateAdminRequest struct {
	AdminName     *string `json:"admin_name" validate:"omitempty,min=3,max=100"`
	AdminUsername *string `json:"admin_username" validate:"omitempty,min=3,max=50"`
	AdminPassword *string `json:"admin_password" validate:"omitempty,min=6"`
	ProfilePhoto  *string `json:"profile_photo"`
}
