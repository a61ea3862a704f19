package dto

// ============================
// Request DTO
// ============================

type CreateTendikRequest struct {
	TendikName     string  `json:"tendik_name" validate:"required,min=3,max=100"`
	TendikUsername string  `json:"tendik_username" validate:"required,min=3,max=50"`
	TendikPassword string  `json:"tendik_password" validate:"required,min=6"`
	TendikPosition string  `json:"tendik_position" validate:"required"`
	ProfilePhoto   *string `json:"profile_photo"` // base64, opsional
}

// Semua field pointer: hanya yang dikirim yang diubah.
type UpdateTendikRequest struct {
	TendikName     *string `json:"tendik_name" validate:"omitempty,min=3,max=100"`
	TendikUsername *string `json:"tendik_username" validate:"omitempty,min=3,max=50"`
	TendikPassword *string `json:"tendik_password" validate:"omitempty,min=6"`
	TendikPosition *string `json:"tendik_position"`
	ProfilePhoto   *string `json:"profile_photo"`
}
