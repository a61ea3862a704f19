package dto

// Jenis izin divalidasi di controller (ada nilai berisi spasi).
type CreatePermissionRequest struct {
	TendikID    string `json:"tendik_id" validate:"required,uuid4"`
	Date        string `json:"date" validate:"required"` // YYYY-MM-DD
	Type        string `json:"type" validate:"required"`
	Description string `json:"description" validate:"required"`
}
