package model

import (
	"time"

	"github.com/google/uuid"
)

// SystemSettingModel: baris tunggal (upsert): tahun ajaran + logo sekolah.
type SystemSettingModel struct {
	SystemSettingID uuid.UUID `gorm:"column:system_setting_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"system_setting_id"`
	AcademicYear    string    `gorm:"column:academic_year;type:varchar(20);not null" json:"academic_year"`
	SchoolLogo      *string   `gorm:"column:school_logo;type:text" json:"school_logo"` // Nullable
	UpdatedAt       time.Time `gorm:"column:system_setting_updated_at;autoUpdateTime" json:"updated_at"`
}

// TableName sets the name of the table
func (SystemSettingModel) TableName() string {
	return "system_settings"
}
