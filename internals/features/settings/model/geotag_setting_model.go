package model

import (
	"time"

	"github.com/google/uuid"
)

// GeotagSettingModel: baris tunggal (upsert), koordinat sekolah + radius
// toleransi dalam meter.
type GeotagSettingModel struct {
	GeotagSettingID uuid.UUID `gorm:"column:geotag_setting_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"geotag_setting_id"`
	SchoolLatitude  float64   `gorm:"column:school_latitude;not null" json:"school_latitude"`
	SchoolLongitude float64   `gorm:"column:school_longitude;not null" json:"school_longitude"`
	ToleranceRadius float64   `gorm:"column:tolerance_radius;not null" json:"tolerance_radius"`
	UpdatedAt       time.Time `gorm:"column:geotag_setting_updated_at;autoUpdateTime" json:"updated_at"`
}

// TableName sets the name of the table
func (GeotagSettingModel) TableName() string {
	return "geotag_settings"
}
