package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Status kehadiran. Alpha tidak pernah di-set oleh alur check-in/out;
// admin yang menandai tendik tanpa record di hari kerja.
const (
	StatusHadir     = "Hadir"
	StatusTerlambat = "Terlambat"
	StatusAlpha     = "Alpha"
)

// AttendanceModel: satu baris per (tendik, tanggal).
// Unique index idx_attendance_tendik_date adalah pengaman race dobel
// check-in: insert kedua ditolak DB, bukan oleh pengecekan aplikasi.
type AttendanceModel struct {
	AttendanceID           uuid.UUID      `gorm:"column:attendance_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"attendance_id"`
	AttendanceTendikID     uuid.UUID      `gorm:"column:attendance_tendik_id;type:uuid;not null;uniqueIndex:idx_attendance_tendik_date" json:"attendance_tendik_id"`
	AttendanceDate         datatypes.Date `gorm:"column:attendance_date;not null;uniqueIndex:idx_attendance_tendik_date" json:"attendance_date"`
	AttendanceCheckinTime  *time.Time     `gorm:"column:attendance_checkin_time" json:"attendance_checkin_time"`   // Nullable
	AttendanceCheckoutTime *time.Time     `gorm:"column:attendance_checkout_time" json:"attendance_checkout_time"` // Nullable, sekali terisi tidak berubah
	AttendanceStatus       string         `gorm:"column:attendance_status;type:varchar(20);not null" json:"attendance_status"`
	AttendanceLatitude     *float64       `gorm:"column:attendance_latitude" json:"attendance_latitude"`
	AttendanceLongitude    *float64       `gorm:"column:attendance_longitude" json:"attendance_longitude"`
	AttendanceSelfiePhoto  *string        `gorm:"column:attendance_selfie_photo;type:text" json:"attendance_selfie_photo"`
	AttendanceCreatedAt    time.Time      `gorm:"column:attendance_created_at;autoCreateTime" json:"attendance_created_at"`
	AttendanceUpdatedAt    time.Time      `gorm:"column:attendance_updated_at;autoUpdateTime" json:"attendance_updated_at"`
}

// TableName sets the name of the table
func (AttendanceModel) TableName() string {
	return "attendances"
}
