package dto

import (
	"time"

	"absenku_backend/internals/features/attendance/model"
)

// ============================
// Request DTO
// ============================

// Latitude/longitude pointer karena 0 adalah koordinat valid.
type CheckinRequest struct {
	TendikID    string   `json:"tendik_id"` // opsional: hanya dipakai admin, tendik pakai token sendiri
	Latitude    *float64 `json:"latitude" validate:"required"`
	Longitude   *float64 `json:"longitude" validate:"required"`
	SelfiePhoto string   `json:"selfie_photo" validate:"required"`
}

// Selfie & koordinat checkout divalidasi tapi tidak dipersist ke record.
type CheckoutRequest struct {
	TendikID    string   `json:"tendik_id"`
	Latitude    *float64 `json:"latitude" validate:"required"`
	Longitude   *float64 `json:"longitude" validate:"required"`
	SelfiePhoto string   `json:"selfie_photo" validate:"required"`
}

// ============================
// Response DTO
// ============================

type AttendanceDTO struct {
	AttendanceID string     `json:"attendance_id"`
	TendikID     string     `json:"tendik_id"`
	Date         string     `json:"date"` // YYYY-MM-DD
	CheckinTime  *time.Time `json:"checkin_time"`
	CheckoutTime *time.Time `json:"checkout_time"`
	Status       string     `json:"status"`
	Latitude     *float64   `json:"latitude"`
	Longitude    *float64   `json:"longitude"`
	SelfiePhoto  *string    `json:"selfie_photo"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// ============================
// Converter
// ============================

func ToAttendanceDTO(m model.AttendanceModel) AttendanceDTO {
	return AttendanceDTO{
		AttendanceID: m.AttendanceID.String(),
		TendikID:     m.AttendanceTendikID.String(),
		Date:         time.Time(m.AttendanceDate).Format("2006-01-02"),
		CheckinTime:  m.AttendanceCheckinTime,
		CheckoutTime: m.AttendanceCheckoutTime,
		Status:       m.AttendanceStatus,
		Latitude:     m.AttendanceLatitude,
		Longitude:    m.AttendanceLongitude,
		SelfiePhoto:  m.AttendanceSelfiePhoto,
		CreatedAt:    m.AttendanceCreatedAt,
		UpdatedAt:    m.AttendanceUpdatedAt,
	}
}

func ToAttendanceDTOs(ms []model.AttendanceModel) []AttendanceDTO {
	out := make([]AttendanceDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToAttendanceDTO(m))
	}
	return out
}
