package dto

// ============================
// Geotag setting
// ============================

// Pointer supaya koordinat 0 dan radius 0 tetap terbaca sebagai "dikirim".
type UpdateGeotagRequest struct {
	SchoolLatitude  *float64 `json:"school_latitude" validate:"required,min=-90,max=90"`
	SchoolLongitude *float64 `json:"school_longitude" validate:"required,min=-180,max=180"`
	ToleranceRadius *float64 `json:"tolerance_radius" validate:"required,gt=0"`
}

// ============================
// System setting
// ============================

type UpdateSystemSettingRequest struct {
	AcademicYear string  `json:"academic_year" validate:"required,max=20"`
	SchoolLogo   *string `json:"school_logo"` // base64, opsional
}

// ============================
// Holiday
// ============================

type CreateHolidayRequest struct {
	HolidayDate        string `json:"holiday_date" validate:"required"` // YYYY-MM-DD
	HolidayDescription string `json:"holiday_description" validate:"required"`
}

// Field pointer: hanya yang dikirim yang diubah.
type UpdateHolidayRequest struct {
	HolidayDate        *string `json:"holiday_date"` // YYYY-MM-DD
	HolidayDescription *string `json:"holiday_description"`
}
