package seeds

import (
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"absenku_backend/internals/configs"
	"absenku_backend/internals/constants"
	adminModel "absenku_backend/internals/features/admin/model"
	settingsModel "absenku_backend/internals/features/settings/model"
	tendikModel "absenku_backend/internals/features/tendik/model"
)

// Run mengisi data awal bila tabel masih kosong. Idempotent:
// cek dulu sebelum insert, aman dipanggil setiap startup.
func Run(db *gorm.DB) {
	seedDefaultAdmin(db)
	seedSystemSetting(db)
	seedGeotagSetting(db)
	seedHolidays(db)
	seedSampleTendiks(db)
}

func seedDefaultAdmin(db *gorm.DB) {
	var count int64
	if err := db.Model(&adminModel.AdminModel{}).Count(&count).Error; err != nil || count > 0 {
		return
	}

	password := configs.GetEnv("SEED_ADMIN_PASSWORD", "admin123")
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Println("[ERROR] seed admin: gagal hash password:", err)
		return
	}

	admin := adminModel.AdminModel{
		AdminName:     "Munir",
		AdminUsername: "munir",
		AdminPassword: string(hashed),
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Println("[ERROR] seed admin:", err)
		return
	}
	log.Println("[INFO] seed: admin default dibuat (username: munir)")
}

func seedSystemSetting(db *gorm.DB) {
	var count int64
	if err := db.Model(&settingsModel.SystemSettingModel{}).Count(&count).Error; err != nil || count > 0 {
		return
	}
	setting := settingsModel.SystemSettingModel{AcademicYear: "2025/2026"}
	if err := db.Create(&setting).Error; err != nil {
		log.Println("[ERROR] seed system setting:", err)
		return
	}
	log.Println("[INFO] seed: pengaturan sistem dibuat (tahun ajaran 2025/2026)")
}

func seedGeotagSetting(db *gorm.DB) {
	var count int64
	if err := db.Model(&settingsModel.GeotagSettingModel{}).Count(&count).Error; err != nil || count > 0 {
		return
	}
	// Koordinat madrasah (Ponorogo) + radius toleransi 30 meter
	setting := settingsModel.GeotagSettingModel{
		SchoolLatitude:  -7.8653,
		SchoolLongitude: 111.4621,
		ToleranceRadius: 30,
	}
	if err := db.Create(&setting).Error; err != nil {
		log.Println("[ERROR] seed geotag:", err)
		return
	}
	log.Println("[INFO] seed: geotag default dibuat")
}

func seedHolidays(db *gorm.DB) {
	var count int64
	if err := db.Model(&settingsModel.HolidayModel{}).Count(&count).Error; err != nil || count > 0 {
		return
	}

	loc := configs.AppLocation
	holidays := []settingsModel.HolidayModel{
		{
			HolidayDate:        datatypes.Date(time.Date(2025, 8, 17, 0, 0, 0, 0, loc)),
			HolidayDescription: "Hari Kemerdekaan RI",
		},
		{
			HolidayDate:        datatypes.Date(time.Date(2025, 12, 25, 0, 0, 0, 0, loc)),
			HolidayDescription: "Hari Raya Natal",
		},
		{
			HolidayDate:        datatypes.Date(time.Date(2026, 1, 1, 0, 0, 0, 0, loc)),
			HolidayDescription: "Tahun Baru Masehi",
		},
	}
	if err := db.Create(&holidays).Error; err != nil {
		log.Println("[ERROR] seed holidays:", err)
		return
	}
	log.Println("[INFO] seed: kalender libur awal dibuat")
}

func seedSampleTendiks(db *gorm.DB) {
	var count int64
	if err := db.Model(&tendikModel.TendikModel{}).Count(&count).Error; err != nil || count > 0 {
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("tendik123"), bcrypt.DefaultCost)
	if err != nil {
		log.Println("[ERROR] seed tendik: gagal hash password:", err)
		return
	}

	tendiks := []tendikModel.TendikModel{
		{
			TendikName:     "Zaki",
			TendikUsername: "zaki",
			TendikPassword: string(hashed),
			TendikPosition: constants.PositionKepalaMadrasah,
		},
		{
			TendikName:     "Ngiza",
			TendikUsername: "ngiza",
			TendikPassword: string(hashed),
			TendikPosition: "Staf TU",
		},
	}
	if err := db.Create(&tendiks).Error; err != nil {
		log.Println("[ERROR] seed tendik:", err)
		return
	}
	log.Println("[INFO] seed: tendik contoh dibuat")
}
