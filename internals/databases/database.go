package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	adminModel "absenku_backend/internals/features/admin/model"
	attendanceModel "absenku_backend/internals/features/attendance/model"
	authModel "absenku_backend/internals/features/auth/model"
	permissionModel "absenku_backend/internals/features/permission/model"
	settingsModel "absenku_backend/internals/features/settings/model"
	tendikModel "absenku_backend/internals/features/tendik/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Koneksi ke PostgreSQL...")

	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=absenku&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // 👍 cocok untuk PgBouncer (transaction pooling)
	}), &gorm.Config{
		TranslateError: true, // unique violation → gorm.ErrDuplicatedKey
	})
	if err != nil {
		log.Fatalf("❌ Gagal konek DB: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// Migrate menjalankan auto-migration seluruh tabel.
// Unique index (tendik_id, date) pada attendance dijaga oleh tag model;
// itu pengaman race dobel check-in, jangan dihapus.
func Migrate() {
	if err := DB.AutoMigrate(
		&adminModel.AdminModel{},
		&tendikModel.TendikModel{},
		&attendanceModel.AttendanceModel{},
		&permissionModel.StaffPermissionModel{},
		&settingsModel.GeotagSettingModel{},
		&settingsModel.HolidayModel{},
		&settingsModel.SystemSettingModel{},
		&authModel.TokenBlacklistModel{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate gagal: %v", err)
	}
	log.Println("✅ Migrasi selesai.")
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
