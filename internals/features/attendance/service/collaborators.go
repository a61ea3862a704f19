package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"absenku_backend/internals/features/attendance/model"
)

// Geofence: koordinat sekolah + radius toleransi dalam meter.
type Geofence struct {
	Latitude        float64
	Longitude       float64
	ToleranceRadius float64
}

// TendikDirectory: lookup identitas tendik (implementasi GORM di repository).
type TendikDirectory interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	NameOf(ctx context.Context, id uuid.UUID) (string, error)
}

// GeofenceSource mengembalikan (nil, nil) bila geotag belum dikonfigurasi.
type GeofenceSource interface {
	Current(ctx context.Context) (*Geofence, error)
}

// HolidayCalendar mencocokkan tanggal kalender (jam diabaikan).
type HolidayCalendar interface {
	IsHoliday(ctx context.Context, date time.Time) (bool, error)
}

// AttendanceStore: akses ledger absensi.
//
// Insert wajib menerjemahkan unique violation (tendik_id, date) menjadi
// ErrAlreadyCheckedIn: race dua check-in bersamaan diputus oleh DB.
// MarkCheckout wajib pakai guard "checkout_time IS NULL"; false artinya
// baris sudah ter-checkout (race dobel checkout).
type AttendanceStore interface {
	Insert(ctx context.Context, rec *model.AttendanceModel) error
	FindByTendikAndDate(ctx context.Context, tendikID uuid.UUID, date time.Time) (*model.AttendanceModel, error)
	MarkCheckout(ctx context.Context, id uuid.UUID, at time.Time) (bool, error)
	ListByTendik(ctx context.Context, tendikID uuid.UUID) ([]model.AttendanceModel, error)
	ListFiltered(ctx context.Context, f RecapFilter) ([]model.AttendanceModel, error)
	ListByDate(ctx context.Context, date time.Time) ([]model.AttendanceModel, error)
	ListActiveSince(ctx context.Context, since time.Time) ([]model.AttendanceModel, error)
}

// RecapFilter: semua field opsional, digabung AND.
type RecapFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	TendikID  *uuid.UUID
	Status    *string
}

// LiveEntry: satu aktivitas di feed dashboard. Satu record bisa muncul
// dua kali (checkin + checkout) bila keduanya masih di dalam jendela.
type LiveEntry struct {
	TendikName string    `json:"tendik_name"`
	Action     string    `json:"action"` // "checkin" | "checkout"
	Time       time.Time `json:"time"`
	Photo      *string   `json:"photo"`
}
