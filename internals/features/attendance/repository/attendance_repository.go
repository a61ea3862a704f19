package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"absenku_backend/internals/features/attendance/model"
	"absenku_backend/internals/features/attendance/service"
	settingsModel "absenku_backend/internals/features/settings/model"
	tendikModel "absenku_backend/internals/features/tendik/model"
)

/* =========================================
   AttendanceStore (GORM)
========================================= */

type AttendanceRepository struct {
	DB *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) *AttendanceRepository {
	return &AttendanceRepository{DB: db}
}

func (r *AttendanceRepository) Insert(ctx context.Context, rec *model.AttendanceModel) error {
	if err := r.DB.WithContext(ctx).Create(rec).Error; err != nil {
		if isUniqueViolation(err) {
			return service.ErrAlreadyCheckedIn
		}
		return err
	}
	return nil
}

func (r *AttendanceRepository) FindByTendikAndDate(ctx context.Context, tendikID uuid.UUID, date time.Time) (*model.AttendanceModel, error) {
	var rec model.AttendanceModel
	err := r.DB.WithContext(ctx).
		Where("attendance_tendik_id = ? AND attendance_date = ?", tendikID, datatypes.Date(date)).
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// MarkCheckout: guard "IS NULL" memutus race dobel checkout;
// RowsAffected 0 artinya baris sudah ter-checkout.
func (r *AttendanceRepository) MarkCheckout(ctx context.Context, id uuid.UUID, at time.Time) (bool, error) {
	res := r.DB.WithContext(ctx).
		Model(&model.AttendanceModel{}).
		Where("attendance_id = ? AND attendance_checkout_time IS NULL", id).
		Updates(map[string]any{
			"attendance_checkout_time": at,
			"attendance_updated_at":    time.Now(),
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *AttendanceRepository) ListByTendik(ctx context.Context, tendikID uuid.UUID) ([]model.AttendanceModel, error) {
	var recs []model.AttendanceModel
	err := r.DB.WithContext(ctx).
		Where("attendance_tendik_id = ?", tendikID).
		Order("attendance_date DESC").
		Find(&recs).Error
	return recs, err
}

func (r *AttendanceRepository) ListFiltered(ctx context.Context, f service.RecapFilter) ([]model.AttendanceModel, error) {
	tx := r.DB.WithContext(ctx).Model(&model.AttendanceModel{})
	if f.StartDate != nil {
		tx = tx.Where("attendance_date >= ?", datatypes.Date(*f.StartDate))
	}
	if f.EndDate != nil {
		tx = tx.Where("attendance_date <= ?", datatypes.Date(*f.EndDate))
	}
	if f.TendikID != nil {
		tx = tx.Where("attendance_tendik_id = ?", *f.TendikID)
	}
	if f.Status != nil {
		tx = tx.Where("attendance_status = ?", *f.Status)
	}

	var recs []model.AttendanceModel
	err := tx.Order("attendance_date DESC").Find(&recs).Error
	return recs, err
}

func (r *AttendanceRepository) ListByDate(ctx context.Context, date time.Time) ([]model.AttendanceModel, error) {
	var recs []model.AttendanceModel
	err := r.DB.WithContext(ctx).
		Where("attendance_date = ?", datatypes.Date(date)).
		Order("attendance_created_at DESC").
		Find(&recs).Error
	return recs, err
}

func (r *AttendanceRepository) ListActiveSince(ctx context.Context, since time.Time) ([]model.AttendanceModel, error) {
	var recs []model.AttendanceModel
	err := r.DB.WithContext(ctx).
		Where("attendance_checkin_time >= ? OR attendance_checkout_time >= ?", since, since).
		Find(&recs).Error
	return recs, err
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

/* =========================================
   TendikDirectory (GORM)
========================================= */

type TendikDirectory struct {
	DB *gorm.DB
}

func NewTendikDirectory(db *gorm.DB) *TendikDirectory {
	return &TendikDirectory{DB: db}
}

func (d *TendikDirectory) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := d.DB.WithContext(ctx).
		Model(&tendikModel.TendikModel{}).
		Where("tendik_id = ?", id).
		Count(&count).Error
	return count > 0, err
}

func (d *TendikDirectory) NameOf(ctx context.Context, id uuid.UUID) (string, error) {
	var name string
	err := d.DB.WithContext(ctx).
		Model(&tendikModel.TendikModel{}).
		Where("tendik_id = ?", id).
		Pluck("tendik_name", &name).Error
	return name, err
}

/* =========================================
   GeofenceSource (GORM)
========================================= */

type GeofenceSource struct {
	DB *gorm.DB
}

func NewGeofenceSource(db *gorm.DB) *GeofenceSource {
	return &GeofenceSource{DB: db}
}

// Current: (nil, nil) bila baris setting belum pernah dibuat.
func (g *GeofenceSource) Current(ctx context.Context) (*service.Geofence, error) {
	var setting settingsModel.GeotagSettingModel
	err := g.DB.WithContext(ctx).First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &service.Geofence{
		Latitude:        setting.SchoolLatitude,
		Longitude:       setting.SchoolLongitude,
		ToleranceRadius: setting.ToleranceRadius,
	}, nil
}

/* =========================================
   HolidayCalendar (GORM)
========================================= */

type HolidayCalendar struct {
	DB *gorm.DB
}

func NewHolidayCalendar(db *gorm.DB) *HolidayCalendar {
	return &HolidayCalendar{DB: db}
}

func (h *HolidayCalendar) IsHoliday(ctx context.Context, date time.Time) (bool, error) {
	var count int64
	err := h.DB.WithContext(ctx).
		Model(&settingsModel.HolidayModel{}).
		Where("holiday_date = ?", datatypes.Date(date)).
		Count(&count).Error
	return count > 0, err
}
