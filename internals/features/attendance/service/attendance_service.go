package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"absenku_backend/internals/features/attendance/model"
)

const defaultLiveWindow = 10 * time.Minute

// AttendanceService: mesin status absensi.
// Per (tendik, tanggal): NoRecord → CheckedIn → CheckedOut, tanpa jalan balik.
type AttendanceService struct {
	tendiks  TendikDirectory
	geofence GeofenceSource
	holidays HolidayCalendar
	store    AttendanceStore
	policy   *TimePolicy
	clock    Clock
}

func NewAttendanceService(
	tendiks TendikDirectory,
	geofence GeofenceSource,
	holidays HolidayCalendar,
	store AttendanceStore,
	policy *TimePolicy,
	clock Clock,
) *AttendanceService {
	return &AttendanceService{
		tendiks:  tendiks,
		geofence: geofence,
		holidays: holidays,
		store:    store,
		policy:   policy,
		clock:    clock,
	}
}

// CheckIn memproses check-in tendik.
// Urutan pengecekan dijaga: tendik → geotag → radius → duplikat → libur.
// Duplikat dicek SEBELUM libur supaya dobel check-in di hari libur tetap
// dilaporkan sebagai duplikat, bukan sebagai libur.
func (s *AttendanceService) CheckIn(ctx context.Context, tendikID uuid.UUID, lat, lon float64, selfieRef *string) (*model.AttendanceModel, error) {
	if err := s.validateLocation(ctx, tendikID, lat, lon); err != nil {
		return nil, err
	}

	today := s.today()

	existing, err := s.store.FindByTendikAndDate(ctx, tendikID, today)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyCheckedIn
	}

	holiday, err := s.holidays.IsHoliday(ctx, today)
	if err != nil {
		return nil, err
	}
	if holiday {
		return nil, ErrHolidayToday
	}

	recorded, status := s.policy.CheckinTime()
	rec := &model.AttendanceModel{
		AttendanceTendikID:    tendikID,
		AttendanceDate:        datatypes.Date(today),
		AttendanceCheckinTime: &recorded,
		AttendanceStatus:      status,
		AttendanceLatitude:    &lat,
		AttendanceLongitude:   &lon,
		AttendanceSelfiePhoto: selfieRef,
	}
	if err := s.store.Insert(ctx, rec); err != nil {
		// Race dua check-in bersamaan: unique index yang menang,
		// store menerjemahkannya ke ErrAlreadyCheckedIn.
		return nil, err
	}
	return rec, nil
}

// CheckOut memproses check-out. Selfie & koordinat checkout divalidasi
// tapi tidak dipersist: record hanya menyimpan bukti check-in.
// Status tidak pernah diubah oleh checkout.
func (s *AttendanceService) CheckOut(ctx context.Context, tendikID uuid.UUID, lat, lon float64) (*model.AttendanceModel, error) {
	if err := s.validateLocation(ctx, tendikID, lat, lon); err != nil {
		return nil, err
	}

	rec, err := s.store.FindByTendikAndDate(ctx, tendikID, s.today())
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, ErrNoCheckinToday
	}
	if rec.AttendanceCheckoutTime != nil {
		return nil, ErrAlreadyCheckedOut
	}

	at := s.policy.CheckoutTime()
	ok, err := s.store.MarkCheckout(ctx, rec.AttendanceID, at)
	if err != nil {
		return nil, err
	}
	if !ok {
		// Race dobel checkout: update dengan guard IS NULL kalah.
		return nil, ErrAlreadyCheckedOut
	}

	rec.AttendanceCheckoutTime = &at
	rec.AttendanceUpdatedAt = s.clock.Now()
	return rec, nil
}

// History: seluruh record satu tendik, tanggal menurun.
func (s *AttendanceService) History(ctx context.Context, tendikID uuid.UUID) ([]model.AttendanceModel, error) {
	ok, err := s.tendiks.Exists(ctx, tendikID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrTendikNotFound
	}
	return s.store.ListByTendik(ctx, tendikID)
}

// Recapitulation: filter opsional digabung AND, tanggal menurun.
func (s *AttendanceService) Recapitulation(ctx context.Context, f RecapFilter) ([]model.AttendanceModel, error) {
	return s.store.ListFiltered(ctx, f)
}

// Today: semua record hari ini, created_at menurun.
func (s *AttendanceService) Today(ctx context.Context) ([]model.AttendanceModel, error) {
	return s.store.ListByDate(ctx, s.today())
}

// Live: aktivitas checkin/checkout dalam jendela terakhir (default 10 menit),
// paling baru duluan. Record yang checkin dan checkout-nya sama-sama masuk
// jendela menyumbang dua entri.
func (s *AttendanceService) Live(ctx context.Context, window time.Duration) ([]LiveEntry, error) {
	if window <= 0 {
		window = defaultLiveWindow
	}
	since := s.clock.Now().Add(-window)

	recs, err := s.store.ListActiveSince(ctx, since)
	if err != nil {
		return nil, err
	}

	names := map[uuid.UUID]string{}
	entries := make([]LiveEntry, 0, len(recs))
	for _, rec := range recs {
		name, ok := names[rec.AttendanceTendikID]
		if !ok {
			name, err = s.tendiks.NameOf(ctx, rec.AttendanceTendikID)
			if err != nil {
				return nil, err
			}
			names[rec.AttendanceTendikID] = name
		}
		if t := rec.AttendanceCheckinTime; t != nil && !t.Before(since) {
			entries = append(entries, LiveEntry{TendikName: name, Action: "checkin", Time: *t, Photo: rec.AttendanceSelfiePhoto})
		}
		if t := rec.AttendanceCheckoutTime; t != nil && !t.Before(since) {
			entries = append(entries, LiveEntry{TendikName: name, Action: "checkout", Time: *t, Photo: rec.AttendanceSelfiePhoto})
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Time.After(entries[j].Time)
	})
	return entries, nil
}

// validateLocation: prasyarat bersama check-in dan check-out,
// urutan: tendik ada → geotag terkonfigurasi → dalam radius.
func (s *AttendanceService) validateLocation(ctx context.Context, tendikID uuid.UUID, lat, lon float64) error {
	ok, err := s.tendiks.Exists(ctx, tendikID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrTendikNotFound
	}

	gf, err := s.geofence.Current(ctx)
	if err != nil {
		return err
	}
	if gf == nil {
		return ErrGeofenceNotConfigured
	}
	if !WithinRadius(lat, lon, gf.Latitude, gf.Longitude, gf.ToleranceRadius) {
		return ErrOutOfRange
	}
	return nil
}

func (s *AttendanceService) today() time.Time {
	now := s.clock.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}
