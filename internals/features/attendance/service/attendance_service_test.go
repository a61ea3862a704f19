package service

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"absenku_backend/internals/features/attendance/model"
)

/* =========================================
   Fake collaborator in-memory
========================================= */

type fakeDirectory struct {
	names map[uuid.UUID]string
}

func (f *fakeDirectory) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := f.names[id]
	return ok, nil
}

func (f *fakeDirectory) NameOf(_ context.Context, id uuid.UUID) (string, error) {
	return f.names[id], nil
}

type fakeGeofence struct {
	gf *Geofence
}

func (f *fakeGeofence) Current(_ context.Context) (*Geofence, error) {
	return f.gf, nil
}

type fakeHolidays struct {
	days map[string]bool
}

func (f *fakeHolidays) IsHoliday(_ context.Context, date time.Time) (bool, error) {
	return f.days[date.Format("2006-01-02")], nil
}

type fakeStore struct {
	recs map[string]*model.AttendanceModel
}

func storeKey(tendikID uuid.UUID, date time.Time) string {
	return tendikID.String() + "|" + date.Format("2006-01-02")
}

func (f *fakeStore) Insert(_ context.Context, rec *model.AttendanceModel) error {
	key := storeKey(rec.AttendanceTendikID, time.Time(rec.AttendanceDate))
	if _, ok := f.recs[key]; ok {
		return ErrAlreadyCheckedIn
	}
	rec.AttendanceID = uuid.New()
	f.recs[key] = rec
	return nil
}

func (f *fakeStore) FindByTendikAndDate(_ context.Context, tendikID uuid.UUID, date time.Time) (*model.AttendanceModel, error) {
	rec, ok := f.recs[storeKey(tendikID, date)]
	if !ok {
		return nil, nil
	}
	clone := *rec
	return &clone, nil
}

func (f *fakeStore) MarkCheckout(_ context.Context, id uuid.UUID, at time.Time) (bool, error) {
	for _, rec := range f.recs {
		if rec.AttendanceID == id {
			if rec.AttendanceCheckoutTime != nil {
				return false, nil
			}
			rec.AttendanceCheckoutTime = &at
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStore) ListByTendik(_ context.Context, tendikID uuid.UUID) ([]model.AttendanceModel, error) {
	var out []model.AttendanceModel
	for _, rec := range f.recs {
		if rec.AttendanceTendikID == tendikID {
			out = append(out, *rec)
		}
	}
	return out, nil
}

func (f *fakeStore) ListFiltered(_ context.Context, filter RecapFilter) ([]model.AttendanceModel, error) {
	var out []model.AttendanceModel
	for _, rec := range f.recs {
		if filter.TendikID != nil && rec.AttendanceTendikID != *filter.TendikID {
			continue
		}
		if filter.Status != nil && rec.AttendanceStatus != *filter.Status {
			continue
		}
		out = append(out, *rec)
	}
	return out, nil
}

func (f *fakeStore) ListByDate(_ context.Context, date time.Time) ([]model.AttendanceModel, error) {
	var out []model.AttendanceModel
	for _, rec := range f.recs {
		if time.Time(rec.AttendanceDate).Format("2006-01-02") == date.Format("2006-01-02") {
			out = append(out, *rec)
		}
	}
	return out, nil
}

func (f *fakeStore) ListActiveSince(_ context.Context, since time.Time) ([]model.AttendanceModel, error) {
	var out []model.AttendanceModel
	for _, rec := range f.recs {
		in := rec.AttendanceCheckinTime != nil && !rec.AttendanceCheckinTime.Before(since)
		outT := rec.AttendanceCheckoutTime != nil && !rec.AttendanceCheckoutTime.Before(since)
		if in || outT {
			out = append(out, *rec)
		}
	}
	return out, nil
}

/* =========================================
   Fixture
========================================= */

const (
	schoolLat = -7.8653
	schoolLon = 111.4621
)

type fixture struct {
	svc      *AttendanceService
	dir      *fakeDirectory
	geofence *fakeGeofence
	holidays *fakeHolidays
	store    *fakeStore
	tendikID uuid.UUID
	clock    fixedClock
}

func newFixture(t *testing.T, now time.Time) *fixture {
	t.Helper()
	tendikID := uuid.New()
	dir := &fakeDirectory{names: map[uuid.UUID]string{tendikID: "Zaki"}}
	geofence := &fakeGeofence{gf: &Geofence{Latitude: schoolLat, Longitude: schoolLon, ToleranceRadius: 30}}
	holidays := &fakeHolidays{days: map[string]bool{}}
	store := &fakeStore{recs: map[string]*model.AttendanceModel{}}
	clock := fixedClock{now: now}
	policy := NewTimePolicy(clock, rand.New(rand.NewSource(1)))

	return &fixture{
		svc:      NewAttendanceService(dir, geofence, holidays, store, policy, clock),
		dir:      dir,
		geofence: geofence,
		holidays: holidays,
		store:    store,
		tendikID: tendikID,
		clock:    clock,
	}
}

func (f *fixture) markHoliday(day time.Time) {
	f.holidays.days[day.Format("2006-01-02")] = true
}

/* =========================================
   CheckIn
========================================= */

func TestCheckIn_OnTime(t *testing.T) {
	now := monday(6, 50)
	f := newFixture(t, now)
	selfie := "/uploads/selfies/a.webp"

	rec, err := f.svc.CheckIn(context.Background(), f.tendikID, schoolLat, schoolLon, &selfie)
	require.NoError(t, err)

	assert.Equal(t, model.StatusHadir, rec.AttendanceStatus)
	require.NotNil(t, rec.AttendanceCheckinTime)
	assert.True(t, rec.AttendanceCheckinTime.Equal(now))
	assert.Nil(t, rec.AttendanceCheckoutTime)
	assert.Equal(t, &selfie, rec.AttendanceSelfiePhoto)
	assert.Equal(t, now.Format("2006-01-02"), time.Time(rec.AttendanceDate).Format("2006-01-02"))
}

func TestCheckIn_LateGetsAdjustedTime(t *testing.T) {
	now := monday(8, 15)
	f := newFixture(t, now)

	rec, err := f.svc.CheckIn(context.Background(), f.tendikID, schoolLat, schoolLon, nil)
	require.NoError(t, err)

	assert.Equal(t, model.StatusTerlambat, rec.AttendanceStatus)
	require.NotNil(t, rec.AttendanceCheckinTime)
	assert.False(t, rec.AttendanceCheckinTime.Before(monday(6, 30)))
	assert.False(t, rec.AttendanceCheckinTime.After(monday(7, 0)))
}

func TestCheckIn_UnknownTendik(t *testing.T) {
	f := newFixture(t, monday(6, 50))

	_, err := f.svc.CheckIn(context.Background(), uuid.New(), schoolLat, schoolLon, nil)
	assert.ErrorIs(t, err, ErrTendikNotFound)
}

func TestCheckIn_GeofenceNotConfigured(t *testing.T) {
	f := newFixture(t, monday(6, 50))
	f.geofence.gf = nil

	_, err := f.svc.CheckIn(context.Background(), f.tendikID, schoolLat, schoolLon, nil)
	assert.ErrorIs(t, err, ErrGeofenceNotConfigured)
}

func TestCheckIn_OutOfRange(t *testing.T) {
	f := newFixture(t, monday(6, 50))

	// kurang lebih 13 km dari sekolah
	_, err := f.svc.CheckIn(context.Background(), f.tendikID, schoolLat+0.12, schoolLon, nil)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestCheckIn_Duplicate(t *testing.T) {
	f := newFixture(t, monday(6, 50))

	_, err := f.svc.CheckIn(context.Background(), f.tendikID, schoolLat, schoolLon, nil)
	require.NoError(t, err)

	_, err = f.svc.CheckIn(context.Background(), f.tendikID, schoolLat, schoolLon, nil)
	assert.ErrorIs(t, err, ErrAlreadyCheckedIn)
}

func TestCheckIn_Holiday(t *testing.T) {
	now := monday(6, 50)
	f := newFixture(t, now)
	f.markHoliday(now)

	_, err := f.svc.CheckIn(context.Background(), f.tendikID, schoolLat, schoolLon, nil)
	assert.ErrorIs(t, err, ErrHolidayToday)
}

// Dobel check-in di hari libur harus dilaporkan sebagai duplikat,
// bukan sebagai libur: cek duplikat berjalan lebih dulu.
func TestCheckIn_DuplicateBeatsHoliday(t *testing.T) {
	now := monday(6, 50)
	f := newFixture(t, now)

	_, err := f.svc.CheckIn(context.Background(), f.tendikID, schoolLat, schoolLon, nil)
	require.NoError(t, err)

	f.markHoliday(now)
	_, err = f.svc.CheckIn(context.Background(), f.tendikID, schoolLat, schoolLon, nil)
	assert.ErrorIs(t, err, ErrAlreadyCheckedIn)
}

/* =========================================
   CheckOut
========================================= */

func TestCheckOut_WithoutCheckin(t *testing.T) {
	f := newFixture(t, monday(15, 0))

	_, err := f.svc.CheckOut(context.Background(), f.tendikID, schoolLat, schoolLon)
	assert.ErrorIs(t, err, ErrNoCheckinToday)
}

func TestCheckOut_AfterCutoffRecordsActualTime(t *testing.T) {
	checkinAt := monday(6, 50)
	f := newFixture(t, checkinAt)

	_, err := f.svc.CheckIn(context.Background(), f.tendikID, schoolLat, schoolLon, nil)
	require.NoError(t, err)

	checkoutAt := monday(15, 0)
	f2 := &fixture{
		svc: NewAttendanceService(f.dir, f.geofence, f.holidays, f.store,
			NewTimePolicy(fixedClock{now: checkoutAt}, rand.New(rand.NewSource(1))),
			fixedClock{now: checkoutAt}),
	}

	rec, err := f2.svc.CheckOut(context.Background(), f.tendikID, schoolLat, schoolLon)
	require.NoError(t, err)
	require.NotNil(t, rec.AttendanceCheckoutTime)
	assert.True(t, rec.AttendanceCheckoutTime.Equal(checkoutAt))
}

func TestCheckOut_EarlyGetsAdjustedTime(t *testing.T) {
	f := newFixture(t, monday(6, 50))
	_, err := f.svc.CheckIn(context.Background(), f.tendikID, schoolLat, schoolLon, nil)
	require.NoError(t, err)

	checkoutAt := monday(13, 0)
	svc := NewAttendanceService(f.dir, f.geofence, f.holidays, f.store,
		NewTimePolicy(fixedClock{now: checkoutAt}, rand.New(rand.NewSource(1))),
		fixedClock{now: checkoutAt})

	rec, err := svc.CheckOut(context.Background(), f.tendikID, schoolLat, schoolLon)
	require.NoError(t, err)
	require.NotNil(t, rec.AttendanceCheckoutTime)
	assert.False(t, rec.AttendanceCheckoutTime.Before(monday(14, 0)))
	assert.False(t, rec.AttendanceCheckoutTime.After(monday(14, 30)))
}

func TestCheckOut_StatusNeverChanges(t *testing.T) {
	f := newFixture(t, monday(9, 0)) // check-in terlambat
	_, err := f.svc.CheckIn(context.Background(), f.tendikID, schoolLat, schoolLon, nil)
	require.NoError(t, err)

	checkoutAt := monday(15, 0)
	svc := NewAttendanceService(f.dir, f.geofence, f.holidays, f.store,
		NewTimePolicy(fixedClock{now: checkoutAt}, rand.New(rand.NewSource(1))),
		fixedClock{now: checkoutAt})

	rec, err := svc.CheckOut(context.Background(), f.tendikID, schoolLat, schoolLon)
	require.NoError(t, err)
	assert.Equal(t, model.StatusTerlambat, rec.AttendanceStatus)
}

func TestCheckOut_Twice(t *testing.T) {
	f := newFixture(t, monday(6, 50))
	_, err := f.svc.CheckIn(context.Background(), f.tendikID, schoolLat, schoolLon, nil)
	require.NoError(t, err)

	checkoutAt := monday(15, 0)
	svc := NewAttendanceService(f.dir, f.geofence, f.holidays, f.store,
		NewTimePolicy(fixedClock{now: checkoutAt}, rand.New(rand.NewSource(1))),
		fixedClock{now: checkoutAt})

	_, err = svc.CheckOut(context.Background(), f.tendikID, schoolLat, schoolLon)
	require.NoError(t, err)

	_, err = svc.CheckOut(context.Background(), f.tendikID, schoolLat, schoolLon)
	assert.ErrorIs(t, err, ErrAlreadyCheckedOut)
}

func TestCheckOut_OutOfRange(t *testing.T) {
	f := newFixture(t, monday(6, 50))
	_, err := f.svc.CheckIn(context.Background(), f.tendikID, schoolLat, schoolLon, nil)
	require.NoError(t, err)

	_, err = f.svc.CheckOut(context.Background(), f.tendikID, schoolLat+0.12, schoolLon)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

/* =========================================
   History & Live
========================================= */

func TestHistory_UnknownTendik(t *testing.T) {
	f := newFixture(t, monday(6, 50))

	_, err := f.svc.History(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrTendikNotFound)
}

func TestHistory_ReturnsOwnRecords(t *testing.T) {
	f := newFixture(t, monday(6, 50))
	_, err := f.svc.CheckIn(context.Background(), f.tendikID, schoolLat, schoolLon, nil)
	require.NoError(t, err)

	recs, err := f.svc.History(context.Background(), f.tendikID)
	require.NoError(t, err)
	assert.Len(t, recs, 1)
}

func TestLive_WindowFiltersOldActivity(t *testing.T) {
	now := monday(10, 0)
	f := newFixture(t, now)

	oldCheckin := monday(8, 0)
	recentCheckin := now.Add(-5 * time.Minute)
	oldID, recentID := uuid.New(), uuid.New()
	f.dir.names[oldID] = "Lama"
	f.dir.names[recentID] = "Baru"

	f.store.recs[storeKey(oldID, now)] = &model.AttendanceModel{
		AttendanceID:          uuid.New(),
		AttendanceTendikID:    oldID,
		AttendanceDate:        datatypes.Date(now),
		AttendanceCheckinTime: &oldCheckin,
		AttendanceStatus:      model.StatusHadir,
	}
	f.store.recs[storeKey(recentID, now)] = &model.AttendanceModel{
		AttendanceID:          uuid.New(),
		AttendanceTendikID:    recentID,
		AttendanceDate:        datatypes.Date(now),
		AttendanceCheckinTime: &recentCheckin,
		AttendanceStatus:      model.StatusHadir,
	}

	entries, err := f.svc.Live(context.Background(), 0) // default 10 menit
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Baru", entries[0].TendikName)
	assert.Equal(t, "checkin", entries[0].Action)
}

func TestLive_CheckinAndCheckoutBothInWindow(t *testing.T) {
	now := monday(14, 40)
	f := newFixture(t, now)

	checkin := now.Add(-8 * time.Minute)
	checkout := now.Add(-2 * time.Minute)
	f.store.recs[storeKey(f.tendikID, now)] = &model.AttendanceModel{
		AttendanceID:           uuid.New(),
		AttendanceTendikID:     f.tendikID,
		AttendanceDate:         datatypes.Date(now),
		AttendanceCheckinTime:  &checkin,
		AttendanceCheckoutTime: &checkout,
		AttendanceStatus:       model.StatusHadir,
	}

	entries, err := f.svc.Live(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// Terbaru duluan: checkout dulu, baru checkin
	assert.Equal(t, "checkout", entries[0].Action)
	assert.Equal(t, "checkin", entries[1].Action)
	assert.Equal(t, "Zaki", entries[0].TendikName)
}
