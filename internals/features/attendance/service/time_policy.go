package service

import (
	"math/rand"
	"time"

	"absenku_backend/internals/features/attendance/model"
)

// Clock dipisah supaya test bisa membekukan "sekarang".
type Clock interface {
	Now() time.Time
}

type realClock struct {
	loc *time.Location
}

func (c realClock) Now() time.Time { return time.Now().In(c.loc) }

// NewClock mengembalikan jam berjalan di lokasi (WIB) yang diberikan.
func NewClock(loc *time.Location) Clock {
	return realClock{loc: loc}
}

// Aturan jam absensi madrasah (menit dari tengah malam, WIB):
// - check-in lewat 07:00 → Terlambat, waktu dicatat acak 06:30–07:00
// - check-out Senin–Jumat sebelum 14:00 → dicatat acak 14:00–14:30
// - check-out Sabtu sebelum 12:00 → dicatat acak 12:00–12:30
// - Minggu tidak punya aturan khusus: checkout dicatat apa adanya
const (
	checkinCutoffMinute  = 7 * 60
	lateWindowStart      = 6*60 + 30
	weekdayCutoffMinute  = 14 * 60
	saturdayCutoffMinute = 12 * 60
	adjustWindowMinutes  = 30
)

// TimePolicy menentukan waktu tercatat + status dari jam sebenarnya.
// Jam dan sumber acak di-inject supaya deterministik di test.
type TimePolicy struct {
	clock Clock
	rng   *rand.Rand
}

func NewTimePolicy(clock Clock, rng *rand.Rand) *TimePolicy {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &TimePolicy{clock: clock, rng: rng}
}

// CheckinTime: ≤ 07:00 → (now, Hadir); > 07:00 → (acak 06:30–07:00, Terlambat).
// Waktu terlambat yang dicatat sengaja diikat ke jendela tetap, bukan
// seberapa telat sebenarnya: kebijakan bisnis, bukan pengukuran.
func (p *TimePolicy) CheckinTime() (time.Time, string) {
	now := p.clock.Now()
	cutoff := atMinuteOfDay(now, checkinCutoffMinute)
	if !now.After(cutoff) {
		return now, model.StatusHadir
	}
	return p.randomMinuteOfDay(now, lateWindowStart, checkinCutoffMinute), model.StatusTerlambat
}

// CheckoutTime: status tidak pernah berubah saat checkout, hanya waktunya
// yang mengikuti aturan per hari.
func (p *TimePolicy) CheckoutTime() time.Time {
	now := p.clock.Now()

	var cutoffMinute int
	switch now.Weekday() {
	case time.Sunday:
		return now
	case time.Saturday:
		cutoffMinute = saturdayCutoffMinute
	default:
		cutoffMinute = weekdayCutoffMinute
	}

	if now.Before(atMinuteOfDay(now, cutoffMinute)) {
		return p.randomMinuteOfDay(now, cutoffMinute, cutoffMinute+adjustWindowMinutes)
	}
	return now
}

// randomMinuteOfDay memilih menit uniform pada [startMinute, endMinute]
// (inklusif dua sisi), detik dinolkan.
func (p *TimePolicy) randomMinuteOfDay(day time.Time, startMinute, endMinute int) time.Time {
	n := p.rng.Intn(endMinute - startMinute + 1)
	return atMinuteOfDay(day, startMinute+n)
}

func atMinuteOfDay(day time.Time, minuteOfDay int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(),
		minuteOfDay/60, minuteOfDay%60, 0, 0, day.Location())
}
