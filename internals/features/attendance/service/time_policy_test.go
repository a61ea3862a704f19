package service

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"absenku_backend/internals/features/attendance/model"
)

var wib = time.FixedZone("WIB", 7*3600)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

func policyAt(t *testing.T, now time.Time) *TimePolicy {
	t.Helper()
	return NewTimePolicy(fixedClock{now: now}, rand.New(rand.NewSource(42)))
}

// Senin 2025-09-01 sebagai hari kerja acuan.
func monday(hour, min int) time.Time {
	return time.Date(2025, 9, 1, hour, min, 0, 0, wib)
}

func TestCheckinTime_OnTime(t *testing.T) {
	now := monday(6, 45)
	recorded, status := policyAt(t, now).CheckinTime()

	assert.Equal(t, model.StatusHadir, status)
	assert.True(t, recorded.Equal(now), "waktu hadir dicatat apa adanya")
}

func TestCheckinTime_ExactlyAtCutoff(t *testing.T) {
	now := monday(7, 0)
	recorded, status := policyAt(t, now).CheckinTime()

	assert.Equal(t, model.StatusHadir, status, "07:00 tepat masih Hadir")
	assert.True(t, recorded.Equal(now))
}

func TestCheckinTime_Late(t *testing.T) {
	now := monday(7, 1)
	recorded, status := policyAt(t, now).CheckinTime()

	assert.Equal(t, model.StatusTerlambat, status)

	windowStart := monday(6, 30)
	windowEnd := monday(7, 0)
	assert.False(t, recorded.Before(windowStart), "waktu terlambat minimal 06:30")
	assert.False(t, recorded.After(windowEnd), "waktu terlambat maksimal 07:00")
	assert.Equal(t, 0, recorded.Second())
	assert.Equal(t, now.Day(), recorded.Day(), "tanggal tidak boleh bergeser")
}

func TestCheckinTime_LateDeterministicWithSeed(t *testing.T) {
	now := monday(9, 30)
	a, _ := NewTimePolicy(fixedClock{now: now}, rand.New(rand.NewSource(7))).CheckinTime()
	b, _ := NewTimePolicy(fixedClock{now: now}, rand.New(rand.NewSource(7))).CheckinTime()
	assert.True(t, a.Equal(b), "seed sama harus menghasilkan waktu sama")
}

func TestCheckoutTime_WeekdayEarly(t *testing.T) {
	now := monday(13, 30)
	recorded := policyAt(t, now).CheckoutTime()

	windowStart := monday(14, 0)
	windowEnd := monday(14, 30)
	assert.False(t, recorded.Before(windowStart), "checkout dini digeser minimal ke 14:00")
	assert.False(t, recorded.After(windowEnd), "checkout dini digeser maksimal ke 14:30")
}

func TestCheckoutTime_WeekdayAfterCutoff(t *testing.T) {
	now := monday(15, 12)
	recorded := policyAt(t, now).CheckoutTime()
	assert.True(t, recorded.Equal(now), "setelah 14:00 dicatat apa adanya")
}

func TestCheckoutTime_WeekdayExactlyAtCutoff(t *testing.T) {
	now := monday(14, 0)
	recorded := policyAt(t, now).CheckoutTime()
	assert.True(t, recorded.Equal(now), "14:00 tepat tidak disesuaikan")
}

func TestCheckoutTime_SaturdayEarly(t *testing.T) {
	now := time.Date(2025, 9, 6, 11, 0, 0, 0, wib) // Sabtu
	require.Equal(t, time.Saturday, now.Weekday())

	recorded := policyAt(t, now).CheckoutTime()

	windowStart := time.Date(2025, 9, 6, 12, 0, 0, 0, wib)
	windowEnd := time.Date(2025, 9, 6, 12, 30, 0, 0, wib)
	assert.False(t, recorded.Before(windowStart))
	assert.False(t, recorded.After(windowEnd))
}

func TestCheckoutTime_SaturdayAfterCutoff(t *testing.T) {
	now := time.Date(2025, 9, 6, 12, 45, 0, 0, wib)
	recorded := policyAt(t, now).CheckoutTime()
	assert.True(t, recorded.Equal(now))
}

func TestCheckoutTime_SundayNeverAdjusted(t *testing.T) {
	now := time.Date(2025, 9, 7, 9, 0, 0, 0, wib) // Minggu pagi
	require.Equal(t, time.Sunday, now.Weekday())

	recorded := policyAt(t, now).CheckoutTime()
	assert.True(t, recorded.Equal(now), "Minggu tidak punya aturan penyesuaian")
}
