package service

import "errors"

// Error domain absensi. Controller memetakan ini ke status HTTP;
// jangan pernah dibungkus jadi error generik.
var (
	ErrTendikNotFound        = errors.New("tendik tidak ditemukan")
	ErrGeofenceNotConfigured = errors.New("pengaturan geotag belum dikonfigurasi")
	ErrOutOfRange            = errors.New("lokasi Anda di luar radius yang diizinkan")
	ErrAlreadyCheckedIn      = errors.New("Anda sudah melakukan check-in hari ini")
	ErrHolidayToday          = errors.New("hari ini adalah hari libur, tidak perlu absen")
	ErrNoCheckinToday        = errors.New("belum ada check-in untuk hari ini")
	ErrAlreadyCheckedOut     = errors.New("Anda sudah melakukan check-out hari ini")
)
