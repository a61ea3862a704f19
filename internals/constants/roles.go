package constants

import "fmt"

// Role yang dikenal sistem
const (
	RoleAdmin  = "admin"
	RoleTendik = "tendik"
)

// Posisi tendik yang valid (enum position di DB)
const PositionKepalaMadrasah = "Kepala Madrasah"

var TendikPositions = []string{
	PositionKepalaMadrasah,
	"Kepala TU",
	"Staf TU",
	"Operator",
	"Penjaga Sekolah",
}

// Template pesan error role
const (
	ErrOnlyAdminsCanAccess = "❌ Hanya admin yang boleh mengakses fitur %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}
