package constants

import "fmt"

// Role pengguna dalam rantai persetujuan MEMO.
const (
	RoleAmoArea   = "amo_area"
	RoleAmoRegion = "amo_region"
	RoleMO        = "mo"
	RoleCCH       = "cch"
)

// Template pesan error role
const (
	ErrOnlyAmoAreaCanAccess   = "❌ Hanya AMO Area yang boleh mengakses fitur %s."
	ErrOnlyAmoRegionCanAccess = "❌ Hanya AMO Region yang boleh mengakses fitur %s."
	ErrOnlyMOCanAccess        = "❌ Hanya MO yang boleh mengakses fitur %s."
	ErrOnlyCCHCanAccess       = "❌ Hanya CCH yang boleh mengakses fitur %s."
)

func RoleErrorAmoArea(feature string) string {
	return fmt.Sprintf(ErrOnlyAmoAreaCanAccess, feature)
}

func RoleErrorAmoRegion(feature string) string {
	return fmt.Sprintf(ErrOnlyAmoRegionCanAccess, feature)
}

func RoleErrorMO(feature string) string {
	return fmt.Sprintf(ErrOnlyMOCanAccess, feature)
}

func RoleErrorCCH(feature string) string {
	return fmt.Sprintf(ErrOnlyCCHCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleAmoArea,
		RoleAmoRegion,
		RoleMO,
		RoleCCH,
	}

	// Role yang bertugas me-review dokumen (bukan pengunggah).
	ReviewerRoles = []string{
		RoleAmoRegion,
		RoleMO,
		RoleCCH,
	}

	// Akun dengan role ini tidak boleh dihapus.
	ProtectedRoles = []string{
		RoleMO,
		RoleCCH,
	}

	AmoAreaOnly = []string{
		RoleAmoArea,
	}

	AmoRegionOnly = []string{
		RoleAmoRegion,
	}

	MOOnly = []string{
		RoleMO,
	}

	CCHOnly = []string{
		RoleCCH,
	}
)

// IsValidRole memeriksa apakah role termasuk yang dikenal sistem.
func IsValidRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}

// IsProtectedRole: akun MO/CCH dilindungi dari penghapusan.
func IsProtectedRole(role string) bool {
	for _, r := range ProtectedRoles {
		if r == role {
			return true
		}
	}
	return false
}
