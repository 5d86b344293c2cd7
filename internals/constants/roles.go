package constants

// Role yang dikenal aplikasi
const (
	RoleOwner   = "owner"
	RoleAdmin   = "admin"
	RolePanitia = "panitia" // pengurus acara
	RoleUser    = "user"
)

// AdminAndAbove: role yang boleh mengelola acara & setlist
var AdminAndAbove = []string{RoleAdmin, RolePanitia, RoleOwner}

// RoleErrorAdmin membuat pesan 403 yang seragam
func RoleErrorAdmin(aksi string) string {
	return "❌ Hanya admin/panitia/owner yang boleh " + aksi
}
