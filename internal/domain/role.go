package domain

// User roles.
const (
	RoleAdmin    = "admin"
	RoleLecturer = "dosen"
	RoleStudent  = "mahasiswa"
)

func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleLecturer, RoleStudent:
		return true
	}
	return false
}

// Conflict categories, derived from what overlapping events share.
const (
	ConflictRoom       = "room"
	ConflictInstructor = "instructor"
	ConflictBoth       = "both"
)
