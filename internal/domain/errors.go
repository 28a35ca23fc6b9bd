package domain

import "errors"

// Domain errors.
var (
	ErrScheduleNotFound     = errors.New("jadwal tidak ditemukan")
	ErrCourseNotFound       = errors.New("mata kuliah tidak ditemukan")
	ErrRoomNotFound         = errors.New("ruangan tidak ditemukan")
	ErrUserNotFound         = errors.New("pengguna tidak ditemukan")
	ErrInvalidTimeRange     = errors.New("jam mulai harus sebelum jam selesai")
	ErrInvalidTime          = errors.New("format jam tidak valid (HH:MM)")
	ErrInvalidDay           = errors.New("hari tidak valid")
	ErrInvalidGenerateMode  = errors.New("mode generate tidak valid")
	ErrUnresolvedConflicts  = errors.New("masih ada jadwal yang bentrok")
	ErrDuplicateCode        = errors.New("kode sudah digunakan")
	ErrEmailTaken           = errors.New("email sudah terdaftar")
	ErrInvalidCredentials   = errors.New("email atau kata sandi salah")
	ErrInvalidRole          = errors.New("peran tidak valid")
	ErrUnauthorized         = errors.New("token tidak valid atau kedaluwarsa")
	ErrForbidden            = errors.New("akses ditolak")
	ErrInvalidSlotCalendar  = errors.New("kalender slot tidak valid")
	ErrMissingRequiredField = errors.New("field wajib kosong")
	ErrUnsupportedFormat    = errors.New("format ekspor tidak didukung")
)

var errorCodes = []struct {
	err  error
	code string
}{
	{ErrScheduleNotFound, "schedule_not_found"},
	{ErrCourseNotFound, "course_not_found"},
	{ErrRoomNotFound, "room_not_found"},
	{ErrUserNotFound, "user_not_found"},
	{ErrInvalidTimeRange, "invalid_time_range"},
	{ErrInvalidTime, "invalid_time"},
	{ErrInvalidDay, "invalid_day"},
	{ErrInvalidGenerateMode, "invalid_generate_mode"},
	{ErrUnresolvedConflicts, "unresolved_conflicts"},
	{ErrDuplicateCode, "duplicate_code"},
	{ErrEmailTaken, "email_taken"},
	{ErrInvalidCredentials, "invalid_credentials"},
	{ErrInvalidRole, "invalid_role"},
	{ErrUnauthorized, "unauthorized"},
	{ErrForbidden, "forbidden"},
	{ErrInvalidSlotCalendar, "invalid_slot_calendar"},
	{ErrMissingRequiredField, "missing_required_field"},
	{ErrUnsupportedFormat, "unsupported_format"},
}

// Code returns the stable code of the domain error wrapped by err, or "" when
// err is not a domain error.
func Code(err error) string {
	if err == nil {
		return ""
	}
	for _, e := range errorCodes {
		if errors.Is(err, e.err) {
			return e.code
		}
	}
	return ""
}
