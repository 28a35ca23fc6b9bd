package discord

import (
	"jadwal/internal/domain"
	"jadwal/internal/ports/output"
)

// DomainErrorMessage resolves err to a user-facing message through t.
// Errors without a domain code get the generic internal message.
func DomainErrorMessage(t output.T, locale string, err error) string {
	if err == nil {
		return ""
	}
	if code := domain.Code(err); code != "" {
		return t.T(locale, "error."+code, nil)
	}
	return t.T(locale, "error.internal", nil)
}
