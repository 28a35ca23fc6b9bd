package output

// T is the i18n contract for user-facing messages (API errors, warnings,
// conflict reasons, Discord replies).
type T interface {
	// T renders key for locale. data fills template placeholders and may be nil.
	// Unknown keys come back unchanged.
	T(locale, key string, data map[string]any) string
}
