package output

// T renders localized, human-readable API messages.
type T interface {
	T(locale, key string, data map[string]any) string
}
