package driven

// PrefStore persists small user preferences across sessions.
// Implementations handle storage (e.g. a TOML file) and must persist
// on every Set.
type PrefStore interface {
	// GetString retrieves a string preference.
	// Returns empty string if the key doesn't exist or isn't a string.
	GetString(key string) string

	// Set stores a preference value. The value is persisted immediately.
	Set(key string, value any) error

	// Load reads preferences from storage.
	Load() error

	// Path returns the backing file path.
	Path() string
}
