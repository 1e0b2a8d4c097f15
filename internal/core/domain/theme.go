package domain

// ThemePreference is the persisted dark/light choice.
type ThemePreference string

// Persisted theme values. The preference is stored under the fixed key
// "theme" and survives across sessions.
const (
	ThemeDark  ThemePreference = "dark"
	ThemeLight ThemePreference = "light"
)

// ThemeKey is the preference-store key for the theme choice.
const ThemeKey = "theme"

// ParseThemePreference maps a stored value back to a preference.
// Anything unrecognised reports ok=false so callers can fall back to
// the platform signal.
func ParseThemePreference(value string) (pref ThemePreference, ok bool) {
	switch ThemePreference(value) {
	case ThemeDark:
		return ThemeDark, true
	case ThemeLight:
		return ThemeLight, true
	default:
		return "", false
	}
}
