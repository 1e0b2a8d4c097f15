package driving

import "github.com/kiosklabs/ragchat-cli/internal/core/domain"

// ThemeService owns the dark/light preference. It is an explicit,
// explicitly-initialised object passed to views - never ambient global
// state. Initialisation resolves, in priority order: the stored
// preference, the terminal background signal, light.
type ThemeService interface {
	// Preference returns the current theme.
	Preference() domain.ThemePreference

	// Dark reports whether the dark theme is active.
	Dark() bool

	// Toggle flips the preference and persists it.
	Toggle() (domain.ThemePreference, error)
}
