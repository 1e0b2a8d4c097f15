package services

import (
	"github.com/kiosklabs/ragchat-cli/internal/core/domain"
	"github.com/kiosklabs/ragchat-cli/internal/core/ports/driven"
	"github.com/kiosklabs/ragchat-cli/internal/core/ports/driving"
)

// Ensure Theme implements the interface.
var _ driving.ThemeService = (*Theme)(nil)

// Theme implements driving.ThemeService over the preference store.
type Theme struct {
	prefs   driven.PrefStore
	current domain.ThemePreference
}

// NewTheme creates the theme service and resolves the initial
// preference: the stored value wins, else darkTerminal (the platform
// background signal), else light.
func NewTheme(prefs driven.PrefStore, darkTerminal bool) *Theme {
	current := domain.ThemeLight
	if darkTerminal {
		current = domain.ThemeDark
	}
	if prefs != nil {
		if stored, ok := domain.ParseThemePreference(prefs.GetString(domain.ThemeKey)); ok {
			current = stored
		}
	}
	return &Theme{prefs: prefs, current: current}
}

// Preference returns the current theme.
func (t *Theme) Preference() domain.ThemePreference {
	return t.current
}

// Dark reports whether the dark theme is active.
func (t *Theme) Dark() bool {
	return t.current == domain.ThemeDark
}

// Toggle flips the preference and persists it. The in-memory state
// flips even if persisting fails, so the session stays consistent.
func (t *Theme) Toggle() (domain.ThemePreference, error) {
	if t.current == domain.ThemeDark {
		t.current = domain.ThemeLight
	} else {
		t.current = domain.ThemeDark
	}
	if t.prefs == nil {
		return t.current, nil
	}
	return t.current, t.prefs.Set(domain.ThemeKey, string(t.current))
}
