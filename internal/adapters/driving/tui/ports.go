// Package tui provides an interactive terminal user interface for ragchat.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/kiosklabs/ragchat-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Chat drives conversations against the backend.
	Chat driving.ChatService

	// Admin manages stores and documents.
	Admin driving.AdminService

	// Theme owns the dark/light preference.
	Theme driving.ThemeService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(chat driving.ChatService, admin driving.AdminService, theme driving.ThemeService) *Ports {
	return &Ports{
		Chat:  chat,
		Admin: admin,
		Theme: theme,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p.Chat == nil {
		return ErrMissingChatService
	}
	if p.Admin == nil {
		return ErrMissingAdminService
	}
	if p.Theme == nil {
		return ErrMissingThemeService
	}
	return nil
}
