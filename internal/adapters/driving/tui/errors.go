package tui

import "errors"

// ErrMissingChatService is returned when the chat service is not provided.
var ErrMissingChatService = errors.New("tui: chat service is required")

// ErrMissingAdminService is returned when the admin service is not provided.
var ErrMissingAdminService = errors.New("tui: admin service is required")

// ErrMissingThemeService is returned when the theme service is not provided.
var ErrMissingThemeService = errors.New("tui: theme service is required")
