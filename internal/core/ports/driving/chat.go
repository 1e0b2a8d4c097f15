package driving

import (
	"context"

	"github.com/kiosklabs/ragchat-cli/internal/core/domain"
)

// ChatService drives a chat conversation against the backend.
type ChatService interface {
	// Send submits a user message scoped to a domain and returns the bot
	// reply with its citations. The text is trimmed first; an empty
	// result fails with domain.ErrEmptyMessage before any network call.
	Send(ctx context.Context, domainID, text string) (*domain.BotMessage, error)

	// Suggestions fetches suggested questions for a domain.
	Suggestions(ctx context.Context, domainID string) ([]string, error)

	// Domains lists the domains available for chat.
	Domains(ctx context.Context) ([]domain.Store, error)

	// Welcome fetches the global greeting payload.
	Welcome(ctx context.Context) (*domain.Welcome, error)

	// History returns locally recorded exchanges, oldest first.
	History(ctx context.Context, domainID string, limit int) ([]domain.HistoryRecord, error)
}
