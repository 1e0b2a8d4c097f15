package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/kiosklabs/ragchat-cli/internal/core/domain"
	"github.com/kiosklabs/ragchat-cli/internal/core/ports/driven"
	"github.com/kiosklabs/ragchat-cli/internal/core/ports/driving"
)

// Ensure Chat implements the interface.
var _ driving.ChatService = (*Chat)(nil)

// Chat implements driving.ChatService on top of the backend port.
// Completed exchanges are appended to the local history store when one
// is configured; history failures are logged, never surfaced, so a
// broken local database cannot break a working conversation.
type Chat struct {
	backend driven.Backend
	history driven.HistoryStore
	log     zerolog.Logger
}

// NewChat creates a chat service. history may be nil to disable local
// transcript recording.
func NewChat(backend driven.Backend, history driven.HistoryStore, log zerolog.Logger) *Chat {
	return &Chat{
		backend: backend,
		history: history,
		log:     log,
	}
}

// Send submits a user message and returns the bot reply. Empty or
// whitespace-only text fails with domain.ErrEmptyMessage before any
// network call.
func (c *Chat) Send(ctx context.Context, domainID, text string) (*domain.BotMessage, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, domain.ErrEmptyMessage
	}

	resp, err := c.backend.SendMessage(ctx, domain.ChatRequest{
		Message: text,
		Domain:  domainID,
	})
	if err != nil {
		return nil, err
	}

	reply := domain.NewBotMessage(resp.Response, resp.Sources)
	c.record(ctx, domainID, domain.RoleUser, text)
	c.record(ctx, domainID, domain.RoleBot, reply.Content)
	return &reply, nil
}

// record appends one history entry, best effort.
func (c *Chat) record(ctx context.Context, domainID, role, content string) {
	if c.history == nil {
		return
	}
	rec := domain.HistoryRecord{
		Domain:  domainID,
		Role:    role,
		Content: content,
	}
	if err := c.history.Append(ctx, rec); err != nil {
		c.log.Warn().Err(err).Str("domain", domainID).Msg("recording chat history failed")
	}
}

// Suggestions fetches suggested questions for a domain.
func (c *Chat) Suggestions(ctx context.Context, domainID string) ([]string, error) {
	return c.backend.Suggestions(ctx, domainID)
}

// Domains lists the domains available for chat.
func (c *Chat) Domains(ctx context.Context) ([]domain.Store, error) {
	return c.backend.FetchDomains(ctx)
}

// Welcome fetches the global greeting payload.
func (c *Chat) Welcome(ctx context.Context) (*domain.Welcome, error) {
	return c.backend.Welcome(ctx)
}

// History returns locally recorded exchanges, oldest first.
func (c *Chat) History(ctx context.Context, domainID string, limit int) ([]domain.HistoryRecord, error) {
	if c.history == nil {
		return nil, nil
	}
	return c.history.Recent(ctx, domainID, limit)
}
