package domain

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Source is a citation snippet the backend attributes an answer to.
// It is only ever attached to a bot message.
type Source struct {
	Content string `json:"content,omitempty"`
	Index   int    `json:"index,omitempty"`
}

// Label returns a displayable label for the source. When the backend
// sends no snippet, the positional fallback is used (pos is 1-based).
func (s *Source) Label(pos int) string {
	if s.Content != "" {
		return s.Content
	}
	n := s.Index
	if n == 0 {
		n = pos
	}
	return "Source " + strconv.Itoa(n)
}

// Message is one entry in a chat transcript. The transcript is
// append-only: messages are never edited after creation, and ordering
// is insertion order.
//
// Message is a closed tagged variant: only UserMessage and BotMessage
// implement it, so rendering can switch exhaustively and source display
// is only reachable for bot messages.
type Message interface {
	// MessageID is the unique client-generated identifier.
	MessageID() string

	// Text is the message content. It may contain the fixed lightweight
	// markup markers understood by ParseMarkup.
	Text() string

	// SentAt is the client-side creation time.
	SentAt() time.Time

	// sealed prevents implementations outside this package.
	sealed()
}

// UserMessage is a message typed by the user.
type UserMessage struct {
	ID        string
	Content   string
	Timestamp time.Time
}

// BotMessage is a reply from the backend, optionally with citations.
type BotMessage struct {
	ID        string
	Content   string
	Sources   []Source
	Timestamp time.Time
}

// NewUserMessage creates a user message with a fresh ID.
func NewUserMessage(content string) UserMessage {
	return UserMessage{
		ID:        uuid.NewString(),
		Content:   content,
		Timestamp: time.Now(),
	}
}

// NewBotMessage creates a bot message with a fresh ID.
func NewBotMessage(content string, sources []Source) BotMessage {
	return BotMessage{
		ID:        uuid.NewString(),
		Content:   content,
		Sources:   sources,
		Timestamp: time.Now(),
	}
}

func (m UserMessage) MessageID() string { return m.ID }
func (m UserMessage) Text() string      { return m.Content }
func (m UserMessage) SentAt() time.Time { return m.Timestamp }
func (m UserMessage) sealed()           {}

func (m BotMessage) MessageID() string { return m.ID }
func (m BotMessage) Text() string      { return m.Content }
func (m BotMessage) SentAt() time.Time { return m.Timestamp }
func (m BotMessage) sealed()           {}

// ChatRequest is the payload for the chat endpoint.
type ChatRequest struct {
	Message        string `json:"message"`
	Domain         string `json:"domain"`
	ConversationID string `json:"conversation_id,omitempty"`
}

// ChatResponse is the backend's answer to a chat request.
type ChatResponse struct {
	Response string   `json:"response"`
	Sources  []Source `json:"sources"`
	Domain   string   `json:"domain"`
}

// Welcome is the backend's global greeting payload.
type Welcome struct {
	Message          string   `json:"message"`
	AvailableDomains []string `json:"available_domains"`
	Suggestions      []string `json:"suggestions"`
}

// HistoryRecord is one persisted transcript entry. Exchanges are stored
// locally for the history command; they are never synced back.
type HistoryRecord struct {
	ID        string
	Domain    string
	Role      string // "user" or "bot"
	Content   string
	CreatedAt time.Time
}

// History roles.
const (
	RoleUser = "user"
	RoleBot  = "bot"
)
