// Package chat provides the conversation view for the TUI.
package chat

import (
	"context"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kiosklabs/ragchat-cli/internal/adapters/driving/tui/components/input"
	"github.com/kiosklabs/ragchat-cli/internal/adapters/driving/tui/keymap"
	"github.com/kiosklabs/ragchat-cli/internal/adapters/driving/tui/messages"
	"github.com/kiosklabs/ragchat-cli/internal/adapters/driving/tui/styles"
	"github.com/kiosklabs/ragchat-cli/internal/core/domain"
	"github.com/kiosklabs/ragchat-cli/internal/core/ports/driving"
)

// apologyText is appended as a bot message when a send fails, so the
// transcript itself carries the failure instead of a separate error
// panel. The typed message stays visible above it.
const apologyText = "Sorry, I ran into a problem answering that. Please try again in a moment."

// View represents the chat conversation view.
type View struct {
	styles *styles.Styles
	keymap *keymap.KeyMap
	input  *input.MessageInput

	chatService driving.ChatService
	ctx         context.Context

	// activeDomain scopes the conversation. Replies tagged with any
	// other domain are stale and get dropped.
	activeDomain string

	transcript  []domain.Message
	suggestions []string
	awaiting    bool
	err         error

	width  int
	height int
	ready  bool
}

// NewView creates a new chat view.
func NewView(s *styles.Styles, km *keymap.KeyMap, chatService driving.ChatService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:      s,
		keymap:      km,
		input:       input.NewMessageInput(s, "Type your question..."),
		chatService: chatService,
		ctx:         context.Background(),
		width:       80,
		height:      24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.input.Init()
}

// SetDomain starts a fresh conversation scoped to the given domain.
// The greeting is composed locally; the only network call on entry is
// the suggestion fetch. Any reply still in flight for the previous
// domain will be discarded when it lands.
func (v *View) SetDomain(domainID, displayName string) tea.Cmd {
	v.activeDomain = domainID
	v.suggestions = nil
	v.awaiting = false
	v.err = nil
	v.input.Reset()

	name := displayName
	if name == "" {
		name = domainID
	}
	v.transcript = []domain.Message{domain.NewBotMessage(greetingFor(name), nil)}

	return tea.Batch(v.input.Focus(), v.loadSuggestions(domainID))
}

// greetingFor builds the synthetic welcome line for a domain.
func greetingFor(name string) string {
	return "Welcome! I'm your assistant for **" + name + "**.\n\n" +
		"Ask me anything about this topic, or press a number to pick a suggested question."
}

// loadSuggestions fetches follow-up prompts for the domain.
func (v *View) loadSuggestions(domainID string) tea.Cmd {
	return func() tea.Msg {
		suggestions, err := v.chatService.Suggestions(v.ctx, domainID)
		return messages.SuggestionsLoaded{Domain: domainID, Suggestions: suggestions, Err: err}
	}
}

// send submits text to the backend, tagged with the active domain.
func (v *View) send(domainID, text string) tea.Cmd {
	return func() tea.Msg {
		reply, err := v.chatService.Send(v.ctx, domainID, text)
		if err != nil {
			return messages.ChatCompleted{Domain: domainID, Err: err}
		}
		return messages.ChatCompleted{
			Domain: domainID,
			Response: domain.ChatResponse{
				Response: reply.Content,
				Sources:  reply.Sources,
				Domain:   domainID,
			},
		}
	}
}

// Update handles messages for the chat view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.ChatCompleted:
		if msg.Domain != v.activeDomain {
			// Stale reply from a conversation the user already left.
			return v, nil
		}
		v.awaiting = false
		if msg.Err != nil {
			v.err = msg.Err
			v.transcript = append(v.transcript, domain.NewBotMessage(apologyText, nil))
			return v, nil
		}
		v.err = nil
		v.transcript = append(v.transcript,
			domain.NewBotMessage(msg.Response.Response, msg.Response.Sources))
		return v, v.loadSuggestions(msg.Domain)

	case messages.SuggestionsLoaded:
		if msg.Domain != v.activeDomain || msg.Err != nil {
			return v, nil
		}
		v.suggestions = msg.Suggestions
		return v, nil
	}

	// Forward to input component
	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if keymap.Matches(msg.String(), v.keymap.Back) {
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewDomains}
		}
	}

	if keymap.Matches(msg.String(), v.keymap.Send) {
		return v.submit(v.input.Value())
	}

	// Digit keys pick a suggestion when the input is empty, so typing
	// "2024" into a question still works.
	if v.input.Value() == "" && len(v.suggestions) > 0 {
		if n, err := strconv.Atoi(msg.String()); err == nil && n >= 1 && n <= len(v.suggestions) {
			return v.submit(v.suggestions[n-1])
		}
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// submit appends the user message optimistically and fires the request.
// Blank input is a no-op; a send already in flight blocks another.
func (v *View) submit(text string) (*View, tea.Cmd) {
	text = strings.TrimSpace(text)
	if text == "" || v.awaiting {
		return v, nil
	}

	v.transcript = append(v.transcript, domain.NewUserMessage(text))
	v.suggestions = nil
	v.awaiting = true
	v.err = nil
	v.input.Reset()

	return v, v.send(v.activeDomain, text)
}

// View renders the chat view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, len(v.transcript)*2+8)

	header := v.styles.Title.Render("Chat") + "  " + v.styles.Muted.Render(v.activeDomain)
	sections = append(sections, header, "")

	for _, m := range v.transcript {
		sections = append(sections, v.renderMessage(m), "")
	}

	if v.awaiting {
		sections = append(sections, v.styles.Muted.Render("Thinking..."), "")
	}

	if len(v.suggestions) > 0 && !v.awaiting {
		sections = append(sections, v.styles.Muted.Render("Try asking:"))
		for i, s := range v.suggestions {
			label := "  " + strconv.Itoa(i+1) + ". "
			sections = append(sections, label+v.styles.Suggestion.Render(s))
		}
		sections = append(sections, "")
	}

	sections = append(sections, v.input.View(), "")
	sections = append(sections, v.styles.Help.Render(
		"[1-9] suggestion  "+keymap.HelpLine(v.keymap.ChatHelp())))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderMessage renders one transcript entry with its markup applied.
func (v *View) renderMessage(m domain.Message) string {
	switch m := m.(type) {
	case domain.UserMessage:
		return v.styles.Subtitle.Render("You  ") + "\n" +
			renderMarkup(m.Content, v.styles.UserMessage)

	case domain.BotMessage:
		out := v.styles.Title.Render("Bot  ") + "\n" +
			renderMarkup(m.Content, v.styles.BotMessage)
		if len(m.Sources) > 0 {
			labels := make([]string, 0, len(m.Sources))
			for i := range m.Sources {
				labels = append(labels, m.Sources[i].Label(i+1))
			}
			out += "\n" + v.styles.SourceLabel.Render("Sources: "+strings.Join(labels, ", "))
		}
		return out
	}
	return ""
}

// renderMarkup renders message text, honouring the bold and italic
// markers and preserving explicit line breaks.
func renderMarkup(text string, base lipgloss.Style) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		var b strings.Builder
		for _, span := range domain.ParseMarkup(line) {
			style := base
			if span.Bold {
				style = style.Bold(true)
			}
			if span.Italic {
				style = style.Italic(true)
			}
			b.WriteString(style.Render(span.Text))
		}
		out = append(out, b.String())
	}
	return strings.Join(out, "\n")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.input.SetWidth(width)
}

// SetStyles swaps the styling, used when the theme flips.
func (v *View) SetStyles(s *styles.Styles) {
	v.styles = s
	v.input.SetStyles(s)
}

// Domain returns the active conversation domain.
func (v *View) Domain() string {
	return v.activeDomain
}

// Transcript returns the conversation so far.
func (v *View) Transcript() []domain.Message {
	return v.transcript
}

// Suggestions returns the currently offered follow-up prompts.
func (v *View) Suggestions() []string {
	return v.suggestions
}

// Awaiting reports whether a reply is in flight.
func (v *View) Awaiting() bool {
	return v.awaiting
}

// Err returns the last send error, if any.
func (v *View) Err() error {
	return v.err
}

// Input returns the current input value.
func (v *View) Input() string {
	return v.input.Value()
}

// SetInput sets the input value.
func (v *View) SetInput(value string) {
	v.input.SetValue(value)
}
