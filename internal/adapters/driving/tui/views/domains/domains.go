// Package domains provides the knowledge domain picker view for the TUI.
package domains

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kiosklabs/ragchat-cli/internal/adapters/driving/tui/messages"
	"github.com/kiosklabs/ragchat-cli/internal/adapters/driving/tui/styles"
	"github.com/kiosklabs/ragchat-cli/internal/core/domain"
	"github.com/kiosklabs/ragchat-cli/internal/core/ports/driving"
)

// View represents the domain picker.
type View struct {
	styles *styles.Styles

	chatService driving.ChatService
	ctx         context.Context

	stores   []domain.Store
	selected int
	loading  bool
	err      error

	width  int
	height int
	ready  bool
}

// NewView creates a new domain picker view.
func NewView(s *styles.Styles, chatService driving.ChatService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles:      s,
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

// Init initialises the view and loads the domain list.
func (v *View) Init() tea.Cmd {
	v.loading = true
	v.err = nil
	return v.loadDomains()
}

// loadDomains fetches the available domains.
func (v *View) loadDomains() tea.Cmd {
	return func() tea.Msg {
		stores, err := v.chatService.Domains(v.ctx)
		if err != nil {
			return messages.StoresLoaded{Err: err}
		}
		return messages.StoresLoaded{Stores: stores}
	}
}

// Update handles messages for the domain picker.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.StoresLoaded:
		v.loading = false
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.err = nil
		v.stores = msg.Stores
		if v.selected >= len(v.stores) {
			v.selected = 0
		}
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}

	return v, nil
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if msg.Type == tea.KeyEsc {
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewLanding}
		}
	}

	switch msg.String() {
	case "up", "k":
		if v.selected > 0 {
			v.selected--
		}
		return v, nil

	case "down", "j":
		if v.selected < len(v.stores)-1 {
			v.selected++
		}
		return v, nil

	case "r":
		v.loading = true
		return v, v.loadDomains()

	case "enter":
		if v.selected < len(v.stores) {
			picked := v.stores[v.selected]
			return v, func() tea.Msg {
				return messages.DomainSelected{
					Domain:      picked.Domain,
					DisplayName: picked.Name(),
				}
			}
		}
		return v, nil
	}

	return v, nil
}

// View renders the domain picker.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Choose a topic"))
	b.WriteString("\n\n")

	switch {
	case v.loading:
		b.WriteString(v.styles.Muted.Render("Loading topics..."))
		b.WriteString("\n")

	case v.err != nil:
		b.WriteString(v.styles.Error.Render("Error: " + v.err.Error()))
		b.WriteString("\n\n")
		b.WriteString(v.styles.Help.Render("[r] Retry  [esc] Back"))
		return lipgloss.NewStyle().Padding(1, 2).Render(b.String())

	case len(v.stores) == 0:
		b.WriteString(v.styles.Muted.Render("No topics available yet."))
		b.WriteString("\n")

	default:
		for i, store := range v.stores {
			cursor := "  "
			style := v.styles.Normal
			if i == v.selected {
				cursor = "> "
				style = v.styles.Subtitle
			}
			b.WriteString(cursor + style.Render(store.Name()))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[j/k] Navigate  [Enter] Start chat  [r] Refresh  [esc] Back"))

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// SetStyles swaps the styling, used when the theme flips.
func (v *View) SetStyles(s *styles.Styles) {
	v.styles = s
}

// Stores returns the loaded store list.
func (v *View) Stores() []domain.Store {
	return v.stores
}

// Selected returns the currently selected index.
func (v *View) Selected() int {
	return v.selected
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}
