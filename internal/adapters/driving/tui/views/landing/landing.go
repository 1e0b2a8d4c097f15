// Package landing provides the entry screen for the TUI.
package landing

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kiosklabs/ragchat-cli/internal/adapters/driving/tui/messages"
	"github.com/kiosklabs/ragchat-cli/internal/adapters/driving/tui/styles"
)

// Item represents a single landing option.
type Item struct {
	Label string
	Desc  string
	View  messages.ViewType
	Quit  bool // If true, selecting this item quits the app
}

// View represents the landing screen.
type View struct {
	styles   *styles.Styles
	items    []Item
	selected int
	width    int
	height   int
	ready    bool
}

// NewView creates a new landing view.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles: s,
		items: []Item{
			{Label: "Chat", Desc: "Ask questions about our services", View: messages.ViewDomains},
			{Label: "Admin", Desc: "Manage knowledge stores and documents", View: messages.ViewAdmin},
			{Label: "Quit", Quit: true},
		},
		selected: 0,
		width:    80,
		height:   24,
	}
}

// Init initialises the landing view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the landing view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.selected > 0 {
				v.selected--
			}
			return v, nil

		case "down", "j":
			if v.selected < len(v.items)-1 {
				v.selected++
			}
			return v, nil

		case "enter":
			item := v.items[v.selected]
			if item.Quit {
				return v, tea.Quit
			}
			return v, func() tea.Msg {
				return messages.ViewChanged{View: item.View}
			}

		case "q":
			return v, tea.Quit
		}
	}

	return v, nil
}

// View renders the landing screen.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder

	title := v.styles.Title.Render("RagChat")
	b.WriteString(title)
	b.WriteString("\n\n")

	subtitle := v.styles.Muted.Render("Your assistant for questions, hours, locations and services")
	b.WriteString(subtitle)
	b.WriteString("\n\n")

	for i, item := range v.items {
		cursor := "  "
		style := v.styles.Normal

		if i == v.selected {
			cursor = "> "
			style = v.styles.Subtitle
		}

		line := cursor + style.Render(item.Label)
		if item.Desc != "" {
			line += "  " + v.styles.Muted.Render(item.Desc)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	footer := v.styles.Help.Render("[j/k] Navigate  [Enter] Select  [ctrl+t] Theme  [q] Quit")
	b.WriteString(footer)

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

// Selected returns the currently selected index.
func (v *View) Selected() int {
	return v.selected
}
