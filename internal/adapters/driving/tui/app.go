package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kiosklabs/ragchat-cli/internal/adapters/driving/tui/keymap"
	"github.com/kiosklabs/ragchat-cli/internal/adapters/driving/tui/messages"
	"github.com/kiosklabs/ragchat-cli/internal/adapters/driving/tui/styles"
	"github.com/kiosklabs/ragchat-cli/internal/adapters/driving/tui/views/admin"
	"github.com/kiosklabs/ragchat-cli/internal/adapters/driving/tui/views/chat"
	"github.com/kiosklabs/ragchat-cli/internal/adapters/driving/tui/views/domains"
	"github.com/kiosklabs/ragchat-cli/internal/adapters/driving/tui/views/landing"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles for the active theme.
	styles *styles.Styles

	// keymap holds the keybindings.
	keymap *keymap.KeyMap

	// landingView is the entry screen.
	landingView *landing.View

	// domainsView is the knowledge domain picker.
	domainsView *domains.View

	// chatView is the conversation view.
	chatView *chat.View

	// adminView is the store and document management view.
	adminView *admin.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.NewStyles(styles.ThemeFor(ports.Theme.Dark()))
	km := keymap.DefaultKeyMap()

	return &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		keymap:      km,
		landingView: landing.NewView(s),
		domainsView: domains.NewView(s, ports.Chat),
		chatView:    chat.NewView(s, km, ports.Chat),
		adminView:   admin.NewView(s, km, ports.Admin),
		currentView: messages.ViewLanding,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.domainsView.WithContext(ctx)
	a.chatView.WithContext(ctx)
	a.adminView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("ragchat"),
	)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.landingView.SetDimensions(msg.Width, msg.Height)
		a.domainsView.SetDimensions(msg.Width, msg.Height)
		a.chatView.SetDimensions(msg.Width, msg.Height)
		a.adminView.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		// Global theme toggle
		if keymap.Matches(msg.String(), a.keymap.ToggleTheme) {
			return a, a.toggleTheme()
		}

		return a.forward(msg)

	case messages.ViewChanged:
		a.currentView = msg.View
		switch msg.View {
		case messages.ViewDomains:
			return a, a.domainsView.Init()
		case messages.ViewAdmin:
			return a, a.adminView.Init()
		case messages.ViewChat:
			return a, a.chatView.Init()
		case messages.ViewLanding:
			return a, a.landingView.Init()
		}
		return a, nil

	case messages.DomainSelected:
		a.currentView = messages.ViewChat
		return a, tea.Batch(a.chatView.Init(), a.chatView.SetDomain(msg.Domain, msg.DisplayName))

	case messages.ThemeToggled:
		a.applyTheme(msg.Dark)
		return a, nil

	case messages.ErrorOccurred:
		a.err = msg.Err
		return a.forward(msg)

	case messages.Quit:
		return a, tea.Quit
	}

	return a.forward(msg)
}

// forward routes a message to the active view.
func (a *App) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.currentView {
	case messages.ViewLanding:
		a.landingView, cmd = a.landingView.Update(msg)
	case messages.ViewDomains:
		a.domainsView, cmd = a.domainsView.Update(msg)
	case messages.ViewChat:
		a.chatView, cmd = a.chatView.Update(msg)
	case messages.ViewAdmin:
		a.adminView, cmd = a.adminView.Update(msg)
	}
	return a, cmd
}

// toggleTheme flips the persisted preference and reports the result.
func (a *App) toggleTheme() tea.Cmd {
	return func() tea.Msg {
		_, err := a.ports.Theme.Toggle()
		return messages.ThemeToggled{Dark: a.ports.Theme.Dark(), Err: err}
	}
}

// applyTheme rebuilds styles for the given mode and pushes them to
// every view.
func (a *App) applyTheme(dark bool) {
	a.styles = styles.NewStyles(styles.ThemeFor(dark))
	a.landingView.SetStyles(a.styles)
	a.domainsView.SetStyles(a.styles)
	a.chatView.SetStyles(a.styles)
	a.adminView.SetStyles(a.styles)
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewLanding:
		return a.landingView.View()
	case messages.ViewDomains:
		return a.domainsView.View()
	case messages.ViewChat:
		return a.chatView.View()
	case messages.ViewAdmin:
		return a.adminView.View()
	default:
		return a.landingView.View()
	}
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Styles returns the active styles.
func (a *App) Styles() *styles.Styles {
	return a.styles
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.landingView.SetDimensions(width, height)
	a.domainsView.SetDimensions(width, height)
	a.chatView.SetDimensions(width, height)
	a.adminView.SetDimensions(width, height)
}
