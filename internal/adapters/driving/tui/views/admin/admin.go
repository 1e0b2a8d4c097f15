// Package admin provides the store and document management view for the TUI.
package admin

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kiosklabs/ragchat-cli/internal/adapters/driving/tui/keymap"
	"github.com/kiosklabs/ragchat-cli/internal/adapters/driving/tui/messages"
	"github.com/kiosklabs/ragchat-cli/internal/adapters/driving/tui/styles"
	"github.com/kiosklabs/ragchat-cli/internal/core/domain"
	"github.com/kiosklabs/ragchat-cli/internal/core/ports/driving"
)

// bannerTTL is how long a transient status banner stays on screen.
const bannerTTL = 5 * time.Second

// mode identifies which interaction layer is active.
type mode int

const (
	modeList mode = iota
	modeCreate
	modeUpload
	modeConfirm
)

// pane identifies which listing has focus in list mode.
type pane int

const (
	paneStores pane = iota
	paneDocuments
)

// confirmKind identifies which destructive action awaits confirmation.
type confirmKind int

const (
	confirmDeleteStore confirmKind = iota
	confirmDeleteDocument
	confirmResetAll
)

// banner is a transient status line. Generation guards against an
// expired timer for an old banner clearing a newer one.
type banner struct {
	text       string
	isError    bool
	generation int
}

// View represents the admin panel.
type View struct {
	styles *styles.Styles
	keymap *keymap.KeyMap

	adminService driving.AdminService
	ctx          context.Context

	mode  mode
	focus pane

	stores        []domain.Store
	storeSelected int
	documents     []domain.DocumentInfo
	docSelected   int
	loading       bool
	busy          bool
	err           error

	banner banner

	// Create form inputs. Values survive a failed submit so the user
	// can correct instead of retyping.
	nameInput textinput.Model
	descInput textinput.Model
	formFocus int

	// Upload form input, holding one or more paths.
	pathInput textinput.Model

	confirm       confirmKind
	confirmTarget string

	width  int
	height int
	ready  bool
}

// NewView creates a new admin view.
func NewView(s *styles.Styles, km *keymap.KeyMap, adminService driving.AdminService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	name := textinput.New()
	name.Placeholder = "store name"
	name.CharLimit = 64

	desc := textinput.New()
	desc.Placeholder = "description (optional)"
	desc.CharLimit = 256

	path := textinput.New()
	path.Placeholder = "path/to/file.pdf (separate multiple with spaces)"
	path.CharLimit = 1024

	return &View{
		styles:       s,
		keymap:       km,
		adminService: adminService,
		ctx:          context.Background(),
		nameInput:    name,
		descInput:    desc,
		pathInput:    path,
		width:        80,
		height:       24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view and loads the store list.
func (v *View) Init() tea.Cmd {
	v.loading = true
	v.err = nil
	return v.loadStores()
}

// SelectedStore returns the store under the cursor, or nil.
func (v *View) SelectedStore() *domain.Store {
	if v.storeSelected < 0 || v.storeSelected >= len(v.stores) {
		return nil
	}
	return &v.stores[v.storeSelected]
}

// SelectedDocument returns the document under the cursor, or nil.
func (v *View) SelectedDocument() *domain.DocumentInfo {
	if v.docSelected < 0 || v.docSelected >= len(v.documents) {
		return nil
	}
	return &v.documents[v.docSelected]
}

func (v *View) loadStores() tea.Cmd {
	return func() tea.Msg {
		stores, err := v.adminService.Stores(v.ctx)
		return messages.StoresLoaded{Stores: stores, Err: err}
	}
}

func (v *View) loadDocuments(domainID string) tea.Cmd {
	return func() tea.Msg {
		docs, err := v.adminService.Documents(v.ctx, domainID)
		return messages.DocumentsLoaded{Domain: domainID, Documents: docs, Err: err}
	}
}

func (v *View) createStore(name, desc string) tea.Cmd {
	return func() tea.Msg {
		result, err := v.adminService.CreateStore(v.ctx, name, desc)
		if err != nil {
			return messages.StoreCreated{Err: err}
		}
		return messages.StoreCreated{Result: *result}
	}
}

func (v *View) deleteStore(name string) tea.Cmd {
	return func() tea.Msg {
		err := v.adminService.DeleteStore(v.ctx, name)
		return messages.StoreDeleted{Domain: name, Err: err}
	}
}

func (v *View) deleteDocument(domainID, name string) tea.Cmd {
	return func() tea.Msg {
		err := v.adminService.DeleteDocument(v.ctx, domainID, name)
		return messages.DocumentDeleted{Domain: domainID, Name: name, Err: err}
	}
}

// resetAll deletes every store and recreates the predefined set, as a
// single sequential operation.
func (v *View) resetAll() tea.Cmd {
	return func() tea.Msg {
		deleted, err := v.adminService.DeleteAllStores(v.ctx)
		if err != nil {
			return messages.StoresReset{Err: err}
		}
		created, err := v.adminService.CreatePredefinedStores(v.ctx)
		if err != nil {
			return messages.StoresReset{Deleted: *deleted, Err: err}
		}
		return messages.StoresReset{Deleted: *deleted, Created: *created}
	}
}

// seedPredefined creates the predefined set without touching the
// stores that already exist.
func (v *View) seedPredefined() tea.Cmd {
	return func() tea.Msg {
		created, err := v.adminService.CreatePredefinedStores(v.ctx)
		if err != nil {
			return messages.StoresSeeded{Err: err}
		}
		return messages.StoresSeeded{Created: *created}
	}
}

func (v *View) uploadAll(domainID string, paths []string) tea.Cmd {
	return func() tea.Msg {
		uploaded, err := v.adminService.UploadAll(v.ctx, domainID, paths)
		return messages.UploadFinished{Domain: domainID, Uploaded: uploaded, Err: err}
	}
}

// showBanner replaces the status banner and schedules its expiry.
func (v *View) showBanner(text string, isError bool) tea.Cmd {
	v.banner.generation++
	v.banner.text = text
	v.banner.isError = isError
	gen := v.banner.generation
	return tea.Tick(bannerTTL, func(time.Time) tea.Msg {
		return messages.BannerExpired{Generation: gen}
	})
}

// Update handles messages for the admin view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.StoresLoaded:
		return v.handleStoresLoaded(msg)

	case messages.DocumentsLoaded:
		v.loading = false
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		store := v.SelectedStore()
		if store == nil || store.Domain != msg.Domain {
			// Listing for a store no longer selected.
			return v, nil
		}
		v.documents = msg.Documents
		if v.docSelected >= len(v.documents) {
			v.docSelected = 0
		}
		return v, nil

	case messages.StoreCreated:
		v.busy = false
		if msg.Err != nil {
			// Keep the form open with its values for correction.
			return v, v.showBanner("Create failed: "+msg.Err.Error(), true)
		}
		v.mode = modeList
		v.nameInput.Reset()
		v.descInput.Reset()
		return v, tea.Batch(
			v.showBanner(fmt.Sprintf("Created store %q", msg.Result.Domain), false),
			v.loadStores(),
		)

	case messages.StoreDeleted:
		v.busy = false
		if msg.Err != nil {
			return v, v.showBanner("Delete failed: "+msg.Err.Error(), true)
		}
		return v, tea.Batch(
			v.showBanner(fmt.Sprintf("Deleted store %q", msg.Domain), false),
			v.loadStores(),
		)

	case messages.DocumentDeleted:
		v.busy = false
		if msg.Err != nil {
			return v, v.showBanner("Delete failed: "+msg.Err.Error(), true)
		}
		return v, tea.Batch(
			v.showBanner(fmt.Sprintf("Deleted %q", msg.Name), false),
			v.loadStores(),
			v.loadDocuments(msg.Domain),
		)

	case messages.StoresReset:
		v.busy = false
		if msg.Err != nil {
			return v, tea.Batch(
				v.showBanner("Reset failed: "+msg.Err.Error(), true),
				v.loadStores(),
			)
		}
		text := fmt.Sprintf("Reset complete: %d deleted, %d recreated",
			len(msg.Deleted.Deleted), len(msg.Created.Stores))
		return v, tea.Batch(v.showBanner(text, false), v.loadStores())

	case messages.StoresSeeded:
		v.busy = false
		if msg.Err != nil {
			return v, v.showBanner("Seed failed: "+msg.Err.Error(), true)
		}
		text := fmt.Sprintf("Created %d predefined store(s)", len(msg.Created.Stores))
		return v, tea.Batch(v.showBanner(text, false), v.loadStores())

	case messages.UploadFinished:
		// The path input resets on any completion, success or failure.
		v.busy = false
		v.mode = modeList
		v.pathInput.Reset()
		if msg.Err != nil {
			// Files before the failure are already in; report both.
			text := fmt.Sprintf("Upload stopped after %d file(s): %s",
				len(msg.Uploaded), msg.Err.Error())
			return v, tea.Batch(
				v.showBanner(text, true),
				v.loadStores(),
				v.loadDocuments(msg.Domain),
			)
		}
		return v, tea.Batch(
			v.showBanner(fmt.Sprintf("Uploaded %d file(s)", len(msg.Uploaded)), false),
			v.loadStores(),
			v.loadDocuments(msg.Domain),
		)

	case messages.BannerExpired:
		if msg.Generation == v.banner.generation {
			v.banner.text = ""
		}
		return v, nil
	}

	return v, nil
}

// handleStoresLoaded refreshes the store list, keeping the selection
// when possible and cascading a document reload for the selected store.
func (v *View) handleStoresLoaded(msg messages.StoresLoaded) (*View, tea.Cmd) {
	v.loading = false
	if msg.Err != nil {
		v.err = msg.Err
		return v, nil
	}
	v.err = nil

	prev := ""
	if s := v.SelectedStore(); s != nil {
		prev = s.Domain
	}
	v.stores = msg.Stores

	v.storeSelected = 0
	for i, s := range v.stores {
		if s.Domain == prev {
			v.storeSelected = i
			break
		}
	}

	v.documents = nil
	v.docSelected = 0
	if store := v.SelectedStore(); store != nil {
		return v, v.loadDocuments(store.Domain)
	}
	return v, nil
}

// handleKeyMsg processes keyboard input, dispatching on the active mode.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch v.mode {
	case modeCreate:
		return v.handleCreateKey(msg)
	case modeUpload:
		return v.handleUploadKey(msg)
	case modeConfirm:
		return v.handleConfirmKey(msg)
	case modeList:
	}

	key := msg.String()
	if keymap.Matches(key, v.keymap.Back) {
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewLanding}
		}
	}

	if v.busy {
		return v, nil
	}

	switch {
	case keymap.Matches(key, v.keymap.SwitchStore):
		if v.focus == paneStores {
			v.focus = paneDocuments
		} else {
			v.focus = paneStores
		}
		return v, nil

	case keymap.Matches(key, v.keymap.Up):
		return v.moveCursor(-1)

	case keymap.Matches(key, v.keymap.Down):
		return v.moveCursor(1)

	case keymap.Matches(key, v.keymap.Refresh):
		v.loading = true
		return v, v.loadStores()

	case keymap.Matches(key, v.keymap.NewStore):
		v.mode = modeCreate
		v.formFocus = 0
		return v, v.nameInput.Focus()

	case keymap.Matches(key, v.keymap.Upload):
		if v.SelectedStore() == nil {
			return v, v.showBanner("Select a store first", true)
		}
		v.mode = modeUpload
		return v, v.pathInput.Focus()

	case keymap.Matches(key, v.keymap.Delete):
		return v.startDelete()

	case keymap.Matches(key, v.keymap.Reset):
		v.mode = modeConfirm
		v.confirm = confirmResetAll
		v.confirmTarget = ""
		return v, nil

	case keymap.Matches(key, v.keymap.Seed):
		// Creating the predefined set deletes nothing, so it needs no
		// confirmation.
		v.busy = true
		return v, v.seedPredefined()
	}

	return v, nil
}

// moveCursor moves the selection in the focused pane. Changing the
// store selection reloads its documents.
func (v *View) moveCursor(delta int) (*View, tea.Cmd) {
	if v.focus == paneStores {
		next := v.storeSelected + delta
		if next < 0 || next >= len(v.stores) {
			return v, nil
		}
		v.storeSelected = next
		v.documents = nil
		v.docSelected = 0
		return v, v.loadDocuments(v.stores[next].Domain)
	}

	next := v.docSelected + delta
	if next < 0 || next >= len(v.documents) {
		return v, nil
	}
	v.docSelected = next
	return v, nil
}

// startDelete opens the confirmation overlay for the focused item.
func (v *View) startDelete() (*View, tea.Cmd) {
	if v.focus == paneStores {
		store := v.SelectedStore()
		if store == nil {
			return v, nil
		}
		v.mode = modeConfirm
		v.confirm = confirmDeleteStore
		v.confirmTarget = store.Domain
		return v, nil
	}

	doc := v.SelectedDocument()
	if doc == nil {
		return v, nil
	}
	v.mode = modeConfirm
	v.confirm = confirmDeleteDocument
	v.confirmTarget = doc.Name
	return v, nil
}

// handleConfirmKey processes the y/N confirmation overlay. Anything
// but an explicit yes cancels.
func (v *View) handleConfirmKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	v.mode = modeList
	if msg.String() != "y" && msg.String() != "Y" {
		return v, nil
	}

	v.busy = true
	switch v.confirm {
	case confirmDeleteStore:
		return v, v.deleteStore(v.confirmTarget)
	case confirmDeleteDocument:
		store := v.SelectedStore()
		if store == nil {
			v.busy = false
			return v, nil
		}
		return v, v.deleteDocument(store.Domain, v.confirmTarget)
	case confirmResetAll:
		return v, v.resetAll()
	}
	v.busy = false
	return v, nil
}

// handleCreateKey processes the create-store form. While a create is
// in flight the form is inert apart from cancelling.
func (v *View) handleCreateKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	if v.busy && msg.Type != tea.KeyEsc {
		return v, nil
	}

	switch msg.Type {
	case tea.KeyEsc:
		v.mode = modeList
		v.nameInput.Blur()
		v.descInput.Blur()
		return v, nil

	case tea.KeyTab, tea.KeyDown, tea.KeyUp:
		if v.formFocus == 0 {
			v.formFocus = 1
			v.nameInput.Blur()
			return v, v.descInput.Focus()
		}
		v.formFocus = 0
		v.descInput.Blur()
		return v, v.nameInput.Focus()

	case tea.KeyEnter:
		name := strings.TrimSpace(v.nameInput.Value())
		if name == "" {
			return v, v.showBanner("Store name is required", true)
		}
		v.busy = true
		return v, v.createStore(name, strings.TrimSpace(v.descInput.Value()))

	default:
	}

	var cmd tea.Cmd
	if v.formFocus == 0 {
		v.nameInput, cmd = v.nameInput.Update(msg)
	} else {
		v.descInput, cmd = v.descInput.Update(msg)
	}
	return v, cmd
}

// handleUploadKey processes the upload form. While a batch is in
// flight the form is inert apart from cancelling.
func (v *View) handleUploadKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	if v.busy && msg.Type != tea.KeyEsc {
		return v, nil
	}

	switch msg.Type {
	case tea.KeyEsc:
		v.mode = modeList
		v.pathInput.Blur()
		return v, nil

	case tea.KeyEnter:
		paths := strings.Fields(v.pathInput.Value())
		if len(paths) == 0 {
			return v, nil
		}
		store := v.SelectedStore()
		if store == nil {
			v.mode = modeList
			return v, nil
		}
		v.busy = true
		return v, v.uploadAll(store.Domain, paths)

	default:
	}

	var cmd tea.Cmd
	v.pathInput, cmd = v.pathInput.Update(msg)
	return v, cmd
}

// View renders the admin panel.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 12)
	sections = append(sections, v.styles.Title.Render("Admin"), "")

	if v.banner.text != "" {
		style := v.styles.Success
		if v.banner.isError {
			style = v.styles.Error
		}
		sections = append(sections, style.Render(v.banner.text), "")
	}

	switch v.mode {
	case modeCreate:
		sections = append(sections, v.renderCreateForm())
	case modeUpload:
		sections = append(sections, v.renderUploadForm())
	case modeConfirm:
		sections = append(sections, v.renderPanes(), "", v.renderConfirm())
	case modeList:
		sections = append(sections, v.renderPanes())
	}

	sections = append(sections, "", v.renderHelp())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (v *View) renderPanes() string {
	if v.loading {
		return v.styles.Muted.Render("Loading stores...")
	}
	if v.err != nil {
		return v.styles.Error.Render("Error: "+v.err.Error()) + "\n" +
			v.styles.Help.Render("[r] Retry")
	}

	left := v.renderStores()
	right := v.renderDocuments()
	return lipgloss.JoinHorizontal(lipgloss.Top, left, "    ", right)
}

func (v *View) renderStores() string {
	var b strings.Builder
	title := "Stores"
	if v.focus == paneStores {
		b.WriteString(v.styles.Subtitle.Render(title))
	} else {
		b.WriteString(v.styles.Muted.Render(title))
	}
	b.WriteString("\n")

	if len(v.stores) == 0 {
		b.WriteString(v.styles.Muted.Render("  (none)"))
		return b.String()
	}

	for i, store := range v.stores {
		cursor := "  "
		style := v.styles.Normal
		if i == v.storeSelected && v.focus == paneStores {
			cursor = "> "
			style = v.styles.Selected
		} else if i == v.storeSelected {
			cursor = "> "
		}
		line := fmt.Sprintf("%s (%d)", store.Name(), store.DocumentCount)
		b.WriteString(cursor + style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}

func (v *View) renderDocuments() string {
	var b strings.Builder
	title := "Documents"
	if v.focus == paneDocuments {
		b.WriteString(v.styles.Subtitle.Render(title))
	} else {
		b.WriteString(v.styles.Muted.Render(title))
	}
	b.WriteString("\n")

	if len(v.documents) == 0 {
		b.WriteString(v.styles.Muted.Render("  (empty)"))
		return b.String()
	}

	for i, doc := range v.documents {
		cursor := "  "
		style := v.styles.Normal
		if i == v.docSelected && v.focus == paneDocuments {
			cursor = "> "
			style = v.styles.Selected
		}
		b.WriteString(cursor + style.Render(doc.Title()))
		b.WriteString("\n")
	}
	return b.String()
}

func (v *View) renderCreateForm() string {
	var b strings.Builder
	b.WriteString(v.styles.Subtitle.Render("New store"))
	b.WriteString("\n\n")
	b.WriteString("Name:        " + v.styles.InputField.Render(v.nameInput.View()))
	b.WriteString("\n")
	b.WriteString("Description: " + v.styles.InputField.Render(v.descInput.View()))
	b.WriteString("\n\n")
	b.WriteString(v.styles.Help.Render("[tab] Next field  [Enter] Create  [esc] Cancel"))
	return b.String()
}

func (v *View) renderUploadForm() string {
	store := v.SelectedStore()
	name := ""
	if store != nil {
		name = store.Name()
	}

	var b strings.Builder
	b.WriteString(v.styles.Subtitle.Render("Upload to " + name))
	b.WriteString("\n\n")
	b.WriteString(v.styles.InputField.Render(v.pathInput.View()))
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render("Accepted: " + strings.Join(domain.UploadExtensions, " ")))
	b.WriteString("\n\n")
	b.WriteString(v.styles.Help.Render("[Enter] Upload  [esc] Cancel"))
	return b.String()
}

func (v *View) renderConfirm() string {
	var prompt string
	switch v.confirm {
	case confirmDeleteStore:
		prompt = fmt.Sprintf("Delete store %q and all its documents?", v.confirmTarget)
	case confirmDeleteDocument:
		prompt = fmt.Sprintf("Delete document %q?", v.confirmTarget)
	case confirmResetAll:
		prompt = "Delete ALL stores and recreate the predefined set?"
	}

	content := v.styles.Warning.Render(prompt) + "\n" +
		v.styles.Help.Render("[y] Yes  [any other key] No")
	return v.styles.Border.Padding(0, 1).Render(content)
}

func (v *View) renderHelp() string {
	if v.busy {
		return v.styles.Muted.Render("Working...")
	}
	if v.mode != modeList {
		return ""
	}
	return v.styles.Help.Render(keymap.HelpLine(v.keymap.AdminHelp()))
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

// Documents returns the loaded document list.
func (v *View) Documents() []domain.DocumentInfo {
	return v.documents
}

// Banner returns the visible banner text, if any.
func (v *View) Banner() string {
	return v.banner.text
}

// Busy reports whether a mutation is in flight.
func (v *View) Busy() bool {
	return v.busy
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}
