package admin

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiosklabs/ragchat-cli/internal/adapters/driving/tui/messages"
	"github.com/kiosklabs/ragchat-cli/internal/core/domain"
)

// MockAdminService implements driving.AdminService for testing.
type MockAdminService struct {
	StoresFunc                 func(ctx context.Context) ([]domain.Store, error)
	CreateStoreFunc            func(ctx context.Context, name, description string) (*domain.CreateStoreResult, error)
	DeleteStoreFunc            func(ctx context.Context, name string) error
	DeleteAllStoresFunc        func(ctx context.Context) (*domain.DeleteAllResult, error)
	CreatePredefinedStoresFunc func(ctx context.Context) (*domain.CreateAllResult, error)
	DocumentsFunc              func(ctx context.Context, domainID string) ([]domain.DocumentInfo, error)
	UploadFunc                 func(ctx context.Context, domainID, path string) (*domain.UploadResult, error)
	UploadAllFunc              func(ctx context.Context, domainID string, paths []string) ([]string, error)
	DeleteDocumentFunc         func(ctx context.Context, domainID, name string) error
}

func (m *MockAdminService) Stores(ctx context.Context) ([]domain.Store, error) {
	return m.StoresFunc(ctx)
}

func (m *MockAdminService) CreateStore(ctx context.Context, name, description string) (*domain.CreateStoreResult, error) {
	return m.CreateStoreFunc(ctx, name, description)
}

func (m *MockAdminService) DeleteStore(ctx context.Context, name string) error {
	return m.DeleteStoreFunc(ctx, name)
}

func (m *MockAdminService) DeleteAllStores(ctx context.Context) (*domain.DeleteAllResult, error) {
	return m.DeleteAllStoresFunc(ctx)
}

func (m *MockAdminService) CreatePredefinedStores(ctx context.Context) (*domain.CreateAllResult, error) {
	return m.CreatePredefinedStoresFunc(ctx)
}

func (m *MockAdminService) Documents(ctx context.Context, domainID string) ([]domain.DocumentInfo, error) {
	return m.DocumentsFunc(ctx, domainID)
}

func (m *MockAdminService) Upload(ctx context.Context, domainID, path string) (*domain.UploadResult, error) {
	return m.UploadFunc(ctx, domainID, path)
}

func (m *MockAdminService) UploadAll(ctx context.Context, domainID string, paths []string) ([]string, error) {
	return m.UploadAllFunc(ctx, domainID, paths)
}

func (m *MockAdminService) DeleteDocument(ctx context.Context, domainID, name string) error {
	return m.DeleteDocumentFunc(ctx, domainID, name)
}

func testStores() []domain.Store {
	return []domain.Store{
		{Domain: "hours", DisplayName: "Opening Hours", DocumentCount: 2},
		{Domain: "locations", DisplayName: "Locations", DocumentCount: 0},
	}
}

func newTestView(svc *MockAdminService) *View {
	view := NewView(nil, nil, svc)
	view.SetDimensions(100, 30)
	return view
}

func TestView_StoresLoaded_SelectsFirstAndCascades(t *testing.T) {
	svc := &MockAdminService{
		DocumentsFunc: func(_ context.Context, domainID string) ([]domain.DocumentInfo, error) {
			assert.Equal(t, "hours", domainID)
			return []domain.DocumentInfo{{Name: "hours.pdf"}}, nil
		},
	}
	view := newTestView(svc)

	_, cmd := view.Update(messages.StoresLoaded{Stores: testStores()})

	require.NotNil(t, view.SelectedStore())
	assert.Equal(t, "hours", view.SelectedStore().Domain)

	// Selecting a store triggers its document load.
	require.NotNil(t, cmd)
	loaded, ok := cmd().(messages.DocumentsLoaded)
	require.True(t, ok)
	assert.Equal(t, "hours", loaded.Domain)
	assert.Len(t, loaded.Documents, 1)
}

func TestView_StoresLoaded_KeepsSelection(t *testing.T) {
	svc := &MockAdminService{
		DocumentsFunc: func(_ context.Context, _ string) ([]domain.DocumentInfo, error) {
			return nil, nil
		},
	}
	view := newTestView(svc)
	view.Update(messages.StoresLoaded{Stores: testStores()})
	view.storeSelected = 1

	view.Update(messages.StoresLoaded{Stores: testStores()})

	assert.Equal(t, "locations", view.SelectedStore().Domain)
}

func TestView_DocumentsLoaded_StaleStoreIgnored(t *testing.T) {
	view := newTestView(&MockAdminService{})
	view.stores = testStores()
	view.storeSelected = 1 // locations

	view.Update(messages.DocumentsLoaded{
		Domain:    "hours",
		Documents: []domain.DocumentInfo{{Name: "hours.pdf"}},
	})

	assert.Empty(t, view.Documents())
}

func TestView_CursorMove_ReloadsDocuments(t *testing.T) {
	svc := &MockAdminService{
		DocumentsFunc: func(_ context.Context, domainID string) ([]domain.DocumentInfo, error) {
			return nil, nil
		},
	}
	view := newTestView(svc)
	view.stores = testStores()

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyDown})

	assert.Equal(t, 1, view.storeSelected)
	require.NotNil(t, cmd)
	loaded, ok := cmd().(messages.DocumentsLoaded)
	require.True(t, ok)
	assert.Equal(t, "locations", loaded.Domain)
}

func TestView_CreateStore_Success(t *testing.T) {
	svc := &MockAdminService{
		CreateStoreFunc: func(_ context.Context, name, description string) (*domain.CreateStoreResult, error) {
			assert.Equal(t, "faq", name)
			assert.Equal(t, "common questions", description)
			return &domain.CreateStoreResult{Success: true, Domain: "faq"}, nil
		},
		StoresFunc: func(_ context.Context) ([]domain.Store, error) {
			return testStores(), nil
		},
	}
	view := newTestView(svc)
	view.mode = modeCreate
	view.nameInput.SetValue("faq")
	view.descInput.SetValue("common questions")

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.True(t, view.Busy())

	created, ok := cmd().(messages.StoreCreated)
	require.True(t, ok)
	require.NoError(t, created.Err)

	view.Update(created)
	assert.Equal(t, modeList, view.mode)
	assert.Empty(t, view.nameInput.Value())
	assert.Contains(t, view.Banner(), "faq")
}

func TestView_CreateStore_Failure_KeepsInput(t *testing.T) {
	view := newTestView(&MockAdminService{})
	view.mode = modeCreate
	view.nameInput.SetValue("faq")
	view.descInput.SetValue("desc")

	view.Update(messages.StoreCreated{Err: errors.New("store exists")})

	// The form stays open with its values so the user can correct.
	assert.Equal(t, modeCreate, view.mode)
	assert.Equal(t, "faq", view.nameInput.Value())
	assert.Equal(t, "desc", view.descInput.Value())
	assert.Contains(t, view.Banner(), "store exists")
}

func TestView_CreateStore_EmptyName(t *testing.T) {
	view := newTestView(&MockAdminService{})
	view.mode = modeCreate
	view.nameInput.SetValue("   ")

	view.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.False(t, view.Busy())
	assert.Contains(t, view.Banner(), "required")
}

func TestView_DeleteStore_RequiresConfirmation(t *testing.T) {
	deleted := false
	svc := &MockAdminService{
		DeleteStoreFunc: func(_ context.Context, name string) error {
			deleted = true
			assert.Equal(t, "hours", name)
			return nil
		},
	}
	view := newTestView(svc)
	view.stores = testStores()

	view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}})
	assert.Equal(t, modeConfirm, view.mode)
	assert.False(t, deleted)

	// Anything but y cancels.
	view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})
	assert.Equal(t, modeList, view.mode)
	assert.False(t, deleted)

	// Confirming runs the delete.
	view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}})
	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}})
	require.NotNil(t, cmd)
	result, ok := cmd().(messages.StoreDeleted)
	require.True(t, ok)
	require.NoError(t, result.Err)
	assert.True(t, deleted)
}

func TestView_ResetAll_Sequential(t *testing.T) {
	order := []string{}
	svc := &MockAdminService{
		DeleteAllStoresFunc: func(_ context.Context) (*domain.DeleteAllResult, error) {
			order = append(order, "delete")
			return &domain.DeleteAllResult{Deleted: []string{"hours", "locations"}}, nil
		},
		CreatePredefinedStoresFunc: func(_ context.Context) (*domain.CreateAllResult, error) {
			order = append(order, "create")
			return &domain.CreateAllResult{Stores: testStores()}, nil
		},
	}
	view := newTestView(svc)

	view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'R'}})
	assert.Equal(t, modeConfirm, view.mode)

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}})
	require.NotNil(t, cmd)

	result, ok := cmd().(messages.StoresReset)
	require.True(t, ok)
	require.NoError(t, result.Err)
	assert.Equal(t, []string{"delete", "create"}, order)
	assert.Len(t, result.Deleted.Deleted, 2)
	assert.Len(t, result.Created.Stores, 2)
}

func TestView_ResetAll_DeleteFails_NoCreate(t *testing.T) {
	created := false
	svc := &MockAdminService{
		DeleteAllStoresFunc: func(_ context.Context) (*domain.DeleteAllResult, error) {
			return nil, errors.New("backend down")
		},
		CreatePredefinedStoresFunc: func(_ context.Context) (*domain.CreateAllResult, error) {
			created = true
			return &domain.CreateAllResult{}, nil
		},
	}
	view := newTestView(svc)

	msg := view.resetAll()()
	result, ok := msg.(messages.StoresReset)
	require.True(t, ok)
	assert.Error(t, result.Err)
	assert.False(t, created)
}

func TestView_Upload_Batch(t *testing.T) {
	svc := &MockAdminService{
		UploadAllFunc: func(_ context.Context, domainID string, paths []string) ([]string, error) {
			assert.Equal(t, "hours", domainID)
			assert.Equal(t, []string{"a.pdf", "b.md"}, paths)
			return []string{"a.pdf", "b.md"}, nil
		},
	}
	view := newTestView(svc)
	view.stores = testStores()
	view.mode = modeUpload
	view.pathInput.SetValue("a.pdf b.md")

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	finished, ok := cmd().(messages.UploadFinished)
	require.True(t, ok)
	require.NoError(t, finished.Err)
	assert.Len(t, finished.Uploaded, 2)

	view.Update(finished)
	assert.Equal(t, modeList, view.mode)
	assert.Contains(t, view.Banner(), "2 file(s)")
}

func TestView_Upload_PartialFailure_Banner(t *testing.T) {
	view := newTestView(&MockAdminService{
		StoresFunc: func(_ context.Context) ([]domain.Store, error) { return testStores(), nil },
		DocumentsFunc: func(_ context.Context, _ string) ([]domain.DocumentInfo, error) {
			return nil, nil
		},
	})
	view.stores = testStores()
	view.mode = modeUpload

	view.mode = modeUpload
	view.pathInput.SetValue("a.pdf b.exe")

	view.Update(messages.UploadFinished{
		Domain:   "hours",
		Uploaded: []string{"a.pdf"},
		Err:      errors.New("b.exe: unsupported file type"),
	})

	assert.Contains(t, view.Banner(), "1 file(s)")
	assert.Contains(t, view.Banner(), "b.exe")

	// The form closes and the path input resets on failure too.
	assert.Equal(t, modeList, view.mode)
	assert.Empty(t, view.pathInput.Value())
}

func TestView_CreateForm_EnterWhileBusyDoesNotRefire(t *testing.T) {
	createCalls := 0
	svc := &MockAdminService{
		CreateStoreFunc: func(_ context.Context, name, _ string) (*domain.CreateStoreResult, error) {
			createCalls++
			return &domain.CreateStoreResult{Success: true, Domain: name}, nil
		},
	}
	view := newTestView(svc)
	view.mode = modeCreate
	view.nameInput.SetValue("faq")

	_, first := view.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, first)

	// A second Enter before the first request resolves must not fire
	// another create.
	_, second := view.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, second)

	first()
	assert.Equal(t, 1, createCalls)
}

func TestView_UploadForm_EnterWhileBusyDoesNotRefire(t *testing.T) {
	uploadCalls := 0
	svc := &MockAdminService{
		UploadAllFunc: func(_ context.Context, _ string, paths []string) ([]string, error) {
			uploadCalls++
			return paths, nil
		},
	}
	view := newTestView(svc)
	view.stores = testStores()
	view.mode = modeUpload
	view.pathInput.SetValue("a.pdf")

	_, first := view.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, first)

	_, second := view.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, second)

	first()
	assert.Equal(t, 1, uploadCalls)
}

func TestView_Seed_CreatesPredefinedWithoutDelete(t *testing.T) {
	deleteAllCalls := 0
	svc := &MockAdminService{
		DeleteAllStoresFunc: func(_ context.Context) (*domain.DeleteAllResult, error) {
			deleteAllCalls++
			return &domain.DeleteAllResult{}, nil
		},
		CreatePredefinedStoresFunc: func(_ context.Context) (*domain.CreateAllResult, error) {
			return &domain.CreateAllResult{Stores: testStores()}, nil
		},
		StoresFunc: func(_ context.Context) ([]domain.Store, error) {
			return testStores(), nil
		},
		DocumentsFunc: func(_ context.Context, _ string) ([]domain.DocumentInfo, error) {
			return nil, nil
		},
	}
	view := newTestView(svc)

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}})
	require.NotNil(t, cmd)
	assert.True(t, view.Busy())

	seeded, ok := cmd().(messages.StoresSeeded)
	require.True(t, ok)
	require.NoError(t, seeded.Err)
	assert.Zero(t, deleteAllCalls)

	view.Update(seeded)
	assert.False(t, view.Busy())
	assert.Contains(t, view.Banner(), "2 predefined")
}

func TestView_BannerExpiry_GenerationGuard(t *testing.T) {
	view := newTestView(&MockAdminService{})

	view.showBanner("first", false)
	view.showBanner("second", false)

	// The first banner's timer fires after the second banner appeared.
	view.Update(messages.BannerExpired{Generation: 1})
	assert.Equal(t, "second", view.Banner())

	view.Update(messages.BannerExpired{Generation: 2})
	assert.Empty(t, view.Banner())
}

func TestView_Upload_NoStoreSelected(t *testing.T) {
	view := newTestView(&MockAdminService{})

	view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'u'}})

	assert.Equal(t, modeList, view.mode)
	assert.Contains(t, view.Banner(), "Select a store")
}

func TestView_TabSwitchesPane(t *testing.T) {
	view := newTestView(&MockAdminService{})

	view.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, paneDocuments, view.focus)

	view.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, paneStores, view.focus)
}

func TestView_Esc_ReturnsToLanding(t *testing.T) {
	view := newTestView(&MockAdminService{})

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEsc})

	require.NotNil(t, cmd)
	changed, ok := cmd().(messages.ViewChanged)
	require.True(t, ok)
	assert.Equal(t, messages.ViewLanding, changed.View)
}

func TestView_View_RendersPanes(t *testing.T) {
	view := newTestView(&MockAdminService{})
	view.stores = testStores()
	view.documents = []domain.DocumentInfo{{Name: "hours.pdf", DisplayName: "Opening Hours PDF"}}

	output := view.View()

	assert.Contains(t, output, "Stores")
	assert.Contains(t, output, "Documents")
	assert.Contains(t, output, "Opening Hours (2)")
	assert.Contains(t, output, "Opening Hours PDF")
}

func TestView_View_ConfirmOverlay(t *testing.T) {
	view := newTestView(&MockAdminService{})
	view.stores = testStores()
	view.mode = modeConfirm
	view.confirm = confirmResetAll

	output := view.View()

	assert.Contains(t, output, "ALL stores")
	assert.Contains(t, output, "[y] Yes")
}
