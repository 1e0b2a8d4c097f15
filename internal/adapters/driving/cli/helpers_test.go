package cli

import (
	"context"

	"github.com/kiosklabs/ragchat-cli/internal/core/domain"
)

// MockChatService implements driving.ChatService for testing.
type MockChatService struct {
	SendFunc        func(ctx context.Context, domainID, text string) (*domain.BotMessage, error)
	SuggestionsFunc func(ctx context.Context, domainID string) ([]string, error)
	DomainsFunc     func(ctx context.Context) ([]domain.Store, error)
	WelcomeFunc     func(ctx context.Context) (*domain.Welcome, error)
	HistoryFunc     func(ctx context.Context, domainID string, limit int) ([]domain.HistoryRecord, error)
}

func (m *MockChatService) Send(ctx context.Context, domainID, text string) (*domain.BotMessage, error) {
	if m.SendFunc == nil {
		msg := domain.NewBotMessage("We open at 9am.", []domain.Source{{Content: "hours.pdf"}})
		return &msg, nil
	}
	return m.SendFunc(ctx, domainID, text)
}

func (m *MockChatService) Suggestions(ctx context.Context, domainID string) ([]string, error) {
	if m.SuggestionsFunc == nil {
		return nil, nil
	}
	return m.SuggestionsFunc(ctx, domainID)
}

func (m *MockChatService) Domains(ctx context.Context) ([]domain.Store, error) {
	if m.DomainsFunc == nil {
		return nil, nil
	}
	return m.DomainsFunc(ctx)
}

func (m *MockChatService) Welcome(ctx context.Context) (*domain.Welcome, error) {
	if m.WelcomeFunc == nil {
		return &domain.Welcome{Message: "Welcome!"}, nil
	}
	return m.WelcomeFunc(ctx)
}

func (m *MockChatService) History(ctx context.Context, domainID string, limit int) ([]domain.HistoryRecord, error) {
	if m.HistoryFunc == nil {
		return nil, nil
	}
	return m.HistoryFunc(ctx, domainID, limit)
}

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
	if m.StoresFunc == nil {
		return nil, nil
	}
	return m.StoresFunc(ctx)
}

func (m *MockAdminService) CreateStore(ctx context.Context, name, description string) (*domain.CreateStoreResult, error) {
	if m.CreateStoreFunc == nil {
		return &domain.CreateStoreResult{Success: true, Domain: name}, nil
	}
	return m.CreateStoreFunc(ctx, name, description)
}

func (m *MockAdminService) DeleteStore(ctx context.Context, name string) error {
	if m.DeleteStoreFunc == nil {
		return nil
	}
	return m.DeleteStoreFunc(ctx, name)
}

func (m *MockAdminService) DeleteAllStores(ctx context.Context) (*domain.DeleteAllResult, error) {
	if m.DeleteAllStoresFunc == nil {
		return &domain.DeleteAllResult{Success: true}, nil
	}
	return m.DeleteAllStoresFunc(ctx)
}

func (m *MockAdminService) CreatePredefinedStores(ctx context.Context) (*domain.CreateAllResult, error) {
	if m.CreatePredefinedStoresFunc == nil {
		return &domain.CreateAllResult{Success: true}, nil
	}
	return m.CreatePredefinedStoresFunc(ctx)
}

func (m *MockAdminService) Documents(ctx context.Context, domainID string) ([]domain.DocumentInfo, error) {
	if m.DocumentsFunc == nil {
		return nil, nil
	}
	return m.DocumentsFunc(ctx, domainID)
}

func (m *MockAdminService) Upload(ctx context.Context, domainID, path string) (*domain.UploadResult, error) {
	if m.UploadFunc == nil {
		return &domain.UploadResult{Success: true, Filename: path, Domain: domainID}, nil
	}
	return m.UploadFunc(ctx, domainID, path)
}

func (m *MockAdminService) UploadAll(ctx context.Context, domainID string, paths []string) ([]string, error) {
	if m.UploadAllFunc == nil {
		return paths, nil
	}
	return m.UploadAllFunc(ctx, domainID, paths)
}

func (m *MockAdminService) DeleteDocument(ctx context.Context, domainID, name string) error {
	if m.DeleteDocumentFunc == nil {
		return nil
	}
	return m.DeleteDocumentFunc(ctx, domainID, name)
}

// MockThemeService implements driving.ThemeService for testing.
type MockThemeService struct {
	dark bool
}

func (m *MockThemeService) Preference() domain.ThemePreference {
	if m.dark {
		return domain.ThemeDark
	}
	return domain.ThemeLight
}

func (m *MockThemeService) Dark() bool { return m.dark }

func (m *MockThemeService) Toggle() (domain.ThemePreference, error) {
	m.dark = !m.dark
	return m.Preference(), nil
}

// setupTestServices installs mock services and returns a cleanup that
// restores the package state.
func setupTestServices() func() {
	return setupTestServicesWith(&MockChatService{}, &MockAdminService{})
}

func setupTestServicesWith(chat *MockChatService, admin *MockAdminService) func() {
	SetServices(chat, admin, &MockThemeService{})
	return func() {
		chatService = nil
		adminService = nil
		themeService = nil
		skipConfirm = false
	}
}
