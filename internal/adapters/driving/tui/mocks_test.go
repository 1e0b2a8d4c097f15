package tui

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
		msg := domain.NewBotMessage("ok", nil)
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
		return &domain.Welcome{}, nil
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
	StoresFunc func(ctx context.Context) ([]domain.Store, error)
}

func (m *MockAdminService) Stores(ctx context.Context) ([]domain.Store, error) {
	if m.StoresFunc == nil {
		return nil, nil
	}
	return m.StoresFunc(ctx)
}

func (m *MockAdminService) CreateStore(_ context.Context, name, _ string) (*domain.CreateStoreResult, error) {
	return &domain.CreateStoreResult{Success: true, Domain: name}, nil
}

func (m *MockAdminService) DeleteStore(context.Context, string) error {
	return nil
}

func (m *MockAdminService) DeleteAllStores(context.Context) (*domain.DeleteAllResult, error) {
	return &domain.DeleteAllResult{Success: true}, nil
}

func (m *MockAdminService) CreatePredefinedStores(context.Context) (*domain.CreateAllResult, error) {
	return &domain.CreateAllResult{Success: true}, nil
}

func (m *MockAdminService) Documents(context.Context, string) ([]domain.DocumentInfo, error) {
	return nil, nil
}

func (m *MockAdminService) Upload(_ context.Context, domainID, path string) (*domain.UploadResult, error) {
	return &domain.UploadResult{Success: true, Filename: path, Domain: domainID}, nil
}

func (m *MockAdminService) UploadAll(_ context.Context, _ string, paths []string) ([]string, error) {
	return paths, nil
}

func (m *MockAdminService) DeleteDocument(context.Context, string, string) error {
	return nil
}

// MockThemeService implements driving.ThemeService for testing.
type MockThemeService struct {
	dark      bool
	ToggleErr error
}

func (m *MockThemeService) Preference() domain.ThemePreference {
	if m.dark {
		return domain.ThemeDark
	}
	return domain.ThemeLight
}

func (m *MockThemeService) Dark() bool {
	return m.dark
}

func (m *MockThemeService) Toggle() (domain.ThemePreference, error) {
	m.dark = !m.dark
	return m.Preference(), m.ToggleErr
}
