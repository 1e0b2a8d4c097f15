package services

import (
	"context"
	"io"

	"github.com/kiosklabs/ragchat-cli/internal/core/domain"
	"github.com/kiosklabs/ragchat-cli/internal/core/ports/driven"
)

// MockBackend implements driven.Backend with function fields so each
// test overrides only what it needs.
type MockBackend struct {
	FetchDomainsFunc           func(ctx context.Context) ([]domain.Store, error)
	SendMessageFunc            func(ctx context.Context, req domain.ChatRequest) (*domain.ChatResponse, error)
	WelcomeFunc                func(ctx context.Context) (*domain.Welcome, error)
	SuggestionsFunc            func(ctx context.Context, domainID string) ([]string, error)
	ListStoresFunc             func(ctx context.Context) ([]domain.Store, error)
	CreateStoreFunc            func(ctx context.Context, name, description string) (*domain.CreateStoreResult, error)
	DeleteStoreFunc            func(ctx context.Context, name string) error
	DeleteAllStoresFunc        func(ctx context.Context) (*domain.DeleteAllResult, error)
	CreatePredefinedStoresFunc func(ctx context.Context) (*domain.CreateAllResult, error)
	UploadDocumentFunc         func(ctx context.Context, domainID, filename string, r io.Reader) (*domain.UploadResult, error)
	ListDocumentsFunc          func(ctx context.Context, domainID string) ([]domain.DocumentInfo, error)
	DeleteDocumentFunc         func(ctx context.Context, domainID, name string) error
}

var _ driven.Backend = (*MockBackend)(nil)

func (m *MockBackend) FetchDomains(ctx context.Context) ([]domain.Store, error) {
	if m.FetchDomainsFunc != nil {
		return m.FetchDomainsFunc(ctx)
	}
	return nil, nil
}

func (m *MockBackend) SendMessage(ctx context.Context, req domain.ChatRequest) (*domain.ChatResponse, error) {
	if m.SendMessageFunc != nil {
		return m.SendMessageFunc(ctx, req)
	}
	return &domain.ChatResponse{}, nil
}

func (m *MockBackend) Welcome(ctx context.Context) (*domain.Welcome, error) {
	if m.WelcomeFunc != nil {
		return m.WelcomeFunc(ctx)
	}
	return &domain.Welcome{}, nil
}

func (m *MockBackend) Suggestions(ctx context.Context, domainID string) ([]string, error) {
	if m.SuggestionsFunc != nil {
		return m.SuggestionsFunc(ctx, domainID)
	}
	return nil, nil
}

func (m *MockBackend) ListStores(ctx context.Context) ([]domain.Store, error) {
	if m.ListStoresFunc != nil {
		return m.ListStoresFunc(ctx)
	}
	return nil, nil
}

func (m *MockBackend) CreateStore(ctx context.Context, name, description string) (*domain.CreateStoreResult, error) {
	if m.CreateStoreFunc != nil {
		return m.CreateStoreFunc(ctx, name, description)
	}
	return &domain.CreateStoreResult{Success: true, Domain: name}, nil
}

func (m *MockBackend) DeleteStore(ctx context.Context, name string) error {
	if m.DeleteStoreFunc != nil {
		return m.DeleteStoreFunc(ctx, name)
	}
	return nil
}

func (m *MockBackend) DeleteAllStores(ctx context.Context) (*domain.DeleteAllResult, error) {
	if m.DeleteAllStoresFunc != nil {
		return m.DeleteAllStoresFunc(ctx)
	}
	return &domain.DeleteAllResult{Success: true}, nil
}

func (m *MockBackend) CreatePredefinedStores(ctx context.Context) (*domain.CreateAllResult, error) {
	if m.CreatePredefinedStoresFunc != nil {
		return m.CreatePredefinedStoresFunc(ctx)
	}
	return &domain.CreateAllResult{Success: true}, nil
}

func (m *MockBackend) UploadDocument(ctx context.Context, domainID, filename string, r io.Reader) (*domain.UploadResult, error) {
	if m.UploadDocumentFunc != nil {
		return m.UploadDocumentFunc(ctx, domainID, filename, r)
	}
	return &domain.UploadResult{Success: true, Filename: filename, Domain: domainID}, nil
}

func (m *MockBackend) ListDocuments(ctx context.Context, domainID string) ([]domain.DocumentInfo, error) {
	if m.ListDocumentsFunc != nil {
		return m.ListDocumentsFunc(ctx, domainID)
	}
	return nil, nil
}

func (m *MockBackend) DeleteDocument(ctx context.Context, domainID, name string) error {
	if m.DeleteDocumentFunc != nil {
		return m.DeleteDocumentFunc(ctx, domainID, name)
	}
	return nil
}

// MockHistory implements driven.HistoryStore, recording appends.
type MockHistory struct {
	Records    []domain.HistoryRecord
	AppendErr  error
	RecentFunc func(ctx context.Context, domainID string, limit int) ([]domain.HistoryRecord, error)
}

var _ driven.HistoryStore = (*MockHistory)(nil)

func (m *MockHistory) Append(ctx context.Context, rec domain.HistoryRecord) error {
	if m.AppendErr != nil {
		return m.AppendErr
	}
	m.Records = append(m.Records, rec)
	return nil
}

func (m *MockHistory) Recent(ctx context.Context, domainID string, limit int) ([]domain.HistoryRecord, error) {
	if m.RecentFunc != nil {
		return m.RecentFunc(ctx, domainID, limit)
	}
	return m.Records, nil
}

func (m *MockHistory) Close() error { return nil }

// MockPrefs is an in-memory driven.PrefStore.
type MockPrefs struct {
	Values map[string]string
	SetErr error
}

var _ driven.PrefStore = (*MockPrefs)(nil)

func (m *MockPrefs) GetString(key string) string {
	return m.Values[key]
}

func (m *MockPrefs) Set(key string, value any) error {
	if m.SetErr != nil {
		return m.SetErr
	}
	if m.Values == nil {
		m.Values = make(map[string]string)
	}
	if s, ok := value.(string); ok {
		m.Values[key] = s
	}
	return nil
}

func (m *MockPrefs) Load() error { return nil }

func (m *MockPrefs) Path() string { return "" }
