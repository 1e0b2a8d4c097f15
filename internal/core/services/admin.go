package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kiosklabs/ragchat-cli/internal/core/domain"
	"github.com/kiosklabs/ragchat-cli/internal/core/ports/driven"
	"github.com/kiosklabs/ragchat-cli/internal/core/ports/driving"
)

// Ensure Admin implements the interface.
var _ driving.AdminService = (*Admin)(nil)

// Admin implements driving.AdminService. It validates input before any
// network call and otherwise defers to the backend; it never adjusts
// document counts locally.
type Admin struct {
	backend driven.Backend
}

// NewAdmin creates an admin service.
func NewAdmin(backend driven.Backend) *Admin {
	return &Admin{backend: backend}
}

// Stores lists all stores.
func (a *Admin) Stores(ctx context.Context) ([]domain.Store, error) {
	return a.backend.ListStores(ctx)
}

// CreateStore creates a store after trimming and validating the name.
func (a *Admin) CreateStore(ctx context.Context, name, description string) (*domain.CreateStoreResult, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrEmptyStoreName
	}
	return a.backend.CreateStore(ctx, name, strings.TrimSpace(description))
}

// DeleteStore removes a store and all its documents.
func (a *Admin) DeleteStore(ctx context.Context, name string) error {
	if strings.TrimSpace(name) == "" {
		return domain.ErrEmptyStoreName
	}
	return a.backend.DeleteStore(ctx, name)
}

// DeleteAllStores removes every store.
func (a *Admin) DeleteAllStores(ctx context.Context) (*domain.DeleteAllResult, error) {
	return a.backend.DeleteAllStores(ctx)
}

// CreatePredefinedStores recreates the fixed predefined store set.
func (a *Admin) CreatePredefinedStores(ctx context.Context) (*domain.CreateAllResult, error) {
	return a.backend.CreatePredefinedStores(ctx)
}

// Documents lists the documents in a store.
func (a *Admin) Documents(ctx context.Context, domainID string) ([]domain.DocumentInfo, error) {
	if domainID == "" {
		return nil, domain.ErrNoStoreSelected
	}
	return a.backend.ListDocuments(ctx, domainID)
}

// Upload uploads one local file into a store.
func (a *Admin) Upload(ctx context.Context, domainID, path string) (*domain.UploadResult, error) {
	if domainID == "" {
		return nil, domain.ErrNoStoreSelected
	}

	name := filepath.Base(path)
	if !SupportedUpload(name) {
		return nil, domain.ErrUnsupportedFileType
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	return a.backend.UploadDocument(ctx, domainID, name, f)
}

// UploadAll uploads files one at a time, in order. The first failure
// stops the batch; files uploaded before it stay uploaded. There is no
// rollback.
func (a *Admin) UploadAll(ctx context.Context, domainID string, paths []string) ([]string, error) {
	uploaded := make([]string, 0, len(paths))
	for _, path := range paths {
		if _, err := a.Upload(ctx, domainID, path); err != nil {
			return uploaded, fmt.Errorf("%s: %w", filepath.Base(path), err)
		}
		uploaded = append(uploaded, filepath.Base(path))
	}
	return uploaded, nil
}

// DeleteDocument removes one document from a store.
func (a *Admin) DeleteDocument(ctx context.Context, domainID, name string) error {
	if domainID == "" {
		return domain.ErrNoStoreSelected
	}
	return a.backend.DeleteDocument(ctx, domainID, name)
}

// SupportedUpload reports whether the file name carries an accepted
// upload extension.
func SupportedUpload(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, allowed := range domain.UploadExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}
