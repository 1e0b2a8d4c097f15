package driving

import (
	"context"

	"github.com/kiosklabs/ragchat-cli/internal/core/domain"
)

// AdminService drives the store and document administration surface.
// Mutations never adjust local state: callers re-fetch lists afterwards,
// treating server-side counts as the single source of truth.
type AdminService interface {
	// Stores lists all stores.
	Stores(ctx context.Context) ([]domain.Store, error)

	// CreateStore creates a store. The name is trimmed; an empty result
	// fails with domain.ErrEmptyStoreName before any network call.
	CreateStore(ctx context.Context, name, description string) (*domain.CreateStoreResult, error)

	// DeleteStore removes a store and all its documents. Destructive;
	// callers gate it behind explicit confirmation.
	DeleteStore(ctx context.Context, name string) error

	// DeleteAllStores removes every store. Destructive and irreversible;
	// callers gate it behind explicit confirmation.
	DeleteAllStores(ctx context.Context) (*domain.DeleteAllResult, error)

	// CreatePredefinedStores recreates the fixed predefined store set.
	// Not destructive, so no confirmation is required.
	CreatePredefinedStores(ctx context.Context) (*domain.CreateAllResult, error)

	// Documents lists the documents in a store.
	Documents(ctx context.Context, domainID string) ([]domain.DocumentInfo, error)

	// Upload uploads one local file into a store. The extension must be
	// one of domain.UploadExtensions.
	Upload(ctx context.Context, domainID, path string) (*domain.UploadResult, error)

	// UploadAll uploads files sequentially in slice order. The first
	// failure stops the batch: already-uploaded files stay uploaded and
	// the returned error names the failing file. Uploaded always lists
	// the files that made it.
	UploadAll(ctx context.Context, domainID string, paths []string) (uploaded []string, err error)

	// DeleteDocument removes one document. Destructive; callers gate it
	// behind explicit confirmation.
	DeleteDocument(ctx context.Context, domainID, name string) error
}
