package driven

import (
	"context"
	"io"

	"github.com/kiosklabs/ragchat-cli/internal/core/domain"
)

// Backend is the single translation layer between client intents and the
// RAG service's HTTP API. Every call is fresh: no retries, no caching.
// Implementations must return errors whose messages are suitable for
// direct display (domain.NetworkError / domain.BackendError).
type Backend interface {
	// FetchDomains lists the domains available for chat.
	FetchDomains(ctx context.Context) ([]domain.Store, error)

	// SendMessage submits a chat message scoped to a domain.
	SendMessage(ctx context.Context, req domain.ChatRequest) (*domain.ChatResponse, error)

	// Welcome fetches the global greeting, available domains, and
	// starter suggestions.
	Welcome(ctx context.Context) (*domain.Welcome, error)

	// Suggestions fetches AI-generated follow-up questions for a domain.
	Suggestions(ctx context.Context, domainID string) ([]string, error)

	// ListStores lists all stores with their document counts.
	ListStores(ctx context.Context) ([]domain.Store, error)

	// CreateStore creates a new domain store.
	CreateStore(ctx context.Context, name, description string) (*domain.CreateStoreResult, error)

	// DeleteStore removes a domain store and all its documents.
	DeleteStore(ctx context.Context, name string) error

	// DeleteAllStores removes every store. Irreversible.
	DeleteAllStores(ctx context.Context) (*domain.DeleteAllResult, error)

	// CreatePredefinedStores recreates the fixed predefined store set.
	CreatePredefinedStores(ctx context.Context) (*domain.CreateAllResult, error)

	// UploadDocument uploads one file into a domain as multipart form
	// data under the field name "file".
	UploadDocument(ctx context.Context, domainID, filename string, r io.Reader) (*domain.UploadResult, error)

	// ListDocuments lists the documents stored in a domain.
	ListDocuments(ctx context.Context, domainID string) ([]domain.DocumentInfo, error)

	// DeleteDocument removes a single document from a domain.
	DeleteDocument(ctx context.Context, domainID, name string) error
}
