package rest

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"

	"github.com/kiosklabs/ragchat-cli/internal/core/domain"
)

// ListStores lists all stores with their document counts.
func (c *Client) ListStores(ctx context.Context) ([]domain.Store, error) {
	var stores []domain.Store
	if err := c.getJSON(ctx, "list stores", "/admin/stores", &stores); err != nil {
		return nil, err
	}
	return stores, nil
}

// CreateStore creates a new domain store.
func (c *Client) CreateStore(ctx context.Context, name, description string) (*domain.CreateStoreResult, error) {
	body := struct {
		Domain      string `json:"domain"`
		Description string `json:"description"`
	}{Domain: name, Description: description}

	var result domain.CreateStoreResult
	if err := c.postJSON(ctx, "create store", "/admin/stores", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// DeleteStore removes a domain store and all its documents.
func (c *Client) DeleteStore(ctx context.Context, name string) error {
	return c.deleteReq(ctx, "delete store", "/admin/stores/"+url.PathEscape(name))
}

// DeleteAllStores removes every store.
func (c *Client) DeleteAllStores(ctx context.Context) (*domain.DeleteAllResult, error) {
	var result domain.DeleteAllResult
	if err := c.postJSON(ctx, "delete all stores", "/admin/stores/delete-all", nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// CreatePredefinedStores recreates the fixed predefined store set.
func (c *Client) CreatePredefinedStores(ctx context.Context) (*domain.CreateAllResult, error) {
	path := "/admin/stores/" + url.PathEscape(c.preset) + "/create-all"
	var result domain.CreateAllResult
	if err := c.postJSON(ctx, "create predefined stores", path, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// UploadDocument uploads one file as multipart form data under the
// field name "file".
func (c *Client) UploadDocument(ctx context.Context, domainID, filename string, r io.Reader) (*domain.UploadResult, error) {
	const action = "upload"

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("build upload form: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, fmt.Errorf("read %s: %w", filename, err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("build upload form: %w", err)
	}

	path := "/admin/stores/" + url.PathEscape(domainID) + "/upload"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return nil, &domain.NetworkError{Action: action, Err: err}
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	var result domain.UploadResult
	if err := c.do(action, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ListDocuments lists the documents stored in a domain.
func (c *Client) ListDocuments(ctx context.Context, domainID string) ([]domain.DocumentInfo, error) {
	path := "/admin/stores/" + url.PathEscape(domainID) + "/documents"
	var docs []domain.DocumentInfo
	if err := c.getJSON(ctx, "list documents", path, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// DeleteDocument removes a single document from a domain.
func (c *Client) DeleteDocument(ctx context.Context, domainID, name string) error {
	path := "/admin/stores/" + url.PathEscape(domainID) + "/documents/" + url.PathEscape(name)
	return c.deleteReq(ctx, "delete document", path)
}
