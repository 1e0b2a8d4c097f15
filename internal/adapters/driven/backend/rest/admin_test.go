package rest

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiosklabs/ragchat-cli/internal/core/domain"
)

func newTestServerClient(t *testing.T, preset string, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(Config{BaseURL: server.URL, Preset: preset})
}

func TestClient_ListStores(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/admin/stores", r.URL.Path)
		json.NewEncoder(w).Encode([]domain.Store{{Domain: "docs", DocumentCount: 2}})
	})

	stores, err := client.ListStores(context.Background())

	require.NoError(t, err)
	require.Len(t, stores, 1)
	assert.Equal(t, 2, stores[0].DocumentCount)
}

func TestClient_CreateStore(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/admin/stores", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "docs", body["domain"])
		assert.Equal(t, "course docs", body["description"])

		json.NewEncoder(w).Encode(domain.CreateStoreResult{
			Success: true, Domain: "docs", StoreName: "store-docs", Message: "created",
		})
	})

	result, err := client.CreateStore(context.Background(), "docs", "course docs")

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "docs", result.Domain)
}

func TestClient_DeleteStore(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/admin/stores/docs", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	err := client.DeleteStore(context.Background(), "docs")

	require.NoError(t, err)
}

func TestClient_DeleteAllStores(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/admin/stores/delete-all", r.URL.Path)
		json.NewEncoder(w).Encode(domain.DeleteAllResult{
			Success: true, Message: "all gone", Deleted: []string{"docs", "hours"},
		})
	})

	result, err := client.DeleteAllStores(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"docs", "hours"}, result.Deleted)
}

func TestClient_CreatePredefinedStores(t *testing.T) {
	var gotPath string
	client := newTestServerClient(t, "campus", func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewEncoder(w).Encode(domain.CreateAllResult{
			Success: true,
			Stores:  []domain.Store{{Domain: "general_info"}, {Domain: "hours"}},
		})
	})

	result, err := client.CreatePredefinedStores(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "/admin/stores/campus/create-all", gotPath)
	assert.Len(t, result.Stores, 2)
}

func TestClient_UploadDocument(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/admin/stores/docs/upload", r.URL.Path)

		require.NoError(t, r.ParseMultipartForm(1<<20))
		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "notes.md", header.Filename)

		body, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, "# notes", string(body))

		json.NewEncoder(w).Encode(domain.UploadResult{
			Success: true, Filename: "notes.md", Domain: "docs",
		})
	})

	result, err := client.UploadDocument(
		context.Background(), "docs", "notes.md", strings.NewReader("# notes"),
	)

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "notes.md", result.Filename)
}

func TestClient_UploadDocument_ErrorDetail(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]string{"detail": "file too large"})
	})

	_, err := client.UploadDocument(
		context.Background(), "docs", "big.pdf", strings.NewReader("x"),
	)

	require.Error(t, err)
	assert.Equal(t, "file too large", err.Error())
}

func TestClient_ListDocuments(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/admin/stores/docs/documents", r.URL.Path)
		json.NewEncoder(w).Encode([]domain.DocumentInfo{
			{Name: "notes.md", DisplayName: "Notes"},
		})
	})

	docs, err := client.ListDocuments(context.Background(), "docs")

	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "Notes", docs[0].DisplayName)
}

func TestClient_DeleteDocument(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/admin/stores/docs/documents/notes.md", r.URL.Path)
	})

	err := client.DeleteDocument(context.Background(), "docs", "notes.md")

	require.NoError(t, err)
}

func TestClient_DocumentNameIsEscaped(t *testing.T) {
	var gotPath string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
	})

	err := client.DeleteDocument(context.Background(), "docs", "my notes.pdf")

	require.NoError(t, err)
	assert.Equal(t, "/admin/stores/docs/documents/my%20notes.pdf", gotPath)
}
