package domain

// Store is a named knowledge category on the backend. It holds zero or
// more documents and scopes retrieval for chat.
type Store struct {
	// Domain is the stable unique identifier.
	Domain string `json:"domain"`

	// DisplayName is the human-readable name shown in the UI.
	DisplayName string `json:"display_name"`

	// DocumentCount is computed server-side. The client never mutates it
	// locally; it re-fetches the store list after every mutation.
	DocumentCount int `json:"document_count"`
}

// Name returns the display name, falling back to the identifier.
func (s *Store) Name() string {
	if s.DisplayName != "" {
		return s.DisplayName
	}
	return s.Domain
}

// DocumentInfo describes a document stored within a domain.
type DocumentInfo struct {
	// Name is unique within its domain.
	Name string `json:"name"`

	// DisplayName is the human-readable title.
	DisplayName string `json:"display_name"`

	// Metadata is an optional backend-provided mapping.
	Metadata map[string]string `json:"metadata,omitempty"`
}

// Title returns the display name, falling back to the document name.
func (d *DocumentInfo) Title() string {
	if d.DisplayName != "" {
		return d.DisplayName
	}
	return d.Name
}

// CreateStoreResult is the backend's response to store creation.
type CreateStoreResult struct {
	Success   bool   `json:"success"`
	Domain    string `json:"domain"`
	StoreName string `json:"store_name"`
	Message   string `json:"message"`
}

// DeleteAllResult is the backend's response to the bulk delete.
type DeleteAllResult struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Deleted []string `json:"deleted"`
}

// CreateAllResult is the backend's response to predefined-set creation.
type CreateAllResult struct {
	Success bool    `json:"success"`
	Message string  `json:"message"`
	Stores  []Store `json:"stores"`
}

// UploadResult is the backend's response to a document upload.
type UploadResult struct {
	Success    bool   `json:"success"`
	Filename   string `json:"filename"`
	Domain     string `json:"domain"`
	Message    string `json:"message"`
	DocumentID string `json:"document_id,omitempty"`
	Title      string `json:"title,omitempty"`
}

// PredefinedDomains is the fixed set recreated by the bulk reset.
var PredefinedDomains = []string{"general_info", "hours", "locations", "services"}

// UploadExtensions lists the file extensions accepted for upload.
// This is a UI-level gate; the backend remains the trust boundary.
var UploadExtensions = []string{".pdf", ".md", ".txt", ".docx"}
