package domain

import "errors"

// Domain errors represent client-side validation failures. They are
// caught before any network call is made.
var (
	// ErrEmptyMessage indicates a chat submit with no content.
	ErrEmptyMessage = errors.New("message is empty")

	// ErrEmptyStoreName indicates store creation with a blank name.
	ErrEmptyStoreName = errors.New("store name is required")

	// ErrNoStoreSelected indicates an upload without an active domain.
	ErrNoStoreSelected = errors.New("no store selected")

	// ErrUnsupportedFileType indicates an upload of a file type outside
	// the accepted set (PDF, Markdown, plain text, Word).
	ErrUnsupportedFileType = errors.New("unsupported file type")

	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")
)

// NetworkError is a transport-level failure: the request never produced
// a usable response. Its message is suitable for direct display.
type NetworkError struct {
	// Action names the operation for the user, e.g. "fetch domains".
	Action string

	// Err is the underlying transport error.
	Err error
}

func (e *NetworkError) Error() string {
	return e.Action + " failed: " + e.Err.Error()
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// BackendError is a non-2xx response. When the backend supplied a detail
// message it becomes the displayed text; otherwise a generic status-based
// message is used.
type BackendError struct {
	Action     string
	StatusCode int
	Status     string
	Detail     string
}

func (e *BackendError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return e.Action + " failed: " + e.Status
}
