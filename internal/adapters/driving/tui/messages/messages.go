// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/kiosklabs/ragchat-cli/internal/core/domain"
)

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewLanding is the entry screen with the mode choice.
	ViewLanding ViewType = iota
	// ViewDomains is the knowledge domain picker.
	ViewDomains
	// ViewChat is the conversation view.
	ViewChat
	// ViewAdmin is the store and document management view.
	ViewAdmin
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewLanding:
		return "landing"
	case ViewDomains:
		return "domains"
	case ViewChat:
		return "chat"
	case ViewAdmin:
		return "admin"
	default:
		return "unknown"
	}
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}

// DomainsLoaded carries the available knowledge domains.
type DomainsLoaded struct {
	Domains []string
	Err     error
}

// DomainSelected signals a knowledge domain was chosen for chat.
type DomainSelected struct {
	Domain      string
	DisplayName string
}

// ChatCompleted carries the backend reply for a sent message. Domain
// identifies which conversation the request belonged to; replies for a
// domain other than the active one are discarded.
type ChatCompleted struct {
	Domain   string
	Response domain.ChatResponse
	Err      error
}

// SuggestionsLoaded carries follow-up suggestions for the last answer.
type SuggestionsLoaded struct {
	Domain      string
	Suggestions []string
	Err         error
}

// StoresLoaded carries the list of document stores.
type StoresLoaded struct {
	Stores []domain.Store
	Err    error
}

// StoreCreated signals a store creation attempt finished.
type StoreCreated struct {
	Result domain.CreateStoreResult
	Err    error
}

// StoreDeleted signals a store was deleted.
type StoreDeleted struct {
	Domain string
	Err    error
}

// StoresReset signals the delete-all-and-recreate flow finished.
type StoresReset struct {
	Deleted domain.DeleteAllResult
	Created domain.CreateAllResult
	Err     error
}

// StoresSeeded signals the create-predefined-set call finished. Unlike
// StoresReset, nothing was deleted first.
type StoresSeeded struct {
	Created domain.CreateAllResult
	Err     error
}

// DocumentsLoaded carries the document list for a store.
type DocumentsLoaded struct {
	Domain    string
	Documents []domain.DocumentInfo
	Err       error
}

// DocumentDeleted signals a document was removed from a store.
type DocumentDeleted struct {
	Domain string
	Name   string
	Err    error
}

// UploadFinished signals a batch upload ended. Uploaded holds the
// filenames accepted before the first failure, if any.
type UploadFinished struct {
	Domain   string
	Uploaded []string
	Err      error
}

// BannerExpired clears a transient status banner. Generation guards
// against an old timer wiping a newer banner.
type BannerExpired struct {
	Generation int
}

// ThemeToggled signals the color scheme flipped.
type ThemeToggled struct {
	Dark bool
	Err  error
}
