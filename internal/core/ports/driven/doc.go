// Package driven defines interfaces for infrastructure the core depends on:
// the remote RAG backend, the preference store, and the local history store.
// These are the "driven" ports in hexagonal architecture terminology -
// the application drives them.
//
// Implementations live in internal/adapters/driven.
package driven
