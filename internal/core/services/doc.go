// Package services implements the driving port interfaces.
// Services contain the client-side business rules (input validation,
// sequential upload semantics, theme resolution) and orchestrate calls
// to driven ports (backend, preference store, history store).
package services
