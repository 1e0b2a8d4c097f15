// Package domain defines the core entities for the ragchat client.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external service dependencies and defines the fundamental types:
//
//   - Store: A knowledge category (domain) on the backend
//   - DocumentInfo: A document uploaded into a store
//   - Message: A tagged chat transcript entry (UserMessage | BotMessage)
//   - Source: A citation attached to a bot reply
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. All other packages depend on
// domain, never the reverse.
package domain
