// Package constants holds identifiers shared across layers.
package constants

// EnvLocal is the env.env value of a developer machine.
const EnvLocal = "local"

// Pub/Sub providers accepted in pubsub.provider
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// QR code payload types
const (
	QRTypeDictionaryEntry = "dictionary_entry"
)

// TokenTypeBearer is the token_type returned by signin.
const TokenTypeBearer = "bearer"
