// Package constants holds configuration values shared across layers.
package constants

// Pub/Sub provider names accepted in pubsub.provider.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)
