// Package constants holds shared domain-level constant values.
package constants

// Deployment environments.
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub provider types for event publishing.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Push provider types for notification delivery.
const (
	PushProviderLocal    = "local"
	PushProviderFirebase = "firebase"
)
