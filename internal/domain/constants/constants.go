// Package constants holds configuration values shared across layers.
package constants

// Deployment environments
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Mail providers
const (
	MailProviderNoop   = "noop"
	MailProviderSMTP   = "smtp"
	MailProviderPubSub = "pubsub"
)

// OTP challenge stores
const (
	OtpStorePostgres = "postgres"
	OtpStoreRedis    = "redis"
)

// Identity providers
const (
	IdentityProviderGoogle = "google"
)
