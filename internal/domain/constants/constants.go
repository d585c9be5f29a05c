// Package constants holds configuration values shared across layers.
package constants

// Environment names
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderLocal    = "local"
	PubSubProviderGoogle   = "google"
	PubSubProviderRabbitMQ = "rabbitmq"
)

// Firestore collection names
const (
	CollectionUsers              = "users"
	CollectionAgencies           = "agencies"
	CollectionPackages           = "packages"
	CollectionBookings           = "bookings"
	CollectionNotificationOutbox = "notificationOutbox"
)

// RoleClaim is the custom claim key holding a user's role on the identity token.
const RoleClaim = "role"
