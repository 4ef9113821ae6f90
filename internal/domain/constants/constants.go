package constants

// Runtime environments
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Transition transport providers
const (
	PubSubProviderChannel  = "channel"
	PubSubProviderLocal    = "local"
	PubSubProviderGoogle   = "google"
	PubSubProviderRabbitMQ = "rabbitmq"
)

// Permissions carried in access tokens
const (
	PermissionFineLocation = "location.fine"
)
