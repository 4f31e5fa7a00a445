// Package constants contains values shared between configuration and infrastructure.
package constants

const (
	// EnvDevelop is the environment name used for local development.
	EnvDevelop = "develop"
	// EnvProduction is the environment name used in production.
	EnvProduction = "production"
)

const (
	// PubSubProviderLocal posts events to a local worker over HTTP.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle publishes events to Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"
)

const (
	// PaymentProviderHosted redirects customers to a hosted payment page.
	PaymentProviderHosted = "hosted"
	// PaymentProviderSandbox settles nothing and redirects straight to the success URL.
	PaymentProviderSandbox = "sandbox"
	// PaymentProviderWallet marks checkout sessions settled entirely by store credit.
	PaymentProviderWallet = "wallet"
)

// Event types carried in the "event_type" Pub/Sub attribute.
const (
	EventStockUpdateRequested = "stock_update.requested"
	EventStockUpdateDecided   = "stock_update.decided"
)

// DefaultAnonymousEmailPrefix marks customers created for guest checkouts.
const DefaultAnonymousEmailPrefix = "anonymous-session-"
