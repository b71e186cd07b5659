// Package constants holds configuration values shared across layers.
package constants

// Pub/Sub providers
const (
	PubSubProviderNoop   = "noop"
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Checkout price policies
const (
	// PricePolicySnapshot honors the price captured when the item entered the cart.
	PricePolicySnapshot = "snapshot"
	// PricePolicyLive re-prices every line from the catalog at commit time.
	PricePolicyLive = "live"
)

// MaxLineQuantity bounds the quantity of one cart line or order line, merged
// quantities included. The validate tags and the quantity check constraints
// repeat this value.
const MaxLineQuantity = 10000

// DefaultCurrency is used when neither the request nor the config names one.
const DefaultCurrency = "USD"
