package constants

// Deployment environments
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderNoop   = "noop"
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Pub/Sub message attribute names
const (
	AttrEventType    = "event_type"
	AttrRestaurantID = "restaurant_id"
	AttrRequestID    = "request_id"
)

// LocalSubscription names the simulated push subscription of the local provider.
const LocalSubscription = "projects/local/subscriptions/engagement-events"
