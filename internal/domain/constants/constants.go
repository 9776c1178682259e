package constants

// Push provider kinds selectable through provider.kind.
const (
	PushProviderExpo = "expo"
	PushProviderFCM  = "fcm"
)

// Pub/Sub provider kinds selectable through pubsub.provider.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Chunk limits published by the upstream providers.
const (
	ExpoMaxChunkSize = 100
	FCMMaxChunkSize  = 500
)

// Message defaults applied when a request leaves a field empty.
const (
	DefaultNotificationTitle = "New Notification"
	DefaultNotificationBody  = "You have a new message"
	DefaultBroadcastTitle    = "Broadcast Message"
	DefaultBroadcastBody     = "This is a broadcast notification"
	DefaultSound             = "default"
	DefaultBadge             = 1
)
