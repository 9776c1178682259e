// Package entity contains the core business objects of the project.
package entity

// PushToken is the opaque device address issued by the push provider.
type PushToken string

// Ticket statuses reported by the push provider.
const (
	TicketStatusOK    = "ok"
	TicketStatusError = "error"
)

// TicketErrorDeviceNotRegistered marks a token the provider no longer accepts.
const TicketErrorDeviceNotRegistered = "DeviceNotRegistered"

// OutboundMessage is a single notification addressed to one push token.
type OutboundMessage struct {
	To    PushToken      `json:"to"`              // Destination push token.
	Title string         `json:"title,omitempty"` // Notification title shown on the device.
	Body  string         `json:"body,omitempty"`  // Notification body text.
	Data  map[string]any `json:"data"`            // Arbitrary payload delivered to the app.
	Sound string         `json:"sound,omitempty"` // Sound to play, "default" for the system sound.
	Badge int            `json:"badge"`           // App icon badge count.
}

// Chunk is an ordered group of messages that fits in a single provider request.
type Chunk []OutboundMessage

// TicketDetails carries provider-specific error information for a ticket.
type TicketDetails struct {
	Error         string `json:"error,omitempty"`
	ExpoPushToken string `json:"expoPushToken,omitempty"`
}

// Ticket is the provider's per-message receipt for a submitted notification.
type Ticket struct {
	Status  string         `json:"status"`            // "ok" or "error".
	ID      string         `json:"id,omitempty"`      // Receipt ID when accepted.
	Message string         `json:"message,omitempty"` // Human-readable error when rejected.
	Details *TicketDetails `json:"details,omitempty"` // Error classification when rejected.
}

// OK reports whether the provider accepted the message.
func (t Ticket) OK() bool {
	return t.Status == TicketStatusOK
}
