package usecase

import (
	"context"

	"relay/internal/domain/entity"
)

// NotificationInput is a single-recipient send request. Empty fields take the relay defaults.
type NotificationInput struct {
	Token entity.PushToken
	Title string
	Body  string
	Data  map[string]any
}

// BroadcastInput is a send request fanned out to every registered token.
type BroadcastInput struct {
	Title string
	Body  string
	Data  map[string]any
}

// SendResult carries the tickets of a single-recipient send
type SendResult struct {
	Tickets []entity.Ticket `json:"tickets"`
}

// BroadcastResult carries the tickets of a broadcast. Count is the number of targeted tokens.
type BroadcastResult struct {
	Count   int             `json:"count"`
	Tickets []entity.Ticket `json:"tickets"`
}

// RelayStatus reports liveness information
type RelayStatus struct {
	Provider         string `json:"provider"`
	RegisteredTokens int    `json:"registeredTokens"`
}

// RelayUsecase defines the push relay operations exposed over HTTP
type RelayUsecase interface {
	// RegisterToken validates and stores a token for later broadcasts
	RegisterToken(ctx context.Context, token entity.PushToken, userID string) error

	// SendNotification delivers one notification to one token
	SendNotification(ctx context.Context, input *NotificationInput) (*SendResult, error)

	// Broadcast delivers the same notification to every registered token.
	// A zero Count means there was nobody to send to and nothing was dispatched.
	Broadcast(ctx context.Context, input *BroadcastInput) (*BroadcastResult, error)

	// Status reports the provider in use and the registry size
	Status(ctx context.Context) *RelayStatus
}
