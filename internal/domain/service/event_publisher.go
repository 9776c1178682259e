package service

import (
	"context"
	"time"

	"relay/internal/domain/entity"
)

// Dispatch kinds carried by DispatchEvent.
const (
	DispatchKindSend      = "send"
	DispatchKindBroadcast = "broadcast"
)

// DispatchEvent summarizes one relay request for downstream receipt processing
type DispatchEvent struct {
	RequestID    string          `json:"request_id,omitempty"` // For distributed tracing
	Kind         string          `json:"kind"`
	Provider     string          `json:"provider"`
	MessageCount int             `json:"message_count"`
	TicketCount  int             `json:"ticket_count"`
	FailedChunks int             `json:"failed_chunks"`
	Tickets      []entity.Ticket `json:"tickets"`
	DispatchedAt time.Time       `json:"dispatched_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishDispatchEvent publishes the outcome of a dispatch
	PublishDispatchEvent(ctx context.Context, event *DispatchEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
