package service

import (
	"context"

	"relay/internal/domain/entity"
)

// PushProvider is the upstream push delivery service the relay forwards to.
type PushProvider interface {
	// Name identifies the provider in logs and metrics.
	Name() string

	// ValidateToken reports whether the token is addressable by this provider.
	ValidateToken(token entity.PushToken) bool

	// ChunkLimit is the maximum number of messages accepted per request.
	ChunkLimit() int

	// SendChunk submits one chunk and returns one ticket per message, in order.
	SendChunk(ctx context.Context, chunk entity.Chunk) ([]entity.Ticket, error)
}
