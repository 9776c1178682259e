// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"relay/internal/domain/entity"
)

// TokenRegistry holds the push tokens eligible for broadcast.
type TokenRegistry interface {
	// Register validates the token and adds it to the set. Registering a
	// known token is a no-op.
	Register(ctx context.Context, token entity.PushToken, userID string) error

	// All returns a snapshot of every registered token.
	All(ctx context.Context) []entity.PushToken

	// Size returns the number of distinct registered tokens.
	Size(ctx context.Context) int
}
