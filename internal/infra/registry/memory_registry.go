// Package registry keeps the broadcast token set in process memory.
package registry

import (
	"context"
	"log/slog"
	"sync"

	deliverycontext "relay/internal/delivery/context"
	"relay/internal/domain/entity"
	domainerrors "relay/internal/domain/errors"
	"relay/internal/domain/repository"
	"relay/internal/domain/service"
	"relay/internal/infra/metrics"

	"go.uber.org/fx"
)

// Params holds dependencies for the in-memory registry, injected by Fx.
type Params struct {
	fx.In

	Provider service.PushProvider
	Metrics  *metrics.Metrics
	Logger   *slog.Logger
}

// memoryTokenRegistry is a mutex-guarded set that remembers insertion order.
type memoryTokenRegistry struct {
	mu       sync.RWMutex
	tokens   map[entity.PushToken]struct{}
	order    []entity.PushToken
	provider service.PushProvider
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

// NewMemoryTokenRegistry creates an empty registry that validates tokens against the provider.
func NewMemoryTokenRegistry(params Params) repository.TokenRegistry {
	return &memoryTokenRegistry{
		tokens:   make(map[entity.PushToken]struct{}),
		provider: params.Provider,
		metrics:  params.Metrics,
		logger:   params.Logger,
	}
}

func (r *memoryTokenRegistry) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, r.logger)
}

func (r *memoryTokenRegistry) Register(ctx context.Context, token entity.PushToken, userID string) error {
	if !r.provider.ValidateToken(token) {
		return domainerrors.ErrInvalidPushToken
	}

	r.mu.Lock()
	_, exists := r.tokens[token]
	if !exists {
		r.tokens[token] = struct{}{}
		r.order = append(r.order, token)
	}
	size := len(r.order)
	r.mu.Unlock()

	r.metrics.TokenRegistered(size)

	r.log(ctx).Info("Push token registered",
		slog.String("user_id", userID),
		slog.Bool("new", !exists),
		slog.Int("registered_tokens", size),
	)

	return nil
}

func (r *memoryTokenRegistry) All(_ context.Context) []entity.PushToken {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot := make([]entity.PushToken, len(r.order))
	copy(snapshot, r.order)

	return snapshot
}

func (r *memoryTokenRegistry) Size(_ context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.order)
}
