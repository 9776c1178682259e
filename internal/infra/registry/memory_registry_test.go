package registry

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"

	"relay/internal/domain/entity"
	domainerrors "relay/internal/domain/errors"
	"relay/internal/infra/metrics"
	mockSvc "relay/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestRegistry(t *testing.T) (*memoryTokenRegistry, *mockSvc.MockPushProvider) {
	provider := mockSvc.NewMockPushProvider(t)
	reg := NewMemoryTokenRegistry(Params{
		Provider: provider,
		Metrics:  metrics.New(),
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return reg.(*memoryTokenRegistry), provider
}

func TestMemoryTokenRegistry_RegisterIsIdempotent(t *testing.T) {
	reg, provider := newTestRegistry(t)
	ctx := context.Background()
	token := entity.PushToken("ExponentPushToken[abc]")

	provider.EXPECT().ValidateToken(token).Return(true)

	require.NoError(t, reg.Register(ctx, token, "u1"))
	require.NoError(t, reg.Register(ctx, token, "u2"))

	assert.Equal(t, 1, reg.Size(ctx))
	assert.Equal(t, []entity.PushToken{token}, reg.All(ctx))
}

func TestMemoryTokenRegistry_RejectsInvalidToken(t *testing.T) {
	reg, provider := newTestRegistry(t)
	ctx := context.Background()

	provider.EXPECT().ValidateToken(entity.PushToken("garbage")).Return(false)

	err := reg.Register(ctx, "garbage", "u1")

	assert.ErrorIs(t, err, domainerrors.ErrInvalidPushToken)
	assert.Zero(t, reg.Size(ctx))
}

func TestMemoryTokenRegistry_AllReturnsSnapshot(t *testing.T) {
	reg, provider := newTestRegistry(t)
	ctx := context.Background()

	provider.EXPECT().ValidateToken(mock.Anything).Return(true)

	require.NoError(t, reg.Register(ctx, "ExponentPushToken[a]", ""))
	require.NoError(t, reg.Register(ctx, "ExponentPushToken[b]", ""))

	snapshot := reg.All(ctx)
	snapshot[0] = "mutated"

	assert.Equal(t, []entity.PushToken{"ExponentPushToken[a]", "ExponentPushToken[b]"}, reg.All(ctx))
}

func TestMemoryTokenRegistry_ConcurrentRegister(t *testing.T) {
	reg, provider := newTestRegistry(t)
	ctx := context.Background()

	provider.EXPECT().ValidateToken(mock.Anything).Return(true)

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			// Every token is registered twice from different goroutines.
			_ = reg.Register(ctx, entity.PushToken(fmt.Sprintf("ExponentPushToken[%d]", i%25)), "")
		}()
	}
	wg.Wait()

	assert.Equal(t, 25, reg.Size(ctx))
	assert.Len(t, reg.All(ctx), 25)
}
