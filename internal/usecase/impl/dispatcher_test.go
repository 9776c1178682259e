package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"relay/config"
	"relay/internal/domain/entity"
	domainerrors "relay/internal/domain/errors"
	"relay/internal/infra/metrics"
	mockSvc "relay/internal/mocks/service"
	"relay/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func createTestDispatcher(t *testing.T, chunkTimeout time.Duration) (usecase.DeliveryDispatcher, *mockSvc.MockPushProvider) {
	provider := mockSvc.NewMockPushProvider(t)
	provider.EXPECT().Name().Return("expo")

	cfg := &config.Config{}
	cfg.Relay.ChunkTimeout = chunkTimeout

	dispatcher := NewDeliveryDispatcher(DispatcherParams{
		Provider: provider,
		Config:   cfg,
		Metrics:  metrics.New(),
		Logger:   newDiscardLogger(),
	})

	return dispatcher, provider
}

func okTickets(ids ...string) []entity.Ticket {
	tickets := make([]entity.Ticket, 0, len(ids))
	for _, id := range ids {
		tickets = append(tickets, entity.Ticket{Status: entity.TicketStatusOK, ID: id})
	}

	return tickets
}

func TestDeliveryDispatcher_SendAll_IsolatesFailedChunk(t *testing.T) {
	dispatcher, provider := createTestDispatcher(t, 0)
	ctx := context.Background()

	chunks, err := ChunkMessages(makeMessages(5), 2)
	require.NoError(t, err)
	require.Len(t, chunks, 3)

	provider.EXPECT().SendChunk(mock.Anything, chunks[0]).Return(okTickets("a", "b"), nil).Once()
	provider.EXPECT().SendChunk(mock.Anything, chunks[1]).Return(nil, errors.New("upstream 503")).Once()
	provider.EXPECT().SendChunk(mock.Anything, chunks[2]).Return(okTickets("e"), nil).Once()

	report := dispatcher.SendAll(ctx, chunks)

	assert.Equal(t, okTickets("a", "b", "e"), report.Tickets)
	require.Len(t, report.Failures, 1)
	assert.Equal(t, 1, report.Failures[0].ChunkIndex)
	assert.Equal(t, 2, report.Failures[0].Size)
	assert.ErrorContains(t, report.Err(), "upstream 503")
}

func TestDeliveryDispatcher_SendAll_AllSucceed(t *testing.T) {
	dispatcher, provider := createTestDispatcher(t, 0)

	chunks, err := ChunkMessages(makeMessages(3), 100)
	require.NoError(t, err)

	provider.EXPECT().SendChunk(mock.Anything, chunks[0]).Return(okTickets("a", "b", "c"), nil).Once()

	report := dispatcher.SendAll(context.Background(), chunks)

	assert.Len(t, report.Tickets, 3)
	assert.Empty(t, report.Failures)
	assert.NoError(t, report.Err())
}

func TestDeliveryDispatcher_SendAll_NoChunks(t *testing.T) {
	dispatcher, _ := createTestDispatcher(t, 0)

	report := dispatcher.SendAll(context.Background(), nil)

	assert.NotNil(t, report.Tickets)
	assert.Empty(t, report.Tickets)
	assert.NoError(t, report.Err())
}

func TestDeliveryDispatcher_SendChunk_RecoversPanic(t *testing.T) {
	dispatcher, provider := createTestDispatcher(t, 0)
	chunk := entity.Chunk(makeMessages(1))

	provider.EXPECT().SendChunk(mock.Anything, chunk).RunAndReturn(
		func(context.Context, entity.Chunk) ([]entity.Ticket, error) {
			panic("nil map write")
		},
	).Once()

	tickets, err := dispatcher.SendChunk(context.Background(), 4, chunk)

	assert.Nil(t, tickets)
	var deliveryErr *domainerrors.DeliveryError
	require.ErrorAs(t, err, &deliveryErr)
	assert.Equal(t, 4, deliveryErr.ChunkIndex)
	assert.Contains(t, err.Error(), "provider panicked")
}

func TestDeliveryDispatcher_SendChunk_AppliesTimeout(t *testing.T) {
	dispatcher, provider := createTestDispatcher(t, 10*time.Millisecond)
	chunk := entity.Chunk(makeMessages(1))

	provider.EXPECT().SendChunk(mock.Anything, chunk).RunAndReturn(
		func(ctx context.Context, _ entity.Chunk) ([]entity.Ticket, error) {
			deadline, ok := ctx.Deadline()
			assert.True(t, ok)
			assert.WithinDuration(t, time.Now().Add(10*time.Millisecond), deadline, time.Second)
			<-ctx.Done()

			return nil, ctx.Err()
		},
	).Once()

	_, err := dispatcher.SendChunk(context.Background(), 0, chunk)

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestDeliveryDispatcher_SendChunk_NoTimeoutByDefault(t *testing.T) {
	dispatcher, provider := createTestDispatcher(t, 0)
	chunk := entity.Chunk(makeMessages(1))

	provider.EXPECT().SendChunk(mock.Anything, chunk).RunAndReturn(
		func(ctx context.Context, _ entity.Chunk) ([]entity.Ticket, error) {
			_, ok := ctx.Deadline()
			assert.False(t, ok)

			return okTickets("a"), nil
		},
	).Once()

	tickets, err := dispatcher.SendChunk(context.Background(), 0, chunk)

	require.NoError(t, err)
	assert.Len(t, tickets, 1)
}
