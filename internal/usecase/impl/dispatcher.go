package impl

import (
	"context"
	"log/slog"
	"time"

	"relay/config"
	deliverycontext "relay/internal/delivery/context"
	"relay/internal/domain/entity"
	domainerrors "relay/internal/domain/errors"
	"relay/internal/domain/service"
	"relay/internal/infra/metrics"
	"relay/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// DispatcherParams holds dependencies for the delivery dispatcher, injected by Fx.
type DispatcherParams struct {
	fx.In

	Provider service.PushProvider
	Config   *config.Config
	Metrics  *metrics.Metrics
	Logger   *slog.Logger
}

type deliveryDispatcher struct {
	provider     service.PushProvider
	providerName string
	chunkTimeout time.Duration
	metrics      *metrics.Metrics
	logger       *slog.Logger
}

// NewDeliveryDispatcher creates a dispatcher that submits chunks one at a time.
func NewDeliveryDispatcher(params DispatcherParams) usecase.DeliveryDispatcher {
	return &deliveryDispatcher{
		provider:     params.Provider,
		providerName: params.Provider.Name(),
		chunkTimeout: params.Config.Relay.ChunkTimeout,
		metrics:      params.Metrics,
		logger:       params.Logger,
	}
}

func (d *deliveryDispatcher) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, d.logger)
}

// SendChunk submits a single chunk. Provider errors and panics come back as *DeliveryError.
func (d *deliveryDispatcher) SendChunk(ctx context.Context, index int, chunk entity.Chunk) (tickets []entity.Ticket, err error) {
	if d.chunkTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.chunkTimeout)
		defer cancel()
	}

	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			tickets = nil
			err = domainerrors.NewDeliveryError(index, len(chunk), errors.Errorf("provider panicked: %v", r))
		}
		d.metrics.ObserveChunk(d.providerName, time.Since(start), err)
	}()

	tickets, err = d.provider.SendChunk(ctx, chunk)
	if err != nil {
		return nil, domainerrors.NewDeliveryError(index, len(chunk), err)
	}

	d.metrics.ObserveTickets(d.providerName, tickets)

	return tickets, nil
}

// SendAll submits chunks in order. A failed chunk is logged and skipped; its messages get no tickets.
func (d *deliveryDispatcher) SendAll(ctx context.Context, chunks []entity.Chunk) *usecase.DispatchReport {
	report := &usecase.DispatchReport{
		Tickets: make([]entity.Ticket, 0),
	}

	for idx, chunk := range chunks {
		tickets, err := d.SendChunk(ctx, idx, chunk)
		if err != nil {
			var deliveryErr *domainerrors.DeliveryError
			if !errors.As(err, &deliveryErr) {
				deliveryErr = domainerrors.NewDeliveryError(idx, len(chunk), err)
			}
			report.Failures = append(report.Failures, deliveryErr)

			d.log(ctx).Error("Failed to send chunk",
				slog.String("provider", d.providerName),
				slog.Int("chunk_index", idx),
				slog.Int("chunk_size", len(chunk)),
				slog.Any("error", err),
			)

			continue
		}

		report.Tickets = append(report.Tickets, tickets...)
	}

	return report
}
