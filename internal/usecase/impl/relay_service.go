package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"relay/config"
	deliverycontext "relay/internal/delivery/context"
	"relay/internal/domain/constants"
	"relay/internal/domain/entity"
	domainerrors "relay/internal/domain/errors"
	"relay/internal/domain/repository"
	"relay/internal/domain/service"
	"relay/internal/usecase"

	"github.com/ecodeclub/ekit/slice"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// RelayServiceParams holds dependencies for the relay service, injected by Fx.
type RelayServiceParams struct {
	fx.In

	Registry   repository.TokenRegistry
	Provider   service.PushProvider
	Dispatcher usecase.DeliveryDispatcher
	Publisher  service.EventPublisher
	Config     *config.Config
	Logger     *slog.Logger
}

// relayService implements the RelayUsecase interface.
type relayService struct {
	registry   repository.TokenRegistry
	provider   service.PushProvider
	dispatcher usecase.DeliveryDispatcher
	publisher  service.EventPublisher
	chunkSize  int

	// publishTimeout caps how long a response waits on the event publisher, zero means no cap
	publishTimeout time.Duration
	logger         *slog.Logger
}

// NewRelayService is the constructor for relayService.
func NewRelayService(params RelayServiceParams) usecase.RelayUsecase {
	return &relayService{
		registry:   params.Registry,
		provider:   params.Provider,
		dispatcher: params.Dispatcher,
		publisher:  params.Publisher,
		chunkSize:  params.Config.Relay.ChunkSize,

		publishTimeout: params.Config.Relay.PublishTimeout,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *relayService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *relayService) RegisterToken(ctx context.Context, token entity.PushToken, userID string) error {
	if err := srv.registry.Register(ctx, token, userID); err != nil {
		srv.log(ctx).Warn("Rejected push token registration", slog.String("user_id", userID), slog.Any("error", err))

		return err
	}

	return nil
}

func (srv *relayService) SendNotification(ctx context.Context, input *usecase.NotificationInput) (result *usecase.SendResult, err error) {
	defer srv.recoverAs(ctx, domainerrors.ErrSendNotificationFailed, &err)

	if input == nil || !srv.provider.ValidateToken(input.Token) {
		return nil, domainerrors.ErrInvalidPushToken
	}

	message := newOutboundMessage(
		input.Token,
		valueOrDefault(input.Title, constants.DefaultNotificationTitle),
		valueOrDefault(input.Body, constants.DefaultNotificationBody),
		input.Data,
	)

	report, err := srv.dispatch(ctx, []entity.OutboundMessage{message})
	if err != nil {
		srv.log(ctx).Error("Failed to send notification", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrSendNotificationFailed, err.Error())
	}

	srv.publish(ctx, service.DispatchKindSend, 1, report)

	return &usecase.SendResult{Tickets: report.Tickets}, nil
}

func (srv *relayService) Broadcast(ctx context.Context, input *usecase.BroadcastInput) (result *usecase.BroadcastResult, err error) {
	defer srv.recoverAs(ctx, domainerrors.ErrBroadcastFailed, &err)

	if input == nil {
		input = &usecase.BroadcastInput{}
	}

	tokens := srv.registry.All(ctx)
	if len(tokens) == 0 {
		srv.log(ctx).Info("Broadcast skipped, no registered tokens")

		return &usecase.BroadcastResult{Tickets: []entity.Ticket{}}, nil
	}

	title := valueOrDefault(input.Title, constants.DefaultBroadcastTitle)
	body := valueOrDefault(input.Body, constants.DefaultBroadcastBody)
	messages := slice.Map(tokens, func(_ int, token entity.PushToken) entity.OutboundMessage {
		return newOutboundMessage(token, title, body, input.Data)
	})

	report, err := srv.dispatch(ctx, messages)
	if err != nil {
		srv.log(ctx).Error("Failed to broadcast", slog.Int("token_count", len(tokens)), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrBroadcastFailed, err.Error())
	}

	srv.publish(ctx, service.DispatchKindBroadcast, len(messages), report)

	return &usecase.BroadcastResult{
		Count:   len(tokens),
		Tickets: report.Tickets,
	}, nil
}

func (srv *relayService) Status(ctx context.Context) *usecase.RelayStatus {
	return &usecase.RelayStatus{
		Provider:         srv.provider.Name(),
		RegisteredTokens: srv.registry.Size(ctx),
	}
}

// recoverAs turns a panic anywhere in the pipeline into the operation's failure error.
// It must be deferred directly by the operation.
func (srv *relayService) recoverAs(ctx context.Context, failure *domainerrors.BaseError, errp *error) {
	if r := recover(); r != nil {
		srv.log(ctx).Error(failure.Message(), slog.Any("panic", r))
		*errp = failure.WrapMessage(fmt.Sprintf("recovered panic: %v", r))
	}
}

// dispatch chunks the messages and hands them to the dispatcher. Only chunking can fail;
// per-chunk delivery failures are folded into the report.
func (srv *relayService) dispatch(ctx context.Context, messages []entity.OutboundMessage) (*usecase.DispatchReport, error) {
	chunks, err := ChunkMessages(messages, srv.maxChunkSize())
	if err != nil {
		return nil, err
	}

	report := srv.dispatcher.SendAll(ctx, chunks)
	if failures := report.Err(); failures != nil {
		srv.log(ctx).Warn("Dispatch completed with failed chunks",
			slog.Int("chunks", len(chunks)),
			slog.Int("failed_chunks", len(report.Failures)),
			slog.Int("tickets", len(report.Tickets)),
			slog.Any("error", failures),
		)
	}

	return report, nil
}

// maxChunkSize is the provider limit, lowered by relay.chunkSize when configured.
func (srv *relayService) maxChunkSize() int {
	limit := srv.provider.ChunkLimit()
	if srv.chunkSize > 0 && (limit <= 0 || srv.chunkSize < limit) {
		return srv.chunkSize
	}

	return limit
}

// publish emits a dispatch event. Publishing problems never affect the HTTP response.
func (srv *relayService) publish(ctx context.Context, kind string, messageCount int, report *usecase.DispatchReport) {
	event := &service.DispatchEvent{
		RequestID:    deliverycontext.GetRequestIDFromContext(ctx),
		Kind:         kind,
		Provider:     srv.provider.Name(),
		MessageCount: messageCount,
		TicketCount:  len(report.Tickets),
		FailedChunks: len(report.Failures),
		Tickets:      report.Tickets,
		DispatchedAt: time.Now().UTC(),
	}

	if srv.publishTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, srv.publishTimeout)
		defer cancel()
	}

	if err := srv.publisher.PublishDispatchEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish dispatch event", slog.String("kind", kind), slog.Any("error", err))
	}
}

func newOutboundMessage(token entity.PushToken, title, body string, data map[string]any) entity.OutboundMessage {
	if data == nil {
		data = map[string]any{}
	}

	return entity.OutboundMessage{
		To:    token,
		Title: title,
		Body:  body,
		Data:  data,
		Sound: constants.DefaultSound,
		Badge: constants.DefaultBadge,
	}
}

func valueOrDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}

	return value
}
