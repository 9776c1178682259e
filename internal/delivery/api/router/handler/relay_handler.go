package handler

import (
	"encoding/json"
	"log/slog"

	"relay/internal/delivery/api/response"
	deliverycontext "relay/internal/delivery/context"
	"relay/internal/domain/entity"
	domainerrors "relay/internal/domain/errors"
	"relay/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	statusServerRunning = "Server running"
	messageNoTokens     = "No tokens to send to"
)

// RelayHandlerParams holds dependencies for RelayHandler, injected by Fx.
type RelayHandlerParams struct {
	fx.In

	RelayUC usecase.RelayUsecase
	Logger  *slog.Logger
}

// RelayHandler serves the push relay endpoints
type RelayHandler struct {
	relayUC usecase.RelayUsecase
	logger  *slog.Logger
}

// NewRelayHandler is the constructor for RelayHandler
func NewRelayHandler(params RelayHandlerParams) *RelayHandler {
	return &RelayHandler{
		relayUC: params.RelayUC,
		logger:  params.Logger,
	}
}

// RegisterTokenRequest represents the request body for registering a push token
type RegisterTokenRequest struct {
	Token  string `json:"token" validate:"required"`
	UserID string `json:"userId"`
}

// SendNotificationRequest represents the request body for a single-recipient send
type SendNotificationRequest struct {
	Token string         `json:"token" validate:"required"`
	Title string         `json:"title"`
	Body  string         `json:"body"`
	Data  map[string]any `json:"data"`
}

// BroadcastRequest represents the request body for a broadcast
type BroadcastRequest struct {
	Title string         `json:"title"`
	Body  string         `json:"body"`
	Data  map[string]any `json:"data"`
}

// SuccessResponse acknowledges a registration
type SuccessResponse struct {
	Success bool `json:"success"`
}

// SendNotificationResponse is returned by a completed send
type SendNotificationResponse struct {
	Success bool            `json:"success"`
	Tickets []entity.Ticket `json:"tickets"`
}

// BroadcastResponse is returned by a completed broadcast
type BroadcastResponse struct {
	Success bool            `json:"success"`
	Count   int             `json:"count"`
	Tickets []entity.Ticket `json:"tickets"`
}

// MessageResponse is returned when a request succeeds without doing any work
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// StatusResponse is returned by the liveness check
type StatusResponse struct {
	Status           string `json:"status"`
	RegisteredTokens int    `json:"registeredTokens"`
}

// HealthResponse is returned by the health check
type HealthResponse struct {
	Status   string `json:"status"`
	Provider string `json:"provider"`
}

// bind decodes the request body into req. Fields with the wrong JSON type are skipped
// and the rest of the body is kept. A body that cannot be parsed at all is treated as
// empty, so send and broadcast fall back to their defaults.
func (h *RelayHandler) bind(c echo.Context, req any, reset func()) {
	err := c.Bind(req)
	if err == nil {
		return
	}

	logger := deliverycontext.Logger(c, h.logger)

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		logger.Warn("Ignoring mistyped request field",
			slog.String("path", c.Path()),
			slog.String("field", typeErr.Field),
			slog.Any("error", err),
		)

		return
	}

	logger.Warn("Ignoring malformed request body", slog.String("path", c.Path()), slog.Any("error", err))
	reset()
}

// RegisterToken stores a push token for later broadcasts
func (h *RelayHandler) RegisterToken(c echo.Context) error {
	var req RegisterTokenRequest
	h.bind(c, &req, func() { req = RegisterTokenRequest{} })

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, domainerrors.ErrInvalidPushToken)
	}

	if err := h.relayUC.RegisterToken(c.Request().Context(), entity.PushToken(req.Token), req.UserID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, SuccessResponse{Success: true})
}

// SendNotification delivers one notification to one token
func (h *RelayHandler) SendNotification(c echo.Context) error {
	var req SendNotificationRequest
	h.bind(c, &req, func() { req = SendNotificationRequest{} })

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, domainerrors.ErrInvalidPushToken)
	}

	result, err := h.relayUC.SendNotification(c.Request().Context(), &usecase.NotificationInput{
		Token: entity.PushToken(req.Token),
		Title: req.Title,
		Body:  req.Body,
		Data:  req.Data,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, SendNotificationResponse{
		Success: true,
		Tickets: nonNilTickets(result.Tickets),
	})
}

// Broadcast delivers the same notification to every registered token
func (h *RelayHandler) Broadcast(c echo.Context) error {
	var req BroadcastRequest
	h.bind(c, &req, func() { req = BroadcastRequest{} })

	result, err := h.relayUC.Broadcast(c.Request().Context(), &usecase.BroadcastInput{
		Title: req.Title,
		Body:  req.Body,
		Data:  req.Data,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if result.Count == 0 {
		return response.Success(c, MessageResponse{Success: true, Message: messageNoTokens})
	}

	return response.Success(c, BroadcastResponse{
		Success: true,
		Count:   result.Count,
		Tickets: nonNilTickets(result.Tickets),
	})
}

// Status reports that the server is up and how many tokens it holds
func (h *RelayHandler) Status(c echo.Context) error {
	status := h.relayUC.Status(c.Request().Context())

	return response.Success(c, StatusResponse{
		Status:           statusServerRunning,
		RegisteredTokens: status.RegisteredTokens,
	})
}

// Health is the probe endpoint for orchestrators
func (h *RelayHandler) Health(c echo.Context) error {
	status := h.relayUC.Status(c.Request().Context())

	return response.Success(c, HealthResponse{
		Status:   "ok",
		Provider: status.Provider,
	})
}

func nonNilTickets(tickets []entity.Ticket) []entity.Ticket {
	if tickets == nil {
		return []entity.Ticket{}
	}

	return tickets
}
