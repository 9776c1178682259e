// Package notification implements the push provider backed by Firebase Cloud Messaging.
package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"unicode"

	"relay/internal/domain/constants"
	"relay/internal/domain/entity"
	"relay/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/ecodeclub/ekit/slice"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

const maxFCMTokenLength = 4096

// messagingClient is the subset of *messaging.Client used by the provider
type messagingClient interface {
	SendEach(ctx context.Context, messages []*messaging.Message) (*messaging.BatchResponse, error)
}

type firebaseProvider struct {
	client messagingClient
	logger *slog.Logger
}

// NewFirebaseProvider creates a Firebase-backed push provider
func NewFirebaseProvider(ctx context.Context, projectID, credentialsPath string, logger *slog.Logger) (service.PushProvider, error) {
	var opts []option.ClientOption
	if credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	var appConfig *firebase.Config
	if projectID != "" {
		appConfig = &firebase.Config{ProjectID: projectID}
	}

	app, err := firebase.NewApp(ctx, appConfig, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return newFirebaseProvider(client, logger), nil
}

func newFirebaseProvider(client messagingClient, logger *slog.Logger) *firebaseProvider {
	return &firebaseProvider{
		client: client,
		logger: logger,
	}
}

func (p *firebaseProvider) Name() string {
	return constants.PushProviderFCM
}

func (p *firebaseProvider) ChunkLimit() int {
	return constants.FCMMaxChunkSize
}

// ValidateToken accepts any non-empty registration token without whitespace
func (p *firebaseProvider) ValidateToken(token entity.PushToken) bool {
	s := string(token)
	if s == "" || len(s) > maxFCMTokenLength {
		return false
	}

	return strings.IndexFunc(s, unicode.IsSpace) == -1
}

// SendChunk sends every message of the chunk in a single SendEach call (max 500)
func (p *firebaseProvider) SendChunk(ctx context.Context, chunk entity.Chunk) ([]entity.Ticket, error) {
	if len(chunk) == 0 {
		return nil, nil
	}

	if len(chunk) > constants.FCMMaxChunkSize {
		return nil, errors.Errorf("token count exceeds limit: %d (max %d)", len(chunk), constants.FCMMaxChunkSize)
	}

	messages := slice.Map(chunk, func(_ int, src entity.OutboundMessage) *messaging.Message {
		return toFCMMessage(src)
	})

	response, err := p.client.SendEach(ctx, messages)
	if err != nil {
		return nil, errors.Wrap(err, "failed to send FCM batch")
	}

	if len(response.Responses) != len(chunk) {
		return nil, errors.Errorf("fcm returned %d responses for %d messages", len(response.Responses), len(chunk))
	}

	p.logger.Debug("FCM chunk sent",
		slog.Int("success_count", response.SuccessCount),
		slog.Int("failure_count", response.FailureCount),
	)

	return slice.Map(response.Responses, func(idx int, src *messaging.SendResponse) entity.Ticket {
		return toTicket(chunk[idx].To, src)
	}), nil
}

func toFCMMessage(msg entity.OutboundMessage) *messaging.Message {
	badge := msg.Badge

	return &messaging.Message{
		Token: string(msg.To),
		Notification: &messaging.Notification{
			Title: msg.Title,
			Body:  msg.Body,
		},
		Data: stringifyData(msg.Data),
		Android: &messaging.AndroidConfig{
			Notification: &messaging.AndroidNotification{
				Sound: msg.Sound,
			},
		},
		APNS: &messaging.APNSConfig{
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{
					Badge: &badge,
					Sound: msg.Sound,
				},
			},
		},
	}
}

// stringifyData flattens the payload to FCM's string-only data map; nested values become JSON
func stringifyData(data map[string]any) map[string]string {
	if len(data) == 0 {
		return nil
	}

	out := make(map[string]string, len(data))
	for key, value := range data {
		switch v := value.(type) {
		case string:
			out[key] = v
		case nil:
			out[key] = ""
		default:
			encoded, err := json.Marshal(v)
			if err != nil {
				out[key] = fmt.Sprint(v)

				continue
			}
			out[key] = string(encoded)
		}
	}

	return out
}

func toTicket(token entity.PushToken, resp *messaging.SendResponse) entity.Ticket {
	if resp == nil {
		return entity.Ticket{Status: entity.TicketStatusError, Message: "missing response"}
	}

	if resp.Success {
		return entity.Ticket{Status: entity.TicketStatusOK, ID: resp.MessageID}
	}

	ticket := entity.Ticket{Status: entity.TicketStatusError}
	if resp.Error != nil {
		ticket.Message = resp.Error.Error()
	}

	// Invalid or unregistered tokens are surfaced the same way Expo reports them
	if messaging.IsInvalidArgument(resp.Error) || messaging.IsUnregistered(resp.Error) {
		ticket.Details = &entity.TicketDetails{
			Error:         entity.TicketErrorDeviceNotRegistered,
			ExpoPushToken: string(token),
		}
	}

	return ticket
}
