package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"relay/config"
	"relay/internal/domain/constants"
	"relay/internal/domain/entity"
	"relay/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testEvent() *service.DispatchEvent {
	return &service.DispatchEvent{
		RequestID:    "req-1",
		Kind:         service.DispatchKindBroadcast,
		Provider:     constants.PushProviderExpo,
		MessageCount: 2,
		TicketCount:  1,
		FailedChunks: 1,
		Tickets:      []entity.Ticket{{Status: entity.TicketStatusOK, ID: "t1"}},
		DispatchedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestLocalHTTPPublisher_PublishDispatchEvent(t *testing.T) {
	var envelope PushEnvelope
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&envelope))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	require.NoError(t, publisher.PublishDispatchEvent(context.Background(), testEvent()))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, localSubscription, envelope.Subscription)
	assert.Equal(t, "broadcast", envelope.Message.Attributes["kind"])
	assert.Equal(t, "1", envelope.Message.Attributes["failed_chunks"])
	assert.NotEmpty(t, envelope.Message.MessageID)

	raw, err := base64.StdEncoding.DecodeString(envelope.Message.Data)
	require.NoError(t, err)

	var decoded service.DispatchEvent
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, *testEvent(), decoded)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	err := publisher.PublishDispatchEvent(context.Background(), testEvent())

	assert.ErrorContains(t, err, "503")
}

func TestNewEventPublisher(t *testing.T) {
	tests := []struct {
		name    string
		pubsub  *config.PubSubConfig
		wantErr bool
		wantNop bool
	}{
		{name: "not configured", pubsub: nil, wantNop: true},
		{name: "empty provider", pubsub: &config.PubSubConfig{}, wantNop: true},
		{name: "local", pubsub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://localhost:9999"}},
		{name: "local without endpoint", pubsub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}, wantErr: true},
		{name: "google without project", pubsub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, TopicID: "t"}, wantErr: true},
		{name: "google without topic", pubsub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, ProjectID: "p"}, wantErr: true},
		{name: "unknown", pubsub: &config.PubSubConfig{Provider: "kafka"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     lc,
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.pubsub},
				Logger: discardLogger(),
			})

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			_, isNoop := publisher.(*noopPublisher)
			assert.Equal(t, tt.wantNop, isNoop)
			if isNoop {
				assert.NoError(t, publisher.PublishDispatchEvent(context.Background(), testEvent()))
			}
			lc.RequireStart().RequireStop()
		})
	}
}
