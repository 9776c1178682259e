package expo

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"relay/config"
	"relay/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, accessToken string) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(config.ExpoConfig{
		BaseURL:        server.URL + "/",
		AccessToken:    accessToken,
		RequestTimeout: 5 * time.Second,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestIsExpoPushToken(t *testing.T) {
	tests := []struct {
		token string
		want  bool
	}{
		{token: "ExponentPushToken[xxxxxxxxxxxxxxxxxxxxxx]", want: true},
		{token: "ExpoPushToken[abc]", want: true},
		{token: "FEDCBA98-7654-3210-fedc-ba9876543210", want: true},
		{token: "ExponentPushToken[missing-bracket", want: false},
		{token: "garbage", want: false},
		{token: "", want: false},
		{token: "abcdefgh-ijkl-mnop-qrst-uvwxyz0123456", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			assert.Equal(t, tt.want, IsExpoPushToken(tt.token))
		})
	}
}

func TestClient_SendChunk_Success(t *testing.T) {
	var received []map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, sendPath, r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))

		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[{"status":"ok","id":"t1"},{"status":"error","message":"gone","details":{"error":"DeviceNotRegistered"}}]}`))
	}, "secret")

	chunk := entity.Chunk{
		{To: "ExponentPushToken[a]", Title: "hi", Body: "there", Data: map[string]any{}, Sound: "default", Badge: 1},
		{To: "ExponentPushToken[b]", Title: "hi", Body: "there", Data: map[string]any{"k": "v"}, Sound: "default", Badge: 1},
	}

	tickets, err := client.SendChunk(context.Background(), chunk)
	require.NoError(t, err)

	require.Len(t, tickets, 2)
	assert.True(t, tickets[0].OK())
	assert.Equal(t, "t1", tickets[0].ID)
	assert.False(t, tickets[1].OK())
	require.NotNil(t, tickets[1].Details)
	assert.Equal(t, entity.TicketErrorDeviceNotRegistered, tickets[1].Details.Error)

	require.Len(t, received, 2)
	assert.Equal(t, "ExponentPushToken[a]", received[0]["to"])
	assert.Equal(t, "default", received[0]["sound"])
	assert.InDelta(t, 1, received[0]["badge"], 0)
	assert.Equal(t, map[string]any{}, received[0]["data"])
}

func TestClient_SendChunk_OmitsAuthorizationWithoutAccessToken(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"data":[{"status":"ok","id":"t1"}]}`))
	}, "")

	tickets, err := client.SendChunk(context.Background(), entity.Chunk{{To: "ExponentPushToken[a]"}})
	require.NoError(t, err)
	assert.Len(t, tickets, 1)
}

func TestClient_SendChunk_Failures(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr string
	}{
		{name: "non 2xx", status: http.StatusBadGateway, body: "upstream down", wantErr: "status 502"},
		{name: "request errors", status: http.StatusOK, body: `{"errors":[{"code":"PUSH_TOO_MANY_EXPERIENCE_IDS","message":"mixed projects"}]}`, wantErr: "PUSH_TOO_MANY_EXPERIENCE_IDS"},
		{name: "ticket count mismatch", status: http.StatusOK, body: `{"data":[]}`, wantErr: "0 tickets for 1 messages"},
		{name: "malformed body", status: http.StatusOK, body: `not-json`, wantErr: "decode expo push response"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}, "")

			tickets, err := client.SendChunk(context.Background(), entity.Chunk{{To: "ExponentPushToken[a]"}})

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Nil(t, tickets)
		})
	}
}

func TestClient_SendChunk_RejectsOversizedChunk(t *testing.T) {
	client := newTestClient(t, func(http.ResponseWriter, *http.Request) {
		t.Fatal("provider must not be called")
	}, "")

	chunk := make(entity.Chunk, client.ChunkLimit()+1)
	_, err := client.SendChunk(context.Background(), chunk)

	assert.Error(t, err)
}

func TestClient_SendChunk_RespectsContext(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}, "")

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := client.SendChunk(ctx, entity.Chunk{{To: "ExponentPushToken[a]"}})

	assert.Error(t, err)
}
