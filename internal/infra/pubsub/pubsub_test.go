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

	"eats/config"
	"eats/internal/domain/constants"
	"eats/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleEvent() *entity.EngagementEvent {
	return &entity.EngagementEvent{
		RequestID:    "req-1",
		RestaurantID: "6",
		Type:         entity.EventDishView,
		ItemID:       "fish-tacos",
		ItemName:     "Fish Tacos",
		OccurredAt:   time.Date(2024, time.June, 12, 18, 0, 0, 0, time.UTC),
	}
}

func TestNewPushMessage(t *testing.T) {
	event := sampleEvent()

	msg, err := NewPushMessage(event, event.OccurredAt)
	require.NoError(t, err)
	assert.Equal(t, constants.LocalSubscription, msg.Subscription)
	assert.Equal(t, "2024-06-12T18:00:00Z", msg.Message.PublishTime)
	assert.NotEmpty(t, msg.Message.MessageID)
	assert.Equal(t, map[string]string{
		"event_type":    "dish_view",
		"restaurant_id": "6",
		"request_id":    "req-1",
	}, msg.Message.Attributes)

	data, err := base64.StdEncoding.DecodeString(msg.Message.Data)
	require.NoError(t, err)
	var decoded entity.EngagementEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *event, decoded)
}

func TestLocalHTTPPublisher(t *testing.T) {
	var received PushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.Equal(t, http.MethodPost, r.Method)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	require.NoError(t, publisher.PublishEngagementEvent(context.Background(), sampleEvent()))
	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "6", received.Message.Attributes[constants.AttrRestaurantID])
	assert.NoError(t, publisher.Close())
}

func TestLocalHTTPPublisher_WorkerFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	err := publisher.PublishEngagementEvent(context.Background(), sampleEvent())
	assert.ErrorContains(t, err, "503")
}

func TestNewEventPublisher(t *testing.T) {
	tests := []struct {
		name    string
		pubsub  *config.PubSubConfig
		wantErr string
		noop    bool
	}{
		{name: "unset", noop: true},
		{name: "noop", pubsub: &config.PubSubConfig{Provider: constants.PubSubProviderNoop}, noop: true},
		{name: "local", pubsub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://localhost:8081/push"}},
		{name: "local without endpoint", pubsub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}, wantErr: "local endpoint"},
		{name: "google without project", pubsub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, TopicID: "t"}, wantErr: "project ID"},
		{name: "google without topic", pubsub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, ProjectID: "p"}, wantErr: "topic ID"},
		{name: "unknown", pubsub: &config.PubSubConfig{Provider: "kafka"}, wantErr: "unknown pubsub provider"},
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

			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			_, isNoop := publisher.(*noopPublisher)
			assert.Equal(t, tt.noop, isNoop)
			lc.RequireStart().RequireStop()
		})
	}
}
