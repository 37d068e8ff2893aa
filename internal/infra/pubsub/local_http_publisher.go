package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"eats/internal/domain/constants"
	"eats/internal/domain/entity"
	"eats/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const localPublishTimeout = 5 * time.Second

// localHTTPPublisher posts events to the stats worker in the Pub/Sub push
// format so development runs without a Pub/Sub emulator.
type localHTTPPublisher struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// PushMessage is the envelope Google Pub/Sub sends to push endpoints.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewLocalHTTPPublisher creates a new local HTTP publisher for development
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: localPublishTimeout,
		},
		logger: logger,
	}
}

// NewPushMessage wraps an event the way Pub/Sub push delivers it.
func NewPushMessage(event *entity.EngagementEvent, publishedAt time.Time) (*PushMessage, error) {
	eventData, err := json.Marshal(event)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	pushMsg := &PushMessage{Subscription: constants.LocalSubscription}
	pushMsg.Message.Data = base64.StdEncoding.EncodeToString(eventData)
	pushMsg.Message.MessageID = uuid.NewString()
	pushMsg.Message.PublishTime = publishedAt.UTC().Format(time.RFC3339)
	pushMsg.Message.Attributes = eventAttributes(event)

	return pushMsg, nil
}

// PublishEngagementEvent sends the event to the local push endpoint.
func (p *localHTTPPublisher) PublishEngagementEvent(ctx context.Context, event *entity.EngagementEvent) error {
	pushMsg, err := NewPushMessage(event, time.Now())
	if err != nil {
		return err
	}

	body, err := json.Marshal(pushMsg)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if event.RequestID != "" {
		req.Header.Set("X-Request-Id", event.RequestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return errors.Errorf("worker returned non-success status: %d", resp.StatusCode)
	}

	p.logger.Debug("[LocalPubSub] Event published",
		slog.String("endpoint", p.endpoint),
		slog.String("restaurant_id", event.RestaurantID),
		slog.String("event_type", string(event.Type)),
	)

	return nil
}

// Close releases resources (no-op for HTTP client)
func (p *localHTTPPublisher) Close() error {
	return nil
}
