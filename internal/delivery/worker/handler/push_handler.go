package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"eats/config"
	deliverycontext "eats/internal/delivery/context"
	"eats/internal/domain/constants"
	"eats/internal/domain/entity"
	domainerrors "eats/internal/domain/errors"
	"eats/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// TokenVerifier checks the OIDC token Pub/Sub attaches to push requests.
type TokenVerifier func(req *http.Request) error

// PushHandler counts engagement events delivered by Pub/Sub push.
type PushHandler struct {
	verifyPushAuth bool
	verifyToken    TokenVerifier
	logger         *slog.Logger
	analyticsUC    usecase.AnalyticsUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config      *config.Config
	Logger      *slog.Logger
	AnalyticsUC usecase.AnalyticsUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Only real Pub/Sub deliveries outside development carry a token
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		verifyToken:    verifyPubSubToken,
		logger:         params.Logger,
		analyticsUC:    params.AnalyticsUC,
	}
}

// HandlePush handles incoming Pub/Sub push messages.
// 2xx acknowledges the message, 503 asks Pub/Sub to redeliver it.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event entity.EngagementEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse engagement event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := h.extractRequestID(ctx, &pushMsg, &event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))

	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	if err := h.analyticsUC.Apply(ctx, &event); err != nil {
		retryable := !errors.Is(err, domainerrors.ErrValidationFailed)
		reqLogger.Error("[Worker] Failed to count engagement event",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.String("restaurant_id", event.RestaurantID),
			slog.String("type", string(event.Type)),
			slog.Any("error", err),
			slog.Bool("retryable", retryable),
		)
		// A malformed event never succeeds, so it is acknowledged and dropped
		if retryable {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Debug("[Worker] Engagement event counted",
		slog.String("message_id", pushMsg.Message.MessageID),
		slog.String("restaurant_id", event.RestaurantID),
		slog.String("type", string(event.Type)),
	)

	return c.NoContent(http.StatusOK)
}

// extractRequestID prefers the message attribute, then the event, then the
// request context, and generates one as a last resort.
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *entity.EngagementEvent) string {
	if requestID := pushMsg.Message.Attributes[constants.AttrRequestID]; requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	token, found := strings.CutPrefix(authHeader, "Bearer ")
	if !found {
		return errors.New("invalid authorization header format")
	}

	// The audience is the URL of this endpoint
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
