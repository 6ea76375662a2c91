package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"cafe/internal/domain/service"

	"github.com/pkg/errors"
)

// localHTTPPublisher posts each event to a development endpoint in the same
// envelope a Pub/Sub push subscription would deliver.
type localHTTPPublisher struct {
	endpoint     string
	subscription string
	httpClient   *http.Client
	logger       *slog.Logger
}

// PubSubPushMessage is the push subscription request body.
type PubSubPushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		OrderingKey string            `json:"orderingKey,omitempty"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

func NewLocalHTTPPublisher(endpoint, topicID string, logger *slog.Logger) service.EventPublisher {
	if topicID == "" {
		topicID = defaultTopicID
	}

	return &localHTTPPublisher{
		endpoint:     endpoint,
		subscription: "projects/local/subscriptions/" + topicID + "-push",
		httpClient:   &http.Client{Timeout: 10 * time.Second},
		logger:       logger,
	}
}

func (p *localHTTPPublisher) PublishCatalogEvent(ctx context.Context, event *service.CatalogEvent) error {
	msg, err := encodeCatalogEvent(event)
	if err != nil {
		return err
	}

	var push PubSubPushMessage
	push.Subscription = p.subscription
	push.Message.Data = base64.StdEncoding.EncodeToString(msg.data)
	push.Message.Attributes = msg.attributes
	push.Message.MessageID = event.EventID
	push.Message.OrderingKey = msg.orderingKey
	push.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)

	body, err := json.Marshal(push)
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
		return errors.Wrapf(err, "failed to push %s", event.Type)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return errors.Errorf("push endpoint returned status %d for %s", resp.StatusCode, event.Type)
	}

	p.logger.DebugContext(ctx, "Catalog event pushed",
		slog.String("event_type", event.Type),
		slog.String("event_id", event.EventID),
	)

	return nil
}

func (p *localHTTPPublisher) Close() error {
	p.httpClient.CloseIdleConnections()

	return nil
}
