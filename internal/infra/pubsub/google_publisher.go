package pubsub

import (
	"context"
	"fmt"
	"log/slog"

	"cafe/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

type googlePubSubPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

// NewGooglePubSubPublisher publishes to an existing topic with per-cafe
// message ordering enabled.
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create pubsub client")
	}

	topic := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topic}); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "catalog topic %s is not reachable", topic)
	}

	publisher := client.Publisher(topicID)
	publisher.EnableMessageOrdering = true

	return &googlePubSubPublisher{
		client:    client,
		publisher: publisher,
		logger:    logger,
	}, nil
}

// PublishCatalogEvent blocks until the server acks the message.
func (p *googlePubSubPublisher) PublishCatalogEvent(ctx context.Context, event *service.CatalogEvent) error {
	msg, err := encodeCatalogEvent(event)
	if err != nil {
		return err
	}

	serverID, err := p.publisher.Publish(ctx, &pubsub.Message{
		Data:        msg.data,
		Attributes:  msg.attributes,
		OrderingKey: msg.orderingKey,
	}).Get(ctx)
	if err != nil {
		// A failed ordered publish pauses its key until resumed.
		p.publisher.ResumePublish(msg.orderingKey)

		return errors.Wrapf(err, "failed to publish %s", event.Type)
	}

	p.logger.DebugContext(ctx, "Catalog event published",
		slog.String("event_type", event.Type),
		slog.String("event_id", event.EventID),
		slog.String("server_id", serverID),
	)

	return nil
}

func (p *googlePubSubPublisher) Close() error {
	p.publisher.Stop()

	return errors.WithStack(p.client.Close())
}
