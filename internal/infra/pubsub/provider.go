package pubsub

import (
	"context"
	"log/slog"

	"cafe/config"
	"cafe/internal/domain/constants"
	"cafe/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopPublisher drops events when no provider is configured.
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishCatalogEvent(ctx context.Context, event *service.CatalogEvent) error {
	p.logger.DebugContext(ctx, "Catalog event dropped, pubsub disabled",
		slog.String("event_type", event.Type),
		slog.String("event_id", event.EventID),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher picks the publisher named by pubsub.provider: empty for
// none, "local" for HTTP push to a dev endpoint, "google" for Cloud Pub/Sub.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" {
		logger.Info("Catalog events disabled")

		return &noopPublisher{logger: logger}, nil
	}

	var publisher service.EventPublisher
	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		publisher = NewLocalHTTPPublisher(cfg.LocalEndpoint, cfg.TopicID, logger)

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}

		var err error
		publisher, err = NewGooglePubSubPublisher(params.Ctx, cfg.ProjectID, cfg.TopicID, logger)
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}

	logger.Info("Catalog events enabled",
		slog.String("provider", cfg.Provider),
		slog.String("topic_id", cfg.TopicID),
	)

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return publisher.Close()
		},
	})

	return publisher, nil
}
