package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "cafe/internal/delivery/context"
	"cafe/internal/domain/service"

	"github.com/google/uuid"
)

// publishCatalogEvent announces a catalog change. The write it describes has
// already committed, so a failed publish is only logged.
func publishCatalogEvent(ctx context.Context, publisher service.EventPublisher, logger *slog.Logger, event *service.CatalogEvent) {
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	event.EventID = uuid.NewString()
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	if err := publisher.PublishCatalogEvent(ctx, event); err != nil {
		logger.Warn("Failed to publish catalog event",
			slog.String("type", event.Type),
			slog.String("cafeID", event.CafeID),
			slog.Any("error", err))
	}
}
