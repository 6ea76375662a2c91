package pubsub

import (
	"encoding/json"

	"cafe/internal/domain/service"

	"github.com/pkg/errors"
)

const defaultTopicID = "catalog-events"

// catalogMessage is the wire form both publishers send. Events for one cafe
// share an ordering key so item.added never overtakes cafe.registered.
type catalogMessage struct {
	data        []byte
	attributes  map[string]string
	orderingKey string
}

func encodeCatalogEvent(event *service.CatalogEvent) (*catalogMessage, error) {
	if event == nil {
		return nil, errors.New("nil catalog event")
	}

	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode catalog event")
	}

	return &catalogMessage{
		data:        data,
		attributes:  eventAttributes(event),
		orderingKey: event.CafeID,
	}, nil
}

// eventAttributes let subscribers filter on type, cafe or vendor without decoding the body.
func eventAttributes(event *service.CatalogEvent) map[string]string {
	attributes := map[string]string{
		"event_type":   event.Type,
		"cafe_id":      event.CafeID,
		"vendor_email": event.VendorEmail,
	}
	if event.ItemID != "" {
		attributes["item_id"] = event.ItemID
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
