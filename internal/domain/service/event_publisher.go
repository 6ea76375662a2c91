package service

import (
	"context"
	"time"
)

// Catalog event types.
const (
	EventCafeRegistered = "cafe.registered"
	EventItemAdded      = "item.added"
)

// CatalogEvent announces a change to the public catalog.
type CatalogEvent struct {
	RequestID   string    `json:"request_id,omitempty"` // For distributed tracing
	EventID     string    `json:"event_id"`
	Type        string    `json:"type"`
	CafeID      string    `json:"cafe_id"`
	ItemID      string    `json:"item_id,omitempty"`
	VendorEmail string    `json:"vendor_email"`
	Name        string    `json:"name"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishCatalogEvent publishes a catalog change for downstream consumers
	PublishCatalogEvent(ctx context.Context, event *CatalogEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
