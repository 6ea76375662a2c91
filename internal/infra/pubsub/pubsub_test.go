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

	"cafe/config"
	"cafe/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testEvent() *service.CatalogEvent {
	return &service.CatalogEvent{
		RequestID:   "req-1",
		EventID:     "evt-1",
		Type:        service.EventItemAdded,
		CafeID:      "cafe-1",
		ItemID:      "item-1",
		VendorEmail: "v@x.com",
		Name:        "Flat White",
		OccurredAt:  time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

func TestLocalHTTPPublisher_PublishCatalogEvent(t *testing.T) {
	var received PubSubPushMessage
	var requestID string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		_ = json.NewDecoder(r.Body).Decode(&received)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, "", discardLogger())
	require.NoError(t, publisher.PublishCatalogEvent(context.Background(), testEvent()))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "projects/local/subscriptions/catalog-events-push", received.Subscription)
	assert.Equal(t, "evt-1", received.Message.MessageID)
	assert.Equal(t, "cafe-1", received.Message.OrderingKey)
	assert.Equal(t, "item.added", received.Message.Attributes["event_type"])
	assert.Equal(t, "item-1", received.Message.Attributes["item_id"])

	raw, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var event service.CatalogEvent
	require.NoError(t, json.Unmarshal(raw, &event))
	assert.Equal(t, "Flat White", event.Name)
	assert.Equal(t, "cafe-1", event.CafeID)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, "menu-events", discardLogger())
	err := publisher.PublishCatalogEvent(context.Background(), testEvent())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestEncodeCatalogEvent(t *testing.T) {
	msg, err := encodeCatalogEvent(testEvent())
	require.NoError(t, err)
	assert.Equal(t, "cafe-1", msg.orderingKey)
	assert.Equal(t, "cafe-1", msg.attributes["cafe_id"])
	assert.Contains(t, string(msg.data), `"type":"item.added"`)

	_, err = encodeCatalogEvent(nil)
	require.Error(t, err)
}

func TestEventAttributes_OmitsEmptyOptionalFields(t *testing.T) {
	event := testEvent()
	event.ItemID = ""
	event.RequestID = ""

	attrs := eventAttributes(event)
	assert.NotContains(t, attrs, "item_id")
	assert.NotContains(t, attrs, "request_id")
	assert.Equal(t, "v@x.com", attrs["vendor_email"])
}

func TestNewEventPublisher(t *testing.T) {
	tests := []struct {
		name    string
		pubsub  *config.PubSubConfig
		wantErr string
	}{
		{name: "not configured", pubsub: nil},
		{name: "empty provider", pubsub: &config.PubSubConfig{}},
		{name: "local", pubsub: &config.PubSubConfig{Provider: "local", LocalEndpoint: "http://localhost:8081/push"}},
		{name: "local without endpoint", pubsub: &config.PubSubConfig{Provider: "local"}, wantErr: "local endpoint is required"},
		{name: "google without project", pubsub: &config.PubSubConfig{Provider: "google", TopicID: "t"}, wantErr: "project ID is required"},
		{name: "google without topic", pubsub: &config.PubSubConfig{Provider: "google", ProjectID: "p"}, wantErr: "topic ID is required"},
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
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, publisher)
			if tt.pubsub == nil || tt.pubsub.Provider == "" {
				require.NoError(t, publisher.PublishCatalogEvent(context.Background(), &service.CatalogEvent{
					Type:    service.EventCafeRegistered,
					EventID: "evt-noop",
				}))
			}

			lc.RequireStart().RequireStop()
		})
	}
}
