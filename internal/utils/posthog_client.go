// posthog_client.go wraps the posthog client so outbound editor notifications can be
// forwarded as analytics events, and makes it a no-op when no API key is configured.
package utils

import (
	"context"
	"log/slog"

	"github.com/aRTxaRTx/sambapos_entity_editor/internal/core/events"
	"github.com/posthog/posthog-go"
)

const posthogEndpoint = "https://eu.i.posthog.com"

// posthogSink is the part of posthog.Client the wrapper uses.
type posthogSink interface {
	Enqueue(posthog.Message) error
	Close() error
}

// PosthogClientWrapper forwards notifications to PostHog.
type PosthogClientWrapper struct {
	posthogClient posthogSink
	logger        *slog.Logger
}

func InitializePosthogClient(apiKey string, logger *slog.Logger) *PosthogClientWrapper {
	if apiKey == "" {
		logger.Warn("Posthog API key is empty, not initializing posthog client.")
		return &PosthogClientWrapper{logger: logger}
	}
	client, err := posthog.NewWithConfig(apiKey, posthog.Config{Endpoint: posthogEndpoint})
	if err != nil {
		logger.Error("Failed to initialize posthog client", slog.String("error", err.Error()))
		return &PosthogClientWrapper{logger: logger}
	}
	logger.Info("Posthog client initialized", slog.String("endpoint", posthogEndpoint))
	return &PosthogClientWrapper{posthogClient: client, logger: logger}
}

func (w *PosthogClientWrapper) IsInitialized() bool {
	return w.posthogClient != nil
}

func (w *PosthogClientWrapper) Enqueue(distinctId string, event string, properties map[string]any) {
	if w.posthogClient == nil {
		return
	}
	err := w.posthogClient.Enqueue(posthog.Capture{
		DistinctId: distinctId,
		Event:      event,
		Properties: properties,
	})
	if err != nil && w.logger != nil {
		w.logger.Warn("Failed to enqueue posthog event", slog.String("event", event), slog.String("error", err.Error()))
	}
}

// HandleNotification is a bus handler capturing every outbound notification as an event
// named after its topic. Analytics failures never fail the publisher.
func (w *PosthogClientWrapper) HandleNotification(_ context.Context, n events.Notification) error {
	if n.UserID == "" || n.Topic == events.EditEntityDetails {
		return nil
	}
	entity := n.Request.SelectedEntity
	w.Enqueue(n.UserID, string(n.Topic), map[string]any{
		"notification_id": n.ID,
		"entity_id":       entity.ID,
		"entity_type_id":  entity.EntityTypeID,
		"has_account":     entity.HasAccount(),
		"expected_event":  n.Request.ExpectedEvent,
		"source":          n.Request.Source,
	})
	return nil
}

func (w *PosthogClientWrapper) Close() {
	if w.posthogClient == nil {
		return
	}
	if err := w.posthogClient.Close(); err != nil && w.logger != nil {
		w.logger.Warn("Failed to close posthog client", slog.String("error", err.Error()))
	}
}
