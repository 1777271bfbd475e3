package client

import (
	"context"
	"fmt"

	"github.com/DuneRaccoon/iconic-go/pkg/iconic"
)

// WebhooksClientImpl implements iconic.WebhooksClient.
type WebhooksClientImpl struct {
	client *ClientImpl
}

// List returns all registered webhook subscriptions.
func (c *WebhooksClientImpl) List(ctx context.Context) ([]iconic.Webhook, error) {
	var webhooks []iconic.Webhook

	err := c.client.executeInto(ctx, "GET", "/v2/webhooks", nil, nil, &webhooks)
	if err != nil {
		return nil, fmt.Errorf("listing webhooks: %w", err)
	}

	return webhooks, nil
}

// Create registers a webhook subscription for the given events.
func (c *WebhooksClientImpl) Create(ctx context.Context, callbackURL string, events []string) (*iconic.Webhook, error) {
	var webhook iconic.Webhook

	payload := map[string]interface{}{
		"callbackUrl": callbackURL,
		"events":      events,
	}

	err := c.client.executeInto(ctx, "POST", "/v2/webhooks", nil, payload, &webhook)
	if err != nil {
		return nil, fmt.Errorf("creating webhook: %w", err)
	}

	return &webhook, nil
}

// Delete removes a webhook subscription by UUID.
func (c *WebhooksClientImpl) Delete(ctx context.Context, webhookUUID string) error {
	path := "/v2/webhooks/" + webhookUUID

	err := c.client.executeInto(ctx, "DELETE", path, nil, nil, nil)
	if err != nil {
		return fmt.Errorf("deleting webhook %s: %w", webhookUUID, err)
	}

	return nil
}

// Entities lists the entities and events available for subscription.
func (c *WebhooksClientImpl) Entities(ctx context.Context) ([]iconic.WebhookEntity, error) {
	var entities []iconic.WebhookEntity

	err := c.client.executeInto(ctx, "GET", "/v2/webhooks/entities", nil, nil, &entities)
	if err != nil {
		return nil, fmt.Errorf("listing webhook entities: %w", err)
	}

	return entities, nil
}

var _ iconic.WebhooksClient = (*WebhooksClientImpl)(nil)
