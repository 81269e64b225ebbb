package core

import (
	"context"
	"net/http"
	"strings"
	"time"
)

type CreateWebhookRequest struct {
	Label string
	// Permissions is normalized, nil or all-invalid input grants every permission.
	Permissions []Permission
}

// UpdateWebhookRequest sends only the fields that are set. A nil Permissions
// slice leaves permissions untouched.
type UpdateWebhookRequest struct {
	Label       *string
	Permissions []Permission
	Paused      *bool
}

func (r UpdateWebhookRequest) body() map[string]any {
	payload := map[string]any{}
	if r.Label != nil {
		payload["label"] = *r.Label
	}
	if r.Permissions != nil {
		payload["permissions"] = permissionStrings(NormalizePermissions(r.Permissions))
	}
	if r.Paused != nil {
		payload["paused"] = *r.Paused
	}
	return payload
}

func webhooksPath(roomID string, segments ...string) string {
	var b strings.Builder
	b.WriteString("/webhooks/")
	b.WriteString(EscapeSegment(roomID))
	for _, segment := range segments {
		b.WriteString("/")
		b.WriteString(segment)
	}
	return b.String()
}

func requireID(field string, value string) error {
	if strings.TrimSpace(value) == "" {
		return validationError(field, field+" is required")
	}
	return nil
}

func (c *Client) ListWebhooks(ctx context.Context, roomID string) (list WebhookList, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"room_id": roomID}
	defer func() {
		c.observeOperation(ctx, startedAt, "list_webhooks", err, fields)
	}()

	if err = requireID("room_id", roomID); err != nil {
		err = c.mapError(err)
		return WebhookList{}, err
	}
	data, err := c.execute(ctx, apiRequest{
		Method:      http.MethodGet,
		Path:        webhooksPath(roomID),
		RequireAuth: true,
	}, fields)
	if err != nil {
		err = c.mapError(err)
		return WebhookList{}, err
	}
	list = WebhookListFromMap(data)
	fields["webhooks"] = len(list.Webhooks)
	return list, nil
}

func (c *Client) CreateWebhook(ctx context.Context, roomID string, req CreateWebhookRequest) (bundle WebhookSecretBundle, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"room_id": roomID}
	defer func() {
		c.observeOperation(ctx, startedAt, "create_webhook", err, fields)
	}()

	if err = requireID("room_id", roomID); err != nil {
		err = c.mapError(err)
		return WebhookSecretBundle{}, err
	}
	data, err := c.execute(ctx, apiRequest{
		Method: http.MethodPost,
		Path:   webhooksPath(roomID),
		Body: map[string]any{
			"label":       req.Label,
			"permissions": permissionStrings(NormalizePermissions(req.Permissions)),
		},
		RequireAuth: true,
	}, fields)
	if err != nil {
		err = c.mapError(err)
		return WebhookSecretBundle{}, err
	}
	bundle = WebhookSecretBundleFromMap(data)
	fields["webhook_id"] = bundle.Webhook.ID
	return bundle, nil
}

func (c *Client) UpdateWebhook(ctx context.Context, roomID string, webhookID string, req UpdateWebhookRequest) (hook Webhook, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"room_id": roomID, "webhook_id": webhookID}
	defer func() {
		c.observeOperation(ctx, startedAt, "update_webhook", err, fields)
	}()

	if err = requireIDs(roomID, webhookID); err != nil {
		err = c.mapError(err)
		return Webhook{}, err
	}
	data, err := c.execute(ctx, apiRequest{
		Method:      http.MethodPatch,
		Path:        webhooksPath(roomID, EscapeSegment(webhookID)),
		Body:        req.body(),
		RequireAuth: true,
	}, fields)
	if err != nil {
		err = c.mapError(err)
		return Webhook{}, err
	}
	return WebhookFromEnvelope(data), nil
}

// RotateSecret invalidates the previous secret server side and returns the new one.
func (c *Client) RotateSecret(ctx context.Context, roomID string, webhookID string) (bundle WebhookSecretBundle, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"room_id": roomID, "webhook_id": webhookID}
	defer func() {
		c.observeOperation(ctx, startedAt, "rotate_secret", err, fields)
	}()

	if err = requireIDs(roomID, webhookID); err != nil {
		err = c.mapError(err)
		return WebhookSecretBundle{}, err
	}
	data, err := c.execute(ctx, apiRequest{
		Method:      http.MethodPost,
		Path:        webhooksPath(roomID, EscapeSegment(webhookID), "rotate"),
		RequireAuth: true,
	}, fields)
	if err != nil {
		err = c.mapError(err)
		return WebhookSecretBundle{}, err
	}
	return WebhookSecretBundleFromMap(data), nil
}

// DeleteWebhook reports the server's ok flag, true when the server omits it.
func (c *Client) DeleteWebhook(ctx context.Context, roomID string, webhookID string) (deleted bool, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"room_id": roomID, "webhook_id": webhookID}
	defer func() {
		c.observeOperation(ctx, startedAt, "delete_webhook", err, fields)
	}()

	if err = requireIDs(roomID, webhookID); err != nil {
		err = c.mapError(err)
		return false, err
	}
	data, err := c.execute(ctx, apiRequest{
		Method:      http.MethodDelete,
		Path:        webhooksPath(roomID, EscapeSegment(webhookID)),
		RequireAuth: true,
	}, fields)
	if err != nil {
		err = c.mapError(err)
		return false, err
	}
	if _, present := data["ok"]; !present {
		return true, nil
	}
	return boolField(data, "ok"), nil
}

func (c *Client) GetPermittedActions(ctx context.Context, roomID string) (actions PermittedActions, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"room_id": roomID}
	defer func() {
		c.observeOperation(ctx, startedAt, "get_permitted_actions", err, fields)
	}()

	if err = requireID("room_id", roomID); err != nil {
		err = c.mapError(err)
		return PermittedActions{}, err
	}
	data, err := c.execute(ctx, apiRequest{
		Method:      http.MethodGet,
		Path:        webhooksPath(roomID, "meta", "permitted-actions"),
		RequireAuth: true,
	}, fields)
	if err != nil {
		err = c.mapError(err)
		return PermittedActions{}, err
	}
	return PermittedActionsFromMap(data), nil
}

func requireIDs(roomID string, webhookID string) error {
	if err := requireID("room_id", roomID); err != nil {
		return err
	}
	return requireID("webhook_id", webhookID)
}
