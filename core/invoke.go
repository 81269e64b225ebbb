package core

import (
	"context"
	"net/http"
	"strings"
	"time"
)

type invokeTargetKind int

const (
	invokeTargetNone invokeTargetKind = iota
	invokeTargetURL
	invokeTargetRoomWebhook
)

// InvokeTarget addresses an invocation either by a full invoke URL or by the
// room and webhook ids.
type InvokeTarget struct {
	kind      invokeTargetKind
	url       string
	roomID    string
	webhookID string
}

func InvokeByURL(invokeURL string) InvokeTarget {
	return InvokeTarget{kind: invokeTargetURL, url: strings.TrimSpace(invokeURL)}
}

func InvokeByRoomAndWebhook(roomID string, webhookID string) InvokeTarget {
	return InvokeTarget{kind: invokeTargetRoomWebhook, roomID: roomID, webhookID: webhookID}
}

// ResolveInvokeTarget prefers invokeURL and otherwise requires both ids.
func ResolveInvokeTarget(invokeURL string, roomID string, webhookID string) (InvokeTarget, error) {
	if strings.TrimSpace(invokeURL) != "" {
		return InvokeByURL(invokeURL), nil
	}
	if strings.TrimSpace(roomID) == "" || strings.TrimSpace(webhookID) == "" {
		return InvokeTarget{}, validationError(
			"invoke_url",
			"room_id and webhook_id are required when invoke_url is missing",
		)
	}
	return InvokeByRoomAndWebhook(roomID, webhookID), nil
}

func (t InvokeTarget) IsURL() bool { return t.kind == invokeTargetURL }

func (t InvokeTarget) URL() string { return t.url }

func (t InvokeTarget) RoomID() string { return t.roomID }

func (t InvokeTarget) WebhookID() string { return t.webhookID }

func (t InvokeTarget) validate() error {
	switch t.kind {
	case invokeTargetURL:
		if t.url == "" {
			return validationError("invoke_url", "invoke_url must not be empty")
		}
	case invokeTargetRoomWebhook:
		return requireIDs(t.roomID, t.webhookID)
	default:
		return validationError("invoke_url", "room_id and webhook_id are required when invoke_url is missing")
	}
	return nil
}

type InvokeRequest struct {
	Secret    string
	Action    string
	Payload   map[string]any
	RoomID    string
	WebhookID string
	InvokeURL string
}

// InvokeWebhook posts {action, payload} authenticated by the webhook secret
// header. The bearer token is never required here.
func (c *Client) InvokeWebhook(ctx context.Context, req InvokeRequest) (InvokeResult, error) {
	target, err := ResolveInvokeTarget(req.InvokeURL, req.RoomID, req.WebhookID)
	if err != nil {
		err = c.mapError(err)
		c.observeOperation(ctx, time.Now().UTC(), "invoke_webhook", err, map[string]any{
			"room_id":    req.RoomID,
			"webhook_id": req.WebhookID,
			"action":     req.Action,
		})
		return InvokeResult{}, err
	}
	return c.Invoke(ctx, target, req.Secret, req.Action, req.Payload)
}

func (c *Client) Invoke(
	ctx context.Context,
	target InvokeTarget,
	secret string,
	action string,
	payload map[string]any,
) (result InvokeResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{
		"room_id":    target.roomID,
		"webhook_id": target.webhookID,
		"action":     action,
	}
	defer func() {
		c.observeOperation(ctx, startedAt, "invoke_webhook", err, fields)
	}()

	if err = target.validate(); err != nil {
		err = c.mapError(err)
		return InvokeResult{}, err
	}
	if strings.TrimSpace(secret) == "" {
		err = c.mapError(validationError("secret", "Webhook secret must be provided"))
		return InvokeResult{}, err
	}
	if strings.TrimSpace(action) == "" {
		err = c.mapError(validationError("action", "Invocation action must be provided"))
		return InvokeResult{}, err
	}
	if payload == nil {
		payload = map[string]any{}
	}

	req := apiRequest{
		Method:  http.MethodPost,
		Body:    map[string]any{"action": action, "payload": payload},
		Headers: map[string]string{HeaderWebhookSecret: secret},
	}
	if target.IsURL() {
		req.FullURL = c.resolveInvokeURL(target.url)
	} else {
		req.Path = webhooksPath(target.roomID, EscapeSegment(target.webhookID), "invoke")
	}

	data, err := c.execute(ctx, req, fields)
	if err != nil {
		err = c.mapError(err)
		return InvokeResult{}, err
	}
	return InvokeResultFromMap(data), nil
}

// resolveInvokeURL keeps absolute URLs verbatim. Server relative URLs such as
// "/api/webhooks/r/w/invoke" already carry the prefix, so only the base is joined.
func (c *Client) resolveInvokeURL(invokeURL string) string {
	if isAbsoluteURL(invokeURL) {
		return invokeURL
	}
	if !strings.HasPrefix(invokeURL, "/") {
		invokeURL = "/" + invokeURL
	}
	return c.baseURL + invokeURL
}
