package core

import (
	"context"
	"reflect"
	"testing"
)

func TestResolveInvokeTarget(t *testing.T) {
	target, err := ResolveInvokeTarget(" https://x/invoke ", "room", "hook")
	if err != nil {
		t.Fatalf("resolve target: %v", err)
	}
	if !target.IsURL() || target.URL() != "https://x/invoke" {
		t.Fatalf("expected url target, got %+v", target)
	}

	target, err = ResolveInvokeTarget("", "room", "hook")
	if err != nil {
		t.Fatalf("resolve target: %v", err)
	}
	if target.IsURL() || target.RoomID() != "room" || target.WebhookID() != "hook" {
		t.Fatalf("expected room/webhook target, got %+v", target)
	}

	_, err = ResolveInvokeTarget("", "room", "")
	if !IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if MessageOf(err) != "room_id and webhook_id are required when invoke_url is missing" {
		t.Fatalf("unexpected message %q", MessageOf(err))
	}
}

func TestInvokeWebhook_WithoutAddressingSkipsNetwork(t *testing.T) {
	server := newFakeServer(t, 200, `{"ok":true}`)
	client := newTestClient(t, server, Config{Token: "tok"})

	_, err := client.InvokeWebhook(context.Background(), InvokeRequest{Secret: "s", Action: "message"})
	if !IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if server.hits.Load() != 0 {
		t.Fatalf("expected no network call")
	}

	_, err = client.Invoke(context.Background(), InvokeTarget{}, "s", "message", nil)
	if !IsValidation(err) {
		t.Fatalf("expected validation error for zero target, got %v", err)
	}
}

func TestInvoke_RequiresSecretAndAction(t *testing.T) {
	server := newFakeServer(t, 200, `{"ok":true}`)
	client := newTestClient(t, server, Config{})
	target := InvokeByRoomAndWebhook("room", "hook")

	if _, err := client.Invoke(context.Background(), target, " ", "message", nil); !IsValidation(err) {
		t.Fatalf("expected secret validation, got %v", err)
	}
	if _, err := client.Invoke(context.Background(), target, "s", "", nil); !IsValidation(err) {
		t.Fatalf("expected action validation, got %v", err)
	}
	if server.hits.Load() != 0 {
		t.Fatalf("expected no network call")
	}
}

func TestInvoke_SecretHeaderWithoutBearer(t *testing.T) {
	server := newFakeServer(t, 200, `{"ok":true,"kind":"message","messageId":"m1","queued":false}`)
	client := newTestClient(t, server, Config{Token: "tok"})

	result, err := client.InvokeWebhook(context.Background(), InvokeRequest{
		Secret:    "whsec",
		Action:    "message",
		Payload:   map[string]any{"text": "hi"},
		RoomID:    "room",
		WebhookID: "hook",
	})
	if err != nil {
		t.Fatalf("invoke webhook: %v", err)
	}
	if !result.OK || result.MessageID == nil || *result.MessageID != "m1" || result.Kind == nil || *result.Kind != "message" {
		t.Fatalf("unexpected result %+v", result)
	}
	if !reflect.DeepEqual(result.Extra, map[string]any{"queued": false}) {
		t.Fatalf("expected only unknown keys in Extra, got %v", result.Extra)
	}

	req := server.last(t)
	if got := req.headers.Get(HeaderWebhookSecret); got != "whsec" {
		t.Fatalf("unexpected secret header %q", got)
	}
	if got := req.headers.Get("Authorization"); got != "" {
		t.Fatalf("expected no bearer on invocation, got %q", got)
	}
	body := server.lastJSON(t)
	want := map[string]any{"action": "message", "payload": map[string]any{"text": "hi"}}
	if !reflect.DeepEqual(body, want) {
		t.Fatalf("expected %v, got %v", want, body)
	}
}

func TestInvoke_NilPayloadSendsEmptyObject(t *testing.T) {
	server := newFakeServer(t, 200, `{"ok":true}`)
	client := newTestClient(t, server, Config{})

	if _, err := client.Invoke(context.Background(), InvokeByRoomAndWebhook("room", "hook"), "s", "ping", nil); err != nil {
		t.Fatalf("invoke: %v", err)
	}
	if string(server.last(t).body) != `{"action":"ping","payload":{}}` {
		t.Fatalf("unexpected body %s", string(server.last(t).body))
	}
}

func TestInvoke_ByURL(t *testing.T) {
	server := newFakeServer(t, 200, `{"ok":true}`)
	client := newTestClient(t, server, Config{})

	if _, err := client.Invoke(context.Background(), InvokeByURL(server.URL+"/custom/invoke"), "s", "message", nil); err != nil {
		t.Fatalf("invoke absolute url: %v", err)
	}
	if got := server.last(t).path; got != "/custom/invoke" {
		t.Fatalf("unexpected path %q", got)
	}

	if _, err := client.Invoke(context.Background(), InvokeByURL("/api/webhooks/room/hook/invoke"), "s", "message", nil); err != nil {
		t.Fatalf("invoke relative url: %v", err)
	}
	if got := server.last(t).path; got != "/api/webhooks/room/hook/invoke" {
		t.Fatalf("expected relative url joined with base only, got %q", got)
	}
}

func TestInvoke_ServerErrorKeepsPayload(t *testing.T) {
	server := newFakeServer(t, 429, `{"error":"slow down","retryAfter":3}`)
	client := newTestClient(t, server, Config{})

	_, err := client.Invoke(context.Background(), InvokeByRoomAndWebhook("room", "hook"), "s", "message", nil)
	if KindOf(err) != KindHTTP || StatusOf(err) != 429 || MessageOf(err) != "slow down" {
		t.Fatalf("unexpected error %v", err)
	}
	payload := PayloadOf(err).(map[string]any)
	if payload["retryAfter"] == nil {
		t.Fatalf("expected parsed payload, got %v", payload)
	}
}
