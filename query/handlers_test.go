package query

import (
	"context"
	"fmt"
	"testing"

	"github.com/goliatone/go-stayhooks/core"
)

func TestListWebhooksQuery_QueryDelegates(t *testing.T) {
	expected := core.WebhookList{RoomID: "room", Limit: 5, Webhooks: []core.Webhook{{ID: "w1"}}}
	called := false
	reader := stubWebhookReader{
		listFn: func(_ context.Context, roomID string) (core.WebhookList, error) {
			called = true
			if roomID != "room" {
				t.Fatalf("unexpected room id %q", roomID)
			}
			return expected, nil
		},
	}

	result, err := NewListWebhooksQuery(reader).Query(context.Background(), ListWebhooksMessage{RoomID: "room"})
	if err != nil {
		t.Fatalf("list webhooks: %v", err)
	}
	if !called {
		t.Fatalf("expected webhook reader invocation")
	}
	if result.Limit != 5 || len(result.Webhooks) != 1 || result.Webhooks[0].ID != "w1" {
		t.Fatalf("unexpected result: %#v", result)
	}
}

func TestGetPermittedActionsQuery_QueryDelegates(t *testing.T) {
	reader := stubWebhookReader{
		permittedFn: func(_ context.Context, roomID string) (core.PermittedActions, error) {
			return core.PermittedActions{Actions: []string{"message"}, Limit: 3}, nil
		},
	}

	result, err := NewGetPermittedActionsQuery(reader).Query(context.Background(), GetPermittedActionsMessage{RoomID: "room"})
	if err != nil {
		t.Fatalf("permitted actions: %v", err)
	}
	if len(result.Actions) != 1 || result.Actions[0] != "message" || result.Limit != 3 {
		t.Fatalf("unexpected result: %#v", result)
	}
}

func TestQueries_PropagateReaderErrors(t *testing.T) {
	_, err := NewListWebhooksQuery(stubWebhookReader{}).Query(context.Background(), ListWebhooksMessage{RoomID: "room"})
	if err == nil {
		t.Fatalf("expected reader error")
	}
}

func TestQueryMessageValidation(t *testing.T) {
	if err := (ListWebhooksMessage{}).Validate(); !core.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if err := (GetPermittedActionsMessage{RoomID: " "}).Validate(); !core.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if err := (ListWebhooksMessage{RoomID: "room"}).Validate(); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
}

type stubWebhookReader struct {
	listFn      func(ctx context.Context, roomID string) (core.WebhookList, error)
	permittedFn func(ctx context.Context, roomID string) (core.PermittedActions, error)
}

func (s stubWebhookReader) ListWebhooks(ctx context.Context, roomID string) (core.WebhookList, error) {
	if s.listFn == nil {
		return core.WebhookList{}, fmt.Errorf("list webhooks not configured")
	}
	return s.listFn(ctx, roomID)
}

func (s stubWebhookReader) GetPermittedActions(ctx context.Context, roomID string) (core.PermittedActions, error) {
	if s.permittedFn == nil {
		return core.PermittedActions{}, fmt.Errorf("permitted actions not configured")
	}
	return s.permittedFn(ctx, roomID)
}
