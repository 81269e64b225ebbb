package query

import (
	"context"

	"github.com/goliatone/go-stayhooks/core"
)

type WebhookReader interface {
	ListWebhooks(ctx context.Context, roomID string) (core.WebhookList, error)
	GetPermittedActions(ctx context.Context, roomID string) (core.PermittedActions, error)
}

type ListWebhooksQuery struct {
	reader WebhookReader
}

func NewListWebhooksQuery(reader WebhookReader) *ListWebhooksQuery {
	return &ListWebhooksQuery{reader: reader}
}

func (q *ListWebhooksQuery) Query(ctx context.Context, msg ListWebhooksMessage) (core.WebhookList, error) {
	if q == nil || q.reader == nil {
		return core.WebhookList{}, queryDependencyError("query: webhook reader is required")
	}
	return q.reader.ListWebhooks(ctx, msg.RoomID)
}

type GetPermittedActionsQuery struct {
	reader WebhookReader
}

func NewGetPermittedActionsQuery(reader WebhookReader) *GetPermittedActionsQuery {
	return &GetPermittedActionsQuery{reader: reader}
}

func (q *GetPermittedActionsQuery) Query(ctx context.Context, msg GetPermittedActionsMessage) (core.PermittedActions, error) {
	if q == nil || q.reader == nil {
		return core.PermittedActions{}, queryDependencyError("query: webhook reader is required")
	}
	return q.reader.GetPermittedActions(ctx, msg.RoomID)
}
