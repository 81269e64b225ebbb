package query

import "strings"

const (
	TypeListWebhooks        = "stayhooks.query.webhooks.list"
	TypeGetPermittedActions = "stayhooks.query.permitted_actions.get"
)

type ListWebhooksMessage struct {
	RoomID string
}

func (ListWebhooksMessage) Type() string { return TypeListWebhooks }

func (m ListWebhooksMessage) Validate() error {
	if strings.TrimSpace(m.RoomID) == "" {
		return queryValidationError("room_id", "room_id is required")
	}
	return nil
}

type GetPermittedActionsMessage struct {
	RoomID string
}

func (GetPermittedActionsMessage) Type() string { return TypeGetPermittedActions }

func (m GetPermittedActionsMessage) Validate() error {
	if strings.TrimSpace(m.RoomID) == "" {
		return queryValidationError("room_id", "room_id is required")
	}
	return nil
}
