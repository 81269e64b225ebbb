package query

import (
	gocmd "github.com/goliatone/go-command"
	"github.com/goliatone/go-stayhooks/core"
)

var (
	_ gocmd.Querier[ListWebhooksMessage, core.WebhookList]              = (*ListWebhooksQuery)(nil)
	_ gocmd.Querier[GetPermittedActionsMessage, core.PermittedActions] = (*GetPermittedActionsQuery)(nil)

	_ WebhookReader = (*core.Client)(nil)
)
