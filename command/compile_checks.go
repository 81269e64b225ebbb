package command

import (
	gocmd "github.com/goliatone/go-command"
	"github.com/goliatone/go-stayhooks/core"
)

var (
	_ gocmd.Commander[CreateWebhookMessage] = (*CreateWebhookCommand)(nil)
	_ gocmd.Commander[UpdateWebhookMessage] = (*UpdateWebhookCommand)(nil)
	_ gocmd.Commander[RotateSecretMessage]  = (*RotateSecretCommand)(nil)
	_ gocmd.Commander[DeleteWebhookMessage] = (*DeleteWebhookCommand)(nil)
	_ gocmd.Commander[InvokeWebhookMessage] = (*InvokeWebhookCommand)(nil)
	_ gocmd.Commander[SendMessageMessage]   = (*SendMessageCommand)(nil)
	_ gocmd.Commander[SendEmbedMessage]     = (*SendEmbedCommand)(nil)
	_ gocmd.Commander[SendPollMessage]      = (*SendPollCommand)(nil)
	_ gocmd.Commander[SendImageMessage]     = (*SendImageCommand)(nil)

	_ MutatingService = (*core.Client)(nil)
)
