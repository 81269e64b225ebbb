package command

import (
	"context"

	gocmd "github.com/goliatone/go-command"
	"github.com/goliatone/go-stayhooks/core"
)

// MutatingService is the part of the client that changes server state or
// posts into a room.
type MutatingService interface {
	CreateWebhook(ctx context.Context, roomID string, req core.CreateWebhookRequest) (core.WebhookSecretBundle, error)
	UpdateWebhook(ctx context.Context, roomID string, webhookID string, req core.UpdateWebhookRequest) (core.Webhook, error)
	RotateSecret(ctx context.Context, roomID string, webhookID string) (core.WebhookSecretBundle, error)
	DeleteWebhook(ctx context.Context, roomID string, webhookID string) (bool, error)
	InvokeWebhook(ctx context.Context, req core.InvokeRequest) (core.InvokeResult, error)
	SendMessage(ctx context.Context, roomID string, webhookID string, secret string, in core.MessageInput) (core.InvokeResult, error)
	SendEmbed(ctx context.Context, roomID string, webhookID string, secret string, in core.EmbedInput) (core.InvokeResult, error)
	SendPoll(ctx context.Context, roomID string, webhookID string, secret string, in core.PollInput) (core.InvokeResult, error)
	SendImage(ctx context.Context, roomID string, webhookID string, secret string, in core.ImageInput) (core.InvokeResult, error)
}

type CreateWebhookCommand struct {
	service MutatingService
}

func NewCreateWebhookCommand(service MutatingService) *CreateWebhookCommand {
	return &CreateWebhookCommand{service: service}
}

// Execute stores the core.WebhookSecretBundle in the context result collector.
// The secret is only returned once.
func (c *CreateWebhookCommand) Execute(ctx context.Context, msg CreateWebhookMessage) error {
	if c == nil || c.service == nil {
		return commandDependencyError("command: create webhook service is required")
	}
	out, err := c.service.CreateWebhook(ctx, msg.RoomID, msg.Request)
	if err != nil {
		return err
	}
	storeResult(ctx, out)
	return nil
}

type UpdateWebhookCommand struct {
	service MutatingService
}

func NewUpdateWebhookCommand(service MutatingService) *UpdateWebhookCommand {
	return &UpdateWebhookCommand{service: service}
}

func (c *UpdateWebhookCommand) Execute(ctx context.Context, msg UpdateWebhookMessage) error {
	if c == nil || c.service == nil {
		return commandDependencyError("command: update webhook service is required")
	}
	out, err := c.service.UpdateWebhook(ctx, msg.RoomID, msg.WebhookID, msg.Request)
	if err != nil {
		return err
	}
	storeResult(ctx, out)
	return nil
}

type RotateSecretCommand struct {
	service MutatingService
}

func NewRotateSecretCommand(service MutatingService) *RotateSecretCommand {
	return &RotateSecretCommand{service: service}
}

func (c *RotateSecretCommand) Execute(ctx context.Context, msg RotateSecretMessage) error {
	if c == nil || c.service == nil {
		return commandDependencyError("command: rotate secret service is required")
	}
	out, err := c.service.RotateSecret(ctx, msg.RoomID, msg.WebhookID)
	if err != nil {
		return err
	}
	storeResult(ctx, out)
	return nil
}

type DeleteWebhookCommand struct {
	service MutatingService
}

func NewDeleteWebhookCommand(service MutatingService) *DeleteWebhookCommand {
	return &DeleteWebhookCommand{service: service}
}

func (c *DeleteWebhookCommand) Execute(ctx context.Context, msg DeleteWebhookMessage) error {
	if c == nil || c.service == nil {
		return commandDependencyError("command: delete webhook service is required")
	}
	deleted, err := c.service.DeleteWebhook(ctx, msg.RoomID, msg.WebhookID)
	if err != nil {
		return err
	}
	storeResult(ctx, deleted)
	return nil
}

type InvokeWebhookCommand struct {
	service MutatingService
}

func NewInvokeWebhookCommand(service MutatingService) *InvokeWebhookCommand {
	return &InvokeWebhookCommand{service: service}
}

func (c *InvokeWebhookCommand) Execute(ctx context.Context, msg InvokeWebhookMessage) error {
	if c == nil || c.service == nil {
		return commandDependencyError("command: invoke webhook service is required")
	}
	out, err := c.service.InvokeWebhook(ctx, msg.Request)
	if err != nil {
		return err
	}
	storeResult(ctx, out)
	return nil
}

type SendMessageCommand struct {
	service MutatingService
}

func NewSendMessageCommand(service MutatingService) *SendMessageCommand {
	return &SendMessageCommand{service: service}
}

func (c *SendMessageCommand) Execute(ctx context.Context, msg SendMessageMessage) error {
	if c == nil || c.service == nil {
		return commandDependencyError("command: send message service is required")
	}
	out, err := c.service.SendMessage(ctx, msg.RoomID, msg.WebhookID, msg.Secret, msg.Input)
	if err != nil {
		return err
	}
	storeResult(ctx, out)
	return nil
}

type SendEmbedCommand struct {
	service MutatingService
}

func NewSendEmbedCommand(service MutatingService) *SendEmbedCommand {
	return &SendEmbedCommand{service: service}
}

func (c *SendEmbedCommand) Execute(ctx context.Context, msg SendEmbedMessage) error {
	if c == nil || c.service == nil {
		return commandDependencyError("command: send embed service is required")
	}
	out, err := c.service.SendEmbed(ctx, msg.RoomID, msg.WebhookID, msg.Secret, msg.Input)
	if err != nil {
		return err
	}
	storeResult(ctx, out)
	return nil
}

type SendPollCommand struct {
	service MutatingService
}

func NewSendPollCommand(service MutatingService) *SendPollCommand {
	return &SendPollCommand{service: service}
}

func (c *SendPollCommand) Execute(ctx context.Context, msg SendPollMessage) error {
	if c == nil || c.service == nil {
		return commandDependencyError("command: send poll service is required")
	}
	out, err := c.service.SendPoll(ctx, msg.RoomID, msg.WebhookID, msg.Secret, msg.Input)
	if err != nil {
		return err
	}
	storeResult(ctx, out)
	return nil
}

type SendImageCommand struct {
	service MutatingService
}

func NewSendImageCommand(service MutatingService) *SendImageCommand {
	return &SendImageCommand{service: service}
}

func (c *SendImageCommand) Execute(ctx context.Context, msg SendImageMessage) error {
	if c == nil || c.service == nil {
		return commandDependencyError("command: send image service is required")
	}
	out, err := c.service.SendImage(ctx, msg.RoomID, msg.WebhookID, msg.Secret, msg.Input)
	if err != nil {
		return err
	}
	storeResult(ctx, out)
	return nil
}

func storeResult[T any](ctx context.Context, value T) {
	collector := gocmd.ResultFromContext[T](ctx)
	if collector == nil {
		return
	}
	collector.Store(value)
}
