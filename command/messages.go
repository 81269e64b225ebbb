package command

import (
	"strings"

	"github.com/goliatone/go-stayhooks/core"
)

const (
	TypeCreateWebhook = "stayhooks.command.webhook.create"
	TypeUpdateWebhook = "stayhooks.command.webhook.update"
	TypeRotateSecret  = "stayhooks.command.webhook.rotate_secret"
	TypeDeleteWebhook = "stayhooks.command.webhook.delete"
	TypeInvokeWebhook = "stayhooks.command.webhook.invoke"
	TypeSendMessage   = "stayhooks.command.send.message"
	TypeSendEmbed     = "stayhooks.command.send.embed"
	TypeSendPoll      = "stayhooks.command.send.poll"
	TypeSendImage     = "stayhooks.command.send.image"
)

type CreateWebhookMessage struct {
	RoomID  string
	Request core.CreateWebhookRequest
}

func (CreateWebhookMessage) Type() string { return TypeCreateWebhook }

func (m CreateWebhookMessage) Validate() error {
	return requireField("room_id", m.RoomID)
}

type UpdateWebhookMessage struct {
	RoomID    string
	WebhookID string
	Request   core.UpdateWebhookRequest
}

func (UpdateWebhookMessage) Type() string { return TypeUpdateWebhook }

func (m UpdateWebhookMessage) Validate() error {
	return validateWebhookRef(m.RoomID, m.WebhookID)
}

type RotateSecretMessage struct {
	RoomID    string
	WebhookID string
}

func (RotateSecretMessage) Type() string { return TypeRotateSecret }

func (m RotateSecretMessage) Validate() error {
	return validateWebhookRef(m.RoomID, m.WebhookID)
}

type DeleteWebhookMessage struct {
	RoomID    string
	WebhookID string
}

func (DeleteWebhookMessage) Type() string { return TypeDeleteWebhook }

func (m DeleteWebhookMessage) Validate() error {
	return validateWebhookRef(m.RoomID, m.WebhookID)
}

type InvokeWebhookMessage struct {
	Request core.InvokeRequest
}

func (InvokeWebhookMessage) Type() string { return TypeInvokeWebhook }

func (m InvokeWebhookMessage) Validate() error {
	if _, err := core.ResolveInvokeTarget(m.Request.InvokeURL, m.Request.RoomID, m.Request.WebhookID); err != nil {
		return commandWrapValidation(err, "command: invoke target is invalid")
	}
	if err := requireField("secret", m.Request.Secret); err != nil {
		return err
	}
	return requireField("action", m.Request.Action)
}

type SendMessageMessage struct {
	RoomID    string
	WebhookID string
	Secret    string
	Input     core.MessageInput
}

func (SendMessageMessage) Type() string { return TypeSendMessage }

func (m SendMessageMessage) Validate() error {
	if err := validateInvocation(m.RoomID, m.WebhookID, m.Secret); err != nil {
		return err
	}
	_, err := core.BuildMessagePayload(m.Input, core.PayloadDefaults{})
	return commandWrapValidation(err, "command: message payload is invalid")
}

type SendEmbedMessage struct {
	RoomID    string
	WebhookID string
	Secret    string
	Input     core.EmbedInput
}

func (SendEmbedMessage) Type() string { return TypeSendEmbed }

func (m SendEmbedMessage) Validate() error {
	if err := validateInvocation(m.RoomID, m.WebhookID, m.Secret); err != nil {
		return err
	}
	_, err := core.BuildEmbedPayload(m.Input, core.PayloadDefaults{})
	return commandWrapValidation(err, "command: embed payload is invalid")
}

type SendPollMessage struct {
	RoomID    string
	WebhookID string
	Secret    string
	Input     core.PollInput
}

func (SendPollMessage) Type() string { return TypeSendPoll }

func (m SendPollMessage) Validate() error {
	if err := validateInvocation(m.RoomID, m.WebhookID, m.Secret); err != nil {
		return err
	}
	_, err := core.BuildPollPayload(m.Input)
	return commandWrapValidation(err, "command: poll payload is invalid")
}

type SendImageMessage struct {
	RoomID    string
	WebhookID string
	Secret    string
	Input     core.ImageInput
}

func (SendImageMessage) Type() string { return TypeSendImage }

func (m SendImageMessage) Validate() error {
	if err := validateInvocation(m.RoomID, m.WebhookID, m.Secret); err != nil {
		return err
	}
	_, err := core.BuildImagePayload(m.Input)
	return commandWrapValidation(err, "command: image payload is invalid")
}

func requireField(field string, value string) error {
	if strings.TrimSpace(value) == "" {
		return commandValidationError(field, field+" is required")
	}
	return nil
}

func validateWebhookRef(roomID string, webhookID string) error {
	if err := requireField("room_id", roomID); err != nil {
		return err
	}
	return requireField("webhook_id", webhookID)
}

func validateInvocation(roomID string, webhookID string, secret string) error {
	if err := validateWebhookRef(roomID, webhookID); err != nil {
		return err
	}
	return requireField("secret", secret)
}
