package core

import (
	"context"

	glog "github.com/goliatone/go-logger/glog"
)

type Logger = glog.Logger

type LoggerProvider = glog.LoggerProvider

type FieldsLogger = glog.FieldsLogger

type MetricsRecorder interface {
	IncCounter(ctx context.Context, name string, value int64, tags map[string]string)
	ObserveHistogram(ctx context.Context, name string, value float64, tags map[string]string)
}

// WebhookManager covers the bearer-authenticated management surface.
type WebhookManager interface {
	ListWebhooks(ctx context.Context, roomID string) (WebhookList, error)
	CreateWebhook(ctx context.Context, roomID string, req CreateWebhookRequest) (WebhookSecretBundle, error)
	UpdateWebhook(ctx context.Context, roomID string, webhookID string, req UpdateWebhookRequest) (Webhook, error)
	RotateSecret(ctx context.Context, roomID string, webhookID string) (WebhookSecretBundle, error)
	DeleteWebhook(ctx context.Context, roomID string, webhookID string) (bool, error)
	GetPermittedActions(ctx context.Context, roomID string) (PermittedActions, error)
}

// WebhookInvoker covers the secret-authenticated invocation surface.
type WebhookInvoker interface {
	InvokeWebhook(ctx context.Context, req InvokeRequest) (InvokeResult, error)
	SendMessage(ctx context.Context, roomID string, webhookID string, secret string, in MessageInput) (InvokeResult, error)
	SendEmbed(ctx context.Context, roomID string, webhookID string, secret string, in EmbedInput) (InvokeResult, error)
	SendPoll(ctx context.Context, roomID string, webhookID string, secret string, in PollInput) (InvokeResult, error)
	SendImage(ctx context.Context, roomID string, webhookID string, secret string, in ImageInput) (InvokeResult, error)
}
