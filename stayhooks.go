package stayhooks

import "github.com/goliatone/go-stayhooks/core"

type Config = core.Config

type Option = core.Option

type Client = core.Client

type ClientDependencies = core.ClientDependencies

type Permission = core.Permission
type Webhook = core.Webhook
type WebhookSecretBundle = core.WebhookSecretBundle
type WebhookList = core.WebhookList
type InvokeResult = core.InvokeResult
type PermittedActions = core.PermittedActions

type CreateWebhookRequest = core.CreateWebhookRequest
type UpdateWebhookRequest = core.UpdateWebhookRequest
type InvokeRequest = core.InvokeRequest
type InvokeTarget = core.InvokeTarget

type MessageInput = core.MessageInput
type EmbedInput = core.EmbedInput
type PollInput = core.PollInput
type ImageInput = core.ImageInput
type Size = core.Size
type Position = core.Position

type ErrorKind = core.ErrorKind

const (
	PermissionMessage = core.PermissionMessage
	PermissionEmbed   = core.PermissionEmbed
	PermissionPoll    = core.PermissionPoll
	PermissionImage   = core.PermissionImage
)

var (
	WithLogger             = core.WithLogger
	WithLoggerProvider     = core.WithLoggerProvider
	WithMetricsRecorder    = core.WithMetricsRecorder
	WithErrorMapper        = core.WithErrorMapper
	WithConfigProvider     = core.WithConfigProvider
	WithOptionsResolver    = core.WithOptionsResolver
	WithTransport          = core.WithTransport
	WithHTTPClient         = core.WithHTTPClient
	WithRateLimiter        = core.WithRateLimiter
	WithRequestIDGenerator = core.WithRequestIDGenerator
)

var (
	InvokeByURL            = core.InvokeByURL
	InvokeByRoomAndWebhook = core.InvokeByRoomAndWebhook
	ResolveInvokeTarget    = core.ResolveInvokeTarget
)

var (
	KindOf       = core.KindOf
	IsValidation = core.IsValidation
	IsAuth       = core.IsAuth
	IsHTTP       = core.IsHTTP
	IsInvoke     = core.IsInvoke
	IsConnection = core.IsConnection
	StatusOf     = core.StatusOf
	PayloadOf    = core.PayloadOf
	MessageOf    = core.MessageOf
)

// APIPrefix builds a Config.APIPrefix value; APIPrefix("") disables the prefix.
func APIPrefix(prefix string) *string {
	return core.APIPrefix(prefix)
}

func DefaultConfig() Config {
	return core.DefaultConfig()
}

func NewClient(cfg Config, opts ...Option) (*Client, error) {
	return core.NewClient(cfg, opts...)
}

// NormalizePermissions cleans a caller supplied permission list the same way
// CreateWebhook and UpdateWebhook do before sending it.
func NormalizePermissions(values []string) []Permission {
	return core.NormalizePermissions(values)
}
