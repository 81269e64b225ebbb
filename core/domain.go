package core

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

type Permission string

const (
	PermissionMessage Permission = "message"
	PermissionEmbed   Permission = "embed"
	PermissionPoll    Permission = "poll"
	PermissionImage   Permission = "image"
)

// DefaultPermissions is the closed permission set in canonical order.
func DefaultPermissions() []Permission {
	return []Permission{PermissionMessage, PermissionEmbed, PermissionPoll, PermissionImage}
}

func (p Permission) Valid() bool {
	switch p {
	case PermissionMessage, PermissionEmbed, PermissionPoll, PermissionImage:
		return true
	default:
		return false
	}
}

type Webhook struct {
	ID            string
	Label         string
	Permissions   []Permission
	Paused        bool
	CreatedAt     *string
	CreatedBy     *string
	LastUsedAt    *string
	SecretPreview *string
	InvokeURL     *string
	ExampleCurl   *string
	Extra         map[string]any
}

// Allows reports whether the webhook carries permission p.
func (w Webhook) Allows(p Permission) bool {
	for _, granted := range w.Permissions {
		if granted == p {
			return true
		}
	}
	return false
}

// WebhookSecretBundle holds a plaintext secret that the server shows once.
// Persisting it is the caller's responsibility.
type WebhookSecretBundle struct {
	Webhook     Webhook
	Secret      string
	InvokeURL   *string
	ExampleCurl *string
}

func (b WebhookSecretBundle) String() string {
	return fmt.Sprintf("WebhookSecretBundle{webhook=%s secret=%s}", b.Webhook.ID, RedactedValue)
}

func (b WebhookSecretBundle) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("webhook_id", b.Webhook.ID),
		slog.String("secret", RedactedValue),
	)
}

type WebhookList struct {
	RoomID   string
	Limit    int
	Webhooks []Webhook
}

type InvokeResult struct {
	OK        bool
	Kind      *string
	MessageID *string
	PollID    *string
	Extra     map[string]any
}

type PermittedActions struct {
	Actions []string
	Limit   int
}

var (
	webhookKeys = map[string]struct{}{
		"id": {}, "label": {}, "permissions": {}, "paused": {}, "createdAt": {}, "createdBy": {},
		"lastUsedAt": {}, "secretPreview": {}, "invokeUrl": {}, "exampleCurl": {},
	}
	invokeResultKeys = map[string]struct{}{
		"ok": {}, "kind": {}, "messageId": {}, "pollId": {},
	}
)

func WebhookFromMap(data map[string]any) Webhook {
	return Webhook{
		ID:            stringField(data, "id"),
		Label:         stringField(data, "label"),
		Permissions:   permissionsField(data, "permissions"),
		Paused:        boolField(data, "paused"),
		CreatedAt:     optionalStringField(data, "createdAt"),
		CreatedBy:     optionalStringField(data, "createdBy"),
		LastUsedAt:    optionalStringField(data, "lastUsedAt"),
		SecretPreview: optionalStringField(data, "secretPreview"),
		InvokeURL:     optionalStringField(data, "invokeUrl"),
		ExampleCurl:   optionalStringField(data, "exampleCurl"),
		Extra:         extraFields(data, webhookKeys),
	}
}

// WebhookSecretBundleFromMap falls back to the nested webhook's invoke URL and
// example curl when the envelope omits them.
func WebhookSecretBundleFromMap(data map[string]any) WebhookSecretBundle {
	nested := mapField(data, "webhook")
	bundle := WebhookSecretBundle{
		Webhook:     WebhookFromMap(nested),
		Secret:      stringField(data, "secret"),
		InvokeURL:   firstNonEmpty(optionalStringField(data, "invokeUrl"), optionalStringField(nested, "invokeUrl")),
		ExampleCurl: firstNonEmpty(optionalStringField(data, "exampleCurl"), optionalStringField(nested, "exampleCurl")),
	}
	return bundle
}

// WebhookListFromMap maps each entry independently, malformed entries decode to defaults.
func WebhookListFromMap(data map[string]any) WebhookList {
	items, _ := data["webhooks"].([]any)
	hooks := make([]Webhook, 0, len(items))
	for _, item := range items {
		entry, _ := item.(map[string]any)
		hooks = append(hooks, WebhookFromMap(entry))
	}
	return WebhookList{
		RoomID:   stringField(data, "roomId"),
		Limit:    intField(data, "limit"),
		Webhooks: hooks,
	}
}

func InvokeResultFromMap(data map[string]any) InvokeResult {
	return InvokeResult{
		OK:        boolField(data, "ok"),
		Kind:      optionalStringField(data, "kind"),
		MessageID: optionalStringField(data, "messageId"),
		PollID:    optionalStringField(data, "pollId"),
		Extra:     extraFields(data, invokeResultKeys),
	}
}

func PermittedActionsFromMap(data map[string]any) PermittedActions {
	return PermittedActions{
		Actions: stringSliceField(data, "actions"),
		Limit:   intField(data, "limit"),
	}
}

// WebhookFromEnvelope unwraps {"webhook": {...}} responses, otherwise the whole
// object is the webhook.
func WebhookFromEnvelope(data map[string]any) Webhook {
	if nested, ok := data["webhook"].(map[string]any); ok {
		return WebhookFromMap(nested)
	}
	return WebhookFromMap(data)
}

func mapField(data map[string]any, key string) map[string]any {
	nested, _ := data[key].(map[string]any)
	if nested == nil {
		return map[string]any{}
	}
	return nested
}

func stringField(data map[string]any, key string) string {
	value := optionalStringField(data, key)
	if value == nil {
		return ""
	}
	return *value
}

func optionalStringField(data map[string]any, key string) *string {
	raw, ok := data[key]
	if !ok || raw == nil {
		return nil
	}
	var value string
	switch typed := raw.(type) {
	case string:
		value = typed
	case json.Number:
		value = typed.String()
	case float64:
		value = strconv.FormatFloat(typed, 'f', -1, 64)
	case bool:
		value = strconv.FormatBool(typed)
	default:
		return nil
	}
	return &value
}

// boolField reads flags leniently: non-zero numbers and non-empty collections
// are true, strings go through strconv.ParseBool and otherwise count as true
// when non-blank.
func boolField(data map[string]any, key string) bool {
	switch typed := data[key].(type) {
	case bool:
		return typed
	case json.Number:
		parsed, err := typed.Float64()
		return err == nil && parsed != 0
	case float64:
		return typed != 0
	case int:
		return typed != 0
	case int64:
		return typed != 0
	case string:
		trimmed := strings.TrimSpace(typed)
		if parsed, err := strconv.ParseBool(trimmed); err == nil {
			return parsed
		}
		return trimmed != ""
	case []any:
		return len(typed) > 0
	case map[string]any:
		return len(typed) > 0
	}
	return false
}

func intField(data map[string]any, key string) int {
	switch typed := data[key].(type) {
	case json.Number:
		if parsed, err := typed.Int64(); err == nil {
			return int(parsed)
		}
		if parsed, err := typed.Float64(); err == nil {
			return int(parsed)
		}
	case float64:
		return int(typed)
	case int:
		return typed
	case int64:
		return int(typed)
	case string:
		if parsed, err := strconv.Atoi(strings.TrimSpace(typed)); err == nil {
			return parsed
		}
	}
	return 0
}

func stringSliceField(data map[string]any, key string) []string {
	var items []any
	switch typed := data[key].(type) {
	case []any:
		items = typed
	case []string:
		return append([]string{}, typed...)
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if value, ok := item.(string); ok {
			out = append(out, value)
		}
	}
	return out
}

func permissionsField(data map[string]any, key string) []Permission {
	values := stringSliceField(data, key)
	out := make([]Permission, 0, len(values))
	for _, value := range values {
		out = append(out, Permission(value))
	}
	return out
}

func extraFields(data map[string]any, known map[string]struct{}) map[string]any {
	extra := map[string]any{}
	for key, value := range data {
		if _, skip := known[key]; skip {
			continue
		}
		extra[key] = value
	}
	return extra
}

func firstNonEmpty(values ...*string) *string {
	for _, value := range values {
		if value != nil && *value != "" {
			return value
		}
	}
	return nil
}
