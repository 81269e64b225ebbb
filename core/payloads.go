package core

import (
	"context"
	"strings"
	"time"
)

const MaxPollOptions = 8

// PayloadDefaults carries the client level values the builders fall back to.
type PayloadDefaults struct {
	Alias  string
	Bullet string
}

type MessageInput struct {
	Text  string
	Alias string
	// Extra is merged last and may override text or alias.
	Extra map[string]any
}

type EmbedInput struct {
	Title       string
	Description string
	Color       string
	URL         string
	Image       string
	Footer      string
	Text        string
	Alias       string
	// Notes render as a bullet list appended to the description.
	Notes            []string
	ExtraEmbedFields map[string]any
}

type PollInput struct {
	Question       string
	Options        []string
	MultipleChoice bool
	EndsInMinutes  int
}

type Size struct {
	Width  int
	Height int
}

type Position struct {
	X int
	Y int
}

type ImageInput struct {
	URL      string
	Size     *Size
	Position *Position
}

func BuildMessagePayload(in MessageInput, defaults PayloadDefaults) (map[string]any, error) {
	text := strings.TrimSpace(in.Text)
	if text == "" {
		return nil, validationError("text", "Message text must be provided")
	}
	payload := map[string]any{"text": text}
	if alias := resolveAlias(in.Alias, defaults.Alias); alias != "" {
		payload["alias"] = alias
	}
	for key, value := range in.Extra {
		payload[key] = value
	}
	return payload, nil
}

func BuildEmbedPayload(in EmbedInput, defaults PayloadDefaults) (map[string]any, error) {
	embed := map[string]any{}
	for _, field := range []struct {
		key   string
		value string
	}{
		{"title", in.Title},
		{"description", in.Description},
		{"color", in.Color},
		{"url", in.URL},
		{"image", in.Image},
		{"footer", in.Footer},
	} {
		if field.value != "" {
			embed[field.key] = field.value
		}
	}

	if lines := cleanLines(in.Notes); len(lines) > 0 {
		bullet := defaults.Bullet
		if bullet == "" {
			bullet = DefaultBullet
		}
		block := make([]string, 0, len(lines))
		for _, line := range lines {
			block = append(block, bullet+" "+line)
		}
		bullets := strings.Join(block, "\n")
		current := strings.TrimSpace(in.Description)
		if current != "" {
			embed["description"] = current + "\n\n" + bullets
		} else {
			embed["description"] = bullets
		}
	}
	for key, value := range in.ExtraEmbedFields {
		embed[key] = value
	}
	if len(embed) == 0 {
		return nil, validationError("embed", "Embed payload must include at least one field")
	}

	payload := map[string]any{"embed": embed}
	if in.Text != "" {
		payload["text"] = in.Text
	}
	if alias := resolveAlias(in.Alias, defaults.Alias); alias != "" {
		payload["alias"] = alias
	}
	return payload, nil
}

func BuildPollPayload(in PollInput) (map[string]any, error) {
	options := cleanLines(in.Options)
	if len(options) < 2 {
		return nil, validationError("options", "A poll must include at least two options")
	}
	question := strings.TrimSpace(in.Question)
	if question == "" {
		return nil, validationError("question", "Poll question cannot be empty")
	}
	if len(options) > MaxPollOptions {
		options = options[:MaxPollOptions]
	}
	payload := map[string]any{
		"question":       question,
		"options":        options,
		"multipleChoice": in.MultipleChoice,
	}
	if in.EndsInMinutes != 0 {
		payload["endsInMinutes"] = in.EndsInMinutes
	}
	return payload, nil
}

func BuildImagePayload(in ImageInput) (map[string]any, error) {
	imageURL := strings.TrimSpace(in.URL)
	if !strings.HasPrefix(imageURL, "http") {
		return nil, validationError("url", "Image URL must be an http/https URL")
	}
	payload := map[string]any{"url": imageURL}
	if in.Size != nil {
		payload["w"] = in.Size.Width
		payload["h"] = in.Size.Height
	}
	if in.Position != nil {
		payload["x"] = in.Position.X
		payload["y"] = in.Position.Y
	}
	return payload, nil
}

func resolveAlias(explicit string, fallback string) string {
	if explicit != "" {
		return explicit
	}
	return fallback
}

func cleanLines(values []string) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func (c *Client) payloadDefaults() PayloadDefaults {
	return PayloadDefaults{Alias: c.config.DefaultAlias, Bullet: c.config.Bullet}
}

func (c *Client) SendMessage(ctx context.Context, roomID string, webhookID string, secret string, in MessageInput) (InvokeResult, error) {
	payload, err := BuildMessagePayload(in, c.payloadDefaults())
	if err != nil {
		return InvokeResult{}, c.rejectPayload(ctx, roomID, webhookID, PermissionMessage, err)
	}
	return c.Invoke(ctx, InvokeByRoomAndWebhook(roomID, webhookID), secret, string(PermissionMessage), payload)
}

func (c *Client) SendEmbed(ctx context.Context, roomID string, webhookID string, secret string, in EmbedInput) (InvokeResult, error) {
	payload, err := BuildEmbedPayload(in, c.payloadDefaults())
	if err != nil {
		return InvokeResult{}, c.rejectPayload(ctx, roomID, webhookID, PermissionEmbed, err)
	}
	return c.Invoke(ctx, InvokeByRoomAndWebhook(roomID, webhookID), secret, string(PermissionEmbed), payload)
}

func (c *Client) SendPoll(ctx context.Context, roomID string, webhookID string, secret string, in PollInput) (InvokeResult, error) {
	payload, err := BuildPollPayload(in)
	if err != nil {
		return InvokeResult{}, c.rejectPayload(ctx, roomID, webhookID, PermissionPoll, err)
	}
	return c.Invoke(ctx, InvokeByRoomAndWebhook(roomID, webhookID), secret, string(PermissionPoll), payload)
}

func (c *Client) SendImage(ctx context.Context, roomID string, webhookID string, secret string, in ImageInput) (InvokeResult, error) {
	payload, err := BuildImagePayload(in)
	if err != nil {
		return InvokeResult{}, c.rejectPayload(ctx, roomID, webhookID, PermissionImage, err)
	}
	return c.Invoke(ctx, InvokeByRoomAndWebhook(roomID, webhookID), secret, string(PermissionImage), payload)
}

func (c *Client) rejectPayload(ctx context.Context, roomID string, webhookID string, action Permission, err error) error {
	startedAt := time.Now().UTC()
	err = c.mapError(err)
	c.observeOperation(ctx, startedAt, "send_"+string(action), err, map[string]any{
		"room_id":    roomID,
		"webhook_id": webhookID,
		"action":     string(action),
	})
	return err
}
