package core

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/goliatone/go-stayhooks/transport"
)

const (
	HeaderAuthorization = "Authorization"
	HeaderAccept        = transport.HeaderAccept
	HeaderContentType   = transport.HeaderContentType
	HeaderUserAgent     = "User-Agent"
	HeaderRequestID     = "X-Request-Id"
	// HeaderWebhookSecret carries the webhook secret on invocations.
	HeaderWebhookSecret = "x-stay-webhook-secret"
)

type apiRequest struct {
	Method      string
	Path        string
	FullURL     string
	Body        map[string]any
	Headers     map[string]string
	RequireAuth bool
}

// NormalizeAPIPrefix yields "" or a prefix with exactly one leading slash and
// no trailing slash.
func NormalizeAPIPrefix(prefix string) string {
	trimmed := strings.Trim(strings.TrimSpace(prefix), "/")
	if trimmed == "" {
		return ""
	}
	return "/" + trimmed
}

// BuildURL joins base, normalized prefix and path. Absolute http(s) paths are
// returned verbatim.
func BuildURL(baseURL string, apiPrefix string, path string) string {
	if isAbsoluteURL(path) {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return strings.TrimRight(strings.TrimSpace(baseURL), "/") + NormalizeAPIPrefix(apiPrefix) + path
}

// EscapeSegment percent-encodes value as an opaque path segment, leaving only
// unreserved characters as-is.
func EscapeSegment(value string) string {
	return strings.ReplaceAll(url.QueryEscape(value), "+", "%20")
}

func isAbsoluteURL(value string) bool {
	return strings.HasPrefix(value, "http://") || strings.HasPrefix(value, "https://")
}

func (c *Client) buildURL(path string) string {
	if isAbsoluteURL(path) {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.baseURL + c.apiPrefix + path
}

// execute performs one HTTP exchange and classifies the response. fields, when
// non-nil, receives request_id and status_code for observability.
func (c *Client) execute(ctx context.Context, req apiRequest, fields map[string]any) (map[string]any, error) {
	if c == nil || c.transport == nil {
		return nil, connectionError(nil, "stayhooks: client transport is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	target := strings.TrimSpace(req.FullURL)
	if target == "" {
		path := req.Path
		if path == "" {
			path = "/"
		}
		target = c.buildURL(path)
	}

	var body []byte
	if len(req.Body) > 0 {
		encoded, err := json.Marshal(req.Body)
		if err != nil {
			return nil, validationError("payload", fmt.Sprintf("Request body is not JSON encodable: %v", err))
		}
		body = encoded
	}

	requestID := c.requestID()
	headers := map[string]string{
		HeaderAccept:    transport.MediaTypeJSON,
		HeaderUserAgent: c.config.UserAgent,
		HeaderRequestID: requestID,
	}
	if body != nil {
		headers[HeaderContentType] = transport.MediaTypeJSON
	}
	if req.RequireAuth {
		token := strings.TrimSpace(c.config.Token)
		if token == "" {
			return nil, authError(http.StatusUnauthorized, "Missing API token for this request", map[string]any{})
		}
		headers[HeaderAuthorization] = "Bearer " + token
	}
	for key, value := range req.Headers {
		if canonical := overriddenHeaderKey(headers, key); canonical != "" {
			delete(headers, canonical)
		}
		headers[key] = value
	}

	if fields != nil {
		fields["request_id"] = requestID
	}
	c.logDebug(ctx, "stayhooks request", map[string]any{
		"method":     req.Method,
		"url":        target,
		"request_id": requestID,
		"headers":    RedactHeaders(headers),
	})

	if c.rateLimiter != nil {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, connectionError(err, "Failed to reach StayHere server")
		}
	}

	response, err := c.transport.Do(ctx, transport.Request{
		Method:               strings.ToUpper(req.Method),
		URL:                  target,
		Headers:              headers,
		Body:                 body,
		Timeout:              c.config.Timeout,
		MaxResponseBodyBytes: c.config.MaxResponseBodyBytes,
	})
	if err != nil {
		return nil, connectionError(err, "Failed to reach StayHere server")
	}
	if fields != nil {
		fields["status_code"] = response.StatusCode
	}
	return classifyResponse(response)
}

func overriddenHeaderKey(headers map[string]string, key string) string {
	for existing := range headers {
		if strings.EqualFold(existing, key) {
			return existing
		}
	}
	return ""
}

func classifyResponse(response transport.Response) (map[string]any, error) {
	raw := string(response.Body)
	status := response.StatusCode
	if status < 200 || status > 299 {
		parsed := attemptJSON(raw)
		message := errorMessage(parsed, raw, status)
		if status == http.StatusUnauthorized || status == http.StatusForbidden {
			return nil, authError(status, message, parsed)
		}
		return nil, httpError(status, message, parsed)
	}
	if strings.TrimSpace(raw) == "" {
		return map[string]any{}, nil
	}
	decoded, err := decodeJSON(raw)
	if err != nil {
		return nil, invokeError(status, "Server response was not valid JSON", raw)
	}
	object, ok := decoded.(map[string]any)
	if !ok {
		return map[string]any{}, nil
	}
	return object, nil
}

func errorMessage(parsed map[string]any, raw string, status int) string {
	if message := stringField(parsed, "error"); strings.TrimSpace(message) != "" {
		return message
	}
	if strings.TrimSpace(raw) != "" {
		return raw
	}
	if text := http.StatusText(status); text != "" {
		return fmt.Sprintf("HTTP %d: %s", status, text)
	}
	return fmt.Sprintf("HTTP %d", status)
}

// attemptJSON is best effort: anything that is not a JSON object yields an empty map.
func attemptJSON(raw string) map[string]any {
	if strings.TrimSpace(raw) == "" {
		return map[string]any{}
	}
	decoded, err := decodeJSON(raw)
	if err != nil {
		return map[string]any{}
	}
	object, ok := decoded.(map[string]any)
	if !ok {
		return map[string]any{}
	}
	return object
}

func decodeJSON(raw string) (any, error) {
	decoder := json.NewDecoder(bytes.NewReader([]byte(raw)))
	decoder.UseNumber()
	var out any
	if err := decoder.Decode(&out); err != nil {
		return nil, err
	}
	if decoder.More() {
		return nil, fmt.Errorf("core: trailing data after json value")
	}
	return out, nil
}
