package transport

import (
	"context"
	"net/http"
	"strings"

	goerrors "github.com/goliatone/go-errors"
)

const KindJSON = "json"

const (
	HeaderAccept      = "Accept"
	HeaderContentType = "Content-Type"
	MediaTypeJSON     = "application/json"
)

// JSONAdapter layers JSON content negotiation on top of a RESTAdapter.
// Content-Type is only sent when the request carries a body.
type JSONAdapter struct {
	defaultHeader map[string]string
	rest          *RESTAdapter
}

func NewJSONAdapter(client HTTPDoer) *JSONAdapter {
	return &JSONAdapter{
		defaultHeader: map[string]string{HeaderAccept: MediaTypeJSON},
		rest:          NewRESTAdapter(client),
	}
}

// WithResponseBodyLimit sets the adapter wide response cap, non positive values are ignored.
func (a *JSONAdapter) WithResponseBodyLimit(limit int64) *JSONAdapter {
	if a != nil && a.rest != nil && limit > 0 {
		a.rest.MaxResponseBodyBytes = limit
	}
	return a
}

func (a *JSONAdapter) Kind() string {
	if a == nil {
		return ""
	}
	return KindJSON
}

func (a *JSONAdapter) Do(ctx context.Context, req Request) (Response, error) {
	if a == nil || a.rest == nil {
		return Response{}, transportError(
			"transport: json adapter is nil",
			goerrors.CategoryInternal,
			http.StatusInternalServerError,
			map[string]any{"adapter": KindJSON},
		)
	}
	resolved := req
	if strings.TrimSpace(resolved.Method) == "" {
		resolved.Method = http.MethodGet
	}
	headers := cloneHeaders(a.defaultHeader)
	if len(req.Body) > 0 {
		headers[HeaderContentType] = MediaTypeJSON
	}
	for key, value := range req.Headers {
		trimmed := strings.TrimSpace(key)
		if trimmed == "" {
			continue
		}
		headers[http.CanonicalHeaderKey(trimmed)] = value
	}
	resolved.Headers = headers
	response, err := a.rest.Do(ctx, resolved)
	if err != nil {
		return Response{}, err
	}
	response.Metadata = cloneMetadata(response.Metadata)
	response.Metadata["kind"] = KindJSON
	return response, nil
}

func cloneHeaders(input map[string]string) map[string]string {
	if len(input) == 0 {
		return map[string]string{}
	}
	out := make(map[string]string, len(input))
	for key, value := range input {
		trimmed := strings.TrimSpace(key)
		if trimmed == "" {
			continue
		}
		out[http.CanonicalHeaderKey(trimmed)] = strings.TrimSpace(value)
	}
	return out
}

func cloneMetadata(input map[string]any) map[string]any {
	if len(input) == 0 {
		return map[string]any{}
	}
	out := make(map[string]any, len(input))
	for key, value := range input {
		out[key] = value
	}
	return out
}

var _ Adapter = (*JSONAdapter)(nil)
