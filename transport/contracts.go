package transport

import (
	"context"
	"net/http"
	"time"
)

type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

type Request struct {
	Method               string
	URL                  string
	Headers              map[string]string
	Body                 []byte
	Timeout              time.Duration
	MaxResponseBodyBytes int64
}

type Response struct {
	StatusCode int
	Headers    map[string]string
	Body       []byte
	Metadata   map[string]any
}

// Adapter executes a single HTTP exchange. Non-2xx statuses are returned as
// responses, only transport-level failures are errors.
type Adapter interface {
	Kind() string
	Do(ctx context.Context, req Request) (Response, error)
}
