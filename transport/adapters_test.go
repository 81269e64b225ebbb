package transport

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestRESTAdapter_DoSendsMethodHeadersAndBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("expected POST method, got %s", r.Method)
		}
		if got := r.Header.Get("X-Test"); got != "value" {
			t.Fatalf("expected header value, got %q", got)
		}
		body, err := io.ReadAll(r.Body)
		if err != nil {
			t.Fatalf("read request body: %v", err)
		}
		if string(body) != "payload" {
			t.Fatalf("expected request body payload")
		}
		w.Header().Set("X-Server", "ok")
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte("done"))
	}))
	defer server.Close()

	adapter := NewRESTAdapter(server.Client())
	result, err := adapter.Do(context.Background(), Request{
		Method: "post",
		URL:    server.URL,
		Headers: map[string]string{
			"X-Test": "value",
		},
		Body:    []byte("payload"),
		Timeout: 5 * time.Second,
	})
	if err != nil {
		t.Fatalf("perform rest request: %v", err)
	}
	if result.StatusCode != http.StatusAccepted {
		t.Fatalf("expected accepted status, got %d", result.StatusCode)
	}
	if string(result.Body) != "done" {
		t.Fatalf("unexpected response body: %q", string(result.Body))
	}
	if result.Headers["X-Server"] != "ok" {
		t.Fatalf("expected response header")
	}
}

func TestRESTAdapter_PreservesEscapedPathSegments(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.EscapedPath(); got != "/api/webhooks/room%2F1" {
			t.Fatalf("expected escaped segment to survive, got %q", got)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	adapter := NewRESTAdapter(server.Client())
	if _, err := adapter.Do(context.Background(), Request{URL: server.URL + "/api/webhooks/room%2F1"}); err != nil {
		t.Fatalf("perform rest request: %v", err)
	}
}

func TestRESTAdapter_NonSuccessStatusIsNotAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":"nope"}`))
	}))
	defer server.Close()

	result, err := NewRESTAdapter(server.Client()).Do(context.Background(), Request{URL: server.URL})
	if err != nil {
		t.Fatalf("expected response for non-2xx status, got %v", err)
	}
	if result.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", result.StatusCode)
	}
}

func TestNewRESTAdapter_DefaultClientTimeout(t *testing.T) {
	adapter := NewRESTAdapter(nil)
	httpClient, ok := adapter.Client.(*http.Client)
	if !ok {
		t.Fatalf("expected default http client implementation")
	}
	if httpClient.Timeout != defaultRESTClientTimeout {
		t.Fatalf("expected default timeout %s, got %s", defaultRESTClientTimeout, httpClient.Timeout)
	}
	if adapter.MaxResponseBodyBytes != DefaultResponseBodyLimit {
		t.Fatalf("expected default response body limit %d, got %d", DefaultResponseBodyLimit, adapter.MaxResponseBodyBytes)
	}
}

func TestRESTAdapter_RequestBodyLimitOverridesAdapterLimit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("12345"))
	}))
	defer server.Close()

	adapter := NewRESTAdapter(server.Client())
	adapter.MaxResponseBodyBytes = 1024

	_, err := adapter.Do(context.Background(), Request{
		Method:               "GET",
		URL:                  server.URL,
		MaxResponseBodyBytes: 4,
	})
	if err == nil {
		t.Fatalf("expected response body limit error")
	}
	if !strings.Contains(err.Error(), "response body exceeds limit of 4 bytes") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestJSONAdapter_ContentTypeOnlyWithBody(t *testing.T) {
	var seen []http.Header
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Header.Clone())
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	adapter := NewJSONAdapter(server.Client())
	if _, err := adapter.Do(context.Background(), Request{Method: http.MethodDelete, URL: server.URL}); err != nil {
		t.Fatalf("perform bodiless request: %v", err)
	}
	if _, err := adapter.Do(context.Background(), Request{
		Method: http.MethodPost,
		URL:    server.URL,
		Body:   []byte(`{"a":1}`),
	}); err != nil {
		t.Fatalf("perform json request: %v", err)
	}

	if len(seen) != 2 {
		t.Fatalf("expected 2 requests, got %d", len(seen))
	}
	for _, headers := range seen {
		if got := headers.Get(HeaderAccept); got != MediaTypeJSON {
			t.Fatalf("expected json accept header, got %q", got)
		}
	}
	if got := seen[0].Get(HeaderContentType); got != "" {
		t.Fatalf("expected no content type without body, got %q", got)
	}
	if got := seen[1].Get(HeaderContentType); got != MediaTypeJSON {
		t.Fatalf("expected json content type with body, got %q", got)
	}
}

func TestJSONAdapter_CallerHeadersOverrideDefaults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get(HeaderAccept); got != "text/plain" {
			t.Fatalf("expected caller accept header to win, got %q", got)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	result, err := NewJSONAdapter(server.Client()).Do(context.Background(), Request{
		URL:     server.URL,
		Headers: map[string]string{"accept": "text/plain"},
	})
	if err != nil {
		t.Fatalf("perform request: %v", err)
	}
	if result.Metadata["kind"] != KindJSON {
		t.Fatalf("expected json metadata kind, got %v", result.Metadata["kind"])
	}
}

func TestJSONAdapter_WithResponseBodyLimit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("123456"))
	}))
	defer server.Close()

	adapter := NewJSONAdapter(server.Client()).WithResponseBodyLimit(5)
	_, err := adapter.Do(context.Background(), Request{URL: server.URL})
	if err == nil || !strings.Contains(err.Error(), "exceeds limit of 5 bytes") {
		t.Fatalf("expected response body limit error, got %v", err)
	}
}

type capturingDoer struct {
	request *http.Request
}

func (d *capturingDoer) Do(req *http.Request) (*http.Response, error) {
	d.request = req
	return &http.Response{
		StatusCode: http.StatusOK,
		Header:     http.Header{},
		Body:       io.NopCloser(strings.NewReader(`{}`)),
	}, nil
}

func TestJSONAdapter_KeepsHeaderValuesVerbatim(t *testing.T) {
	doer := &capturingDoer{}
	_, err := NewJSONAdapter(doer).Do(context.Background(), Request{
		Method:  http.MethodPost,
		URL:     "http://example.com/invoke",
		Headers: map[string]string{" x-stay-webhook-secret ": "  whsec padded "},
		Body:    []byte(`{}`),
	})
	if err != nil {
		t.Fatalf("perform request: %v", err)
	}
	if doer.request == nil {
		t.Fatalf("expected request to reach the doer")
	}
	values := doer.request.Header.Values("X-Stay-Webhook-Secret")
	if len(values) != 1 || values[0] != "  whsec padded " {
		t.Fatalf("expected secret value untouched, got %q", values)
	}
}
