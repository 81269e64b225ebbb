package core

import "testing"

func TestRedactSensitiveMap(t *testing.T) {
	redacted := RedactSensitiveMap(map[string]any{
		"room_id":    "room",
		"webhook_id": "w1",
		"secret":     "s",
		"api_token":  "t",
		"nested": map[string]any{
			"client_secret": "x",
			"label":         "ok",
		},
		"list": []any{map[string]any{"password": "p"}},
	})
	if redacted["room_id"] != "room" || redacted["webhook_id"] != "w1" {
		t.Fatalf("expected traceability keys to pass through, got %v", redacted)
	}
	if redacted["secret"] != RedactedValue || redacted["api_token"] != RedactedValue {
		t.Fatalf("expected credentials to be redacted, got %v", redacted)
	}
	nested := redacted["nested"].(map[string]any)
	if nested["client_secret"] != RedactedValue || nested["label"] != "ok" {
		t.Fatalf("unexpected nested redaction %v", nested)
	}
	item := redacted["list"].([]any)[0].(map[string]any)
	if item["password"] != RedactedValue {
		t.Fatalf("expected list items to be redacted, got %v", item)
	}
	if len(RedactSensitiveMap(nil)) != 0 {
		t.Fatalf("expected empty map for nil input")
	}
}

func TestRedactHeaders(t *testing.T) {
	headers := RedactHeaders(map[string]string{
		"Authorization":         "Bearer tok",
		"x-stay-webhook-secret": "whsec",
		"X-Request-Id":          "req_1",
		"User-Agent":            "stayhooks-go/0.1",
	})
	if headers["Authorization"] != RedactedValue || headers["x-stay-webhook-secret"] != RedactedValue {
		t.Fatalf("expected credential headers to be redacted, got %v", headers)
	}
	if headers["X-Request-Id"] != "req_1" || headers["User-Agent"] != "stayhooks-go/0.1" {
		t.Fatalf("expected other headers untouched, got %v", headers)
	}
}
