package planner

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"wanderplan/internal/modules/itinerary"
)

const maxResponseBytes = 8 << 20

// WebhookSource posts the trip form to a workflow endpoint and returns its JSON answer.
type WebhookSource struct {
	url    string
	client *http.Client
}

// NewWebhookSource builds a source for url. A nil client uses a plain http.Client;
// the deadline always comes from the request context.
func NewWebhookSource(url string, client *http.Client) *WebhookSource {
	if client == nil {
		client = &http.Client{}
	}
	return &WebhookSource{url: url, client: client}
}

func (w *WebhookSource) Name() string { return "webhook" }

func (w *WebhookSource) Fetch(ctx context.Context, form itinerary.TripFormData) (any, error) {
	body, err := json.Marshal(form)
	if err != nil {
		return nil, fmt.Errorf("encode form: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := w.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("webhook request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read webhook response: %w", err)
	}

	var payload any
	decodeErr := json.Unmarshal(raw, &payload)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := ""
		if decodeErr == nil {
			msg = errorMessage(payload)
		}
		return nil, classifyFailure(resp.StatusCode, msg)
	}
	if decodeErr != nil {
		return nil, &itinerary.MalformedResponseError{Reason: "response body is not JSON"}
	}
	if rec, ok := payload.(map[string]any); ok {
		if isErrorMarker(rec["error"]) {
			return nil, classifyFailure(resp.StatusCode, errorMessage(payload))
		}
	}
	return payload, nil
}

// isErrorMarker reports whether an "error" field on a 2xx body signals a failure.
// Falsy markers such as null, false, "" and 0 do not.
func isErrorMarker(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case float64:
		return x != 0
	default:
		return true
	}
}

// errorMessage pulls a human message out of an error body such as
// {"message": "..."}, {"error": "..."} or {"error": {"message": "..."}}.
func errorMessage(payload any) string {
	rec, ok := payload.(map[string]any)
	if !ok {
		return ""
	}
	if m, ok := rec["message"].(string); ok && m != "" {
		return m
	}
	switch e := rec["error"].(type) {
	case string:
		return e
	case map[string]any:
		if m, ok := e["message"].(string); ok {
			return m
		}
	}
	return ""
}
