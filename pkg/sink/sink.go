// Package sink implements the outbound push collaborators of the monitor:
// the LED display service, the telemetry event store, the chat room and an
// optional MQTT broker. All dispatches are best effort: each returns an
// explicit error for the caller to log and discard, and every HTTP call is
// bounded by a client timeout so a hanging collaborator cannot stall the
// poll loop.
package sink

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const dispatchTimeout = 5 * time.Second

var httpClient = &http.Client{Timeout: dispatchTimeout}

func postJSON(url string, headers map[string]string, body interface{}) error {

	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal payload for %s: %w", url, err)
	}

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("could not push to %s: %w", url, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("unexpected status from %s: %s", url, resp.Status)
	}

	return nil
}
