package sink

import "fmt"

// Display denotes the LED display service, driven via a single HTTP endpoint
type Display struct {
	baseURL string
}

// NewDisplay instantiates a new Display sink. An empty base URL yields a
// sink that fails on every dispatch (degraded mode)
func NewDisplay(baseURL string) *Display {
	return &Display{
		baseURL: baseURL,
	}
}

// Show pushes the availability line to the display service
func (d *Display) Show(available, total, weight, maxWeight int) error {

	if d.baseURL == "" {
		return fmt.Errorf("display service URL not configured")
	}

	body := struct {
		Text string `json:"text"`
	}{
		Text: fmt.Sprintf("%d / %d - %d / %d", available, total, weight, maxWeight),
	}

	return postJSON(d.baseURL+"/display", nil, body)
}
