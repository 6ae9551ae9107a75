package sink

import mqtt "github.com/eclipse/paho.mqtt.golang"

// WithTelemetryEndpoint overrides the telemetry event endpoint
func WithTelemetryEndpoint(endpoint string) func(*Telemetry) {
	return func(t *Telemetry) {
		t.endpoint = endpoint
	}
}

// WithChatEndpoint overrides the chat service endpoint
func WithChatEndpoint(endpoint string) func(*Chat) {
	return func(c *Chat) {
		c.endpoint = endpoint
	}
}

// WithTopicPrefix overrides the MQTT topic prefix
func WithTopicPrefix(prefix string) func(*MQTT) {
	return func(m *MQTT) {
		m.topicPrefix = prefix
	}
}

// WithClient sets a pre-built MQTT client (used for testing)
func WithClient(client mqtt.Client) func(*MQTT) {
	return func(m *MQTT) {
		m.client = client
	}
}
