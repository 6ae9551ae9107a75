package monitor

import (
	"github.com/fako1024/potwatch/pkg/scale"
	"github.com/fako1024/potwatch/pkg/sink"
	"github.com/prometheus/client_golang/prometheus"
)

// WithLogger sets a logger for the monitor
func WithLogger(logger scale.Logger) func(*Monitor) {
	return func(m *Monitor) {
		m.logger = logger
	}
}

// WithDisplay sets the display sink receiving cadence heartbeats
func WithDisplay(display *sink.Display) func(*Monitor) {
	return func(m *Monitor) {
		m.display = display
	}
}

// WithTelemetry sets the telemetry sink receiving change events
func WithTelemetry(telemetry *sink.Telemetry) func(*Monitor) {
	return func(m *Monitor) {
		m.telemetry = telemetry
	}
}

// WithChat sets the chat sink receiving cadence heartbeats
func WithChat(chat *sink.Chat) func(*Monitor) {
	return func(m *Monitor) {
		m.chat = chat
	}
}

// WithMQTT sets the MQTT sink receiving change events
func WithMQTT(state *sink.MQTT) func(*Monitor) {
	return func(m *Monitor) {
		m.state = state
	}
}

// WithMetrics registers the monitor metrics with the given registerer
func WithMetrics(reg prometheus.Registerer) func(*Monitor) {
	return func(m *Monitor) {
		m.metrics = newMetrics(reg)
	}
}
