package sink

import (
	"strconv"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

const defaultTopicPrefix = "potwatch"

// MQTT denotes an optional state publisher for home-automation brokers,
// mirroring the telemetry push as retained topics
type MQTT struct {
	client      mqtt.Client
	topicPrefix string
}

// NewMQTT instantiates a new MQTT sink and connects to the broker, executing
// functional options, if any
func NewMQTT(broker, clientID string, options ...func(*MQTT)) (*MQTT, error) {

	m := &MQTT{
		topicPrefix: defaultTopicPrefix,
	}

	// Execute functional options (if any), see options.go for implementation
	for _, option := range options {
		option(m)
	}

	if m.client == nil {
		opts := mqtt.NewClientOptions().
			AddBroker(broker).
			SetClientID(clientID).
			SetAutoReconnect(true).
			SetConnectTimeout(dispatchTimeout)
		m.client = mqtt.NewClient(opts)
	}

	if token := m.client.Connect(); token.Wait() && token.Error() != nil {
		return nil, token.Error()
	}

	return m, nil
}

// Publish pushes the weight and lifted flag as retained topics
func (m *MQTT) Publish(weight int, lifted bool) error {

	if token := m.client.Publish(m.topicPrefix+"/weight", 0, true, strconv.Itoa(weight)); token.Wait() && token.Error() != nil {
		return token.Error()
	}
	if token := m.client.Publish(m.topicPrefix+"/lifted", 0, true, strconv.FormatBool(lifted)); token.Wait() && token.Error() != nil {
		return token.Error()
	}

	return nil
}

// Close disconnects from the broker
func (m *MQTT) Close() {
	m.client.Disconnect(250)
}
