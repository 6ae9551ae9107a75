package sink

import "fmt"

const defaultTelemetryEndpoint = "https://groker.init.st/api/events"

// Telemetry denotes the remote event-stream store. Each detected change is
// pushed as a small batch of named events into an environment-scoped bucket
type Telemetry struct {
	endpoint   string
	accessKey  string
	bucketKey  string
	bucketName string
}

// NewTelemetry instantiates a new Telemetry sink for the given environment,
// executing functional options, if any
func NewTelemetry(accessKey, environment string, options ...func(*Telemetry)) *Telemetry {

	t := &Telemetry{
		endpoint:   defaultTelemetryEndpoint,
		accessKey:  accessKey,
		bucketKey:  fmt.Sprintf("%s - coffee_scale_data", environment),
		bucketName: fmt.Sprintf("%s - Coffee Scale Data", environment),
	}

	// Execute functional options (if any), see options.go for implementation
	for _, option := range options {
		option(t)
	}

	return t
}

type event struct {
	Key   string      `json:"key"`
	Value interface{} `json:"value"`
}

// Push submits the current weight, flagging the lifted state only when the
// pot is actually off the scale
func (t *Telemetry) Push(weight int, lifted bool) error {

	if t.accessKey == "" {
		return fmt.Errorf("telemetry access key not configured")
	}

	events := make([]event, 0, 2)
	if lifted {
		events = append(events, event{Key: "Coffee Pot Lifted", Value: true})
	}
	events = append(events, event{Key: "Coffee Weight", Value: weight})

	headers := map[string]string{
		"X-IS-AccessKey":  t.accessKey,
		"X-IS-BucketKey":  t.bucketKey,
		"X-IS-BucketName": t.bucketName,
		"Accept-Version":  "~0",
	}

	return postJSON(t.endpoint, headers, events)
}
