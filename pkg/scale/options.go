package scale

import "time"

// WithDevicePath sets the path of the HID device node
func WithDevicePath(devicePath string) func(*HIDScale) {
	return func(s *HIDScale) {
		s.devicePath = devicePath
	}
}

// WithReadTimeout bounds the duration of a single device read
func WithReadTimeout(timeout time.Duration) func(*HIDScale) {
	return func(s *HIDScale) {
		s.readTimeout = timeout
	}
}

// WithLogger sets a logger for transport level diagnostics
func WithLogger(logger Logger) func(*HIDScale) {
	return func(s *HIDScale) {
		s.logger = logger
	}
}
