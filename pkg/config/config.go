// Package config holds the process-lifetime tunables of the monitor and the
// collaborator credentials resolved from the environment.
package config

import (
	"fmt"
	"os"

	"github.com/fako1024/potwatch/pkg/scale"
	"gopkg.in/yaml.v2"
)

// Settings denotes the immutable tunables of the monitor. Values not present
// in the optional settings file keep their defaults
type Settings struct {
	ChangeThresholdGrams int   `yaml:"change_threshold_grams"`
	EmptyThresholdGrams  int   `yaml:"empty_threshold_grams"`
	ServingCapacityGrams int   `yaml:"serving_capacity_grams"`
	ServingMarginGrams   int   `yaml:"serving_margin_grams"`
	Breakpoints          []int `yaml:"breakpoints"`
	NotifyCadenceTicks   int   `yaml:"notify_cadence_ticks"`
	PollIntervalSeconds  int   `yaml:"poll_interval_seconds"`
	ChatEnabled          bool  `yaml:"chat_enabled"`
	ChatRoomID           int   `yaml:"chat_room_id"`
}

// DefaultSettings returns the stock tunables for a six-cup pot on the office
// scale
func DefaultSettings() Settings {
	return Settings{
		ChangeThresholdGrams: 5,
		EmptyThresholdGrams:  10,
		ServingCapacityGrams: 266,
		ServingMarginGrams:   10,
		Breakpoints:          []int{1200, 1466, 1732, 1998, 2264, 2530},
		NotifyCadenceTicks:   40,
		PollIntervalSeconds:  1,
		ChatEnabled:          false,
		ChatRoomID:           926556,
	}
}

// ReadSettingsFile overlays settings from a YAML file on top of the defaults
func ReadSettingsFile(path string) (Settings, error) {

	settings := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		return settings, fmt.Errorf("file reading error: %w", err)
	}
	if err := yaml.UnmarshalStrict(data, &settings); err != nil {
		return settings, fmt.Errorf("failed to parse settings: %w", err)
	}

	return settings, settings.Validate()
}

// Validate checks the settings for structural sanity
func (s Settings) Validate() error {
	if s.ChangeThresholdGrams < 0 {
		return fmt.Errorf("invalid change threshold: %d", s.ChangeThresholdGrams)
	}
	if s.EmptyThresholdGrams < 0 {
		return fmt.Errorf("invalid empty threshold: %d", s.EmptyThresholdGrams)
	}
	if s.NotifyCadenceTicks < 1 {
		return fmt.Errorf("invalid notification cadence: %d", s.NotifyCadenceTicks)
	}
	if s.PollIntervalSeconds < 1 {
		return fmt.Errorf("invalid poll interval: %d", s.PollIntervalSeconds)
	}
	if len(s.Breakpoints) == 0 {
		return fmt.Errorf("no serving breakpoints configured")
	}
	for i := 1; i < len(s.Breakpoints); i++ {
		if s.Breakpoints[i] <= s.Breakpoints[i-1] {
			return fmt.Errorf("breakpoints not strictly ascending at index %d", i)
		}
	}

	return nil
}

// Env denotes the collaborator credentials and endpoints resolved from the
// process environment
type Env struct {
	TelemetryAccessKey string
	Environment        string
	ChatAPIKey         string
	DisplayServiceURL  string
	MQTTBroker         string
}

// ReadEnv resolves the environment once at startup. Missing required keys
// are logged as errors but do not abort: the affected sink simply fails on
// every dispatch and monitoring continues degraded
func ReadEnv(logger scale.Logger) Env {

	env := Env{
		TelemetryAccessKey: os.Getenv("TELEMETRY_ACCESS_KEY"),
		Environment:        os.Getenv("ENVIRONMENT"),
		ChatAPIKey:         os.Getenv("CHAT_API_KEY"),
		DisplayServiceURL:  os.Getenv("DISPLAY_SERVICE_URL"),
		MQTTBroker:         os.Getenv("MQTT_BROKER"),
	}

	if env.TelemetryAccessKey == "" {
		logger.Errorf("telemetry access key not set in environment variable TELEMETRY_ACCESS_KEY")
	}
	if env.Environment == "" {
		env.Environment = "prod"
	}
	if env.ChatAPIKey == "" {
		logger.Errorf("chat API key missing from environment variable CHAT_API_KEY")
	}
	if env.DisplayServiceURL == "" {
		logger.Errorf("DISPLAY_SERVICE_URL environment variable has not been set")
	}

	return env
}
