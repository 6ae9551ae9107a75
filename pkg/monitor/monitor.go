// Package monitor drives the poll loop tying the scale, the state tracker,
// the schedulers and the outbound sinks together, once per tick.
package monitor

import (
	"context"
	"sync"
	"time"

	"github.com/fako1024/potwatch/pkg/capacity"
	"github.com/fako1024/potwatch/pkg/config"
	"github.com/fako1024/potwatch/pkg/eventlog"
	"github.com/fako1024/potwatch/pkg/scale"
	"github.com/fako1024/potwatch/pkg/schedule"
	"github.com/fako1024/potwatch/pkg/sink"
	"github.com/fako1024/potwatch/pkg/tracker"
)

// Status denotes a point-in-time snapshot of the monitored pot
type Status struct {
	WeightGrams       int       `json:"weight_grams"`
	ServingsAvailable int       `json:"servings_available"`
	ServingsTotal     int       `json:"servings_total"`
	PotLifted         bool      `json:"pot_lifted"`
	LastSample        time.Time `json:"last_sample"`
	LastChange        time.Time `json:"last_change,omitempty"`
}

// Monitor owns the long-lived loop state exclusively: the smoothed weight
// lives in the tracker, the dispatch counter in the cadence gate and the
// next archival time in the deadline gate. The loop is the only writer
type Monitor struct {
	scale    scale.Scale
	tracker  *tracker.Tracker
	table    capacity.Table
	notify   *schedule.Cadence
	maintain *schedule.Deadline

	events     *eventlog.Log
	archiveDir string

	display   *sink.Display
	telemetry *sink.Telemetry
	chat      *sink.Chat
	state     *sink.MQTT

	pollInterval time.Duration
	metrics      *metrics
	logger       scale.Logger

	mu     sync.RWMutex
	status Status
}

// New instantiates a new Monitor, executing functional options, if any
func New(s scale.Scale, settings config.Settings, events *eventlog.Log, archiveDir string, rotateInterval time.Duration, options ...func(*Monitor)) (*Monitor, error) {

	table := capacity.Table{
		Breakpoints:     settings.Breakpoints,
		ServingCapacity: settings.ServingCapacityGrams,
		Margin:          settings.ServingMarginGrams,
	}
	if err := table.Validate(); err != nil {
		return nil, err
	}

	m := &Monitor{
		scale:        s,
		tracker:      tracker.New(settings.ChangeThresholdGrams, settings.EmptyThresholdGrams),
		table:        table,
		notify:       schedule.NewCadence(settings.NotifyCadenceTicks),
		maintain:     schedule.NewDeadline(rotateInterval, time.Now()),
		events:       events,
		archiveDir:   archiveDir,
		pollInterval: time.Duration(settings.PollIntervalSeconds) * time.Second,
		logger:       &scale.NullLogger{},
	}

	// Execute functional options (if any), see options.go for implementation
	for _, option := range options {
		option(m)
	}

	return m, nil
}

// Run seeds the baseline weight and executes the poll loop until the context
// is cancelled. Nothing inside a tick is fatal: monitoring availability
// takes precedence over delivery of any single notification
func (m *Monitor) Run(ctx context.Context) error {

	// Seed the baseline from the first sample so the first delta check does
	// not fire against zero
	if first := m.scale.ReadWeight(); first.Valid() {
		m.tracker.Seed(first.Grams)
	}

	for {
		select {
		case <-ctx.Done():
			m.logger.Infof("shutting down monitor")
			return nil
		case <-time.After(m.pollInterval):
			m.tick(time.Now())
		}
	}
}

// tick executes the fixed per-tick phases: sample, maintenance, change
// detection, heartbeat dispatch
func (m *Monitor) tick(now time.Time) {

	sample := m.scale.ReadWeight()
	if !sample.Valid() && m.metrics != nil {
		m.metrics.sensorFailuresTotal.Inc()
	}

	if m.maintain.Due(now) {
		if err := m.rotateAndArchive(now); err != nil {
			m.logger.Errorf("log archival failed: %s", err)
		}
	}

	if sample.Valid() && m.tracker.ShouldUpdate(sample.Grams) {
		if err := m.events.Record(sample.TimeStamp, sample.Grams); err != nil {
			m.logger.Errorf("failed to record change event: %s", err)
		}
		m.tracker.Update(sample.Grams)
		m.logger.Infof("weight changed to %d g (%d / %d servings)",
			sample.Grams, m.table.Servings(sample.Grams), m.table.Total())
		m.pushChange()
		m.noteChange(sample.TimeStamp)
	}

	if m.notify.Tick() {
		m.dispatchHeartbeat()
	}

	m.updateStatus(sample)
}

// pushChange submits the updated state to the telemetry store and, when
// configured, the MQTT broker. Failures are logged and discarded
func (m *Monitor) pushChange() {

	weight, lifted := m.tracker.Current(), m.tracker.PotLifted()

	if m.telemetry != nil {
		if err := m.telemetry.Push(weight, lifted); err != nil {
			m.logger.Warnf("telemetry push failed: %s", err)
			m.countDispatchFailure()
		}
	}
	if m.state != nil {
		if err := m.state.Publish(weight, lifted); err != nil {
			m.logger.Warnf("MQTT publish failed: %s", err)
			m.countDispatchFailure()
		}
	}
	if m.metrics != nil {
		m.metrics.changesTotal.Inc()
		m.metrics.weightGrams.Set(float64(weight))
		m.metrics.servingsAvailable.Set(float64(m.table.Servings(weight)))
		if lifted {
			m.metrics.potLifted.Set(1)
		} else {
			m.metrics.potLifted.Set(0)
		}
	}
}

// dispatchHeartbeat pushes the availability line to the display and, when
// enabled, the chat room. Heartbeats fire on cadence regardless of change
// detection, giving collaborators a "still alive" signal
func (m *Monitor) dispatchHeartbeat() {

	available := m.table.Servings(m.tracker.Current())

	if m.display != nil {
		if err := m.display.Show(available, m.table.Total(), m.tracker.Current(), m.table.MaxWeight()); err != nil {
			m.logger.Warnf("display dispatch failed: %s", err)
			m.countDispatchFailure()
		}
	}
	if m.chat != nil {
		if err := m.chat.Notify(available, m.table.Total(), m.tracker.Current(), m.table.MaxWeight()); err != nil {
			m.logger.Warnf("chat dispatch failed: %s", err)
			m.countDispatchFailure()
		}
	}
	if m.metrics != nil {
		m.metrics.heartbeatsTotal.Inc()
	}
}

// rotateAndArchive rotates the active event log and moves all rotated
// segments into the permanent archive directory
func (m *Monitor) rotateAndArchive(now time.Time) error {

	if err := m.events.Rotate(now); err != nil {
		return err
	}
	if m.metrics != nil {
		m.metrics.archivalsTotal.Inc()
	}

	return m.events.Archive(m.archiveDir)
}

func (m *Monitor) countDispatchFailure() {
	if m.metrics != nil {
		m.metrics.dispatchFailuresTotal.Inc()
	}
}

func (m *Monitor) updateStatus(sample scale.Sample) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.status.WeightGrams = m.tracker.Current()
	m.status.ServingsAvailable = m.table.Servings(m.tracker.Current())
	m.status.ServingsTotal = m.table.Total()
	m.status.PotLifted = m.tracker.PotLifted()
	if sample.Valid() {
		m.status.LastSample = sample.TimeStamp
	}
}

func (m *Monitor) noteChange(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.status.LastChange = t
}

// Status returns a snapshot of the monitored pot state
func (m *Monitor) Status() Status {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.status
}
