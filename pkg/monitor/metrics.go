package monitor

import "github.com/prometheus/client_golang/prometheus"

type metrics struct {
	weightGrams       prometheus.Gauge
	servingsAvailable prometheus.Gauge
	potLifted         prometheus.Gauge

	changesTotal          prometheus.Counter
	heartbeatsTotal       prometheus.Counter
	archivalsTotal        prometheus.Counter
	sensorFailuresTotal   prometheus.Counter
	dispatchFailuresTotal prometheus.Counter
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		weightGrams: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "potwatch",
			Name:      "weight_grams",
			Help:      "Current smoothed weight of the pot",
		}),
		servingsAvailable: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "potwatch",
			Name:      "servings_available",
			Help:      "Servings still available in the pot",
		}),
		potLifted: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "potwatch",
			Name:      "pot_lifted_binary",
			Help:      "Registers when the pot is off the scale",
		}),
		changesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "potwatch",
			Name:      "weight_changes_total",
			Help:      "Increases when a debounced weight change is detected",
		}),
		heartbeatsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "potwatch",
			Name:      "heartbeats_total",
			Help:      "Increases when a cadence heartbeat is dispatched",
		}),
		archivalsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "potwatch",
			Name:      "log_archivals_total",
			Help:      "Increases when the event log is rotated and archived",
		}),
		sensorFailuresTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "potwatch",
			Name:      "sensor_failures_total",
			Help:      "Increases when a tick yields no usable sensor reading",
		}),
		dispatchFailuresTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "potwatch",
			Name:      "dispatch_failures_total",
			Help:      "Increases when an outbound sink dispatch fails",
		}),
	}

	reg.MustRegister(
		m.weightGrams,
		m.servingsAvailable,
		m.potLifted,
		m.changesTotal,
		m.heartbeatsTotal,
		m.archivalsTotal,
		m.sensorFailuresTotal,
		m.dispatchFailuresTotal,
	)

	return m
}
