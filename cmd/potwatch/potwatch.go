package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/fako1024/potwatch/pkg/api"
	"github.com/fako1024/potwatch/pkg/config"
	"github.com/fako1024/potwatch/pkg/eventlog"
	"github.com/fako1024/potwatch/pkg/mock"
	"github.com/fako1024/potwatch/pkg/monitor"
	"github.com/fako1024/potwatch/pkg/scale"
	"github.com/fako1024/potwatch/pkg/sink"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

type cliConfig struct {
	settingsFile    string
	devicePath      string
	useMock         bool
	apiEndpoint     string
	metricsEndpoint string
	debug           bool

	tempFile      string
	archiveDir    string
	rotateMinutes int
}

var log = logrus.New()

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {

	// Parse command line options
	var cfg cliConfig

	flag.StringVar(&cfg.settingsFile, "config", "", "optional YAML settings file overriding the default thresholds")
	flag.StringVar(&cfg.devicePath, "device", "", "path of the scale HID device node")
	flag.BoolVar(&cfg.useMock, "mock", false, "use a scripted mock scale instead of real hardware")
	flag.StringVar(&cfg.apiEndpoint, "api", "", "listen address for the status API (disabled when empty)")
	flag.StringVar(&cfg.metricsEndpoint, "metrics", "", "listen address for Prometheus metrics (disabled when empty)")
	flag.BoolVar(&cfg.debug, "debug", false, "enable debug logging")
	flag.Parse()

	args := flag.Args()
	if len(args) != 3 {
		return fmt.Errorf("usage: %s [flags] <temp-log-file> <archive-dir> <rotate-minutes>", os.Args[0])
	}
	cfg.tempFile = args[0]
	cfg.archiveDir = args[1]
	rotateMinutes, err := strconv.Atoi(args[2])
	if err != nil || rotateMinutes <= 0 {
		return fmt.Errorf("invalid rotate interval %q: expected a positive number of minutes", args[2])
	}
	cfg.rotateMinutes = rotateMinutes

	logger := scale.NewDefaultLogger(cfg.debug)

	// Load a .env file, if present, before resolving the environment
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warnf("failed to load .env file: %s", err)
	}
	env := config.ReadEnv(logger)

	settings := config.DefaultSettings()
	if cfg.settingsFile != "" {
		if settings, err = config.ReadSettingsFile(cfg.settingsFile); err != nil {
			return fmt.Errorf("failed to read settings from %s: %s", cfg.settingsFile, err)
		}
	}

	var s scale.Scale
	if cfg.useMock {
		s = mock.New()
	} else {
		opts := []func(*scale.HIDScale){scale.WithLogger(logger)}
		if cfg.devicePath != "" {
			opts = append(opts, scale.WithDevicePath(cfg.devicePath))
		}
		s = scale.NewHIDScale(opts...)
	}
	defer func() {
		if cerr := s.Close(); cerr != nil {
			log.Errorf("failed to close scale: %s", cerr)
		}
	}()

	events, err := eventlog.Open(cfg.tempFile)
	if err != nil {
		return err
	}
	defer func() {
		_ = events.Close()
	}()

	options := []func(*monitor.Monitor){
		monitor.WithLogger(logger),
		monitor.WithTelemetry(sink.NewTelemetry(env.TelemetryAccessKey, env.Environment)),
		monitor.WithDisplay(sink.NewDisplay(env.DisplayServiceURL)),
	}
	if settings.ChatEnabled {
		options = append(options, monitor.WithChat(sink.NewChat(env.ChatAPIKey, settings.ChatRoomID)))
	}
	if env.MQTTBroker != "" {
		state, err := sink.NewMQTT(env.MQTTBroker, "potwatch")
		if err != nil {
			log.Errorf("failed to connect to MQTT broker %s: %s", env.MQTTBroker, err)
		} else {
			defer state.Close()
			options = append(options, monitor.WithMQTT(state))
		}
	}
	if cfg.metricsEndpoint != "" {
		reg := prometheus.NewRegistry()
		options = append(options, monitor.WithMetrics(reg))
		go serveMetrics(cfg.metricsEndpoint, reg)
	}

	mon, err := monitor.New(s, settings, events, cfg.archiveDir,
		time.Duration(cfg.rotateMinutes)*time.Minute, options...)
	if err != nil {
		return fmt.Errorf("failed to initialize monitor: %s", err)
	}

	if cfg.apiEndpoint != "" {
		api.New(mon, cfg.apiEndpoint)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	log.Infof("monitoring scale, archiving %s to %s every %d minutes",
		cfg.tempFile, cfg.archiveDir, cfg.rotateMinutes)

	return mon.Run(ctx)
}

func serveMetrics(endpoint string, reg *prometheus.Registry) {
	http.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	if err := http.ListenAndServe(endpoint, nil); err != nil {
		log.Errorf("metrics listener failed: %s", err)
	}
}
