// Command aware-sim runs the NAN coordinator against a simulated or
// mDNS-emulated radio.
//
// Usage:
//
//	aware-sim [flags]
//
// Flags:
//
//	-backend string       Radio backend: sim, mdns (default "sim")
//	-config string        Configuration file path (YAML)
//	-log-level string     Log level: debug, info, warn, error (default "info")
//	-protocol-log string  Write the HAL trace to this file (CBOR)
//	-metrics-addr string  Serve Prometheus metrics on this address
//	-interface string     Network interface for the mdns backend
//	-latency duration     Answer latency of the sim backend
//	-interactive          Start the interactive shell (default true)
//
// Examples:
//
//	# Simulated radio with an interactive shell
//	aware-sim
//
//	# Two machines discovering each other over mDNS
//	aware-sim -backend mdns -interface eth0 -log-level debug
//
//	# Headless, with a trace file and metrics
//	aware-sim -interactive=false -config sim.yaml -protocol-log trace.alog -metrics-addr :9102
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/multierr"

	"github.com/awaremux/awaremux-go/cmd/aware-sim/interactive"
	"github.com/awaremux/awaremux-go/internal/halsim"
	"github.com/awaremux/awaremux-go/pkg/aware"
	"github.com/awaremux/awaremux-go/pkg/hal"
	"github.com/awaremux/awaremux-go/pkg/log"
	"github.com/awaremux/awaremux-go/pkg/mdnshal"
	"github.com/awaremux/awaremux-go/pkg/metrics"
)

// builtinClient is the client id used for the startup configuration
// request.
const builtinClient aware.ClientID = 1

// radio is a HAL backend the coordinator can drive.
type radio interface {
	hal.Commander
	Attach(cb hal.Callbacks)
	Close()
}

func main() {
	cfg, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(2)
	}
	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "aware-sim: %v\n", err)
		os.Exit(1)
	}
}

// parseFlags builds the configuration from the config file, if any, and
// the command line. Flags given explicitly win over the file.
func parseFlags(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	var configFile, backend string

	fs.StringVar(&configFile, "config", "", "Configuration file path (YAML)")
	fs.StringVar(&backend, "backend", string(BackendSim), "Radio backend: sim, mdns")
	fs.StringVar(&cfg.LogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	fs.StringVar(&cfg.ProtocolLog, "protocol-log", "", "Write the HAL trace to this file (CBOR)")
	fs.StringVar(&cfg.MetricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address")
	fs.StringVar(&cfg.Interface, "interface", "", "Network interface for the mdns backend")
	fs.DurationVar(&cfg.Latency, "latency", 0, "Answer latency of the sim backend")
	fs.BoolVar(&cfg.Interactive, "interactive", true, "Start the interactive shell")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	cfg.Backend = Backend(backend)

	if configFile != "" {
		var file Config
		file.Interactive = cfg.Interactive
		if err := loadConfigFile(configFile, &file); err != nil {
			return cfg, err
		}
		fs.Visit(func(f *flag.Flag) {
			switch f.Name {
			case "backend":
				file.Backend = cfg.Backend
			case "log-level":
				file.LogLevel = cfg.LogLevel
			case "protocol-log":
				file.ProtocolLog = cfg.ProtocolLog
			case "metrics-addr":
				file.MetricsAddr = cfg.MetricsAddr
			case "interface":
				file.Interface = cfg.Interface
			case "latency":
				file.Latency = cfg.Latency
			case "interactive":
				file.Interactive = cfg.Interactive
			}
		})
		cfg = file
	}

	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func setupLogger(w io.Writer, level string) *slog.Logger {
	l, _ := parseLevel(level)
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: l}))
}

// app holds everything run starts, so that shutdown can release it.
type app struct {
	logger  *slog.Logger
	mgr     *aware.Manager
	radio   radio
	sim     *halsim.HAL
	trace   *log.FileLogger
	metrics *http.Server
}

func newApp(cfg Config, logger *slog.Logger) (*app, error) {
	a := &app{logger: logger}
	instanceID := uuid.New().String()

	loggers := []log.Logger{}
	if cfg.ProtocolLog != "" {
		fl, err := log.NewFileLogger(cfg.ProtocolLog)
		if err != nil {
			return nil, fmt.Errorf("open protocol log: %w", err)
		}
		a.trace = fl
		loggers = append(loggers, fl)
	}
	if logger.Enabled(context.Background(), slog.LevelDebug) {
		loggers = append(loggers, log.NewSlogAdapter(logger))
	}

	mgrConfig := aware.DefaultConfig()
	mgrConfig.Logger = logger
	mgrConfig.InstanceID = instanceID
	if len(loggers) > 0 {
		mgrConfig.ProtocolLogger = log.NewMultiLogger(loggers...)
	}

	if cfg.MetricsAddr != "" {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector())
		m, err := metrics.NewCoordinator(reg, instanceID)
		if err != nil {
			return nil, multierr.Append(err, a.close())
		}
		mgrConfig.Metrics = m

		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
		a.metrics = &http.Server{
			Addr:              cfg.MetricsAddr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}
	}

	switch cfg.Backend {
	case BackendMDNS:
		a.radio = mdnshal.New(mdnshal.Config{
			Logger:       logger,
			Interface:    cfg.Interface,
			Capabilities: halsim.DefaultCapabilities(),
		})
	default:
		a.sim = halsim.New(halsim.Config{
			Logger:  logger,
			Latency: cfg.Latency,
		})
		a.radio = a.sim
	}

	a.mgr = aware.NewManager(a.radio, mgrConfig)
	a.radio.Attach(a.mgr)
	return a, nil
}

// addPeers puts the configured simulated publishers in range.
func (a *app) addPeers(peers []PeerConfig) error {
	if a.sim == nil {
		return nil
	}
	for i, pc := range peers {
		p := halsim.Peer{
			ServiceName:         pc.Service,
			ServiceSpecificInfo: []byte(pc.Info),
			MAC:                 hal.MAC{0x02, 0, 0, 0, byte(i >> 8), byte(i + 1)},
			Echo:                pc.Echo,
		}
		if pc.MAC != "" {
			mac, err := hal.ParseMAC(pc.MAC)
			if err != nil {
				return err
			}
			p.MAC = mac
		}
		id, err := a.sim.AddPeer(p)
		if err != nil {
			return fmt.Errorf("add peer %s: %w", pc.Service, err)
		}
		a.logger.Info("simulated peer in range", "peer", id, "service", pc.Service, "mac", p.MAC)
	}
	return nil
}

func (a *app) start(ctx context.Context) error {
	if err := a.mgr.Start(ctx); err != nil {
		return err
	}
	if a.metrics != nil {
		go func() {
			if err := a.metrics.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				a.logger.Error("metrics server failed", "error", err)
			}
		}()
		a.logger.Info("serving metrics", "addr", a.metrics.Addr)
	}
	return nil
}

// close releases everything the app holds and returns every error.
func (a *app) close() error {
	var err error
	if a.mgr != nil {
		a.mgr.Stop()
	}
	if a.radio != nil {
		a.radio.Close()
	}
	if a.metrics != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		err = multierr.Append(err, a.metrics.Shutdown(ctx))
		cancel()
	}
	if a.trace != nil {
		if dropped := a.trace.Dropped(); dropped > 0 {
			a.logger.Warn("protocol log dropped events", "count", dropped)
		}
		err = multierr.Append(err, a.trace.Close())
	}
	return err
}

func run(cfg Config) error {
	logger := setupLogger(os.Stderr, cfg.LogLevel)

	a, err := newApp(cfg, logger)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := a.start(ctx); err != nil {
		return multierr.Append(err, a.close())
	}
	logger.Info("coordinator started", "instance", a.mgr.InstanceID(), "backend", cfg.Backend)

	if err := a.addPeers(cfg.Peers); err != nil {
		return multierr.Append(err, a.close())
	}
	if cfg.Request != nil {
		err := multierr.Combine(
			a.mgr.Connect(builtinClient, nil, 0),
			a.mgr.RequestConfig(builtinClient, *cfg.Request),
		)
		if err != nil {
			return multierr.Append(err, a.close())
		}
	}

	if cfg.Interactive {
		shell := interactive.New(a.mgr, simulator(a.sim), os.Stdout)
		go func() {
			if err := shell.Run(ctx, cancel); err != nil {
				logger.Error("interactive shell failed", "error", err)
				cancel()
			}
		}()
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.Info("received signal", "signal", sig)
	case <-ctx.Done():
	case <-a.mgr.Done():
	}

	logger.Info("shutting down")
	return a.close()
}

// simulator avoids handing the shell a non-nil interface holding a nil
// pointer.
func simulator(sim *halsim.HAL) interactive.Simulator {
	if sim == nil {
		return nil
	}
	return sim
}
