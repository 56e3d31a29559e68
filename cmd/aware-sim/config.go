package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/awaremux/awaremux-go/pkg/hal"
)

// Backend selects the radio implementation.
type Backend string

const (
	BackendSim  Backend = "sim"
	BackendMDNS Backend = "mdns"
)

// PeerConfig describes a simulated remote publisher.
type PeerConfig struct {
	Service string `yaml:"service"`
	Info    string `yaml:"info"`
	MAC     string `yaml:"mac"`
	Echo    bool   `yaml:"echo"`
}

// Config holds the simulator configuration. Flags override values loaded
// from the config file.
type Config struct {
	Backend     Backend       `yaml:"backend"`
	LogLevel    string        `yaml:"logLevel"`
	ProtocolLog string        `yaml:"protocolLog"`
	MetricsAddr string        `yaml:"metricsAddr"`
	Interface   string        `yaml:"interface"`
	Latency     time.Duration `yaml:"latency"`
	Interactive bool          `yaml:"interactive"`

	// Request is the configuration requested by the built-in client at
	// startup, if set.
	Request *hal.ConfigRequest `yaml:"request"`

	Peers []PeerConfig `yaml:"peers"`
}

// loadConfigFile reads a YAML config file over cfg.
func loadConfigFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func validateConfig(cfg *Config) error {
	switch cfg.Backend {
	case BackendSim, BackendMDNS:
		// Valid
	default:
		return fmt.Errorf("unknown backend: %s", cfg.Backend)
	}
	if _, err := parseLevel(cfg.LogLevel); err != nil {
		return err
	}
	if cfg.Latency < 0 {
		return fmt.Errorf("latency must not be negative, got %s", cfg.Latency)
	}
	if cfg.Request != nil {
		if err := cfg.Request.Validate(); err != nil {
			return err
		}
	}
	for i, p := range cfg.Peers {
		if p.Service == "" {
			return fmt.Errorf("peer %d: service is required", i)
		}
		if p.MAC != "" {
			if _, err := hal.ParseMAC(p.MAC); err != nil {
				return fmt.Errorf("peer %d: %w", i, err)
			}
		}
	}
	if len(cfg.Peers) > 0 && cfg.Backend != BackendSim {
		return fmt.Errorf("peers require the %s backend", BackendSim)
	}
	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.Backend == "" {
		cfg.Backend = BackendSim
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
}

func parseLevel(level string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return l, fmt.Errorf("invalid log level %q", level)
	}
	return l, nil
}
