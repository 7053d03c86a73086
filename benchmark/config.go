package benchmark

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// SuiteConfig mirrors the YAML suite file accepted by `run --config`. Every
// field is optional; set fields override the command-line defaults.
type SuiteConfig struct {
	Frameworks  []string `yaml:"frameworks"`
	Addr        string   `yaml:"addr"`
	DurationSec int      `yaml:"duration_seconds"`
	Connections int      `yaml:"connections"`
	Threads     int      `yaml:"threads"`
	LoadGen     string   `yaml:"loadgen"`
	WrkPath     string   `yaml:"wrk_path"`
	WarmupSec   int      `yaml:"warmup_seconds"`
	CooldownSec int      `yaml:"cooldown_seconds"`
}

// LoadSuiteConfig reads and validates a YAML suite file.
func LoadSuiteConfig(path string) (*SuiteConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read suite config '%s': %w", path, err)
	}

	var sc SuiteConfig
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("failed to parse suite config from YAML: %w", err)
	}

	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("suite config validation failed: %w", err)
	}
	return &sc, nil
}

// Validate performs basic configuration validation.
func (sc *SuiteConfig) Validate() error {
	for _, name := range sc.Frameworks {
		if _, ok := Lookup(name); !ok {
			return fmt.Errorf("unknown framework %q", name)
		}
	}
	if sc.DurationSec < 0 {
		return fmt.Errorf("duration_seconds cannot be negative")
	}
	if sc.Connections < 0 {
		return fmt.Errorf("connections cannot be negative")
	}
	if sc.Threads < 0 {
		return fmt.Errorf("threads cannot be negative")
	}
	switch sc.LoadGen {
	case "", "wrk", "builtin":
	default:
		return fmt.Errorf("loadgen must be 'wrk' or 'builtin', got %q", sc.LoadGen)
	}
	return nil
}

// Apply overlays the set fields of the suite file onto cfg.
func (sc *SuiteConfig) Apply(cfg *Config) {
	if len(sc.Frameworks) > 0 {
		cfg.Frameworks = sc.Frameworks
	}
	if sc.Addr != "" {
		cfg.Addr = sc.Addr
	}
	if sc.DurationSec > 0 {
		cfg.Duration = time.Duration(sc.DurationSec) * time.Second
	}
	if sc.Connections > 0 {
		cfg.Connections = sc.Connections
	}
	if sc.Threads > 0 {
		cfg.Threads = sc.Threads
	}
	if sc.LoadGen != "" {
		cfg.LoadGen = sc.LoadGen
	}
	if sc.WrkPath != "" {
		cfg.WrkPath = sc.WrkPath
	}
	if sc.WarmupSec > 0 {
		cfg.Warmup = time.Duration(sc.WarmupSec) * time.Second
	}
	if sc.CooldownSec > 0 {
		cfg.Cooldown = time.Duration(sc.CooldownSec) * time.Second
	}
}
