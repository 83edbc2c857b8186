package kern

import (
	"os"

	yaml "github.com/goccy/go-yaml"
)

const (
	defaultSliceTicks = 3
	defaultMaxTicks   = 20
)

// ScriptStep is one entry of a task script: the kernel call the task issues
// when its program counter reaches PC.
type ScriptStep struct {
	PC      uint64 `yaml:"pc"`
	Call    string `yaml:"call"` // yield | print | exit | block
	Message string `yaml:"message"`
}

// TaskSpec describes one task to spawn, with its scripted behavior.
// Ids are assigned by spawn order, so the first entry becomes task 1.
type TaskSpec struct {
	Name     string       `yaml:"name"`
	Priority int          `yaml:"priority"`
	Script   []ScriptStep `yaml:"script"`
}

// Config mirrors config.yml
type Config struct {
	SliceTicks  uint64     `yaml:"slice_ticks"`  // preemption period, 3 by default
	MaxTicks    uint64     `yaml:"max_ticks"`    // driver tick budget, 20 by default
	MetricsAddr string     `yaml:"metrics_addr"` // empty = no metrics endpoint
	Tasks       []TaskSpec `yaml:"tasks"`        // empty = demo workload
}

// If the config file is not found, we use default values
func defaultConfig() Config {
	return Config{
		SliceTicks: defaultSliceTicks,
		MaxTicks:   defaultMaxTicks,
	}
}

// Load reads YAML and overrides defaults; empty path = defaults only
func Load(path string) Config {
	cfg := defaultConfig()

	if path == "" {
		return cfg
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}

	_ = yaml.Unmarshal(data, &cfg)

	// sanity clamps
	if cfg.SliceTicks == 0 {
		cfg.SliceTicks = defaultSliceTicks
	}
	if cfg.MaxTicks == 0 {
		cfg.MaxTicks = defaultMaxTicks
	}

	return cfg
}
