package bench

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config describes one benchmark run. Durations are written as Go duration
// strings ("1.5s").
type Config struct {
	Binaries  []string      `yaml:"binaries"`
	SampleDir string        `yaml:"sample_dir"`
	Steps     int           `yaml:"steps"`
	StepSize  int64         `yaml:"step_size"`
	Threshold time.Duration `yaml:"threshold"`
	Timeout   time.Duration `yaml:"timeout"`
	Output    string        `yaml:"output"`
	Reference string        `yaml:"reference"`
}

// DefaultConfig matches the historical harness: 20 samples, 50 kB apart.
func DefaultConfig() Config {
	return Config{
		SampleDir: "./sample",
		Steps:     20,
		StepSize:  50000,
		Output:    "stat.html",
	}
}

// LoadConfig reads a YAML file on top of DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.Steps <= 0 {
		return fmt.Errorf("steps must be positive, got %d", c.Steps)
	}
	if c.StepSize < 0 {
		return fmt.Errorf("step_size must not be negative, got %d", c.StepSize)
	}
	if c.SampleDir == "" {
		return fmt.Errorf("sample_dir is empty")
	}
	if c.Threshold < 0 || c.Timeout < 0 {
		return fmt.Errorf("threshold and timeout must not be negative")
	}
	return nil
}
