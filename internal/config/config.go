package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultLogo    = "dvd"
	DefaultSpeed   = 14.0 // cells per second
	DefaultHeading = 37.0 // degrees; avoids axis-locked paths
	DefaultFPS     = 30
	DefaultTheme   = "classic"
	DefaultGlow    = 0.8 // seconds
	DefaultTrail   = 12
)

type Config struct {
	Logo    string  `yaml:"logo"`
	Speed   float64 `yaml:"speed"`
	Heading float64 `yaml:"heading"` // degrees, < 0 picks a random heading
	FPS     int     `yaml:"fps"`
	Theme   string  `yaml:"theme"`
	Trail   int     `yaml:"trail"`
	Overlay bool    `yaml:"overlay"`
	Seed    int64   `yaml:"seed"`
	Glow    Glow    `yaml:"glow"`
}

type Glow struct {
	Enabled  bool    `yaml:"enabled"`
	Duration float64 `yaml:"duration"`
}

func DefaultConfig() *Config {
	return &Config{
		Logo:    DefaultLogo,
		Speed:   DefaultSpeed,
		Heading: DefaultHeading,
		FPS:     DefaultFPS,
		Theme:   DefaultTheme,
		Trail:   DefaultTrail,
		Glow: Glow{
			Enabled:  true,
			Duration: DefaultGlow,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Speed < 0 {
		return fmt.Errorf("speed must be non-negative, got %f", c.Speed)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", c.FPS)
	}
	if c.Trail < 0 {
		return fmt.Errorf("trail must be non-negative, got %d", c.Trail)
	}
	if c.Glow.Duration < 0 {
		return fmt.Errorf("glow duration must be non-negative, got %f", c.Glow.Duration)
	}
	return nil
}
