// Package config loads the console-test configuration file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/BeatGlow/console"
	"github.com/BeatGlow/console/vga"
)

// Backends.
const (
	BackendMemory = "memory"
	BackendVGA    = "vga"
	BackendVCSA   = "vcsa"
)

// Config describes the console backend.
type Config struct {
	// Backend is one of memory, vga or vcsa.
	Backend string `yaml:"backend"`

	// PhysAddr is the text buffer address for the vga backend.
	PhysAddr uint64 `yaml:"phys_addr"`

	// Port is the I/O port device for the vga backend cursor.
	Port string `yaml:"port"`

	// VCSA is the vcsa device, empty selects the active virtual terminal.
	VCSA string `yaml:"vcsa"`

	// Color is the text color name.
	Color string `yaml:"color"`

	// PNG is a file to write a snapshot to.
	PNG string `yaml:"png"`

	// FontSize of the snapshot in points.
	FontSize float64 `yaml:"font_size"`
}

// Default configuration values.
var Default = Config{
	Backend:  BackendMemory,
	PhysAddr: console.PhysAddr,
	Port:     console.DefaultCRTCConfig.Device,
	Color:    "white",
	FontSize: 14,
}

// Load reads a configuration file on top of the defaults.
func Load(name string) (*Config, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes YAML on top of the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	c := new(Config)
	*c = Default
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks the backend and the color name.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendMemory, BackendVGA, BackendVCSA:
	default:
		return fmt.Errorf("config: unsupported backend %q", c.Backend)
	}
	if _, err := vga.ParseColor(c.Color); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
