package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/scpikit/spd3303x-go/pkg/scpi"
)

// Config is the monitor configuration file.
type Config struct {
	// Address of the instrument (host or host:port).
	Address string `yaml:"address"`

	// Interval between polls. Default 1s.
	Interval time.Duration `yaml:"interval"`

	// LogFile receives the CBOR protocol log. Empty disables it.
	LogFile string `yaml:"log_file"`

	// Channels lists the channel numbers to poll (1 and/or 2).
	// Default: both programmable channels.
	Channels []uint8 `yaml:"channels"`

	// Verbose mirrors the protocol log to stderr.
	Verbose bool `yaml:"verbose"`
}

// LoadConfig reads and validates a YAML config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := config.validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) validate() error {
	if c.Address == "" {
		return fmt.Errorf("config: address is required")
	}
	if c.Interval <= 0 {
		c.Interval = time.Second
	}
	if len(c.Channels) == 0 {
		c.Channels = []uint8{1, 2}
	}
	for _, ch := range c.Channels {
		if !scpi.Channel(ch).Programmable() {
			return fmt.Errorf("config: channel %d is not pollable", ch)
		}
	}
	return nil
}
