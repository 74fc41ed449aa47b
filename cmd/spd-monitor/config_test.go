package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "monitor.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
address: 192.168.1.50
interval: 2s
log_file: session.cborlog
channels: [1]
verbose: true
`)

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if config.Address != "192.168.1.50" {
		t.Errorf("Address = %q", config.Address)
	}
	if config.Interval != 2*time.Second {
		t.Errorf("Interval = %v, want 2s", config.Interval)
	}
	if len(config.Channels) != 1 || config.Channels[0] != 1 {
		t.Errorf("Channels = %v, want [1]", config.Channels)
	}
	if !config.Verbose {
		t.Error("Verbose = false")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfig(t, "address: spd.local\n")

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if config.Interval != time.Second {
		t.Errorf("Interval = %v, want default 1s", config.Interval)
	}
	if len(config.Channels) != 2 {
		t.Errorf("Channels = %v, want both programmable channels", config.Channels)
	}
}

func TestLoadConfigRejectsBadChannel(t *testing.T) {
	path := writeConfig(t, "address: spd.local\nchannels: [3]\n")

	if _, err := LoadConfig(path); err == nil {
		t.Error("LoadConfig accepted the fixed-output channel")
	}
}

func TestLoadConfigMissingAddress(t *testing.T) {
	path := writeConfig(t, "interval: 1s\n")

	if _, err := LoadConfig(path); err == nil {
		t.Error("LoadConfig accepted a config without an address")
	}
}
