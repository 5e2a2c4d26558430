package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Load reads, normalizes and env-overrides a register map file. The result
// still needs Validate before use.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	normalize(&cfg)
	applyEnv(&cfg)
	return &cfg, nil
}

// normalize fills defaults only; it never rejects anything.
func normalize(cfg *Config) {
	if cfg.Transport.Mode == "" {
		cfg.Transport.Mode = "tcp"
	}
	if cfg.Transport.Baud == 0 {
		cfg.Transport.Baud = 9600
	}
	if cfg.Transport.DataBits == 0 {
		cfg.Transport.DataBits = 8
	}
	if cfg.Transport.Parity == "" {
		cfg.Transport.Parity = "N"
	}
	if cfg.Transport.StopBits == 0 {
		cfg.Transport.StopBits = 1
	}
	if cfg.Transport.SlaveID == 0 {
		cfg.Transport.SlaveID = 1
	}
	if cfg.Transport.TimeoutMs == 0 {
		cfg.Transport.TimeoutMs = 500
	}
	if cfg.Poll.IntervalSec == 0 {
		cfg.Poll.IntervalSec = 5
	}

	for ci := range cfg.Components {
		c := &cfg.Components[ci]
		for fi := range c.Fields {
			f := &c.Fields[fi]
			if f.Count == 0 {
				f.Count = 1
			}
			if f.Type == "" {
				f.Type = "unsigned"
			}
			if f.Scale == 0 {
				f.Scale = 1
			}
		}
	}
}

// applyEnv lets deployment tweak the transport without editing the map.
func applyEnv(cfg *Config) {
	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	atoi := func(s string, def int) int {
		if v, err := strconv.Atoi(s); err == nil {
			return v
		}
		return def
	}

	cfg.Transport.Mode = get("MODBUS_MODE", cfg.Transport.Mode)
	cfg.Transport.TCPAddr = get("MODBUS_TCP_ADDR", cfg.Transport.TCPAddr)
	cfg.Transport.Port = get("MODBUS_PORT", cfg.Transport.Port)
	cfg.Transport.Baud = atoi(os.Getenv("MODBUS_BAUD"), cfg.Transport.Baud)
	cfg.Transport.SlaveID = atoi(os.Getenv("MODBUS_SLAVE_ID"), cfg.Transport.SlaveID)
	cfg.Transport.TimeoutMs = atoi(os.Getenv("MODBUS_TIMEOUT_MS"), cfg.Transport.TimeoutMs)
	cfg.Poll.IntervalSec = atoi(os.Getenv("INTERVAL_SEC"), cfg.Poll.IntervalSec)
}

// baseAddress maps an omitted bank to the absent marker.
func baseAddress(p *int) int {
	if p == nil {
		return -1
	}
	return *p
}
