package config

import (
	"fmt"
)

// Validate checks configuration correctness.
// It performs declarative validation only and MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	if cfg.Device.ID == "" {
		return fmt.Errorf("device id is required")
	}
	if cfg.Transport.Mode != "rtu" && cfg.Transport.Mode != "tcp" {
		return fmt.Errorf("transport mode must be \"rtu\" or \"tcp\", got %q", cfg.Transport.Mode)
	}
	if cfg.Poll.IntervalSec <= 0 {
		return fmt.Errorf("poll interval must be > 0")
	}
	if len(cfg.Components) == 0 {
		return fmt.Errorf("at least one component is required")
	}

	type span struct {
		start int
		end   int
		field string
	}

	seenComponents := map[string]bool{}

	for _, c := range cfg.Components {
		if c.Name == "" {
			return fmt.Errorf("component without a name")
		}
		if seenComponents[c.Name] {
			return fmt.Errorf("duplicate component %q", c.Name)
		}
		seenComponents[c.Name] = true

		if len(c.Fields) == 0 {
			return fmt.Errorf("component %q: at least one field is required", c.Name)
		}
		if v := baseAddress(c.InputAddress); v < -1 {
			return fmt.Errorf("component %q: invalid input_address %d", c.Name, v)
		}
		if v := baseAddress(c.HoldingAddress); v < -1 {
			return fmt.Errorf("component %q: invalid holding_address %d", c.Name, v)
		}

		seenFields := map[string]bool{}
		spans := map[string][]span{} // per kind

		for _, f := range c.Fields {
			if f.Name == "" {
				return fmt.Errorf("component %q: field without a name", c.Name)
			}
			if seenFields[f.Name] {
				return fmt.Errorf("component %q: duplicate field %q", c.Name, f.Name)
			}
			seenFields[f.Name] = true

			if f.Kind != "input" && f.Kind != "holding" {
				return fmt.Errorf("component %q: field %q: kind must be \"input\" or \"holding\", got %q",
					c.Name, f.Name, f.Kind)
			}
			if f.Type != "unsigned" && f.Type != "signed" {
				return fmt.Errorf("component %q: field %q: type must be \"unsigned\" or \"signed\", got %q",
					c.Name, f.Name, f.Type)
			}
			if f.Count != 1 && f.Count != 2 {
				return fmt.Errorf("component %q: field %q: count must be 1 or 2, got %d",
					c.Name, f.Name, f.Count)
			}
			if f.Address < 0 {
				return fmt.Errorf("component %q: field %q: negative address %d",
					c.Name, f.Name, f.Address)
			}

			start := f.Address
			end := f.Address + f.Count - 1
			for _, s := range spans[f.Kind] {
				// overlap check (inclusive)
				if !(end < s.start || start > s.end) {
					return fmt.Errorf("component %q: %s register overlap: field %q range %d-%d overlaps field %q range %d-%d",
						c.Name, f.Kind, f.Name, start, end, s.field, s.start, s.end)
				}
			}
			spans[f.Kind] = append(spans[f.Kind], span{start: start, end: end, field: f.Name})
		}

		for _, calc := range c.Calculators {
			if calc.Name == "" {
				return fmt.Errorf("component %q: calculator without a name", c.Name)
			}
			if !seenFields[calc.Numerator] {
				return fmt.Errorf("component %q: calculator %q: unknown numerator field %q",
					c.Name, calc.Name, calc.Numerator)
			}
			if !seenFields[calc.Denominator] {
				return fmt.Errorf("component %q: calculator %q: unknown denominator field %q",
					c.Name, calc.Name, calc.Denominator)
			}
		}
	}

	return nil
}
