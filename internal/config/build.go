package config

import (
	"go.uber.org/zap"

	"github.com/openheat/heatmon/internal/component"
)

// Build constructs components from a validated configuration, in file
// order. Field registration order follows the file too, so iteration for
// presentation matches what the author wrote.
func Build(cfg *Config, logger *zap.Logger) []*component.Component {
	out := make([]*component.Component, 0, len(cfg.Components))

	for _, cc := range cfg.Components {
		c := component.New(cc.Name, baseAddress(cc.InputAddress), baseAddress(cc.HoldingAddress), logger)

		values := make(map[string]*component.DataValue, len(cc.Fields))
		for _, fc := range cc.Fields {
			kind := component.KindInput
			if fc.Kind == "holding" {
				kind = component.KindHolding
			}
			typ := component.Unsigned
			if fc.Type == "signed" {
				typ = component.Signed
			}

			v := component.NewDataValue(kind, fc.Address, fc.Count, typ, fc.Scale)
			values[fc.Name] = v
			c.AddValue(fc.Name, v)
		}

		for _, calc := range cc.Calculators {
			c.AddCalculator(calc.Name, values[calc.Numerator], values[calc.Denominator])
		}

		out = append(out, c)
	}

	return out
}
