package main

import (
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/openheat/heatmon/internal/component"
	"github.com/openheat/heatmon/internal/config"
	"github.com/openheat/heatmon/internal/ha"
	mqttIface "github.com/openheat/heatmon/internal/interface/mqtt"
)

// FieldState is one decoded field on the shared state topic. Raw stays in
// the payload next to the scaled value so consumers never have to undo the
// scaling.
type FieldState struct {
	Ts        int64   `json:"ts"`
	Component string  `json:"component"`
	Field     string  `json:"field"`
	Raw       int64   `json:"raw"`
	Value     float64 `json:"value"`
	Unit      string  `json:"unit,omitempty"`
}

// CalcState is a derived value; it has no raw register backing.
type CalcState struct {
	Ts        int64   `json:"ts"`
	Component string  `json:"component"`
	Field     string  `json:"field"`
	Value     float64 `json:"value"`
}

// PublishOnce runs one update-and-publish cycle over every component. The
// ticker loop in Handle calls it; tests call it directly. A component whose
// update fails is skipped for this cycle, keeping its last published values
// authoritative downstream.
func (h *MainHandler) PublishOnce(now int64) {
	topic := ha.TopicState(h.Cfg.Device.ID)

	for i, c := range h.Components {
		if !c.Update() {
			h.Log.Warn("component update failed", zap.String("component", c.Name()))
			continue
		}

		units := fieldUnits(h.Cfg.Components[i])
		for _, nv := range allValues(c) {
			state := FieldState{
				Ts:        now,
				Component: c.Name(),
				Field:     nv.Name,
				Raw:       nv.Value.RawValue(),
				Value:     nv.Value.ScaledValue(),
				Unit:      units[nv.Name],
			}
			if err := h.publishJSON(topic, state, false); err != nil {
				h.Log.Warn("state publish failed",
					zap.String("component", c.Name()),
					zap.String("field", nv.Name),
					zap.Error(err))
			}
		}

		for _, nc := range c.Calculators() {
			state := CalcState{
				Ts:        now,
				Component: c.Name(),
				Field:     nc.Name,
				Value:     nc.Calculator.Value(),
			}
			if err := h.publishJSON(topic, state, false); err != nil {
				h.Log.Warn("state publish failed",
					zap.String("component", c.Name()),
					zap.String("field", nc.Name),
					zap.Error(err))
			}
		}
	}
}

func (h *MainHandler) publishJSON(topic string, payload any, retain bool) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}
	return h.MQTT.Publish(mqttIface.Message{
		Topic:   topic,
		Payload: data,
		QoS:     1,
		Retain:  retain,
	})
}

// allValues walks both banks in address order, input first.
func allValues(c *component.Component) []component.NamedValue {
	out := make([]component.NamedValue, 0, len(c.InputValues())+len(c.HoldingValues()))
	out = append(out, c.InputValues()...)
	out = append(out, c.HoldingValues()...)
	return out
}

func fieldUnits(cc config.ComponentConfig) map[string]string {
	units := make(map[string]string, len(cc.Fields))
	for _, f := range cc.Fields {
		if f.Unit != "" {
			units[f.Name] = f.Unit
		}
	}
	return units
}
