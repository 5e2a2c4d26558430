package ha

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSensorConfigMarshalMergesExtra(t *testing.T) {
	cfg := &SensorConfig{
		Name:       "therminator2 supply",
		UniqueID:   "therminator2_supply",
		StateTopic: "heatmon/therminator2/state",
		UnitOfMeas: "°C",
		Extra: map[string]interface{}{
			"expire_after": 120,
		},
	}

	b, err := cfg.Marshal()
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	assert.Equal(t, "therminator2_supply", m["unique_id"])
	assert.EqualValues(t, 120, m["expire_after"])
	assert.NotContains(t, m, "device_class")
}

func TestTopics(t *testing.T) {
	assert.Equal(t, "homeassistant/sensor/dev/boiler_temp/config", TopicSensorConfig("dev", "boiler_temp"))
	assert.Equal(t, "heatmon/dev/meta", TopicMeta("dev"))
	assert.Equal(t, "heatmon/dev/state", TopicState("dev"))
}

func TestSanitize(t *testing.T) {
	assert.Equal(t, "cw100_inverter", Sanitize("CW100.Inverter"))
}

func TestStateValueTemplate(t *testing.T) {
	tpl := StateValueTemplate("heat_pump", "cop")
	assert.Contains(t, tpl, `value_json.component == "heat_pump"`)
	assert.Contains(t, tpl, `value_json.field == "cop"`)
}
