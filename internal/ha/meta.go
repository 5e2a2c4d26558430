package ha

// Meta is the announce payload an adapter publishes on startup so a
// discovery service can register its sensors without knowing the register
// map.
type Meta struct {
	DeviceID string       `json:"device_id"`
	Model    string       `json:"model,omitempty"`
	Area     string       `json:"area,omitempty"`
	Sensors  []SensorMeta `json:"sensors"`
}

type SensorMeta struct {
	Component string `json:"component"`
	Field     string `json:"field"`
	Unit      string `json:"unit,omitempty"`
}

// TopicMeta is where a device announces itself.
func TopicMeta(deviceID string) string {
	return "heatmon/" + deviceID + "/meta"
}

// TopicState carries every field state of a device.
func TopicState(deviceID string) string {
	return "heatmon/" + deviceID + "/state"
}
