package config

type Config struct {
	Device     DeviceConfig      `yaml:"device"`
	Transport  TransportConfig   `yaml:"transport"`
	Poll       PollConfig        `yaml:"poll"`
	Components []ComponentConfig `yaml:"components"`
}

// ---- DEVICE ----

type DeviceConfig struct {
	ID    string `yaml:"id"`
	Model string `yaml:"model"`
	Area  string `yaml:"area"`
}

// ---- TRANSPORT ----

type TransportConfig struct {
	Mode string `yaml:"mode"` // "rtu" or "tcp"

	// RTU
	Port     string `yaml:"port"`
	Baud     int    `yaml:"baud"`
	DataBits int    `yaml:"data_bits"`
	Parity   string `yaml:"parity"`
	StopBits int    `yaml:"stop_bits"`

	// TCP
	TCPAddr string `yaml:"tcp_addr"`

	SlaveID   int `yaml:"slave_id"`
	TimeoutMs int `yaml:"timeout_ms"`
}

// ---- POLL ----

type PollConfig struct {
	IntervalSec int `yaml:"interval_sec"`
}

// ---- REGISTER MAP ----

type ComponentConfig struct {
	Name string `yaml:"name"`

	// Bank base addresses; omitted means the bank is absent.
	InputAddress   *int `yaml:"input_address"`
	HoldingAddress *int `yaml:"holding_address"`

	Fields      []FieldConfig      `yaml:"fields"`
	Calculators []CalculatorConfig `yaml:"calculators"`
}

type FieldConfig struct {
	Name    string  `yaml:"name"`
	Kind    string  `yaml:"kind"` // "input" or "holding"
	Address int     `yaml:"address"`
	Count   int     `yaml:"count"` // defaults to 1
	Type    string  `yaml:"type"`  // "unsigned" or "signed", defaults to unsigned
	Scale   float64 `yaml:"scale"` // defaults to 1
	Unit    string  `yaml:"unit"`
}

type CalculatorConfig struct {
	Name        string `yaml:"name"`
	Numerator   string `yaml:"numerator"`
	Denominator string `yaml:"denominator"`
}
