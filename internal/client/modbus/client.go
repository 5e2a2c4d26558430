package modbus

import (
	"errors"
	"fmt"
	"time"

	"github.com/goburrow/modbus"

	modbusIface "github.com/openheat/heatmon/internal/interface/modbus"
)

// Config is the transport-level configuration, independent of any register
// layout.
type Config struct {
	Mode string // "rtu" or "tcp"

	// RTU
	Port     string
	Baud     int
	DataBits int
	Parity   string // "N","E","O"
	StopBits int

	// TCP
	TCPAddr string // "192.168.1.50:502"

	SlaveID   int
	TimeoutMs int
}

type client struct {
	modbusIface.API
	closeFn func() error
}

func (c *client) Close() error { return c.closeFn() }

// NewClient connects a goburrow handler for the configured mode.
func NewClient(cfg Config) (modbusIface.Client, error) {
	switch cfg.Mode {
	case "tcp":
		if cfg.TCPAddr == "" {
			return nil, errors.New("modbus: tcp mode needs an address")
		}
		th := modbus.NewTCPClientHandler(cfg.TCPAddr)
		th.Timeout = time.Duration(cfg.TimeoutMs) * time.Millisecond
		th.SlaveId = byte(cfg.SlaveID)
		if err := th.Connect(); err != nil {
			return nil, fmt.Errorf("modbus tcp connect %s: %w", cfg.TCPAddr, err)
		}
		return &client{API: modbus.NewClient(th), closeFn: th.Close}, nil

	case "rtu":
		if cfg.Port == "" {
			return nil, errors.New("modbus: rtu mode needs a port")
		}
		rh := modbus.NewRTUClientHandler(cfg.Port)
		rh.BaudRate = cfg.Baud
		rh.DataBits = cfg.DataBits
		rh.Parity = cfg.Parity
		rh.StopBits = cfg.StopBits
		rh.SlaveId = byte(cfg.SlaveID)
		rh.Timeout = time.Duration(cfg.TimeoutMs) * time.Millisecond
		if err := rh.Connect(); err != nil {
			return nil, fmt.Errorf("modbus rtu connect %s: %w", cfg.Port, err)
		}
		return &client{API: modbus.NewClient(rh), closeFn: rh.Close}, nil

	default:
		return nil, fmt.Errorf("modbus: unknown mode %q", cfg.Mode)
	}
}
