package modbus

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/openheat/heatmon/internal/component"
	modbusIface "github.com/openheat/heatmon/internal/interface/modbus"
)

var errNothingToRead = errors.New("modbus: empty slice list")

// Connector adapts the raw register transport to the slice-oriented reads
// components need. One goburrow call is issued per slice; the results are
// assembled into a single buffer spanning the bank's declared range, with
// positions no slice covers left zero.
type Connector struct {
	api modbusIface.API
	log *zap.Logger
}

func NewConnector(api modbusIface.API, logger *zap.Logger) *Connector {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Connector{api: api, log: logger}
}

func (c *Connector) ReadRegisters(kind component.RegisterKind, slices []component.RegisterSlice, total int) ([]uint16, error) {
	if total <= 0 || len(slices) == 0 {
		return nil, errNothingToRead
	}

	data := make([]uint16, total)
	for _, s := range slices {
		var res []byte
		var err error
		if kind == component.KindInput {
			res, err = c.api.ReadInputRegisters(uint16(s.AbsoluteAddress), uint16(s.Count))
		} else {
			res, err = c.api.ReadHoldingRegisters(uint16(s.AbsoluteAddress), uint16(s.Count))
		}
		if err != nil {
			c.log.Error("slice read failed",
				zap.Stringer("kind", kind),
				zap.Int("address", s.AbsoluteAddress),
				zap.Int("count", s.Count),
				zap.Error(err))
			return nil, fmt.Errorf("read %s registers at %d: %w", kind, s.AbsoluteAddress, err)
		}

		regs, err := unpackRegisters(res)
		if err != nil {
			return nil, fmt.Errorf("read %s registers at %d: %w", kind, s.AbsoluteAddress, err)
		}
		if len(regs) != s.Count {
			return nil, fmt.Errorf("read %s registers at %d: got %d registers, want %d",
				kind, s.AbsoluteAddress, len(regs), s.Count)
		}

		copy(data[s.RelativeStart:], regs)
	}
	return data, nil
}

func (c *Connector) WriteRegisters(address int, regs []uint16) error {
	if len(regs) == 0 {
		return errors.New("modbus: nothing to write")
	}
	if len(regs) == 1 {
		_, err := c.api.WriteSingleRegister(uint16(address), regs[0])
		return err
	}
	_, err := c.api.WriteMultipleRegisters(uint16(address), uint16(len(regs)), packRegisters(regs))
	return err
}

func unpackRegisters(data []byte) ([]uint16, error) {
	if len(data)%2 != 0 {
		return nil, fmt.Errorf("odd register payload length %d", len(data))
	}
	out := make([]uint16, len(data)/2)
	for i := range out {
		out[i] = uint16(data[2*i])<<8 | uint16(data[2*i+1])
	}
	return out, nil
}

func packRegisters(regs []uint16) []byte {
	out := make([]byte, 2*len(regs))
	for i, r := range regs {
		out[2*i] = byte(r >> 8)
		out[2*i+1] = byte(r)
	}
	return out
}
