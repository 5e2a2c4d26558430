package component

import (
	"errors"
	"fmt"
	"math"
)

// RegisterKind selects the register bank a value lives in.
type RegisterKind int

const (
	KindInput RegisterKind = iota
	KindHolding
)

func (k RegisterKind) String() string {
	if k == KindInput {
		return "input"
	}
	return "holding"
}

// NumericType declares how raw register data is reinterpreted.
type NumericType int

const (
	Unsigned NumericType = iota
	Signed
)

func (t NumericType) String() string {
	if t == Signed {
		return "signed"
	}
	return "unsigned"
}

var ErrNotWritable = errors.New("component: value is not bound to a writable holding register")

// DataValue describes one register-backed field: where it lives inside its
// component's bank, how wide it is, how to reinterpret it and how to scale it.
// The raw integer is authoritative; the scaled value is derived from it.
type DataValue struct {
	Kind  RegisterKind
	Addr  int // relative address within the component's bank
	Count int // registers spanned, 1 or 2
	Type  NumericType
	Scale float64

	absolute int
	raw      int64
	scaled   float64
	conn     Connector // set at Initialize for holding values only
}

// NewDataValue builds a descriptor with width and scale defaulted to 1 when
// left zero, matching how sparse register tables are usually declared.
func NewDataValue(kind RegisterKind, addr, count int, typ NumericType, scale float64) *DataValue {
	v := &DataValue{Kind: kind, Addr: addr, Count: count, Type: typ, Scale: scale}
	v.normalize()
	return v
}

func (v *DataValue) normalize() {
	if v.Count == 0 {
		v.Count = 1
	}
	if v.Scale == 0 {
		v.Scale = 1
	}
}

// end is the first relative address after the value's span.
func (v *DataValue) end() int {
	return v.Addr + v.Count
}

// AbsoluteAddress is the device-wide address, valid after Initialize.
func (v *DataValue) AbsoluteAddress() int {
	return v.absolute
}

func (v *DataValue) RawValue() int64 {
	return v.raw
}

func (v *DataValue) ScaledValue() float64 {
	return v.scaled
}

func (v *DataValue) store(raw int64) {
	v.raw = raw
	v.scaled = float64(raw) * v.Scale
}

// decode reconstructs the value from a bank buffer indexed by relative address.
// Two-register values compose big register first: (high << 16) + low.
func (v *DataValue) decode(data []uint16) error {
	if v.Addr < 0 || v.end() > len(data) {
		return fmt.Errorf("span [%d,%d) outside bank data of length %d", v.Addr, v.end(), len(data))
	}

	var raw int64
	if v.Count == 2 {
		raw = int64(uint32(data[v.Addr])<<16 | uint32(data[v.Addr+1]))
	} else {
		raw = int64(data[v.Addr])
	}

	if v.Type == Signed {
		if v.Count == 2 {
			raw = int64(int32(uint32(raw)))
		} else {
			raw = int64(int16(uint16(raw)))
		}
	}

	v.store(raw)
	return nil
}

// encodeRegisters splits a raw integer into registers, big register first.
// Negative values rely on two's-complement truncation.
func encodeRegisters(raw int64, count int) []uint16 {
	if count == 2 {
		u := uint32(raw)
		return []uint16{uint16(u >> 16), uint16(u)}
	}
	return []uint16{uint16(raw)}
}

// SetRaw writes the raw integer to the device and, on success, stores it
// locally so the value reflects what was committed.
func (v *DataValue) SetRaw(raw int64) error {
	if v.conn == nil || v.Kind != KindHolding {
		return ErrNotWritable
	}
	if err := v.conn.WriteRegisters(v.absolute, encodeRegisters(raw, v.Count)); err != nil {
		return fmt.Errorf("write register %d: %w", v.absolute, err)
	}
	v.store(raw)
	return nil
}

// SetScaled converts a human-facing value back to its raw form and writes it.
func (v *DataValue) SetScaled(val float64) error {
	return v.SetRaw(int64(math.Round(val / v.Scale)))
}
