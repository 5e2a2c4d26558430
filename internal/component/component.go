package component

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// Connector is the transport a component drives its register traffic
// through. ReadRegisters must return a buffer of exactly total registers
// indexed by the bank's own address space, or an error; partial reads are
// not representable.
type Connector interface {
	ReadRegisters(kind RegisterKind, slices []RegisterSlice, total int) ([]uint16, error)
	WriteRegisters(address int, regs []uint16) error
}

// NamedValue pairs a field name with its descriptor for ordered iteration,
// so presentation code never needs reflection.
type NamedValue struct {
	Name  string
	Value *DataValue
}

// NamedCalculator pairs a name with a derived value.
type NamedCalculator struct {
	Name       string
	Calculator *Calculator
}

// Component owns the descriptors of one device block and knows how to read
// and decode them with the fewest transactions the register layout allows.
type Component struct {
	name           string
	inputAddress   int // device-wide bank base, -1 when the bank is absent
	holdingAddress int

	values      []NamedValue // registration order
	calculators []NamedCalculator

	// Derived at Initialize, immutable afterwards.
	inputValues   []NamedValue // sorted by relative address
	holdingValues []NamedValue
	inputSlices   []RegisterSlice
	holdingSlices []RegisterSlice
	inputCount    int
	holdingCount  int

	conn        Connector
	log         *zap.Logger
	initialized bool
}

// New creates an uninitialized component. Pass -1 for a bank the device
// block does not expose. A nil logger disables logging.
func New(name string, inputAddress, holdingAddress int, logger *zap.Logger) *Component {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Component{
		name:           name,
		inputAddress:   inputAddress,
		holdingAddress: holdingAddress,
		log:            logger,
	}
}

// AddValue registers a descriptor under a field name. Registration order is
// preserved for iteration; addresses decide the read layout.
func (c *Component) AddValue(name string, v *DataValue) *Component {
	v.normalize()
	c.values = append(c.values, NamedValue{Name: name, Value: v})
	return c
}

// AddCalculator registers a derived value over two already-registered
// descriptors.
func (c *Component) AddCalculator(name string, numerator, denominator *DataValue) *Component {
	c.calculators = append(c.calculators, NamedCalculator{
		Name:       name,
		Calculator: NewCalculator(numerator, denominator),
	})
	return c
}

func (c *Component) Name() string { return c.name }

func (c *Component) InputValues() []NamedValue   { return c.inputValues }
func (c *Component) HoldingValues() []NamedValue { return c.holdingValues }

func (c *Component) Calculators() []NamedCalculator { return c.calculators }

func (c *Component) InputSlices() []RegisterSlice   { return c.inputSlices }
func (c *Component) HoldingSlices() []RegisterSlice { return c.holdingSlices }

func (c *Component) InputCount() int   { return c.inputCount }
func (c *Component) HoldingCount() int { return c.holdingCount }

// HasInputBank reports whether Update reads input registers: the bank must
// have a base address and at least one declared register.
func (c *Component) HasInputBank() bool {
	return c.inputAddress >= 0 && c.inputCount > 0
}

func (c *Component) HasHoldingBank() bool {
	return c.holdingAddress >= 0 && c.holdingCount > 0
}

// Initialize validates the descriptor set, assigns absolute addresses,
// computes the per-bank read geometry and binds the transport. Malformed
// descriptor sets are configuration errors and fail fast; nothing is
// mutated on failure.
func (c *Component) Initialize(conn Connector) error {
	if conn == nil {
		return errors.New("component: nil connector")
	}

	inputs := c.valuesOfKind(KindInput)
	holdings := c.valuesOfKind(KindHolding)
	if err := c.validate(inputs); err != nil {
		return err
	}
	if err := c.validate(holdings); err != nil {
		return err
	}

	c.inputValues = inputs
	c.holdingValues = holdings
	c.conn = conn

	for _, nv := range c.inputValues {
		nv.Value.absolute = c.inputAddress + nv.Value.Addr
	}
	for _, nv := range c.holdingValues {
		nv.Value.absolute = c.holdingAddress + nv.Value.Addr
		// Only holding registers can write back to the device.
		nv.Value.conn = conn
	}

	c.inputCount = spanOf(c.inputValues)
	c.holdingCount = spanOf(c.holdingValues)
	c.inputSlices = calculateSlices(unwrap(c.inputValues))
	c.holdingSlices = calculateSlices(unwrap(c.holdingValues))

	c.initialized = true
	return nil
}

// valuesOfKind filters and sorts by relative address without touching the
// registration-ordered list.
func (c *Component) valuesOfKind(kind RegisterKind) []NamedValue {
	var out []NamedValue
	for _, nv := range c.values {
		if nv.Value.Kind == kind {
			out = append(out, nv)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Value.Addr < out[j].Value.Addr
	})
	return out
}

// validate checks a sorted per-kind list: widths, addresses and pairwise
// non-overlap. Overlapping spans would silently corrupt the slice layout,
// so they are rejected here instead.
func (c *Component) validate(values []NamedValue) error {
	for i, nv := range values {
		v := nv.Value
		if v.Count != 1 && v.Count != 2 {
			return fmt.Errorf("component %s: field %s: register count %d not in {1,2}", c.name, nv.Name, v.Count)
		}
		if v.Addr < 0 {
			return fmt.Errorf("component %s: field %s: negative address %d", c.name, nv.Name, v.Addr)
		}
		if i > 0 {
			prev := values[i-1]
			if v.Addr < prev.Value.end() {
				return fmt.Errorf("component %s: fields %s and %s overlap at %s address %d",
					c.name, prev.Name, nv.Name, v.Kind, v.Addr)
			}
		}
	}
	return nil
}

func spanOf(values []NamedValue) int {
	if len(values) == 0 {
		return 0
	}
	return values[len(values)-1].Value.end()
}

func unwrap(values []NamedValue) []*DataValue {
	out := make([]*DataValue, len(values))
	for i, nv := range values {
		out[i] = nv.Value
	}
	return out
}

// Update reads and decodes every present bank. It returns true only when
// all present banks both read and decoded cleanly. A failed bank keeps its
// previous values; failures are never fatal.
func (c *Component) Update() bool {
	if !c.initialized {
		c.log.Error("update called before initialize", zap.String("component", c.name))
		return false
	}

	failed := false

	if c.HasInputBank() {
		data, err := c.conn.ReadRegisters(KindInput, c.inputSlices, c.inputCount)
		if err != nil {
			c.log.Error("input register read failed",
				zap.String("component", c.name), zap.Error(err))
			failed = true
		} else if !c.parse(data, KindInput) {
			failed = true
		}
	}

	if c.HasHoldingBank() {
		data, err := c.conn.ReadRegisters(KindHolding, c.holdingSlices, c.holdingCount)
		if err != nil {
			c.log.Error("holding register read failed",
				zap.String("component", c.name), zap.Error(err))
			failed = true
		} else if !c.parse(data, KindHolding) {
			failed = true
		}
	}

	return !failed
}

// parse decodes one bank buffer into its descriptors. A length mismatch
// aborts the whole bank before any value changes. Individual decode
// failures are logged and skipped so the remaining fields still update,
// but the bank is reported as failed.
func (c *Component) parse(data []uint16, kind RegisterKind) bool {
	values, expected := c.inputValues, c.inputCount
	if kind == KindHolding {
		values, expected = c.holdingValues, c.holdingCount
	}

	if len(data) != expected {
		c.log.Error("register data length mismatch",
			zap.String("component", c.name),
			zap.Stringer("kind", kind),
			zap.Int("got", len(data)),
			zap.Int("want", expected))
		return false
	}

	ok := true
	for _, nv := range values {
		if err := nv.Value.decode(data); err != nil {
			c.log.Error("field decode failed",
				zap.String("component", c.name),
				zap.String("field", nv.Name),
				zap.Error(err))
			ok = false
		}
	}
	return ok
}

// String renders all values grouped by bank, raw and scaled side by side.
func (c *Component) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "============\n%s\n============\n", c.name)
	if c.HasInputBank() {
		b.WriteString("---Input:\n")
		for _, nv := range c.inputValues {
			fmt.Fprintf(&b, "%s | raw:%d scaled:%g\n", nv.Name, nv.Value.RawValue(), nv.Value.ScaledValue())
		}
	}
	if c.HasHoldingBank() {
		b.WriteString("---Holding:\n")
		for _, nv := range c.holdingValues {
			fmt.Fprintf(&b, "%s | raw:%d scaled:%g\n", nv.Name, nv.Value.RawValue(), nv.Value.ScaledValue())
		}
	}
	if len(c.calculators) > 0 {
		b.WriteString("---Calculations:\n")
		for _, nc := range c.calculators {
			fmt.Fprintf(&b, "%s | value:%g\n", nc.Name, nc.Calculator.Value())
		}
	}
	return b.String()
}
