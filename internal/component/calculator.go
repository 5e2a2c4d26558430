package component

// Calculator derives a performance figure from two descriptors, typically a
// coefficient of performance as heat output over electrical input. It holds
// no state of its own; the value tracks whatever the descriptors last
// decoded.
type Calculator struct {
	numerator   *DataValue
	denominator *DataValue
}

func NewCalculator(numerator, denominator *DataValue) *Calculator {
	return &Calculator{numerator: numerator, denominator: denominator}
}

// Value is the scaled ratio, or 0 while the denominator reads zero.
func (c *Calculator) Value() float64 {
	d := c.denominator.ScaledValue()
	if d == 0 {
		return 0
	}
	return c.numerator.ScaledValue() / d
}
