package decimals

import "fmt"

// Rounding selects how a Context trims results to its scale.
type Rounding int

const (
	// HalfEven rounds to nearest, breaking ties toward the even digit.
	HalfEven Rounding = iota
	// Down rounds toward zero.
	Down
	// Ceiling rounds toward positive infinity.
	Ceiling
	// Floor rounds toward negative infinity.
	Floor
)

func (r Rounding) String() string {
	switch r {
	case HalfEven:
		return "half-even"
	case Down:
		return "down"
	case Ceiling:
		return "ceiling"
	case Floor:
		return "floor"
	default:
		return fmt.Sprintf("rounding(%d)", int(r))
	}
}

// Context carries the result scale and rounding mode for a batch of
// decimal operations. A non-negative Scale rounds every result to that
// many fractional digits, so the zero value rounds to whole numbers.
// Use Exact, or any negative Scale, to disable rounding; exact contexts
// are fine for addition, subtraction and multiplication, but set a
// scale before dividing.
type Context struct {
	Scale int
	Mode  Rounding
}

// Exact is the context that never rounds results.
var Exact = Context{Scale: -1}

// Add returns a+b, rounded to the context.
func (c Context) Add(a, b Decimal) (Decimal, error) {
	sum, err := a.Add(b)
	if err != nil {
		return Decimal{}, fmt.Errorf("add: %w", err)
	}
	return c.apply(sum), nil
}

// Sub returns a-b, rounded to the context.
func (c Context) Sub(a, b Decimal) (Decimal, error) {
	diff, err := a.Sub(b)
	if err != nil {
		return Decimal{}, fmt.Errorf("sub: %w", err)
	}
	return c.apply(diff), nil
}

// Mul returns a*b, rounded to the context.
func (c Context) Mul(a, b Decimal) (Decimal, error) {
	prod, err := a.Mul(b)
	if err != nil {
		return Decimal{}, fmt.Errorf("mul: %w", err)
	}
	return c.apply(prod), nil
}

// Div returns a/b, rounded to the context. Division by zero surfaces the
// library's error unchanged apart from wrapping.
func (c Context) Div(a, b Decimal) (Decimal, error) {
	quot, err := a.Quo(b)
	if err != nil {
		return Decimal{}, fmt.Errorf("div: %w", err)
	}
	return c.apply(quot), nil
}

// apply trims d to the context's scale using its rounding mode. Only
// final results pass through here; intermediates stay exact.
func (c Context) apply(d Decimal) Decimal {
	if c.Scale < 0 {
		return d
	}
	switch c.Mode {
	case Down:
		return d.Trunc(c.Scale)
	case Ceiling:
		return d.Ceil(c.Scale)
	case Floor:
		return d.Floor(c.Scale)
	default:
		return d.Round(c.Scale)
	}
}
