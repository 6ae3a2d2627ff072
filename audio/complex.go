package audio

import "math"

// Complex is an immutable (real, imaginary) pair. The value semantics
// let the transform copy elements freely with no aliasing to think
// about.
type Complex struct {
	Real float64
	Imag float64
}

// Real lifts a real number into the complex plane.
func Real(r float64) Complex {
	return Complex{Real: r}
}

// NewComplex builds a complex number from its two components.
func NewComplex(r, i float64) Complex {
	return Complex{Real: r, Imag: i}
}

// Add returns c + o.
func (c Complex) Add(o Complex) Complex {
	return Complex{Real: c.Real + o.Real, Imag: c.Imag + o.Imag}
}

// Sub returns c - o.
func (c Complex) Sub(o Complex) Complex {
	return Complex{Real: c.Real - o.Real, Imag: c.Imag - o.Imag}
}

// Mul returns c * o: (ac - bd, ad + bc).
func (c Complex) Mul(o Complex) Complex {
	return Complex{
		Real: c.Real*o.Real - c.Imag*o.Imag,
		Imag: c.Imag*o.Real + c.Real*o.Imag,
	}
}

// Div returns c / o. The divisor must be nonzero; the transform only
// ever divides by its nonzero length.
func (c Complex) Div(o Complex) Complex {
	d := o.Real*o.Real + o.Imag*o.Imag
	return Complex{
		Real: (c.Real*o.Real + c.Imag*o.Imag) / d,
		Imag: (c.Imag*o.Real - c.Real*o.Imag) / d,
	}
}

// Magnitude returns the Euclidean norm of c.
func (c Complex) Magnitude() float64 {
	return math.Sqrt(c.Real*c.Real + c.Imag*c.Imag)
}
