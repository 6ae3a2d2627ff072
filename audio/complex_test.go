package audio

import (
	"math"
	"testing"
)

func expectEqual(t *testing.T, actual, expected interface{}) {
	t.Helper()
	if actual != expected {
		t.Errorf("expected %v, but got: %v", expected, actual)
	}
}

func expectNearlyEqual(t *testing.T, actual, expected float64) {
	t.Helper()
	if math.Abs(actual-expected) > 0.0001 {
		t.Errorf("expected %v, but got: %v", expected, actual)
	}
}

func expectNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Errorf("expected no error, but got: %v", err)
	}
}

func TestComplexAdd(t *testing.T) {
	expectEqual(t, NewComplex(7, 2).Add(NewComplex(3, 4)), NewComplex(10, 6))
}

func TestComplexSub(t *testing.T) {
	expectEqual(t, NewComplex(7, 2).Sub(NewComplex(3, 4)), NewComplex(4, -2))
}

func TestComplexMul(t *testing.T) {
	expectEqual(t, NewComplex(7, 2).Mul(NewComplex(3, 4)), NewComplex(13, 34))
}

func TestComplexDiv(t *testing.T) {
	got := NewComplex(4, 2).Div(NewComplex(0, 3))
	expectNearlyEqual(t, got.Real, 2.0/3.0)
	expectNearlyEqual(t, got.Imag, -4.0/3.0)
}

func TestComplexMagnitude(t *testing.T) {
	expectNearlyEqual(t, NewComplex(3, 4).Magnitude(), 5)
	expectNearlyEqual(t, Real(-2).Magnitude(), 2)
	expectNearlyEqual(t, Complex{}.Magnitude(), 0)
}

func TestRealLifts(t *testing.T) {
	expectEqual(t, Real(1.5), NewComplex(1.5, 0))
}
