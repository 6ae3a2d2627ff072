package audio

import (
	"fmt"
	"math"
	"math/bits"
)

// Transform runs an in-place radix-2 FFT over buf, inverse when asked.
// The length must be a power of two; callers pad first (see PadTo).
// Normalization by the length is applied on the inverse only, so
// Transform(Transform(x, false), true) recovers x.
func Transform(buf []Complex, inverse bool) error {
	n := len(buf)
	if !isPowerOfTwo(n) {
		return &SizeError{Op: "fft", Len: n, Msg: "length must be a power of two"}
	}

	// The bit-reversal permutation linearizes the even/odd recursion:
	// after it, merging adjacent blocks bottom-up visits the same
	// pairs the recursive algorithm would, without allocating.
	nbits := bits.TrailingZeros(uint(n))
	for i := 0; i < n; i++ {
		r := bitReverse(i, nbits)
		if i < r {
			buf[i], buf[r] = buf[r], buf[i]
		}
	}

	for span := 2; span <= n; span <<= 1 {
		theta := 2 * math.Pi / float64(span)
		if inverse {
			theta = -theta
		}
		wlen := NewComplex(math.Cos(theta), math.Sin(theta))
		half := span / 2
		for start := 0; start < n; start += span {
			w := Real(1)
			for k := 0; k < half; k++ {
				a := buf[start+k]
				b := buf[start+k+half].Mul(w)
				buf[start+k] = a.Add(b)
				buf[start+k+half] = a.Sub(b)
				w = w.Mul(wlen)
			}
		}
	}

	if inverse {
		length := Real(float64(n))
		for i := range buf {
			buf[i] = buf[i].Div(length)
		}
	}
	return nil
}

// bitReverse mirrors the low nbits bits of k.
func bitReverse(k, nbits int) int {
	r := 0
	for i := 0; i < nbits; i++ {
		if k&(1<<i) != 0 {
			r |= 1 << (nbits - 1 - i)
		}
	}
	return r
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

func nextPowerOfTwo(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// PadTo appends zero entries to frame until it has length n. Padding
// a frame that is already n entries or longer is a SizeError. Zero
// entries interpolate transform bins; they add no information.
func PadTo(frame []Complex, n int) ([]Complex, error) {
	if len(frame) >= n {
		return nil, &SizeError{Op: "pad", Len: len(frame), Msg: fmt.Sprintf("already holds %d or more entries", n)}
	}
	return append(frame, make([]Complex, n-len(frame))...), nil
}

// PadToNextPowerOfTwo rounds the frame's length up to a power of two
// and delegates to PadTo.
func PadToNextPowerOfTwo(frame []Complex) []Complex {
	n := nextPowerOfTwo(len(frame))
	if n == len(frame) {
		return frame
	}
	padded, _ := PadTo(frame, n)
	return padded
}

// Bin is one discrete frequency sample of a spectrum.
type Bin struct {
	Frequency float64
	Amplitude float64
}

// RealFFT computes magnitude spectra of real-valued signals through a
// fixed power-of-two window. Its complex frame and output buffers are
// allocated once and reused on every run.
type RealFFT struct {
	sampleRate float64
	buf        []Complex
	out        []Bin
}

// NewRealFFT sizes the persistent buffers for the given window.
func NewRealFFT(window int, sampleRate float64) (*RealFFT, error) {
	if !isPowerOfTwo(window) {
		return nil, &SizeError{Op: "real fft", Len: window, Msg: "window must be a power of two"}
	}
	return &RealFFT{
		sampleRate: sampleRate,
		buf:        make([]Complex, window),
		out:        make([]Bin, window/2),
	}, nil
}

// Window returns the transform size.
func (f *RealFFT) Window() int { return len(f.buf) }

// Run transforms samples and returns the (frequency, amplitude) bins
// for the lower half of the spectrum. A real input's spectrum is
// conjugate-symmetric, so the upper half carries no extra
// information; each bin sums the magnitudes of the two mirrored
// entries and scales by the pre-padding input length.
//
// The returned slice aliases the RealFFT's persistent output buffer:
// it is valid only until the next call to Run. Callers that keep a
// spectrum across runs must copy it.
func (f *RealFFT) Run(samples []float64) ([]Bin, error) {
	if len(samples) == 0 {
		return nil, &SizeError{Op: "real fft", Len: 0, Msg: "no samples"}
	}
	if len(samples) >= len(f.buf) {
		return nil, &SizeError{Op: "real fft", Len: len(samples), Msg: fmt.Sprintf("window holds fewer than %d samples", len(samples)+1)}
	}

	for i, s := range samples {
		f.buf[i] = Real(s)
	}
	for i := len(samples); i < len(f.buf); i++ {
		f.buf[i] = Complex{}
	}
	if err := Transform(f.buf, false); err != nil {
		return nil, err
	}

	n := len(f.buf)
	in := float64(len(samples))
	for k := 0; k < n/2; k++ {
		f.out[k] = Bin{
			Frequency: f.sampleRate * float64(k) / float64(n),
			Amplitude: (f.buf[k].Magnitude() + f.buf[n-1-k].Magnitude()) / in,
		}
	}
	return f.out, nil
}
