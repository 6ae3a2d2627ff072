package audio

import (
	"math"
	"math/rand"
)

// WaveKind enumerates the closed set of waveform shapes.
type WaveKind int

const (
	Sine WaveKind = iota
	Sawtooth
	Square
	Triangle
)

// Waveform is a periodic signal at a fixed frequency, sampled as a
// pure function of its clock. Rate is the output sample rate; Duty is
// the high fraction of a Square cycle and ignored elsewhere.
type Waveform struct {
	Kind WaveKind
	Rate float64
	Freq float64
	Duty float64
}

// Next returns the amplitude in [-1, 1] at the given sample clock.
func (w Waveform) Next(clock float64) float64 {
	switch w.Kind {
	case Sine:
		return math.Sin(2 * math.Pi * w.Freq * clock / w.Rate)
	case Sawtooth:
		return -1 + math.Mod(clock*w.Freq/w.Rate, 1)*2
	case Square:
		if math.Mod(clock*w.Freq/w.Rate, 1) < w.Duty {
			return 1
		}
		return -1
	case Triangle:
		stage := math.Mod(clock*w.Freq/w.Rate, 4)
		if stage <= 2 {
			return -1 + math.Mod(stage*4, 2)
		}
		return 1 - math.Mod(stage*4, 2)
	}
	return 0
}

// Middle-octave note constructors.

func MiddleA(rate float64) Waveform { return Waveform{Kind: Sine, Rate: rate, Freq: 440} }
func MiddleB(rate float64) Waveform { return Waveform{Kind: Sine, Rate: rate, Freq: 493.883} }
func MiddleC(rate float64) Waveform { return Waveform{Kind: Sine, Rate: rate, Freq: 261.63} }
func MiddleD(rate float64) Waveform { return Waveform{Kind: Sine, Rate: rate, Freq: 293.665} }

// RandomSpec bounds what the random waveform factory may produce.
// Each range is [low, high).
type RandomSpec struct {
	SineFreq     [2]float64
	SawtoothFreq [2]float64
	SquareFreq   [2]float64
	SquareDuty   [2]float64
	TriangleFreq [2]float64
}

// DefaultRandomSpec matches the embedded preset config.
var DefaultRandomSpec = RandomSpec{
	SineFreq:     [2]float64{200, 801},
	SawtoothFreq: [2]float64{150, 600},
	SquareFreq:   [2]float64{250, 600},
	SquareDuty:   [2]float64{0.3, 0.8},
	TriangleFreq: [2]float64{250, 500},
}

// RandomWaveform picks one of the four kinds with a frequency (and
// duty, for Square) drawn uniformly from the spec's ranges.
func RandomWaveform(rng *rand.Rand, spec RandomSpec, rate float64) Waveform {
	uniform := func(r [2]float64) float64 {
		return r[0] + rng.Float64()*(r[1]-r[0])
	}
	switch rng.Intn(4) {
	case 0:
		return Waveform{Kind: Sine, Rate: rate, Freq: uniform(spec.SineFreq)}
	case 1:
		return Waveform{Kind: Sawtooth, Rate: rate, Freq: uniform(spec.SawtoothFreq)}
	case 2:
		return Waveform{Kind: Square, Rate: rate, Freq: uniform(spec.SquareFreq), Duty: uniform(spec.SquareDuty)}
	default:
		return Waveform{Kind: Triangle, Rate: rate, Freq: uniform(spec.TriangleFreq)}
	}
}
