package audio

import (
	"math/rand"
	"testing"
)

func TestSineQuarterPeriods(t *testing.T) {
	w := Waveform{Kind: Sine, Rate: 1000, Freq: 250}
	expectNearlyEqual(t, w.Next(0), 0)
	expectNearlyEqual(t, w.Next(1), 1)
	expectNearlyEqual(t, w.Next(2), 0)
	expectNearlyEqual(t, w.Next(3), -1)
	expectNearlyEqual(t, w.Next(4), 0)
}

func TestSawtoothRamp(t *testing.T) {
	w := Waveform{Kind: Sawtooth, Rate: 1000, Freq: 100}
	// ten-sample period, ramping -1 -> 1 and snapping back
	expectNearlyEqual(t, w.Next(0), -1)
	expectNearlyEqual(t, w.Next(5), 0)
	expectNearlyEqual(t, w.Next(9), 0.8)
	expectNearlyEqual(t, w.Next(10), -1)
}

func TestSquareDuty(t *testing.T) {
	w := Waveform{Kind: Square, Rate: 1000, Freq: 100, Duty: 0.5}
	for clock := 0; clock < 5; clock++ {
		expectEqual(t, w.Next(float64(clock)), 1.0)
	}
	for clock := 5; clock < 10; clock++ {
		expectEqual(t, w.Next(float64(clock)), -1.0)
	}
}

func TestSquareDutyExtremes(t *testing.T) {
	high := Waveform{Kind: Square, Rate: 1000, Freq: 100, Duty: 1}
	low := Waveform{Kind: Square, Rate: 1000, Freq: 100, Duty: 0}
	for clock := 0; clock < 100; clock++ {
		expectEqual(t, high.Next(float64(clock)), 1.0)
		expectEqual(t, low.Next(float64(clock)), -1.0)
	}
}

func TestWaveformsStayInRange(t *testing.T) {
	waves := []Waveform{
		{Kind: Sine, Rate: 44100, Freq: 440},
		{Kind: Sawtooth, Rate: 44100, Freq: 311},
		{Kind: Square, Rate: 44100, Freq: 250, Duty: 0.3},
		{Kind: Triangle, Rate: 44100, Freq: 417},
	}
	for _, w := range waves {
		for clock := 0; clock < 10000; clock++ {
			v := w.Next(float64(clock))
			if v < -1 || v > 1 {
				t.Fatalf("kind %d out of range at clock %d: %v", w.Kind, clock, v)
			}
		}
	}
}

func TestMiddleNotes(t *testing.T) {
	expectEqual(t, MiddleA(44100).Freq, 440.0)
	expectEqual(t, MiddleB(44100).Freq, 493.883)
	expectEqual(t, MiddleC(44100).Freq, 261.63)
	expectEqual(t, MiddleD(44100).Freq, 293.665)
	for _, w := range []Waveform{MiddleA(48000), MiddleB(48000), MiddleC(48000), MiddleD(48000)} {
		expectEqual(t, w.Kind, Sine)
		expectEqual(t, w.Rate, 48000.0)
	}
}

func TestRandomWaveformIsDeterministic(t *testing.T) {
	a := rand.New(rand.NewSource(7))
	b := rand.New(rand.NewSource(7))
	for i := 0; i < 50; i++ {
		expectEqual(t, RandomWaveform(a, DefaultRandomSpec, 44100), RandomWaveform(b, DefaultRandomSpec, 44100))
	}
}

func TestRandomWaveformRespectsRanges(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	spec := DefaultRandomSpec
	ranges := map[WaveKind][2]float64{
		Sine:     spec.SineFreq,
		Sawtooth: spec.SawtoothFreq,
		Square:   spec.SquareFreq,
		Triangle: spec.TriangleFreq,
	}
	for i := 0; i < 500; i++ {
		w := RandomWaveform(rng, spec, 44100)
		r := ranges[w.Kind]
		if w.Freq < r[0] || w.Freq >= r[1] {
			t.Fatalf("kind %d frequency %v outside [%v, %v)", w.Kind, w.Freq, r[0], r[1])
		}
		if w.Kind == Square && (w.Duty < spec.SquareDuty[0] || w.Duty >= spec.SquareDuty[1]) {
			t.Fatalf("square duty %v outside [%v, %v)", w.Duty, spec.SquareDuty[0], spec.SquareDuty[1])
		}
		expectEqual(t, w.Rate, 44100.0)
	}
}
