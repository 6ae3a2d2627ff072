package ui

// Point is one (x, y) chart sample.
type Point struct {
	X float64
	Y float64
}

// Recorder is a fixed-capacity ring of timestamped amplitudes,
// overwritten oldest-first. It belongs to the UI goroutine alone.
type Recorder struct {
	samples    []Point
	total      int
	sampleRate int
}

// NewRecorder sizes the ring to hold the given number of seconds.
func NewRecorder(sampleRate, seconds int) *Recorder {
	return &Recorder{
		samples:    make([]Point, sampleRate*seconds),
		sampleRate: sampleRate,
	}
}

// Capacity returns the ring size in samples.
func (r *Recorder) Capacity() int { return len(r.samples) }

// SampleRate returns the rate the timestamps are derived from.
func (r *Recorder) SampleRate() int { return r.sampleRate }

// Add records one amplitude, timestamped by its global sample index.
func (r *Recorder) Add(v float64) {
	r.samples[r.total%len(r.samples)] = Point{
		X: float64(r.total) / float64(r.sampleRate),
		Y: v,
	}
	r.total++
}

// Window copies out the latest n samples in time order. It returns
// nil until n samples have been observed, and for n beyond the
// capacity.
func (r *Recorder) Window(n int) []Point {
	if n <= 0 || n > len(r.samples) || r.total < n {
		return nil
	}
	out := make([]Point, n)
	first := r.total - n
	for i := range out {
		out[i] = r.samples[(first+i)%len(r.samples)]
	}
	return out
}
