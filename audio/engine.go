package audio

import (
	"io"
	"math"
	"math/rand"
	"sync"
)

const (
	bitDepthInBytes = 2
	samplesPerCycle = 1024
)

// Options carries the engine's fixed parameters.
type Options struct {
	SampleRate int
	Channels   int
	Seed       int64
	SelfPlay   bool
	Random     RandomSpec
	// TapSize bounds the sample feed towards the visualizer;
	// defaults to four seconds of audio.
	TapSize int
}

// Engine produces the audio stream. It is driven entirely by the
// output device: every pulled sample advances the mixer one tick.
//
// The engine's mixer, RNG and scheduling state are touched only by
// the device thread calling NextSample; everything else talks to it
// through the command channel, the tap channel and the one-shot
// finished signal. Nothing in NextSample blocks.
type Engine struct {
	sampleRate float64
	channels   int

	mixer    *Mixer
	commands chan *Envelope
	tap      chan float64

	finished   chan struct{}
	finishOnce sync.Once

	rng      *rand.Rand
	selfPlay bool
	random   RandomSpec
	minSpawn float64 // seconds
	maxSpawn float64 // seconds
	spawnIn  float64 // samples until the next self-played voice
}

// NewEngine seeds the voice generator and draws the self-play spawn
// interval bounds, so a given seed always plays the same piece.
func NewEngine(opts Options) *Engine {
	if opts.TapSize == 0 {
		opts.TapSize = opts.SampleRate * 4
	}
	rng := rand.New(rand.NewSource(opts.Seed))
	e := &Engine{
		sampleRate: float64(opts.SampleRate),
		channels:   opts.Channels,
		mixer:      NewMixer(),
		commands:   make(chan *Envelope, 256),
		tap:        make(chan float64, opts.TapSize),
		finished:   make(chan struct{}),
		rng:        rng,
		selfPlay:   opts.SelfPlay,
		random:     opts.Random,
	}
	e.minSpawn = rng.Float64() * 2
	e.maxSpawn = e.minSpawn + rng.Float64()*2
	return e
}

// SampleRate returns the output sample rate in Hz.
func (e *Engine) SampleRate() int { return int(e.sampleRate) }

// Channels returns the output channel count.
func (e *Engine) Channels() int { return e.channels }

// Tap is the stream of produced samples for the visualizer. Sends are
// best-effort: when the visualizer lags, samples are dropped rather
// than ever making the device wait.
func (e *Engine) Tap() <-chan float64 { return e.tap }

// EnqueueStart hands a voice to the device thread. It never blocks; a
// full command queue is a ChannelError and the voice is dropped.
func (e *Engine) EnqueueStart(env *Envelope) error {
	select {
	case e.commands <- env:
		return nil
	default:
		return &ChannelError{Ch: "commands", Reason: "start queue full"}
	}
}

// Finish tells the engine to emit silence from now on. The stream
// stays open, so there is no teardown click; stopping the device is
// the caller's business. Safe to call more than once and from any
// goroutine.
func (e *Engine) Finish() {
	e.finishOnce.Do(func() { close(e.finished) })
}

// NextSample produces one output sample: it drains at most one
// pending start command, runs the self-play scheduler, advances the
// mixer one tick and forwards the result over the tap.
func (e *Engine) NextSample() float64 {
	select {
	case <-e.finished:
		return 0
	default:
	}

	select {
	case env := <-e.commands:
		e.mixer.AddVoice(env)
	default:
	}

	if e.selfPlay {
		e.spawnIn--
		if e.spawnIn < 0 {
			e.spawnRandomVoice()
		}
	}

	v := e.mixer.Next()
	select {
	case e.tap <- v:
	default:
	}
	return v
}

// spawnRandomVoice starts a random voice and re-arms the countdown to
// a uniform draw from the spawn interval.
func (e *Engine) spawnRandomVoice() {
	e.spawnIn = e.uniform(e.minSpawn, e.maxSpawn) * e.sampleRate

	sustainScalar := e.uniform(0.3, 0.7)
	peakScalar := sustainScalar + e.uniform(0, 0.3)
	e.mixer.AddVoice(NewEnvelope(
		RandomWaveform(e.rng, e.random, e.sampleRate),
		e.sampleRate,
		e.rng.Float64(),   // attack
		peakScalar,
		e.rng.Float64(),   // decay
		e.rng.Float64()*5, // sustain
		sustainScalar,
		e.rng.Float64()*3, // release
	))
}

func (e *Engine) uniform(low, high float64) float64 {
	return low + e.rng.Float64()*(high-low)
}

var _ io.Reader = (*Engine)(nil)

// Read fills buf with interleaved little-endian 16-bit PCM, one
// NextSample per frame replicated across every channel. This is the
// pull surface the oto backend copies from.
func (e *Engine) Read(buf []byte) (int, error) {
	bytesPerFrame := bitDepthInBytes * e.channels
	frames := len(buf) / bytesPerFrame
	for i := 0; i < frames; i++ {
		v, err := pcm16(e.NextSample())
		if err != nil {
			// Audio continuity beats one bad sample.
			v = 0
		}
		for ch := 0; ch < e.channels; ch++ {
			off := i*bytesPerFrame + 2*ch
			buf[off] = byte(v)
			buf[off+1] = byte(v >> 8)
		}
	}
	return frames * bytesPerFrame, nil
}

// pcm16 narrows a [-1, 1] sample to a 16-bit PCM value.
func pcm16(v float64) (int16, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &ConversionError{Value: v, To: "int16"}
	}
	if v > 1 {
		v = 1
	}
	if v < -1 {
		v = -1
	}
	return int16(v * math.MaxInt16), nil
}
