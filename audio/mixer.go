package audio

import "math"

// Voice is one sounding note: an envelope plus its private sample
// clock. Voices belong exclusively to the mixer.
type Voice struct {
	env     *Envelope
	samples float64
}

// Mixer owns the set of sounding voices, a multiset of simultaneous
// notes, and flattens them into a single stream.
type Mixer struct {
	voices []*Voice
}

func NewMixer() *Mixer {
	return &Mixer{}
}

// AddVoice starts env as a new voice with a zero sample clock.
func (m *Mixer) AddVoice(env *Envelope) {
	m.voices = append(m.voices, &Voice{env: env})
}

// Active returns the number of sounding voices.
func (m *Mixer) Active() int {
	return len(m.voices)
}

// Next advances every voice by one tick, evicts the ones whose
// envelopes finished this tick, and returns the sum clamped to
// [-1, 1]. Every voice is sampled exactly once per tick, including
// the tick on which it finishes.
func (m *Mixer) Next() float64 {
	sum := 0.0
	kept := m.voices[:0]
	for _, v := range m.voices {
		sum += v.env.Next(v.samples)
		v.samples++
		if !v.env.Finished() {
			kept = append(kept, v)
		}
	}
	for i := len(kept); i < len(m.voices); i++ {
		m.voices[i] = nil
	}
	m.voices = kept
	return math.Max(math.Min(sum, 1), -1)
}
