package audio

// Envelope stages. Transitions only ever move forward; stageFinished
// is terminal.
const (
	stageAttack = iota
	stageDecay
	stageSustain
	stageRelease
	stageFinished
)

/*
	  p +    x
	    |   / \
	  s +  /   x------x
	    | /            \
	    |/              \
	  0 +----+--+------+---
	    | a  |d b      |r |
*/

// Envelope shapes a waveform's amplitude over its lifetime: a linear
// ramp from silence to the peak, a linear drop to the sustain level,
// a hold, and a linear fade back to silence. Each stage scales the
// waveform between its start and end scalars; once finished, Next
// returns 0 forever.
type Envelope struct {
	wave       Waveform
	sampleRate float64

	stage       int
	timeInStage float64

	attack        float64 // seconds to the peak
	peakScalar    float64
	decay         float64 // seconds from peak to sustain level
	sustain       float64 // seconds held at the sustain level
	sustainScalar float64
	release       float64 // seconds from sustain level to silence
}

// NewEnvelope wraps wave in an envelope starting at the attack stage.
// Durations are in seconds; scalars multiply the waveform's
// amplitude.
func NewEnvelope(wave Waveform, sampleRate, attack, peakScalar, decay, sustain, sustainScalar, release float64) *Envelope {
	return &Envelope{
		wave:          wave,
		sampleRate:    sampleRate,
		attack:        attack,
		peakScalar:    peakScalar,
		decay:         decay,
		sustain:       sustain,
		sustainScalar: sustainScalar,
		release:       release,
	}
}

// Next samples the waveform at clock, advances the envelope one tick
// and returns the scaled amplitude.
func (e *Envelope) Next(clock float64) float64 {
	switch e.stage {
	case stageAttack:
		return e.step(clock, 0, e.peakScalar, e.attack, stageDecay)
	case stageDecay:
		return e.step(clock, e.peakScalar, e.sustainScalar, e.decay, stageSustain)
	case stageSustain:
		return e.step(clock, e.sustainScalar, e.sustainScalar, e.sustain, stageRelease)
	case stageRelease:
		return e.step(clock, e.sustainScalar, 0, e.release, stageFinished)
	default:
		return 0
	}
}

// step advances time-in-stage by one sample period. Crossing the
// stage duration moves to the next stage and returns the sample at
// exactly the end scalar, so stage boundaries introduce no
// discontinuity.
func (e *Envelope) step(clock, startScalar, endScalar, duration float64, next int) float64 {
	sampled := e.wave.Next(clock)
	e.timeInStage += 1 / e.sampleRate
	if e.timeInStage > duration {
		e.stage = next
		e.timeInStage = 0
		return sampled * endScalar
	}
	low := startScalar * sampled
	high := endScalar * sampled
	return low + (high-low)*(e.timeInStage/duration)
}

// Finished reports whether the envelope has run its course.
func (e *Envelope) Finished() bool {
	return e.stage == stageFinished
}
