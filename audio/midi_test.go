package audio

import "testing"

func TestNoteToFreq(t *testing.T) {
	expectNearlyEqual(t, noteToFreq(69), 440)
	expectNearlyEqual(t, noteToFreq(81), 880)
	expectNearlyEqual(t, noteToFreq(57), 220)
	expectNearlyEqual(t, noteToFreq(60), 261.6256)
}

func TestStartFromMidi(t *testing.T) {
	e := testEngine(Options{})

	e.StartFromMidi([]byte{0x90, 69, 100}) // note on
	e.NextSample()
	expectEqual(t, e.mixer.Active(), 1)

	e.StartFromMidi([]byte{0x80, 69, 100}) // note off: ignored
	e.StartFromMidi([]byte{0x90, 69, 0})   // velocity zero: ignored
	e.StartFromMidi([]byte{0x90})          // truncated: ignored
	e.NextSample()
	e.NextSample()
	expectEqual(t, e.mixer.Active(), 1)
}
