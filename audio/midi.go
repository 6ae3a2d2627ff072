package audio

import (
	"context"
	"log"
	"math"

	"gitlab.com/gomidi/rtmididrv"
)

// ListenToMidiIn opens the first MIDI input and forwards its raw
// messages until ctx is done. A missing driver or device is logged,
// never fatal; the channel just stays silent.
func ListenToMidiIn(ctx context.Context) <-chan []byte {
	ch := make(chan []byte, 65536)
	go func() {
		drv, err := rtmididrv.New()
		if err != nil {
			log.Printf("failed to initialize MIDI driver: %v\n", err)
			return
		}
		defer func() {
			if err := drv.Close(); err != nil {
				log.Printf("failed to close MIDI driver: %v\n", err)
			}
		}()
		ins, err := drv.Ins()
		if err != nil {
			log.Printf("failed to get MIDI IN: %v\n", err)
			return
		}
		if len(ins) == 0 {
			log.Println("WARN: MIDI IN not found")
			return
		}
		in := ins[0]
		if err := in.Open(); err != nil {
			log.Printf("failed to open MIDI IN: %v\n", err)
			return
		}
		log.Println("opened " + in.String())
		defer func() {
			if err := in.Close(); err != nil {
				log.Printf("failed to close MIDI IN: %v\n", err)
			}
		}()
		if err := in.SetListener(func(data []byte, deltaMicroseconds int64) {
			ch <- data
		}); err != nil {
			log.Println("failed to set listener: " + err.Error())
		}
		defer func() {
			if err := in.StopListening(); err != nil {
				log.Printf("failed to stop listening: %v\n", err)
			}
		}()
		defer close(ch)
		<-ctx.Done()
	}()
	return ch
}

// StartFromMidi starts a voice for a note-on message. Anything else
// (note-off included: voices here run their envelope out) is ignored.
// The ADSR parameters match the default note presets.
func (e *Engine) StartFromMidi(data []byte) {
	if len(data) < 3 {
		return
	}
	if data[0]>>4 != 9 || data[2] == 0 {
		return
	}
	wave := Waveform{Kind: Sine, Rate: e.sampleRate, Freq: noteToFreq(int(data[1]))}
	env := NewEnvelope(wave, e.sampleRate, 0.4, 0.7, 0.3, 0.6, 0.6, 0.5)
	if err := e.EnqueueStart(env); err != nil {
		log.Printf("midi note dropped: %v\n", err)
	}
}

// noteToFreq is equal temperament around A4 = 440 Hz (MIDI note 69).
func noteToFreq(note int) float64 {
	return 440 * math.Pow(2, float64(note-69)/12)
}
