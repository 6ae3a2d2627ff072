package audio

import (
	"context"

	"github.com/gordonklaus/portaudio"
)

// PortAudioPlayer drives the engine from portaudio's real-time
// callback instead of oto's pull loop. The callback fills every frame
// with one NextSample replicated across the interleaved channels.
type PortAudioPlayer struct {
	engine *Engine
	stream *portaudio.Stream
}

var _ OutputDevice = (*PortAudioPlayer)(nil)

// NewPortAudioPlayer initializes portaudio and opens the default
// output stream for the engine's format.
func NewPortAudioPlayer(e *Engine) (*PortAudioPlayer, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, &DeviceError{Backend: "portaudio", Err: err}
	}
	p := &PortAudioPlayer{engine: e}
	stream, err := portaudio.OpenDefaultStream(
		0, e.Channels(), float64(e.SampleRate()),
		portaudio.FramesPerBufferUnspecified, p.callback,
	)
	if err != nil {
		// ignore Terminate error
		portaudio.Terminate()
		return nil, &DeviceError{Backend: "portaudio", Err: err}
	}
	p.stream = stream
	return p, nil
}

func (p *PortAudioPlayer) callback(out []float32) {
	channels := p.engine.Channels()
	for i := 0; i < len(out); i += channels {
		v := float32(p.engine.NextSample())
		for ch := 0; ch < channels; ch++ {
			out[i+ch] = v
		}
	}
}

// Start plays until ctx is cancelled, then stops the stream.
func (p *PortAudioPlayer) Start(ctx context.Context) error {
	if err := p.stream.Start(); err != nil {
		return &DeviceError{Backend: "portaudio", Err: err}
	}
	<-ctx.Done()
	if err := p.stream.Stop(); err != nil {
		return &DeviceError{Backend: "portaudio", Err: err}
	}
	return nil
}

// Close releases the stream and the library.
func (p *PortAudioPlayer) Close() error {
	err := p.stream.Close()
	// ignore Terminate error
	portaudio.Terminate()
	return err
}
