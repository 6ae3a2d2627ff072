package audio

import (
	"context"
	"io"
	"log"

	"github.com/hajimehoshi/oto"
)

// OutputDevice is what the top level needs from a playback backend.
type OutputDevice interface {
	Start(ctx context.Context) error
	Close() error
}

// Player pumps the engine into the default output device through oto.
type Player struct {
	engine  *Engine
	ctx     *oto.Context
	bufSize int
}

var _ OutputDevice = (*Player)(nil)

// NewPlayer opens the default output device for the engine's format.
func NewPlayer(e *Engine) (*Player, error) {
	bufSize := samplesPerCycle * bitDepthInBytes * e.Channels()
	otoContext, err := oto.NewContext(e.SampleRate(), e.Channels(), bitDepthInBytes, bufSize)
	if err != nil {
		return nil, &DeviceError{Backend: "oto", Err: err}
	}
	return &Player{engine: e, ctx: otoContext, bufSize: bufSize}, nil
}

// Start streams samples until ctx is cancelled.
func (p *Player) Start(ctx context.Context) error {
	player := p.ctx.NewPlayer()
	defer func() {
		if err := player.Close(); err != nil {
			log.Printf("error while closing player: %v", err)
		}
	}()
	r := &deviceReader{ctx: ctx, engine: p.engine}
	if _, err := io.CopyBuffer(player, r, make([]byte, p.bufSize)); err != nil {
		return &DeviceError{Backend: "oto", Err: err}
	}
	return nil
}

// Close releases the device.
func (p *Player) Close() error {
	return p.ctx.Close()
}

// deviceReader ends the copy loop with EOF once the context is done,
// which is the only way to stop oto's pull politely.
type deviceReader struct {
	ctx    context.Context
	engine *Engine
}

func (r *deviceReader) Read(buf []byte) (int, error) {
	select {
	case <-r.ctx.Done():
		return 0, io.EOF
	default:
		return r.engine.Read(buf)
	}
}
