package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"synthscope/audio"
)

const (
	tickEvery  = 16 * time.Millisecond
	windowStep = 50
	fftWindow  = 65536

	// at most this many seconds of audio leave the tap per tick
	drainSeconds = 4
)

type tickMsg time.Time

// Model is the consumer side of the pipeline: it drains the engine's
// sample tap into the recorder, keeps the spectrum of the trailing
// window fresh, and renders both charts. It runs on bubbletea's
// goroutine, never on the audio thread.
type Model struct {
	engine   *audio.Engine
	presets  *audio.Presets
	recorder *Recorder
	rfft     *audio.RealFFT

	window int
	width  int
	height int

	frame    []float64   // scratch for the FFT input
	spectrum []audio.Bin // copy of the last good spectrum
	status   string
}

// NewModel builds the visualizer for the given engine.
func NewModel(engine *audio.Engine, presets *audio.Presets, recordSeconds, window int) (*Model, error) {
	rfft, err := audio.NewRealFFT(fftWindow, float64(engine.SampleRate()))
	if err != nil {
		return nil, err
	}
	return &Model{
		engine:   engine,
		presets:  presets,
		recorder: NewRecorder(engine.SampleRate(), recordSeconds),
		rfft:     rfft,
		window:   window,
	}, nil
}

func tick() tea.Cmd {
	return tea.Tick(tickEvery, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *Model) Init() tea.Cmd { return tick() }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tickMsg:
		m.drain()
		m.refreshSpectrum()
		return m, tick()
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		// silence first, then leave; the device keeps the stream open
		m.engine.Finish()
		return m, tea.Quit
	case "+":
		m.window += windowStep
		if m.window > m.recorder.Capacity() {
			m.window = m.recorder.Capacity()
		}
	case "-":
		if m.window > windowStep {
			m.window -= windowStep
		}
	case "a", "b", "c", "d":
		env, err := m.presets.MakeEnvelope(msg.String(), float64(m.engine.SampleRate()))
		if err != nil {
			m.status = err.Error()
			break
		}
		if err := m.engine.EnqueueStart(env); err != nil {
			m.status = err.Error()
		}
	}
	return m, nil
}

// drain moves a bounded burst of samples from the tap into the ring.
func (m *Model) drain() {
	limit := m.recorder.SampleRate() * drainSeconds
	for i := 0; i < limit; i++ {
		select {
		case v := <-m.engine.Tap():
			m.recorder.Add(v)
		default:
			return
		}
	}
}

// refreshSpectrum runs the trailing window through the FFT. Any
// failure (not enough samples yet, window outgrew the transform)
// skips the frame and keeps the previous spectrum on screen.
func (m *Model) refreshSpectrum() {
	frame := m.recorder.Window(m.window)
	if frame == nil {
		return
	}
	if cap(m.frame) < len(frame) {
		m.frame = make([]float64, len(frame))
	}
	m.frame = m.frame[:len(frame)]
	for i, p := range frame {
		m.frame[i] = p.Y
	}
	bins, err := m.rfft.Run(m.frame)
	if err != nil {
		return
	}
	// the bins alias the transform's reusable buffer; keep a copy
	m.spectrum = append(m.spectrum[:0], bins...)
}

// CurrentWaveformWindow returns the latest window of (time,
// amplitude) points, or nil until enough samples were observed.
func (m *Model) CurrentWaveformWindow() []Point {
	return m.recorder.Window(m.window)
}

// CurrentSpectrum returns the most recent (frequency, amplitude)
// view, nil before the first complete window.
func (m *Model) CurrentSpectrum() []audio.Bin {
	return m.spectrum
}

func (m *Model) View() string {
	var b strings.Builder
	fmt.Fprintf(&b, "synthscope | %d samples visualized", m.window)
	if m.status != "" {
		fmt.Fprintf(&b, " | %s", m.status)
	}
	b.WriteString("\n[a/b/c/d] play note   [+/-] sample window   [q] quit\n")

	width := m.width
	if width <= 0 {
		width = 80
	}
	chartHeight := (m.height - 8) / 2
	if chartHeight < 4 {
		chartHeight = 8
	}

	waveform := m.CurrentWaveformWindow()
	if waveform == nil {
		b.WriteString("\ngathering samples...\n")
		return b.String()
	}

	fmt.Fprintf(&b, "\nwaveform  %.2fs .. %.2fs\n", waveform[0].X, waveform[len(waveform)-1].X)
	b.WriteString(LineChart(waveform, width, chartHeight))
	b.WriteString("\n")

	if spectrum := m.CurrentSpectrum(); spectrum != nil {
		levels := make([]float64, len(spectrum))
		peak := 0.0
		for i, bin := range spectrum {
			levels[i] = bin.Amplitude
			if bin.Amplitude > peak {
				peak = bin.Amplitude
			}
		}
		if peak > 0 {
			for i := range levels {
				levels[i] /= peak
			}
		}
		fmt.Fprintf(&b, "\nfrequency spectrum  0hz .. %.0fhz\n", spectrum[len(spectrum)-1].Frequency)
		b.WriteString(BarChart(Downsample(levels, width), chartHeight))
		b.WriteString("\n")
	}
	return b.String()
}
