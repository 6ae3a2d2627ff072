package audio

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
)

const defaultConfig = `
{
	"watchConfig": true,
	"random": {
		"sineFreq": [200, 801],
		"sawtoothFreq": [150, 600],
		"squareFreq": [250, 600],
		"squareDuty": [0.3, 0.8],
		"triangleFreq": [250, 500]
	},
	"presets": {
		"a": {
			"wave": { "kind": "sine", "frequency": 440 },
			"env": { "attack": 0.4, "peakScalar": 0.7, "decay": 0.3, "sustain": 0.6, "sustainScalar": 0.6, "release": 0.5 }
		},
		"b": {
			"wave": { "kind": "sine", "frequency": 493.883 },
			"env": { "attack": 0.4, "peakScalar": 0.7, "decay": 0.3, "sustain": 0.6, "sustainScalar": 0.6, "release": 0.5 }
		},
		"c": {
			"wave": { "kind": "sine", "frequency": 261.63 },
			"env": { "attack": 0.4, "peakScalar": 0.7, "decay": 0.3, "sustain": 0.6, "sustainScalar": 0.6, "release": 0.5 }
		},
		"d": {
			"wave": { "kind": "sine", "frequency": 293.665 },
			"env": { "attack": 0.4, "peakScalar": 0.7, "decay": 0.3, "sustain": 0.6, "sustainScalar": 0.6, "release": 0.5 }
		}
	}
}
`

// EnvConfig is the ADSR parameter block of a preset. Durations are
// seconds.
type EnvConfig struct {
	Attack        float64 `json:"attack"`
	PeakScalar    float64 `json:"peakScalar"`
	Decay         float64 `json:"decay"`
	Sustain       float64 `json:"sustain"`
	SustainScalar float64 `json:"sustainScalar"`
	Release       float64 `json:"release"`
}

// WaveConfig names a waveform shape. Duty only matters for "square".
type WaveConfig struct {
	Kind      string  `json:"kind"`
	Frequency float64 `json:"frequency"`
	Duty      float64 `json:"duty"`
}

// VoicePreset is one named, startable voice description.
type VoicePreset struct {
	Wave WaveConfig `json:"wave"`
	Env  EnvConfig  `json:"env"`
}

// RandomConfig mirrors RandomSpec with JSON tags.
type RandomConfig struct {
	SineFreq     [2]float64 `json:"sineFreq"`
	SawtoothFreq [2]float64 `json:"sawtoothFreq"`
	SquareFreq   [2]float64 `json:"squareFreq"`
	SquareDuty   [2]float64 `json:"squareDuty"`
	TriangleFreq [2]float64 `json:"triangleFreq"`
}

// Config is the voice preset file.
type Config struct {
	WatchConfig bool                   `json:"watchConfig"`
	Random      RandomConfig           `json:"random"`
	Presets     map[string]VoicePreset `json:"presets"`
}

// RandomSpec converts the configured random-voice ranges.
func (c *Config) RandomSpec() RandomSpec {
	return RandomSpec{
		SineFreq:     c.Random.SineFreq,
		SawtoothFreq: c.Random.SawtoothFreq,
		SquareFreq:   c.Random.SquareFreq,
		SquareDuty:   c.Random.SquareDuty,
		TriangleFreq: c.Random.TriangleFreq,
	}
}

// DefaultConfig parses the embedded config.
func DefaultConfig() *Config {
	var c Config
	if err := json.Unmarshal([]byte(defaultConfig), &c); err != nil {
		panic(err)
	}
	return &c
}

// ReadConfig loads the preset file at p, creating it with the
// defaults first when it does not exist.
func ReadConfig(p string) (*Config, error) {
	if _, err := os.Stat(p); errors.Is(err, os.ErrNotExist) {
		if err := os.WriteFile(p, []byte(defaultConfig), 0644); err != nil {
			return nil, fmt.Errorf("can't write default config: %w", err)
		}
	}
	data, err := os.ReadFile(p)
	if err != nil {
		return nil, fmt.Errorf("can't read config: %w", err)
	}
	var c Config
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	return &c, nil
}

// Presets is the live preset table. The watcher replaces it wholesale
// on reload; the UI reads from it when the user starts a note. The
// random ranges are applied at engine construction only.
type Presets struct {
	sync.Mutex
	table map[string]VoicePreset
}

// Set replaces the table.
func (p *Presets) Set(table map[string]VoicePreset) {
	p.Lock()
	p.table = table
	p.Unlock()
}

// Len returns how many presets are defined.
func (p *Presets) Len() int {
	p.Lock()
	defer p.Unlock()
	return len(p.table)
}

// MakeEnvelope builds a startable voice from the named preset.
func (p *Presets) MakeEnvelope(name string, sampleRate float64) (*Envelope, error) {
	p.Lock()
	preset, ok := p.table[name]
	p.Unlock()
	if !ok {
		return nil, fmt.Errorf("can't find preset: %s", name)
	}
	wave, err := preset.Wave.waveform(sampleRate)
	if err != nil {
		return nil, fmt.Errorf("preset %s: %w", name, err)
	}
	env := preset.Env
	return NewEnvelope(wave, sampleRate,
		env.Attack, env.PeakScalar, env.Decay,
		env.Sustain, env.SustainScalar, env.Release), nil
}

func (w WaveConfig) waveform(sampleRate float64) (Waveform, error) {
	var kind WaveKind
	switch w.Kind {
	case "sine":
		kind = Sine
	case "sawtooth":
		kind = Sawtooth
	case "square":
		kind = Square
	case "triangle":
		kind = Triangle
	default:
		return Waveform{}, fmt.Errorf("unknown waveform kind: %s", w.Kind)
	}
	return Waveform{Kind: kind, Rate: sampleRate, Freq: w.Frequency, Duty: w.Duty}, nil
}
