package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"synthscope/audio"
	"synthscope/ui"
)

func main() {
	seed := flag.Int64("seed", 1, "seed for the self-playing voice generator")
	window := flag.Int("window", 1500, "initial number of samples to visualize")
	record := flag.Int("record", 1, "seconds of audio kept for visualization")
	backend := flag.String("backend", "oto", "output backend: oto or portaudio")
	configFile := flag.String("config", "", "voice preset file, created with defaults if not found")
	withMidi := flag.Bool("midi", false, "start voices from MIDI note-on events")
	auto := flag.Bool("auto", true, "spawn random voices on a seeded schedule")
	flag.Parse()
	log.SetFlags(log.Lshortfile)

	if *window <= 0 || *record <= 0 {
		log.Fatalf("error: -window and -record must be positive")
	}

	cfg := audio.DefaultConfig()
	if *configFile != "" {
		var err error
		cfg, err = audio.ReadConfig(*configFile)
		if err != nil {
			log.Fatalf("error: %v\n", err)
		}
	}
	presets := &audio.Presets{}
	presets.Set(cfg.Presets)

	sampleRate, channels := 48000, 2
	if *backend == "portaudio" {
		// hibercounter's mono format; portaudio replicates per frame
		sampleRate, channels = 44100, 1
	}
	engine := audio.NewEngine(audio.Options{
		SampleRate: sampleRate,
		Channels:   channels,
		Seed:       *seed,
		SelfPlay:   *auto,
		Random:     cfg.RandomSpec(),
	})

	var device audio.OutputDevice
	var err error
	switch *backend {
	case "oto":
		device, err = audio.NewPlayer(engine)
	case "portaudio":
		device, err = audio.NewPortAudioPlayer(engine)
	default:
		err = fmt.Errorf("unknown backend: %s", *backend)
	}
	if err != nil {
		log.Fatalf("error: %v\n", err)
	}
	defer device.Close()

	if err := run(engine, device, presets, *configFile, cfg.WatchConfig, *withMidi, *record, *window); err != nil {
		log.Fatalf("error: %v\n", err)
	}
}

func run(
	engine *audio.Engine,
	device audio.OutputDevice,
	presets *audio.Presets,
	configFile string,
	watch bool,
	withMidi bool,
	record, window int,
) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	signalCh := make(chan os.Signal, 1)
	signal.Notify(signalCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(signalCh)
	go func() {
		sig := <-signalCh
		log.Printf("caught signal %s: shutting down...\n", sig)
		engine.Finish()
		cancel()
	}()

	model, err := ui.NewModel(engine, presets, record, window)
	if err != nil {
		return err
	}
	program := tea.NewProgram(model, tea.WithAltScreen())

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return device.Start(ctx)
	})
	g.Go(func() error {
		// quit tells the engine to go silent before the device stops
		defer cancel()
		_, err := program.Run()
		return err
	})
	go func() {
		<-ctx.Done()
		program.Quit()
	}()

	if withMidi {
		g.Go(func() error {
			midiIn := audio.ListenToMidiIn(ctx)
			for {
				select {
				case <-ctx.Done():
					return nil
				case data, ok := <-midiIn:
					if !ok {
						return nil
					}
					engine.StartFromMidi(data)
				}
			}
		})
	}

	if configFile != "" && watch {
		configs := make(chan *audio.Config)
		watchErrs := make(chan error)
		if err := audio.WatchConfig(configFile, configs, watchErrs, ctx.Done()); err != nil {
			return err
		}
		g.Go(func() error {
			for {
				select {
				case <-ctx.Done():
					return nil
				case c := <-configs:
					presets.Set(c.Presets)
				case err := <-watchErrs:
					log.Printf("config reload: %v\n", err)
				}
			}
		})
	}

	return g.Wait()
}
