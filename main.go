package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/valentine/internal/audio"
	"github.com/iburimskiy/valentine/internal/config"
	"github.com/iburimskiy/valentine/internal/game"
	"github.com/iburimskiy/valentine/internal/prompt"
	"github.com/iburimskiy/valentine/internal/terminal"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	dotenv := flag.String("env", ".env", "path to a .env file (ignored when missing)")
	tui := flag.Bool("tui", false, "run in the terminal instead of a window")
	seed := flag.Uint64("seed", 0, "random seed (0 picks one from the clock)")
	verbose := flag.Bool("v", false, "log every transition")
	flag.Parse()

	settings, err := config.Load(*configPath, *dotenv)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if *tui {
		settings.Frontend = config.FrontendTerminal
	}
	if *seed != 0 {
		settings.Seed = *seed
	}
	if *verbose {
		settings.Verbose = true
	}

	s := settings.Seed
	if s == 0 {
		s = uint64(time.Now().UnixNano())
	}
	src := rand.New(rand.NewPCG(s, s>>1|1))

	var opts []prompt.Option
	if settings.Verbose {
		opts = append(opts, prompt.WithListener(logTransition))
	}

	var sound *audio.Sound
	if settings.AudioEnabled() {
		sound, err = audio.New(settings.Audio)
		if err != nil {
			// Non-fatal, the prompt works without sound
			log.Printf("audio disabled: %v", err)
		}
	}
	defer sound.Close()

	if settings.Frontend == config.FrontendTerminal {
		// stderr would tear the terminal screen
		closeLog, err := redirectLog(settings.Verbose)
		if err != nil {
			log.Fatalf("log: %v", err)
		}
		defer closeLog()
		if err := runTerminal(settings, src, sound, opts); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
			os.Exit(1)
		}
		return
	}

	g, err := game.New(settings, src, sound, opts...)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(settings.Width, settings.Height)
	ebiten.SetWindowTitle(settings.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

func runTerminal(settings *config.Settings, src prompt.Source, sound *audio.Sound, opts []prompt.Option) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	terminal.New(screen, settings, src, sound, opts...).Run()
	return nil
}

// redirectLog sends log output to valentine.log when verbose, else nowhere.
func redirectLog(verbose bool) (func(), error) {
	if !verbose {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := os.OpenFile("valentine.log", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	log.SetOutput(f)
	return func() { _ = f.Close() }, nil
}

func logTransition(t prompt.Transition) {
	log.Printf("%s: %s -> %s", t.Event, t.From, t.To)
}
