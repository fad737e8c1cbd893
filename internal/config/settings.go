package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override, e.g. VALENTINE_TITLE.
const EnvPrefix = "VALENTINE_"

const (
	FrontendWindow   = "window"
	FrontendTerminal = "terminal"
)

// Copy is the text shown on both screens.
type Copy struct {
	Question     string `yaml:"question"     env:"QUESTION"`
	Plea         string `yaml:"plea"         env:"PLEA"`
	Yes          string `yaml:"yes"          env:"YES"`
	No           string `yaml:"no"           env:"NO"`
	SuccessTitle string `yaml:"successTitle" env:"SUCCESS_TITLE"`
	Quote        string `yaml:"quote"        env:"QUOTE"`
	Pending      string `yaml:"pending"      env:"PENDING"`
	AskAgain     string `yaml:"askAgain"     env:"ASK_AGAIN"`
}

// Audio controls the chime and the optional celebration song.
type Audio struct {
	Enabled *bool   `yaml:"enabled" env:"ENABLED"`
	Volume  float64 `yaml:"volume"  env:"VOLUME"` // beep volume exponent, 0 = unchanged
	Song    string  `yaml:"song"    env:"SONG"`   // wav, mp3 or flac
}

// Settings is the runtime configuration. Zero values are filled by applyDefaults.
type Settings struct {
	Title    string `yaml:"title"    env:"TITLE"`
	Width    int    `yaml:"width"    env:"WIDTH"`
	Height   int    `yaml:"height"   env:"HEIGHT"`
	Seed     uint64 `yaml:"seed"     env:"SEED"` // 0 seeds from the clock
	Frontend string `yaml:"frontend" env:"FRONTEND"`
	Verbose  bool   `yaml:"verbose"  env:"VERBOSE"`

	Copy  Copy  `yaml:"copy"  envPrefix:"COPY_"`
	Audio Audio `yaml:"audio" envPrefix:"AUDIO_"`
}

// AudioEnabled reports whether sound should be initialised.
func (s *Settings) AudioEnabled() bool {
	return s.Audio.Enabled == nil || *s.Audio.Enabled
}

// Load builds Settings from, in order: the YAML file at path (skipped when
// path is empty), the .env file at dotenv (missing is fine), VALENTINE_*
// environment variables, then defaults.
func Load(path, dotenv string) (*Settings, error) {
	var s Settings

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("failed to parse config YAML from %s: %w", path, err)
		}
	}

	if dotenv != "" {
		if err := godotenv.Load(dotenv); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", dotenv, err)
		}
	}

	if err := env.ParseWithOptions(&s, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	applyDefaults(&s)

	if err := validate(&s); err != nil {
		if path != "" {
			return nil, fmt.Errorf("invalid config in %s: %w", path, err)
		}
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &s, nil
}

// Default returns the settings used when nothing is configured.
func Default() *Settings {
	var s Settings
	applyDefaults(&s)
	return &s
}

func applyDefaults(s *Settings) {
	if s.Title == "" {
		s.Title = "Will you be my Valentine?"
	}
	if s.Width == 0 {
		s.Width = WindowWidth
	}
	if s.Height == 0 {
		s.Height = WindowHeight
	}
	if s.Frontend == "" {
		s.Frontend = FrontendWindow
	}

	c := &s.Copy
	if c.Question == "" {
		c.Question = "Will you be my Valentine?"
	}
	if c.Plea == "" {
		c.Plea = "Please say yes! I promise it'll be fun!"
	}
	if c.Yes == "" {
		c.Yes = "YES!"
	}
	if c.No == "" {
		c.No = "No"
	}
	if c.SuccessTitle == "" {
		c.SuccessTitle = "Yay! I knew it!"
	}
	if c.Quote == "" {
		c.Quote = "\"Let's have some fun!\""
	}
	if c.Pending == "" {
		c.Pending = "OUR VALENTINE'S DATE PENDING..."
	}
	if c.AskAgain == "" {
		c.AskAgain = "Ask me again?"
	}
}

func validate(s *Settings) error {
	if s.Width < CardWidth || s.Height < CardHeight {
		return fmt.Errorf("window %dx%d is smaller than the card (%dx%d)", s.Width, s.Height, CardWidth, CardHeight)
	}
	switch s.Frontend {
	case FrontendWindow, FrontendTerminal:
	default:
		return fmt.Errorf("unknown frontend %q", s.Frontend)
	}
	if s.Audio.Volume < -5 || s.Audio.Volume > 2 {
		return fmt.Errorf("audio volume %v outside [-5, 2]", s.Audio.Volume)
	}
	return nil
}
