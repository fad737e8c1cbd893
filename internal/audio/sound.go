// Package audio plays the acceptance chime and the optional celebration song.
// Every method is safe on a nil *Sound, which is what callers hold when sound
// is disabled or failed to initialise.
package audio

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/valentine/internal/config"
)

// Sound owns the speaker and the currently playing song, if any.
type Sound struct {
	rate   beep.SampleRate
	volume float64
	song   string

	// playback
	currentFile *os.File
	streamer    beep.StreamSeekCloser
	tap         *levelTap
	level       float64
}

// New initialises the speaker. Callers treat an error as "run silently".
func New(cfg config.Audio) (*Sound, error) {
	rate := beep.SampleRate(config.SampleRate)
	if err := speaker.Init(rate, rate.N(time.Second/20)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	return &Sound{
		rate:   rate,
		volume: cfg.Volume,
		song:   cfg.Song,
	}, nil
}

func (s *Sound) withVolume(st beep.Streamer) beep.Streamer {
	if s.volume == 0 {
		return st
	}
	return &effects.Volume{Streamer: st, Base: 2, Volume: s.volume}
}

// Chime plays the short acceptance jingle.
func (s *Sound) Chime() {
	if s == nil {
		return
	}
	speaker.Play(s.withVolume(chime(s.rate, config.ChimeNoteTime)))
}

// Celebrate plays the chime and starts the configured song.
func (s *Sound) Celebrate() {
	if s == nil {
		return
	}
	s.Chime()
	if s.song == "" {
		return
	}
	if err := s.PlaySong(s.song); err != nil {
		log.Printf("celebration song: %v", err)
	}
}

// Song returns the path of the song played on acceptance.
func (s *Sound) Song() string {
	if s == nil {
		return ""
	}
	return s.song
}

// PlaySong replaces the current song with path, looping it until Stop.
func (s *Sound) PlaySong(path string) error {
	if s == nil {
		return nil
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	streamer, format, err := decode(f, filepath.Ext(path))
	if err != nil {
		_ = f.Close()
		return err
	}

	// the old song keeps playing if the new one cannot be opened or decoded
	s.stopSong()

	var st beep.Streamer = beep.Loop(-1, streamer)
	if format.SampleRate != s.rate {
		st = beep.Resample(4, format.SampleRate, s.rate, st)
	}
	t := newLevelTap(st, config.LevelRingSize)

	s.currentFile = f
	s.streamer = streamer
	s.tap = t
	s.song = path

	speaker.Play(s.withVolume(t))
	log.Printf("playing %s", path)
	return nil
}

func decode(f *os.File, ext string) (beep.StreamSeekCloser, beep.Format, error) {
	switch strings.ToLower(ext) {
	case ".wav":
		return wav.Decode(f)
	case ".mp3":
		return mp3.Decode(f)
	case ".flac":
		return flac.Decode(f)
	default:
		return nil, beep.Format{}, errors.New("unsupported file type: " + ext)
	}
}

// PickSong asks for a song with a native file dialog and plays it.
// Cancelling the dialog is not an error.
func (s *Sound) PickSong() error {
	if s == nil {
		return nil
	}
	filename, err := zenity.SelectFile(
		zenity.Title("Pick a song for us"),
		zenity.FileFilters{{
			Name:     "Audio",
			Patterns: []string{"*.wav", "*.mp3", "*.flac"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}
	return s.PlaySong(filename)
}

// Level is a smoothed loudness of the song in [0, 1]; 0 when nothing plays.
func (s *Sound) Level() float64 {
	if s == nil || s.tap == nil {
		return 0
	}
	raw := s.tap.level(config.LevelRingSize / 2)
	s.level = config.LevelSmoothing*s.level + (1-config.LevelSmoothing)*raw
	return s.level
}

// Stop silences everything, including a chime still ringing.
func (s *Sound) Stop() {
	if s == nil {
		return
	}
	speaker.Lock()
	speaker.Clear()
	speaker.Unlock()
	s.closeSong()
}

func (s *Sound) stopSong() {
	if s.streamer == nil {
		return
	}
	s.Stop()
}

func (s *Sound) closeSong() {
	if s.streamer != nil {
		_ = s.streamer.Close()
		s.streamer = nil
	}
	if s.currentFile != nil {
		_ = s.currentFile.Close()
		s.currentFile = nil
	}
	s.tap = nil
	s.level = 0
}

// Close releases the speaker.
func (s *Sound) Close() {
	if s == nil {
		return
	}
	s.Stop()
	speaker.Close()
}
