package config

import "time"

const (
	WindowWidth  = 900
	WindowHeight = 700

	// Card
	CardWidth   = 460
	CardHeight  = 520
	CardPadding = 32

	// Buttons
	YesButtonWidth  = 150
	YesButtonHeight = 52
	NoButtonWidth   = 120
	NoButtonHeight  = 52
	ButtonGap       = 24
	ButtonShadow    = 8

	// Evasive glide
	GlideDuration = 150 * time.Millisecond

	// Success content slides up into place
	SlideInDuration = 500 * time.Millisecond
	SlideInDistance = 24

	// Heart field
	FloatDuration    = 6 * time.Second
	FloatRiseFactor  = 1.2
	FloatStartBelow  = 50
	PulseAmplitude   = 0.35
	LevelRingSize    = 4096
	LevelSmoothing   = 0.6
	HeartOutlineSegs = 40

	// Audio
	SampleRate    = 44100
	ChimeNoteTime = 140 * time.Millisecond
)
