package generation

import (
	"fmt"
)

// FillMode selects how the initial wall/floor noise is produced
type FillMode int

const (
	// FillRandom draws every interior tile from the seeded random stream
	FillRandom FillMode = iota
	// FillNoise thresholds a Perlin noise field seeded from the same seed
	FillNoise
)

// String returns the fill mode name
func (m FillMode) String() string {
	switch m {
	case FillNoise:
		return "noise"
	default:
		return "random"
	}
}

// ParseFillMode converts a fill mode name into a FillMode
func ParseFillMode(name string) (FillMode, error) {
	switch name {
	case "", "random":
		return FillRandom, nil
	case "noise":
		return FillNoise, nil
	}
	return FillRandom, fmt.Errorf("%w: unknown fill mode %q", ErrInvalidConfig, name)
}

// Fixed pipeline constants
const (
	SmoothingPasses = 5
	BorderSize      = 1
	MinMapSize      = 3
	// Upper bound on either side; the mesh allocates several nodes per tile
	MaxMapSize = 1024
)

// Settings holds the parameters for one cave generation
type Settings struct {
	Width         int
	Height        int
	Seed          string
	UseRandomSeed bool

	// Chance, in percent, that an interior tile starts as a wall
	RandomFillPercent int
	FillMode          FillMode
	// Sampling step for FillNoise; zero uses DefaultNoiseScale
	NoiseScale float64

	// Wall regions smaller than this become floor
	WallThreshold int
	// Floor regions smaller than this become wall
	RoomThreshold int

	PassageRadius int
	WallHeight    float64
	SquareSize    float64
}

// DefaultNoiseScale is the Perlin sampling step used when NoiseScale is zero
const DefaultNoiseScale = 0.08

// DefaultSettings returns settings that produce a medium sized cave
func DefaultSettings() Settings {
	return Settings{
		Width:             128,
		Height:            72,
		Seed:              "cave",
		RandomFillPercent: 47,
		FillMode:          FillRandom,
		WallThreshold:     50,
		RoomThreshold:     50,
		PassageRadius:     1,
		WallHeight:        5,
		SquareSize:        1,
	}
}

// Validate rejects settings the pipeline cannot run with
func (s Settings) Validate() error {
	if s.Width < MinMapSize || s.Height < MinMapSize {
		return fmt.Errorf("%w: map size %dx%d is smaller than %dx%d", ErrInvalidConfig, s.Width, s.Height, MinMapSize, MinMapSize)
	}
	if s.Width > MaxMapSize || s.Height > MaxMapSize {
		return fmt.Errorf("%w: map size %dx%d is larger than %dx%d", ErrInvalidConfig, s.Width, s.Height, MaxMapSize, MaxMapSize)
	}
	if s.RandomFillPercent < 0 || s.RandomFillPercent > 100 {
		return fmt.Errorf("%w: random fill percent %d outside 0-100", ErrInvalidConfig, s.RandomFillPercent)
	}
	if s.FillMode != FillRandom && s.FillMode != FillNoise {
		return fmt.Errorf("%w: unknown fill mode %d", ErrInvalidConfig, s.FillMode)
	}
	if s.NoiseScale < 0 {
		return fmt.Errorf("%w: negative noise scale %v", ErrInvalidConfig, s.NoiseScale)
	}
	if s.WallThreshold < 0 || s.RoomThreshold < 0 {
		return fmt.Errorf("%w: negative region threshold (wall %d, room %d)", ErrInvalidConfig, s.WallThreshold, s.RoomThreshold)
	}
	if s.PassageRadius < 0 {
		return fmt.Errorf("%w: negative passage radius %d", ErrInvalidConfig, s.PassageRadius)
	}
	if s.WallHeight < 0 {
		return fmt.Errorf("%w: negative wall height %v", ErrInvalidConfig, s.WallHeight)
	}
	if s.SquareSize <= 0 {
		return fmt.Errorf("%w: square size must be positive, got %v", ErrInvalidConfig, s.SquareSize)
	}
	return nil
}
