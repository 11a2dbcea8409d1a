package config

import (
	"encoding/json"
	"fmt"
	"os"

	"ebiten-caves/generation"
)

// GenerationConfig is the on-disk form of the cave generation settings
type GenerationConfig struct {
	Width             int     `json:"width"`
	Height            int     `json:"height"`
	Seed              string  `json:"seed"`
	UseRandomSeed     bool    `json:"use_random_seed"`
	RandomFillPercent int     `json:"random_fill_percent"` // Chance of an interior wall (0-100)
	FillMode          string  `json:"fill_mode"`           // "random" or "noise"
	NoiseScale        float64 `json:"noise_scale"`         // Perlin sampling step, 0 for the default
	WallThreshold     int     `json:"wall_threshold"`      // Smaller wall regions become floor
	RoomThreshold     int     `json:"room_threshold"`      // Smaller floor regions become wall
	PassageRadius     int     `json:"passage_radius"`
	WallHeight        float64 `json:"wall_height"`
	SquareSize        float64 `json:"square_size"`
}

// DefaultGenerationConfig returns the configuration used when no file is given
func DefaultGenerationConfig() GenerationConfig {
	s := generation.DefaultSettings()
	return GenerationConfig{
		Width:             s.Width,
		Height:            s.Height,
		Seed:              s.Seed,
		UseRandomSeed:     s.UseRandomSeed,
		RandomFillPercent: s.RandomFillPercent,
		FillMode:          s.FillMode.String(),
		NoiseScale:        s.NoiseScale,
		WallThreshold:     s.WallThreshold,
		RoomThreshold:     s.RoomThreshold,
		PassageRadius:     s.PassageRadius,
		WallHeight:        s.WallHeight,
		SquareSize:        s.SquareSize,
	}
}

// LoadGenerationConfig reads a JSON file over the defaults. Fields missing
// from the file keep their default values.
func LoadGenerationConfig(filePath string) (GenerationConfig, error) {
	cfg := DefaultGenerationConfig()

	data, err := os.ReadFile(filePath)
	if err != nil {
		return cfg, fmt.Errorf("failed to read generation config: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse generation config JSON: %w", err)
	}
	return cfg, nil
}

// ToSettings converts the config into validated generation settings
func (c GenerationConfig) ToSettings() (generation.Settings, error) {
	mode, err := generation.ParseFillMode(c.FillMode)
	if err != nil {
		return generation.Settings{}, err
	}

	settings := generation.Settings{
		Width:             c.Width,
		Height:            c.Height,
		Seed:              c.Seed,
		UseRandomSeed:     c.UseRandomSeed,
		RandomFillPercent: c.RandomFillPercent,
		FillMode:          mode,
		NoiseScale:        c.NoiseScale,
		WallThreshold:     c.WallThreshold,
		RoomThreshold:     c.RoomThreshold,
		PassageRadius:     c.PassageRadius,
		WallHeight:        c.WallHeight,
		SquareSize:        c.SquareSize,
	}
	if err := settings.Validate(); err != nil {
		return generation.Settings{}, err
	}
	return settings, nil
}
