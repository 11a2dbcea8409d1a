package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"ebiten-caves/config"
	"ebiten-caves/generation"
	"ebiten-caves/systems"
)

func main() {
	configPath := flag.String("config", "", "JSON generation config; defaults are used when empty")
	seed := flag.String("seed", "", "seed string, overrides the config")
	random := flag.Bool("random", false, "pick a new seed from the clock for every cave")
	width := flag.Int("width", 0, "map width in tiles, overrides the config")
	height := flag.Int("height", 0, "map height in tiles, overrides the config")
	fill := flag.Int("fill", -1, "random fill percent, overrides the config")
	mode := flag.String("mode", "", `fill mode, "random" or "noise"`)
	texturePath := flag.String("texture", "", "image file laid over the cave surface")
	fullscreen := flag.Bool("fullscreen", false, "start in fullscreen")
	flag.Parse()

	cfg := config.DefaultGenerationConfig()
	if *configPath != "" {
		loaded, err := config.LoadGenerationConfig(*configPath)
		if err != nil {
			log.Fatal(err)
		}
		cfg = loaded
	}
	if *seed != "" {
		cfg.Seed = *seed
	}
	if *random {
		cfg.UseRandomSeed = true
	}
	if *width > 0 {
		cfg.Width = *width
	}
	if *height > 0 {
		cfg.Height = *height
	}
	if *fill >= 0 {
		cfg.RandomFillPercent = *fill
	}
	if *mode != "" {
		cfg.FillMode = *mode
	}

	settings, err := cfg.ToSettings()
	if err != nil {
		log.Fatal(err)
	}
	generator, err := generation.NewGenerator(settings)
	if err != nil {
		log.Fatal(err)
	}

	texture := systems.NewRockTexture(32)
	if *texturePath != "" {
		if texture, err = systems.NewTextureFromFile(*texturePath); err != nil {
			log.Fatalf("failed to load texture: %v", err)
		}
	}

	game, err := NewGame(generator, texture)
	if err != nil {
		log.Fatal(err)
	}

	windowWidth, windowHeight := config.GetWindowSize()
	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetFullscreen(*fullscreen)
	ebiten.SetWindowTitle("Ebiten Caves")
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
