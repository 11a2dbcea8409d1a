package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/gdamore/tcell/v2"

	"ebiten-caves/config"
	"ebiten-caves/generation"
	"ebiten-caves/preview"
)

func main() {
	configPath := flag.String("config", "", "JSON generation config; defaults are used when empty")
	seed := flag.String("seed", "", "seed string; a fresh clock seed is used for each cave when empty")
	flag.Parse()

	cfg := config.DefaultGenerationConfig()
	if *configPath != "" {
		loaded, err := config.LoadGenerationConfig(*configPath)
		if err != nil {
			log.Fatal(err)
		}
		cfg = loaded
	}
	cfg.UseRandomSeed = *seed == ""
	if *seed != "" {
		cfg.Seed = *seed
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}

	// The map must fit the terminal, so the config size is only an upper bound
	width, height := screen.Size()
	cfg.Width = min(cfg.Width, width)
	cfg.Height = min(cfg.Height, height-1)

	settings, err := cfg.ToSettings()
	if err != nil {
		screen.Fini()
		log.Fatal(err)
	}
	generator, err := generation.NewGenerator(settings)
	if err != nil {
		screen.Fini()
		log.Fatal(err)
	}

	err = run(screen, generator)
	screen.Fini()
	if err != nil {
		log.Fatal(err)
	}
}

// run draws caves until the user quits. Failed generations are reported on
// the status line and the previous cave stays on screen.
func run(screen tcell.Screen, generator *generation.Generator) error {
	cave, err := generator.Generate()
	if err != nil {
		return err
	}
	status := summary(cave)

	for {
		preview.Draw(screen, cave, status)

		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			switch preview.ActionForKey(ev) {
			case preview.ActionQuit:
				return nil
			case preview.ActionRegenerate:
				next, err := generator.Generate()
				if err != nil {
					status = fmt.Sprintf("generation failed: %v", err)
					continue
				}
				cave = next
				status = summary(cave)
			}
		case nil:
			return nil
		}
	}
}

func summary(cave *generation.Cave) string {
	return fmt.Sprintf(" seed %s | %d rooms | %d passages | r: regenerate  q: quit", cave.Seed, len(cave.Rooms), len(cave.Passages))
}
