package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"ebiten-caves/config"
	"ebiten-caves/ecs"
	"ebiten-caves/generation"
	"ebiten-caves/systems"
)

// Game implements ebiten.Game interface.
type Game struct {
	world        *ecs.World
	renderSystem *systems.RenderSystem
	caveSystem   *systems.CaveSystem
	cameraSystem *systems.CameraSystem
}

// NewGame wires the systems and generates the first cave
func NewGame(generator *generation.Generator, texture *systems.Texture) (*Game, error) {
	world := ecs.NewWorld()

	caveSystem := systems.NewCaveSystem(generator)
	cameraSystem := systems.NewCameraSystem()
	renderSystem := systems.NewRenderSystem(cameraSystem, caveSystem, texture)

	// Camera and overlay first so they hear the first CaveGeneratedEvent
	cameraSystem.Initialize(world)
	renderSystem.Initialize(world)
	if err := caveSystem.Initialize(world); err != nil {
		return nil, err
	}

	world.AddSystem(caveSystem)
	world.AddSystem(cameraSystem)
	world.AddSystem(renderSystem)

	systems.GetMessageLog().AddTyped("Click or press R for a new cave.", systems.MessageTypeSystem)

	return &Game{
		world:        world,
		renderSystem: renderSystem,
		caveSystem:   caveSystem,
		cameraSystem: cameraSystem,
	}, nil
}

// Update updates the game state.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.renderSystem.ToggleMessages()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	g.world.Update(1.0 / 60.0)
	return nil
}

// Draw draws the game screen.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderSystem.Draw(g.world, screen)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.1f", ebiten.ActualFPS()), config.ScreenWidth-90, 4)
}

// Layout implements ebiten.Game's Layout.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GetScreenDimensions()
}
