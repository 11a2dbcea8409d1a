package systems

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"ebiten-caves/components"
	"ebiten-caves/ecs"
	"ebiten-caves/generation"
)

// CaveSystem owns the cave generator and the map entity holding its output
type CaveSystem struct {
	generator *generation.Generator
}

const caveTag = "cave"

// NewCaveSystem creates a cave system around a configured generator
func NewCaveSystem(generator *generation.Generator) *CaveSystem {
	return &CaveSystem{generator: generator}
}

// Initialize generates the first cave and stores it on a new entity tagged
// "cave". Without a first cave there is nothing to show, so errors are
// returned rather than logged.
func (s *CaveSystem) Initialize(world *ecs.World) error {
	cave, err := s.generator.Generate()
	if err != nil {
		return fmt.Errorf("failed to generate initial cave: %w", err)
	}

	entity := world.CreateEntity()
	world.TagEntity(entity.ID, caveTag)
	world.AddComponent(entity.ID, components.Name, components.NewNameComponent("Cave"))

	caveComp := components.NewCaveComponent(cave)
	world.AddComponent(entity.ID, components.Cave, caveComp)

	GetMessageLog().AddTyped(caveComp.Summary(), MessageTypeGeneration)
	world.EmitEvent(CaveGeneratedEvent{EntityID: entity.ID, Cave: cave, Generation: caveComp.Generation})
	return nil
}

// Update handles the regenerate and debug toggle keys
func (s *CaveSystem) Update(world *ecs.World, dt float64) {
	caveComp := s.CaveComponent(world)
	if caveComp == nil {
		return
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) || inpututil.IsKeyJustPressed(ebiten.KeyR) {
		s.Regenerate(world)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		caveComp.ShowPassages = !caveComp.ShowPassages
		GetMessageLog().Addf(MessageTypeSystem, "passages %s", onOff(caveComp.ShowPassages))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyW) {
		caveComp.ShowWalls = !caveComp.ShowWalls
		GetMessageLog().Addf(MessageTypeSystem, "walls %s", onOff(caveComp.ShowWalls))
	}
}

// Regenerate runs the generator again and swaps the result into the cave
// entity. On failure the previous cave is kept.
func (s *CaveSystem) Regenerate(world *ecs.World) error {
	entity := world.FirstWithTag(caveTag)
	caveComp := s.CaveComponent(world)
	if entity == nil || caveComp == nil {
		return errors.New("no cave entity")
	}

	cave, err := s.generator.Generate()
	if err != nil {
		GetMessageLog().Addf(MessageTypeAlert, "generation failed: %v", err)
		world.EmitEvent(GenerationFailedEvent{EntityID: entity.ID, Err: err})
		return err
	}

	caveComp.Replace(cave)
	GetMessageLog().AddTyped(caveComp.Summary(), MessageTypeGeneration)
	world.EmitEvent(CaveGeneratedEvent{EntityID: entity.ID, Cave: cave, Generation: caveComp.Generation})
	return nil
}

// CaveComponent returns the cave component of the entity tagged "cave", or
// nil before Initialize has succeeded
func (s *CaveSystem) CaveComponent(world *ecs.World) *components.CaveComponent {
	entity := world.FirstWithTag(caveTag)
	if entity == nil {
		return nil
	}
	comp, exists := world.GetComponent(entity.ID, components.Cave)
	if !exists {
		return nil
	}
	return comp.(*components.CaveComponent)
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
