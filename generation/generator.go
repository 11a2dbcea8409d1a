package generation

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"ebiten-caves/mesh"
)

// Cave is the result of one generation
type Cave struct {
	Seed string
	// Final occupancy grid, what gameplay collaborators place things on
	Grid *Grid
	// Grid wrapped in BorderSize extra walls, what the mesh was built from
	Bordered *Grid
	// Rooms sorted largest first; Rooms[0] is the main room
	Rooms    []*Room
	Passages []Passage
	Mesh     *mesh.CaveMesh

	squareSize float64
}

// MainRoom returns the room every other room is connected to
func (c *Cave) MainRoom() *Room {
	return c.Rooms[0]
}

// SquareSize returns the world size of one tile
func (c *Cave) SquareSize() float64 {
	return c.squareSize
}

// CoordToWorldPoint returns the mesh-space centre of a tile
func (c *Cave) CoordToWorldPoint(tile Coord) mesh.Vec3 {
	s := c.squareSize
	return mesh.Vec3{
		X: -float64(c.Grid.Width)*s/2 + float64(tile.X)*s + s/2,
		Z: -float64(c.Grid.Height)*s/2 + float64(tile.Y)*s + s/2,
	}
}

// Generator runs the cave pipeline: fill, smooth, prune regions, connect
// rooms, pad and mesh. Stages are created once and reused across calls.
type Generator struct {
	settings  Settings
	smoother  *Smoother
	regions   *RegionFinder
	connector *RoomConnector
}

// NewGenerator validates the settings and wires the pipeline stages
func NewGenerator(settings Settings) (*Generator, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &Generator{
		settings:  settings,
		smoother:  NewSmoother(SmoothingPasses),
		regions:   NewRegionFinder(),
		connector: NewRoomConnector(NewPassageCarver(settings.PassageRadius)),
	}, nil
}

// Settings returns the settings the generator was built with
func (g *Generator) Settings() Settings {
	return g.settings
}

// Generate builds one cave. With UseRandomSeed every call picks a fresh seed
// from the clock; otherwise the result depends only on the settings.
func (g *Generator) Generate() (*Cave, error) {
	seed := g.settings.Seed
	if g.settings.UseRandomSeed {
		seed = strconv.FormatInt(time.Now().UnixNano(), 10)
	}
	return g.GenerateWithSeed(seed)
}

// GenerateWithSeed builds one cave from an explicit seed
func (g *Generator) GenerateWithSeed(seed string) (*Cave, error) {
	s := g.settings
	grid := NewGrid(s.Width, s.Height)

	seedValue := HashSeed(seed)
	switch s.FillMode {
	case FillNoise:
		noiseFill(grid, seedValue, s.RandomFillPercent, s.NoiseScale)
	default:
		randomFill(grid, rand.New(rand.NewSource(seedValue)), s.RandomFillPercent)
	}

	g.smoother.Smooth(grid)

	rooms, passages, err := g.processMap(grid)
	if err != nil {
		return nil, fmt.Errorf("seed %q: %w", seed, err)
	}

	bordered := PadGrid(grid, BorderSize)
	return &Cave{
		Seed:       seed,
		Grid:       grid,
		Bordered:   bordered,
		Rooms:      rooms,
		Passages:   passages,
		Mesh:       mesh.Generate(bordered, s.SquareSize, s.WallHeight),
		squareSize: s.SquareSize,
	}, nil
}

// processMap prunes small regions, turns the remaining floor into rooms and
// connects them
func (g *Generator) processMap(grid *Grid) ([]*Room, []Passage, error) {
	g.removePillars(grid)

	rooms := g.allocateRooms(grid)
	if len(rooms) == 0 {
		return nil, nil, ErrNoViableRooms
	}

	SortRooms(rooms)
	rooms[0].IsMainRoom = true
	rooms[0].IsAccessibleFromMainRoom = true

	passages, err := g.connector.ConnectClosestRooms(grid, rooms)
	if err != nil {
		return nil, nil, err
	}
	return rooms, passages, nil
}

// removePillars turns wall regions below the wall threshold into floor.
// The region holding the border ring is never removed.
func (g *Generator) removePillars(grid *Grid) {
	for _, region := range g.regions.FindRegions(grid, TileWall) {
		if len(region) < g.settings.WallThreshold && !touchesBorder(grid, region) {
			fillRegion(grid, region, TileFloor)
		}
	}
}

func touchesBorder(grid *Grid, region Region) bool {
	for _, c := range region {
		if isBorder(c.X, c.Y, grid.Width, grid.Height) {
			return true
		}
	}
	return false
}

// allocateRooms fills floor regions below the room threshold and returns the
// survivors as rooms
func (g *Generator) allocateRooms(grid *Grid) []*Room {
	var rooms []*Room
	for _, region := range g.regions.FindRegions(grid, TileFloor) {
		if len(region) < g.settings.RoomThreshold {
			fillRegion(grid, region, TileWall)
			continue
		}
		rooms = append(rooms, NewRoom(region, grid))
	}
	return rooms
}
