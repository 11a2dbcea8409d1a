package generation

import (
	"errors"
	"fmt"
	"testing"
)

func TestGenerator_AllRoomsReachable(t *testing.T) {
	for i := 0; i < 8; i++ {
		seed := fmt.Sprintf("seed-%d", i)
		gen, err := NewGenerator(testSettings(seed))
		if err != nil {
			t.Fatalf("NewGenerator: %v", err)
		}
		cave, err := gen.Generate()
		if err != nil {
			t.Fatalf("%s: %v", seed, err)
		}

		if !cave.MainRoom().IsMainRoom || cave.MainRoom().ID != 0 {
			t.Fatalf("%s: first room is not the main room", seed)
		}
		for _, room := range cave.Rooms {
			if !room.IsAccessibleFromMainRoom {
				t.Fatalf("%s: room %d is not accessible", seed, room.ID)
			}
			if room.Size > cave.MainRoom().Size {
				t.Fatalf("%s: room %d is larger than the main room", seed, room.ID)
			}
		}
		if got := ReachableFrom(cave.MainRoom()).Size(); got != len(cave.Rooms) {
			t.Fatalf("%s: %d of %d rooms reachable through connections", seed, got, len(cave.Rooms))
		}

		// Carved passages join all floor into a single region
		if floors := NewRegionFinder().FindRegions(cave.Grid, TileFloor); len(floors) != 1 {
			t.Fatalf("%s: expected one floor region, got %d", seed, len(floors))
		}
	}
}

func TestGenerator_BorderInvariant(t *testing.T) {
	gen, err := NewGenerator(testSettings("border"))
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}
	cave, err := gen.Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	assertBorderIsWall(t, cave.Grid, "grid")
	assertBorderIsWall(t, cave.Bordered, "bordered")
	if cave.Bordered.Width != cave.Grid.Width+2*BorderSize || cave.Bordered.Height != cave.Grid.Height+2*BorderSize {
		t.Fatalf("bordered grid has size %dx%d", cave.Bordered.Width, cave.Bordered.Height)
	}
}

func TestGenerator_OutlinesAreClosed(t *testing.T) {
	gen, err := NewGenerator(testSettings("outlines"))
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}
	cave, err := gen.Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if len(cave.Mesh.Outlines) == 0 {
		t.Fatalf("expected at least one outline")
	}
	for i, outline := range cave.Mesh.Outlines {
		if len(outline) < 4 {
			t.Fatalf("outline %d too short: %v", i, outline)
		}
		if outline[0] != outline[len(outline)-1] {
			t.Fatalf("outline %d is not closed", i)
		}
	}
}

func TestGenerator_Deterministic(t *testing.T) {
	settings := Settings{
		Width:             10,
		Height:            10,
		Seed:              "test",
		RandomFillPercent: 45,
		WallThreshold:     5,
		RoomThreshold:     5,
		PassageRadius:     1,
		WallHeight:        5,
		SquareSize:        1,
		FillMode:          FillRandom,
	}
	assertDeterministic(t, settings)
}

func TestGenerator_DeterministicNoise(t *testing.T) {
	settings := testSettings("test")
	settings.FillMode = FillNoise
	assertDeterministic(t, settings)
}

func assertDeterministic(t *testing.T, settings Settings) {
	t.Helper()

	gen, err := NewGenerator(settings)
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}
	first, err := gen.Generate()
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	second, err := gen.Generate()
	if err != nil {
		t.Fatalf("second run: %v", err)
	}

	if len(first.Rooms) == 0 {
		t.Fatalf("expected at least one room")
	}
	if !first.Grid.Equal(second.Grid) {
		t.Fatalf("grids differ:\n%s\n%s", first.Grid, second.Grid)
	}
	if len(first.Rooms) != len(second.Rooms) {
		t.Fatalf("room counts differ: %d vs %d", len(first.Rooms), len(second.Rooms))
	}
	for i := range first.Rooms {
		if first.Rooms[i].Size != second.Rooms[i].Size {
			t.Fatalf("room %d size differs: %d vs %d", i, first.Rooms[i].Size, second.Rooms[i].Size)
		}
	}
	if len(first.Passages) != len(second.Passages) {
		t.Fatalf("passage counts differ: %d vs %d", len(first.Passages), len(second.Passages))
	}
	if len(first.Mesh.Vertices) != len(second.Mesh.Vertices) || len(first.Mesh.Triangles) != len(second.Mesh.Triangles) {
		t.Fatalf("meshes differ")
	}
}

func TestGenerator_NoViableRooms(t *testing.T) {
	settings := testSettings("solid")
	settings.RandomFillPercent = 100

	gen, err := NewGenerator(settings)
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}
	if _, err := gen.Generate(); !errors.Is(err, ErrNoViableRooms) {
		t.Fatalf("expected ErrNoViableRooms, got %v", err)
	}
}

func TestGenerator_InvalidSize(t *testing.T) {
	settings := testSettings("small")
	settings.Width = 2
	if _, err := NewGenerator(settings); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestGenerator_RandomSeedRecorded(t *testing.T) {
	settings := testSettings("ignored")
	settings.UseRandomSeed = true

	gen, err := NewGenerator(settings)
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}
	cave, err := gen.Generate()
	if err != nil {
		t.Skipf("random seed produced no cave: %v", err)
	}
	if cave.Seed == "ignored" || cave.Seed == "" {
		t.Fatalf("expected a clock seed, got %q", cave.Seed)
	}

	again, err := gen.GenerateWithSeed(cave.Seed)
	if err != nil {
		t.Fatalf("replaying seed %q: %v", cave.Seed, err)
	}
	if !again.Grid.Equal(cave.Grid) {
		t.Fatalf("replaying the recorded seed gave a different cave")
	}
}

func TestCave_CoordToWorldPoint(t *testing.T) {
	cave := &Cave{Grid: NewGrid(10, 10), squareSize: 1}
	p := cave.CoordToWorldPoint(Coord{0, 0})
	if p.X != -4.5 || p.Y != 0 || p.Z != -4.5 {
		t.Fatalf("expected (-4.5, 0, -4.5), got %+v", p)
	}
	p = cave.CoordToWorldPoint(Coord{9, 9})
	if p.X != 4.5 || p.Z != 4.5 {
		t.Fatalf("expected (4.5, 0, 4.5), got %+v", p)
	}
}
