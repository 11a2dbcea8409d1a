package preview

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"ebiten-caves/generation"
)

func testCave(t *testing.T) *generation.Cave {
	t.Helper()
	settings := generation.DefaultSettings()
	settings.Width, settings.Height = 30, 12
	settings.WallThreshold, settings.RoomThreshold = 5, 5
	settings.RandomFillPercent = 40

	gen, err := generation.NewGenerator(settings)
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}
	cave, err := gen.Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	return cave
}

func TestDraw_GridAndStatus(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(40, 16)

	cave := testCave(t)
	Draw(screen, cave, "seed cave")

	// Bottom-left tile of the map sits on the row above the status line
	bottom := cave.Grid.Height - 1
	if r, _, _, _ := screen.GetContent(0, bottom); r != WallRune {
		t.Fatalf("expected the map corner to be a wall, got %q", r)
	}

	for y := 0; y < cave.Grid.Height; y++ {
		for x := 0; x < cave.Grid.Width; x++ {
			r, _, _, _ := screen.GetContent(x, cave.Grid.Height-1-y)
			if cave.Grid.IsWall(x, y) != (r == WallRune) {
				t.Fatalf("tile (%d,%d) drawn as %q", x, y, r)
			}
		}
	}

	var status strings.Builder
	for x := 0; x < 9; x++ {
		r, _, _, _ := screen.GetContent(x, 15)
		status.WriteRune(r)
	}
	if status.String() != "seed cave" {
		t.Fatalf("unexpected status line %q", status.String())
	}
}

func TestDraw_ClipsToScreen(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(10, 5)

	// Must not panic when the cave is larger than the terminal
	Draw(screen, testCave(t), "a status line longer than the screen")
}

func TestActionForKey(t *testing.T) {
	cases := []struct {
		ev   *tcell.EventKey
		want Action
	}{
		{tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone), ActionRegenerate},
		{tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), ActionQuit},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), ActionQuit},
		{tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), ActionNone},
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), ActionNone},
	}
	for _, tc := range cases {
		if got := ActionForKey(tc.ev); got != tc.want {
			t.Errorf("key %v: expected %d, got %d", tc.ev.Name(), tc.want, got)
		}
	}
}
