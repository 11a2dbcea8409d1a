package components

import (
	"strings"
	"testing"

	"ebiten-caves/generation"
)

func TestCaveComponent_ReplaceAndSummary(t *testing.T) {
	settings := generation.DefaultSettings()
	settings.Width, settings.Height = 40, 30
	settings.WallThreshold, settings.RoomThreshold = 10, 10

	gen, err := generation.NewGenerator(settings)
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}
	cave, err := gen.Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	comp := NewCaveComponent(cave)
	if comp.Generation != 1 || !comp.ShowWalls {
		t.Fatalf("unexpected initial state: %+v", comp)
	}
	if summary := comp.Summary(); !strings.Contains(summary, `seed "cave"`) {
		t.Fatalf("summary missing seed: %s", summary)
	}

	comp.Replace(cave)
	if comp.Generation != 2 {
		t.Fatalf("expected generation 2, got %d", comp.Generation)
	}

	empty := &CaveComponent{}
	if empty.Summary() != "no cave" {
		t.Fatalf("unexpected summary for empty component: %s", empty.Summary())
	}
}
