package ecs

import "testing"

type testEvent struct{ n int }

func (e testEvent) Type() EventType { return "test" }

type otherEvent struct{}

func (e otherEvent) Type() EventType { return "other" }

type countingSystem struct{ calls int }

func (s *countingSystem) Update(world *World, dt float64) { s.calls++ }

func TestWorld_ComponentsAndTags(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()

	w.AddComponent(e.ID, 1, "payload")
	if got, ok := w.GetComponent(e.ID, 1); !ok || got.(string) != "payload" {
		t.Fatalf("component not stored: %v %v", got, ok)
	}
	if _, ok := w.GetComponent(e.ID, 2); ok {
		t.Fatalf("unexpected component 2")
	}

	w.AddComponent(e.ID, 1, "replaced")
	if got, _ := w.GetComponent(e.ID, 1); got.(string) != "replaced" {
		t.Fatalf("component not replaced: %v", got)
	}

	if w.FirstWithTag("cave") != nil {
		t.Fatalf("untagged entity found by tag")
	}
	w.TagEntity(e.ID, "cave")
	if first := w.FirstWithTag("cave"); first != e {
		t.Fatalf("FirstWithTag returned %v", first)
	}
}

func TestWorld_UnknownEntityIgnored(t *testing.T) {
	w := NewWorld()
	w.AddComponent(EntityID(999999), 1, "payload")
	if _, ok := w.GetComponent(EntityID(999999), 1); ok {
		t.Fatalf("component stored for unknown entity")
	}
	w.TagEntity(EntityID(999999), "cave")
	if w.FirstWithTag("cave") != nil {
		t.Fatalf("tag indexed for unknown entity")
	}
}

func TestWorld_FirstWithTagPicksLowestID(t *testing.T) {
	w := NewWorld()
	a := w.CreateEntity()
	b := w.CreateEntity()
	w.TagEntity(b.ID, "camera")
	w.TagEntity(a.ID, "camera")

	if first := w.FirstWithTag("camera"); first != a {
		t.Fatalf("expected entity %d, got %d", a.ID, first.ID)
	}
}

func TestWorld_UpdateAndEvents(t *testing.T) {
	w := NewWorld()
	system := &countingSystem{}
	w.AddSystem(system)
	w.Update(1.0 / 60.0)
	w.Update(1.0 / 60.0)
	if system.calls != 2 {
		t.Fatalf("expected 2 updates, got %d", system.calls)
	}

	var seen []int
	w.GetEventManager().Subscribe("test", func(e Event) { seen = append(seen, e.(testEvent).n) })
	w.GetEventManager().Subscribe("test", func(e Event) { seen = append(seen, e.(testEvent).n*10) })
	w.EmitEvent(testEvent{n: 3})

	if len(seen) != 2 || seen[0] != 3 || seen[1] != 30 {
		t.Fatalf("handlers ran out of order: %v", seen)
	}

	w.EmitEvent(otherEvent{})
	if len(seen) != 2 {
		t.Fatalf("handlers ran for an unrelated event type: %v", seen)
	}
}
