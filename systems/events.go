package systems

import (
	"ebiten-caves/ecs"
	"ebiten-caves/generation"
)

// Event type constants
const (
	EventCaveGenerated    ecs.EventType = "cave_generated"
	EventGenerationFailed ecs.EventType = "generation_failed"
	EventCameraUpdate     ecs.EventType = "camera_update"
)

// CaveGeneratedEvent is emitted after a cave entity receives a new cave
type CaveGeneratedEvent struct {
	EntityID   ecs.EntityID
	Cave       *generation.Cave
	Generation int
}

// Type returns the event type
func (e CaveGeneratedEvent) Type() ecs.EventType {
	return EventCaveGenerated
}

// GenerationFailedEvent is emitted when a regeneration attempt errors. The
// previous cave stays on the entity.
type GenerationFailedEvent struct {
	EntityID ecs.EntityID
	Err      error
}

// Type returns the event type
func (e GenerationFailedEvent) Type() ecs.EventType {
	return EventGenerationFailed
}

// CameraUpdateEvent is emitted when the camera is refitted to a new cave
type CameraUpdateEvent struct {
	CameraID ecs.EntityID
	X, Z     float64
	Zoom     float64
}

// Type returns the event type
func (e CameraUpdateEvent) Type() ecs.EventType {
	return EventCameraUpdate
}
