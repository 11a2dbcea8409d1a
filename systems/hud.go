package systems

import (
	"fmt"

	"ebiten-caves/ecs"
)

// Seconds a generation failure stays on screen
const alertSeconds = 3.0

// hud is the overlay state drawn above the cave. It only changes through
// events, so it can be driven without a window.
type hud struct {
	alert       string
	alertLeft   float64
	cameraLabel string
}

func (h *hud) subscribe(world *ecs.World) {
	em := world.GetEventManager()

	em.Subscribe(EventGenerationFailed, func(event ecs.Event) {
		failed := event.(GenerationFailedEvent)
		h.alert = fmt.Sprintf("generation failed: %v", failed.Err)
		h.alertLeft = alertSeconds
	})

	// A good cave replaces whatever went wrong before it
	em.Subscribe(EventCaveGenerated, func(ecs.Event) {
		h.alert = ""
		h.alertLeft = 0
	})

	em.Subscribe(EventCameraUpdate, func(event ecs.Event) {
		update := event.(CameraUpdateEvent)
		h.cameraLabel = fmt.Sprintf("fit %.2fx at (%.1f, %.1f)", update.Zoom, update.X, update.Z)
	})
}

func (h *hud) tick(dt float64) {
	if h.alertLeft <= 0 {
		return
	}
	h.alertLeft -= dt
	if h.alertLeft <= 0 {
		h.alert = ""
		h.alertLeft = 0
	}
}

// activeAlert returns the alert text while it is still showing
func (h *hud) activeAlert() (string, bool) {
	return h.alert, h.alertLeft > 0
}
