package components

import (
	"ebiten-caves/ecs"
)

// Component IDs used by the viewer
const (
	Cave   ecs.ComponentID = iota // Generated cave and its statistics
	Camera                        // Pan, zoom and tilt of the map view
	Name                          // Display name
)
